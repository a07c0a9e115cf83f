package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/agora-voto/campaign-service/internal/config"
	"github.com/agora-voto/campaign-service/internal/events"
)

// AnalyticsService consumes analytics events. It logs every event and, when
// a webhook URL is configured, stub-forwards it there. Nothing downstream of
// this service can fail a dispatch: it runs behind the event dispatcher and
// its errors stop here.
type AnalyticsService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.AnalyticsConfig
}

// NewAnalyticsService creates the service.
func NewAnalyticsService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.AnalyticsConfig) *AnalyticsService {
	return &AnalyticsService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to every emitted event type.
func (a *AnalyticsService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventActionDispatched, a.handleEvent)
	a.dispatcher.Subscribe(events.EventBotInteraction, a.handleEvent)
	a.dispatcher.Subscribe(events.EventCredentialRepair, a.handleEvent)
	a.dispatcher.Subscribe(events.EventUserLogin, a.handleEvent)
}

func (a *AnalyticsService) handleEvent(ctx context.Context, event events.Event) error {
	a.logger.Info("analytics",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("role", event.Role.String()),
		zap.Any("attributes", event.Attributes))
	a.forwardWebhookStub(ctx, event)
	return nil
}

func (a *AnalyticsService) forwardWebhookStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(a.cfg.WebhookURL) == "" {
		return
	}
	a.logger.Debug("forwardWebhookStub",
		zap.String("url", a.cfg.WebhookURL),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
}
