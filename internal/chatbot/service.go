package chatbot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agora-voto/campaign-service/internal/domain"
	"github.com/agora-voto/campaign-service/internal/events"
)

// Turn is the outcome of one chat exchange.
type Turn struct {
	MessageID string
	Reply     string
	Bot       domain.BotProfile
	Available bool
}

// Service runs chat turns: persona selection, availability gating and
// response generation. A turn is Idle until the user message arrives, waits
// on the responder, and returns to Idle once the reply is produced; no other
// state exists and no reply is revised afterwards.
type Service struct {
	responder  Responder
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// NewService builds the chat service against a responder.
func NewService(responder Responder, dispatcher events.Dispatcher, logger *zap.Logger) *Service {
	return &Service{
		responder:  responder,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// HandleMessage runs a single chat turn for the given role. Outside the
// persona's active hours the turn still succeeds, carrying the canned
// unavailability text; responder failures (including cancellation) abort the
// turn.
func (s *Service) HandleMessage(ctx context.Context, role domain.Role, text string) (*Turn, error) {
	profile := SelectProfile(role)

	nowHHMM := s.now().Format("15:04")
	active, err := IsActive(nowHHMM, profile.ActiveHours)
	if err != nil {
		s.logger.Warn("malformed active-hours window",
			zap.String("bot", profile.Name),
			zap.String("start", profile.ActiveHours.Start),
			zap.String("end", profile.ActiveHours.End),
			zap.Error(err))
	}

	if !active {
		return &Turn{
			MessageID: uuid.NewString(),
			Reply:     UnavailableMessage(profile),
			Bot:       profile,
			Available: false,
		}, nil
	}

	reply, err := s.responder.Respond(ctx, role, text)
	if err != nil {
		return nil, err
	}

	s.emitInteraction(ctx, role, profile, text)

	return &Turn{
		MessageID: uuid.NewString(),
		Reply:     reply,
		Bot:       profile,
		Available: true,
	}, nil
}

// UnavailableMessage is the canonical out-of-hours reply; it names the bot
// and its configured window.
func UnavailableMessage(p domain.BotProfile) string {
	return fmt.Sprintf("Lo siento, %s no está disponible en este momento. Horario de atención: %s - %s",
		p.Name, p.ActiveHours.Start, p.ActiveHours.End)
}

func (s *Service) emitInteraction(ctx context.Context, role domain.Role, profile domain.BotProfile, text string) {
	if s.dispatcher == nil {
		return
	}
	// Fire-and-forget: a failed emission never affects the turn.
	_ = s.dispatcher.Publish(ctx, events.New(events.EventBotInteraction, role, map[string]any{
		"bot_name":       profile.Name,
		"user_role":      role.String(),
		"message_length": len(text),
	}))
}
