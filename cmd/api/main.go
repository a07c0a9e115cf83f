package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/agora-voto/campaign-service/internal/agent"
	httptransport "github.com/agora-voto/campaign-service/internal/api/http"
	"github.com/agora-voto/campaign-service/internal/api/http/handlers"
	"github.com/agora-voto/campaign-service/internal/auth"
	"github.com/agora-voto/campaign-service/internal/chatbot"
	"github.com/agora-voto/campaign-service/internal/config"
	"github.com/agora-voto/campaign-service/internal/datastore"
	"github.com/agora-voto/campaign-service/internal/events"
	"github.com/agora-voto/campaign-service/internal/observability"
	"github.com/agora-voto/campaign-service/internal/service"
	"github.com/agora-voto/campaign-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := observability.NewMetrics()

	pg, err := datastore.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	redis := datastore.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var rows datastore.RowFetcher
	if pg.Enabled() {
		rows = datastore.NewCached(pg, redis, cfg.Redis.RowCacheTTL(), logger)
	} else {
		logger.Info("serving seeded demo rows")
		rows = datastore.NewStatic()
	}

	dispatcher := events.NewInMemoryDispatcher()
	analytics := service.NewAnalyticsService(dispatcher, logger, cfg.Analytics)
	worker.StartAnalyticsWorker(analytics)

	registry := agent.NewRegistry()
	agent.NewAgents(rows, logger).RegisterAll(registry)

	credentialStore := auth.NewCredentialStore()
	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTLMinutes)
	session := auth.NewSessionMiddleware(tokenManager, credentialStore)

	responder := chatbot.NewSimulatedResponder(cfg.Bot.ResponseDelay(), time.Now().UnixNano())
	chatService := chatbot.NewService(responder, dispatcher, logger)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Agent:       handlers.NewAgentHandler(registry, dispatcher, metrics, logger),
		Auth:        handlers.NewAuthHandler(credentialStore, tokenManager, dispatcher),
		Chat:        handlers.NewChatHandler(chatService),
		Credentials: handlers.NewCredentialsHandler(credentialStore, dispatcher, logger),
		Session:     session,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
