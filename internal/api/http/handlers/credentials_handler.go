package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/agora-voto/campaign-service/internal/api/dto"
	"github.com/agora-voto/campaign-service/internal/auth"
	"github.com/agora-voto/campaign-service/internal/events"
)

// CredentialsHandler exposes the demo-credential admin surface.
type CredentialsHandler struct {
	store      *auth.CredentialStore
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewCredentialsHandler constructs the handler.
func NewCredentialsHandler(store *auth.CredentialStore, dispatcher events.Dispatcher, logger *zap.Logger) *CredentialsHandler {
	return &CredentialsHandler{store: store, dispatcher: dispatcher, logger: logger}
}

// List handles GET /api/credentials: the table (passwords redacted) plus a
// per-entry validation diagnosis.
func (h *CredentialsHandler) List(c *fiber.Ctx) error {
	entries := h.store.All()
	views := make([]dto.CredentialView, 0, len(entries))
	for _, cred := range entries {
		views = append(views, dto.NewCredentialView(cred))
	}

	diagnosis := h.store.Diagnose()
	diagViews := make([]dto.DiagnosisView, 0, len(diagnosis))
	for _, entry := range diagnosis {
		diagViews = append(diagViews, dto.NewDiagnosisView(entry))
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"credentials": views,
			"diagnosis":   diagViews,
		},
	})
}

// Repair handles POST /api/credentials/repair.
func (h *CredentialsHandler) Repair(c *fiber.Ctx) error {
	repaired := h.store.Repair()
	h.logger.Info("credential repair", zap.Int("repaired", repaired))

	if h.dispatcher != nil {
		principalRole := ""
		if principal, ok := auth.PrincipalFromContext(c); ok {
			principalRole = principal.Role.String()
		}
		_ = h.dispatcher.Publish(c.UserContext(), events.New(events.EventCredentialRepair, "", map[string]any{
			"repaired":  repaired,
			"initiator": principalRole,
		}))
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"repaired": repaired}})
}
