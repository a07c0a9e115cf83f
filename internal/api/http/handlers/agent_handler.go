package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/agora-voto/campaign-service/internal/agent"
	"github.com/agora-voto/campaign-service/internal/api/dto"
	"github.com/agora-voto/campaign-service/internal/domain"
	"github.com/agora-voto/campaign-service/internal/events"
	"github.com/agora-voto/campaign-service/internal/observability"
	apperrors "github.com/agora-voto/campaign-service/pkg/util"
)

// AgentHandler is the dispatch boundary for POST /api/agent/:role. Whatever
// happens below it, the caller always gets the legacy envelope:
// 200 {"status":"ok", ...fields} or 400 {"status":"error","error":msg}.
type AgentHandler struct {
	registry   *agent.Registry
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewAgentHandler constructs the handler.
func NewAgentHandler(registry *agent.Registry, dispatcher events.Dispatcher, metrics *observability.Metrics, logger *zap.Logger) *AgentHandler {
	return &AgentHandler{registry: registry, dispatcher: dispatcher, metrics: metrics, logger: logger}
}

// Dispatch handles POST /api/agent/:role.
func (h *AgentHandler) Dispatch(c *fiber.Ctx) error {
	role := c.Params("role")

	var req dto.AgentRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, role, "", "Cuerpo de solicitud inválido.")
	}
	if strings.TrimSpace(req.Action) == "" {
		return h.fail(c, role, "", "Se requiere una acción.")
	}

	data, err := h.registry.Dispatch(c.UserContext(), role, req.Action, req.Payload, req.UserConfig)
	if err != nil {
		domainErr := apperrors.ToDomainError(err)
		h.logger.Info("dispatch rejected",
			zap.String("role", role),
			zap.String("action", req.Action),
			zap.String("code", domainErr.Code))
		return h.fail(c, role, req.Action, domainErr.Message)
	}

	h.metrics.RecordDispatch(role, req.Action, true)
	h.emit(c, role, req.Action, "ok")

	response := fiber.Map{"status": "ok"}
	for key, val := range data {
		response[key] = val
	}
	return c.JSON(response)
}

func (h *AgentHandler) fail(c *fiber.Ctx, role, action, message string) error {
	h.metrics.RecordDispatch(role, action, false)
	h.emit(c, role, action, "error")
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

func (h *AgentHandler) emit(c *fiber.Ctx, role, action, outcome string) {
	if h.dispatcher == nil {
		return
	}
	_ = h.dispatcher.Publish(c.UserContext(), events.New(events.EventActionDispatched, domain.Role(role), map[string]any{
		"role":    role,
		"action":  action,
		"outcome": outcome,
	}))
}
