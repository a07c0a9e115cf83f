package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/agora-voto/campaign-service/internal/api/dto"
	"github.com/agora-voto/campaign-service/internal/auth"
	"github.com/agora-voto/campaign-service/internal/chatbot"
	"github.com/agora-voto/campaign-service/internal/domain"
)

// ChatHandler exposes the simulated assistant.
type ChatHandler struct {
	chat *chatbot.Service
}

// NewChatHandler constructs the handler.
func NewChatHandler(chat *chatbot.Service) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Message handles POST /api/chat/message for an authenticated session.
func (h *ChatHandler) Message(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.ChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.Message) == "" {
		return fiber.NewError(http.StatusBadRequest, "message required")
	}

	turn, err := h.chat.HandleMessage(c.UserContext(), principal.Role, req.Message)
	if err != nil {
		return err
	}

	return c.JSON(dto.ChatMessageResponse{
		MessageID: turn.MessageID,
		Reply:     turn.Reply,
		Available: turn.Available,
		Bot:       dto.NewBotProfileView(turn.Bot),
	})
}

// Profile handles GET /api/chat/profile. The route is public: with no
// session and no recognizable role query the general persona is returned,
// mirroring the anonymous widget on the public pages.
func (h *ChatHandler) Profile(c *fiber.Ctx) error {
	role := domain.Role(c.Query("role"))
	if principal, ok := auth.PrincipalFromContext(c); ok {
		role = principal.Role
	}

	profile := chatbot.SelectProfile(role)
	return c.JSON(fiber.Map{"data": dto.NewBotProfileView(profile)})
}
