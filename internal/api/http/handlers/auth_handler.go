package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/agora-voto/campaign-service/internal/api/dto"
	"github.com/agora-voto/campaign-service/internal/auth"
	"github.com/agora-voto/campaign-service/internal/events"
)

// AuthHandler exposes the demo login endpoint.
type AuthHandler struct {
	store      *auth.CredentialStore
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store *auth.CredentialStore, tokens *auth.TokenManager, dispatcher events.Dispatcher) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens, dispatcher: dispatcher}
}

// Login handles POST /api/auth/login. The caller may identify by email or by
// any of the enumerated display-name spellings.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Password == "" || (req.Email == "" && req.Name == "") {
		return fiber.NewError(http.StatusBadRequest, "name or email, and password required")
	}

	email := req.Email
	if email == "" {
		resolved, ok := h.store.LookupEmail(req.Name)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, "Credenciales inválidas.")
		}
		email = resolved
	}

	if !h.store.Validate(email, req.Password) {
		return fiber.NewError(http.StatusUnauthorized, "Credenciales inválidas.")
	}

	cred, _ := h.store.GetByEmail(email)
	token, expiresAt, err := h.tokens.GenerateToken(cred)
	if err != nil {
		return err
	}

	if h.dispatcher != nil {
		_ = h.dispatcher.Publish(c.UserContext(), events.New(events.EventUserLogin, cred.Role, map[string]any{
			"email": cred.Email,
		}))
	}

	return c.JSON(fiber.Map{
		"data": dto.LoginResponse{
			Token:     token,
			ExpiresAt: expiresAt,
			Email:     cred.Email,
			Name:      cred.Name,
			Role:      cred.Role.String(),
			Territory: cred.Territory,
		},
	})
}
