package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/agora-voto/campaign-service/internal/domain"
	apperrors "github.com/agora-voto/campaign-service/pkg/util"
)

const principalKey = "session_principal"

// Principal represents the authenticated demo session.
type Principal struct {
	Email      string
	Role       domain.Role
	Credential domain.Credential
}

// SessionMiddleware validates bearer tokens and loads principals.
type SessionMiddleware struct {
	tokens *TokenManager
	store  *CredentialStore
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(tokens *TokenManager, store *CredentialStore) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, store: store}
}

// Handle enforces authentication for protected routes.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	cred, ok := m.store.GetByEmail(claims.Email)
	if !ok || !cred.Verified {
		return apperrors.NewUnauthorized("unknown session identity")
	}

	c.Locals(principalKey, &Principal{Email: cred.Email, Role: cred.Role, Credential: cred})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated session.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// RequireRole guards a route group to the listed roles.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
