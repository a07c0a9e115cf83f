package agent

import (
	"context"
	"fmt"

	"github.com/agora-voto/campaign-service/internal/domain"
	"github.com/agora-voto/campaign-service/pkg/util"
)

// Request carries one dispatch call through the registry.
type Request struct {
	Role       domain.Role
	Action     string
	Payload    map[string]any
	UserConfig map[string]any
}

// HandlerFunc executes one role-scoped action and returns the response fields.
type HandlerFunc func(ctx context.Context, req Request) (map[string]any, error)

// Registry maps (role, action) pairs to handlers. It is populated once at
// startup and read-only afterwards, so lookups need no locking.
type Registry struct {
	handlers map[domain.Role]map[string]HandlerFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[domain.Role]map[string]HandlerFunc)}
}

// Register binds a handler. It panics on an unknown role or a duplicate
// (role, action) pair so registration gaps surface at startup, not on a
// request path.
func (r *Registry) Register(role domain.Role, action string, handler HandlerFunc) {
	if !role.Valid() {
		panic(fmt.Sprintf("agent: register on unknown role %q", role))
	}
	if action == "" || handler == nil {
		panic(fmt.Sprintf("agent: incomplete registration for role %q", role))
	}
	actions, ok := r.handlers[role]
	if !ok {
		actions = make(map[string]HandlerFunc)
		r.handlers[role] = actions
	}
	if _, dup := actions[action]; dup {
		panic(fmt.Sprintf("agent: duplicate registration %s/%s", role, action))
	}
	actions[action] = handler
}

// Actions lists the registered action vocabulary for a role.
func (r *Registry) Actions(role domain.Role) []string {
	names := make([]string, 0, len(r.handlers[role]))
	for name := range r.handlers[role] {
		names = append(names, name)
	}
	return names
}

// Dispatch resolves and invokes the handler for (role, action). Unknown roles
// and unregistered actions fail before any handler runs; a handler panic is
// converted to an internal error so no fault escapes the dispatch boundary.
func (r *Registry) Dispatch(ctx context.Context, rawRole, action string, payload, userConfig map[string]any) (data map[string]any, err error) {
	role, parseErr := domain.ParseRole(rawRole)
	if parseErr != nil {
		return nil, util.NewUnknownRole(rawRole)
	}

	handler, ok := r.handlers[role][action]
	if !ok {
		return nil, util.NewUnsupportedAction(role.Label())
	}

	defer func() {
		if rec := recover(); rec != nil {
			data = nil
			err = util.NewInternalError(fmt.Errorf("handler panic on %s/%s: %v", role, action, rec))
		}
	}()

	return handler(ctx, Request{
		Role:       role,
		Action:     action,
		Payload:    payload,
		UserConfig: userConfig,
	})
}
