package agent

import (
	"context"

	"go.uber.org/zap"

	"github.com/agora-voto/campaign-service/internal/datastore"
	"github.com/agora-voto/campaign-service/pkg/util"
)

// Agents builds the per-role handlers over their shared dependencies.
type Agents struct {
	rows   datastore.RowFetcher
	logger *zap.Logger
}

// NewAgents constructs the handler set.
func NewAgents(rows datastore.RowFetcher, logger *zap.Logger) *Agents {
	return &Agents{rows: rows, logger: logger}
}

// RegisterAll installs the complete action vocabulary into the registry.
// Called once at startup; a malformed table row panics here rather than
// failing a request later.
func (a *Agents) RegisterAll(registry *Registry) {
	for _, spec := range actionTable {
		registry.Register(spec.role, spec.action, a.handlerFor(spec))
	}
}

func (a *Agents) handlerFor(spec actionSpec) HandlerFunc {
	return func(ctx context.Context, req Request) (map[string]any, error) {
		def, err := a.resolveDefault(ctx, spec)
		if err != nil {
			return nil, err
		}
		cfg := Merge(map[string]any{spec.configKey: def}, req.UserConfig)
		return map[string]any{spec.field: cfg[spec.configKey]}, nil
	}
}

// resolveDefault computes the default payload for an action: rows from the
// external backend for table-backed actions, the static value otherwise.
// Fetch failures surface as upstream errors and are returned verbatim to the
// caller; no retry happens at this layer.
func (a *Agents) resolveDefault(ctx context.Context, spec actionSpec) (any, error) {
	if spec.table == "" {
		return spec.defaultFn(), nil
	}
	rows, err := a.rows.FetchRows(ctx, spec.table)
	if err != nil {
		a.logger.Warn("row fetch failed",
			zap.String("role", spec.role.String()),
			zap.String("action", spec.action),
			zap.String("table", spec.table),
			zap.Error(err))
		return nil, util.NewUpstreamError(spec.table, err)
	}
	out := make([]any, len(rows))
	for i, row := range rows {
		out[i] = row
	}
	return out, nil
}
