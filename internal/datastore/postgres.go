package datastore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/agora-voto/campaign-service/internal/config"
)

// allowedTables whitelists row-store tables. Table names are spliced into
// SQL, so only enumerated identifiers ever reach a query.
var allowedTables = map[string]struct{}{
	"usuarios":    {},
	"reportes":    {},
	"red_lideres": {},
	"equipos":     {},
}

// Postgres wraps access to a pgx connection pool over the campaign row store.
type Postgres struct {
	Pool *pgxpool.Pool
}

// NewPostgres establishes a connection pool when DSN is provided.
func NewPostgres(ctx context.Context, cfg config.PostgresConfig, logger *zap.Logger) (*Postgres, error) {
	if cfg.DSN == "" {
		logger.Warn("POSTGRES_DSN not provided; row store disabled")
		return &Postgres{Pool: nil}, nil
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.ConnMaxIdleSec > 0 {
		poolCfg.MaxConnIdleTime = time.Duration(cfg.ConnMaxIdleSec) * time.Second
	}
	if cfg.ConnMaxLifeSec > 0 {
		poolCfg.MaxConnLifetime = time.Duration(cfg.ConnMaxLifeSec) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("connected to postgres")
	return &Postgres{Pool: pool}, nil
}

// FetchRows reads all rows of a whitelisted table, ordered by id. Each row
// stores its record as a JSONB `data` column.
func (p *Postgres) FetchRows(ctx context.Context, table string) ([]map[string]any, error) {
	if p == nil || p.Pool == nil {
		return nil, fmt.Errorf("row store not configured")
	}
	if _, ok := allowedTables[table]; !ok {
		return nil, fmt.Errorf("table %q not allowed", table)
	}

	rows, err := p.Pool.Query(ctx, fmt.Sprintf("SELECT data FROM %s ORDER BY id", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []map[string]any
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		record := map[string]any{}
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("malformed row in %s: %w", table, err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Ping verifies connectivity.
func (p *Postgres) Ping(ctx context.Context) error {
	if p == nil || p.Pool == nil {
		return fmt.Errorf("row store not configured")
	}
	return p.Pool.Ping(ctx)
}

// Enabled reports whether a pool was configured.
func (p *Postgres) Enabled() bool {
	return p != nil && p.Pool != nil
}

// Close releases pool resources.
func (p *Postgres) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
