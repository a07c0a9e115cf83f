package datastore

import (
	"context"
	"fmt"
)

// Static serves seeded demo rows from memory. It backs the service when no
// row store DSN is configured and is the default fetcher in tests.
type Static struct {
	tables map[string][]map[string]any
}

// NewStatic returns a fetcher seeded with the demo dataset.
func NewStatic() *Static {
	return &Static{tables: map[string][]map[string]any{
		"usuarios": {
			{"nombre": "Desarrollador", "email": "dev@demo.com", "rol": "desarrollador"},
			{"nombre": "Master", "email": "master@demo.com", "rol": "master"},
			{"nombre": "Candidato", "email": "candidato@demo.com", "rol": "candidato"},
			{"nombre": "Lider", "email": "lider@demo.com", "rol": "lider"},
			{"nombre": "Votante", "email": "votante@demo.com", "rol": "votante"},
		},
		"reportes": {
			{"titulo": "Avance semanal", "zona": "Centro", "progreso": 72},
			{"titulo": "Cobertura territorial", "zona": "Norte", "progreso": 55},
		},
		"red_lideres": {
			{"nombre": "Equipo Barrial Centro", "ayudantes": 6},
			{"nombre": "Equipo Barrial Norte", "ayudantes": 4},
		},
		"equipos": {
			{"nombre": "Coordinación general", "zona": "Centro", "miembros": 12},
			{"nombre": "Logística territorial", "zona": "Norte", "miembros": 8},
		},
	}}
}

// FetchRows returns a copy of the seeded rows for a table.
func (s *Static) FetchRows(_ context.Context, table string) ([]map[string]any, error) {
	rows, ok := s.tables[table]
	if !ok {
		return nil, fmt.Errorf("table %q not seeded", table)
	}
	out := make([]map[string]any, len(rows))
	copy(out, rows)
	return out, nil
}
