package auth

import (
	"strings"
	"sync"

	"github.com/agora-voto/campaign-service/internal/domain"
)

// nameToEmail enumerates every known display-name spelling of the demo
// identities, including case and accent variants. The lookup is an exact
// match against this table, not a normalization algorithm: an unlisted
// spelling is not found even when semantically equivalent.
var nameToEmail = map[string]string{
	"Desarrollador": "dev@demo.com",
	"desarrollador": "dev@demo.com",
	"DESARROLLADOR": "dev@demo.com",
	"dev":           "dev@demo.com",
	"Dev":           "dev@demo.com",
	"DEV":           "dev@demo.com",
	"Master":        "master@demo.com",
	"master":        "master@demo.com",
	"MASTER":        "master@demo.com",
	"master1":       "master@demo.com",
	"Master1":       "master@demo.com",
	"MASTER1":       "master@demo.com",
	"Candidato":     "candidato@demo.com",
	"candidato":     "candidato@demo.com",
	"CANDIDATO":     "candidato@demo.com",
	"Líder":         "lider@demo.com",
	"líder":         "lider@demo.com",
	"Lider":         "lider@demo.com",
	"lider":         "lider@demo.com",
	"LÍDER":         "lider@demo.com",
	"LIDER":         "lider@demo.com",
	"Votante":       "votante@demo.com",
	"votante":       "votante@demo.com",
	"VOTANTE":       "votante@demo.com",
}

func demoCredentials() []domain.Credential {
	return []domain.Credential{
		{
			Name:        "Desarrollador",
			Email:       "dev@demo.com",
			Password:    "12345678",
			Role:        domain.RoleDesarrollador,
			Description: "Acceso completo de desarrollador - Control total del sistema",
			Territory:   "Nacional",
			Verified:    true,
		},
		{
			Name:        "Master",
			Email:       "master@demo.com",
			Password:    "12345678",
			Role:        domain.RoleMaster,
			Description: "Gestión completa de campaña electoral y coordinación",
			Territory:   "Regional",
			Verified:    true,
		},
		{
			Name:        "Candidato",
			Email:       "candidato@demo.com",
			Password:    "12345678",
			Role:        domain.RoleCandidato,
			Description: "Gestión territorial especializada y estrategia política",
			Territory:   "Local",
			Verified:    true,
		},
		{
			Name:        "Lider",
			Email:       "lider@demo.com",
			Password:    "12345678",
			Role:        domain.RoleLider,
			Description: "Coordinación territorial local y gestión de equipos",
			Territory:   "Barrial",
			Verified:    true,
		},
		{
			Name:        "Votante",
			Email:       "votante@demo.com",
			Password:    "12345678",
			Role:        domain.RoleVotante,
			Description: "Usuario final del sistema electoral y participación",
			Territory:   "Individual",
			Verified:    true,
		},
	}
}

// CredentialStore holds the demo identity table. Reads see an immutable
// snapshot; Repair builds a new table and swaps it in whole, so concurrent
// readers never observe a partially repaired table.
type CredentialStore struct {
	mu    sync.RWMutex
	table []domain.Credential
}

// NewCredentialStore seeds the store with the demo identities.
func NewCredentialStore() *CredentialStore {
	return NewCredentialStoreFrom(demoCredentials())
}

// NewCredentialStoreFrom builds a store over an explicit table.
func NewCredentialStoreFrom(entries []domain.Credential) *CredentialStore {
	table := make([]domain.Credential, len(entries))
	copy(table, entries)
	return &CredentialStore{table: table}
}

// LookupEmail resolves a display-name spelling to its canonical email.
func (s *CredentialStore) LookupEmail(name string) (string, bool) {
	email, ok := nameToEmail[strings.TrimSpace(name)]
	return email, ok
}

// GetByEmail returns the credential keyed by email.
func (s *CredentialStore) GetByEmail(email string) (domain.Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, cred := range s.table {
		if cred.Email == email {
			return cred, true
		}
	}
	return domain.Credential{}, false
}

// GetByName resolves a display name and returns the matching credential.
func (s *CredentialStore) GetByName(name string) (domain.Credential, bool) {
	email, ok := s.LookupEmail(name)
	if !ok {
		return domain.Credential{}, false
	}
	return s.GetByEmail(email)
}

// All returns a copy of the current table.
func (s *CredentialStore) All() []domain.Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Credential, len(s.table))
	copy(out, s.table)
	return out
}

// Validate reports whether an entry exists with that exact email, a matching
// password and Verified set. A stored bcrypt hash (prefix "$2") is compared
// with bcrypt; anything else is an exact demo-password match.
func (s *CredentialStore) Validate(email, password string) bool {
	cred, ok := s.GetByEmail(email)
	if !ok {
		return false
	}
	return cred.Verified && passwordMatches(cred.Password, password)
}

func passwordMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2") {
		return ComparePassword(stored, given) == nil
	}
	return stored == given
}

// Repair marks every entry whose own credentials fail validation as
// verified. It copies the table, fixes the copy and swaps it in atomically.
// Email and password fields are never touched and no entry is removed; a
// second call on a repaired table changes nothing and returns 0.
func (s *CredentialStore) Repair() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Credential, len(s.table))
	copy(next, s.table)

	repaired := 0
	for i := range next {
		valid := next[i].Verified && passwordMatches(next[i].Password, next[i].Password)
		if !valid && !next[i].Verified {
			next[i].Verified = true
			repaired++
		}
	}

	s.table = next
	return repaired
}

// DiagnosisEntry reports the validation state of one stored credential.
type DiagnosisEntry struct {
	Name     string
	Email    string
	Role     domain.Role
	Verified bool
	Valid    bool
}

// Diagnose runs the self-validation check over every entry.
func (s *CredentialStore) Diagnose() []DiagnosisEntry {
	entries := s.All()
	report := make([]DiagnosisEntry, 0, len(entries))
	for _, cred := range entries {
		report = append(report, DiagnosisEntry{
			Name:     cred.Name,
			Email:    cred.Email,
			Role:     cred.Role,
			Verified: cred.Verified,
			Valid:    s.Validate(cred.Email, cred.Password),
		})
	}
	return report
}
