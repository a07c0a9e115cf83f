package dto

import (
	"github.com/agora-voto/campaign-service/internal/auth"
	"github.com/agora-voto/campaign-service/internal/domain"
)

// CredentialView lists a demo identity with the password redacted.
type CredentialView struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Description string `json:"description"`
	Territory   string `json:"territory"`
	Verified    bool   `json:"verified"`
}

// DiagnosisView reports the self-validation state of one entry.
type DiagnosisView struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Verified bool   `json:"verified"`
	Valid    bool   `json:"valid"`
}

// NewCredentialView maps a credential, dropping the password.
func NewCredentialView(c domain.Credential) CredentialView {
	return CredentialView{
		Name:        c.Name,
		Email:       c.Email,
		Role:        c.Role.String(),
		Description: c.Description,
		Territory:   c.Territory,
		Verified:    c.Verified,
	}
}

// NewDiagnosisView maps a diagnosis entry.
func NewDiagnosisView(d auth.DiagnosisEntry) DiagnosisView {
	return DiagnosisView{
		Name:     d.Name,
		Email:    d.Email,
		Role:     d.Role.String(),
		Verified: d.Verified,
		Valid:    d.Valid,
	}
}
