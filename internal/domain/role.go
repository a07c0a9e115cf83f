package domain

import "fmt"

// Role identifies one of the fixed user categories of the campaign platform.
// The set is closed; unknown values are rejected, never defaulted.
type Role string

const (
	RoleDesarrollador Role = "desarrollador"
	RoleMaster        Role = "master"
	RoleCandidato     Role = "candidato"
	RoleLider         Role = "lider"
	RolePublicidad    Role = "publicidad"
	RoleVotante       Role = "votante"
)

// AllRoles returns the closed role set in a stable order.
func AllRoles() []Role {
	return []Role{
		RoleDesarrollador,
		RoleMaster,
		RoleCandidato,
		RoleLider,
		RolePublicidad,
		RoleVotante,
	}
}

// ParseRole validates a raw role string against the closed set.
func ParseRole(raw string) (Role, error) {
	role := Role(raw)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", raw)
	}
	return role, nil
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleDesarrollador, RoleMaster, RoleCandidato, RoleLider, RolePublicidad, RoleVotante:
		return true
	}
	return false
}

// Label returns the human-readable Spanish label for the role. This is the
// form used in user-facing messages; it differs from the wire value only for
// "lider", whose display form carries the accent.
func (r Role) Label() string {
	if r == RoleLider {
		return "líder"
	}
	return string(r)
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
