package agent

import "github.com/agora-voto/campaign-service/internal/domain"

// actionSpec declares one role-scoped action: the response field it fills,
// the userConfig key that may override it, and where its default comes from.
// Actions with a table name resolve their default through the row-fetch
// backend; the rest use the static default.
type actionSpec struct {
	role      domain.Role
	action    string
	field     string
	configKey string
	defaultFn func() any
	table     string
}

func defaultTeam() any {
	return []any{
		map[string]any{"nombre": "Coordinación general", "zona": "Centro", "miembros": 12},
		map[string]any{"nombre": "Logística territorial", "zona": "Norte", "miembros": 8},
		map[string]any{"nombre": "Comunicaciones", "zona": "Sur", "miembros": 5},
	}
}

// actionTable is the full closed vocabulary, one row per (role, action).
// Response fields, override keys and default payloads mirror the legacy
// per-role agents byte for byte where they were strings.
var actionTable = []actionSpec{
	{role: domain.RoleCandidato, action: "get_team", field: "team", configKey: "team", defaultFn: defaultTeam},
	{role: domain.RoleCandidato, action: "send_message", field: "message", configKey: "customMessage",
		defaultFn: staticValue("Mensaje estándar de campaña")},
	{role: domain.RoleCandidato, action: "get_reports", field: "reports", configKey: "customReports", table: "reportes"},

	{role: domain.RoleMaster, action: "manage_users", field: "users", configKey: "users", table: "usuarios"},
	{role: domain.RoleMaster, action: "run_automation", field: "result", configKey: "automationResult",
		defaultFn: staticValue("Automatización ejecutada.")},
	{role: domain.RoleMaster, action: "get_audit", field: "audit", configKey: "audit",
		defaultFn: staticValue("Auditoría estándar.")},

	{role: domain.RoleLider, action: "get_network", field: "network", configKey: "network", table: "red_lideres"},
	{role: domain.RoleLider, action: "send_team_message", field: "message", configKey: "teamMessage",
		defaultFn: staticValue("Mensaje a equipo enviado.")},

	{role: domain.RolePublicidad, action: "generate_copy", field: "copy", configKey: "adCopy",
		defaultFn: staticValue("Copy publicitario estándar.")},
	{role: domain.RolePublicidad, action: "get_stats", field: "stats", configKey: "adStats",
		defaultFn: func() any { return map[string]any{"clicks": 0, "views": 0} }},

	{role: domain.RoleVotante, action: "get_location", field: "location", configKey: "location",
		defaultFn: staticValue("Ubicación estándar.")},
	{role: domain.RoleVotante, action: "receive_message", field: "message", configKey: "voterMessage",
		defaultFn: staticValue("Mensaje de campaña recibido.")},

	{role: domain.RoleDesarrollador, action: "system_audit", field: "audit", configKey: "devAudit",
		defaultFn: staticValue("Auditoría completa.")},
	{role: domain.RoleDesarrollador, action: "get_logs", field: "logs", configKey: "logs",
		defaultFn: func() any { return []any{} }},
	{role: domain.RoleDesarrollador, action: "admin_tools", field: "tools", configKey: "tools",
		defaultFn: func() any { return []any{"Herramienta 1", "Herramienta 2"} }},
}

func staticValue(v string) func() any {
	return func() any { return v }
}
