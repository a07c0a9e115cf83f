package dto

// AgentRequest is the body of POST /api/agent/:role.
type AgentRequest struct {
	Action     string         `json:"action"`
	Payload    map[string]any `json:"payload"`
	UserConfig map[string]any `json:"userConfig"`
}
