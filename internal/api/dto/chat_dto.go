package dto

import "github.com/agora-voto/campaign-service/internal/domain"

// ChatMessageRequest is one user message to the assistant.
type ChatMessageRequest struct {
	Message string `json:"message"`
}

// ActiveHoursView serializes an assistant window.
type ActiveHoursView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BotProfileView serializes the assistant persona.
type BotProfileView struct {
	BotID         string          `json:"bot_id"`
	Name          string          `json:"name"`
	Role          string          `json:"role"`
	Personality   string          `json:"personality"`
	KnowledgeBase []string        `json:"knowledge_base"`
	ActiveHours   ActiveHoursView `json:"active_hours"`
}

// ChatMessageResponse is the assistant's side of one turn.
type ChatMessageResponse struct {
	MessageID string         `json:"message_id"`
	Reply     string         `json:"reply"`
	Available bool           `json:"available"`
	Bot       BotProfileView `json:"bot"`
}

// NewBotProfileView maps the domain profile.
func NewBotProfileView(p domain.BotProfile) BotProfileView {
	return BotProfileView{
		BotID:         p.BotID,
		Name:          p.Name,
		Role:          p.RoleLabel,
		Personality:   p.Personality,
		KnowledgeBase: p.KnowledgeBase,
		ActiveHours:   ActiveHoursView{Start: p.ActiveHours.Start, End: p.ActiveHours.End},
	}
}
