package domain

// ActiveHours is a same-day wall-clock window in zero-padded "HH:MM" form.
// No invariant requires Start <= End; windows that cross midnight are treated
// as malformed by the availability gate.
type ActiveHours struct {
	Start string
	End   string
}

// BotProfile describes the simulated assistant persona attached to a role.
type BotProfile struct {
	BotID         string
	Name          string
	RoleLabel     string
	Personality   string
	KnowledgeBase []string
	ActiveHours   ActiveHours
}
