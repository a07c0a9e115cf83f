package chatbot

import (
	"testing"

	"github.com/agora-voto/campaign-service/internal/domain"
)

func TestSelectProfilePerRole(t *testing.T) {
	cases := []struct {
		role  domain.Role
		botID string
		name  string
		start string
		end   string
	}{
		{domain.RoleDesarrollador, "dev-bot-001", "TechBot", "00:00", "23:59"},
		{domain.RoleMaster, "master-bot-001", "MasterBot", "06:00", "22:00"},
		{domain.RoleCandidato, "candidate-bot-001", "LeaderBot", "07:00", "21:00"},
		{domain.RoleLider, "leader-bot-001", "CoordBot", "08:00", "20:00"},
		{domain.RoleVotante, "voter-bot-001", "SupportBot", "09:00", "19:00"},
	}
	for _, tc := range cases {
		profile := SelectProfile(tc.role)
		if profile.BotID != tc.botID || profile.Name != tc.name {
			t.Fatalf("%s: got %s/%s", tc.role, profile.BotID, profile.Name)
		}
		if profile.ActiveHours.Start != tc.start || profile.ActiveHours.End != tc.end {
			t.Fatalf("%s: got window %s-%s", tc.role, profile.ActiveHours.Start, profile.ActiveHours.End)
		}
		if len(profile.KnowledgeBase) == 0 {
			t.Fatalf("%s: empty knowledge base", tc.role)
		}
	}
}

func TestSelectProfileDefaultsToInfoBot(t *testing.T) {
	for _, role := range []domain.Role{"", "anonimo", domain.RolePublicidad} {
		profile := SelectProfile(role)
		if profile.BotID != "general-bot-001" || profile.Name != "InfoBot" {
			t.Fatalf("role %q: expected InfoBot, got %s", role, profile.Name)
		}
	}
}

func TestSelectProfileIsDeterministic(t *testing.T) {
	first := SelectProfile(domain.RoleMaster)
	second := SelectProfile(domain.RoleMaster)
	if first.BotID != second.BotID || first.Personality != second.Personality {
		t.Fatal("profile selection must be deterministic")
	}
}
