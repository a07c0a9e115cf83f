package chatbot

import "github.com/agora-voto/campaign-service/internal/domain"

// SelectProfile maps a role to its assistant persona. The mapping is total:
// any role outside the closed set, including an anonymous session, gets the
// general InfoBot profile rather than an error.
func SelectProfile(role domain.Role) domain.BotProfile {
	switch role {
	case domain.RoleDesarrollador:
		return domain.BotProfile{
			BotID:         "dev-bot-001",
			Name:          "TechBot",
			RoleLabel:     "Asistente Técnico",
			Personality:   "Experto en desarrollo y sistemas",
			KnowledgeBase: []string{"desarrollo", "sistemas", "debugging", "arquitectura"},
			ActiveHours:   domain.ActiveHours{Start: "00:00", End: "23:59"},
		}
	case domain.RoleMaster:
		return domain.BotProfile{
			BotID:         "master-bot-001",
			Name:          "MasterBot",
			RoleLabel:     "Estratega de Campaña",
			Personality:   "Experto en gestión y estrategia electoral",
			KnowledgeBase: []string{"estrategia", "gestión", "análisis", "campañas"},
			ActiveHours:   domain.ActiveHours{Start: "06:00", End: "22:00"},
		}
	case domain.RoleCandidato:
		return domain.BotProfile{
			BotID:         "candidate-bot-001",
			Name:          "LeaderBot",
			RoleLabel:     "Asistente de Liderazgo",
			Personality:   "Apoyo en liderazgo y toma de decisiones",
			KnowledgeBase: []string{"liderazgo", "propuestas", "eventos", "comunicación"},
			ActiveHours:   domain.ActiveHours{Start: "07:00", End: "21:00"},
		}
	case domain.RoleLider:
		return domain.BotProfile{
			BotID:         "leader-bot-001",
			Name:          "CoordBot",
			RoleLabel:     "Coordinador Territorial",
			Personality:   "Especialista en gestión territorial y equipos",
			KnowledgeBase: []string{"coordinación", "territorios", "equipos", "logística"},
			ActiveHours:   domain.ActiveHours{Start: "08:00", End: "20:00"},
		}
	case domain.RoleVotante:
		return domain.BotProfile{
			BotID:         "voter-bot-001",
			Name:          "SupportBot",
			RoleLabel:     "Asistente de Apoyo",
			Personality:   "Guía amigable para colaboradores",
			KnowledgeBase: []string{"tareas", "eventos", "participación", "comunidad"},
			ActiveHours:   domain.ActiveHours{Start: "09:00", End: "19:00"},
		}
	default:
		return domain.BotProfile{
			BotID:         "general-bot-001",
			Name:          "InfoBot",
			RoleLabel:     "Asistente General",
			Personality:   "Información general sobre la campaña",
			KnowledgeBase: []string{"información", "propuestas", "eventos", "contacto"},
			ActiveHours:   domain.ActiveHours{Start: "08:00", End: "18:00"},
		}
	}
}
