package chatbot

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/agora-voto/campaign-service/internal/domain"
)

// Responder produces the assistant's reply for one user message. The
// simulated implementation below stands in for the real automation backend;
// tests inject a deterministic double.
type Responder interface {
	Respond(ctx context.Context, role domain.Role, message string) (string, error)
}

var roleResponses = map[domain.Role][]string{
	domain.RoleDesarrollador: {
		"Como desarrollador, puedo ayudarte con la arquitectura del sistema.",
		"Revisa los logs del sistema para más detalles técnicos.",
		"El sistema está funcionando correctamente según los indicadores.",
	},
	domain.RoleMaster: {
		"Como estratega, te recomiendo revisar los datos territoriales.",
		"La campaña está progresando según los objetivos planteados.",
		"Considera ajustar la estrategia en las zonas de menor penetración.",
	},
	domain.RoleCandidato: {
		"Como tu asistente de liderazgo, te sugiero revisar el estado de los equipos.",
		"Los resultados de la campaña muestran un avance positivo.",
		"Es recomendable programar más eventos en territorios clave.",
	},
	domain.RoleLider: {
		"Como coordinador territorial, puedo ayudarte con la gestión de tu zona.",
		"Revisa las tareas pendientes de tu equipo.",
		"Los votantes en tu territorio muestran buen nivel de compromiso.",
	},
	domain.RoleVotante: {
		"Como tu asistente de apoyo, estoy aquí para guiarte.",
		"Revisa tus tareas asignadas en el panel principal.",
		"Tu participación es valiosa para el éxito de la campaña.",
	},
}

var genericResponses = []string{
	"Gracias por tu mensaje. ¿En qué puedo ayudarte?",
	"Estoy aquí para apoyarte en lo que necesites.",
	"Puedes consultar la información disponible en el sistema.",
}

// SimulatedResponder waits a "thinking" delay and then picks a canned reply
// for the role. The delay honors context cancellation so a closed chat panel
// aborts the turn instead of leaking it.
type SimulatedResponder struct {
	delay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedResponder builds the responder. A non-positive delay disables
// the pause, which is what tests use.
func NewSimulatedResponder(delay time.Duration, seed int64) *SimulatedResponder {
	return &SimulatedResponder{delay: delay, rng: rand.New(rand.NewSource(seed))}
}

// Respond implements Responder.
func (r *SimulatedResponder) Respond(ctx context.Context, role domain.Role, _ string) (string, error) {
	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	pool, ok := roleResponses[role]
	if !ok {
		pool = genericResponses
	}

	r.mu.Lock()
	reply := pool[r.rng.Intn(len(pool))]
	r.mu.Unlock()
	return reply, nil
}
