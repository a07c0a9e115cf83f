package chatbot

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/agora-voto/campaign-service/internal/domain"
	"github.com/agora-voto/campaign-service/internal/events"
)

type stubResponder struct {
	reply string
	err   error
	calls int
}

func (s *stubResponder) Respond(_ context.Context, _ domain.Role, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func fixedClock(hhmm string) func() time.Time {
	parsed, _ := time.Parse("15:04", hhmm)
	return func() time.Time { return parsed }
}

func TestHandleMessageDuringActiveHours(t *testing.T) {
	responder := &stubResponder{reply: "Revisa tus tareas asignadas en el panel principal."}
	svc := NewService(responder, events.NewInMemoryDispatcher(), zap.NewNop())
	svc.now = fixedClock("10:00")

	turn, err := svc.HandleMessage(context.Background(), domain.RoleVotante, "hola")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !turn.Available {
		t.Fatal("expected bot to be available at 10:00")
	}
	if turn.Reply != responder.reply {
		t.Fatalf("unexpected reply %q", turn.Reply)
	}
	if turn.MessageID == "" {
		t.Fatal("expected message id")
	}
	if turn.Bot.Name != "SupportBot" {
		t.Fatalf("unexpected bot %q", turn.Bot.Name)
	}
}

func TestHandleMessageOutsideActiveHours(t *testing.T) {
	responder := &stubResponder{reply: "no debería usarse"}
	svc := NewService(responder, events.NewInMemoryDispatcher(), zap.NewNop())
	svc.now = fixedClock("23:30")

	turn, err := svc.HandleMessage(context.Background(), domain.RoleVotante, "hola")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if turn.Available {
		t.Fatal("expected bot to be unavailable at 23:30")
	}
	want := "Lo siento, SupportBot no está disponible en este momento. Horario de atención: 09:00 - 19:00"
	if turn.Reply != want {
		t.Fatalf("unexpected unavailability text:\n got %q\nwant %q", turn.Reply, want)
	}
	if responder.calls != 0 {
		t.Fatal("responder must not run outside active hours")
	}
}

func TestHandleMessagePublishesInteractionEvent(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	var captured []events.Event
	dispatcher.Subscribe(events.EventBotInteraction, func(_ context.Context, e events.Event) error {
		captured = append(captured, e)
		return nil
	})

	svc := NewService(&stubResponder{reply: "ok"}, dispatcher, zap.NewNop())
	svc.now = fixedClock("12:00")

	if _, err := svc.HandleMessage(context.Background(), domain.RoleMaster, "estado?"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(captured) != 1 {
		t.Fatalf("expected 1 interaction event, got %d", len(captured))
	}
	if captured[0].Attributes["bot_name"] != "MasterBot" {
		t.Fatalf("unexpected attributes %v", captured[0].Attributes)
	}
	if captured[0].Attributes["message_length"] != len("estado?") {
		t.Fatalf("unexpected message length %v", captured[0].Attributes["message_length"])
	}
}

func TestSimulatedResponderHonorsCancellation(t *testing.T) {
	responder := NewSimulatedResponder(200*time.Millisecond, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := responder.Respond(ctx, domain.RoleVotante, "hola"); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestSimulatedResponderPicksFromRolePool(t *testing.T) {
	responder := NewSimulatedResponder(0, 42)

	pool := map[string]struct{}{}
	for _, reply := range roleResponses[domain.RoleLider] {
		pool[reply] = struct{}{}
	}
	for i := 0; i < 10; i++ {
		reply, err := responder.Respond(context.Background(), domain.RoleLider, "hola")
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if _, ok := pool[reply]; !ok {
			t.Fatalf("reply %q not in the lider pool", reply)
		}
	}
}

func TestSimulatedResponderGenericPoolForUnknownRole(t *testing.T) {
	responder := NewSimulatedResponder(0, 7)

	pool := map[string]struct{}{}
	for _, reply := range genericResponses {
		pool[reply] = struct{}{}
	}
	reply, err := responder.Respond(context.Background(), "anonimo", "hola")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if _, ok := pool[reply]; !ok {
		t.Fatalf("reply %q not in the generic pool", reply)
	}
}
