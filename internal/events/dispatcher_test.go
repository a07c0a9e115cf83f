package events

import (
	"context"
	"errors"
	"testing"

	"github.com/agora-voto/campaign-service/internal/domain"
)

func TestPublishReachesSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var seen []Event
	dispatcher.Subscribe(EventUserLogin, func(_ context.Context, e Event) error {
		seen = append(seen, e)
		return nil
	})

	event := New(EventUserLogin, domain.RoleMaster, map[string]any{"email": "master@demo.com"})
	if err := dispatcher.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(seen) != 1 || seen[0].ID != event.ID {
		t.Fatalf("expected delivered event, got %v", seen)
	}
}

func TestPublishSwallowsHandlerErrors(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	called := 0
	dispatcher.Subscribe(EventBotInteraction, func(context.Context, Event) error {
		called++
		return errors.New("sink down")
	})
	dispatcher.Subscribe(EventBotInteraction, func(context.Context, Event) error {
		called++
		return nil
	})

	if err := dispatcher.Publish(context.Background(), New(EventBotInteraction, domain.RoleVotante, nil)); err != nil {
		t.Fatalf("publish must not surface handler errors, got %v", err)
	}
	if called != 2 {
		t.Fatalf("expected both handlers to run, got %d", called)
	}
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()
	if err := dispatcher.Publish(context.Background(), New(EventCredentialRepair, "", nil)); err != nil {
		t.Fatalf("publish: %v", err)
	}
}
