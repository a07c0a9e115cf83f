package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/agora-voto/campaign-service/internal/agent"
	"github.com/agora-voto/campaign-service/internal/datastore"
	"github.com/agora-voto/campaign-service/internal/events"
	"github.com/agora-voto/campaign-service/internal/observability"
)

func newTestApp(t *testing.T) (*fiber.App, *observability.Metrics) {
	t.Helper()

	registry := agent.NewRegistry()
	agent.NewAgents(datastore.NewStatic(), zap.NewNop()).RegisterAll(registry)

	metrics := observability.NewMetrics()
	handler := NewAgentHandler(registry, events.NewInMemoryDispatcher(), metrics, zap.NewNop())

	app := fiber.New()
	app.Post("/api/agent/:role", handler.Dispatch)
	return app, metrics
}

func postAgent(t *testing.T, app *fiber.App, role, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/agent/"+role, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	decoded := map[string]any{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return resp.StatusCode, decoded
}

func TestAgentEndpointDefaultLocation(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := postAgent(t, app, "votante", `{"action":"get_location"}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected ok envelope, got %v", body)
	}
	if body["location"] != "Ubicación estándar." {
		t.Fatalf("expected standard location, got %v", body["location"])
	}
}

func TestAgentEndpointUserConfigOverride(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := postAgent(t, app, "votante", `{"action":"get_location","userConfig":{"location":"Puesto 14"}}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["location"] != "Puesto 14" {
		t.Fatalf("expected override, got %v", body["location"])
	}
}

func TestAgentEndpointEmptyOverrideFallsBack(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := postAgent(t, app, "desarrollador", `{"action":"admin_tools","userConfig":{"tools":[]}}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	tools, ok := body["tools"].([]any)
	if !ok || len(tools) != 2 {
		t.Fatalf("expected default tools, got %v", body["tools"])
	}
}

func TestAgentEndpointUnknownAction(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := postAgent(t, app, "votante", `{"action":"unknown_action"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["status"] != "error" {
		t.Fatalf("expected error envelope, got %v", body)
	}
	if body["error"] != "Acción no reconocida para votante." {
		t.Fatalf("unexpected error message %v", body["error"])
	}
}

func TestAgentEndpointUnknownRole(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := postAgent(t, app, "no_such_role", `{"action":"x"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["status"] != "error" {
		t.Fatalf("expected error envelope, got %v", body)
	}
}

func TestAgentEndpointMissingAction(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := postAgent(t, app, "votante", `{}`)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["error"] != "Se requiere una acción." {
		t.Fatalf("unexpected error message %v", body["error"])
	}
}

func TestAgentEndpointNonStringAction(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := postAgent(t, app, "votante", `{"action":42}`)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["status"] != "error" {
		t.Fatalf("expected error envelope, got %v", body)
	}
}

func TestAgentEndpointRecordsMetrics(t *testing.T) {
	app, metrics := newTestApp(t)

	postAgent(t, app, "votante", `{"action":"get_location"}`)
	if got := metrics.DispatchCount("votante", "get_location", true); got != 1 {
		t.Fatalf("expected 1 ok dispatch, got %d", got)
	}

	postAgent(t, app, "votante", `{"action":"nope"}`)
	if got := metrics.DispatchCount("votante", "nope", false); got != 1 {
		t.Fatalf("expected 1 error dispatch, got %d", got)
	}
}
