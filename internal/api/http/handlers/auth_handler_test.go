package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/agora-voto/campaign-service/internal/auth"
	"github.com/agora-voto/campaign-service/internal/events"
)

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()

	store := auth.NewCredentialStore()
	tokens := auth.NewTokenManager("test-secret", 30)
	handler := NewAuthHandler(store, tokens, events.NewInMemoryDispatcher())

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	decoded := map[string]any{}
	_ = json.Unmarshal(raw, &decoded)
	return resp.StatusCode, decoded
}

func TestLoginByDisplayName(t *testing.T) {
	app := newAuthApp(t)

	status, body := postLogin(t, app, `{"name":"Líder","password":"12345678"}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", status, body)
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data: %v", body)
	}
	if data["email"] != "lider@demo.com" || data["role"] != "lider" {
		t.Fatalf("unexpected identity %v", data)
	}
	if token, _ := data["token"].(string); token == "" {
		t.Fatal("expected session token")
	}
}

func TestLoginByEmail(t *testing.T) {
	app := newAuthApp(t)

	status, _ := postLogin(t, app, `{"email":"dev@demo.com","password":"12345678"}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	app := newAuthApp(t)

	status, _ := postLogin(t, app, `{"email":"dev@demo.com","password":"wrong"}`)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestLoginRejectsUnlistedName(t *testing.T) {
	app := newAuthApp(t)

	status, _ := postLogin(t, app, `{"name":"nonexistent","password":"12345678"}`)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}
