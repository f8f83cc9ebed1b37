// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tellerbot/teller/models"
)

func TestRequireTransportKey(t *testing.T) {
	var called bool
	handler := RequireTransportKey("secret", func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing key", func(t *testing.T) {
		called = false
		req := httptest.NewRequest("POST", "/votes", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
		if called {
			t.Error("handler should not run without a valid key")
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		called = false
		req := httptest.NewRequest("POST", "/votes", nil)
		req.Header.Set("X-Transport-Key", "wrong")
		w := httptest.NewRecorder()

		handler(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
		if called {
			t.Error("handler should not run with a wrong key")
		}
	})

	t.Run("valid key", func(t *testing.T) {
		called = false
		req := httptest.NewRequest("POST", "/votes", nil)
		req.Header.Set("X-Transport-Key", "secret")
		w := httptest.NewRecorder()

		handler(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if !called {
			t.Error("handler should run with a valid key")
		}
	})
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, map[string]string{"hello": "world"})

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}
	if !strings.Contains(w.Body.String(), `"hello":"world"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusNotFound, "participant not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error != "Not Found" {
		t.Errorf("expected error 'Not Found', got %q", resp.Error)
	}
	if resp.Message != "participant not found" {
		t.Errorf("expected message 'participant not found', got %q", resp.Message)
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"user_id":42,"handle":"alice"}`))

	var body models.RegisterParticipantRequest
	if err := ParseJSONBody(req, &body); err != nil {
		t.Fatalf("ParseJSONBody() error = %v", err)
	}
	if body.UserID != 42 || body.Handle != "alice" {
		t.Errorf("unexpected parse result: %+v", body)
	}

	bad := httptest.NewRequest("POST", "/", strings.NewReader(`{not json`))
	if err := ParseJSONBody(bad, &body); err == nil {
		t.Error("ParseJSONBody() expected error for invalid JSON")
	}
}
