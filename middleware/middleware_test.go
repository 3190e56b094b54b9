// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/city-vote/models"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "CF-Connecting-IP wins",
			headers:    map[string]string{"CF-Connecting-IP": "9.9.9.9", "X-Forwarded-For": "1.1.1.1"},
			remoteAddr: "10.0.0.1:5000",
			expected:   "9.9.9.9",
		},
		{
			name:       "X-Forwarded-For first entry",
			headers:    map[string]string{"X-Forwarded-For": "1.1.1.1, 2.2.2.2, 3.3.3.3"},
			remoteAddr: "10.0.0.1:5000",
			expected:   "1.1.1.1",
		},
		{
			name:       "X-Forwarded-For entry is trimmed",
			headers:    map[string]string{"X-Forwarded-For": " 1.1.1.1 ,2.2.2.2"},
			remoteAddr: "10.0.0.1:5000",
			expected:   "1.1.1.1",
		},
		{
			name:       "single X-Forwarded-For entry",
			headers:    map[string]string{"X-Forwarded-For": "4.4.4.4"},
			remoteAddr: "10.0.0.1:5000",
			expected:   "4.4.4.4",
		},
		{
			name:       "falls back to RemoteAddr without port",
			headers:    nil,
			remoteAddr: "10.0.0.1:5000",
			expected:   "10.0.0.1",
		},
		{
			name:       "RemoteAddr without port kept as-is",
			headers:    nil,
			remoteAddr: "10.0.0.1",
			expected:   "10.0.0.1",
		},
		{
			name:       "empty CF header is skipped",
			headers:    map[string]string{"CF-Connecting-IP": "", "X-Forwarded-For": "5.5.5.5"},
			remoteAddr: "10.0.0.1:5000",
			expected:   "5.5.5.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/my-votes", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			if got := ClientIP(req); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusOK, map[string]string{"hello": "world"})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["hello"] != "world" {
		t.Errorf("Unexpected body: %v", body)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusForbidden, "quota exhausted")

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", w.Code)
	}

	var body models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.Error != http.StatusText(http.StatusForbidden) {
		t.Errorf("Expected error %q, got %q", http.StatusText(http.StatusForbidden), body.Error)
	}
	if body.Message != "quota exhausted" {
		t.Errorf("Unexpected message: %q", body.Message)
	}
}

func TestCORSPreflight(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("OPTIONS", "/api/vote", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", w.Code)
	}
	if called {
		t.Error("Preflight must not reach the wrapped handler")
	}
	if origin := w.Header().Get("Access-Control-Allow-Origin"); origin != "http://localhost:5173" {
		t.Errorf("Expected origin to be reflected, got %q", origin)
	}
}

func TestCORSPassesThrough(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest("GET", "/api/status", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected wrapped handler status, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Expected CORS headers on normal responses too")
	}
}

func TestWithLogging(t *testing.T) {
	wrapped := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest("POST", "/api/vote", nil)
	w := httptest.NewRecorder()

	wrapped(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Expected wrapped handler to run, got status %d", w.Code)
	}
}
