package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dogshelter/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatalf("expected generated request id in context")
	}
	if got := rec.Header().Get(HeaderRequestID); got != seen {
		t.Fatalf("expected header %q, got %q", seen, got)
	}
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(HeaderRequestID); got != "abc-123" {
		t.Fatalf("expected incoming id to be kept, got %q", got)
	}
}

func TestAccessLog_LogsRoutePatternAndStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Info, Out: &buf})

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(AccessLog(log, nil))
	r.Get("/api/dogs/{dogID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dogs/7", nil))

	line := buf.String()
	for _, want := range []string{"msg=http request", "status=404", "route=/api/dogs/{dogID}", "path=/api/dogs/7"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in log line %q", want, line)
		}
	}
}
