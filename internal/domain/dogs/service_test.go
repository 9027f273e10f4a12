package dogs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dogshelter/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	list []Summary
	byID map[int64]Dog
	err  error
}

func (r *testRepo) List(ctx context.Context) ([]Summary, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.list, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Dog, error) {
	if r.err != nil {
		return Dog{}, r.err
	}
	d, ok := r.byID[id]
	if !ok {
		return Dog{}, ErrNotFound
	}
	return d, nil
}

func newTestRouter(repo Repository) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewService(repo), logger.Nop())
	return r
}

func serve(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

// -------------------------
// Tests
// -------------------------

func TestService_List_NilBecomesEmpty(t *testing.T) {
	svc := NewService(&testRepo{})

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}

func TestHandler_ListDogs_EmptyIsArray(t *testing.T) {
	rec := serve(newTestRouter(&testRepo{}), "/api/dogs")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestHandler_GetDog_RendersSymbolicStatus(t *testing.T) {
	repo := &testRepo{byID: map[int64]Dog{
		7: {ID: 7, Name: "Rex", BreedID: 1, Breed: "Beagle", Age: 4, Description: "d", Gender: "Male", Status: StatusPending},
	}}

	rec := serve(newTestRouter(repo), "/api/dogs/7")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["status"] != "PENDING" {
		t.Fatalf("expected symbolic status, got %v", body["status"])
	}
	if len(body) != 7 {
		t.Fatalf("expected exactly 7 fields, got %#v", body)
	}
	if _, leaked := body["breed_id"]; leaked {
		t.Fatalf("breed_id must not be exposed")
	}
}

func TestHandler_GetDog_NotFound(t *testing.T) {
	h := newTestRouter(&testRepo{byID: map[int64]Dog{}})

	// el último no entra en int64
	for _, path := range []string{"/api/dogs/1", "/api/dogs/99999999999999999999999"} {
		rec := serve(h, path)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, rec.Code)
		}
		if got := rec.Body.String(); got != "{\"error\":\"Dog not found\"}\n" {
			t.Fatalf("%s: unexpected body %q", path, got)
		}
	}
}

func TestHandler_GetDog_NonNumericIDIsRouterNotFound(t *testing.T) {
	rec := serve(newTestRouter(&testRepo{}), "/api/dogs/abc")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec.Header().Get("Content-Type") == "application/json" {
		t.Fatalf("non-numeric ids should not reach the dog handler")
	}
}

func TestHandler_StoreErrorIs500(t *testing.T) {
	h := newTestRouter(&testRepo{err: errors.New("db down")})

	for _, path := range []string{"/api/dogs", "/api/dogs/1"} {
		rec := serve(h, path)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("%s: expected 500, got %d", path, rec.Code)
		}
	}
}
