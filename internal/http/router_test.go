package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fixtures-service/internal/app/fixtures"
	"fixtures-service/internal/domain"
	"fixtures-service/internal/http/handlers"
	"fixtures-service/internal/metrics"
	"fixtures-service/internal/store"
)

func testRouter(t *testing.T, admin *handlers.AdminHandler) http.Handler {
	t.Helper()
	st := store.NewMemoryStore()
	st.SetSeason(domain.Season{
		Teams: []string{"Arsenal", "Chelsea"},
		Weeks: map[int][]domain.Fixture{
			1: {{HomeTeam: "Arsenal", AwayTeam: "Chelsea", Status: domain.StatusUpcoming, Gameweek: 1}},
		},
		CurrentWeek: 1,
	}, time.Now())

	h := handlers.NewHandler(fixtures.NewService(st), nil, func() bool { return true }, nil)
	return NewRouter(h, admin, nil, metrics.NewRecorder())
}

func TestRouterRoutes(t *testing.T) {
	router := testRouter(t, nil)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/gameweeks", http.StatusOK},
		{http.MethodGet, "/gameweeks/current", http.StatusOK},
		{http.MethodGet, "/gameweeks/1", http.StatusOK},
		{http.MethodGet, "/gameweeks/38", http.StatusOK},
		{http.MethodGet, "/gameweeks/39", http.StatusBadRequest},
		{http.MethodGet, "/gameweeks/abc", http.StatusNotFound},
		{http.MethodGet, "/teams", http.StatusOK},
		{http.MethodPost, "/gameweeks/current", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound},
		{http.MethodPost, "/admin/snapshots/refresh", http.StatusNotFound},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != tc.want {
			t.Errorf("%s %s: expected %d, got %d", tc.method, tc.path, tc.want, rec.Code)
		}
	}
}

func TestRouterSetsRequestID(t *testing.T) {
	router := testRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a request ID on the response")
	}
}

func TestRouterMountsAdminWhenConfigured(t *testing.T) {
	admin := handlers.NewAdminHandler("sekrit", func(context.Context) error { return nil }, nil)
	router := testRouter(t, admin)

	req := httptest.NewRequest(http.MethodPost, "/admin/snapshots/refresh", nil)
	req.Header.Set("X-Admin-Token", "sekrit")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
