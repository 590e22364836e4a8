package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func postRefresh(t *testing.T, h *AdminHandler, configure func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/admin/snapshots/refresh", nil)
	if configure != nil {
		configure(req)
	}
	rec := httptest.NewRecorder()
	h.Refresh(rec, req)
	return rec
}

func TestAdminRefreshRequiresToken(t *testing.T) {
	called := false
	h := NewAdminHandler("sekrit", func(context.Context) error {
		called = true
		return nil
	}, nil)

	rec := postRefresh(t, h, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = postRefresh(t, h, func(r *http.Request) {
		r.Header.Set("X-Admin-Token", "wrong")
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong token, got %d", rec.Code)
	}
	if called {
		t.Fatal("refresh must not run without a valid token")
	}
}

func TestAdminRefreshAcceptsHeaderToken(t *testing.T) {
	called := false
	h := NewAdminHandler("sekrit", func(context.Context) error {
		called = true
		return nil
	}, nil)

	rec := postRefresh(t, h, func(r *http.Request) {
		r.Header.Set("X-Admin-Token", "sekrit")
	})
	if rec.Code != http.StatusOK || !called {
		t.Fatalf("expected 200 with refresh called, got %d called=%v", rec.Code, called)
	}
}

func TestAdminRefreshAcceptsBearerToken(t *testing.T) {
	h := NewAdminHandler("sekrit", func(context.Context) error { return nil }, nil)

	rec := postRefresh(t, h, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer sekrit")
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminRefreshFailure(t *testing.T) {
	h := NewAdminHandler("sekrit", func(context.Context) error {
		return errors.New("source unreachable")
	}, nil)

	rec := postRefresh(t, h, func(r *http.Request) {
		r.Header.Set("X-Admin-Token", "sekrit")
	})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestAdminEmptyTokenRejectsEverything(t *testing.T) {
	h := NewAdminHandler("", func(context.Context) error { return nil }, nil)

	rec := postRefresh(t, h, func(r *http.Request) {
		r.Header.Set("X-Admin-Token", "")
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
