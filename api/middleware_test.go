package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	router, _ := newTestRouter(t, &mockProjectStore{})

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 without Authorization header", rec.Code)
	}
	if msg := decodeMsg(t, rec.Body); msg != "No token, authorization denied" {
		t.Errorf("msg = %q", msg)
	}
}

func TestAuthenticateRejectsBadSignature(t *testing.T) {
	router, _ := newTestRouter(t, &mockProjectStore{})

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/abc", nil)
	req.Header.Set("Authorization", "Bearer "+authToken(t, "some-other-secret"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for token signed with the wrong secret", rec.Code)
	}
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	router, _ := newTestRouter(t, &mockProjectStore{})

	req := httptest.NewRequest(http.MethodPut, "/api/projects/reorder", strings.NewReader(`{"projects":[{"id":"x","order":1}]}`))
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for malformed token", rec.Code)
	}
}

func TestReadRoutesAreUnauthenticated(t *testing.T) {
	router, _ := newTestRouter(t, &mockProjectStore{})

	for _, path := range []string{"/api/projects", "/api/projects/category/Book", "/api/health"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code == http.StatusUnauthorized {
			t.Errorf("GET %s: got 401, read routes take no token", path)
		}
	}
}
