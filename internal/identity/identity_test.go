package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddlewareAssignsVisitorID(t *testing.T) {
	var seen string
	handler := Middleware(false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = VisitorIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if !isValidAnonID(seen) {
		t.Errorf("Expected valid anon id in context, got %q", seen)
	}

	cookies := w.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == AnonCookieName {
			found = true
			if c.Value != seen {
				t.Errorf("Expected cookie %q to match context id %q", c.Value, seen)
			}
			if !c.HttpOnly {
				t.Error("Expected HttpOnly cookie")
			}
		}
	}
	if !found {
		t.Error("Expected anon cookie to be set")
	}
}

func TestMiddlewareKeepsExistingID(t *testing.T) {
	existing := "anon_0123456789abcdef0123456789abcdef"

	var seen string
	handler := Middleware(false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = VisitorIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AnonCookieName, Value: existing})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if seen != existing {
		t.Errorf("Expected existing id %q, got %q", existing, seen)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("Expected no new cookie for a valid existing id")
	}
}

func TestMiddlewareReplacesInvalidID(t *testing.T) {
	var seen string
	handler := Middleware(false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = VisitorIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AnonCookieName, Value: "not-a-real-id"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if seen == "not-a-real-id" {
		t.Error("Expected invalid id to be replaced")
	}
	if !isValidAnonID(seen) {
		t.Errorf("Expected fresh valid id, got %q", seen)
	}
}
