// Package identity provides anonymous per-device identity primitives.
//
// The visual journal keeps nothing server-side, so the identity is purely a
// cookie: it lets logs correlate requests from the same device without any
// account or storage.
package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"regexp"
	"time"
)

const (
	// AnonCookieName is the anonymous device cookie.
	AnonCookieName   = "vj_anon_id"
	anonCookieMaxAge = 30 * 24 * time.Hour
)

type contextKey int

const visitorIDKey contextKey = iota

var anonIDPattern = regexp.MustCompile(`^anon_[a-f0-9]{32}$`)

// VisitorIDFromContext extracts the visitor ID from the request context.
func VisitorIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(visitorIDKey).(string); ok {
		return v
	}
	return ""
}

func generateAnonID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate anonymous id: %w", err)
	}
	return "anon_" + hex.EncodeToString(buf), nil
}

func isValidAnonID(id string) bool {
	return anonIDPattern.MatchString(id)
}

// Middleware assigns an anonymous visitor ID via cookie and stores it on the
// request context. Invalid or missing cookies are replaced silently; a
// failure to generate an ID never blocks the request.
func Middleware(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			visitorID := ""
			if c, err := r.Cookie(AnonCookieName); err == nil && isValidAnonID(c.Value) {
				visitorID = c.Value
			}

			if visitorID == "" {
				id, err := generateAnonID()
				if err == nil {
					visitorID = id
					http.SetCookie(w, &http.Cookie{
						Name:     AnonCookieName,
						Value:    visitorID,
						Path:     "/",
						MaxAge:   int(anonCookieMaxAge.Seconds()),
						HttpOnly: true,
						Secure:   secure,
						SameSite: http.SameSiteLaxMode,
					})
				}
			}

			ctx := context.WithValue(r.Context(), visitorIDKey, visitorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
