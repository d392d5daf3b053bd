package identity

import (
	"encoding/json"
	"net/http"
)

// AdminHeader carries the caller identity as a JSON blob, set by the
// frontend from session storage.
const AdminHeader = "X-Admin-Identity"

type identityPayload struct {
	Role string `json:"role"`
}

// RequireAdmin rejects requests whose identity header is missing, malformed
// or not carrying the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload identityPayload

		raw := r.Header.Get(AdminHeader)
		if raw != "" {
			// A malformed blob is treated the same as no identity at all.
			_ = json.Unmarshal([]byte(raw), &payload)
		}

		if payload.Role != "admin" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":"Admin privileges required"}`))

			return
		}

		next.ServeHTTP(w, r)
	})
}
