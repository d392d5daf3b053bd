package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func serve(t *testing.T, header string) (*httptest.ResponseRecorder, *bool) {
	t.Helper()

	reached := false
	handler := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/orders/all", nil)
	if header != "" {
		req.Header.Set(AdminHeader, header)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec, &reached
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	rec, reached := serve(t, `{"role": "admin", "email": "ops@vinocafe.in"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *reached)
}

func TestRequireAdminRejects(t *testing.T) {
	cases := map[string]string{
		"missing header": "",
		"wrong role":     `{"role": "customer"}`,
		"malformed json": `{"role": `,
		"no role":        `{}`,
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			rec, reached := serve(t, header)

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.False(t, *reached)
			assert.JSONEq(t, `{"error": "Admin privileges required"}`, rec.Body.String())
		})
	}
}
