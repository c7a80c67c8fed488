package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestShouldTraceRequest_HealthPaths(t *testing.T) {
	t.Parallel()

	paths := []string{"/healthz", "/health", "/livez", "/readyz", " /healthz "}
	for _, path := range paths {
		if shouldTraceRequest(path) {
			t.Fatalf("expected no tracing for path %q", path)
		}
	}
}

func TestShouldTraceRequest_NonHealthPaths(t *testing.T) {
	t.Parallel()

	paths := []string{"/v1/groups/A/standings", "/v1/admin/matches/export", "/v1/awards/options", "/HEALTHZ/extra"}
	for _, path := range paths {
		if !shouldTraceRequest(path) {
			t.Fatalf("expected tracing for path %q", path)
		}
	}
}

func TestRequireAdminCode_RejectsBeforeHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		configured string
		provided   string
		wantStatus int
		wantReason string
	}{
		{name: "locked when unset", configured: " ", provided: "letmein", wantStatus: http.StatusServiceUnavailable, wantReason: "dependencyUnavailable"},
		{name: "padded code accepted", configured: "letmein", provided: " letmein ", wantStatus: http.StatusNoContent},
		{name: "prefix rejected", configured: "letmein", provided: "letme", wantStatus: http.StatusUnauthorized, wantReason: "unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})
			req := httptest.NewRequest(http.MethodPut, "/v1/admin/roster", nil)
			req.Header.Set(adminCodeHeader, tt.provided)
			rec := httptest.NewRecorder()

			RequireAdminCode(tt.configured, next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantReason == "" {
				return
			}
			var body errorEnvelope
			if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal response body: %v", err)
			}
			if len(body.Error.Errors) != 1 || body.Error.Errors[0].Reason != tt.wantReason {
				t.Fatalf("unexpected error body: %+v", body.Error)
			}
		})
	}
}
