package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pawansinha0612/indian-stock-api/internal/domain/models"
	"github.com/pawansinha0612/indian-stock-api/internal/service"
)

// mockDashboardServiceRouter implements service.DashboardService for testing router wiring
type mockDashboardServiceRouter struct {
	page []byte
}

func (m *mockDashboardServiceRouter) IndexPage(_ context.Context, _ models.Index) ([]byte, error) {
	return m.page, nil
}

var _ service.DashboardService = (*mockDashboardServiceRouter)(nil)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Provide a service that returns a fixed page so handlers return 200
	svc := &mockDashboardServiceRouter{page: []byte(`<html><p id="status-message">ok</p></html>`)}
	h := NewHandler(svc)
	r := NewRouter(h)

	// Both dashboard routes are served through the router created by NewRouter
	for _, path := range []string{"/", "/sensex"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}

		// Ensure RequestID middleware injected header
		if w.Header().Get("X-Request-ID") == "" {
			t.Fatalf("%s: expected X-Request-ID header to be set", path)
		}

		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("%s: unexpected content type %q", path, ct)
		}
		if !strings.Contains(w.Body.String(), "status-message") {
			t.Fatalf("%s: unexpected body: %s", path, w.Body.String())
		}
	}
}
