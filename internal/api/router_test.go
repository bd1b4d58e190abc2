package api

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/guttosm/cryptopulse/internal/domain/models"
	"github.com/guttosm/cryptopulse/internal/observability"
)

// deadlineService reports whether the request context carried a deadline.
type deadlineService struct {
	mockCryptoService
	hadDeadline bool
}

func (d *deadlineService) GetCodes(ctx context.Context) ([]models.AssetCode, error) {
	_, d.hadDeadline = ctx.Deadline()
	return nil, nil
}

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &mockCryptoService{one: btcSummary()}
	m := observability.NewMetrics("test", prometheus.NewRegistry())
	r := NewRouter(NewHandler(svc, nil), RouterConfig{Metrics: m})

	w := do(r, http.MethodGet, "/api/v1/cryptos/BTC")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	w = do(r, http.MethodGet, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("metrics status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `route="/api/v1/cryptos/:code"`) {
		t.Fatalf("request not instrumented:\n%s", w.Body.String())
	}
}

func TestNewRouter_NoMetricsEndpointWithoutMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&mockCryptoService{}, nil), RouterConfig{})

	if w := do(r, http.MethodGet, "/metrics"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for /metrics, got %d", w.Code)
	}
}

func TestNewRouter_AppliesRequestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &deadlineService{}
	r := NewRouter(NewHandler(svc, nil), RouterConfig{Timeout: time.Second})

	if w := do(r, http.MethodGet, "/api/v1/codes"); w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if !svc.hadDeadline {
		t.Fatalf("request context has no deadline")
	}
}
