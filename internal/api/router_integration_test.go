//go:build integration
// +build integration

package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guttosm/cryptopulse/config"
	"github.com/guttosm/cryptopulse/internal/app"
	"github.com/guttosm/cryptopulse/internal/domain/dto"
)

func startPG(t *testing.T) (host string, port nat.Port, terminate func()) {
	t.Helper()
	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "cryptopulse",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(h string, p nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=cryptopulse sslmode=disable", h, p.Port())
		}).WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	h, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	terminate = func() { _ = c.Terminate(context.Background()) }
	return h, mp, terminate
}

func writePrices(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"BTC_values.csv": "timestamp,symbol,price\n1641009600000,BTC,46813.21\n1641020400000,BTC,46979.61\n1641031200000,BTC,47143.98\n",
		"ETH_values.csv": "timestamp,symbol,price\n1641009600000,ETH,3715.32\n1641020400000,ETH,3718.67\n1641031200000,ETH,3697.04\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func serve(t *testing.T, router http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestAPI_E2E_RegisterSummarizeAndHistory(t *testing.T) {
	host, port, term := startPG(t)
	defer term()

	p, _ := nat.ParsePort(port.Port())
	pg := config.PostgresConfig{
		Host:     host,
		Port:     p,
		User:     "postgres",
		Password: "postgres",
		DBName:   "cryptopulse",
		SSLMode:  "disable",
	}
	pg.URL = config.BuildPostgresURL(pg)

	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{
		Storage:  config.StorageConfig{Driver: config.DriverPostgres},
		Postgres: pg,
		Prices: config.PricesConfig{
			Dir:         writePrices(t),
			FileSuffix:  "_values.csv",
			Timezone:    "UTC",
			CodesSource: config.CodesFromRegistry,
		},
	}

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		t.Fatalf("init app: %v", err)
	}
	defer cleanup()

	for _, code := range []string{"btc", "ETH"} {
		if w := serve(t, router, http.MethodPost, "/api/v1/codes/"+code); w.Code != http.StatusCreated {
			t.Fatalf("add %s: %d %s", code, w.Code, w.Body.String())
		}
	}
	if w := serve(t, router, http.MethodPost, "/api/v1/codes/BTC"); w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate: %d", w.Code)
	}

	w := serve(t, router, http.MethodGet, "/api/v1/cryptos?date=01-01-2022")
	if w.Code != http.StatusOK {
		t.Fatalf("get all: %d %s", w.Code, w.Body.String())
	}
	var all []dto.SummaryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &all); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(all) != 2 || all[0].Code != "BTC" {
		t.Fatalf("unexpected ranking: %+v", all)
	}

	// History reads what get-all persisted; the window is measured from now,
	// so 2022 data is outside any valid lookback.
	if w := serve(t, router, http.MethodGet, "/api/v1/history/BTC?months=1"); w.Code != http.StatusNotFound {
		t.Fatalf("history: %d %s", w.Code, w.Body.String())
	}

	if w := serve(t, router, http.MethodGet, "/readyz"); w.Code != http.StatusOK {
		t.Fatalf("readyz: %d", w.Code)
	}
}
