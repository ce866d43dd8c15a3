// Package api_test provides behavior tests for the API package.
package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jroosing/zonejson/internal/api"
	"github.com/jroosing/zonejson/internal/api/models"
	"github.com/jroosing/zonejson/internal/config"
	"github.com/jroosing/zonejson/internal/database"
)

const sampleZoneText = `$ORIGIN example.com.
$TTL 3600
@ IN SOA ns1.example.com. admin.example.com. ( 2026010101 7200 3600 1209600 3600 )
www IN A 192.0.2.10
mail IN MX 10 mx.example.com.
`

func createTestConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 8080
	return cfg
}

func createTestServer(t *testing.T, cfg *config.Config) *api.Server {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "api_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return api.New(cfg, db, nil, nil)
}

func performRequest(r http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ============================================================================
// Server Creation Tests
// ============================================================================

func TestNew_CreatesServer(t *testing.T) {
	server := createTestServer(t, createTestConfig())

	assert.NotNil(t, server)
}

func TestNew_PanicsOnNilConfig(t *testing.T) {
	assert.Panics(t, func() {
		api.New(nil, nil, nil, nil)
	})
}

func TestServer_Addr(t *testing.T) {
	cfg := createTestConfig()
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 9090

	server := api.New(cfg, nil, nil, nil)

	assert.Equal(t, "0.0.0.0:9090", server.Addr())
}

func TestServer_Engine(t *testing.T) {
	server := api.New(createTestConfig(), nil, nil, nil)

	assert.NotNil(t, server.Engine())
}

// ============================================================================
// System Endpoint Tests
// ============================================================================

func TestRoutes_HealthEndpoint(t *testing.T) {
	server := createTestServer(t, createTestConfig())

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.StatusResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}

func TestRoutes_StatsEndpoint(t *testing.T) {
	server := createTestServer(t, createTestConfig())

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/stats", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ServerStatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Uptime)
	assert.Positive(t, resp.GoRoutines)
}

// ============================================================================
// Parse Endpoint Tests
// ============================================================================

func TestRoutes_Parse(t *testing.T) {
	server := createTestServer(t, createTestConfig())

	body, _ := json.Marshal(models.ParseRequest{Text: sampleZoneText})
	w := performRequest(server.Engine(), http.MethodPost, "/api/v1/parse", string(body))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ParseResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.RecordCount)
	assert.Contains(t, resp.Zone, "soa")
	assert.Contains(t, resp.Zone, "a")
	assert.Contains(t, resp.Zone, "mx")
}

func TestRoutes_Parse_BadLine(t *testing.T) {
	server := createTestServer(t, createTestConfig())

	body, _ := json.Marshal(models.ParseRequest{Text: "this is not a record\n"})
	w := performRequest(server.Engine(), http.MethodPost, "/api/v1/parse", string(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "this is not a record", resp.Line)
}

func TestRoutes_Parse_LenientSkipsBadLine(t *testing.T) {
	server := createTestServer(t, createTestConfig())

	lenient := true
	body, _ := json.Marshal(models.ParseRequest{
		Text:    "this is not a record\nwww IN A 192.0.2.1\n",
		Lenient: &lenient,
	})
	w := performRequest(server.Engine(), http.MethodPost, "/api/v1/parse", string(body))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ParseResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.RecordCount)
}

func TestRoutes_Parse_MissingText(t *testing.T) {
	server := createTestServer(t, createTestConfig())

	w := performRequest(server.Engine(), http.MethodPost, "/api/v1/parse", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ============================================================================
// Zone Store Tests
// ============================================================================

func createZone(t *testing.T, server *api.Server, name string) {
	t.Helper()

	body, _ := json.Marshal(models.ZoneCreateRequest{Name: name, Text: sampleZoneText})
	w := performRequest(server.Engine(), http.MethodPost, "/api/v1/zones", string(body))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestRoutes_Zones_CreateAndGet(t *testing.T) {
	server := createTestServer(t, createTestConfig())

	createZone(t, server, "example.com")

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/zones/example.com", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ZoneDetailResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "example.com", resp.Name)
	assert.Equal(t, "example.com.", resp.Origin)
	assert.Equal(t, 3, resp.RecordCount)
	assert.Contains(t, resp.Zone, "soa")
}

func TestRoutes_Zones_List(t *testing.T) {
	server := createTestServer(t, createTestConfig())

	for i := 0; i < 3; i++ {
		createZone(t, server, fmt.Sprintf("zone%d.example", i))
	}

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/zones", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ZoneListResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Count)
	assert.Len(t, resp.Zones, 3)
}

func TestRoutes_Zones_GetMissing(t *testing.T) {
	server := createTestServer(t, createTestConfig())

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/zones/nope.example", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_Zones_Delete(t *testing.T) {
	server := createTestServer(t, createTestConfig())

	createZone(t, server, "example.com")

	w := performRequest(server.Engine(), http.MethodDelete, "/api/v1/zones/example.com", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(server.Engine(), http.MethodGet, "/api/v1/zones/example.com", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_Zones_CreateBadZone(t *testing.T) {
	server := createTestServer(t, createTestConfig())

	body, _ := json.Marshal(models.ZoneCreateRequest{Name: "bad.example", Text: "not a zonefile"})
	w := performRequest(server.Engine(), http.MethodPost, "/api/v1/zones", string(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoutes_Zones_WithoutDatabase(t *testing.T) {
	// No database configured: store endpoints respond 503, parsing still works.
	server := api.New(createTestConfig(), nil, nil, nil)

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/zones", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	body, _ := json.Marshal(models.ParseRequest{Text: sampleZoneText})
	w = performRequest(server.Engine(), http.MethodPost, "/api/v1/parse", string(body))
	assert.Equal(t, http.StatusOK, w.Code)
}

// ============================================================================
// API Key Protection Tests
// ============================================================================

func TestRoutes_WithAPIKey_ValidKey(t *testing.T) {
	cfg := createTestConfig()
	cfg.API.APIKey = "secret-key"
	server := api.New(cfg, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Api-Key", "secret-key")
	w := httptest.NewRecorder()

	server.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_WithAPIKey_InvalidKey(t *testing.T) {
	cfg := createTestConfig()
	cfg.API.APIKey = "secret-key"
	server := api.New(cfg, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Api-Key", "wrong-key")
	w := httptest.NewRecorder()

	server.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoutes_WithAPIKey_MissingKey(t *testing.T) {
	cfg := createTestConfig()
	cfg.API.APIKey = "secret-key"
	server := api.New(cfg, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()

	server.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoutes_NoAPIKey_NoAuth(t *testing.T) {
	cfg := createTestConfig()
	cfg.API.APIKey = ""
	server := api.New(cfg, nil, nil, nil)

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

// ============================================================================
// Metrics Tests
// ============================================================================

func TestRoutes_MetricsEndpoint(t *testing.T) {
	server := createTestServer(t, createTestConfig())

	body, _ := json.Marshal(models.ParseRequest{Text: sampleZoneText})
	w := performRequest(server.Engine(), http.MethodPost, "/api/v1/parse", string(body))
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(server.Engine(), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "zonejson_parses_total 1")
	assert.Contains(t, w.Body.String(), "zonejson_records_parsed_total 3")
}

// ============================================================================
// Server Lifecycle Tests
// ============================================================================

func TestServer_Shutdown(t *testing.T) {
	cfg := createTestConfig()
	cfg.Server.Port = 0
	server := api.New(cfg, nil, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := server.Shutdown(ctx)
	assert.NoError(t, err)
}

// ============================================================================
// Swagger Endpoint Tests
// ============================================================================

func TestRoutes_SwaggerEndpoint(t *testing.T) {
	server := createTestServer(t, createTestConfig())

	w := performRequest(server.Engine(), http.MethodGet, "/swagger/index.html", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

// ============================================================================
// Playground UI Tests
// ============================================================================

func TestRoutes_PlaygroundServed(t *testing.T) {
	server := createTestServer(t, createTestConfig())

	w := performRequest(server.Engine(), http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "zonejson")
}
