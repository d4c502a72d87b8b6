package v1_test

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ggenius-website/config"
	v1 "ggenius-website/internal/delivery/http/v1"
	"ggenius-website/internal/delivery/http/response"
	"ggenius-website/internal/domain"
	"ggenius-website/internal/usecase"
	"ggenius-website/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testSite struct {
	root   string
	cfg    *config.Config
	router *gin.Engine
}

func newTestSite(t *testing.T, rateLimit int, opts ...func(*config.Config)) *testSite {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{
		Port:                     "0",
		StaticDir:                filepath.Join(root, "static"),
		TemplatesDir:             filepath.Join(root, "templates"),
		SiteName:                 "GGenius",
		SiteVersion:              "2.0.0",
		BuildDate:                "2025-06-01",
		CORSAllowedOrigins:       []string{"*"},
		ContactRateLimit:         rateLimit,
		ContactRateWindowSeconds: 60,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	validate, err := validation.New(domain.AllowedInterests)
	require.NoError(t, err)

	router := v1.NewRouter(v1.RouterDeps{
		PageUC:    usecase.NewPageUsecase(cfg.TemplatesDir, cfg.StaticDir, cfg.Site()),
		ContactUC: usecase.NewContactUsecase(validate),
		HealthUC:  usecase.NewHealthUsecase(cfg.SiteVersion, cfg.StaticDir, cfg.TemplatesDir),
		StatsUC:   usecase.NewStatsUsecase(cfg.SiteVersion, cfg.BuildDate),
		Config:    cfg,
	})
	return &testSite{root: root, cfg: cfg, router: router}
}

func (s *testSite) write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func (s *testSite) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testSite) get(path string) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (s *testSite) postContact(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "198.51.100.7:50000"
	return s.do(req)
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestIndexPage(t *testing.T) {
	t.Run("Should serve the generated fallback without assets", func(t *testing.T) {
		s := newTestSite(t, 0)
		w := s.get("/")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "GGenius")
		assert.Contains(t, w.Body.String(), "window.location.reload()")
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Should answer HEAD for uptime checks", func(t *testing.T) {
		s := newTestSite(t, 0)
		w := s.do(httptest.NewRequest(http.MethodHead, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	})

	t.Run("Should serve the static index with cache headers", func(t *testing.T) {
		s := newTestSite(t, 0)
		s.write(t, filepath.Join(s.cfg.StaticDir, "index.html"), "<html><body>static landing</body></html>")
		w := s.get("/")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "<html><body>static landing</body></html>", w.Body.String())
		assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	})

	t.Run("Should prefer the template over the static index", func(t *testing.T) {
		s := newTestSite(t, 0)
		s.write(t, filepath.Join(s.cfg.StaticDir, "index.html"), "static")
		s.write(t, filepath.Join(s.cfg.TemplatesDir, "index.html"), "<title>{{.SiteName}} {{.CurrentYear}}</title>")
		w := s.get("/")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "<title>GGenius "+currentYear()+"</title>", w.Body.String())
		assert.Empty(t, w.Header().Get("Cache-Control"))
	})

	t.Run("Should answer 500 with a generic message on a broken template", func(t *testing.T) {
		s := newTestSite(t, 0)
		s.write(t, filepath.Join(s.cfg.TemplatesDir, "index.html"), "{{ if }}")
		w := s.get("/")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeResponse(t, w)
		assert.False(t, body.Success)
		assert.Equal(t, "page resolution failed", body.Message)
		assert.NotContains(t, w.Body.String(), s.root)
	})

	t.Run("Should gzip when the client accepts it", func(t *testing.T) {
		s := newTestSite(t, 0)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		w := s.do(req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
		zr, err := gzip.NewReader(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		plain, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Contains(t, string(plain), "GGenius")
	})
}

func currentYear() string {
	return time.Now().Format("2006")
}

func TestContactEndpoint(t *testing.T) {
	const valid = `{"email":"player@example.com","interest":"ai_coaching","message":"Please add me to the beta list."}`

	t.Run("Should acknowledge a valid submission", func(t *testing.T) {
		s := newTestSite(t, 0)
		w := s.postContact(valid)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeResponse(t, w)
		assert.True(t, body.Success)
		assert.Equal(t, domain.ContactAckMessage, body.Message)
		assert.Equal(t, domain.ContactAckNextStep, body.NextStep)
	})

	t.Run("Should accept every optional field", func(t *testing.T) {
		s := newTestSite(t, 0)
		w := s.postContact(`{"email":"player@example.com","game_id":"123 (456)","interest":"beta_testing","message":"Count me in for testing.","newsletter":false}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"invalid email", `{"email":"nope","interest":"tournaments","message":"Valid message here"}`, "invalid email format"},
		{"unknown interest", `{"email":"a@b.co","interest":"crypto_rewards","message":"Valid message here"}`, "unknown interest category"},
		{"short message", `{"email":"a@b.co","interest":"tournaments","message":"   123456789   "}`, "message too short"},
		{"long message", `{"email":"a@b.co","interest":"tournaments","message":"` + strings.Repeat("x", 1001) + `"}`, "message too long"},
		{"malformed json", `{"email":`, "invalid request body"},
		{"wrong type", `{"email":"a@b.co","interest":"tournaments","message":"Valid message here","newsletter":"yes"}`, "invalid request body"},
	}

	for _, tt := range tests {
		t.Run("Should reject "+tt.name, func(t *testing.T) {
			s := newTestSite(t, 0)
			w := s.postContact(tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeResponse(t, w)
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Message)
		})
	}

	t.Run("Should rate limit repeated submissions", func(t *testing.T) {
		s := newTestSite(t, 2)

		assert.Equal(t, http.StatusOK, s.postContact(valid).Code)
		assert.Equal(t, http.StatusOK, s.postContact(valid).Code)
		w := s.postContact(valid)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestSite(t, 0)

	w := s.get("/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var health domain.HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "2.0.0", health.Version)
	assert.False(t, health.StaticFiles)
	assert.False(t, health.Templates)

	require.NoError(t, os.MkdirAll(s.cfg.StaticDir, 0o755))
	require.NoError(t, json.Unmarshal(s.get("/health").Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.True(t, health.StaticFiles)
}

func TestStatsAndVersionEndpoints(t *testing.T) {
	s := newTestSite(t, 0)

	w := s.get("/api/stats")
	require.Equal(t, http.StatusOK, w.Code)
	var stats map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	for _, field := range []string{"registered_users", "tournaments_held", "total_matches", "prize_pool", "ai_analyses", "last_updated"} {
		assert.Contains(t, stats, field)
	}
	assert.Equal(t, float64(1250), stats["registered_users"])
	assert.Equal(t, "$125,000", stats["prize_pool"])

	w = s.get("/api/version")
	require.Equal(t, http.StatusOK, w.Code)
	var version domain.VersionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &version))
	assert.Equal(t, "2.0.0", version.Version)
	assert.Equal(t, "v1", version.APIVersion)
}

func TestStaticFiles(t *testing.T) {
	s := newTestSite(t, 0)
	s.write(t, filepath.Join(s.cfg.StaticDir, "css", "style.css"), "body{color:#E8E6E3}")

	w := s.get("/static/css/style.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
	assert.Equal(t, "body{color:#E8E6E3}", w.Body.String())

	assert.Equal(t, http.StatusNotFound, s.get("/static/missing.js").Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestSite(t, 0)
	req := httptest.NewRequest(http.MethodOptions, "/contact", nil)
	req.Header.Set("Origin", "https://ggenius.pro")
	req.Header.Set("Access-Control-Request-Method", "POST")

	w := s.do(req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://ggenius.pro", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Methods"))
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Headers"))
}

func TestOpenAPIDocument(t *testing.T) {
	s := newTestSite(t, 0)

	w := s.get("/admin/openapi.json")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Info struct {
			Version string `json:"version"`
		} `json:"info"`
		Paths map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "2.0.0", doc.Info.Version)
	assert.Contains(t, doc.Paths, "/contact")
	assert.Contains(t, doc.Paths, "/health")

	assert.Equal(t, http.StatusOK, s.get("/admin/docs/index.html").Code)

	t.Run("Should report the configured site version", func(t *testing.T) {
		s := newTestSite(t, 0, func(cfg *config.Config) { cfg.SiteVersion = "2.1.0-rc1" })

		w := s.get("/admin/openapi.json")
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, "2.1.0-rc1", doc.Info.Version)
	})
}
