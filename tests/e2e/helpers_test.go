//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/mojam-curator/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/mojam-curator/internal/app"
	"github.com/heartmarshall/mojam-curator/internal/config"
)

const (
	testPassword = "correct horse battery"
	testMojam    = "لسان العرب"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

type serverOption func(*config.Config)

func withAuth(t *testing.T) serverOption {
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return func(cfg *config.Config) {
		cfg.Auth = config.AuthConfig{
			Enabled:        true,
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
			EditorName:     "editor",
			PasswordHash:   string(hash),
		}
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper). Every call starts from an
// empty store, so these tests must not run in parallel.
func setupTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	_, err := pool.Exec(context.Background(), "TRUNCATE word_lists, root_notes, passages, mojams")
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{MaxBodyBytes: 8 << 20},
		Curation: config.CurationConfig{
			DefaultMojam:    testMojam,
			DefaultSort:     "default",
			MinDatasetRoots: 3,
			BatchSize:       50,
		},
		Session: config.SessionConfig{
			SaveDebounce:    20 * time.Millisecond,
			IdleTTL:         time.Hour,
			PersistAttempts: 2,
			PersistBackoff:  10 * time.Millisecond,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	comps := app.NewComponents(pool, cfg.Curation, logger)
	server := app.NewServer(comps, cfg, logger)

	srv := httptest.NewServer(server.Handler)
	t.Cleanup(func() {
		srv.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Close(ctx)
	})

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// do sends a request with an optional body (a string is sent verbatim,
// anything else as JSON) and returns the status and raw response body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// getJSON performs a GET and decodes the body into T.
func getJSON[T any](t *testing.T, ts *testServer, path string) T {
	t.Helper()
	status, raw := ts.do(t, http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, status, string(raw))
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

// rootPath builds /api/mojams/{mojam}/roots/{root}{suffix} with escaped
// segments.
func mojamPath(mojam, suffix string) string {
	return "/api/mojams/" + url.PathEscape(mojam) + suffix
}

func rootPath(mojam, root, suffix string) string {
	return mojamPath(mojam, "/roots/"+url.PathEscape(root)+suffix)
}

// seedCorpus stores three roots of testMojam through the public API.
func seedCorpus(t *testing.T, ts *testServer) {
	t.Helper()
	doc := `{"` + testMojam + `":{` +
		`"أبا":"الأباء بالفتح والمد: القصب. ويقال هو أجمة الحلفاء.",` +
		`"أبب":"الأب: المرعى.",` +
		`"درس":"يدرس الطالب دروسا كثيرة في المدرسة."}}`
	status, raw := ts.do(t, http.MethodPost, "/api/save-resources", doc, "")
	require.Equal(t, http.StatusOK, status, string(raw))
}
