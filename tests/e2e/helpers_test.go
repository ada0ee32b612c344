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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres/testhelper"
	userrepo "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres/user"
	"github.com/limopeace/beatlenut-trails-sub002/internal/adapter/storage"
	"github.com/limopeace/beatlenut-trails-sub002/internal/app"
	"github.com/limopeace/beatlenut-trails-sub002/internal/config"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/internal/transport/middleware"
)

// testServer wraps the full-stack HTTP server for E2E tests.
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

// setupTestServer bootstraps the application router backed by a real
// PostgreSQL container (shared via testhelper). Realtime delivery is off.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	// The pool comes from testhelper; the DSN only has to pass validation.
	t.Setenv("DATABASE_DSN", "postgres://unused")
	t.Setenv("AUTH_JWT_SECRET", "test-secret-at-least-32-chars-long!!")
	t.Setenv("RATE_LIMIT_AUTH_PER_MINUTE", "1000")
	t.Setenv("RATE_LIMIT_MESSAGES_PER_MINUTE", "0")
	t.Setenv("STORAGE_UPLOAD_DIR", t.TempDir())
	t.Setenv("CONFIG_PATH", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	store, err := storage.NewLocal(cfg.Storage)
	require.NoError(t, err)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(app.NewHandler(cfg, logger, pool, app.DisabledEvents(), store, limiter))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// envelope mirrors the JSON body every API response uses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

// call sends a JSON request and decodes the envelope.
func (ts *testServer) call(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

// data unmarshals the envelope payload into a generic map.
func data(t *testing.T, env envelope) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func items(t *testing.T, env envelope) []map[string]any {
	t.Helper()
	var page struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	return page.Items
}

func uniqueEmail(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8] + "@example.com"
}

type session struct {
	UserID string
	Email  string
	Token  string
}

// registerBuyer creates a buyer account through the API.
func registerBuyer(t *testing.T, ts *testServer) session {
	t.Helper()

	email := uniqueEmail("buyer")
	status, env := ts.call(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Test Buyer",
		"email":    email,
		"password": "securepassword123",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	return sessionFrom(t, env, email)
}

// registerSeller creates a pending seller through the API.
func registerSeller(t *testing.T, ts *testServer) session {
	t.Helper()

	email := uniqueEmail("seller")
	status, env := ts.call(t, http.MethodPost, "/api/auth/register/seller", "", map[string]string{
		"name":          "Test Seller",
		"email":         email,
		"password":      "securepassword123",
		"businessName":  "Veteran Crafts " + uuid.New().String()[:6],
		"serviceBranch": "army",
		"rank":          "Havildar",
		"category":      "handicrafts",
		"city":          "Pune",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	return sessionFrom(t, env, email)
}

// loginAdmin creates a user, promotes it to admin in the database and logs
// in through the admin endpoint.
func loginAdmin(t *testing.T, ts *testServer) session {
	t.Helper()

	buyer := registerBuyer(t, ts)
	require.NoError(t, userrepo.New(ts.Pool).UpdateRole(context.Background(), buyer.Email, domain.UserRoleAdmin))

	status, env := ts.call(t, http.MethodPost, "/api/auth/admin/login", "", map[string]string{
		"email":    buyer.Email,
		"password": "securepassword123",
	})
	require.Equal(t, http.StatusOK, status, env.Message)
	return sessionFrom(t, env, buyer.Email)
}

func sessionFrom(t *testing.T, env envelope, email string) session {
	t.Helper()
	d := data(t, env)
	user, ok := d["user"].(map[string]any)
	require.True(t, ok, "expected user object in response")
	token, _ := d["accessToken"].(string)
	require.NotEmpty(t, token)
	return session{UserID: user["id"].(string), Email: email, Token: token}
}

// pendingApproval finds the single pending approval of the given type whose
// requester or item matches search.
func pendingApproval(t *testing.T, ts *testServer, admin session, approvalType, search string) map[string]any {
	t.Helper()

	path := "/api/admin/approvals?status=pending&type=" + approvalType + "&search=" + url.QueryEscape(search)
	status, env := ts.call(t, http.MethodGet, path, admin.Token, nil)
	require.Equal(t, http.StatusOK, status, env.Message)

	list := items(t, env)
	require.Len(t, list, 1, "expected exactly one pending %s approval for %q", approvalType, search)
	return list[0]
}
