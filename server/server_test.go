package server_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	miit "github.com/metalteco/miit-api"
	"github.com/metalteco/miit-api/repository"
	"github.com/metalteco/miit-api/server"
)

type testConfig struct {
	superuserName       string
	superuserSecretHash string
}

func (c *testConfig) GetSigningKey() string          { return "server-test-key" }
func (c *testConfig) GetSigningMethod() string       { return "HS256" }
func (c *testConfig) GetIssuer() string              { return "test-issuer" }
func (c *testConfig) GetAudience() []string          { return []string{"test-audience"} }
func (c *testConfig) GetAccessTokenExpiration() int  { return 30 }
func (c *testConfig) GetRefreshTokenExpiration() int { return 7 }
func (c *testConfig) GetSuperuserName() string       { return c.superuserName }
func (c *testConfig) GetSuperuserSecretHash() string { return c.superuserSecretHash }

type quietLogger struct{}

func (quietLogger) Debug(format string, args ...any) {}
func (quietLogger) Info(format string, args ...any)  {}
func (quietLogger) Warn(format string, args ...any)  {}
func (quietLogger) Error(format string, args ...any) {}

type testStack struct {
	repo   repository.Manager
	auther *miit.Auther
	srv    *server.Server
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	assert.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	assert.NoError(t, repository.CreateSchema(context.Background(), db))

	cfg := &testConfig{}
	repo := repository.NewManager(db)

	tokens, err := miit.NewTokenService(cfg, quietLogger{})
	assert.NoError(t, err)

	auther := miit.NewAuthenticator(repo.Users(), tokens, cfg).WithLogger(quietLogger{})
	srv := server.New(auther, repo, server.WithLogger(quietLogger{}))

	return &testStack{repo: repo, auther: auther, srv: srv}
}

func (s *testStack) createUser(t *testing.T, nickname, password string, role miit.Role) {
	t.Helper()

	hash, err := miit.HashPassword(password)
	assert.NoError(t, err)

	_, err = s.repo.Users().Create(context.Background(), &miit.User{
		Nickname:     nickname,
		FullName:     "Test " + nickname,
		Email:        nickname + "@example.com",
		PasswordHash: hash,
		Active:       true,
		RoleID:       role,
		RoleName:     role.Name(),
	})
	assert.NoError(t, err)
}

func (s *testStack) tokenFor(t *testing.T, nickname, password string) string {
	t.Helper()

	token, err := s.auther.Login(context.Background(), nickname, password)
	assert.NoError(t, err)

	return token
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	StatusName string          `json:"status_name"`
	Message    string          `json:"message"`
	Token      string          `json:"token"`
	Data       json.RawMessage `json:"data"`
}

func (s *testStack) do(t *testing.T, method, path, token string, body any) (*http.Response, envelope) {
	t.Helper()

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		payload = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, payload)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.srv.App().Test(req, -1)
	assert.NoError(t, err)

	var env envelope
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, resp.StatusCode, env.StatusCode)

	return resp, env
}

func TestAuthEndpoints(t *testing.T) {
	stack := newTestStack(t)
	stack.createUser(t, "operator", "operator-pass", miit.RoleOperator)

	t.Run("login returns a token", func(t *testing.T) {
		resp, env := stack.do(t, http.MethodPost, "/auth/login", "", map[string]string{
			"username": "operator",
			"password": "operator-pass",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, env.Token)
	})

	t.Run("login rejects bad credentials", func(t *testing.T) {
		resp, env := stack.do(t, http.MethodPost, "/auth/login", "", map[string]string{
			"username": "operator",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Empty(t, env.Token)
		assert.NotEmpty(t, env.Message)
	})

	t.Run("login validates the payload", func(t *testing.T) {
		resp, _ := stack.do(t, http.MethodPost, "/auth/login", "", map[string]string{
			"username": "operator",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("refresh exchanges a live token", func(t *testing.T) {
		token := stack.tokenFor(t, "operator", "operator-pass")

		resp, env := stack.do(t, http.MethodPost, "/auth/refresh", "", map[string]string{
			"token": token,
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, env.Token)
		assert.NotEqual(t, token, env.Token)
	})

	t.Run("refresh rejects garbage", func(t *testing.T) {
		resp, _ := stack.do(t, http.MethodPost, "/auth/refresh", "", map[string]string{
			"token": "not.a.token",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("me returns the authenticated profile", func(t *testing.T) {
		token := stack.tokenFor(t, "operator", "operator-pass")

		resp, env := stack.do(t, http.MethodGet, "/auth/me", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var profile miit.UserResponse
		assert.NoError(t, json.Unmarshal(env.Data, &profile))
		assert.Equal(t, "operator", profile.Nickname)
		assert.Equal(t, miit.RoleOperator, profile.RoleID)
	})

	t.Run("me requires a token", func(t *testing.T) {
		resp, _ := stack.do(t, http.MethodGet, "/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("responses carry the process time header", func(t *testing.T) {
		resp, _ := stack.do(t, http.MethodPost, "/auth/login", "", map[string]string{
			"username": "operator",
			"password": "operator-pass",
		})
		assert.NotEmpty(t, resp.Header.Get("X-Process-Time"))
	})
}

func TestProtectedResources(t *testing.T) {
	stack := newTestStack(t)
	stack.createUser(t, "operator", "operator-pass", miit.RoleOperator)
	token := stack.tokenFor(t, "operator", "operator-pass")

	t.Run("rejects requests without a token", func(t *testing.T) {
		resp, _ := stack.do(t, http.MethodGet, "/fleets", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("fleet CRUD round trip", func(t *testing.T) {
		resp, env := stack.do(t, http.MethodPost, "/fleets", token, map[string]any{
			"kind":      "barcaza",
			"reference": "BG-101",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var created miit.FleetResponse
		assert.NoError(t, json.Unmarshal(env.Data, &created))
		assert.NotZero(t, created.ID)
		assert.True(t, created.Active)

		resp, env = stack.do(t, http.MethodGet, "/fleets", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var listed []miit.FleetResponse
		assert.NoError(t, json.Unmarshal(env.Data, &listed))
		assert.Len(t, listed, 1)

		resp, env = stack.do(t, http.MethodPut, "/fleets/1", token, map[string]any{
			"reference": "BG-101-R",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var updated miit.FleetResponse
		assert.NoError(t, json.Unmarshal(env.Data, &updated))
		assert.Equal(t, "BG-101-R", updated.Reference)

		resp, env = stack.do(t, http.MethodPut, "/fleets/1", token, map[string]any{
			"is_active": false,
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NoError(t, json.Unmarshal(env.Data, &updated))
		assert.False(t, updated.Active)
		assert.Equal(t, "BG-101-R", updated.Reference)

		resp, _ = stack.do(t, http.MethodDelete, "/fleets/1", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = stack.do(t, http.MethodGet, "/fleets/1", token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("create validates the payload", func(t *testing.T) {
		resp, _ := stack.do(t, http.MethodPost, "/fleets", token, map[string]any{
			"kind": "barcaza",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("get rejects a non numeric id", func(t *testing.T) {
		resp, _ := stack.do(t, http.MethodGet, "/fleets/abc", token, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUsersRoleGate(t *testing.T) {
	stack := newTestStack(t)
	stack.createUser(t, "operator", "operator-pass", miit.RoleOperator)
	stack.createUser(t, "admin", "admin-pass", miit.RoleAdministrator)

	t.Run("operators cannot manage accounts", func(t *testing.T) {
		token := stack.tokenFor(t, "operator", "operator-pass")

		resp, _ := stack.do(t, http.MethodGet, "/users", token, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("administrators can", func(t *testing.T) {
		token := stack.tokenFor(t, "admin", "admin-pass")

		resp, env := stack.do(t, http.MethodGet, "/users", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var listed []miit.UserResponse
		assert.NoError(t, json.Unmarshal(env.Data, &listed))
		assert.Len(t, listed, 2)
	})

	t.Run("admin creates an account that can then log in", func(t *testing.T) {
		token := stack.tokenFor(t, "admin", "admin-pass")

		resp, _ := stack.do(t, http.MethodPost, "/users", token, map[string]any{
			"nick_name": "weigher",
			"full_name": "Scale House",
			"email":     "weigher@example.com",
			"password":  "weigher-pass-1",
			"role_id":   int(miit.RoleOperator),
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		login := stack.tokenFor(t, "weigher", "weigher-pass-1")
		assert.NotEmpty(t, login)
	})
}

func TestMovementStorageResolution(t *testing.T) {
	stack := newTestStack(t)
	stack.createUser(t, "operator", "operator-pass", miit.RoleOperator)
	token := stack.tokenFor(t, "operator", "operator-pass")

	_, env := stack.do(t, http.MethodPost, "/storages", token, map[string]any{
		"name":     "patio norte",
		"capacity": 5000,
	})
	var storage miit.StorageResponse
	assert.NoError(t, json.Unmarshal(env.Data, &storage))

	_, env = stack.do(t, http.MethodPost, "/materials", token, map[string]any{
		"name": "carbon",
	})
	var material miit.MaterialResponse
	assert.NoError(t, json.Unmarshal(env.Data, &material))

	t.Run("resolves the storage by name", func(t *testing.T) {
		resp, env := stack.do(t, http.MethodPost, "/movements", token, map[string]any{
			"kind":         miit.MovementKindIn,
			"storage_name": "patio norte",
			"material_id":  material.ID,
			"quantity":     120.5,
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var created miit.MovementResponse
		assert.NoError(t, json.Unmarshal(env.Data, &created))
		assert.Equal(t, storage.ID, created.StorageID)
	})

	t.Run("rejects an unknown storage name", func(t *testing.T) {
		resp, _ := stack.do(t, http.MethodPost, "/movements", token, map[string]any{
			"kind":         miit.MovementKindIn,
			"storage_name": "patio fantasma",
			"material_id":  material.ID,
			"quantity":     1,
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("requires either id or name", func(t *testing.T) {
		resp, _ := stack.do(t, http.MethodPost, "/movements", token, map[string]any{
			"kind":        miit.MovementKindIn,
			"material_id": material.ID,
			"quantity":    1,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestSuperuserFlow(t *testing.T) {
	hash, err := miit.HashPassword("master-key-0000")
	assert.NoError(t, err)

	stack := newTestStack(t)

	// rebuild with a configured superuser
	cfg := &testConfig{superuserName: "root", superuserSecretHash: hash}
	tokens, err := miit.NewTokenService(cfg, quietLogger{})
	assert.NoError(t, err)
	stack.auther = miit.NewAuthenticator(stack.repo.Users(), tokens, cfg).WithLogger(quietLogger{})
	stack.srv = server.New(stack.auther, stack.repo, server.WithLogger(quietLogger{}))

	t.Run("superuser logs in and reaches admin routes", func(t *testing.T) {
		resp, env := stack.do(t, http.MethodPost, "/auth/login", "", map[string]string{
			"username": "root",
			"password": "master-key-0000",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, env.Token)

		resp, _ = stack.do(t, http.MethodGet, "/users", env.Token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
