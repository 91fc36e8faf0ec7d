package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fuelogistics/internal/config"
	"fuelogistics/internal/controllers"
	"fuelogistics/internal/middleware"
	"fuelogistics/internal/store"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "fuelogistics_auth_test.db")
	db, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite", DSN: dbPath}, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	ac := controllers.NewAuthController(store.NewUserStore(db))

	r := gin.New()
	r.POST("/api/register", ac.Register)
	r.POST("/api/login", ac.Login)
	r.GET("/api/user", middleware.RequireAuth(), ac.CurrentUser)
	return r
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"user"`
}

func TestRegisterThenLogin(t *testing.T) {
	r := newAuthRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/register", map[string]interface{}{
		"username": "dispatcher",
		"password": "hunter22",
		"role":     "user",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var reg authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reg))
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "dispatcher", reg.User.Username)
	// The password hash never leaves the server.
	assert.NotContains(t, rec.Body.String(), "password")

	rec = doJSON(t, r, http.MethodPost, "/api/login", map[string]interface{}{
		"username": "dispatcher",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var login authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.NotEmpty(t, login.Token)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	r := newAuthRouter(t)

	body := map[string]interface{}{"username": "dup", "password": "pw123456", "role": "user"}
	rec := doJSON(t, r, http.MethodPost, "/api/register", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/register", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username already exists")
}

func TestRegisterValidatesRole(t *testing.T) {
	r := newAuthRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/register", map[string]interface{}{
		"username": "someone",
		"password": "pw123456",
		"role":     "superuser",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, violatedFields(t, rec), "role")
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r := newAuthRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/register", map[string]interface{}{
		"username": "dispatcher",
		"password": "hunter22",
		"role":     "user",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/login", map[string]interface{}{
		"username": "dispatcher",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/login", map[string]interface{}{
		"username": "nobody",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCurrentUserRequiresToken(t *testing.T) {
	r := newAuthRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/user", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	reg := doJSON(t, r, http.MethodPost, "/api/register", map[string]interface{}{
		"username": "dispatcher",
		"password": "hunter22",
		"role":     "admin",
	})
	require.Equal(t, http.StatusCreated, reg.Code)
	var resp authResponse
	require.NoError(t, json.Unmarshal(reg.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec2 := httptest.NewRecorder()
	r.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusOK, rec2.Code)
	assert.Contains(t, rec2.Body.String(), "dispatcher")
}
