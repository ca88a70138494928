package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/ranch_roi_server/config"
	"github.com/qs3c/ranch_roi_server/internal/api/middleware"
	"github.com/qs3c/ranch_roi_server/internal/model/dto"
	"github.com/qs3c/ranch_roi_server/internal/pkg/response"
	"github.com/qs3c/ranch_roi_server/internal/repository"
	"github.com/qs3c/ranch_roi_server/internal/service"
	"github.com/qs3c/ranch_roi_server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp
}

// mockAuth injects a fixed user ID, bypassing the JWT middleware.
func mockAuth(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func setupAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	userRepo := repository.NewUserRepository(db)
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret-key", ExpireHours: 24},
	}

	return NewAuthHandler(service.NewAuthService(userRepo, cfg))
}

func TestAuthHandler_WalletLogin_Success(t *testing.T) {
	handler := setupAuthHandler(t)

	router := gin.New()
	router.POST("/wallet-login", handler.WalletLogin)

	req := dto.WalletLoginRequest{
		WalletAddress: "0x1234567890abcdef1234567890abcdef12345678",
		Username:      "rancher_joe",
	}

	w := performRequest(router, "POST", "/wallet-login", req)
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.CodeSuccess, resp.Code)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var loginResp dto.WalletLoginResponse
	require.NoError(t, json.Unmarshal(data, &loginResp))
	assert.NotEmpty(t, loginResp.Token)
	assert.Equal(t, "rancher_joe", loginResp.User.Username)
}

func TestAuthHandler_WalletLogin_AddressTooShort(t *testing.T) {
	handler := setupAuthHandler(t)

	router := gin.New()
	router.POST("/wallet-login", handler.WalletLogin)

	w := performRequest(router, "POST", "/wallet-login", dto.WalletLoginRequest{
		WalletAddress: "0x12",
	})
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.CodeParamError, resp.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	userRepo := repository.NewUserRepository(db)
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "s", ExpireHours: 24}}
	handler := NewAuthHandler(service.NewAuthService(userRepo, cfg))

	user := testutil.TestUser(t, db)

	router := gin.New()
	router.GET("/me", mockAuth(user.ID), handler.Me)

	w := performRequest(router, "GET", "/me", nil)
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeSuccess, resp.Code)
}

func TestAuthHandler_Me_UserGone(t *testing.T) {
	handler := setupAuthHandler(t)

	router := gin.New()
	router.GET("/me", mockAuth(99999), handler.Me)

	w := performRequest(router, "GET", "/me", nil)
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeResourceNotFound, resp.Code)
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	handler := setupAuthHandler(t)

	router := gin.New()
	router.GET("/me", handler.Me)

	w := performRequest(router, "GET", "/me", nil)
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeAuthFailed, resp.Code)
}
