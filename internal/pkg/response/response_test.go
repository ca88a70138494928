package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(t *testing.T, fn func(c *gin.Context)) *Response {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return &resp
}

func TestSuccess(t *testing.T) {
	resp := record(t, func(c *gin.Context) {
		Success(c, gin.H{"hello": "world"})
	})

	assert.Equal(t, CodeSuccess, resp.Code)
	assert.Equal(t, "success", resp.Message)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "world", data["hello"])
}

func TestSuccessWithMessage(t *testing.T) {
	resp := record(t, func(c *gin.Context) {
		SuccessWithMessage(c, "done", nil)
	})

	assert.Equal(t, CodeSuccess, resp.Code)
	assert.Equal(t, "done", resp.Message)
}

func TestError_DefaultMessages(t *testing.T) {
	cases := []struct {
		name string
		fn   func(c *gin.Context)
		code int
	}{
		{"param", func(c *gin.Context) { ParamError(c, "") }, CodeParamError},
		{"auth", func(c *gin.Context) { AuthError(c, "") }, CodeAuthFailed},
		{"permission", func(c *gin.Context) { PermissionError(c, "") }, CodePermissionDenied},
		{"not found", func(c *gin.Context) { NotFoundError(c, "") }, CodeResourceNotFound},
		{"payment", func(c *gin.Context) { PaymentError(c, "") }, CodePaymentFailed},
		{"price", func(c *gin.Context) { PriceError(c, "") }, CodePriceUnavailable},
		{"server", func(c *gin.Context) { ServerError(c, "") }, CodeServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := record(t, tc.fn)
			assert.Equal(t, tc.code, resp.Code)
			assert.Equal(t, codeMessages[tc.code], resp.Message)
			assert.Nil(t, resp.Data)
		})
	}
}

func TestError_CustomMessage(t *testing.T) {
	resp := record(t, func(c *gin.Context) {
		Error(c, CodePriceUnavailable, "行情数据源不可用")
	})

	assert.Equal(t, CodePriceUnavailable, resp.Code)
	assert.Equal(t, "行情数据源不可用", resp.Message)
}
