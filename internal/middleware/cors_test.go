package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORS(origins))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
	return r
}

func corsRequest(r *gin.Engine, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORS_WildcardEchoesOrigin(t *testing.T) {
	r := corsRouter([]string{"*"})

	w := corsRequest(r, http.MethodGet, "https://app.beautypro.com.br")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.beautypro.com.br", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", w.Header().Get("Vary"))
}

func TestCORS_UnknownOriginGetsNoHeaders(t *testing.T) {
	r := corsRouter([]string{"https://app.beautypro.com.br"})

	w := corsRequest(r, http.MethodGet, "https://evil.example.com")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_AllowedOriginGetsHeaders(t *testing.T) {
	r := corsRouter([]string{"https://app.beautypro.com.br"})

	w := corsRequest(r, http.MethodGet, "https://app.beautypro.com.br")

	assert.Equal(t, "https://app.beautypro.com.br", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	r := corsRouter([]string{"*"})

	w := corsRequest(r, http.MethodOptions, "https://app.beautypro.com.br")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
