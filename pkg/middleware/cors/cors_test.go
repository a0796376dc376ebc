package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(mw gin.HandlerFunc, method, origin string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	req := httptest.NewRequest(method, "/", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAllowAllByDefault(t *testing.T) {
	w := serve(New(nil), http.MethodGet, "http://any.test")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRestrictedOrigins(t *testing.T) {
	mw := New([]string{"http://siakad.test/"})

	w := serve(mw, http.MethodGet, "http://siakad.test")
	assert.Equal(t, "http://siakad.test", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(mw, http.MethodGet, "http://evil.test")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestPreflightShortCircuits(t *testing.T) {
	w := serve(New(nil), http.MethodOptions, "http://any.test")
	assert.Equal(t, http.StatusNoContent, w.Code)
}
