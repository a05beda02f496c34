package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCORSRouter(handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(CORS())
	router.Any("/test", handler)
	return router
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		expectedStatus int
	}{
		{"GET passes through with CORS headers", http.MethodGet, http.StatusOK},
		{"POST passes through with CORS headers", http.MethodPost, http.StatusOK},
		{"PUT passes through with CORS headers", http.MethodPut, http.StatusOK},
		{"PATCH passes through with CORS headers", http.MethodPatch, http.StatusOK},
		{"DELETE passes through with CORS headers", http.MethodDelete, http.StatusOK},
		{"OPTIONS preflight returns 204", http.MethodOptions, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCORSRouter(func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/test", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, POST, PUT, PATCH, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Origin, Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
			assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
		})
	}
}

func TestCORS_PreflightDoesNotReachHandler(t *testing.T) {
	handlerCalled := false
	router := newCORSRouter(func(c *gin.Context) {
		handlerCalled = true
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, handlerCalled)
}
