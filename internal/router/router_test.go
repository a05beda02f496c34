package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trekheaven/internal/handler"
	"trekheaven/internal/service/mocks"
	"trekheaven/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	authService := &mocks.MockAuthService{}

	return Setup(&Config{
		AuthHandler:         handler.NewAuthHandler(authService),
		TrekHandler:         handler.NewTrekHandler(&mocks.MockTrekService{}),
		RegistrationHandler: handler.NewRegistrationHandler(&mocks.MockRegistrationService{}),
		BlogHandler:         handler.NewBlogHandler(&mocks.MockBlogService{}),
		UploadHandler:       handler.NewUploadHandler(nil),
		JWTManager:          auth.NewJWTManager("test-secret", time.Hour),
		AuthService:         authService,
	})
}

func TestUploadRoutes_Auth(t *testing.T) {
	router := newTestRouter()

	t.Run("anonymous upload echo succeeds", func(t *testing.T) {
		body, err := json.Marshal(map[string]interface{}{
			"urls": []string{"https://cdn.example.com/summit.jpg"},
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
		data := resp["data"].(map[string]interface{})
		assert.Equal(t, []interface{}{"https://cdn.example.com/summit.jpg"}, data["urls"])
	})

	t.Run("anonymous upload with empty body gets 400 not 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("anonymous presign is rejected", func(t *testing.T) {
		body := []byte(`{"fileName":"summit.jpg","contentType":"image/jpeg"}`)

		req := httptest.NewRequest(http.MethodPost, "/api/upload/presign", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
