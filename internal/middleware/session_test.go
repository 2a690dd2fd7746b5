package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/uturns/booking-agent/internal/localstore"
	"github.com/uturns/booking-agent/internal/models"
	"github.com/uturns/booking-agent/internal/store"
)

func TestRequireSessionBlocksWhenNotLogged(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sessions := store.NewSession(localstore.NewMemory())

	r := gin.New()
	r.Use(RequireSession(sessions))
	r.GET("/protegido", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protegido", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "not_logged")

	sessions.SetLogged(models.User{ID: "u1"}, "tok")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protegido", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSMiddlewareAnswersPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
