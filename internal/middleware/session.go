package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uturns/booking-agent/internal/store"
)

// RequireSession barra operações que precisam de sessão ativa.
func RequireSession(sessions *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.Get().IsLogged {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not_logged"})
			return
		}
		c.Next()
	}
}
