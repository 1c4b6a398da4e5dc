package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
	"storefront/internal/session"
)

// Claves del contexto de request. La identidad viaja explícita en el
// contexto de cada request, nunca en estado global del proceso
const (
	ctxUserID       = "user_id"
	ctxRole         = "role"
	ctxSessionToken = "session_token"
)

const sessionCookie = "session_token"

// SessionMiddleware resuelve el token de sesión (cookie o header) a una
// identidad y la deja en el contexto. No exige sesión: las rutas
// públicas siguen funcionando en modo anónimo
func SessionMiddleware(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Session-Token")
		if token == "" {
			if cookie, err := c.Cookie(sessionCookie); err == nil {
				token = cookie
			}
		}

		if token != "" {
			if identity, ok := sessions.Resolve(token); ok {
				c.Set(ctxUserID, identity.UserID)
				c.Set(ctxRole, identity.Role)
				c.Set(ctxSessionToken, token)
			}
		}

		c.Next()
	}
}

// RequireAuth corta con 401 si no hay sesión resuelta
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ctxUserID); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin corta con 403 si el rol no es admin
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRole) != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "admin role required"})
			return
		}
		c.Next()
	}
}

// cartIDFrom devuelve el id de carrito del request: el usuario
// autenticado, o el carrito anónimo conocido
func cartIDFrom(c *gin.Context) string {
	if userID := c.GetString(ctxUserID); userID != "" {
		return userID
	}
	return models.DefaultCartID
}
