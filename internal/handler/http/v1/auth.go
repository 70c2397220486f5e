package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/road_hazard_map/internal/session"
	"github.com/sirupsen/logrus"
)

const sessionContextKey = "session"

// SessionAuthMiddleware - middleware для аутентификации по токену сессии.
// Найденная сессия кладется в контекст запроса.
func SessionAuthMiddleware(store *session.Store, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Session-Token")
		if token == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if token == "" {
			log.Warn("Session token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
			return
		}

		sess, ok := store.Get(token)
		if !ok {
			log.Warn("Unknown or expired session token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// RequireLoginMiddleware пропускает только сессии с активным входом.
// Сессия после logout остается читаемой, но не дает доступа к данным.
func RequireLoginMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFromContext(c)
		if !ok || !sess.LoggedIn {
			log.Warn("Request without active login")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Next()
	}
}

// sessionFromContext возвращает сессию, сохраненную middleware
func sessionFromContext(c *gin.Context) (session.Session, bool) {
	value, ok := c.Get(sessionContextKey)
	if !ok {
		return session.Session{}, false
	}
	sess, ok := value.(session.Session)
	return sess, ok
}
