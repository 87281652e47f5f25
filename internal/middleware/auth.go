package middleware

import (
	"net/http"
	"strings"

	"github.com/scheduleboard/backend/internal/authz"
	"github.com/scheduleboard/backend/internal/token"

	"github.com/gin-gonic/gin"
)

const actorContextKey = "actor"

// Auth verifies the Bearer token and attaches the acting identity to the
// request context. Everything behind it can assume ActorFrom succeeds.
func Auth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "인증 토큰이 필요합니다."})
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		claims, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "토큰 검증에 실패했습니다."})
			return
		}

		c.Set(actorContextKey, authz.Actor{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})
		c.Next()
	}
}

// ActorFrom returns the identity attached by Auth.
func ActorFrom(c *gin.Context) (authz.Actor, bool) {
	value, exists := c.Get(actorContextKey)
	if !exists {
		return authz.Actor{}, false
	}
	actor, ok := value.(authz.Actor)
	return actor, ok
}
