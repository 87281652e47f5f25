package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/scheduleboard/backend/internal/authz"
	"github.com/scheduleboard/backend/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789abcdef"

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthEngine(tokens *token.Manager, extra ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	handlers := append([]gin.HandlerFunc{Auth(tokens)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		actor, _ := ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"userId": actor.UserID, "role": actor.Role})
	})
	engine.GET("/probe", handlers...)
	return engine
}

func doRequest(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAuthMissingHeader(t *testing.T) {
	tokens := token.NewManager(testSecret, time.Hour)
	engine := newAuthEngine(tokens)

	rec := doRequest(engine, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMalformedHeader(t *testing.T) {
	tokens := token.NewManager(testSecret, time.Hour)
	engine := newAuthEngine(tokens)

	rec := doRequest(engine, "Basic xyz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthInvalidToken(t *testing.T) {
	tokens := token.NewManager(testSecret, time.Hour)
	engine := newAuthEngine(tokens)

	rec := doRequest(engine, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthExpiredToken(t *testing.T) {
	expired := token.NewManager(testSecret, -time.Minute)
	raw, err := expired.Generate("user-1", "alice@example.com", authz.RoleUser)
	require.NoError(t, err)

	engine := newAuthEngine(token.NewManager(testSecret, time.Hour))
	rec := doRequest(engine, "Bearer "+raw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthAttachesActor(t *testing.T) {
	tokens := token.NewManager(testSecret, time.Hour)
	raw, err := tokens.Generate("user-1", "alice@example.com", authz.RoleUser)
	require.NoError(t, err)

	engine := newAuthEngine(tokens)
	rec := doRequest(engine, "Bearer "+raw)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-1")
	assert.Contains(t, rec.Body.String(), authz.RoleUser)
}

func TestRequireRole(t *testing.T) {
	tokens := token.NewManager(testSecret, time.Hour)
	engine := newAuthEngine(tokens, RequireRole(authz.RoleAdmin))

	userToken, err := tokens.Generate("user-1", "alice@example.com", authz.RoleUser)
	require.NoError(t, err)
	adminToken, err := tokens.Generate("admin-1", "admin@example.com", authz.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, doRequest(engine, "Bearer "+userToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(engine, "Bearer "+adminToken).Code)
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(time.Minute, 2, "too many requests")

	engine := gin.New()
	engine.GET("/probe", limiter.Handler(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "too many requests")
}
