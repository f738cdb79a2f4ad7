package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/domain/identity"
	"github.com/ledgerline/backend/internal/infrastructure/auth"
)

// memoryBlacklist keeps revoked jtis in a map for testing.
type memoryBlacklist struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newMemoryBlacklist() *memoryBlacklist {
	return &memoryBlacklist{revoked: make(map[string]bool)}
}

func (b *memoryBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[jti] = true
	return nil
}

func (b *memoryBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.revoked[jti], nil
}

func (b *memoryBlacklist) RevokeAllForUser(ctx context.Context, userID string, ttl time.Duration) error {
	return nil
}

func (b *memoryBlacklist) IsUserTokenInvalidated(ctx context.Context, userID string, issuedAt time.Time) (bool, error) {
	return false, nil
}

func newJWTTestSetup(t *testing.T, blacklist auth.TokenBlacklist) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService, err := auth.NewJWTService("middleware-test-secret", "ledgerline-test", 15*time.Minute, time.Hour)
	require.NoError(t, err)

	engine := gin.New()
	engine.Use(JWT(jwtService, blacklist, zap.NewNop(), JWTConfig{
		SkipPaths: []string{"/open"},
	}))
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
	engine.GET("/open", ok)
	engine.GET("/protected", ok)
	return engine, jwtService
}

func issueToken(t *testing.T, jwtService *auth.JWTService, superuser bool) *auth.TokenPair {
	t.Helper()
	pair, err := jwtService.GenerateTokenPair(auth.TokenSubject{
		UserID:    uuid.New(),
		Username:  "alice",
		Superuser: superuser,
	})
	require.NoError(t, err)
	return pair
}

func TestJWT_SkipPathBypassesAuth(t *testing.T) {
	engine, _ := newJWTTestSetup(t, auth.NoopTokenBlacklist{})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/open", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWT_MissingTokenRejected(t *testing.T) {
	engine, _ := newJWTTestSetup(t, auth.NoopTokenBlacklist{})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWT_ValidTokenAccepted(t *testing.T) {
	engine, jwtService := newJWTTestSetup(t, auth.NoopTokenBlacklist{})
	pair := issueToken(t, jwtService, false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWT_RefreshTokenRejectedOnAccessRoute(t *testing.T) {
	engine, jwtService := newJWTTestSetup(t, auth.NoopTokenBlacklist{})
	pair := issueToken(t, jwtService, false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWT_RevokedTokenRejected(t *testing.T) {
	blacklist := newMemoryBlacklist()
	engine, jwtService := newJWTTestSetup(t, blacklist)
	pair := issueToken(t, jwtService, false)

	claims, err := jwtService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	require.NoError(t, blacklist.Revoke(context.Background(), claims.ID, time.Minute))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSuperuser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	regular, err := identity.NewUser("bob", "Bob", "bob@example.com", "password123")
	require.NoError(t, err)
	admin, err := identity.NewSuperuser("root", "Root", "root@example.com", "password123")
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		user *identity.User
		want int
	}{
		{"regular user forbidden", regular, http.StatusForbidden},
		{"superuser allowed", admin, http.StatusOK},
	} {
		t.Run(tc.name, func(t *testing.T) {
			engine := gin.New()
			engine.Use(func(c *gin.Context) {
				c.Set(ContextKeyUser, tc.user)
				c.Next()
			})
			engine.GET("/admin", RequireSuperuser(), func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"ok": true})
			})

			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
