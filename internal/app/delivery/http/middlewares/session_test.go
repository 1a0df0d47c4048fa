package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"omerald-service/internal/app/config"
	"omerald-service/internal/app/models"
	"omerald-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	entries map[string]string
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = string(encoded)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.entries[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

func TestSessionMiddleware(t *testing.T) {
	secret := "test-secret"
	middlewares := &Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: &config.InternalConfig{JWT: config.JWT{Secret: secret}},
		RedisRepository: &fakeRedisRepository{entries: map[string]string{
			fmt.Sprintf(constvars.CacheKeySession, "sess-1"): `{"session_id":"sess-1","user_id":"user-1","phone_number":"111"}`,
		}},
	}

	signToken := func(t *testing.T, sessionID, signingSecret string) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"session_id": sessionID})
		signed, err := token.SignedString([]byte(signingSecret))
		require.NoError(t, err)
		return signed
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := r.Context().Value(constvars.ContextSessionData).(*models.Session)
		require.True(t, ok, "session should be stored in context")
		assert.Equal(t, "user-1", session.UserID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token loads the session", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/reports", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signToken(t, "sess-1", secret))

		rr := httptest.NewRecorder()
		middlewares.Session(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/reports", nil)

		rr := httptest.NewRecorder()
		middlewares.Session(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("non bearer header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/reports", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Basic abc")

		rr := httptest.NewRecorder()
		middlewares.Session(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("wrong signature is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/reports", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signToken(t, "sess-1", "other-secret"))

		rr := httptest.NewRecorder()
		middlewares.Session(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unknown session is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/reports", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signToken(t, "sess-gone", secret))

		rr := httptest.NewRecorder()
		middlewares.Session(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
