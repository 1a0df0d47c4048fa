package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"omerald-service/internal/app/models"
	"omerald-service/internal/pkg/constvars"
	"omerald-service/internal/pkg/exceptions"
	"omerald-service/internal/pkg/utils"
	"strings"

	"github.com/goccy/go-json"
)

// Session authenticates the request with a bearer token, loads the session
// record from redis and stores it in the request context.
func (m *Middlewares) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		cached, err := m.RedisRepository.Get(r.Context(), fmt.Sprintf(constvars.CacheKeySession, sessionID))
		if err != nil || cached == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(err))
			return
		}

		session := new(models.Session)
		if err := json.Unmarshal([]byte(cached), session); err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextSessionData, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
