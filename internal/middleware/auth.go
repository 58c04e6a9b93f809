package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/openmesh/meshnet-backend/internal/models"
	"github.com/openmesh/meshnet-backend/internal/store"
	"github.com/openmesh/meshnet-backend/pkg/utils"
)

// APIKeyHeader carries the caller's API key.
const APIKeyHeader = "x-api-key"

type contextKey int

const userContextKey contextKey = 0

// UserFromContext returns the user stored by Auth, or nil outside of an
// authenticated route.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}

// Auth resolves the x-api-key header to a user record. The last-access stamp
// is written back before the handler runs: successful authentication is
// itself recorded. Endpoint usage counters are left to the handlers.
func Auth(users store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get(APIKeyHeader)
			if apiKey == "" {
				http.Error(w, "API key header is missing", http.StatusBadRequest)
				return
			}
			if !isASCII(apiKey) {
				http.Error(w, "Invalid API key format", http.StatusBadRequest)
				return
			}

			user, err := users.FindUserByKey(r.Context(), apiKey)
			if err != nil {
				log.Printf("auth: fetching user failed: %v", err)
				http.Error(w, "An error occured while trying to fetch user", http.StatusInternalServerError)
				return
			}
			if user == nil {
				http.Error(w, "Invalid API key", http.StatusUnauthorized)
				return
			}

			user.LastAccessStamp = utils.NowNanos()
			if err := users.SaveUser(r.Context(), user); err != nil {
				log.Printf("auth: saving user failed: %v", err)
				http.Error(w, "An error occured while trying to save user", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}
