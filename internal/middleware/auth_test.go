package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmesh/meshnet-backend/internal/models"
)

// mockUserStore implements store.UserStore
type mockUserStore struct {
	findByKeyFunc func(ctx context.Context, key string) (*models.User, error)
	saveFunc      func(ctx context.Context, user *models.User) error
}

func (m *mockUserStore) FindUserByKey(ctx context.Context, key string) (*models.User, error) {
	return m.findByKeyFunc(ctx, key)
}

func (m *mockUserStore) FindUserByName(ctx context.Context, name string) (*models.User, error) {
	return nil, nil
}

func (m *mockUserStore) SaveUser(ctx context.Context, user *models.User) error {
	if m.saveFunc == nil {
		return nil
	}
	return m.saveFunc(ctx, user)
}

func (m *mockUserStore) ListPublicUsers(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	return nil, 0, nil
}

func authRequest(t *testing.T, users *mockUserStore, apiKey string, setHeader bool) (*httptest.ResponseRecorder, *models.User) {
	t.Helper()

	var seen *models.User
	handler := Auth(users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	if setHeader {
		req.Header.Set(APIKeyHeader, apiKey)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr, seen
}

func TestAuthMissingHeader(t *testing.T) {
	rr, seen := authRequest(t, &mockUserStore{}, "", false)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "API key header is missing\n", rr.Body.String())
	assert.Nil(t, seen)
}

func TestAuthMalformedKey(t *testing.T) {
	rr, seen := authRequest(t, &mockUserStore{}, "k\xc3\xa9y", true)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid API key format\n", rr.Body.String())
	assert.Nil(t, seen)
}

func TestAuthStorageFailure(t *testing.T) {
	users := &mockUserStore{
		findByKeyFunc: func(ctx context.Context, key string) (*models.User, error) {
			return nil, errors.New("connection reset")
		},
	}
	rr, seen := authRequest(t, users, "some-key", true)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "An error occured while trying to fetch user\n", rr.Body.String())
	assert.Nil(t, seen)
}

func TestAuthUnknownKey(t *testing.T) {
	users := &mockUserStore{
		findByKeyFunc: func(ctx context.Context, key string) (*models.User, error) {
			return nil, nil
		},
	}
	rr, seen := authRequest(t, users, "nope", true)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid API key\n", rr.Body.String())
	assert.Nil(t, seen)
}

func TestAuthStampsLastAccessBeforeHandler(t *testing.T) {
	user := &models.User{Key: "key-a", Name: "alice"}
	var stampAtSave int64
	users := &mockUserStore{
		findByKeyFunc: func(ctx context.Context, key string) (*models.User, error) {
			require.Equal(t, "key-a", key)
			return user, nil
		},
		saveFunc: func(ctx context.Context, saved *models.User) error {
			stampAtSave = saved.LastAccessStamp
			return nil
		},
	}

	rr, seen := authRequest(t, users, "key-a", true)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "alice", seen.Name)
	// the stamp was written and persisted before the handler ran
	assert.Positive(t, stampAtSave)
	assert.Equal(t, stampAtSave, seen.LastAccessStamp)
}

func TestAuthSaveFailure(t *testing.T) {
	users := &mockUserStore{
		findByKeyFunc: func(ctx context.Context, key string) (*models.User, error) {
			return &models.User{Key: key}, nil
		},
		saveFunc: func(ctx context.Context, user *models.User) error {
			return errors.New("write concern failed")
		},
	}
	rr, seen := authRequest(t, users, "key-a", true)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "An error occured while trying to save user\n", rr.Body.String())
	assert.Nil(t, seen)
}
