package handlers_test

import (
	"context"
	"errors"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/openmesh/meshnet-backend/internal/handlers"
	"github.com/openmesh/meshnet-backend/internal/models"
	"github.com/openmesh/meshnet-backend/internal/routes"
	"github.com/openmesh/meshnet-backend/pkg/utils"
)

var errStore = errors.New("storage failure")

// mockStore implements store.Store in memory.
type mockStore struct {
	users       map[string]*models.User // by key
	friendships []models.Friendship

	failFindUser    bool
	failSaveUser    bool
	failAreFriends  bool
	failSaveFriends bool
	failList        bool
}

func newMockStore() *mockStore {
	return &mockStore{users: make(map[string]*models.User)}
}

func (m *mockStore) addUser(user *models.User) {
	m.users[user.Key] = user
}

func (m *mockStore) FindUserByKey(ctx context.Context, key string) (*models.User, error) {
	if m.failFindUser {
		return nil, errStore
	}
	return m.users[key], nil
}

func (m *mockStore) FindUserByName(ctx context.Context, name string) (*models.User, error) {
	if m.failFindUser {
		return nil, errStore
	}
	name = utils.NormalizeName(name)
	for _, user := range m.users {
		if user.Name == name {
			return user, nil
		}
	}
	return nil, nil
}

func (m *mockStore) SaveUser(ctx context.Context, user *models.User) error {
	if m.failSaveUser {
		return errStore
	}
	m.users[user.Key] = user
	return nil
}

func (m *mockStore) ListPublicUsers(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	if m.failList {
		return nil, 0, errStore
	}
	var public []models.User
	for _, user := range m.users {
		if user.Settings.ShowProfile == models.DisclosurePublic {
			public = append(public, *user)
		}
	}
	sort.Slice(public, func(i, j int) bool { return public[i].Name < public[j].Name })

	total := int64(len(public))
	start := (page - 1) * pageSize
	if start > len(public) {
		start = len(public)
	}
	end := start + pageSize
	if end > len(public) {
		end = len(public)
	}
	return public[start:end], total, nil
}

func (m *mockStore) SaveFriendship(ctx context.Context, friendship *models.Friendship) error {
	if m.failSaveFriends {
		return errStore
	}
	for _, existing := range m.friendships {
		if existing.Members[0] == friendship.Members[0] && existing.Members[1] == friendship.Members[1] {
			return nil
		}
	}
	m.friendships = append(m.friendships, *friendship)
	return nil
}

func (m *mockStore) AreFriends(ctx context.Context, a, b string) (bool, error) {
	if m.failAreFriends {
		return false, errStore
	}
	pair := models.SortedPair(a, b)
	for _, friendship := range m.friendships {
		if friendship.Members[0] == pair[0] && friendship.Members[1] == pair[1] {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStore) FriendshipsOf(ctx context.Context, key string, page, pageSize int) ([]models.Friendship, int64, error) {
	if m.failList {
		return nil, 0, errStore
	}
	var matching []models.Friendship
	for _, friendship := range m.friendships {
		if friendship.Members[0] == key || friendship.Members[1] == key {
			matching = append(matching, friendship)
		}
	}

	total := int64(len(matching))
	start := (page - 1) * pageSize
	if start > len(matching) {
		start = len(matching)
	}
	end := start + pageSize
	if end > len(matching) {
		end = len(matching)
	}
	return matching[start:end], total, nil
}

// newTestRouter wires the real routes and middleware over the mock store.
func newTestRouter(st *mockStore, strictPagination bool) *chi.Mux {
	r := chi.NewRouter()
	routes.SetupRoutes(r, handlers.New(st, strictPagination), st)
	return r
}
