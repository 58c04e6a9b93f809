package store

import (
	"context"

	"github.com/openmesh/meshnet-backend/internal/models"
)

// UserStore is the persistence surface for user records. Lookups return
// (nil, nil) when no record matches.
type UserStore interface {
	FindUserByKey(ctx context.Context, key string) (*models.User, error)
	FindUserByName(ctx context.Context, name string) (*models.User, error)
	// SaveUser upserts the record by its key.
	SaveUser(ctx context.Context, user *models.User) error
	// ListPublicUsers returns the requested page of users whose profile is
	// public, plus the total count of such users.
	ListPublicUsers(ctx context.Context, page, pageSize int) ([]models.User, int64, error)
}

// FriendshipStore is the persistence surface for the friendship graph.
type FriendshipStore interface {
	// SaveFriendship upserts by the unordered pair; replays are harmless.
	SaveFriendship(ctx context.Context, friendship *models.Friendship) error
	// AreFriends reports whether a friendship exists between the two keys,
	// in either order.
	AreFriends(ctx context.Context, a, b string) (bool, error)
	// FriendshipsOf returns the requested page of friendships containing
	// key, plus the total count.
	FriendshipsOf(ctx context.Context, key string, page, pageSize int) ([]models.Friendship, int64, error)
}

// Store is the full storage handle shared by all requests. It is immutable
// after startup; concurrency safety is the driver's responsibility.
type Store interface {
	UserStore
	FriendshipStore
}
