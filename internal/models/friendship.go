package models

import (
	"sort"

	"github.com/openmesh/meshnet-backend/pkg/utils"
)

// Friendship links two users. Members are stored sorted so every unordered
// pair maps to exactly one document.
type Friendship struct {
	Members      []string `bson:"members" json:"members"`
	CreatedStamp int64    `bson:"created_stamp" json:"created_stamp"`
}

// NewFriendship builds a friendship between the two keys and stamps it.
func NewFriendship(a, b string) Friendship {
	return Friendship{
		Members:      SortedPair(a, b),
		CreatedStamp: utils.NowNanos(),
	}
}

// Other returns the member that is not key, or "" when key is not a member.
func (f *Friendship) Other(key string) string {
	for _, member := range f.Members {
		if member != key {
			return member
		}
	}
	return ""
}

// SortedPair returns the two keys in their canonical stored order.
func SortedPair(a, b string) []string {
	pair := []string{a, b}
	sort.Strings(pair)
	return pair
}
