package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFriendshipNormalizesOrder(t *testing.T) {
	forward := NewFriendship("key-a", "key-b")
	reverse := NewFriendship("key-b", "key-a")

	assert.Equal(t, []string{"key-a", "key-b"}, forward.Members)
	assert.Equal(t, forward.Members, reverse.Members)
	assert.Positive(t, forward.CreatedStamp)
}

func TestSortedPairSymmetric(t *testing.T) {
	assert.Equal(t, SortedPair("x", "a"), SortedPair("a", "x"))
	assert.Equal(t, []string{"a", "x"}, SortedPair("x", "a"))
}

func TestFriendshipOther(t *testing.T) {
	friendship := NewFriendship("key-a", "key-b")

	assert.Equal(t, "key-b", friendship.Other("key-a"))
	assert.Equal(t, "key-a", friendship.Other("key-b"))
	assert.Equal(t, "key-a", friendship.Other("key-c"))
}
