package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphanumeric(t *testing.T) {
	assert.Equal(t,
		"abcdefghigklmnopqrstuvwxyzABCDEFGHIGKLMNOPQRSTUVWXYZ0123456789",
		Alphanumeric("abcdefghigklmnopqrstuvwxyz 😃 ABCDEFGHIGKLMNOPQRSTUVWXYZ >-< 0123456789"),
	)
	assert.Equal(t, "", Alphanumeric(""))
	assert.Equal(t, "", Alphanumeric(" \t\n>-<"))
}

func TestAlphanumericIdempotent(t *testing.T) {
	inputs := []string{"alice", "Alice Smith!", "übermensch", "x y z 123", ""}
	for _, input := range inputs {
		once := Alphanumeric(input)
		assert.Equal(t, once, Alphanumeric(once), "input %q", input)
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "alice", NormalizeName("  Alice "))
	assert.Equal(t, "bob42", NormalizeName("BOB42"))
	assert.Equal(t, "", NormalizeName("   "))
}
