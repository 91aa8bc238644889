package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPassword("hunter22", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestJoinClauses(t *testing.T) {
	assert.Equal(t, "a = $1 AND b = $2", JoinWithAnd([]string{"a = $1", "b = $2"}))
	assert.Equal(t, "(a = $1 OR b = $1)", JoinWithOr([]string{"a = $1", "b = $1"}))
	assert.Equal(t, "", JoinWithOr(nil))
}
