package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Secret123!")
	require.NoError(t, err)
	require.NotEqual(t, "Secret123!", hash)

	require.NoError(t, VerifyPassword(hash, "Secret123!"))
	require.Error(t, VerifyPassword(hash, "wrong"))
}

func TestHashPasswordUniqueSalt(t *testing.T) {
	h1, err := HashPassword("same-plaintext")
	require.NoError(t, err)
	h2, err := HashPassword("same-plaintext")
	require.NoError(t, err)
	// 相同明文因鹽不同而得到不同哈希
	require.NotEqual(t, h1, h2)
	require.NoError(t, VerifyPassword(h1, "same-plaintext"))
	require.NoError(t, VerifyPassword(h2, "same-plaintext"))
}
