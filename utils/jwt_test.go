package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("shaun", "test-secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := ValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "shaun", username)
}

func TestJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token", "test-secret")
	assert.Error(t, err)

	_, err = ValidateJWT("", "test-secret")
	assert.Error(t, err)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT("shaun", "test-secret")
	require.NoError(t, err)

	_, err = ValidateJWT(token, "different-secret")
	assert.Error(t, err)
}
