package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminPassword(t *testing.T) {
	admin := &Admin{Username: "shaun"}

	require.NoError(t, admin.SetPassword("correct horse battery"))
	assert.NotEqual(t, "correct horse battery", admin.HashedPassword)

	assert.True(t, admin.CheckPassword("correct horse battery"))
	assert.False(t, admin.CheckPassword("wrong password"))
	assert.False(t, admin.CheckPassword(""))
}

func TestAdminPasswordHashUnique(t *testing.T) {
	a := &Admin{Username: "a"}
	b := &Admin{Username: "b"}

	require.NoError(t, a.SetPassword("same password"))
	require.NoError(t, b.SetPassword("same password"))

	// bcrypt salts per hash
	assert.NotEqual(t, a.HashedPassword, b.HashedPassword)
}
