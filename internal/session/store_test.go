package session_test

import (
	"context"
	"testing"

	"go-inventory-api/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	// the flag starts unset
	loggedIn, err := store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)

	require.NoError(t, store.Set(ctx, true))
	loggedIn, err = store.Get(ctx)
	require.NoError(t, err)
	assert.True(t, loggedIn)

	require.NoError(t, store.Set(ctx, false))
	loggedIn, err = store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)
}
