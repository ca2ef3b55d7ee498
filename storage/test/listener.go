package storagetest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/errors"
)

func (suite *Suite) TestListenerCreateAndGet(t *testing.T) {
	ls := suite.Storage(t).Listeners(suite.ctx)

	key, err := trackhaus.NewAPIKey()
	require.NoError(t, err)

	in := trackhaus.Listener{
		Email:        "someone@example.org",
		PasswordHash: "$2a$10$somethingsomething",
		APIKey:       key,
		Active:       true,
	}
	id, err := ls.Create(in)
	require.NoError(t, err)
	require.NotZero(t, id)

	byID, err := ls.Get(id)
	require.NoError(t, err)
	assert.Equal(t, in.Email, byID.Email)
	assert.Equal(t, in.PasswordHash, byID.PasswordHash)
	assert.Equal(t, in.APIKey, byID.APIKey)
	assert.True(t, byID.Active)
	assert.False(t, byID.CreatedAt.IsZero())
	assert.Nil(t, byID.LastLoginAt)

	byEmail, err := ls.ByEmail(in.Email)
	require.NoError(t, err)
	assert.Equal(t, id, byEmail.ID)

	byKey, err := ls.ByAPIKey(key)
	require.NoError(t, err)
	assert.Equal(t, id, byKey.ID)
}

func (suite *Suite) TestListenerCreateDuplicateEmail(t *testing.T) {
	ls := suite.Storage(t).Listeners(suite.ctx)

	_, err := ls.Create(trackhaus.Listener{
		Email:        "duplicate@example.org",
		PasswordHash: "hash",
		APIKey:       "key-one",
		Active:       true,
	})
	require.NoError(t, err)

	_, err = ls.Create(trackhaus.Listener{
		Email:        "duplicate@example.org",
		PasswordHash: "hash",
		APIKey:       "key-two",
		Active:       true,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(errors.ListenerExists, err))
}

func (suite *Suite) TestListenerUnknown(t *testing.T) {
	ls := suite.Storage(t).Listeners(suite.ctx)

	_, err := ls.Get(424242)
	assert.True(t, errors.Is(errors.ListenerUnknown, err))

	_, err = ls.ByEmail("nobody@example.org")
	assert.True(t, errors.Is(errors.ListenerUnknown, err))

	_, err = ls.ByAPIKey("not a key")
	assert.True(t, errors.Is(errors.ListenerUnknown, err))

	_, err = ls.ByAPIKey("")
	assert.True(t, errors.Is(errors.ListenerUnknown, err))

	err = ls.UpdateLastLogin(424242, time.Now())
	assert.True(t, errors.Is(errors.ListenerUnknown, err))
}

func (suite *Suite) TestListenerUpdateLastLogin(t *testing.T) {
	ls := suite.Storage(t).Listeners(suite.ctx)

	id, err := ls.Create(trackhaus.Listener{
		Email:        "login@example.org",
		PasswordHash: "hash",
		APIKey:       "login-key",
		Active:       true,
	})
	require.NoError(t, err)

	now := time.Date(2025, 3, 28, 15, 14, 5, 0, time.UTC)
	require.NoError(t, ls.UpdateLastLogin(id, now))
	// the same value again should still find the listener
	require.NoError(t, ls.UpdateLastLogin(id, now))

	listener, err := ls.Get(id)
	require.NoError(t, err)
	if assert.NotNil(t, listener.LastLoginAt) {
		assert.True(t, now.Equal(*listener.LastLoginAt))
	}
}
