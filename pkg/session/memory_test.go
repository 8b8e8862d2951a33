package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveAndGet(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	userID := uint(1)
	token := NewToken()
	require.NoError(t, store.Save(ctx, token, &Session{UserID: &userID}))

	sess, err := store.Get(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, sess.UserID)
	assert.Equal(t, userID, *sess.UserID)
	assert.Nil(t, sess.OwnerID)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	sess, err := store.Get(context.Background(), NewToken())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, sess)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	userID := uint(1)
	token := NewToken()
	require.NoError(t, store.Save(ctx, token, &Session{UserID: &userID}))

	time.Sleep(20 * time.Millisecond)

	sess, err := store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, sess)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	userID := uint(1)
	token := NewToken()
	require.NoError(t, store.Save(ctx, token, &Session{UserID: &userID}))
	require.NoError(t, store.Delete(ctx, token))

	_, err := store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_CopyOnGet(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	userID := uint(1)
	token := NewToken()
	require.NoError(t, store.Save(ctx, token, &Session{UserID: &userID}))

	// Get이 돌려준 값을 고쳐도 저장된 세션은 바뀌지 않는다
	first, err := store.Get(ctx, token)
	require.NoError(t, err)
	ownerID := uint(7)
	first.OwnerID = &ownerID

	second, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, second.OwnerID)
}

func TestSession_Empty(t *testing.T) {
	userID := uint(1)
	ownerID := uint(2)

	assert.True(t, (&Session{}).Empty())
	assert.False(t, (&Session{UserID: &userID}).Empty())
	assert.False(t, (&Session{OwnerID: &ownerID}).Empty())
	assert.False(t, (&Session{UserID: &userID, OwnerID: &ownerID}).Empty())
}
