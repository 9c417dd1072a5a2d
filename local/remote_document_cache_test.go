package local

import (
	"context"
	"testing"
	"time"

	"github.com/ipld/go-ipld-prime/storage/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RahulKatariya/firebase-ios-sdk/model"
)

func syncedDoc(key model.DocumentKey, name string) *model.Document {
	data := model.NewObjectValue(map[string]model.FieldValue{"name": model.NewString(name)})
	return model.NewDocument(data, key, testVersion, model.DocumentStateSynced)
}

func TestRemoteDocumentCache(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryRemoteDocumentCache()

	doc := syncedDoc(aliceKey, "alice")
	err := cache.Add(ctx, doc)
	require.NoError(t, err)

	actual, err := cache.Get(ctx, aliceKey)
	require.NoError(t, err)
	requireSameDocument(t, doc, actual)

	updated := model.NewDocument(doc.Data(), aliceKey, model.NewSnapshotVersion(time.Unix(2000, 0)), model.DocumentStateSynced)
	err = cache.Add(ctx, updated)
	require.NoError(t, err)

	actual, err = cache.Get(ctx, aliceKey)
	require.NoError(t, err)
	requireSameDocument(t, updated, actual)
}

func TestRemoteDocumentCacheNotFound(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryRemoteDocumentCache()

	_, err := cache.Get(ctx, aliceKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoteDocumentCacheRemove(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryRemoteDocumentCache()

	err := cache.Add(ctx, syncedDoc(aliceKey, "alice"))
	require.NoError(t, err)

	err = cache.Remove(ctx, aliceKey)
	require.NoError(t, err)

	_, err = cache.Get(ctx, aliceKey)
	assert.ErrorIs(t, err, ErrNotFound)

	err = cache.Remove(ctx, bobKey)
	require.NoError(t, err)
}

func TestRemoteDocumentCacheGetAll(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryRemoteDocumentCache()

	alice := syncedDoc(aliceKey, "alice")
	carol := model.NewNoDocument(carolKey, testVersion, false)
	require.NoError(t, cache.Add(ctx, alice))
	require.NoError(t, cache.Add(ctx, carol))

	missing := model.NewDocumentKey(model.NewResourcePath("users", "dave"))
	docs, err := cache.GetAll(ctx, model.NewDocumentKeySet(aliceKey, carolKey, missing))
	require.NoError(t, err)

	assert.Equal(t, 2, docs.Len())
	actual, ok := docs.Get(aliceKey)
	require.True(t, ok)
	requireSameDocument(t, alice, actual)
	actual, ok = docs.Get(carolKey)
	require.True(t, ok)
	requireSameDocument(t, carol, actual)
	_, ok = docs.Get(missing)
	assert.False(t, ok)
}

func TestRemoteDocumentCacheGetAllForCollection(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryRemoteDocumentCache()

	alice := syncedDoc(aliceKey, "alice")
	bob := syncedDoc(bobKey, "bob")
	orderKey := model.NewDocumentKey(model.NewResourcePath("users", "alice", "orders", "1"))
	roomKey := model.NewDocumentKey(model.NewResourcePath("rooms", "eros"))
	require.NoError(t, cache.Add(ctx, alice))
	require.NoError(t, cache.Add(ctx, bob))
	require.NoError(t, cache.Add(ctx, model.NewNoDocument(carolKey, testVersion, false)))
	require.NoError(t, cache.Add(ctx, syncedDoc(orderKey, "order")))
	require.NoError(t, cache.Add(ctx, syncedDoc(roomKey, "eros")))

	users, err := cache.GetAllForCollection(ctx, model.NewResourcePath("users"))
	require.NoError(t, err)
	assert.Equal(t, 2, users.Len())
	_, ok := users.Get(aliceKey)
	assert.True(t, ok)
	_, ok = users.Get(bobKey)
	assert.True(t, ok)

	orders, err := cache.GetAllForCollection(ctx, model.NewResourcePath("users", "alice", "orders"))
	require.NoError(t, err)
	assert.Equal(t, 1, orders.Len())
	_, ok = orders.Get(orderKey)
	assert.True(t, ok)

	messages, err := cache.GetAllForCollection(ctx, model.NewResourcePath("messages"))
	require.NoError(t, err)
	assert.True(t, messages.Empty())
}

func TestRemoteDocumentCacheKeys(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryRemoteDocumentCache()

	require.NoError(t, cache.Add(ctx, syncedDoc(bobKey, "bob")))
	require.NoError(t, cache.Add(ctx, model.NewNoDocument(aliceKey, testVersion, false)))

	keys, err := cache.Keys(ctx)
	require.NoError(t, err)
	assert.True(t, keys.Equal(model.NewDocumentKeySet(aliceKey, bobKey)))
}

func TestRemoteDocumentCacheStorage(t *testing.T) {
	ctx := context.Background()
	store := &memstore.Store{}
	cache := NewRemoteDocumentCache(store)

	require.NoError(t, cache.Add(ctx, syncedDoc(aliceKey, "alice")))

	has, err := store.Has(ctx, aliceKey.String())
	require.NoError(t, err)
	assert.True(t, has)
}
