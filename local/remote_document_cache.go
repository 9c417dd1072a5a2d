// Package local persists the client's knowledge of remote documents.
// It serializes model documents to dag-cbor blocks and keeps the latest
// entry per document key in an injectable block storage.
package local

import (
	"context"
	"errors"
	"sync"

	"github.com/ipld/go-ipld-prime/storage/memstore"

	"github.com/RahulKatariya/firebase-ios-sdk/model"
)

// RemoteDocumentCache holds the latest version of every document the
// client has knowledge of, including absence records and unknown
// states. Writes for the same key must go through a single cache, which
// serializes them; reads may run concurrently.
type RemoteDocumentCache interface {
	// Add stores doc, replacing any previous entry for its key.
	Add(ctx context.Context, doc model.MaybeDocument) error
	// Remove forgets the entry for key. Removing an absent key is a
	// no-op.
	Remove(ctx context.Context, key model.DocumentKey) error
	// Get returns the entry for key, or ErrNotFound.
	Get(ctx context.Context, key model.DocumentKey) (model.MaybeDocument, error)
	// GetAll returns the entries found for the given keys. Keys
	// without an entry are simply absent from the result.
	GetAll(ctx context.Context, keys model.DocumentKeySet) (model.MaybeDocumentMap, error)
	// GetAllForCollection returns every existing document directly
	// inside collection. Absence records and documents of deeper
	// subcollections are not included.
	GetAllForCollection(ctx context.Context, collection model.ResourcePath) (model.DocumentMap, error)
	// Keys returns the keys of all entries, including absence records.
	Keys(ctx context.Context) (model.DocumentKeySet, error)
}

type remoteDocumentCache struct {
	mu      sync.RWMutex
	storage Storage
	keys    model.DocumentKeySet
}

// NewRemoteDocumentCache returns a cache persisting encoded documents
// in the given block storage. The cache owns the storage: callers must
// not write to it directly.
func NewRemoteDocumentCache(storage Storage) RemoteDocumentCache {
	return &remoteDocumentCache{storage: storage}
}

// NewMemoryRemoteDocumentCache returns a cache backed by an in-memory
// block store.
func NewMemoryRemoteDocumentCache() RemoteDocumentCache {
	return NewRemoteDocumentCache(&memstore.Store{})
}

func (c *remoteDocumentCache) Add(ctx context.Context, doc model.MaybeDocument) error {
	data, err := EncodeMaybeDocument(doc)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.storage.Put(ctx, doc.Key().String(), data); err != nil {
		return err
	}
	c.keys = c.keys.Insert(doc.Key())
	return nil
}

func (c *remoteDocumentCache) Remove(ctx context.Context, key model.DocumentKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	// The stale block stays in storage until the key is written again;
	// dropping the index entry is what makes the document unreachable.
	c.keys = c.keys.Delete(key)
	return nil
}

func (c *remoteDocumentCache) Get(ctx context.Context, key model.DocumentKey) (model.MaybeDocument, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.get(ctx, key)
}

func (c *remoteDocumentCache) get(ctx context.Context, key model.DocumentKey) (model.MaybeDocument, error) {
	if !c.keys.Contains(key) {
		return nil, ErrNotFound
	}
	data, err := c.storage.Get(ctx, key.String())
	if err != nil {
		return nil, err
	}
	return DecodeMaybeDocument(data)
}

func (c *remoteDocumentCache) GetAll(ctx context.Context, keys model.DocumentKeySet) (model.MaybeDocumentMap, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	docs := model.MaybeDocumentMap{}
	for _, key := range keys.Keys() {
		doc, err := c.get(ctx, key)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return model.MaybeDocumentMap{}, err
		}
		docs = docs.Insert(doc)
	}
	return docs, nil
}

func (c *remoteDocumentCache) GetAllForCollection(ctx context.Context, collection model.ResourcePath) (model.DocumentMap, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	docs := model.DocumentMap{}
	for _, key := range c.keys.Keys() {
		if !key.CollectionPath().Equal(collection) {
			continue
		}
		entry, err := c.get(ctx, key)
		if err != nil {
			return model.DocumentMap{}, err
		}
		if doc, ok := entry.(*model.Document); ok {
			docs = docs.Insert(doc)
		}
	}
	return docs, nil
}

func (c *remoteDocumentCache) Keys(ctx context.Context) (model.DocumentKeySet, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.keys, nil
}
