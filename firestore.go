package firestore

import (
	"context"
	"io"

	"github.com/RahulKatariya/firebase-ios-sdk/bundle"
	"github.com/RahulKatariya/firebase-ios-sdk/local"
	"github.com/RahulKatariya/firebase-ios-sdk/model"
)

// Export writes a bundle containing every document in the cache.
func Export(ctx context.Context, cache local.RemoteDocumentCache, out io.Writer) error {
	keys, err := cache.Keys(ctx)
	if err != nil {
		return err
	}
	docs, err := cache.GetAll(ctx, keys)
	if err != nil {
		return err
	}
	return bundle.Write(ctx, docs, out)
}

// Import reads a bundle and adds its documents to the cache,
// returning the documents that were loaded.
func Import(ctx context.Context, cache local.RemoteDocumentCache, in io.Reader) (model.MaybeDocumentMap, error) {
	docs, err := bundle.Read(ctx, in)
	if err != nil {
		return model.MaybeDocumentMap{}, err
	}
	var addErr error
	docs.ForEach(func(_ model.DocumentKey, doc model.MaybeDocument) {
		if addErr != nil {
			return
		}
		addErr = cache.Add(ctx, doc)
	})
	if addErr != nil {
		return model.MaybeDocumentMap{}, addErr
	}
	return docs, nil
}
