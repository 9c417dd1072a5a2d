package bundle

import (
	"bytes"
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RahulKatariya/firebase-ios-sdk/model"
)

func TestWriteRead(t *testing.T) {
	ctx := context.Background()

	aliceKey := model.NewDocumentKey(model.NewResourcePath("users", "alice"))
	bobKey := model.NewDocumentKey(model.NewResourcePath("users", "bob"))
	carolKey := model.NewDocumentKey(model.NewResourcePath("users", "carol"))
	version := model.NewSnapshotVersion(time.Unix(1234, 5678))

	data := model.NewObjectValue(map[string]model.FieldValue{
		"name":  model.NewString("alice"),
		"age":   model.NewInteger(30),
		"score": model.NewDouble(math.NaN()),
		"tags":  model.NewArray(model.NewString("a"), model.NewString("b")),
		"geo":   model.NewGeoPoint(model.GeoPoint{Latitude: 1.5, Longitude: -2.5}),
		"$meta": model.NewString("escaped"),
		"friend": model.NewReference(model.Reference{
			Database: model.NewDatabaseID("p", ""),
			Key:      bobKey,
		}),
	})
	docs := model.NewMaybeDocumentMap(
		model.NewDocument(data, aliceKey, version, model.DocumentStateCommittedMutations),
		model.NewNoDocument(bobKey, version, true),
		model.NewUnknownDocument(carolKey, version),
	)

	var buffer bytes.Buffer
	err := Write(ctx, docs, &buffer)
	require.NoError(t, err)

	actual, err := Read(ctx, &buffer)
	require.NoError(t, err)
	assert.True(t, docs.Equal(actual))

	// Document equality does not cover the sync state, so check it directly.
	entry, ok := actual.Get(aliceKey)
	require.True(t, ok)
	doc, ok := entry.(*model.Document)
	require.True(t, ok)
	assert.Equal(t, model.DocumentStateCommittedMutations, doc.State())
}

func TestWriteReadEmpty(t *testing.T) {
	ctx := context.Background()

	var buffer bytes.Buffer
	err := Write(ctx, model.NewMaybeDocumentMap(), &buffer)
	require.NoError(t, err)

	actual, err := Read(ctx, &buffer)
	require.NoError(t, err)
	assert.True(t, actual.Empty())
}

func TestReadInvalid(t *testing.T) {
	ctx := context.Background()

	_, err := Read(ctx, bytes.NewReader([]byte("not an archive")))
	assert.Error(t, err)
}
