// Package bundle moves document snapshots between processes as CAR
// archives. Each document becomes one dag-cbor block; a manifest block
// mapping document keys to links is the root of the archive.
package bundle

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ipfs/go-cid"
	"github.com/ipld/go-car/v2"
	"github.com/ipld/go-ipld-prime/linking"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/ipld/go-ipld-prime/node/basicnode"
	"github.com/ipld/go-ipld-prime/storage/memstore"
	"github.com/ipld/go-ipld-prime/traversal/selector"
	"github.com/ipld/go-ipld-prime/traversal/selector/builder"

	"github.com/RahulKatariya/firebase-ios-sdk/local"
	"github.com/RahulKatariya/firebase-ios-sdk/model"
)

// Version is the bundle format version written into every manifest.
const Version = 1

var linkPrototype = cidlink.LinkPrototype{Prefix: cid.Prefix{
	Version:  1,    // Usually '1'.
	Codec:    0x71, // dag-cbor -- See the multicodecs table: https://github.com/multiformats/multicodec/
	MhType:   0x13, // sha2-512 -- See the multicodecs table: https://github.com/multiformats/multicodec/
	MhLength: 64,   // sha2-512 hash has a 64-byte sum.
}}

// Write exports docs to out as a CAR archive rooted at the manifest.
func Write(ctx context.Context, docs model.MaybeDocumentMap, out io.Writer) error {
	store := &memstore.Store{}
	lsys := cidlink.DefaultLinkSystem()
	lsys.SetReadStorage(store)
	lsys.SetWriteStorage(store)

	nb := basicnode.Prototype.Map.NewBuilder()
	ma, err := nb.BeginMap(2)
	if err != nil {
		return err
	}
	ea, err := ma.AssembleEntry("documents")
	if err != nil {
		return err
	}
	da, err := ea.BeginMap(int64(docs.Len()))
	if err != nil {
		return err
	}
	var assembleErr error
	docs.ForEach(func(key model.DocumentKey, doc model.MaybeDocument) {
		if assembleErr != nil {
			return
		}
		node, err := local.MaybeDocumentNode(doc)
		if err != nil {
			assembleErr = err
			return
		}
		lnk, err := lsys.Store(linking.LinkContext{Ctx: ctx}, linkPrototype, node)
		if err != nil {
			assembleErr = err
			return
		}
		entry, err := da.AssembleEntry(key.String())
		if err != nil {
			assembleErr = err
			return
		}
		assembleErr = entry.AssignLink(lnk)
	})
	if assembleErr != nil {
		return assembleErr
	}
	if err := da.Finish(); err != nil {
		return err
	}
	ea, err = ma.AssembleEntry("version")
	if err != nil {
		return err
	}
	if err := ea.AssignInt(Version); err != nil {
		return err
	}
	if err := ma.Finish(); err != nil {
		return err
	}
	rootLink, err := lsys.Store(linking.LinkContext{Ctx: ctx}, linkPrototype, nb.Build())
	if err != nil {
		return err
	}

	root := rootLink.(cidlink.Link).Cid
	ssb := builder.NewSelectorSpecBuilder(basicnode.Prototype.Any)
	sel := ssb.ExploreRecursive(selector.RecursionLimitNone(), ssb.ExploreAll(ssb.ExploreRecursiveEdge()))
	w, err := car.NewSelectiveWriter(ctx, &lsys, root, sel.Node())
	if err != nil {
		return err
	}
	_, err = w.WriteTo(out)
	return err
}

// Read imports a CAR archive written by Write, returning the documents
// it contains keyed by their own keys.
func Read(ctx context.Context, in io.Reader) (model.MaybeDocumentMap, error) {
	store := &memstore.Store{}
	lsys := cidlink.DefaultLinkSystem()
	lsys.SetReadStorage(store)

	rd, err := car.NewBlockReader(in)
	if err != nil {
		return model.MaybeDocumentMap{}, err
	}
	if len(rd.Roots) != 1 {
		return model.MaybeDocumentMap{}, fmt.Errorf("expected 1 bundle root, got %d", len(rd.Roots))
	}
	for {
		blk, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return model.MaybeDocumentMap{}, err
		}
		if err := store.Put(ctx, blk.Cid().KeyString(), blk.RawData()); err != nil {
			return model.MaybeDocumentMap{}, err
		}
	}

	manifest, err := lsys.Load(linking.LinkContext{Ctx: ctx}, cidlink.Link{Cid: rd.Roots[0]}, basicnode.Prototype.Any)
	if err != nil {
		return model.MaybeDocumentMap{}, err
	}
	versionNode, err := manifest.LookupByString("version")
	if err != nil {
		return model.MaybeDocumentMap{}, err
	}
	version, err := versionNode.AsInt()
	if err != nil {
		return model.MaybeDocumentMap{}, err
	}
	if version != Version {
		return model.MaybeDocumentMap{}, fmt.Errorf("unsupported bundle version %d", version)
	}
	documents, err := manifest.LookupByString("documents")
	if err != nil {
		return model.MaybeDocumentMap{}, err
	}

	docs := model.MaybeDocumentMap{}
	for iter := documents.MapIterator(); !iter.Done(); {
		_, v, err := iter.Next()
		if err != nil {
			return model.MaybeDocumentMap{}, err
		}
		lnk, err := v.AsLink()
		if err != nil {
			return model.MaybeDocumentMap{}, err
		}
		node, err := lsys.Load(linking.LinkContext{Ctx: ctx}, lnk, basicnode.Prototype.Any)
		if err != nil {
			return model.MaybeDocumentMap{}, err
		}
		doc, err := local.MaybeDocumentFromNode(node)
		if err != nil {
			return model.MaybeDocumentMap{}, err
		}
		docs = docs.Insert(doc)
	}
	return docs, nil
}
