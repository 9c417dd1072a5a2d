package local

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ipld/go-ipld-prime/codec/dagcbor"
	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/ipld/go-ipld-prime/node/basicnode"

	"github.com/RahulKatariya/firebase-ios-sdk/model"
)

// Reserved map keys. A single leading '$' marks an entry the serializer
// owns; user field names beginning with '$' gain a second one when
// stored so the two can never collide.
const (
	tagTimestamp = "$timestamp"
	tagGeoPoint  = "$geopoint"
	tagReference = "$reference"
	tagDouble    = "$double"
)

// Document variant tags.
const (
	typeDocument        = "document"
	typeNoDocument      = "no-document"
	typeUnknownDocument = "unknown-document"
)

// EncodeMaybeDocument serializes any document variant to dag-cbor
// bytes.
func EncodeMaybeDocument(doc model.MaybeDocument) ([]byte, error) {
	node, err := MaybeDocumentNode(doc)
	if err != nil {
		return nil, err
	}
	var buffer bytes.Buffer
	if err := dagcbor.Encode(node, &buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// DecodeMaybeDocument parses dag-cbor bytes produced by
// EncodeMaybeDocument.
func DecodeMaybeDocument(data []byte) (model.MaybeDocument, error) {
	nb := basicnode.Prototype.Any.NewBuilder()
	if err := dagcbor.Decode(nb, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return MaybeDocumentFromNode(nb.Build())
}

// MaybeDocumentNode builds the node representation of any document
// variant. The variant tag, key, version and contents all survive a
// round trip through MaybeDocumentFromNode.
func MaybeDocumentNode(doc model.MaybeDocument) (datamodel.Node, error) {
	nb := basicnode.Prototype.Map.NewBuilder()
	var err error
	switch d := doc.(type) {
	case *model.Document:
		err = assembleDocument(nb, d)
	case *model.NoDocument:
		err = assembleNoDocument(nb, d)
	case *model.UnknownDocument:
		err = assembleUnknownDocument(nb, d)
	default:
		return nil, fmt.Errorf("no encoding for document variant %T", doc)
	}
	if err != nil {
		return nil, err
	}
	return nb.Build(), nil
}

func assembleDocument(nb datamodel.NodeBuilder, doc *model.Document) error {
	ma, err := nb.BeginMap(5)
	if err != nil {
		return err
	}
	if err := assembleHeader(ma, typeDocument, doc.Key(), doc.Version()); err != nil {
		return err
	}
	ea, err := ma.AssembleEntry("state")
	if err != nil {
		return err
	}
	if err := ea.AssignString(doc.State().String()); err != nil {
		return err
	}
	ea, err = ma.AssembleEntry("data")
	if err != nil {
		return err
	}
	if err := assignObject(ea, doc.Data()); err != nil {
		return err
	}
	return ma.Finish()
}

func assembleNoDocument(nb datamodel.NodeBuilder, doc *model.NoDocument) error {
	ma, err := nb.BeginMap(4)
	if err != nil {
		return err
	}
	if err := assembleHeader(ma, typeNoDocument, doc.Key(), doc.Version()); err != nil {
		return err
	}
	ea, err := ma.AssembleEntry("committed")
	if err != nil {
		return err
	}
	if err := ea.AssignBool(doc.HasCommittedMutations()); err != nil {
		return err
	}
	return ma.Finish()
}

func assembleUnknownDocument(nb datamodel.NodeBuilder, doc *model.UnknownDocument) error {
	ma, err := nb.BeginMap(3)
	if err != nil {
		return err
	}
	if err := assembleHeader(ma, typeUnknownDocument, doc.Key(), doc.Version()); err != nil {
		return err
	}
	return ma.Finish()
}

func assembleHeader(ma datamodel.MapAssembler, typeTag string, key model.DocumentKey, version model.SnapshotVersion) error {
	ea, err := ma.AssembleEntry("type")
	if err != nil {
		return err
	}
	if err := ea.AssignString(typeTag); err != nil {
		return err
	}
	ea, err = ma.AssembleEntry("key")
	if err != nil {
		return err
	}
	if err := ea.AssignString(key.String()); err != nil {
		return err
	}
	ea, err = ma.AssembleEntry("version")
	if err != nil {
		return err
	}
	return assignTimestamp(ea, version.Timestamp())
}

func assignFieldValue(na datamodel.NodeAssembler, value model.FieldValue) error {
	switch value.Kind() {
	case model.KindNull:
		return na.AssignNull()
	case model.KindBoolean:
		return na.AssignBool(value.Boolean())
	case model.KindInteger:
		return na.AssignInt(value.Integer())
	case model.KindDouble:
		d := value.Double()
		// dag-cbor has no encoding for non-finite floats.
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return assignTagged(na, tagDouble, func(na datamodel.NodeAssembler) error {
				return na.AssignString(formatNonFinite(d))
			})
		}
		return na.AssignFloat(d)
	case model.KindTimestamp:
		return assignTagged(na, tagTimestamp, func(na datamodel.NodeAssembler) error {
			return assignTimestamp(na, value.Timestamp())
		})
	case model.KindString:
		return na.AssignString(value.StringValue())
	case model.KindBlob:
		return na.AssignBytes(value.Blob())
	case model.KindReference:
		return assignTagged(na, tagReference, func(na datamodel.NodeAssembler) error {
			return assignReference(na, value.Reference())
		})
	case model.KindGeoPoint:
		return assignTagged(na, tagGeoPoint, func(na datamodel.NodeAssembler) error {
			return assignGeoPoint(na, value.GeoPoint())
		})
	case model.KindArray:
		elements := value.Array()
		la, err := na.BeginList(int64(len(elements)))
		if err != nil {
			return err
		}
		for _, e := range elements {
			if err := assignFieldValue(la.AssembleValue(), e); err != nil {
				return err
			}
		}
		return la.Finish()
	case model.KindObject:
		return assignObject(na, value.Object())
	default:
		return fmt.Errorf("no encoding for %s value", value.Kind())
	}
}

// assignTagged assembles a single-entry map whose key is a reserved
// tag.
func assignTagged(na datamodel.NodeAssembler, tag string, assign func(datamodel.NodeAssembler) error) error {
	ma, err := na.BeginMap(1)
	if err != nil {
		return err
	}
	ea, err := ma.AssembleEntry(tag)
	if err != nil {
		return err
	}
	if err := assign(ea); err != nil {
		return err
	}
	return ma.Finish()
}

func assignObject(na datamodel.NodeAssembler, o model.ObjectValue) error {
	ma, err := na.BeginMap(int64(o.Len()))
	if err != nil {
		return err
	}
	var assignErr error
	o.ForEach(func(name string, value model.FieldValue) {
		if assignErr != nil {
			return
		}
		ea, err := ma.AssembleEntry(escapeFieldName(name))
		if err != nil {
			assignErr = err
			return
		}
		assignErr = assignFieldValue(ea, value)
	})
	if assignErr != nil {
		return assignErr
	}
	return ma.Finish()
}

func assignTimestamp(na datamodel.NodeAssembler, t time.Time) error {
	ma, err := na.BeginMap(2)
	if err != nil {
		return err
	}
	ea, err := ma.AssembleEntry("seconds")
	if err != nil {
		return err
	}
	if err := ea.AssignInt(t.Unix()); err != nil {
		return err
	}
	ea, err = ma.AssembleEntry("nanos")
	if err != nil {
		return err
	}
	if err := ea.AssignInt(int64(t.Nanosecond())); err != nil {
		return err
	}
	return ma.Finish()
}

func assignReference(na datamodel.NodeAssembler, ref model.Reference) error {
	ma, err := na.BeginMap(3)
	if err != nil {
		return err
	}
	ea, err := ma.AssembleEntry("project")
	if err != nil {
		return err
	}
	if err := ea.AssignString(ref.Database.Project()); err != nil {
		return err
	}
	ea, err = ma.AssembleEntry("database")
	if err != nil {
		return err
	}
	if err := ea.AssignString(ref.Database.Database()); err != nil {
		return err
	}
	ea, err = ma.AssembleEntry("path")
	if err != nil {
		return err
	}
	if err := ea.AssignString(ref.Key.String()); err != nil {
		return err
	}
	return ma.Finish()
}

func assignGeoPoint(na datamodel.NodeAssembler, g model.GeoPoint) error {
	ma, err := na.BeginMap(2)
	if err != nil {
		return err
	}
	ea, err := ma.AssembleEntry("latitude")
	if err != nil {
		return err
	}
	if err := ea.AssignFloat(g.Latitude); err != nil {
		return err
	}
	ea, err = ma.AssembleEntry("longitude")
	if err != nil {
		return err
	}
	if err := ea.AssignFloat(g.Longitude); err != nil {
		return err
	}
	return ma.Finish()
}

// MaybeDocumentFromNode rebuilds a document variant from its node
// representation.
func MaybeDocumentFromNode(n datamodel.Node) (model.MaybeDocument, error) {
	typeTag, err := lookupString(n, "type")
	if err != nil {
		return nil, err
	}
	keyString, err := lookupString(n, "key")
	if err != nil {
		return nil, err
	}
	key, err := model.ParseDocumentKey(keyString)
	if err != nil {
		return nil, err
	}
	versionNode, err := n.LookupByString("version")
	if err != nil {
		return nil, err
	}
	timestamp, err := timestampFromNode(versionNode)
	if err != nil {
		return nil, err
	}
	version := model.NewSnapshotVersion(timestamp)

	switch typeTag {
	case typeDocument:
		stateName, err := lookupString(n, "state")
		if err != nil {
			return nil, err
		}
		state, err := parseDocumentState(stateName)
		if err != nil {
			return nil, err
		}
		dataNode, err := n.LookupByString("data")
		if err != nil {
			return nil, err
		}
		data, err := objectFromNode(dataNode)
		if err != nil {
			return nil, err
		}
		return model.NewDocument(data, key, version, state), nil
	case typeNoDocument:
		committedNode, err := n.LookupByString("committed")
		if err != nil {
			return nil, err
		}
		committed, err := committedNode.AsBool()
		if err != nil {
			return nil, err
		}
		return model.NewNoDocument(key, version, committed), nil
	case typeUnknownDocument:
		return model.NewUnknownDocument(key, version), nil
	default:
		return nil, fmt.Errorf("unknown document type %q", typeTag)
	}
}

func parseDocumentState(name string) (model.DocumentState, error) {
	switch name {
	case "local-mutations":
		return model.DocumentStateLocalMutations, nil
	case "committed-mutations":
		return model.DocumentStateCommittedMutations, nil
	case "synced":
		return model.DocumentStateSynced, nil
	default:
		return 0, fmt.Errorf("unknown document state %q", name)
	}
}

func fieldValueFromNode(n datamodel.Node) (model.FieldValue, error) {
	switch n.Kind() {
	case datamodel.Kind_Null:
		return model.Null, nil
	case datamodel.Kind_Bool:
		b, err := n.AsBool()
		if err != nil {
			return model.FieldValue{}, err
		}
		return model.NewBoolean(b), nil
	case datamodel.Kind_Int:
		i, err := n.AsInt()
		if err != nil {
			return model.FieldValue{}, err
		}
		return model.NewInteger(i), nil
	case datamodel.Kind_Float:
		f, err := n.AsFloat()
		if err != nil {
			return model.FieldValue{}, err
		}
		return model.NewDouble(f), nil
	case datamodel.Kind_String:
		s, err := n.AsString()
		if err != nil {
			return model.FieldValue{}, err
		}
		return model.NewString(s), nil
	case datamodel.Kind_Bytes:
		b, err := n.AsBytes()
		if err != nil {
			return model.FieldValue{}, err
		}
		return model.NewBlob(b), nil
	case datamodel.Kind_List:
		values := make([]model.FieldValue, 0, n.Length())
		for iter := n.ListIterator(); !iter.Done(); {
			_, v, err := iter.Next()
			if err != nil {
				return model.FieldValue{}, err
			}
			value, err := fieldValueFromNode(v)
			if err != nil {
				return model.FieldValue{}, err
			}
			values = append(values, value)
		}
		return model.NewArray(values...), nil
	case datamodel.Kind_Map:
		return mapValueFromNode(n)
	default:
		return model.FieldValue{}, fmt.Errorf("cannot decode %s node", n.Kind())
	}
}

func mapValueFromNode(n datamodel.Node) (model.FieldValue, error) {
	if n.Length() == 1 {
		iter := n.MapIterator()
		k, v, err := iter.Next()
		if err != nil {
			return model.FieldValue{}, err
		}
		tag, err := k.AsString()
		if err != nil {
			return model.FieldValue{}, err
		}
		switch tag {
		case tagDouble:
			s, err := v.AsString()
			if err != nil {
				return model.FieldValue{}, err
			}
			return parseNonFinite(s)
		case tagTimestamp:
			t, err := timestampFromNode(v)
			if err != nil {
				return model.FieldValue{}, err
			}
			return model.NewTimestamp(t), nil
		case tagGeoPoint:
			g, err := geoPointFromNode(v)
			if err != nil {
				return model.FieldValue{}, err
			}
			return model.NewGeoPoint(g), nil
		case tagReference:
			ref, err := referenceFromNode(v)
			if err != nil {
				return model.FieldValue{}, err
			}
			return model.NewReference(ref), nil
		}
	}
	o, err := objectFromNode(n)
	if err != nil {
		return model.FieldValue{}, err
	}
	return model.NewObject(o), nil
}

func objectFromNode(n datamodel.Node) (model.ObjectValue, error) {
	if n.Kind() != datamodel.Kind_Map {
		return model.ObjectValue{}, fmt.Errorf("cannot decode object from %s node", n.Kind())
	}
	fields := make(map[string]model.FieldValue, n.Length())
	for iter := n.MapIterator(); !iter.Done(); {
		k, v, err := iter.Next()
		if err != nil {
			return model.ObjectValue{}, err
		}
		name, err := k.AsString()
		if err != nil {
			return model.ObjectValue{}, err
		}
		unescaped, err := unescapeFieldName(name)
		if err != nil {
			return model.ObjectValue{}, err
		}
		value, err := fieldValueFromNode(v)
		if err != nil {
			return model.ObjectValue{}, err
		}
		fields[unescaped] = value
	}
	return model.NewObjectValue(fields), nil
}

func timestampFromNode(n datamodel.Node) (time.Time, error) {
	secondsNode, err := n.LookupByString("seconds")
	if err != nil {
		return time.Time{}, err
	}
	seconds, err := secondsNode.AsInt()
	if err != nil {
		return time.Time{}, err
	}
	nanosNode, err := n.LookupByString("nanos")
	if err != nil {
		return time.Time{}, err
	}
	nanos, err := nanosNode.AsInt()
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(seconds, nanos).UTC(), nil
}

func geoPointFromNode(n datamodel.Node) (model.GeoPoint, error) {
	latitudeNode, err := n.LookupByString("latitude")
	if err != nil {
		return model.GeoPoint{}, err
	}
	latitude, err := latitudeNode.AsFloat()
	if err != nil {
		return model.GeoPoint{}, err
	}
	longitudeNode, err := n.LookupByString("longitude")
	if err != nil {
		return model.GeoPoint{}, err
	}
	longitude, err := longitudeNode.AsFloat()
	if err != nil {
		return model.GeoPoint{}, err
	}
	return model.GeoPoint{Latitude: latitude, Longitude: longitude}, nil
}

func referenceFromNode(n datamodel.Node) (model.Reference, error) {
	project, err := lookupString(n, "project")
	if err != nil {
		return model.Reference{}, err
	}
	database, err := lookupString(n, "database")
	if err != nil {
		return model.Reference{}, err
	}
	path, err := lookupString(n, "path")
	if err != nil {
		return model.Reference{}, err
	}
	key, err := model.ParseDocumentKey(path)
	if err != nil {
		return model.Reference{}, err
	}
	return model.Reference{Database: model.NewDatabaseID(project, database), Key: key}, nil
}

func lookupString(n datamodel.Node, key string) (string, error) {
	v, err := n.LookupByString(key)
	if err != nil {
		return "", err
	}
	return v.AsString()
}

func escapeFieldName(name string) string {
	if strings.HasPrefix(name, "$") {
		return "$" + name
	}
	return name
}

func unescapeFieldName(name string) (string, error) {
	if strings.HasPrefix(name, "$$") {
		return name[1:], nil
	}
	if strings.HasPrefix(name, "$") {
		return "", fmt.Errorf("unknown reserved field name %q", name)
	}
	return name, nil
}

func formatNonFinite(d float64) string {
	switch {
	case math.IsInf(d, 1):
		return "Infinity"
	case math.IsInf(d, -1):
		return "-Infinity"
	default:
		return "NaN"
	}
}

func parseNonFinite(s string) (model.FieldValue, error) {
	switch s {
	case "NaN":
		return model.NewDouble(math.NaN()), nil
	case "Infinity":
		return model.NewDouble(math.Inf(1)), nil
	case "-Infinity":
		return model.NewDouble(math.Inf(-1)), nil
	default:
		return model.FieldValue{}, fmt.Errorf("invalid double tag value %q", s)
	}
}
