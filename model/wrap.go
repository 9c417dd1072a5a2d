package model

import (
	"fmt"
	"math"
	"time"
)

// Wrap converts a plain Go value into a FieldValue. It accepts nil,
// booleans, integer and float types, strings, byte slices, time.Time,
// GeoPoint, Reference, []any, map[string]any, and values that are
// already FieldValue or ObjectValue. Slices and maps are converted
// element-wise; unsupported types return an error.
func Wrap(value any) (FieldValue, error) {
	switch v := value.(type) {
	case nil:
		return Null, nil
	case FieldValue:
		return v, nil
	case ObjectValue:
		return NewObject(v), nil
	case bool:
		return NewBoolean(v), nil
	case int:
		return NewInteger(int64(v)), nil
	case int32:
		return NewInteger(int64(v)), nil
	case int64:
		return NewInteger(v), nil
	case uint:
		return wrapUint64(uint64(v))
	case uint32:
		return NewInteger(int64(v)), nil
	case uint64:
		return wrapUint64(v)
	case float32:
		return NewDouble(float64(v)), nil
	case float64:
		return NewDouble(v), nil
	case string:
		return NewString(v), nil
	case []byte:
		return NewBlob(v), nil
	case time.Time:
		return NewTimestamp(v), nil
	case GeoPoint:
		if err := validateGeoPoint(v); err != nil {
			return FieldValue{}, err
		}
		return NewGeoPoint(v), nil
	case Reference:
		return NewReference(v), nil
	case []any:
		values := make([]FieldValue, len(v))
		for i, e := range v {
			w, err := Wrap(e)
			if err != nil {
				return FieldValue{}, err
			}
			values[i] = w
		}
		return NewArray(values...), nil
	case map[string]any:
		o, err := WrapObject(v)
		if err != nil {
			return FieldValue{}, err
		}
		return NewObject(o), nil
	default:
		return FieldValue{}, fmt.Errorf("cannot wrap value of type %T", value)
	}
}

// WrapObject converts a map of plain Go values into an ObjectValue.
func WrapObject(fields map[string]any) (ObjectValue, error) {
	wrapped := make(map[string]FieldValue, len(fields))
	for name, value := range fields {
		v, err := Wrap(value)
		if err != nil {
			return ObjectValue{}, err
		}
		wrapped[name] = v
	}
	return NewObjectValue(wrapped), nil
}

func wrapUint64(v uint64) (FieldValue, error) {
	if v > math.MaxInt64 {
		return FieldValue{}, fmt.Errorf("integer value %d overflows int64", v)
	}
	return NewInteger(int64(v)), nil
}

func validateGeoPoint(g GeoPoint) error {
	if math.IsNaN(g.Latitude) || g.Latitude < -90 || g.Latitude > 90 {
		return fmt.Errorf("latitude must be in the range [-90, 90], got %v", g.Latitude)
	}
	if math.IsNaN(g.Longitude) || g.Longitude < -180 || g.Longitude > 180 {
		return fmt.Errorf("longitude must be in the range [-180, 180], got %v", g.Longitude)
	}
	return nil
}
