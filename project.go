package lazybson

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/rawbytedev/lazybson/pkg/bsonwire"
)

// JSON projection of decoded values, for debugging and logging. Scalars map
// to their natural JSON form; types JSON has no spelling for are wrapped in
// a small "$"-keyed object. This path decodes everything it touches and
// gives up the zero-copy property, so keep it off hot paths.

// Interface returns the value as plain Go data.
func (v *Value) Interface() (any, error) {
	switch v.t {
	case bsonwire.TypeDouble:
		return v.f64, nil
	case bsonwire.TypeString:
		return v.s, nil
	case bsonwire.TypeDocument:
		return v.d.Interface()
	case bsonwire.TypeArray:
		return v.a.Interface()
	case bsonwire.TypeBinary:
		return map[string]any{
			"$binary":  base64.StdEncoding.EncodeToString(v.b),
			"$subtype": int(v.sub),
		}, nil
	case bsonwire.TypeUndefined:
		return map[string]any{"$undefined": true}, nil
	case bsonwire.TypeObjectID:
		return map[string]any{"$oid": hex.EncodeToString(v.oid[:])}, nil
	case bsonwire.TypeBool:
		return v.i64 != 0, nil
	case bsonwire.TypeDateTime:
		return map[string]any{"$date": v.i64}, nil
	case bsonwire.TypeNull:
		return nil, nil
	case bsonwire.TypeRegex:
		return map[string]any{"$regex": v.s, "$options": v.s2}, nil
	case bsonwire.TypeDBPointer:
		return map[string]any{"$dbPointer": map[string]any{
			"$ref": v.s,
			"$id":  hex.EncodeToString(v.oid[:]),
		}}, nil
	case bsonwire.TypeCode:
		return map[string]any{"$code": v.s}, nil
	case bsonwire.TypeSymbol:
		return map[string]any{"$symbol": v.s}, nil
	case bsonwire.TypeCodeWithScope:
		scope, err := v.d.Interface()
		if err != nil {
			return nil, err
		}
		return map[string]any{"$code": v.s, "$scope": scope}, nil
	case bsonwire.TypeInt32:
		return int32(v.i64), nil
	case bsonwire.TypeTimestamp:
		t, i, _ := v.Timestamp()
		return map[string]any{"$timestamp": map[string]any{"t": t, "i": i}}, nil
	case bsonwire.TypeInt64:
		return v.i64, nil
	case bsonwire.TypeDecimal128:
		return map[string]any{"$decimal128": hex.EncodeToString(v.b)}, nil
	case bsonwire.TypeMinKey:
		return map[string]any{"$minKey": 1}, nil
	case bsonwire.TypeMaxKey:
		return map[string]any{"$maxKey": 1}, nil
	}
	return nil, fmt.Errorf("%w: 0x%02x", bsonwire.ErrInvalidType, byte(v.t))
}

// Interface decodes every field into a plain map.
func (d *Document) Interface() (map[string]any, error) {
	out := make(map[string]any, len(d.fields))
	err := walkElements(d.buf, d.off, d.end, func(name []byte, _ bsonwire.Type, _, _ int) error {
		i := findFieldBytes(d.buf, d.fields, name)
		v, err := d.resolve(i)
		if err != nil {
			return err
		}
		got, err := v.Interface()
		if err != nil {
			return err
		}
		out[string(name)] = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Interface decodes every element, in wire order, into a plain slice.
func (a *Array) Interface() ([]any, error) {
	values, err := a.Values()
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(values))
	for _, v := range values {
		got, err := v.Interface()
		if err != nil {
			return nil, err
		}
		out = append(out, got)
	}
	return out, nil
}

// MarshalJSON implements json.Marshaler.
func (d *Document) MarshalJSON() ([]byte, error) {
	tree, err := d.Interface()
	if err != nil {
		return nil, err
	}
	return gojson.Marshal(tree)
}

// MarshalJSON implements json.Marshaler.
func (a *Array) MarshalJSON() ([]byte, error) {
	tree, err := a.Interface()
	if err != nil {
		return nil, err
	}
	return gojson.Marshal(tree)
}
