package lazybson

import (
	"fmt"

	"github.com/rawbytedev/lazybson/pkg/bsonwire"
)

// Value is a decoded BSON value. It is a closed union over the wire types:
// exactly one variant is populated and Type reports which. Values are
// immutable once built; composite variants (documents, arrays, binary
// payloads) alias the original buffer rather than copying it.
type Value struct {
	t   bsonwire.Type
	i64 int64   // int32, int64, datetime, bool, packed timestamp
	f64 float64 // double
	s   string  // string, code, symbol, regex pattern, dbpointer ns
	s2  string  // regex options
	b   []byte  // binary payload, decimal128 bytes (views into the buffer)
	sub byte    // binary subtype
	oid [12]byte
	d   *Document // embedded document, code-with-scope scope
	a   *Array    // embedded array
}

// Type returns the wire type tag of the value.
func (v *Value) Type() bsonwire.Type { return v.t }

// IsNull reports whether the value is the BSON null.
func (v *Value) IsNull() bool { return v.t == bsonwire.TypeNull }

// Double returns the float64 variant.
func (v *Value) Double() (float64, bool) {
	if v.t != bsonwire.TypeDouble {
		return 0, false
	}
	return v.f64, true
}

// Int32 returns the int32 variant.
func (v *Value) Int32() (int32, bool) {
	if v.t != bsonwire.TypeInt32 {
		return 0, false
	}
	return int32(v.i64), true
}

// Int64 returns the int64 variant.
func (v *Value) Int64() (int64, bool) {
	if v.t != bsonwire.TypeInt64 {
		return 0, false
	}
	return v.i64, true
}

// Bool returns the boolean variant.
func (v *Value) Bool() (bool, bool) {
	if v.t != bsonwire.TypeBool {
		return false, false
	}
	return v.i64 != 0, true
}

// StringValue returns the UTF-8 string variant.
func (v *Value) StringValue() (string, bool) {
	if v.t != bsonwire.TypeString {
		return "", false
	}
	return v.s, true
}

// DateTime returns the millisecond timestamp variant.
func (v *Value) DateTime() (int64, bool) {
	if v.t != bsonwire.TypeDateTime {
		return 0, false
	}
	return v.i64, true
}

// Timestamp returns the internal timestamp pair variant.
func (v *Value) Timestamp() (t, i uint32, ok bool) {
	if v.t != bsonwire.TypeTimestamp {
		return 0, 0, false
	}
	return uint32(v.i64 >> 32), uint32(v.i64), true
}

// ObjectID returns the 12-byte identifier variant.
func (v *Value) ObjectID() ([12]byte, bool) {
	if v.t != bsonwire.TypeObjectID {
		return [12]byte{}, false
	}
	return v.oid, true
}

// Binary returns the subtype-tagged byte string variant.
// The payload aliases the underlying buffer.
func (v *Value) Binary() (subtype byte, payload []byte, ok bool) {
	if v.t != bsonwire.TypeBinary {
		return 0, nil, false
	}
	return v.sub, v.b, true
}

// Decimal128 returns the 16 opaque decimal bytes.
func (v *Value) Decimal128() ([16]byte, bool) {
	var d [16]byte
	if v.t != bsonwire.TypeDecimal128 {
		return d, false
	}
	copy(d[:], v.b)
	return d, true
}

// Regex returns the pattern/options variant.
func (v *Value) Regex() (pattern, options string, ok bool) {
	if v.t != bsonwire.TypeRegex {
		return "", "", false
	}
	return v.s, v.s2, true
}

// Code returns the javascript code variant.
func (v *Value) Code() (string, bool) {
	if v.t != bsonwire.TypeCode {
		return "", false
	}
	return v.s, true
}

// Symbol returns the legacy symbol variant.
func (v *Value) Symbol() (string, bool) {
	if v.t != bsonwire.TypeSymbol {
		return "", false
	}
	return v.s, true
}

// CodeWithScope returns the legacy code-with-scope variant.
func (v *Value) CodeWithScope() (string, *Document, bool) {
	if v.t != bsonwire.TypeCodeWithScope {
		return "", nil, false
	}
	return v.s, v.d, true
}

// DBPointer returns the legacy dbpointer variant.
func (v *Value) DBPointer() (ns string, oid [12]byte, ok bool) {
	if v.t != bsonwire.TypeDBPointer {
		return "", [12]byte{}, false
	}
	return v.s, v.oid, true
}

// Document returns the embedded document variant.
func (v *Value) Document() (*Document, bool) {
	if v.t != bsonwire.TypeDocument {
		return nil, false
	}
	return v.d, true
}

// Array returns the embedded array variant.
func (v *Value) Array() (*Array, bool) {
	if v.t != bsonwire.TypeArray {
		return nil, false
	}
	return v.a, true
}

// decodeValue decodes the value of type t occupying buf[off:off+length].
// It is a pure function of the (immutable) buffer bytes, so concurrent
// redundant decodes of the same span always produce equal results.
func decodeValue(buf []byte, off, length int, t bsonwire.Type) (*Value, error) {
	v := &Value{t: t}
	switch t {
	case bsonwire.TypeDouble:
		f, err := bsonwire.ReadDouble(buf, off)
		if err != nil {
			return nil, err
		}
		v.f64 = f
	case bsonwire.TypeString, bsonwire.TypeCode, bsonwire.TypeSymbol:
		s, _, err := bsonwire.ReadString(buf, off)
		if err != nil {
			return nil, err
		}
		v.s = s
	case bsonwire.TypeDocument:
		d, err := newDocument(buf, off, off+length)
		if err != nil {
			return nil, err
		}
		v.d = d
	case bsonwire.TypeArray:
		d, err := newDocument(buf, off, off+length)
		if err != nil {
			return nil, err
		}
		v.a = &Array{doc: d}
	case bsonwire.TypeBinary:
		sub, payload, err := bsonwire.ReadBinary(buf, off)
		if err != nil {
			return nil, err
		}
		v.sub, v.b = sub, payload
	case bsonwire.TypeObjectID:
		oid, err := bsonwire.ReadObjectID(buf, off)
		if err != nil {
			return nil, err
		}
		v.oid = oid
	case bsonwire.TypeBool:
		b, err := bsonwire.ReadBool(buf, off)
		if err != nil {
			return nil, err
		}
		if b {
			v.i64 = 1
		}
	case bsonwire.TypeDateTime:
		ms, err := bsonwire.ReadInt64(buf, off)
		if err != nil {
			return nil, err
		}
		v.i64 = ms
	case bsonwire.TypeInt32:
		n, err := bsonwire.ReadInt32(buf, off)
		if err != nil {
			return nil, err
		}
		v.i64 = int64(n)
	case bsonwire.TypeInt64:
		n, err := bsonwire.ReadInt64(buf, off)
		if err != nil {
			return nil, err
		}
		v.i64 = n
	case bsonwire.TypeTimestamp:
		// increment in the low four bytes, seconds in the high four.
		n, err := bsonwire.ReadInt64(buf, off)
		if err != nil {
			return nil, err
		}
		v.i64 = n
	case bsonwire.TypeDecimal128:
		if off+16 > len(buf) {
			return nil, bsonwire.ErrUnexpectedEOB
		}
		v.b = buf[off : off+16]
	case bsonwire.TypeRegex:
		pat, n, err := bsonwire.ReadCString(buf, off)
		if err != nil {
			return nil, err
		}
		opts, _, err := bsonwire.ReadCString(buf, off+n)
		if err != nil {
			return nil, err
		}
		v.s, v.s2 = string(pat), string(opts)
	case bsonwire.TypeCodeWithScope:
		// total length, then the code string, then the scope document.
		total, err := bsonwire.ReadInt32(buf, off)
		if err != nil {
			return nil, err
		}
		if off+int(total) > len(buf) {
			return nil, bsonwire.ErrUnexpectedEOB
		}
		code, n, err := bsonwire.ReadString(buf, off+4)
		if err != nil {
			return nil, err
		}
		scope, err := newDocument(buf, off+4+n, off+int(total))
		if err != nil {
			return nil, err
		}
		v.s, v.d = code, scope
	case bsonwire.TypeDBPointer:
		ns, n, err := bsonwire.ReadString(buf, off)
		if err != nil {
			return nil, err
		}
		oid, err := bsonwire.ReadObjectID(buf, off+n)
		if err != nil {
			return nil, err
		}
		v.s, v.oid = ns, oid
	case bsonwire.TypeNull, bsonwire.TypeUndefined, bsonwire.TypeMinKey, bsonwire.TypeMaxKey:
		// no payload
	default:
		return nil, fmt.Errorf("%w: 0x%02x", bsonwire.ErrInvalidType, byte(t))
	}
	return v, nil
}
