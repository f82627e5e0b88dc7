package lazybson

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rawbytedev/lazybson/pkg/bsonwire"
)

var (
	// ErrNotFound means the field is not present in the document. This is
	// distinct from a field that is present with a null value.
	ErrNotFound = errors.New("lazybson: field not found")
	// ErrTypeMismatch means the field is present but stored as a different
	// wire type than the accessor expects.
	ErrTypeMismatch = errors.New("lazybson: type mismatch")
)

// Document is an immutable zero-copy view over one BSON document: the
// shared buffer, the window holding this document, and a field index built
// in a single scan at construction time. Values are decoded on first access
// and memoized per field, so repeated reads are O(1) after the first.
//
// A Document is safe for concurrent readers. The only mutation after
// construction is cache population, which uses a per-slot claim-and-publish
// cell: at most one decoded value is ever published per slot, and a reader
// never observes a partially-built value. Redundant concurrent decodes are
// benign because decoding is a pure function of the immutable buffer.
//
// The Document borrows the buffer; the caller must keep it alive for as
// long as any Document or Array derived from it is in use.
type Document struct {
	buf      []byte
	off, end int
	fields   []fieldRef // sorted by name hash
	cache    []atomic.Pointer[Value]
}

// newDocument indexes the document occupying buf[off:end].
func newDocument(buf []byte, off, end int) (*Document, error) {
	fields, err := buildIndex(buf, off, end)
	if err != nil {
		return nil, err
	}
	return &Document{
		buf:    buf,
		off:    off,
		end:    end,
		fields: fields,
		cache:  make([]atomic.Pointer[Value], len(fields)),
	}, nil
}

// FieldCount returns the number of fields in the document.
func (d *Document) FieldCount() int { return len(d.fields) }

// IsEmpty reports whether the document has no fields.
func (d *Document) IsEmpty() bool { return len(d.fields) == 0 }

// Contains reports whether the document has a field called name.
func (d *Document) Contains(name string) bool {
	return findField(d.buf, d.fields, name) >= 0
}

// FieldNames returns the field names in wire order (not index order).
// This is the ordering hook consumed by SelectOptions.Ordered.
func (d *Document) FieldNames() []string {
	names := make([]string, 0, len(d.fields))
	// the index is hash-sorted, so re-walk the buffer for wire order.
	_ = walkElements(d.buf, d.off, d.end, func(name []byte, _ bsonwire.Type, _, _ int) error {
		names = append(names, string(name))
		return nil
	})
	return names
}

// Bytes returns the raw encoded bytes of the document, aliasing the buffer.
func (d *Document) Bytes() []byte { return d.buf[d.off:d.end] }

// resolve returns the decoded value of field i, decoding and publishing it
// on first touch. Losing a publish race is fine: the loser drops its copy
// and adopts the winner's, so all callers see one value.
func (d *Document) resolve(i int) (*Value, error) {
	if v := d.cache[i].Load(); v != nil {
		return v, nil
	}
	f := &d.fields[i]
	v, err := decodeValue(d.buf, int(f.valOff), int(f.valLen), f.tag)
	if err != nil {
		return nil, err
	}
	if d.cache[i].CompareAndSwap(nil, v) {
		return v, nil
	}
	return d.cache[i].Load(), nil
}

// Lookup returns the decoded value of name, or ErrNotFound.
func (d *Document) Lookup(name string) (*Value, error) {
	i := findField(d.buf, d.fields, name)
	if i < 0 {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return d.resolve(i)
}

// lookupTyped resolves name, requiring the stored tag to be want.
// The tag check happens before any decoding.
func (d *Document) lookupTyped(name string, want bsonwire.Type) (*Value, error) {
	i := findField(d.buf, d.fields, name)
	if i < 0 {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if got := d.fields[i].tag; got != want {
		return nil, fmt.Errorf("%q: %w: have %s, want %s", name, ErrTypeMismatch, got, want)
	}
	return d.resolve(i)
}

// Int32 returns the int32 field name.
func (d *Document) Int32(name string) (int32, error) {
	v, err := d.lookupTyped(name, bsonwire.TypeInt32)
	if err != nil {
		return 0, err
	}
	return int32(v.i64), nil
}

// Int64 returns the int64 field name.
func (d *Document) Int64(name string) (int64, error) {
	v, err := d.lookupTyped(name, bsonwire.TypeInt64)
	if err != nil {
		return 0, err
	}
	return v.i64, nil
}

// Double returns the double field name.
func (d *Document) Double(name string) (float64, error) {
	v, err := d.lookupTyped(name, bsonwire.TypeDouble)
	if err != nil {
		return 0, err
	}
	return v.f64, nil
}

// Bool returns the boolean field name.
func (d *Document) Bool(name string) (bool, error) {
	v, err := d.lookupTyped(name, bsonwire.TypeBool)
	if err != nil {
		return false, err
	}
	return v.i64 != 0, nil
}

// StringValue returns the string field name.
func (d *Document) StringValue(name string) (string, error) {
	v, err := d.lookupTyped(name, bsonwire.TypeString)
	if err != nil {
		return "", err
	}
	return v.s, nil
}

// DateTime returns the millisecond timestamp field name.
func (d *Document) DateTime(name string) (int64, error) {
	v, err := d.lookupTyped(name, bsonwire.TypeDateTime)
	if err != nil {
		return 0, err
	}
	return v.i64, nil
}

// ObjectID returns the 12-byte identifier field name.
func (d *Document) ObjectID(name string) ([12]byte, error) {
	v, err := d.lookupTyped(name, bsonwire.TypeObjectID)
	if err != nil {
		return [12]byte{}, err
	}
	return v.oid, nil
}

// Binary returns the subtype and payload of the binary field name.
func (d *Document) Binary(name string) (byte, []byte, error) {
	v, err := d.lookupTyped(name, bsonwire.TypeBinary)
	if err != nil {
		return 0, nil, err
	}
	return v.sub, v.b, nil
}

// Document returns the embedded document field name as a lazy view sharing
// the same buffer. The child's index is built on first access and cached.
func (d *Document) Document(name string) (*Document, error) {
	v, err := d.lookupTyped(name, bsonwire.TypeDocument)
	if err != nil {
		return nil, err
	}
	return v.d, nil
}

// Array returns the embedded array field name as a lazy view sharing the
// same buffer.
func (d *Document) Array(name string) (*Array, error) {
	v, err := d.lookupTyped(name, bsonwire.TypeArray)
	if err != nil {
		return nil, err
	}
	return v.a, nil
}

// Default-valued variants. These return def when the field is absent AND
// when it is present with a different type, so callers reading drifted
// schemas never see an error. A decode failure on a corrupt buffer also
// yields def.

// Int32Or returns the int32 field name, or def.
func (d *Document) Int32Or(name string, def int32) int32 {
	v, err := d.Int32(name)
	if err != nil {
		return def
	}
	return v
}

// Int64Or returns the int64 field name, or def.
func (d *Document) Int64Or(name string, def int64) int64 {
	v, err := d.Int64(name)
	if err != nil {
		return def
	}
	return v
}

// DoubleOr returns the double field name, or def.
func (d *Document) DoubleOr(name string, def float64) float64 {
	v, err := d.Double(name)
	if err != nil {
		return def
	}
	return v
}

// BoolOr returns the boolean field name, or def.
func (d *Document) BoolOr(name string, def bool) bool {
	v, err := d.Bool(name)
	if err != nil {
		return def
	}
	return v
}

// StringOr returns the string field name, or def.
func (d *Document) StringOr(name, def string) string {
	v, err := d.StringValue(name)
	if err != nil {
		return def
	}
	return v
}
