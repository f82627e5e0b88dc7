package lazybson

import (
	"strconv"

	"github.com/rawbytedev/lazybson/pkg/bsonwire"
)

// Array is a lazy view over a BSON array. The wire layout is identical to a
// document whose field names are the decimal strings of the positional
// indices ("0", "1", ...), so an Array wraps a Document and translates
// positions to name lookups. The index builder parses and hashes those name
// strings exactly as it does for documents; nothing assumes the names are
// sequential or gap-free.
type Array struct {
	doc *Document
}

// Len returns the number of elements.
func (a *Array) Len() int { return a.doc.FieldCount() }

// IsEmpty reports whether the array has no elements.
func (a *Array) IsEmpty() bool { return a.doc.IsEmpty() }

// Document returns the array reinterpreted as its underlying document view.
func (a *Array) Document() *Document { return a.doc }

// Contains reports whether position i is present on the wire. Arrays with
// gaps in their index names are representable; a gapped position is simply
// absent, it does not truncate the elements after it.
func (a *Array) Contains(i int) bool {
	return a.doc.Contains(strconv.Itoa(i))
}

// Lookup returns the decoded element at position i, or ErrNotFound.
func (a *Array) Lookup(i int) (*Value, error) {
	return a.doc.Lookup(strconv.Itoa(i))
}

// Int32 returns the int32 element at position i.
func (a *Array) Int32(i int) (int32, error) {
	return a.doc.Int32(strconv.Itoa(i))
}

// Int64 returns the int64 element at position i.
func (a *Array) Int64(i int) (int64, error) {
	return a.doc.Int64(strconv.Itoa(i))
}

// Double returns the double element at position i.
func (a *Array) Double(i int) (float64, error) {
	return a.doc.Double(strconv.Itoa(i))
}

// Bool returns the boolean element at position i.
func (a *Array) Bool(i int) (bool, error) {
	return a.doc.Bool(strconv.Itoa(i))
}

// StringValue returns the string element at position i.
func (a *Array) StringValue(i int) (string, error) {
	return a.doc.StringValue(strconv.Itoa(i))
}

// DocumentAt returns the embedded document element at position i.
func (a *Array) DocumentAt(i int) (*Document, error) {
	return a.doc.Document(strconv.Itoa(i))
}

// ArrayAt returns the embedded array element at position i.
func (a *Array) ArrayAt(i int) (*Array, error) {
	return a.doc.Array(strconv.Itoa(i))
}

// Values decodes every element in wire order, whatever its index name says.
// Elements encoded with non-sequential names are not silently dropped; the
// list always has exactly as many entries as the wire data contains.
func (a *Array) Values() ([]*Value, error) {
	out := make([]*Value, 0, a.Len())
	d := a.doc
	err := walkElements(d.buf, d.off, d.end, func(name []byte, _ bsonwire.Type, _, _ int) error {
		i := findFieldBytes(d.buf, d.fields, name)
		v, err := d.resolve(i)
		if err != nil {
			return err
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
