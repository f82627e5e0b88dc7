package lazybson

import (
	"fmt"

	"github.com/rawbytedev/lazybson/pkg/bsonwire"
)

// MapDocument is the eager counterpart of Document: one pass over the
// buffer that decodes every field up front into a map. Useful when most
// fields will be read anyway and the laziness machinery would only add
// overhead. It satisfies the same Reader contract as the lazy view.
//
// Nested documents and arrays are forced recursively, so after ParseEager
// returns no later read touches the wire bytes again.
type MapDocument struct {
	names  []string // wire order
	values map[string]*Value
}

// ParseEager decodes the document at the start of buf into a MapDocument.
func ParseEager(buf []byte) (*MapDocument, error) {
	end, err := documentWindow(buf)
	if err != nil {
		return nil, err
	}
	return newMapDocument(buf, 0, end)
}

func newMapDocument(buf []byte, off, end int) (*MapDocument, error) {
	m := &MapDocument{values: make(map[string]*Value)}
	err := walkElements(buf, off, end, func(name []byte, t bsonwire.Type, valOff, valLen int) error {
		v, err := decodeValue(buf, valOff, valLen, t)
		if err != nil {
			return err
		}
		if err := materialize(v); err != nil {
			return err
		}
		key := string(name)
		m.names = append(m.names, key)
		m.values[key] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// materialize forces every cache slot of any nested view inside v so the
// whole subtree is decoded before ParseEager returns.
func materialize(v *Value) error {
	var d *Document
	switch v.t {
	case bsonwire.TypeDocument, bsonwire.TypeCodeWithScope:
		d = v.d
	case bsonwire.TypeArray:
		d = v.a.doc
	default:
		return nil
	}
	for i := range d.fields {
		child, err := d.resolve(i)
		if err != nil {
			return err
		}
		if err := materialize(child); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the decoded value of name, or ErrNotFound.
func (m *MapDocument) Lookup(name string) (*Value, error) {
	v, ok := m.values[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return v, nil
}

// Contains reports whether the document has a field called name.
func (m *MapDocument) Contains(name string) bool {
	_, ok := m.values[name]
	return ok
}

// FieldCount returns the number of fields in the document.
func (m *MapDocument) FieldCount() int { return len(m.names) }

// IsEmpty reports whether the document has no fields.
func (m *MapDocument) IsEmpty() bool { return len(m.names) == 0 }

// FieldNames returns the field names in wire order.
func (m *MapDocument) FieldNames() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}
