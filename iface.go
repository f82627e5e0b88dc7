package lazybson

// Reader is the document contract shared by the storage backends: the
// zero-copy lazy Document and the eagerly-materialized MapDocument both
// satisfy it, so callers can pick a backend at construction time without
// changing their read code. Position-independent reads only; iteration
// order is exposed through FieldNames.
type Reader interface {
	Lookup(name string) (*Value, error)
	Contains(name string) bool
	FieldCount() int
	IsEmpty() bool
	FieldNames() []string
}

var (
	_ Reader = (*Document)(nil)
	_ Reader = (*MapDocument)(nil)
)
