package lazybson

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/rawbytedev/lazybson/pkg/bsonwire"
)

// A shared Document must tolerate concurrent first-touch decodes: every
// reader sees a fully-built value, and all readers of one field end up
// holding the same published cell.
func TestConcurrentFirstAccess(t *testing.T) {
	const fields = 32
	var elems [][]byte
	for i := 0; i < fields; i++ {
		elems = append(elems, bsonwire.AppendStringElement(nil, "k"+strconv.Itoa(i), "value-"+strconv.Itoa(i)))
	}
	doc, err := Parse(bsonwire.BuildDocument(nil, elems...))
	require.NoError(t, err)

	var mu sync.Mutex
	seen := make(map[string]*Value)

	var g errgroup.Group
	for w := 0; w < 16; w++ {
		g.Go(func() error {
			for i := 0; i < fields; i++ {
				name := "k" + strconv.Itoa(i)
				v, err := doc.Lookup(name)
				if err != nil {
					return err
				}
				s, ok := v.StringValue()
				if !ok || s != "value-"+strconv.Itoa(i) {
					t.Errorf("%s: got %q ok=%v", name, s, ok)
				}
				mu.Lock()
				if prev, dup := seen[name]; dup && prev != v {
					t.Errorf("%s: two distinct values published", name)
				} else {
					seen[name] = v
				}
				mu.Unlock()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestConcurrentNestedAccess(t *testing.T) {
	inner := bsonwire.BuildDocument(nil, bsonwire.AppendInt64Element(nil, "n", 99))
	doc, err := Parse(bsonwire.BuildDocument(nil,
		bsonwire.AppendDocumentElement(nil, "child", inner),
	))
	require.NoError(t, err)

	children := make([]*Document, 8)
	var g errgroup.Group
	for w := 0; w < len(children); w++ {
		w := w
		g.Go(func() error {
			c, err := doc.Document("child")
			if err != nil {
				return err
			}
			if _, err := c.Int64("n"); err != nil {
				return err
			}
			children[w] = c
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, c := range children[1:] {
		require.Same(t, children[0], c, "all readers must share one published child view")
	}
}
