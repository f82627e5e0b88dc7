// Package lazybson reads BSON documents without materializing them. Parse
// runs one scan over the buffer and builds an in-place index of field
// locations (type tag, name span, value span, name hash) without decoding a
// single value; typed getters then decode individual fields on demand and
// memoize the result. SelectFields goes the other way: no index at all, one
// forward scan that decodes the requested fields and size-skips the rest,
// stopping early once everything requested has been found.
//
// Both paths are zero-copy: documents, arrays, strings-in-flight, binary
// payloads and nested views all reference windows of the caller's buffer.
// The caller owns the buffer and must keep it alive and unmodified while
// any view derived from it is in use.
package lazybson

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rawbytedev/lazybson/pkg/bsonwire"
)

// documentWindow validates the outer framing of buf: a length prefix that
// covers at least an empty document and does not overrun the buffer.
// It returns the declared end offset. Trailing bytes beyond the declared
// length are allowed (buffers often carry more than one document).
func documentWindow(buf []byte) (int, error) {
	l, err := bsonwire.ReadInt32(buf, 0)
	if err != nil {
		return 0, err
	}
	if l < bsonwire.MinDocumentSize {
		return 0, bsonwire.ErrInvalidLength
	}
	if int(l) > len(buf) {
		return 0, bsonwire.ErrUnexpectedEOB
	}
	return int(l), nil
}

// Parse indexes the document at the start of buf and returns a lazy view
// of it. The buffer is borrowed, not copied.
func Parse(buf []byte) (*Document, error) {
	end, err := documentWindow(buf)
	if err != nil {
		return nil, err
	}
	return newDocument(buf, 0, end)
}

// ParseArray is Parse for a buffer whose outermost value is an array.
// The wire layout is the same; only the interpretation differs.
func ParseArray(buf []byte) (*Array, error) {
	end, err := documentWindow(buf)
	if err != nil {
		return nil, err
	}
	d, err := newDocument(buf, 0, end)
	if err != nil {
		return nil, err
	}
	return &Array{doc: d}, nil
}

// ParseMany indexes independent buffers concurrently and returns the views
// in input order. Each individual parse stays single-threaded; only whole
// documents fan out. The first error aborts the batch.
func ParseMany(bufs [][]byte) ([]*Document, error) {
	docs := make([]*Document, len(bufs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, buf := range bufs {
		i, buf := i, buf
		g.Go(func() error {
			d, err := Parse(buf)
			if err != nil {
				return err
			}
			docs[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
