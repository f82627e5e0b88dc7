package lazybson

import (
	"fmt"
	"sort"

	"github.com/rawbytedev/lazybson/internal/common"
	"github.com/rawbytedev/lazybson/pkg/bsonwire"
)

// fieldRef is the index entry for one element: where its name and value
// live in the buffer, its type tag, and the precomputed name hash used as
// the search key. Nothing is decoded while building these.
type fieldRef struct {
	hash    uint64
	nameOff int32
	nameLen int32
	valOff  int32
	valLen  int32
	tag     bsonwire.Type
}

// walkElements drives one forward scan over the elements of the document
// window buf[off:end] (window includes the length prefix and terminator).
// For each element it reports the raw name bytes, the tag and the value
// span; values are sized via the size table, never decoded. fn may return
// errStopWalk to end the scan early.
//
// The scan distinguishes "found the terminator" from "ran off the declared
// end": the latter is ErrMissingTerminator, never silent success.
func walkElements(buf []byte, off, end int, fn func(name []byte, t bsonwire.Type, valOff, valLen int) error) error {
	if off < 0 || end > len(buf) || end-off < bsonwire.MinDocumentSize {
		return bsonwire.ErrUnexpectedEOB
	}
	pos := off + 4 // skip the document's own length prefix
	last := end - 1
	for pos <= last {
		tag := bsonwire.Type(buf[pos])
		if tag == 0x00 {
			if pos != last {
				return fmt.Errorf("%w: %d trailing bytes after terminator", bsonwire.ErrInvalidLength, last-pos)
			}
			return nil
		}
		if pos == last {
			// reached the declared end and the byte there is not 0x00
			return bsonwire.ErrMissingTerminator
		}
		if !tag.Valid() {
			return fmt.Errorf("%w: 0x%02x at offset %d", bsonwire.ErrInvalidType, buf[pos], pos)
		}
		name, n, err := bsonwire.ReadCString(buf, pos+1)
		if err != nil {
			return err
		}
		valOff := pos + 1 + n
		valLen, err := bsonwire.ValueSize(buf, valOff, tag)
		if err != nil {
			return err
		}
		if valOff+valLen > end {
			return bsonwire.ErrUnexpectedEOB
		}
		if err := fn(name, tag, valOff, valLen); err != nil {
			if err == errStopWalk {
				return nil
			}
			return err
		}
		pos = valOff + valLen
	}
	return bsonwire.ErrMissingTerminator
}

// errStopWalk ends a walk early without reporting an error.
var errStopWalk = fmt.Errorf("stop walk")

// buildIndex scans the document window once and returns its field index
// sorted by name hash. O(n) over the bytes plus O(m log m) over the m
// fields; no value is decoded.
func buildIndex(buf []byte, off, end int) ([]fieldRef, error) {
	var fields []fieldRef
	err := walkElements(buf, off, end, func(name []byte, t bsonwire.Type, valOff, valLen int) error {
		nameOff := valOff - 1 - len(name)
		fields = append(fields, fieldRef{
			hash:    common.HashBytes(name),
			nameOff: int32(nameOff),
			nameLen: int32(len(name)),
			valOff:  int32(valOff),
			valLen:  int32(valLen),
			tag:     t,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(fields, func(i, j int) bool {
		if fields[i].hash != fields[j].hash {
			return fields[i].hash < fields[j].hash
		}
		return fields[i].nameOff < fields[j].nameOff
	})
	return fields, nil
}

// name returns the raw field name bytes of f, aliasing buf.
func (f *fieldRef) name(buf []byte) []byte {
	return buf[f.nameOff : f.nameOff+f.nameLen]
}

// findField binary-searches the hash-sorted index for name and returns the
// entry position, or -1. The hash locates the bucket in O(log n); the raw
// name bytes are then compared directly against the buffer (no intermediate
// string) to rule out collisions, probing forward while the hash matches.
func findField(buf []byte, fields []fieldRef, name string) int {
	h := common.HashString(name)
	i := sort.Search(len(fields), func(i int) bool { return fields[i].hash >= h })
	for ; i < len(fields) && fields[i].hash == h; i++ {
		if common.EqualBytesString(fields[i].name(buf), name) {
			return i
		}
	}
	return -1
}

// findFieldBytes is findField for a raw name that is still a byte slice.
func findFieldBytes(buf []byte, fields []fieldRef, name []byte) int {
	h := common.HashBytes(name)
	i := sort.Search(len(fields), func(i int) bool { return fields[i].hash >= h })
	for ; i < len(fields) && fields[i].hash == h; i++ {
		f := &fields[i]
		if int(f.nameLen) == len(name) && string(f.name(buf)) == string(name) {
			return i
		}
	}
	return -1
}
