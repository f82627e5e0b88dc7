package lazybson

import (
	"github.com/rawbytedev/lazybson/internal/common"
	"github.com/rawbytedev/lazybson/pkg/bsonwire"
)

// SelectOptions controls a partial field extraction.
type SelectOptions struct {
	// EarlyExit stops the scan as soon as every target has been found,
	// leaving the rest of the document untouched. This is where the speedup
	// comes from when pulling a few fields out of a large document.
	EarlyExit bool

	// Ordered is a previously-observed order of the target fields (for
	// example recorded from Document.FieldNames on an earlier document of
	// the same logical schema). When set, each element is first compared
	// against the target expected at the current position, turning the
	// common in-order case into a single byte comparison instead of a map
	// lookup. Out-of-order documents still match through the fallback, just
	// slower.
	Ordered []string
}

// SelectFields scans the document once, front to back, decoding only the
// fields named in targets and skipping everything else via the size table.
// No field index is built. Targets missing from the document are simply
// absent from the result map; a malformed document is an error.
func SelectFields(buf []byte, targets []string, opt SelectOptions) (map[string]*Value, error) {
	if _, err := documentWindow(buf); err != nil {
		return nil, err
	}
	remaining := make(map[string]bool, len(targets))
	for _, t := range targets {
		remaining[t] = true
	}
	out := make(map[string]*Value, len(targets))
	next := 0 // position in the Ordered hint

	l, _ := bsonwire.ReadInt32(buf, 0)
	err := walkElements(buf, 0, int(l), func(name []byte, t bsonwire.Type, valOff, valLen int) error {
		var key string
		switch {
		case next < len(opt.Ordered) && common.EqualBytesString(name, opt.Ordered[next]):
			key = opt.Ordered[next]
			next++
			if !remaining[key] {
				return nil // already matched through the fallback path
			}
		default:
			if !remaining[string(name)] {
				return nil
			}
			key = string(name)
		}
		v, err := decodeValue(buf, valOff, valLen, t)
		if err != nil {
			return err
		}
		out[key] = v
		delete(remaining, key)
		if opt.EarlyExit && len(remaining) == 0 {
			return errStopWalk
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
