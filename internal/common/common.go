package common

// FNV-1a 64-bit. Field names are hashed once during the index scan from
// their raw wire bytes; lookups hash the Go string form. Both flavors must
// produce identical values for identical byte sequences, which FNV-1a
// guarantees since it consumes one byte at a time.
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// HashBytes returns the FNV-1a 64-bit hash of b.
func HashBytes(b []byte) uint64 {
	h := uint64(fnvOffset64)
	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime64
	}
	return h
}

// HashString returns the FNV-1a 64-bit hash of s.
// Identical to HashBytes([]byte(s)) without the conversion allocation.
func HashString(s string) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	return h
}

// EqualBytesString compares b against s byte for byte without
// materializing an intermediate string.
func EqualBytesString(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := 0; i < len(b); i++ {
		if b[i] != s[i] {
			return false
		}
	}
	return true
}
