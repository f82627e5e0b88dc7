package bsonwire

import (
	"encoding/binary"
	"math"
	"strconv"
)

// Append-style builders. These exist so callers (and this repo's own tests
// and fixtures) can produce wire-correct documents without a separate
// encoder dependency. The decoding path never calls them.

// AppendHeader appends an element header: tag byte plus NUL-terminated key.
func AppendHeader(dst []byte, t Type, key string) []byte {
	dst = append(dst, byte(t))
	dst = append(dst, key...)
	return append(dst, 0x00)
}

func appendI32(dst []byte, v int32) []byte {
	return binary.LittleEndian.AppendUint32(dst, uint32(v))
}

func appendI64(dst []byte, v int64) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(v))
}

func appendLPString(dst []byte, s string) []byte {
	dst = appendI32(dst, int32(len(s)+1))
	dst = append(dst, s...)
	return append(dst, 0x00)
}

// AppendDoubleElement appends key and an IEEE-754 binary64 value.
func AppendDoubleElement(dst []byte, key string, f float64) []byte {
	dst = AppendHeader(dst, TypeDouble, key)
	return binary.LittleEndian.AppendUint64(dst, math.Float64bits(f))
}

// AppendStringElement appends key and a length-prefixed string value.
func AppendStringElement(dst []byte, key, val string) []byte {
	dst = AppendHeader(dst, TypeString, key)
	return appendLPString(dst, val)
}

// AppendInt32Element appends key and an int32 value.
func AppendInt32Element(dst []byte, key string, v int32) []byte {
	return appendI32(AppendHeader(dst, TypeInt32, key), v)
}

// AppendInt64Element appends key and an int64 value.
func AppendInt64Element(dst []byte, key string, v int64) []byte {
	return appendI64(AppendHeader(dst, TypeInt64, key), v)
}

// AppendBoolElement appends key and a boolean value.
func AppendBoolElement(dst []byte, key string, b bool) []byte {
	dst = AppendHeader(dst, TypeBool, key)
	if b {
		return append(dst, 0x01)
	}
	return append(dst, 0x00)
}

// AppendDateTimeElement appends key and a millisecond timestamp value.
func AppendDateTimeElement(dst []byte, key string, ms int64) []byte {
	return appendI64(AppendHeader(dst, TypeDateTime, key), ms)
}

// AppendTimestampElement appends key and an internal timestamp pair,
// increment in the low four bytes.
func AppendTimestampElement(dst []byte, key string, t, i uint32) []byte {
	dst = AppendHeader(dst, TypeTimestamp, key)
	dst = binary.LittleEndian.AppendUint32(dst, i)
	return binary.LittleEndian.AppendUint32(dst, t)
}

// AppendNullElement appends key with a null value.
func AppendNullElement(dst []byte, key string) []byte {
	return AppendHeader(dst, TypeNull, key)
}

// AppendMinKeyElement appends key with a min-key value.
func AppendMinKeyElement(dst []byte, key string) []byte {
	return AppendHeader(dst, TypeMinKey, key)
}

// AppendMaxKeyElement appends key with a max-key value.
func AppendMaxKeyElement(dst []byte, key string) []byte {
	return AppendHeader(dst, TypeMaxKey, key)
}

// AppendObjectIDElement appends key and a 12-byte identifier.
func AppendObjectIDElement(dst []byte, key string, oid [12]byte) []byte {
	return append(AppendHeader(dst, TypeObjectID, key), oid[:]...)
}

// AppendBinaryElement appends key and a subtype-tagged byte string.
func AppendBinaryElement(dst []byte, key string, subtype byte, payload []byte) []byte {
	dst = AppendHeader(dst, TypeBinary, key)
	dst = appendI32(dst, int32(len(payload)))
	dst = append(dst, subtype)
	return append(dst, payload...)
}

// AppendRegexElement appends key and a pattern/options pair.
func AppendRegexElement(dst []byte, key, pattern, options string) []byte {
	dst = AppendHeader(dst, TypeRegex, key)
	dst = append(dst, pattern...)
	dst = append(dst, 0x00)
	dst = append(dst, options...)
	return append(dst, 0x00)
}

// AppendDecimal128Element appends key and 16 opaque decimal bytes.
func AppendDecimal128Element(dst []byte, key string, d [16]byte) []byte {
	return append(AppendHeader(dst, TypeDecimal128, key), d[:]...)
}

// AppendDocumentElement appends key and an already-encoded document.
func AppendDocumentElement(dst []byte, key string, doc []byte) []byte {
	return append(AppendHeader(dst, TypeDocument, key), doc...)
}

// AppendArrayElement appends key and an already-encoded array.
func AppendArrayElement(dst []byte, key string, arr []byte) []byte {
	return append(AppendHeader(dst, TypeArray, key), arr...)
}

// AppendCodeElement appends key and a javascript code string.
func AppendCodeElement(dst []byte, key, code string) []byte {
	dst = AppendHeader(dst, TypeCode, key)
	return appendLPString(dst, code)
}

// AppendSymbolElement appends key and a symbol string.
func AppendSymbolElement(dst []byte, key, symbol string) []byte {
	dst = AppendHeader(dst, TypeSymbol, key)
	return appendLPString(dst, symbol)
}

// AppendCodeWithScopeElement appends key, code and an encoded scope document.
func AppendCodeWithScopeElement(dst []byte, key, code string, scope []byte) []byte {
	dst = AppendHeader(dst, TypeCodeWithScope, key)
	total := int32(4 + 4 + len(code) + 1 + len(scope))
	dst = appendI32(dst, total)
	dst = appendLPString(dst, code)
	return append(dst, scope...)
}

// BuildDocument wraps already-encoded elements in a length prefix and
// terminator, appending the finished document to dst.
func BuildDocument(dst []byte, elems ...[]byte) []byte {
	idx := len(dst)
	dst = append(dst, 0, 0, 0, 0)
	for _, e := range elems {
		dst = append(dst, e...)
	}
	dst = append(dst, byte(terminator))
	binary.LittleEndian.PutUint32(dst[idx:], uint32(len(dst)-idx))
	return dst
}

// BuildArrayFromElements is BuildDocument for pre-keyed array elements.
// Callers are responsible for the decimal index keys.
func BuildArrayFromElements(dst []byte, elems ...[]byte) []byte {
	return BuildDocument(dst, elems...)
}

// IndexKey returns the decimal field name of array position i.
func IndexKey(i int) string { return strconv.Itoa(i) }
