// Package bsonwire contains the low-level byte layout of BSON documents:
// element type tags, fixed value widths, bounds-checked primitive readers
// and append-style builders. Everything operates on plain byte slices at
// explicit offsets; nothing here decodes more than it is asked for.
//
// Document: int32 total length (includes itself and the terminator)
// followed by elements, closed by a 0x00 terminator byte.
// Element: type tag byte + NUL-terminated field name + value.
// Arrays share the document layout; the names are decimal index strings.
// All multi-byte values are little-endian, doubles are IEEE-754 binary64.
package bsonwire

// Type is a BSON element type tag.
type Type byte

const (
	TypeDouble         Type = 0x01
	TypeString         Type = 0x02
	TypeDocument       Type = 0x03
	TypeArray          Type = 0x04
	TypeBinary         Type = 0x05
	TypeUndefined      Type = 0x06 // deprecated in the format, still on the wire
	TypeObjectID       Type = 0x07
	TypeBool           Type = 0x08
	TypeDateTime       Type = 0x09
	TypeNull           Type = 0x0A
	TypeRegex          Type = 0x0B
	TypeDBPointer      Type = 0x0C // deprecated
	TypeCode           Type = 0x0D
	TypeSymbol         Type = 0x0E // deprecated
	TypeCodeWithScope  Type = 0x0F // deprecated
	TypeInt32          Type = 0x10
	TypeTimestamp      Type = 0x11
	TypeInt64          Type = 0x12
	TypeDecimal128     Type = 0x13
	TypeMinKey         Type = 0xFF
	TypeMaxKey         Type = 0x7F
	terminator         Type = 0x00
)

// MinDocumentSize is the encoded size of an empty document:
// 4 length bytes plus the terminator.
const MinDocumentSize = 5

func (t Type) String() string {
	switch t {
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeDocument:
		return "document"
	case TypeArray:
		return "array"
	case TypeBinary:
		return "binary"
	case TypeUndefined:
		return "undefined"
	case TypeObjectID:
		return "objectID"
	case TypeBool:
		return "bool"
	case TypeDateTime:
		return "datetime"
	case TypeNull:
		return "null"
	case TypeRegex:
		return "regex"
	case TypeDBPointer:
		return "dbPointer"
	case TypeCode:
		return "code"
	case TypeSymbol:
		return "symbol"
	case TypeCodeWithScope:
		return "codeWithScope"
	case TypeInt32:
		return "int32"
	case TypeTimestamp:
		return "timestamp"
	case TypeInt64:
		return "int64"
	case TypeDecimal128:
		return "decimal128"
	case TypeMinKey:
		return "minKey"
	case TypeMaxKey:
		return "maxKey"
	}
	return "invalid"
}

// Valid reports whether t is a known wire tag.
func (t Type) Valid() bool {
	if t >= TypeDouble && t <= TypeDecimal128 {
		return true
	}
	return t == TypeMinKey || t == TypeMaxKey
}
