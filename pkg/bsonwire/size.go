package bsonwire

import (
	"bytes"
	"fmt"
)

// ValueSize returns the encoded byte length of the value of type t starting
// at off, without decoding it. Fixed-width tags are a constant lookup;
// variable-width tags read only their embedded length prefix (or, for regex,
// scan for the two NUL terminators).
//
// Unknown tags are rejected with ErrInvalidType: guessing a size would
// silently corrupt every subsequent offset in the same scan.
func ValueSize(buf []byte, off int, t Type) (int, error) {
	switch t {
	case TypeNull, TypeUndefined, TypeMinKey, TypeMaxKey:
		return 0, nil
	case TypeBool:
		return 1, nil
	case TypeInt32:
		return 4, nil
	case TypeDouble, TypeInt64, TypeDateTime, TypeTimestamp:
		return 8, nil
	case TypeObjectID:
		return 12, nil
	case TypeDecimal128:
		return 16, nil
	case TypeString, TypeCode, TypeSymbol:
		// prefix + payload; the payload length already counts its NUL.
		l, err := ReadInt32(buf, off)
		if err != nil {
			return 0, err
		}
		if l < 1 {
			return 0, ErrInvalidLength
		}
		return 4 + int(l), nil
	case TypeDocument, TypeArray:
		// the prefix counts itself and the terminator already.
		l, err := ReadInt32(buf, off)
		if err != nil {
			return 0, err
		}
		if l < MinDocumentSize {
			return 0, ErrInvalidLength
		}
		return int(l), nil
	case TypeCodeWithScope:
		// total length covering itself, the code string and the scope doc.
		l, err := ReadInt32(buf, off)
		if err != nil {
			return 0, err
		}
		if l < 4+4+1+MinDocumentSize {
			return 0, ErrInvalidLength
		}
		return int(l), nil
	case TypeBinary:
		l, err := ReadInt32(buf, off)
		if err != nil {
			return 0, err
		}
		if l < 0 {
			return 0, ErrInvalidLength
		}
		return 4 + 1 + int(l), nil
	case TypeDBPointer:
		l, err := ReadInt32(buf, off)
		if err != nil {
			return 0, err
		}
		if l < 1 {
			return 0, ErrInvalidLength
		}
		return 4 + int(l) + 12, nil
	case TypeRegex:
		// two consecutive cstrings: pattern then options.
		if off < 0 || off >= len(buf) {
			return 0, ErrUnexpectedEOB
		}
		p := bytes.IndexByte(buf[off:], 0x00)
		if p < 0 {
			return 0, ErrUnexpectedEOB
		}
		o := bytes.IndexByte(buf[off+p+1:], 0x00)
		if o < 0 {
			return 0, ErrUnexpectedEOB
		}
		return p + 1 + o + 1, nil
	}
	return 0, fmt.Errorf("%w: 0x%02x", ErrInvalidType, byte(t))
}
