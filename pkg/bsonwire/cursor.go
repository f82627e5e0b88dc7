package bsonwire

import (
	"bytes"
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Primitive readers. Every reader takes an absolute offset into buf and
// bounds-checks before touching memory; a short buffer is ErrUnexpectedEOB,
// never a silent truncation.

// ReadInt32 reads a little-endian int32 at off.
func ReadInt32(buf []byte, off int) (int32, error) {
	if off < 0 || off+4 > len(buf) {
		return 0, ErrUnexpectedEOB
	}
	return int32(binary.LittleEndian.Uint32(buf[off:])), nil
}

// ReadInt64 reads a little-endian int64 at off.
func ReadInt64(buf []byte, off int) (int64, error) {
	if off < 0 || off+8 > len(buf) {
		return 0, ErrUnexpectedEOB
	}
	return int64(binary.LittleEndian.Uint64(buf[off:])), nil
}

// ReadDouble reads an IEEE-754 binary64 at off.
func ReadDouble(buf []byte, off int) (float64, error) {
	if off < 0 || off+8 > len(buf) {
		return 0, ErrUnexpectedEOB
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[off:])), nil
}

// ReadBool reads a single boolean byte at off.
func ReadBool(buf []byte, off int) (bool, error) {
	if off < 0 || off+1 > len(buf) {
		return false, ErrUnexpectedEOB
	}
	return buf[off] == 0x01, nil
}

// ReadByte reads one byte at off.
func ReadByte(buf []byte, off int) (byte, error) {
	if off < 0 || off+1 > len(buf) {
		return 0, ErrUnexpectedEOB
	}
	return buf[off], nil
}

// ReadCString returns the bytes of the NUL-terminated string at off,
// excluding the terminator, and the total bytes consumed including it.
// The returned slice aliases buf.
func ReadCString(buf []byte, off int) ([]byte, int, error) {
	if off < 0 || off >= len(buf) {
		return nil, 0, ErrUnexpectedEOB
	}
	idx := bytes.IndexByte(buf[off:], 0x00)
	if idx < 0 {
		return nil, 0, ErrUnexpectedEOB
	}
	return buf[off : off+idx], idx + 1, nil
}

// ReadString reads a length-prefixed BSON string at off and returns the
// decoded Go string plus the total bytes consumed (prefix, payload, NUL).
// The payload is validated as UTF-8.
func ReadString(buf []byte, off int) (string, int, error) {
	l, err := ReadInt32(buf, off)
	if err != nil {
		return "", 0, err
	}
	// l counts the payload including its trailing NUL, so at least 1.
	if l < 1 {
		return "", 0, ErrInvalidLength
	}
	end := off + 4 + int(l)
	if end > len(buf) {
		return "", 0, ErrUnexpectedEOB
	}
	raw := buf[off+4 : end-1]
	if buf[end-1] != 0x00 {
		return "", 0, ErrMissingTerminator
	}
	if !utf8.Valid(raw) {
		return "", 0, ErrInvalidUTF8
	}
	return string(raw), 4 + int(l), nil
}

// ReadObjectID reads the 12-byte identifier at off.
func ReadObjectID(buf []byte, off int) ([12]byte, error) {
	var oid [12]byte
	if off < 0 || off+12 > len(buf) {
		return oid, ErrUnexpectedEOB
	}
	copy(oid[:], buf[off:off+12])
	return oid, nil
}

// ReadBinary reads a binary value at off, returning the subtype and a view
// of the payload aliasing buf.
func ReadBinary(buf []byte, off int) (subtype byte, payload []byte, err error) {
	l, err := ReadInt32(buf, off)
	if err != nil {
		return 0, nil, err
	}
	if l < 0 {
		return 0, nil, ErrInvalidLength
	}
	if off+4+1+int(l) > len(buf) {
		return 0, nil, ErrUnexpectedEOB
	}
	subtype = buf[off+4]
	payload = buf[off+5 : off+5+int(l)]
	return subtype, payload, nil
}
