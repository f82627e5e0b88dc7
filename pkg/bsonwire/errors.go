package bsonwire

import "errors"

var (
	// ErrUnexpectedEOB means a read would cross the end of the buffer.
	ErrUnexpectedEOB = errors.New("bsonwire: unexpected end of buffer")
	// ErrMissingTerminator means a document scan reached its declared end
	// without seeing the 0x00 terminator byte.
	ErrMissingTerminator = errors.New("bsonwire: missing document terminator")
	// ErrInvalidType means a type tag outside the known set was seen.
	// Sizes are never guessed for unknown tags; a wrong guess would corrupt
	// every offset after it.
	ErrInvalidType = errors.New("bsonwire: invalid type tag")
	// ErrInvalidUTF8 means a string value's bytes do not decode as UTF-8.
	ErrInvalidUTF8 = errors.New("bsonwire: invalid UTF-8 in string")
	// ErrInvalidLength means a length prefix is negative or does not fit
	// the surrounding buffer.
	ErrInvalidLength = errors.New("bsonwire: invalid length prefix")
)
