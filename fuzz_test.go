package lazybson

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/lazybson/pkg/bsonwire"
)

// FuzzParse feeds arbitrary bytes to the parser. Any input is allowed to be
// rejected, but nothing may panic or read out of bounds, and an accepted
// document must survive a full decode of every field.
func FuzzParse(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{5, 0, 0, 0, 0})
	f.Add(sampleDoc())
	f.Add(int32Array(10, 20, 30))
	f.Add(bsonwire.BuildDocument(nil,
		bsonwire.AppendStringElement(nil, "s", "fuzz"),
		bsonwire.AppendDoubleElement(nil, "d", 1.5),
		bsonwire.AppendNullElement(nil, "n"),
	))

	f.Fuzz(func(t *testing.T, data []byte) {
		doc, err := Parse(data)
		if err != nil {
			return
		}
		for _, name := range doc.FieldNames() {
			// decode failures are fine, panics are not
			_, _ = doc.Lookup(name)
		}
		_, _ = doc.Interface()
	})
}

func FuzzBuildAndRead(f *testing.F) {
	f.Add("a", int32(1), int64(2), "x")
	f.Add("", int32(-1), int64(1<<40), "")
	f.Fuzz(fuzzBuildAndRead)
}
func fuzzBuildAndRead(t *testing.T, name string, i32 int32, i64 int64, s string) {
	for _, c := range []byte(name) {
		if c == 0 {
			t.Skip("NUL is not representable in an element name")
		}
	}
	if !utf8.ValidString(name) || !utf8.ValidString(s) {
		t.Skip("the string reader rejects invalid UTF-8")
	}
	buf := bsonwire.BuildDocument(nil,
		bsonwire.AppendInt32Element(nil, name, i32),
		bsonwire.AppendInt64Element(nil, name+"_l", i64),
		bsonwire.AppendStringElement(nil, name+"_s", s),
	)
	doc, err := Parse(buf)
	require.NoError(t, err)

	got32, err := doc.Int32(name)
	require.NoError(t, err)
	require.Equal(t, i32, got32)
	got64, err := doc.Int64(name + "_l")
	require.NoError(t, err)
	require.Equal(t, i64, got64)
	gotS, err := doc.StringValue(name + "_s")
	require.NoError(t, err)
	require.Equal(t, s, gotS)
}
