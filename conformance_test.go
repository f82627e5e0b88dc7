package lazybson

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/lazybson/pkg/bsonwire"
)

// Fixture corpus shared by the lazy, eager and select paths. Each case is
// encoded once and then read back through all three.
const conformanceYAML = `
- name: scalars
  int32s: {a: 1, neg: -12, zero: 0}
  strings: {greet: "hello", empty: ""}
- name: numbers
  int32s: {small: 7}
  int64s: {big: 1099511627776, negbig: -5000000000}
  doubles: {pi: 3.14159, half: 0.5}
- name: flags
  bools: {t: true, f: false}
  strings: {tag: "χρόνος"}
- name: wide
  int32s: {f1: 1, f2: 2, f3: 3, f4: 4, f5: 5, f6: 6, f7: 7, f8: 8}
`

type conformanceCase struct {
	Name    string             `yaml:"name"`
	Int32s  map[string]int32   `yaml:"int32s"`
	Int64s  map[string]int64   `yaml:"int64s"`
	Doubles map[string]float64 `yaml:"doubles"`
	Strings map[string]string  `yaml:"strings"`
	Bools   map[string]bool    `yaml:"bools"`
}

func (c *conformanceCase) encode() []byte {
	var elems [][]byte
	for k, v := range c.Int32s {
		elems = append(elems, bsonwire.AppendInt32Element(nil, k, v))
	}
	for k, v := range c.Int64s {
		elems = append(elems, bsonwire.AppendInt64Element(nil, k, v))
	}
	for k, v := range c.Doubles {
		elems = append(elems, bsonwire.AppendDoubleElement(nil, k, v))
	}
	for k, v := range c.Strings {
		elems = append(elems, bsonwire.AppendStringElement(nil, k, v))
	}
	for k, v := range c.Bools {
		elems = append(elems, bsonwire.AppendBoolElement(nil, k, v))
	}
	return bsonwire.BuildDocument(nil, elems...)
}

func (c *conformanceCase) targets() []string {
	var names []string
	for k := range c.Int32s {
		names = append(names, k)
	}
	for k := range c.Int64s {
		names = append(names, k)
	}
	for k := range c.Doubles {
		names = append(names, k)
	}
	for k := range c.Strings {
		names = append(names, k)
	}
	for k := range c.Bools {
		names = append(names, k)
	}
	return names
}

func (c *conformanceCase) verify(t *testing.T, r Reader) {
	t.Helper()
	for k, want := range c.Int32s {
		v, err := r.Lookup(k)
		require.NoError(t, err)
		got, ok := v.Int32()
		require.True(t, ok, "field %q", k)
		require.Equal(t, want, got, "field %q", k)
	}
	for k, want := range c.Int64s {
		v, err := r.Lookup(k)
		require.NoError(t, err)
		got, ok := v.Int64()
		require.True(t, ok, "field %q", k)
		require.Equal(t, want, got, "field %q", k)
	}
	for k, want := range c.Doubles {
		v, err := r.Lookup(k)
		require.NoError(t, err)
		got, ok := v.Double()
		require.True(t, ok, "field %q", k)
		require.Equal(t, want, got, "field %q", k)
	}
	for k, want := range c.Strings {
		v, err := r.Lookup(k)
		require.NoError(t, err)
		got, ok := v.StringValue()
		require.True(t, ok, "field %q", k)
		require.Equal(t, want, got, "field %q", k)
	}
	for k, want := range c.Bools {
		v, err := r.Lookup(k)
		require.NoError(t, err)
		got, ok := v.Bool()
		require.True(t, ok, "field %q", k)
		require.Equal(t, want, got, "field %q", k)
	}
}

func TestConformanceCorpus(t *testing.T) {
	var cases []conformanceCase
	require.NoError(t, yaml.Unmarshal([]byte(conformanceYAML), &cases))
	require.NotEmpty(t, cases)

	for i := range cases {
		c := &cases[i]
		t.Run(c.Name, func(t *testing.T) {
			buf := c.encode()

			lazy, err := Parse(buf)
			require.NoError(t, err)
			c.verify(t, lazy)

			eager, err := ParseEager(buf)
			require.NoError(t, err)
			c.verify(t, eager)

			out, err := SelectFields(buf, c.targets(), SelectOptions{EarlyExit: true})
			require.NoError(t, err)
			require.Len(t, out, len(c.targets()))
		})
	}
}

// Round-trip property: encode a random scalar document, parse it lazily,
// and every field must read back exactly.
func TestRoundTripRandomScalars(t *testing.T) {
	rng := rand.New(rand.NewSource(0x1ab))
	for iter := 0; iter < 200; iter++ {
		n := 1 + rng.Intn(24)
		keys := make([]string, n)
		var elems [][]byte
		i32s := map[string]int32{}
		i64s := map[string]int64{}
		f64s := map[string]float64{}
		strs := map[string]string{}
		for i := range keys {
			k := "k" + strconv.Itoa(i) + "_" + strconv.Itoa(rng.Intn(1000))
			keys[i] = k
			switch rng.Intn(4) {
			case 0:
				v := int32(rng.Uint64())
				i32s[k] = v
				elems = append(elems, bsonwire.AppendInt32Element(nil, k, v))
			case 1:
				v := int64(rng.Uint64())
				i64s[k] = v
				elems = append(elems, bsonwire.AppendInt64Element(nil, k, v))
			case 2:
				v := rng.NormFloat64()
				f64s[k] = v
				elems = append(elems, bsonwire.AppendDoubleElement(nil, k, v))
			default:
				v := strconv.FormatUint(rng.Uint64(), 36)
				strs[k] = v
				elems = append(elems, bsonwire.AppendStringElement(nil, k, v))
			}
		}
		doc, err := Parse(bsonwire.BuildDocument(nil, elems...))
		require.NoError(t, err)
		require.Equal(t, n, doc.FieldCount())
		for k, want := range i32s {
			got, err := doc.Int32(k)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
		for k, want := range i64s {
			got, err := doc.Int64(k)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
		for k, want := range f64s {
			got, err := doc.Double(k)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
		for k, want := range strs {
			got, err := doc.StringValue(k)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	}
}
