package lazybson

import (
	"strconv"
	"testing"

	"github.com/rawbytedev/lazybson/pkg/bsonwire"
)

func benchDoc(n int) []byte {
	var elems [][]byte
	for i := 0; i < n; i++ {
		name := "field" + strconv.Itoa(i)
		switch i % 3 {
		case 0:
			elems = append(elems, bsonwire.AppendInt64Element(nil, name, int64(i)*7919))
		case 1:
			elems = append(elems, bsonwire.AppendStringElement(nil, name, "payload-"+strconv.Itoa(i)))
		default:
			elems = append(elems, bsonwire.AppendDoubleElement(nil, name, float64(i)*0.5))
		}
	}
	return bsonwire.BuildDocument(nil, elems...)
}

func BenchmarkParse(b *testing.B) {
	buf := benchDoc(100)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(buf)
	}
}

func BenchmarkLookupCold(b *testing.B) {
	buf := benchDoc(100)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		doc, _ := Parse(buf)
		_, _ = doc.Int64("field51")
	}
}

func BenchmarkLookupHot(b *testing.B) {
	doc, _ := Parse(benchDoc(100))
	_, _ = doc.Int64("field51")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = doc.Int64("field51")
	}
}

func BenchmarkSelectTwoOfHundred(b *testing.B) {
	buf := benchDoc(100)
	targets := []string{"field3", "field7"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = SelectFields(buf, targets, SelectOptions{EarlyExit: true})
	}
}

func BenchmarkSelectOrderedHint(b *testing.B) {
	buf := benchDoc(100)
	targets := []string{"field3", "field7", "field90"}
	opt := SelectOptions{EarlyExit: true, Ordered: []string{"field3", "field7", "field90"}}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = SelectFields(buf, targets, opt)
	}
}

func BenchmarkParseEager(b *testing.B) {
	buf := benchDoc(100)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = ParseEager(buf)
	}
}

func BenchmarkFieldNames(b *testing.B) {
	doc, _ := Parse(benchDoc(100))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = doc.FieldNames()
	}
}
