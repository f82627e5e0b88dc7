package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/rawbytedev/lazybson"
	"github.com/rawbytedev/lazybson/pkg/bsonwire"
)

// Profiling harness: builds a wide document, then hammers the parse,
// random-access and partial-select paths while pprof is live on :6060.

func buildWideDoc(fields int) []byte {
	var elems [][]byte
	for i := 0; i < fields; i++ {
		key := "field_" + strconv.Itoa(i)
		switch i % 3 {
		case 0:
			elems = append(elems, bsonwire.AppendInt64Element(nil, key, int64(i)))
		case 1:
			elems = append(elems, bsonwire.AppendStringElement(nil, key, "payload payload payload"))
		default:
			elems = append(elems, bsonwire.AppendDoubleElement(nil, key, float64(i)*1.5))
		}
	}
	return bsonwire.BuildDocument(nil, elems...)
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	buf := buildWideDoc(200)
	targets := []string{"field_3", "field_7"}

	for i := 0; i < 10000; i++ {
		doc, err := lazybson.Parse(buf)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := doc.Int64("field_0"); err != nil {
			log.Fatal(err)
		}
		if _, err := doc.StringValue("field_1"); err != nil {
			log.Fatal(err)
		}
		if _, err := lazybson.SelectFields(buf, targets, lazybson.SelectOptions{EarlyExit: true}); err != nil {
			log.Fatal(err)
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
