package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/rawbytedev/unistr"
)

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

	chunk, err := unistr.FromString(strings.Repeat("payload ", 16))
	if err != nil {
		log.Fatal(err)
	}
	for i := 0; i < 10000; i++ {
		s, err := unistr.FromString("seed")
		if err != nil {
			log.Fatal(err)
		}
		for s.Cap() < 16000 {
			if err := s.Append(chunk); err != nil {
				log.Fatal(err)
			}
		}
		if _, err := s.Ptr(); err != nil {
			log.Fatal(err)
		}
		_ = s.String()
	}

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Fatal(err)
	}
}
