// Command simconnect-bindgen generates the Go declarations for SimConnect.h.
//
// It is normally run through go generate in internal/bindings:
//
//	go run ./cmd/simconnect-bindgen -config internal/bindings/bindgen.yaml -out internal/bindings
package main

import (
	"flag"
	"log"

	"github.com/flightlink/simconnect-go/internal/bindgen"
)

func main() {
	var (
		configPath = flag.String("config", "bindgen.yaml", "generator configuration")
		headerPath = flag.String("header", "", "path to SimConnect.h, overrides the configured header")
		outDir     = flag.String("out", ".", "directory that receives the generated files")
	)
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("simconnect-bindgen: ")

	cfg, err := bindgen.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	written, err := bindgen.GenerateFile(cfg, *headerPath, *outDir)
	if err != nil {
		log.Fatal(err)
	}
	for _, path := range written {
		log.Printf("wrote %s", path)
	}
}
