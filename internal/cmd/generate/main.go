// Command generate writes the generated parts of the model packages.
//
// Run it from the repository root with "go generate ./...".
package main

import (
	"flag"
	"log"

	"github.com/damedic/fhir-model-go/internal/generate"
	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

func main() {
	out := flag.String("out", "model/r4", "output directory")
	flag.Parse()

	log.Println("generating R4 model...")
	err := generate.Generate(*out, "r4", ir.R4(),
		generate.PrimitivesGenerator{},
		generate.ElementsGenerator{},
		generate.DynamicValueTypesGenerator{},
		generate.ResourceTypesGenerator{},
		generate.ValueSetsGenerator{},
	)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("done")
}
