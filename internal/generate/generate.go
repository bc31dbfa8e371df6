// Package generate produces the mechanical parts of the model from the intermediate
// representation in package ir.
package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

const moduleName = "github.com/damedic/fhir-model-go"

// Generator contributes code to one or more files.
type Generator interface {
	// GenerateType is called once per type in the order of the definitions.
	GenerateType(f func(fileName string) *File, t ir.Type)
	// GenerateAdditional is called once after all types.
	GenerateAdditional(f func(fileName string) *File, defs ir.Definitions)
}

// NoOpGenerator can be embedded to implement only part of Generator.
type NoOpGenerator struct{}

func (NoOpGenerator) GenerateType(func(fileName string) *File, ir.Type) {}

func (NoOpGenerator) GenerateAdditional(func(fileName string) *File, ir.Definitions) {}

// Generate runs all generators and writes every requested file as <fileName>_gen.go into dir.
func Generate(dir, pkgName string, defs ir.Definitions, gens ...Generator) error {
	files := map[string]*File{}
	file := func(fileName string) *File {
		if f, ok := files[fileName]; ok {
			return f
		}
		f := NewFile(pkgName)
		f.HeaderComment("Code generated by internal/cmd/generate. DO NOT EDIT.")
		files[fileName] = f
		return f
	}

	for _, g := range gens {
		for _, t := range defs.Types {
			g.GenerateType(file, t)
		}
		g.GenerateAdditional(file, defs)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		path := filepath.Join(dir, name+"_gen.go")
		if err := files[name].Save(path); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}
	return nil
}
