package generate

import (
	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

// ResourceTypesGenerator writes the names of all resource types of the release.
type ResourceTypesGenerator struct {
	NoOpGenerator
}

func (g ResourceTypesGenerator) GenerateAdditional(f func(fileName string) *File, defs ir.Definitions) {
	file := f("resource_types")
	file.Var().Id("resourceTypeNames").Op("=").Index().String().ValuesFunc(func(g *Group) {
		for _, name := range defs.ResourceTypes {
			g.Line().Lit(name)
		}
		g.Line()
	})
}
