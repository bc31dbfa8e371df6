package generate

import (
	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

// DynamicValueTypesGenerator writes the DynamicValueType members, the per-type tag methods and
// the registry used to decode choice elements.
type DynamicValueTypesGenerator struct {
	NoOpGenerator
}

func (g DynamicValueTypesGenerator) GenerateAdditional(f func(fileName string) *File, defs ir.Definitions) {
	tagged := defs.Tagged()
	file := f("dynamic_value_types")

	file.Const().DefsFunc(func(g *Group) {
		for _, t := range tagged {
			g.Id("Type" + t.Name).Id("DynamicValueType").Op("=").Lit(t.Tag)
		}
	})

	file.Comment("dynamicValueTypes lists all members in registration order.")
	file.Var().Id("dynamicValueTypes").Op("=").Index().Id("DynamicValueType").ValuesFunc(func(g *Group) {
		for _, t := range tagged {
			g.Line().Id("Type" + t.Name)
		}
		g.Line()
	})

	for _, t := range tagged {
		file.Func().Params(Id("r").Id(t.Name)).Id("DynamicValueType").Params().Id("DynamicValueType").Block(
			Return(Id("Type" + t.Name)),
		)
	}

	file.Var().Id("choiceCodecs").Map(Id("DynamicValueType")).Id("choiceCodec")

	file.Func().Id("init").Params().Block(
		Id("choiceCodecs").Op("=").Map(Id("DynamicValueType")).Id("choiceCodec").Values(DictFunc(func(d Dict) {
			for _, t := range tagged {
				codec := "structureChoice"
				if t.Kind == ir.KindPrimitive {
					codec = "primitiveChoice"
				}
				d[Id("Type"+t.Name)] = Id(codec).Index(Id(t.Name)).Call()
			}
		})),
	)
}
