package generate

import (
	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

// ElementsGenerator writes the codec, element and stringer methods of complex types, backbone
// elements and resources. The struct types and their field bindings (jsonFields) are written by
// hand.
type ElementsGenerator struct {
	NoOpGenerator
}

func (g ElementsGenerator) GenerateType(f func(fileName string) *File, t ir.Type) {
	var file *File
	switch t.Kind {
	case ir.KindDatatype, ir.KindBackboneElement:
		file = f("elements")
		file.Func().Params(Id("r").Id(t.Name)).Id("ElementId").Params().Params(String(), Bool()).Block(
			Return(Id("elementId").Call(Id("r").Dot("Id"))),
		)
		file.Func().Params(Id("r").Id(t.Name)).Id("ElementExtension").Params().Index().Id("Extension").Block(
			Return(Id("r").Dot("Extension")),
		)
	case ir.KindResource:
		file = f("resources")
		file.Func().Params(Id("r").Id(t.Name)).Id("ResourceType").Params().String().Block(
			Return(Lit(t.Name)),
		)
		file.Func().Params(Id("r").Id(t.Name)).Id("ResourceId").Params().Params(String(), Bool()).Block(
			If(Id("r").Dot("Id").Op("==").Nil().Op("||").Id("r").Dot("Id").Dot("Value").Op("==").Nil()).Block(
				Return(Lit(""), False()),
			),
			Return(Op("*").Id("r").Dot("Id").Dot("Value"), True()),
		)
	default:
		return
	}

	resource := t.Kind == ir.KindResource

	file.Func().Params(Id("r").Id(t.Name)).Id("MarshalJSON").Params().Params(Index().Byte(), Error()).Block(
		Return(Id("marshalBytes").Call(Id("r"))),
	)
	file.Func().Params(Id("r").Id(t.Name)).Id("marshalJSON").Params(Id("w").Qual("io", "Writer")).Error().Block(
		Return(Id("marshalStructure").Call(Id("w"), Lit(t.Name), Lit(resource), Id("r").Dot("jsonFields").Call())),
	)
	file.Func().Params(Id("r").Op("*").Id(t.Name)).Id("UnmarshalJSON").Params(Id("b").Index().Byte()).Error().Block(
		Return(Id("unmarshalBytes").Call(Id("b"), Id("r"))),
	)
	file.Func().Params(Id("r").Op("*").Id(t.Name)).Id("unmarshalJSON").Params(Id("d").Op("*").Qual("encoding/json", "Decoder")).Error().Block(
		Return(Id("unmarshalStructure").Call(Id("d"), Lit(t.Name), Lit(resource), Id("r").Dot("jsonFields").Call())),
	)
	file.Func().Params(Id("r").Id(t.Name)).Id("checkChoiceTypes").Params(Id("path").String()).Error().Block(
		Return(Id("checkFields").Call(Id("path"), Id("r").Dot("jsonFields").Call())),
	)
	file.Func().Params(Id("r").Id(t.Name)).Id("String").Params().String().Block(
		Return(Id("stringify").Call(Id("r"))),
	)
}
