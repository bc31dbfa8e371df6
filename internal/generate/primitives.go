package generate

import (
	"strings"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

// PrimitivesGenerator writes the primitive types and their codec methods.
type PrimitivesGenerator struct {
	NoOpGenerator
}

func (g PrimitivesGenerator) GenerateType(f func(fileName string) *File, t ir.Type) {
	if t.Kind != ir.KindPrimitive {
		return
	}
	file := f("primitives")

	for _, line := range strings.Split(t.DocComment, "\n") {
		file.Comment(line)
	}
	file.Type().Id(t.Name).Struct(
		Id("Id").Op("*").String(),
		Id("Extension").Index().Id("Extension"),
		Id("Value").Op("*").Add(valueType(t)),
	)

	file.Func().Params(Id("r").Id(t.Name)).Id("ElementId").Params().Params(String(), Bool()).Block(
		Return(Id("elementId").Call(Id("r").Dot("Id"))),
	)
	file.Func().Params(Id("r").Id(t.Name)).Id("ElementExtension").Params().Index().Id("Extension").Block(
		Return(Id("r").Dot("Extension")),
	)
	file.Func().Params(Id("r").Id(t.Name)).Id("hasValue").Params().Bool().Block(
		Return(Id("r").Dot("Value").Op("!=").Nil()),
	)
	file.Func().Params(Id("r").Id(t.Name)).Id("primitiveMeta").Params().Id("primitiveElement").Block(
		Return(Id("primitiveElement").Values(Dict{
			Id("Id"):        Id("r").Dot("Id"),
			Id("Extension"): Id("r").Dot("Extension"),
		})),
	)
	file.Func().Params(Id("r").Op("*").Id(t.Name)).Id("setPrimitiveMeta").Params(Id("p").Id("primitiveElement")).Block(
		Id("r").Dot("Id").Op("=").Id("p").Dot("Id"),
		Id("r").Dot("Extension").Op("=").Id("p").Dot("Extension"),
	)

	if t.Name == "Decimal" {
		file.ImportName("github.com/cockroachdb/apd/v3", "apd")
		file.Func().Params(Id("r").Id(t.Name)).Id("marshalValue").Params(Id("w").Qual("io", "Writer")).Error().Block(
			Return(Id("writeDecimal").Call(Id("w"), Id("r").Dot("Value"))),
		)
		file.Func().Params(Id("r").Op("*").Id(t.Name)).Id("unmarshalValue").Params(Id("b").Index().Byte()).Error().Block(
			Return(Id("readDecimal").Call(Id("b"), Op("&").Id("r").Dot("Value"))),
		)
	} else {
		file.Func().Params(Id("r").Id(t.Name)).Id("marshalValue").Params(Id("w").Qual("io", "Writer")).Error().Block(
			Return(Id("writeJSONValue").Call(Id("w"), Id("r").Dot("Value"))),
		)
		file.Func().Params(Id("r").Op("*").Id(t.Name)).Id("unmarshalValue").Params(Id("b").Index().Byte()).Error().Block(
			Return(Id("readPrimitiveValue").Call(Id("b"), Op("&").Id("r").Dot("Value"))),
		)
	}

	file.Func().Params(Id("r").Id(t.Name)).Id("MarshalJSON").Params().Params(Index().Byte(), Error()).Block(
		Return(Id("marshalPrimitive").Call(Id("r"))),
	)
	file.Func().Params(Id("r").Op("*").Id(t.Name)).Id("UnmarshalJSON").Params(Id("b").Index().Byte()).Error().Block(
		Return(Id("r").Dot("unmarshalValue").Call(Id("b"))),
	)
	file.Func().Params(Id("r").Id(t.Name)).Id("checkChoiceTypes").Params(Id("path").String()).Error().Block(
		Return(Id("checkExtensions").Call(Id("path"), Id("r").Dot("Extension"))),
	)
	file.Func().Params(Id("r").Id(t.Name)).Id("String").Params().String().Block(
		Return(Id("stringify").Call(Id("r"))),
	)
}

func valueType(t ir.Type) Code {
	if t.ValueType == "*apd.Decimal" {
		return Qual("github.com/cockroachdb/apd/v3", "Decimal")
	}
	return Id(t.ValueType)
}
