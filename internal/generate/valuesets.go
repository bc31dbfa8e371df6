package generate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/iancoleman/strcase"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

// ValueSetConstant represents a single constant in a value set
type ValueSetConstant struct {
	Name  string // Go variable name
	Value string // FHIR code value
}

// ValueSetsGenerator writes one Code variable per concept of the required value sets.
type ValueSetsGenerator struct {
	NoOpGenerator
}

func (g ValueSetsGenerator) GenerateAdditional(f func(fileName string) *File, defs ir.Definitions) {
	if len(defs.ValueSets) == 0 {
		return
	}

	valueSets := slices.Clone(defs.ValueSets)
	slices.SortFunc(valueSets, func(a, b ir.ValueSet) int {
		return strings.Compare(a.Name, b.Name)
	})

	vf := f("value_sets")
	vf.Comment("Value set constants for required bindings")
	vf.Line()

	for _, vs := range valueSets {
		constants := make([]ValueSetConstant, 0, len(vs.Codes))
		for _, code := range vs.Codes {
			constants = append(constants, ValueSetConstant{Name: constantName(vs.Name, code), Value: code})
		}
		slices.SortFunc(constants, func(a, b ValueSetConstant) int {
			return strings.Compare(a.Name, b.Name)
		})

		vf.Var().DefsFunc(func(g *Group) {
			for _, c := range constants {
				g.Comment(fmt.Sprintf("%s %s", vs.Name, c.Value))
				g.Id(c.Name).Op("=").Id("Code").Values(Dict{
					Id("Value"): Qual(moduleName+"/utils/ptr", "To").Call(Lit(c.Value)),
				})
			}
		})
		vf.Line()
	}
}

// UpperCamelCase conversion with minimal replacements
func constantName(valueSetName, concept string) string {
	replacer := strings.NewReplacer(
		"<=", "LessThanOrEqualTo",
		">=", "GreaterThanOrEqualTo",
		"<", "LessThan",
		">", "GreaterThan",
		"!=", "NotEqualTo",
		"=", "EqualTo",
	)

	return strcase.ToCamel(valueSetName) + strcase.ToCamel(replacer.Replace(concept))
}
