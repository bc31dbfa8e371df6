package r4

import (
	"fmt"
	"strings"

	"github.com/damedic/fhir-model-go/model"
)

// Element is implemented by every datatype of this package.
//
// It gives every node of the tree a uniform attachment point for an id and extensions.
type Element interface {
	model.Element
	ElementId() (string, bool)
	ElementExtension() []Extension
}

// CheckChoiceTypes reports every choice element in e whose value type is not permitted for
// that element, e.g. an Observation.effective[x] holding a Quantity.
//
// Decoding JSON accepts any registered type for a choice element, so callers that need
// conformant data run this check afterwards. All violations are combined into one error.
func CheckChoiceTypes(e model.Element) error {
	c, ok := e.(choiceChecker)
	if !ok {
		return fmt.Errorf("unsupported element %T", e)
	}
	return c.checkChoiceTypes(typeName(e))
}

func typeName(e model.Element) string {
	if r, ok := e.(model.Resource); ok {
		return r.ResourceType()
	}
	name := fmt.Sprintf("%T", e)
	return name[strings.LastIndex(name, ".")+1:]
}

func elementId(id *string) (string, bool) {
	if id == nil {
		return "", false
	}
	return *id, true
}
