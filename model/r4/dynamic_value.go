package r4

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/iancoleman/strcase"
)

// Datatype is any FHIR datatype that can be the value of a choice element ("[x]").
type Datatype interface {
	Element
	DynamicValueType() DynamicValueType
}

// DynamicValueType tags the type held by a DynamicValue.
//
// Every member maps to exactly one JSON key suffix, see Suffix.
type DynamicValueType string

// dynamicValueSuffixOverrides holds the types whose key suffix is not their own name.
// Profiles of Quantity are written with the suffix of the type they constrain.
var dynamicValueSuffixOverrides = map[DynamicValueType]string{
	TypeMoneyQuantity:  "Quantity",
	TypeSimpleQuantity: "Quantity",
}

type suffixTable struct {
	suffixes  map[DynamicValueType]string
	canonical map[string]DynamicValueType
	aliases   map[string][]DynamicValueType
}

var dynamicValueSuffixes = func() suffixTable {
	t := suffixTable{
		suffixes:  make(map[DynamicValueType]string, len(dynamicValueTypes)),
		canonical: make(map[string]DynamicValueType, len(dynamicValueTypes)),
		aliases:   map[string][]DynamicValueType{},
	}
	for _, v := range dynamicValueTypes {
		if s, ok := dynamicValueSuffixOverrides[v]; ok {
			t.suffixes[v] = s
			t.aliases[s] = append(t.aliases[s], v)
			continue
		}
		s := strcase.ToCamel(strings.ToLower(string(v)))
		t.suffixes[v] = s
		t.canonical[s] = v
	}
	return t
}()

// Suffix returns the JSON key suffix of the type, e.g. "CodeableConcept" for
// TypeCodeableConcept, so that field "value" holding a CodeableConcept is written as
// "valueCodeableConcept".
func (t DynamicValueType) Suffix() string {
	return dynamicValueSuffixes.suffixes[t]
}

// Valid reports whether t is a registered type.
func (t DynamicValueType) Valid() bool {
	_, ok := dynamicValueSuffixes.suffixes[t]
	return ok
}

// DynamicValueTypes returns all registered types in registration order.
func DynamicValueTypes() []DynamicValueType {
	return slices.Clone(dynamicValueTypes)
}

// ParseSuffix resolves a JSON key suffix to a type.
//
// If more than one type shares the suffix, the first one contained in allowed wins,
// otherwise the type that owns the suffix.
func ParseSuffix(suffix string, allowed ...DynamicValueType) (DynamicValueType, bool) {
	for _, t := range dynamicValueSuffixes.aliases[suffix] {
		if slices.Contains(allowed, t) {
			return t, true
		}
	}
	t, ok := dynamicValueSuffixes.canonical[suffix]
	return t, ok
}

// DynamicValue holds the value of a choice element.
//
// Type must match the type of Value. Use Choice to derive it from the value.
type DynamicValue struct {
	Type  DynamicValueType
	Value Datatype
}

// Choice wraps v into a DynamicValue tagged with the type of v.
func Choice(v Datatype) *DynamicValue {
	return &DynamicValue{Type: v.DynamicValueType(), Value: v}
}

// ErrAmbiguousChoice is returned when a JSON object carries more than one type variant for the
// same choice element, e.g. "effectiveDateTime" and "effectivePeriod".
var ErrAmbiguousChoice = errors.New("ambiguous choice element")

// valueType returns the type of the held value, failing if the tag disagrees with it.
func (v DynamicValue) valueType() (DynamicValueType, error) {
	t := v.Value.DynamicValueType()
	if v.Type != "" && v.Type != t {
		return "", fmt.Errorf("dynamic value tagged %s holds %s", v.Type, t)
	}
	return t, nil
}
