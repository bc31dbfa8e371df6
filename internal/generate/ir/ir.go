// Package ir holds the intermediate representation the generators work on.
package ir

// Kind classifies a type of the model.
type Kind int

const (
	KindPrimitive Kind = iota
	KindDatatype
	KindBackboneElement
	KindResource
)

// Type is a single type of the model.
type Type struct {
	Name string
	Kind Kind
	// Tag is the DynamicValueType member of the type. Types without a tag can not be
	// used as value of a choice element.
	Tag string
	// ValueType is the Go type of Value, for primitives only.
	ValueType string
	DocComment string
}

// ValueSet is a value set with a required binding in the model.
type ValueSet struct {
	Name  string
	Codes []string
}

// Definitions are the input of all generators.
type Definitions struct {
	Types []Type
	// ResourceTypes are all resource type names of the release, not only the modelled ones.
	ResourceTypes []string
	ValueSets     []ValueSet
}

// Filter returns the types of the given kind, keeping their order.
func (d Definitions) Filter(kind Kind) []Type {
	var types []Type
	for _, t := range d.Types {
		if t.Kind == kind {
			types = append(types, t)
		}
	}
	return types
}

// Tagged returns the types that can be the value of a choice element.
func (d Definitions) Tagged() []Type {
	var types []Type
	for _, t := range d.Types {
		if t.Tag != "" {
			types = append(types, t)
		}
	}
	return types
}
