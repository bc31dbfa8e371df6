// Package r4 provides the FHIR R4 datatypes, a selection of resources and their JSON encoding.
//
// Primitives keep their id and extensions, which are written to the "_field" sibling of the
// value. Choice elements ("value[x]") are held by DynamicValue and written with the suffix of
// the held type, e.g. "valueQuantity".
//
// Decoding is permissive: no element is required and a choice element accepts any
// registered type. Use CheckChoiceTypes to find values of types not permitted for their element.
package r4

//go:generate go run ../../internal/cmd/generate -out .
