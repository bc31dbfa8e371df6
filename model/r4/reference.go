package r4

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/utils/ptr"
)

// Reference is a reference from one resource to another.
type Reference struct {
	Id         *string
	Extension  []Extension
	Reference  *String
	Type       *Uri
	Identifier *Identifier
	Display    *String
}

func (r *Reference) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		primitiveField("reference", &r.Reference),
		primitiveField("type", &r.Type),
		elementField("identifier", &r.Identifier),
		primitiveField("display", &r.Display),
	}
}

// literalReference matches relative and absolute literal references, capturing the resource
// type (4), the id (5) and the version (7).
var literalReference = regexp.MustCompile(
	`^((http|https)://([A-Za-z0-9\-\\.:%$]*/)+)?(` + strings.Join(resourceTypeNames, "|") +
		`)/([A-Za-z0-9\-.]{1,64})(/_history/([A-Za-z0-9\-.]{1,64}))?$`,
)

const uuidPrefix = "urn:uuid:"

func (r Reference) decompose() []string {
	if r.Reference == nil || r.Reference.Value == nil {
		return nil
	}
	return literalReference.FindStringSubmatch(*r.Reference.Value)
}

// DecomposedType returns the resource type the reference points to.
//
// The type is taken from the literal reference, e.g. "Patient" for
// "http://example.org/fhir/Patient/123/_history/2". If the literal reference does not match,
// the last path segment of the explicit type is returned.
func (r Reference) DecomposedType() (string, bool) {
	if m := r.decompose(); m != nil {
		return m[4], true
	}
	return r.explicitType()
}

// explicitType returns the last path segment of the type element, which may be an absolute
// StructureDefinition URL.
func (r Reference) explicitType() (string, bool) {
	if r.Type == nil || r.Type.Value == nil || *r.Type.Value == "" {
		return "", false
	}
	t := *r.Type.Value
	return t[strings.LastIndex(t, "/")+1:], true
}

// DecomposedId returns the logical id of the literal reference.
func (r Reference) DecomposedId() (string, bool) {
	if m := r.decompose(); m != nil {
		return m[5], true
	}
	return "", false
}

// DecomposedVersion returns the version of a versioned literal reference
// ("Patient/123/_history/2").
func (r Reference) DecomposedVersion() (string, bool) {
	if m := r.decompose(); m != nil && m[7] != "" {
		return m[7], true
	}
	return "", false
}

// IsForType reports whether the reference points to a resource of the given type.
func (r Reference) IsForType(resourceType string) bool {
	if t, ok := r.explicitType(); ok && t == resourceType {
		return true
	}
	if m := r.decompose(); m != nil && m[4] == resourceType {
		return true
	}
	return r.Reference != nil && r.Reference.Value != nil &&
		strings.Contains(*r.Reference.Value, resourceType+"/")
}

// UUID returns the UUID of a "urn:uuid:" reference as used between bundle entries.
func (r Reference) UUID() (uuid.UUID, bool) {
	if r.Reference == nil || r.Reference.Value == nil {
		return uuid.Nil, false
	}
	s, ok := strings.CutPrefix(*r.Reference.Value, uuidPrefix)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// ReferenceTo returns a relative reference "Type/id" to the resource.
func ReferenceTo(resource model.Resource) (Reference, error) {
	id, ok := resource.ResourceId()
	if !ok {
		return Reference{}, fmt.Errorf("can not reference %s without id", resource.ResourceType())
	}
	return Reference{
		Reference: &String{Value: ptr.To(resource.ResourceType() + "/" + id)},
		Type:      &Uri{Value: ptr.To(resource.ResourceType())},
	}, nil
}

// UUIDReference returns a "urn:uuid:" reference to a bundle entry with the given full URL.
func UUIDReference(id uuid.UUID) Reference {
	return Reference{Reference: &String{Value: ptr.To(uuidPrefix + id.String())}}
}
