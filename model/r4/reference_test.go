package r4_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/damedic/fhir-model-go/model/r4"
	"github.com/damedic/fhir-model-go/utils/ptr"
)

func TestReferenceDecomposition(t *testing.T) {
	type result struct {
		value string
		ok    bool
	}
	tests := []struct {
		name         string
		reference    string
		explicitType string
		wantType     result
		wantId       result
		wantVersion  result
	}{
		{
			name:      "relative",
			reference: "Patient/123",
			wantType:  result{"Patient", true},
			wantId:    result{"123", true},
		},
		{
			name:        "relative versioned",
			reference:   "Observation/bp-1/_history/3",
			wantType:    result{"Observation", true},
			wantId:      result{"bp-1", true},
			wantVersion: result{"3", true},
		},
		{
			name:        "absolute versioned",
			reference:   "http://example.org/fhir/Observation/abc/_history/2",
			wantType:    result{"Observation", true},
			wantId:      result{"abc", true},
			wantVersion: result{"2", true},
		},
		{
			name:      "absolute with port",
			reference: "https://fhir.example.org:8443/r4/MedicationRequest/m.1",
			wantType:  result{"MedicationRequest", true},
			wantId:    result{"m.1", true},
		},
		{
			name:      "unknown resource type",
			reference: "Spaceship/1",
		},
		{
			name:      "id too long",
			reference: "Patient/" + strings.Repeat("a", 65),
		},
		{
			name:         "contained with explicit type",
			reference:    "#med1",
			explicitType: "Medication",
			wantType:     result{"Medication", true},
		},
		{
			name:         "uuid with explicit type url",
			reference:    "urn:uuid:c757873d-ec9a-4326-a141-556f43239520",
			explicitType: "http://hl7.org/fhir/StructureDefinition/Patient",
			wantType:     result{"Patient", true},
		},
		{
			name:         "literal wins over explicit type",
			reference:    "Group/g1",
			explicitType: "Patient",
			wantType:     result{"Group", true},
			wantId:       result{"g1", true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := r4.Reference{Reference: &r4.String{Value: ptr.To(tt.reference)}}
			if tt.explicitType != "" {
				r.Type = &r4.Uri{Value: ptr.To(tt.explicitType)}
			}

			if v, ok := r.DecomposedType(); (result{v, ok}) != tt.wantType {
				t.Errorf("type: got (%q, %v), want %v", v, ok, tt.wantType)
			}
			if v, ok := r.DecomposedId(); (result{v, ok}) != tt.wantId {
				t.Errorf("id: got (%q, %v), want %v", v, ok, tt.wantId)
			}
			if v, ok := r.DecomposedVersion(); (result{v, ok}) != tt.wantVersion {
				t.Errorf("version: got (%q, %v), want %v", v, ok, tt.wantVersion)
			}
		})
	}
}

func TestReferenceWithoutValue(t *testing.T) {
	var r r4.Reference
	if _, ok := r.DecomposedType(); ok {
		t.Error("expected no type")
	}
	if _, ok := r.DecomposedId(); ok {
		t.Error("expected no id")
	}
	if r.IsForType("Patient") {
		t.Error("empty reference is not for Patient")
	}
}

func TestReferenceIsForType(t *testing.T) {
	tests := []struct {
		name         string
		reference    string
		explicitType string
		resourceType string
		want         bool
	}{
		{name: "literal", reference: "Patient/1", resourceType: "Patient", want: true},
		{name: "other type", reference: "Patient/1", resourceType: "Group", want: false},
		{name: "explicit type", reference: "Patient/1", explicitType: "Group", resourceType: "Group", want: true},
		{name: "substring", reference: "http://example.org/Patient/has space", resourceType: "Patient", want: true},
		{name: "uuid", reference: "urn:uuid:c757873d-ec9a-4326-a141-556f43239520", resourceType: "Patient", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := r4.Reference{Reference: &r4.String{Value: ptr.To(tt.reference)}}
			if tt.explicitType != "" {
				r.Type = &r4.Uri{Value: ptr.To(tt.explicitType)}
			}
			if got := r.IsForType(tt.resourceType); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReferenceTo(t *testing.T) {
	p := r4.Patient{Id: &r4.Id{Value: ptr.To("example")}}

	r, err := r4.ReferenceTo(p)
	if err != nil {
		t.Fatal(err)
	}
	if got := *r.Reference.Value; got != "Patient/example" {
		t.Errorf("got %s, want Patient/example", got)
	}
	if id, ok := r.DecomposedId(); !ok || id != "example" {
		t.Errorf("got (%q, %v), want (example, true)", id, ok)
	}

	if _, err := r4.ReferenceTo(r4.Patient{}); err == nil {
		t.Error("expected an error for a resource without id")
	}
}

func TestUUIDReference(t *testing.T) {
	id := uuid.MustParse("c757873d-ec9a-4326-a141-556f43239520")

	r := r4.UUIDReference(id)
	if got := *r.Reference.Value; got != "urn:uuid:c757873d-ec9a-4326-a141-556f43239520" {
		t.Errorf("got %s", got)
	}
	got, ok := r.UUID()
	if !ok || got != id {
		t.Errorf("got (%s, %v), want (%s, true)", got, ok, id)
	}

	relative := r4.Reference{Reference: &r4.String{Value: ptr.To("Patient/1")}}
	if _, ok := relative.UUID(); ok {
		t.Error("relative reference has no UUID")
	}
}
