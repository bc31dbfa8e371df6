package r4_test

import (
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/damedic/fhir-model-go/model/r4"
	"github.com/damedic/fhir-model-go/utils/ptr"
)

func TestCheckChoiceTypes(t *testing.T) {
	o := r4.Observation{
		Status:    ptr.To(r4.ObservationStatusFinal),
		Effective: r4.Choice(r4.Quantity{}),
		Value:     r4.Choice(r4.Quantity{Unit: &r4.String{Value: ptr.To("mmHg")}}),
		Note: []r4.Annotation{
			{Author: r4.Choice(r4.Boolean{Value: ptr.To(true)})},
			{Author: r4.Choice(r4.String{Value: ptr.To("Dr. Adams")})},
		},
		Component: []r4.ObservationComponent{
			{Value: r4.Choice(r4.Address{})},
			{Value: r4.Choice(r4.Integer{Value: ptr.To(int32(120))})},
		},
		Extension: []r4.Extension{
			{Url: "http://example.org/any", Value: r4.Choice(r4.Address{})},
		},
	}

	err := r4.CheckChoiceTypes(o)
	errs := multierr.Errors(err)
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(errs), err)
	}

	wantPrefixes := []string{
		"Observation.effective: type QUANTITY",
		"Observation.note[0].author: type BOOLEAN",
		"Observation.component[0].value: type ADDRESS",
	}
	for i, want := range wantPrefixes {
		if !strings.HasPrefix(errs[i].Error(), want) {
			t.Errorf("error %d: got %q, want prefix %q", i, errs[i], want)
		}
	}
}

func TestCheckChoiceTypesNested(t *testing.T) {
	tests := []struct {
		name    string
		element r4.Element
		wantErr string
	}{
		{
			name: "primitive extension",
			element: r4.Address{
				City: &r4.String{Extension: []r4.Extension{{
					Url: "http://example.org/ext",
					Extension: []r4.Extension{{
						Url:   "part",
						Value: &r4.DynamicValue{Type: r4.TypeCodeableConcept, Value: r4.CodeableConcept{}},
					}},
				}}},
			},
		},
		{
			name: "range in timing bounds",
			element: r4.Dosage{
				Timing: &r4.Timing{Repeat: &r4.TimingRepeat{Bounds: r4.Choice(r4.Range{})}},
			},
		},
		{
			name: "string in timing bounds",
			element: r4.Dosage{
				Timing: &r4.Timing{Repeat: &r4.TimingRepeat{Bounds: r4.Choice(r4.String{})}},
			},
			wantErr: "Dosage.timing.repeat.bounds: type STRING",
		},
		{
			name: "dose ratio",
			element: r4.Dosage{
				DoseAndRate: []r4.DosageDoseAndRate{{}, {Dose: r4.Choice(r4.Ratio{})}},
			},
			wantErr: "Dosage.doseAndRate[1].dose: type RATIO",
		},
		{
			name: "quantity where simple quantity is permitted",
			element: r4.DosageDoseAndRate{
				Dose: r4.Choice(r4.Quantity{}),
			},
			wantErr: "DosageDoseAndRate.dose: type QUANTITY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r4.CheckChoiceTypes(tt.element)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.HasPrefix(err.Error(), tt.wantErr) {
				t.Errorf("got error %v, want prefix %q", err, tt.wantErr)
			}
		})
	}
}

func TestCheckChoiceTypesContained(t *testing.T) {
	in := `{
		"resourceType": "Patient",
		"id": "p1",
		"contained": [
			{"resourceType": "Observation", "id": "o1", "effectiveString": "yesterday"}
		],
		"deceasedBoolean": false
	}`

	var p r4.Patient
	if err := json.Unmarshal([]byte(in), &p); err != nil {
		t.Fatal(err)
	}
	err := r4.CheckChoiceTypes(p)
	want := "Patient.contained[0].effective: type STRING"
	if err == nil || !strings.HasPrefix(err.Error(), want) {
		t.Errorf("got error %v, want prefix %q", err, want)
	}
}

func TestElementId(t *testing.T) {
	c := r4.Coding{Id: ptr.To("c1")}
	if id, ok := c.ElementId(); !ok || id != "c1" {
		t.Errorf("got (%q, %v), want (c1, true)", id, ok)
	}
	if _, ok := (r4.Period{}).ElementId(); ok {
		t.Error("expected no id")
	}

	ext := []r4.Extension{{Url: "a"}, {Url: "b", Value: r4.Choice(r4.Code{Value: ptr.To("x")})}}
	s := r4.String{Extension: ext}
	if got := s.ElementExtension(); len(got) != 2 {
		t.Errorf("got %d extensions, want 2", len(got))
	}
	found, ok := r4.FindExtension(s.ElementExtension(), "b")
	if !ok || found.Value == nil || found.Value.Type != r4.TypeCode {
		t.Errorf("got (%v, %v), want extension b", found, ok)
	}
	if _, ok := r4.FindExtension(ext, "c"); ok {
		t.Error("did not expect extension c")
	}
}
