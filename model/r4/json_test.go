package r4_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-model-go/model/r4"
	"github.com/damedic/fhir-model-go/testdata/assert"
	"github.com/damedic/fhir-model-go/utils/ptr"
)

var decimalComparer = cmp.Comparer(func(a, b apd.Decimal) bool {
	return a.Text('G') == b.Text('G')
})

func str(s string) *r4.String { return &r4.String{Value: ptr.To(s)} }

func TestMarshalAddress(t *testing.T) {
	a := r4.Address{
		Use:  ptr.To(r4.AddressUseHome),
		Type: ptr.To(r4.AddressTypePostal),
		Line: []r4.String{{Value: ptr.To("925 Powder Springs St")}},
		City: str("Smyrna"),
		Period: &r4.Period{
			Start: &r4.DateTime{Value: ptr.To("1998-08")},
			End:   &r4.DateTime{Value: ptr.To("2002-05")},
		},
	}

	got, err := a.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"use":"home","type":"postal","line":["925 Powder Springs St"],"city":"Smyrna","period":{"start":"1998-08","end":"2002-05"}}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}

	var decoded r4.Address
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalAnnotationAuthorString(t *testing.T) {
	a := r4.Annotation{
		Author: r4.Choice(r4.String{Value: ptr.To("Dr. Adams")}),
		Text:   &r4.Markdown{Value: ptr.To("Patient is *stable*")},
	}

	got, err := a.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"authorString":"Dr. Adams","text":"Patient is *stable*"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}

	var decoded r4.Annotation
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Author == nil || decoded.Author.Type != r4.TypeString {
		t.Fatalf("expected author of type %s, got %v", r4.TypeString, decoded.Author)
	}
	if diff := cmp.Diff(a, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyLinesArePreserved(t *testing.T) {
	in := `{"line":[""," ","Suite 4"]}`

	var a r4.Address
	if err := json.Unmarshal([]byte(in), &a); err != nil {
		t.Fatal(err)
	}
	want := []r4.String{{Value: ptr.To("")}, {Value: ptr.To(" ")}, {Value: ptr.To("Suite 4")}}
	if diff := cmp.Diff(want, a.Line); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}

	out, err := a.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != in {
		t.Errorf("got %s, want %s", out, in)
	}
}

func TestMarshalOmitsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		element json.Marshaler
		want    string
	}{
		{name: "address", element: r4.Address{}, want: `{}`},
		{name: "quantity", element: r4.Quantity{}, want: `{}`},
		{name: "empty lists", element: r4.HumanName{Given: []r4.String{}, Extension: []r4.Extension{}}, want: `{}`},
		{name: "extension without url", element: r4.Extension{}, want: `{}`},
		{name: "patient", element: r4.Patient{}, want: `{"resourceType":"Patient"}`},
		{name: "absent choice", element: r4.Observation{Value: &r4.DynamicValue{}}, want: `{"resourceType":"Observation"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.element.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPrimitiveListSiblingAlignment(t *testing.T) {
	name := r4.HumanName{
		Given: []r4.String{
			{Value: ptr.To("Alice")},
			{Extension: []r4.Extension{{
				Url:   "http://example.org/fhir/StructureDefinition/nickname",
				Value: r4.Choice(r4.String{Value: ptr.To("Ali")}),
			}}},
			{Id: ptr.To("g3"), Value: ptr.To("Bob")},
		},
	}

	got, err := name.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"given":["Alice",null,"Bob"],"_given":[null,{"extension":[{"url":"http://example.org/fhir/StructureDefinition/nickname","valueString":"Ali"}]},{"id":"g3"}]}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}

	var decoded r4.HumanName
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(name, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPrimitiveMetadataOnly(t *testing.T) {
	in := `{"resourceType":"Patient","_birthDate":{"extension":[{"url":"http://hl7.org/fhir/StructureDefinition/data-absent-reason","valueCode":"unknown"}]}}`

	var p r4.Patient
	if err := json.Unmarshal([]byte(in), &p); err != nil {
		t.Fatal(err)
	}
	if p.BirthDate == nil {
		t.Fatal("expected birthDate to be present")
	}
	if p.BirthDate.Value != nil {
		t.Errorf("expected no value, got %q", *p.BirthDate.Value)
	}
	want := []r4.Extension{{
		Url:   "http://hl7.org/fhir/StructureDefinition/data-absent-reason",
		Value: r4.Choice(r4.Code{Value: ptr.To("unknown")}),
	}}
	if diff := cmp.Diff(want, p.BirthDate.Extension); diff != "" {
		t.Errorf("extension mismatch (-want +got):\n%s", diff)
	}

	out, err := p.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != in {
		t.Errorf("got %s, want %s", out, in)
	}
}

func TestPrimitiveSiblingKeyOrder(t *testing.T) {
	inputs := []string{
		`{"city":"Smyrna","_city":{"id":"c1"}}`,
		`{"_city":{"id":"c1"},"city":"Smyrna"}`,
	}
	want := r4.Address{City: &r4.String{Id: ptr.To("c1"), Value: ptr.To("Smyrna")}}

	for _, in := range inputs {
		var got r4.Address
		if err := json.Unmarshal([]byte(in), &got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestDecimalKeepsPrecision(t *testing.T) {
	in := `{"value":1.50,"comparator":"<","unit":"mg","system":"http://unitsofmeasure.org","code":"mg"}`

	var q r4.Quantity
	if err := json.Unmarshal([]byte(in), &q); err != nil {
		t.Fatal(err)
	}
	if got := q.Value.Value.Text('G'); got != "1.50" {
		t.Errorf("got %s, want 1.50", got)
	}
	if diff := cmp.Diff(ptr.To(r4.QuantityComparatorLessThan), q.Comparator); diff != "" {
		t.Errorf("comparator mismatch (-want +got):\n%s", diff)
	}

	out, err := q.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != in {
		t.Errorf("got %s, want %s", out, in)
	}
}

func TestRoundTripDatatypes(t *testing.T) {
	tests := []struct {
		name string
		json string
		into interface {
			json.Marshaler
			json.Unmarshaler
		}
	}{
		{
			name: "coding",
			json: `{"system":"http://loinc.org","version":"2.74","code":"8867-4","display":"Heart rate","userSelected":true}`,
			into: &r4.Coding{},
		},
		{
			name: "codeable concept",
			json: `{"coding":[{"system":"http://snomed.info/sct","code":"38341003"}],"text":"Hypertension"}`,
			into: &r4.CodeableConcept{},
		},
		{
			name: "identifier",
			json: `{"use":"official","type":{"text":"MRN"},"system":"urn:oid:1.2.36.146.595.217.0.1","value":"12345","period":{"start":"2001-05-06"},"assigner":{"display":"Acme Healthcare"}}`,
			into: &r4.Identifier{},
		},
		{
			name: "contact point",
			json: `{"system":"phone","value":"(03) 5555 6473","use":"work","rank":1}`,
			into: &r4.ContactPoint{},
		},
		{
			name: "attachment",
			json: `{"contentType":"application/pdf","language":"en","data":"SGVsbG8=","size":5,"title":"Report","creation":"2020-02-01T10:00:00Z"}`,
			into: &r4.Attachment{},
		},
		{
			name: "meta",
			json: `{"versionId":"2","lastUpdated":"2020-02-01T10:00:00.000Z","profile":["http://hl7.org/fhir/StructureDefinition/vitalsigns"],"tag":[{"code":"test"}]}`,
			into: &r4.Meta{},
		},
		{
			name: "money",
			json: `{"value":12.00,"currency":"EUR"}`,
			into: &r4.Money{},
		},
		{
			name: "range",
			json: `{"low":{"value":1,"unit":"mg"},"high":{"value":2.5,"unit":"mg"}}`,
			into: &r4.Range{},
		},
		{
			name: "ratio",
			json: `{"numerator":{"value":1},"denominator":{"value":128}}`,
			into: &r4.Ratio{},
		},
		{
			name: "sampled data",
			json: `{"origin":{"value":2750},"period":10,"factor":1.2,"dimensions":3,"data":"2041 2041 E U"}`,
			into: &r4.SampledData{},
		},
		{
			name: "signature",
			json: `{"type":[{"system":"urn:iso-astm:E1762-95:2013","code":"1.2.840.10065.1.12.1.1"}],"when":"2020-02-01T10:00:00Z","who":{"reference":"Practitioner/xcda-author"},"sigFormat":"image/jpg","data":"dGhpcyBibG9iIGlzIHNuaXBwZWQ="}`,
			into: &r4.Signature{},
		},
		{
			name: "timing",
			json: `{"event":["2020-01-01T08:00:00Z"],"repeat":{"boundsPeriod":{"start":"2020-01-01"},"frequency":2,"period":1,"periodUnit":"d","dayOfWeek":["mon","wed"],"timeOfDay":["08:00:00"]},"code":{"text":"BID"}}`,
			into: &r4.Timing{},
		},
		{
			name: "dosage",
			json: `{"sequence":1,"text":"1 tablet twice daily","timing":{"code":{"text":"BID"}},"asNeededBoolean":false,"route":{"text":"oral"},"doseAndRate":[{"doseQuantity":{"value":1,"unit":"tablet"},"rateRatio":{"numerator":{"value":1},"denominator":{"value":1}}}],"maxDosePerAdministration":{"value":2}}`,
			into: &r4.Dosage{},
		},
		{
			name: "contact detail",
			json: `{"name":"FHIR project team","telecom":[{"system":"url","value":"http://hl7.org/fhir"}]}`,
			into: &r4.ContactDetail{},
		},
		{
			name: "usage context",
			json: `{"code":{"code":"focus"},"valueCodeableConcept":{"text":"Pediatrics"}}`,
			into: &r4.UsageContext{},
		},
		{
			name: "narrative",
			json: `{"status":"generated","div":"<div xmlns=\"http://www.w3.org/1999/xhtml\">Hello & welcome</div>"}`,
			into: &r4.Narrative{},
		},
		{
			name: "age",
			json: `{"value":42,"unit":"yr","system":"http://unitsofmeasure.org","code":"a"}`,
			into: &r4.Age{},
		},
		{
			name: "nested extensions",
			json: `{"id":"ext1","url":"http://example.org/outer","extension":[{"url":"inner","valueDecimal":0.10},{"url":"period","valuePeriod":{"start":"2020"}},{"url":"nested","extension":[{"url":"deep","valueBoolean":true}]}]}`,
			into: &r4.Extension{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.into.UnmarshalJSON([]byte(tt.json)); err != nil {
				t.Fatal(err)
			}
			out, err := tt.into.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}
			if string(out) != tt.json {
				t.Errorf("got  %s\nwant %s", out, tt.json)
			}
			assert.JSONEqual(t, tt.json, string(out))
		})
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		into    json.Unmarshaler
		wantErr string
	}{
		{name: "unknown field", json: `{"town":"Smyrna"}`, into: &r4.Address{}, wantErr: "invalid field: town in Address"},
		{name: "not an object", json: `[]`, into: &r4.Address{}, wantErr: "expected: '{' in Address element"},
		{name: "nested element", json: `{"period":"2020"}`, into: &r4.Address{}, wantErr: "Address.period: invalid token: 2020, expected: '{' in Period element"},
		{name: "wrong primitive type", json: `{"rank":"first"}`, into: &r4.ContactPoint{}, wantErr: "ContactPoint.rank"},
		{name: "invalid decimal", json: `{"value":"abc"}`, into: &r4.Quantity{}, wantErr: "Quantity.value"},
		{name: "unknown choice suffix", json: `{"url":"u","valueFoo":1}`, into: &r4.Extension{}, wantErr: "invalid field: valueFoo in Extension"},
		{name: "unknown primitive element field", json: `{"_city":{"value":"x"}}`, into: &r4.Address{}, wantErr: "invalid field: value in primitive element"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.into.UnmarshalJSON([]byte(tt.json))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got error %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestUnmarshalNullsAreAbsent(t *testing.T) {
	in := `{"use":null,"line":null,"period":null,"extension":[null]}`

	var a r4.Address
	if err := json.Unmarshal([]byte(in), &a); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(r4.Address{}, a); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestString(t *testing.T) {
	a := r4.Address{City: str("Smyrna")}
	want := "{\n  \"city\": \"Smyrna\"\n}"
	if got := a.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
