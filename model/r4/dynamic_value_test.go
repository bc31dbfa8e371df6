package r4_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-model-go/model/r4"
	"github.com/damedic/fhir-model-go/utils/ptr"
)

func TestDynamicValueTypeSuffix(t *testing.T) {
	tests := []struct {
		typ  r4.DynamicValueType
		want string
	}{
		{r4.TypeString, "String"},
		{r4.TypeCodeableConcept, "CodeableConcept"},
		{r4.TypeDateTime, "DateTime"},
		{r4.TypeBase64Binary, "Base64Binary"},
		{r4.TypePositiveInt, "PositiveInt"},
		{r4.TypeUnsignedInt, "UnsignedInt"},
		{r4.TypeHumanName, "HumanName"},
		{r4.TypeSampledData, "SampledData"},
		{r4.TypeUri, "Uri"},
		{r4.TypeQuantity, "Quantity"},
		{r4.TypeSimpleQuantity, "Quantity"},
		{r4.TypeMoneyQuantity, "Quantity"},
		{r4.TypeAge, "Age"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := tt.typ.Suffix(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
			if !tt.typ.Valid() {
				t.Errorf("%s should be valid", tt.typ)
			}
		})
	}

	if r4.DynamicValueType("EXTENSION").Valid() {
		t.Error("EXTENSION should not be a registered type")
	}
}

func TestSuffixesAreUnique(t *testing.T) {
	owners := map[string]r4.DynamicValueType{}
	for _, typ := range r4.DynamicValueTypes() {
		if typ == r4.TypeSimpleQuantity || typ == r4.TypeMoneyQuantity {
			continue
		}
		if other, ok := owners[typ.Suffix()]; ok {
			t.Errorf("%s and %s share suffix %s", typ, other, typ.Suffix())
		}
		owners[typ.Suffix()] = typ
	}
}

func TestParseSuffix(t *testing.T) {
	tests := []struct {
		name    string
		suffix  string
		allowed []r4.DynamicValueType
		want    r4.DynamicValueType
		wantOK  bool
	}{
		{name: "plain", suffix: "DateTime", want: r4.TypeDateTime, wantOK: true},
		{name: "quantity owner", suffix: "Quantity", want: r4.TypeQuantity, wantOK: true},
		{name: "quantity owner allowed", suffix: "Quantity", allowed: []r4.DynamicValueType{r4.TypeQuantity, r4.TypeRange}, want: r4.TypeQuantity, wantOK: true},
		{name: "simple quantity allowed", suffix: "Quantity", allowed: []r4.DynamicValueType{r4.TypeRange, r4.TypeSimpleQuantity}, want: r4.TypeSimpleQuantity, wantOK: true},
		{name: "unknown", suffix: "Foo", wantOK: false},
		{name: "lower case", suffix: "string", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r4.ParseSuffix(tt.suffix, tt.allowed...)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("got (%s, %v), want (%s, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestChoiceKeyProperty(t *testing.T) {
	tests := []struct {
		value r4.Datatype
		key   string
	}{
		{r4.String{Value: ptr.To("text")}, "valueString"},
		{r4.Boolean{Value: ptr.To(false)}, "valueBoolean"},
		{r4.Integer{Value: ptr.To(int32(-7))}, "valueInteger"},
		{r4.UnsignedInt{Value: ptr.To(uint32(7))}, "valueUnsignedInt"},
		{r4.Decimal{Value: apd.New(125, -2)}, "valueDecimal"},
		{r4.DateTime{Value: ptr.To("2020-01-01T10:00:00+01:00")}, "valueDateTime"},
		{r4.Canonical{Value: ptr.To("http://hl7.org/fhir/ValueSet/example")}, "valueCanonical"},
		{r4.Code{Value: ptr.To("final")}, "valueCode"},
		{r4.Uuid{Value: ptr.To("urn:uuid:c757873d-ec9a-4326-a141-556f43239520")}, "valueUuid"},
		{r4.CodeableConcept{Text: ptr.To(r4.String{Value: ptr.To("text")})}, "valueCodeableConcept"},
		{r4.Quantity{Value: &r4.Decimal{Value: apd.New(72, 0)}, Unit: ptr.To(r4.String{Value: ptr.To("bpm")})}, "valueQuantity"},
		{r4.Age{Value: &r4.Decimal{Value: apd.New(3, 0)}}, "valueAge"},
		{r4.Duration{Code: &r4.Code{Value: ptr.To("min")}}, "valueDuration"},
		{r4.Period{Start: &r4.DateTime{Value: ptr.To("2020")}}, "valuePeriod"},
		{r4.Reference{Reference: ptr.To(r4.String{Value: ptr.To("Patient/1")})}, "valueReference"},
		{r4.HumanName{Family: ptr.To(r4.String{Value: ptr.To("Chalmers")})}, "valueHumanName"},
		{r4.Timing{Code: &r4.CodeableConcept{Text: ptr.To(r4.String{Value: ptr.To("BID")})}}, "valueTiming"},
		{r4.Meta{VersionId: &r4.Id{Value: ptr.To("1")}}, "valueMeta"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			ext := r4.Extension{Url: "http://example.org/ext", Value: r4.Choice(tt.value)}

			b, err := ext.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}

			var members map[string]json.RawMessage
			if err := json.Unmarshal(b, &members); err != nil {
				t.Fatal(err)
			}
			var keys []string
			for k := range members {
				if strings.HasPrefix(k, "value") {
					keys = append(keys, k)
				}
			}
			if len(keys) != 1 || keys[0] != tt.key {
				t.Fatalf("got keys %v, want [%s]", keys, tt.key)
			}

			var decoded r4.Extension
			if err := json.Unmarshal(b, &decoded); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(ext, decoded, decimalComparer); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChoiceProfileSuffix(t *testing.T) {
	in := `{"doseQuantity":{"value":1,"unit":"tablet"},"rateQuantity":{"value":5,"unit":"mL/h"}}`

	var dr r4.DosageDoseAndRate
	if err := json.Unmarshal([]byte(in), &dr); err != nil {
		t.Fatal(err)
	}
	if dr.Dose.Type != r4.TypeSimpleQuantity {
		t.Errorf("dose: got %s, want %s", dr.Dose.Type, r4.TypeSimpleQuantity)
	}
	if _, ok := dr.Rate.Value.(r4.SimpleQuantity); !ok {
		t.Errorf("rate: got %T, want r4.SimpleQuantity", dr.Rate.Value)
	}
	if err := r4.CheckChoiceTypes(dr); err != nil {
		t.Errorf("unexpected choice type error: %v", err)
	}

	out, err := dr.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != in {
		t.Errorf("got %s, want %s", out, in)
	}
}

func TestChoicePrimitiveMetadata(t *testing.T) {
	inputs := []string{
		`{"url":"http://example.org/ext","valueString":"x","_valueString":{"id":"v1"}}`,
		`{"url":"http://example.org/ext","_valueString":{"id":"v1"},"valueString":"x"}`,
	}
	want := r4.Extension{
		Url:   "http://example.org/ext",
		Value: r4.Choice(r4.String{Id: ptr.To("v1"), Value: ptr.To("x")}),
	}

	for _, in := range inputs {
		var got r4.Extension
		if err := json.Unmarshal([]byte(in), &got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", in, diff)
		}
	}

	out, err := want.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != inputs[0] {
		t.Errorf("got %s, want %s", out, inputs[0])
	}
}

func TestAmbiguousChoice(t *testing.T) {
	tests := []struct {
		name string
		json string
		into json.Unmarshaler
	}{
		{
			name: "extension",
			json: `{"url":"http://example.org/ext","valueString":"x","valueBoolean":true}`,
			into: &r4.Extension{},
		},
		{
			name: "observation",
			json: `{"resourceType":"Observation","effectiveDateTime":"2020-01-01","effectivePeriod":{"start":"2020-01-01"}}`,
			into: &r4.Observation{},
		},
		{
			name: "sibling of other type",
			json: `{"url":"http://example.org/ext","valueString":"x","_valueCode":{"id":"c"}}`,
			into: &r4.Extension{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.into.UnmarshalJSON([]byte(tt.json))
			if !errors.Is(err, r4.ErrAmbiguousChoice) {
				t.Errorf("got error %v, want %v", err, r4.ErrAmbiguousChoice)
			}
		})
	}
}

func TestChoiceTypeMismatch(t *testing.T) {
	ext := r4.Extension{
		Url:   "http://example.org/ext",
		Value: &r4.DynamicValue{Type: r4.TypeInteger, Value: r4.String{Value: ptr.To("1")}},
	}
	if _, err := ext.MarshalJSON(); err == nil {
		t.Error("expected an error for a value that does not match its type")
	}
}

func TestChoiceAcceptsUnpermittedType(t *testing.T) {
	in := `{"resourceType":"Observation","effectiveQuantity":{"value":1}}`

	var o r4.Observation
	if err := json.Unmarshal([]byte(in), &o); err != nil {
		t.Fatal(err)
	}
	if o.Effective == nil || o.Effective.Type != r4.TypeQuantity {
		t.Fatalf("got %v, want a Quantity", o.Effective)
	}
	if err := r4.CheckChoiceTypes(o); err == nil {
		t.Error("expected CheckChoiceTypes to report effective[x]")
	}
}
