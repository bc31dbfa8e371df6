package encoding_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-model-go/internal/encoding"
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/r4"
	"github.com/damedic/fhir-model-go/utils/ptr"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    encoding.Format
		wantErr bool
	}{
		{in: "", want: encoding.FormatJSON},
		{in: "json", want: encoding.FormatJSON},
		{in: "application/json", want: encoding.FormatJSON},
		{in: " application/fhir+json ", want: encoding.FormatJSON},
		{in: "NDJSON", want: encoding.FormatNDJSON},
		{in: "application/fhir+ndjson", want: encoding.FormatNDJSON},
		{in: "xml", wantErr: true},
		{in: "application/fhir+xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := encoding.ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeResource(t *testing.T) {
	got, err := encoding.DecodeResource(strings.NewReader(`{"resourceType":"Patient","id":"p1","gender":"female"}`))
	if err != nil {
		t.Fatal(err)
	}
	want := r4.Patient{
		Id:     &r4.Id{Value: ptr.To("p1")},
		Gender: &r4.Code{Value: ptr.To("female")},
	}
	if diff := cmp.Diff(model.Resource(want), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeResourceErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "missing resource type", in: `{"id":"x"}`},
		{name: "invalid field", in: `{"resourceType":"Patient","foo":1}`},
		{name: "not an object", in: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := encoding.DecodeResource(strings.NewReader(tt.in)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDecodeResources(t *testing.T) {
	in := `{"resourceType":"Patient","id":"a"}
{"resourceType":"Observation","id":"b","status":"final","code":{"text":"x"}}

{"resourceType":"Basic","id":"c"}
`
	var ids []string
	err := encoding.DecodeResources(strings.NewReader(in), func(i int, r model.Resource) error {
		id, _ := r.ResourceId()
		ids = append(ids, r.ResourceType()+"/"+id)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Patient/a", "Observation/b", "Basic/c"}, ids); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeResourcesStops(t *testing.T) {
	stop := errors.New("stop")
	in := `{"resourceType":"Patient","id":"a"} {"resourceType":"Patient","id":"b"}`

	n := 0
	err := encoding.DecodeResources(strings.NewReader(in), func(int, model.Resource) error {
		n++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("got %v, want %v", err, stop)
	}
	if n != 1 {
		t.Errorf("callback called %d times", n)
	}
}

func TestDecodeResourcesReportsIndex(t *testing.T) {
	in := `{"resourceType":"Patient","id":"a"}
{"resourceType":"Patient","bogus":true}`

	err := encoding.DecodeResources(strings.NewReader(in), func(int, model.Resource) error { return nil })
	if err == nil || !strings.HasPrefix(err.Error(), "resource 1: ") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEncode(t *testing.T) {
	p := r4.ContainedResource{Resource: r4.Patient{
		Id:        &r4.Id{Value: ptr.To("p1")},
		BirthDate: &r4.Date{Value: ptr.To("1970-01-01")},
	}}

	tests := []struct {
		name   string
		format encoding.Format
		indent string
		want   string
	}{
		{
			name:   "compact",
			format: encoding.FormatJSON,
			want:   `{"resourceType":"Patient","id":"p1","birthDate":"1970-01-01"}` + "\n",
		},
		{
			name:   "indented",
			format: encoding.FormatJSON,
			indent: "  ",
			want: `{
  "resourceType": "Patient",
  "id": "p1",
  "birthDate": "1970-01-01"
}
`,
		},
		{
			name:   "ndjson ignores indent",
			format: encoding.FormatNDJSON,
			indent: "  ",
			want:   `{"resourceType":"Patient","id":"p1","birthDate":"1970-01-01"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer
			if err := encoding.Encode(&b, p, tt.format, tt.indent); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, b.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeDoesNotEscapeHTML(t *testing.T) {
	p := r4.ContainedResource{Resource: r4.Patient{
		Text: &r4.Narrative{
			Status: &r4.Code{Value: ptr.To("generated")},
			Div:    `<div xmlns="http://www.w3.org/1999/xhtml">a &amp; b</div>`,
		},
	}}

	var b bytes.Buffer
	if err := encoding.Encode(&b, p, encoding.FormatJSON, ""); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), `"div":"<div xmlns=\"http://www.w3.org/1999/xhtml\">a &amp; b</div>"`) {
		t.Errorf("html escaped: %s", b.String())
	}
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	var b bytes.Buffer
	if err := encoding.Encode(&b, r4.ContainedResource{}, encoding.Format("application/fhir+xml"), ""); err == nil {
		t.Error("expected error")
	}
}
