package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		in   string
		want string
	}{
		{
			name: "declaration order",
			cfg:  Config{Format: "json"},
			in:   `{"birthDate":"1970-01-01","id":"p1","resourceType":"Patient"}`,
			want: `{"resourceType":"Patient","id":"p1","birthDate":"1970-01-01"}` + "\n",
		},
		{
			name: "indented",
			cfg:  Config{Format: "json", Indent: "  "},
			in:   `{"resourceType":"Patient","id":"p1"}`,
			want: "{\n  \"resourceType\": \"Patient\",\n  \"id\": \"p1\"\n}\n",
		},
		{
			name: "ndjson",
			cfg:  Config{Format: "ndjson", Indent: "  "},
			in: `{"resourceType":"Patient","id":"a"}
{"resourceType":"Condition","id":"b","onsetString":"childhood"}
`,
			want: `{"resourceType":"Patient","id":"a"}
{"resourceType":"Condition","id":"b","onsetString":"childhood"}
`,
		},
		{
			name: "unknown resource",
			cfg:  Config{Format: "json"},
			in:   `{"resourceType":"Basic","id":"b","amount":1.50}`,
			want: `{"resourceType":"Basic","amount":1.50,"id":"b"}` + "\n",
		},
		{
			name: "empty input",
			cfg:  Config{Format: "json"},
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := format(strings.NewReader(tt.in), &out, &tt.cfg, zerolog.Nop()); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, out.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatChoiceTypeViolations(t *testing.T) {
	in := `{"resourceType":"Patient","id":"p1","deceasedString":"yes"}`

	var out, logs bytes.Buffer
	cfg := Config{Format: "json", CheckChoiceTypes: true}
	err := format(strings.NewReader(in), &out, &cfg, zerolog.New(&logs))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Patient.deceased") {
		t.Errorf("unexpected error: %v", err)
	}

	// the resource is written nevertheless
	if diff := cmp.Diff(in+"\n", out.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logs.String(), "choice type not permitted") {
		t.Errorf("missing log entry: %s", logs.String())
	}
}

func TestFormatWithoutChoiceTypeCheck(t *testing.T) {
	in := `{"resourceType":"Patient","deceasedString":"yes"}`

	var out bytes.Buffer
	cfg := Config{Format: "json"}
	if err := format(strings.NewReader(in), &out, &cfg, zerolog.Nop()); err != nil {
		t.Fatal(err)
	}
}

func TestFormatErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		in   string
	}{
		{name: "unsupported format", cfg: Config{Format: "xml"}, in: `{"resourceType":"Patient"}`},
		{name: "invalid field", cfg: Config{Format: "json"}, in: `{"resourceType":"Patient","foo":1}`},
		{name: "missing resource type", cfg: Config{Format: "json"}, in: `{"id":"x"}`},
		{name: "truncated", cfg: Config{Format: "json"}, in: `{"resourceType":"Patient"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := format(strings.NewReader(tt.in), &out, &tt.cfg, zerolog.Nop()); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunReadsFiles(t *testing.T) {
	dir := t.TempDir()
	a := dir + "/a.json"
	b := dir + "/b.json"
	writeFile(t, a, `{"id":"a","resourceType":"Patient"}`)
	writeFile(t, b, `{"id":"b","resourceType":"Patient"}`)

	var out bytes.Buffer
	cfg := Config{Format: "ndjson"}
	if err := run([]string{a, b}, strings.NewReader("ignored"), &out, &cfg, zerolog.Nop()); err != nil {
		t.Fatal(err)
	}

	want := `{"resourceType":"Patient","id":"a"}
{"resourceType":"Patient","id":"b"}
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{Format: "json"}
	err := run([]string{t.TempDir() + "/missing.json"}, nil, &out, &cfg, zerolog.Nop())
	if err == nil {
		t.Fatal("expected error")
	}
}
