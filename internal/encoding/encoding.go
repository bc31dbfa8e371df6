// Package encoding reads and writes FHIR resources for the command line tools.
package encoding

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/r4"
)

type Format string

const (
	FormatJSON Format = "application/fhir+json"
	// FormatNDJSON is newline delimited JSON as used by bulk data exports, one resource per line.
	FormatNDJSON Format = "application/fhir+ndjson"
)

// ParseFormat accepts the values of the FHIR _format parameter that this package supports.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json", "application/json", "application/fhir+json":
		return FormatJSON, nil
	case "ndjson", "application/ndjson", "application/fhir+ndjson":
		return FormatNDJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// DecodeResource reads a single resource.
func DecodeResource(r io.Reader) (model.Resource, error) {
	contained, err := decodeJSON[r4.ContainedResource](json.NewDecoder(r))
	return contained.Resource, err
}

// DecodeResources reads resources one after another until r is exhausted and passes each to fn.
// Works for a single resource as well as for newline delimited JSON.
func DecodeResources(r io.Reader, fn func(i int, resource model.Resource) error) error {
	d := json.NewDecoder(r)
	for i := 0; ; i++ {
		contained, err := decodeJSON[r4.ContainedResource](d)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("resource %d: %w", i, err)
		}
		if err := fn(i, contained.Resource); err != nil {
			return err
		}
	}
}

// Encode writes v as JSON. A non-empty indent pretty-prints the output, which is not valid for
// FormatNDJSON.
func Encode[T any](w io.Writer, v T, format Format, indent string) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, v, indent)
	case FormatNDJSON:
		return encodeJSON(w, v, "")
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func encodeJSON[T any](w io.Writer, v T, indent string) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if indent != "" {
		encoder.SetIndent("", indent)
	}

	return encoder.Encode(v)
}

func decodeJSON[T any](d *json.Decoder) (T, error) {
	var v T
	if err := d.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return v, err
		}
		return v, fmt.Errorf("error parsing json body: %w", err)
	}
	return v, nil
}
