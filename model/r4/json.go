package r4

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/cockroachdb/apd/v3"
	"go.uber.org/multierr"
)

// errNullElement is returned by unmarshalJSON of complex types when the JSON value is null.
// Callers treat the element as absent.
var errNullElement = errors.New("null element")

// primitiveMarshaler is implemented by all primitive types.
type primitiveMarshaler interface {
	hasValue() bool
	primitiveMeta() primitiveElement
	marshalValue(w io.Writer) error
}

// primitive is implemented by pointers to primitive types.
type primitive interface {
	primitiveMarshaler
	setPrimitiveMeta(p primitiveElement)
	unmarshalValue(b []byte) error
}

// structureMarshaler is implemented by all complex types and resources.
type structureMarshaler interface {
	marshalJSON(w io.Writer) error
}

// structure is implemented by pointers to complex types and resources.
type structure interface {
	structureMarshaler
	unmarshalJSON(d *json.Decoder) error
}

// choiceChecker is implemented by every element of this package, see CheckChoiceTypes.
type choiceChecker interface {
	checkChoiceTypes(path string) error
}

// objectWriter writes the members of a single JSON object.
type objectWriter struct {
	w        io.Writer
	setComma bool
}

func (o *objectWriter) key(k string) error {
	if o.setComma {
		if _, err := io.WriteString(o.w, ","); err != nil {
			return err
		}
	}
	o.setComma = true

	_, err := io.WriteString(o.w, `"`+k+`":`)
	return err
}

// marshalStructure writes a JSON object with the given fields in declaration order.
//
// Resources pass their type name as resourceType, which is written as first member.
func marshalStructure(w io.Writer, name string, resourceType bool, fields []field) error {
	if _, err := io.WriteString(w, "{"); err != nil {
		return err
	}

	o := objectWriter{w: w}
	if resourceType {
		if err := o.key("resourceType"); err != nil {
			return err
		}
		if err := writeJSONValue(w, name); err != nil {
			return err
		}
	}

	for _, f := range fields {
		if err := f.marshalJSON(&o); err != nil {
			return fmt.Errorf("%s.%s: %w", name, f.name(), err)
		}
	}

	_, err := io.WriteString(w, "}")
	return err
}

// unmarshalStructure reads a JSON object and routes every member to the field claiming its key.
func unmarshalStructure(d *json.Decoder, name string, resourceType bool, fields []field) error {
	t, err := d.Token()
	if err != nil {
		return err
	}
	if t == nil {
		return errNullElement
	}
	if t != json.Delim('{') {
		return fmt.Errorf("invalid token: %v, expected: '{' in %s element", t, name)
	}

	for d.More() {
		t, err = d.Token()
		if err != nil {
			return err
		}
		k, ok := t.(string)
		if !ok {
			return fmt.Errorf("invalid token: %v, expected: field name in %s element", t, name)
		}

		if resourceType && k == "resourceType" {
			if _, err := d.Token(); err != nil {
				return err
			}
			continue
		}

		matched := false
		for _, f := range fields {
			ok, err := f.unmarshalJSON(d, k)
			if err != nil {
				return fmt.Errorf("%s.%s: %w", name, f.name(), err)
			}
			if ok {
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Errorf("invalid field: %s in %s", k, name)
		}
	}

	t, err = d.Token()
	if err != nil {
		return err
	}
	if t != json.Delim('}') {
		return fmt.Errorf("invalid token: %v, expected: '}' in %s element", t, name)
	}
	return nil
}

func marshalBytes(s structureMarshaler) ([]byte, error) {
	var b bytes.Buffer
	if err := s.marshalJSON(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func unmarshalBytes(b []byte, s structure) error {
	d := json.NewDecoder(bytes.NewReader(b))
	err := s.unmarshalJSON(d)
	if errors.Is(err, errNullElement) {
		return nil
	}
	return err
}

// marshalPrimitive returns the bare JSON value of p; id and extensions only exist on the
// "_field" sibling and are lost.
func marshalPrimitive(p primitiveMarshaler) ([]byte, error) {
	var b bytes.Buffer
	if err := p.marshalValue(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func readPrimitiveValue[T any](b []byte, v **T) error {
	if isNull(b) {
		*v = nil
		return nil
	}
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		return err
	}
	*v = &t
	return nil
}

// writeDecimal writes d as a JSON number with the precision it carries.
func writeDecimal(w io.Writer, d *apd.Decimal) error {
	if d == nil {
		_, err := io.WriteString(w, "null")
		return err
	}
	_, err := io.WriteString(w, d.Text('G'))
	return err
}

func readDecimal(b []byte, v **apd.Decimal) error {
	if isNull(b) {
		*v = nil
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	d, _, err := apd.NewFromString(n.String())
	if err != nil {
		return fmt.Errorf("invalid decimal %s: %w", n, err)
	}
	*v = d
	return nil
}

func checkFields(path string, fields []field) error {
	var err error
	for _, f := range fields {
		err = multierr.Append(err, f.checkChoiceTypes(path))
	}
	return err
}

// writeJSONValue writes v without HTML escaping and without the encoder's trailing newline.
func writeJSONValue(w io.Writer, v any) error {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(bytes.TrimSuffix(b.Bytes(), []byte("\n")))
	return err
}

func expectDelim(d *json.Decoder, delim json.Delim, in string) error {
	t, err := d.Token()
	if err != nil {
		return err
	}
	if t != delim {
		return fmt.Errorf("invalid token: %v, expected: '%v' in %s", t, delim, in)
	}
	return nil
}

// openArray consumes the opening bracket of an array. It returns false if the value is null
// or on error.
func openArray(d *json.Decoder, in string) (bool, error) {
	t, err := d.Token()
	if err != nil {
		return false, err
	}
	if t == nil {
		return false, nil
	}
	if t != json.Delim('[') {
		return false, fmt.Errorf("invalid token: %v, expected: '[' in %s", t, in)
	}
	return true, nil
}

func isNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}

func stringify(v json.Marshaler) string {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "null"
	}
	return string(buf)
}
