package r4

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// primitiveElement is the content of the "_field" sibling of a primitive.
type primitiveElement struct {
	Id        *string
	Extension []Extension
}

func (r primitiveElement) isEmpty() bool {
	return r.Id == nil && len(r.Extension) == 0
}

func (r primitiveElement) marshalJSON(w io.Writer) error {
	var err error
	if _, err = io.WriteString(w, "{"); err != nil {
		return err
	}
	setComma := false
	if r.Id != nil {
		if _, err = io.WriteString(w, `"id":`); err != nil {
			return err
		}
		if err = writeJSONValue(w, r.Id); err != nil {
			return err
		}
		setComma = true
	}
	if len(r.Extension) > 0 {
		if setComma {
			if _, err = io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if _, err = io.WriteString(w, `"extension":[`); err != nil {
			return err
		}
		for i, e := range r.Extension {
			if i > 0 {
				if _, err = io.WriteString(w, ","); err != nil {
					return err
				}
			}
			if err = e.marshalJSON(w); err != nil {
				return err
			}
		}
		if _, err = io.WriteString(w, "]"); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "}")
	return err
}

// unmarshalJSON reads a primitive element. A JSON null leaves r empty, which is how
// positions without metadata are encoded in "_field" arrays.
func (r *primitiveElement) unmarshalJSON(d *json.Decoder) error {
	t, err := d.Token()
	if err != nil {
		return err
	}
	if t == nil {
		return nil
	} else if t != json.Delim('{') {
		return fmt.Errorf("invalid token: %v, expected: '{' in primitive element", t)
	}

	for d.More() {
		t, err = d.Token()
		if err != nil {
			return err
		}
		f, ok := t.(string)
		if !ok {
			return fmt.Errorf("invalid token: %v, expected: field name in primitive element", t)
		}
		switch f {
		case "id":
			var v *string
			if err := d.Decode(&v); err != nil {
				return err
			}
			r.Id = v
		case "extension":
			ok, err := openArray(d, "primitive element")
			if err != nil {
				return err
			}
			for ok && d.More() {
				var v Extension
				if err := v.unmarshalJSON(d); err != nil {
					if errors.Is(err, errNullElement) {
						continue
					}
					return err
				}
				r.Extension = append(r.Extension, v)
			}
			if !ok {
				continue
			}
			if err := expectDelim(d, ']', "primitive element"); err != nil {
				return err
			}
		default:
			return fmt.Errorf("invalid field: %v in primitive element, expected \"id\" or \"extension\" (at index %v)", t, d.InputOffset()-1)
		}
	}

	return expectDelim(d, '}', "primitive element")
}
