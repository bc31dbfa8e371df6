package r4

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/damedic/fhir-model-go/model"
)

// ContainedResource wraps any resource, it decodes to the concrete type named by
// "resourceType".
//
// Resource types without a model in this package decode to UnknownResource.
type ContainedResource struct {
	model.Resource
}

func (r ContainedResource) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	if err := r.marshalJSON(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (r ContainedResource) marshalJSON(w io.Writer) error {
	if r.Resource == nil {
		_, err := io.WriteString(w, "null")
		return err
	}
	if s, ok := r.Resource.(structureMarshaler); ok {
		return s.marshalJSON(w)
	}
	b, err := r.Resource.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func (r *ContainedResource) UnmarshalJSON(b []byte) error {
	return r.unmarshalJSON(json.NewDecoder(bytes.NewReader(b)))
}

func (r *ContainedResource) unmarshalJSON(d *json.Decoder) error {
	var raw json.RawMessage
	if err := d.Decode(&raw); err != nil {
		return err
	}

	var t struct {
		ResourceType string `json:"resourceType"`
	}
	if err := json.Unmarshal(raw, &t); err != nil {
		return fmt.Errorf("invalid token: %w, expected: '{' in contained resource", err)
	}
	if t.ResourceType == "" {
		return fmt.Errorf("missing resourceType in contained resource")
	}

	resource, err := unmarshalResource(t.ResourceType, raw)
	if err != nil {
		return err
	}
	r.Resource = resource
	return nil
}

func (r ContainedResource) String() string {
	return stringify(r)
}

func (r ContainedResource) checkChoiceTypes(path string) error {
	if c, ok := r.Resource.(choiceChecker); ok {
		return c.checkChoiceTypes(path)
	}
	return nil
}

func unmarshalResource(resourceType string, b []byte) (model.Resource, error) {
	switch resourceType {
	case "Patient":
		var r Patient
		err := unmarshalBytes(b, &r)
		return r, err
	case "Observation":
		var r Observation
		err := unmarshalBytes(b, &r)
		return r, err
	case "Condition":
		var r Condition
		err := unmarshalBytes(b, &r)
		return r, err
	case "MedicationRequest":
		var r MedicationRequest
		err := unmarshalBytes(b, &r)
		return r, err
	default:
		r := UnknownResource{}
		err := r.UnmarshalJSON(b)
		return r, err
	}
}

// UnknownResource holds a resource without a model in this package as generic JSON.
//
// Members keep their decoded form, numbers stay json.Number so that no precision is lost when
// the resource is written again.
type UnknownResource struct {
	Fields map[string]any
}

func (r UnknownResource) ResourceType() string {
	t, _ := r.Fields["resourceType"].(string)
	return t
}

func (r UnknownResource) ResourceId() (string, bool) {
	id, ok := r.Fields["id"].(string)
	return id, ok
}

// MarshalJSON writes "resourceType" first and the remaining members ordered by name.
func (r UnknownResource) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	if err := r.marshalJSON(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (r UnknownResource) marshalJSON(w io.Writer) error {
	if _, err := io.WriteString(w, "{"); err != nil {
		return err
	}
	o := objectWriter{w: w}
	if err := o.key("resourceType"); err != nil {
		return err
	}
	if err := writeJSONValue(w, r.ResourceType()); err != nil {
		return err
	}

	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		if k != "resourceType" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	for _, k := range keys {
		if err := o.key(k); err != nil {
			return err
		}
		if err := writeJSONValue(w, r.Fields[k]); err != nil {
			return fmt.Errorf("%s.%s: %w", r.ResourceType(), k, err)
		}
	}
	_, err := io.WriteString(w, "}")
	return err
}

func (r *UnknownResource) UnmarshalJSON(b []byte) error {
	d := json.NewDecoder(bytes.NewReader(b))
	d.UseNumber()
	var fields map[string]any
	if err := d.Decode(&fields); err != nil {
		return err
	}
	r.Fields = fields
	return nil
}

func (r UnknownResource) String() string {
	return stringify(r)
}

// ResourceTypes returns the names of all R4 resource types.
func ResourceTypes() []string {
	return slices.Clone(resourceTypeNames)
}

// IsResourceType reports whether name is an R4 resource type.
func IsResourceType(name string) bool {
	_, ok := slices.BinarySearch(resourceTypeNames, name)
	return ok
}
