package r4

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/multierr"

	"github.com/damedic/fhir-model-go/model"
)

// field binds one declared element of a complex type to its JSON members.
//
// Complex types return their fields in declaration order from jsonFields, which makes the
// field list the single source for marshalling, unmarshalling and CheckChoiceTypes.
type field interface {
	name() string
	marshalJSON(o *objectWriter) error
	// unmarshalJSON consumes the value following key if the key belongs to this field.
	unmarshalJSON(d *json.Decoder, key string) (bool, error)
	checkChoiceTypes(path string) error
}

// stringField is a plain JSON string without primitive extensions, e.g. Extension.url.
type stringField struct {
	n string
	p *string
}

func (f stringField) name() string { return f.n }

func (f stringField) marshalJSON(o *objectWriter) error {
	if *f.p == "" {
		return nil
	}
	if err := o.key(f.n); err != nil {
		return err
	}
	return writeJSONValue(o.w, *f.p)
}

func (f stringField) unmarshalJSON(d *json.Decoder, key string) (bool, error) {
	if key != f.n {
		return false, nil
	}
	var v *string
	if err := d.Decode(&v); err != nil {
		return true, err
	}
	if v != nil {
		*f.p = *v
	}
	return true, nil
}

func (f stringField) checkChoiceTypes(string) error { return nil }

// idField is the id of a non-resource element, a plain string in JSON.
type idField struct {
	p **string
}

func (f idField) name() string { return "id" }

func (f idField) marshalJSON(o *objectWriter) error {
	if *f.p == nil {
		return nil
	}
	if err := o.key("id"); err != nil {
		return err
	}
	return writeJSONValue(o.w, **f.p)
}

func (f idField) unmarshalJSON(d *json.Decoder, key string) (bool, error) {
	if key != "id" {
		return false, nil
	}
	var v *string
	if err := d.Decode(&v); err != nil {
		return true, err
	}
	*f.p = v
	return true, nil
}

func (f idField) checkChoiceTypes(string) error { return nil }

type primitiveFieldOf[T any, P interface {
	*T
	primitive
}] struct {
	n string
	p **T
}

// primitiveField binds a single optional primitive. The value is written as "name" and the
// id and extensions as "_name".
func primitiveField[T any, P interface {
	*T
	primitive
}](name string, p **T) field {
	return primitiveFieldOf[T, P]{n: name, p: p}
}

func (f primitiveFieldOf[T, P]) name() string { return f.n }

func (f primitiveFieldOf[T, P]) marshalJSON(o *objectWriter) error {
	if *f.p == nil {
		return nil
	}
	v := P(*f.p)

	if v.hasValue() {
		if err := o.key(f.n); err != nil {
			return err
		}
		if err := v.marshalValue(o.w); err != nil {
			return err
		}
	}

	if meta := v.primitiveMeta(); !meta.isEmpty() {
		if err := o.key("_" + f.n); err != nil {
			return err
		}
		if err := meta.marshalJSON(o.w); err != nil {
			return err
		}
	}
	return nil
}

func (f primitiveFieldOf[T, P]) unmarshalJSON(d *json.Decoder, key string) (bool, error) {
	switch key {
	case f.n:
		var raw json.RawMessage
		if err := d.Decode(&raw); err != nil {
			return true, err
		}
		if isNull(raw) {
			return true, nil
		}
		if *f.p == nil {
			*f.p = new(T)
		}
		return true, P(*f.p).unmarshalValue(raw)
	case "_" + f.n:
		var meta primitiveElement
		if err := meta.unmarshalJSON(d); err != nil {
			return true, err
		}
		if meta.isEmpty() {
			return true, nil
		}
		if *f.p == nil {
			*f.p = new(T)
		}
		P(*f.p).setPrimitiveMeta(meta)
		return true, nil
	default:
		return false, nil
	}
}

func (f primitiveFieldOf[T, P]) checkChoiceTypes(path string) error {
	if *f.p == nil {
		return nil
	}
	return checkExtensions(path+"."+f.n, P(*f.p).primitiveMeta().Extension)
}

type primitiveListFieldOf[T any, P interface {
	*T
	primitive
}] struct {
	n string
	p *[]T
}

// primitiveListField binds a repeating primitive. Values and metadata are written as two
// positionally aligned arrays, "name" and "_name", using null for missing entries.
func primitiveListField[T any, P interface {
	*T
	primitive
}](name string, p *[]T) field {
	return primitiveListFieldOf[T, P]{n: name, p: p}
}

func (f primitiveListFieldOf[T, P]) name() string { return f.n }

func (f primitiveListFieldOf[T, P]) marshalJSON(o *objectWriter) error {
	s := *f.p

	anyValue, anyMeta := false, false
	for i := range s {
		v := P(&s[i])
		anyValue = anyValue || v.hasValue()
		anyMeta = anyMeta || !v.primitiveMeta().isEmpty()
	}

	if anyValue {
		if err := o.key(f.n); err != nil {
			return err
		}
		if err := writeArray(o.w, len(s), func(i int) error {
			return P(&s[i]).marshalValue(o.w)
		}); err != nil {
			return err
		}
	}

	if anyMeta {
		if err := o.key("_" + f.n); err != nil {
			return err
		}
		if err := writeArray(o.w, len(s), func(i int) error {
			meta := P(&s[i]).primitiveMeta()
			if meta.isEmpty() {
				_, err := io.WriteString(o.w, "null")
				return err
			}
			return meta.marshalJSON(o.w)
		}); err != nil {
			return err
		}
	}
	return nil
}

func (f primitiveListFieldOf[T, P]) unmarshalJSON(d *json.Decoder, key string) (bool, error) {
	switch key {
	case f.n:
		if ok, err := openArray(d, f.n); !ok {
			return true, err
		}
		for i := 0; d.More(); i++ {
			var raw json.RawMessage
			if err := d.Decode(&raw); err != nil {
				return true, err
			}
			for len(*f.p) <= i {
				*f.p = append(*f.p, *new(T))
			}
			if err := P(&(*f.p)[i]).unmarshalValue(raw); err != nil {
				return true, fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return true, expectDelim(d, ']', f.n)
	case "_" + f.n:
		if ok, err := openArray(d, "_"+f.n); !ok {
			return true, err
		}
		for i := 0; d.More(); i++ {
			var meta primitiveElement
			if err := meta.unmarshalJSON(d); err != nil {
				return true, fmt.Errorf("[%d]: %w", i, err)
			}
			for len(*f.p) <= i {
				*f.p = append(*f.p, *new(T))
			}
			P(&(*f.p)[i]).setPrimitiveMeta(meta)
		}
		return true, expectDelim(d, ']', "_"+f.n)
	default:
		return false, nil
	}
}

func (f primitiveListFieldOf[T, P]) checkChoiceTypes(path string) error {
	var err error
	for i := range *f.p {
		p := fmt.Sprintf("%s.%s[%d]", path, f.n, i)
		err = multierr.Append(err, checkExtensions(p, P(&(*f.p)[i]).primitiveMeta().Extension))
	}
	return err
}

type elementFieldOf[T choiceChecker, P interface {
	*T
	structure
}] struct {
	n string
	p **T
}

// elementField binds a single optional complex element.
func elementField[T choiceChecker, P interface {
	*T
	structure
}](name string, p **T) field {
	return elementFieldOf[T, P]{n: name, p: p}
}

func (f elementFieldOf[T, P]) name() string { return f.n }

func (f elementFieldOf[T, P]) marshalJSON(o *objectWriter) error {
	if *f.p == nil {
		return nil
	}
	if err := o.key(f.n); err != nil {
		return err
	}
	return P(*f.p).marshalJSON(o.w)
}

func (f elementFieldOf[T, P]) unmarshalJSON(d *json.Decoder, key string) (bool, error) {
	if key != f.n {
		return false, nil
	}
	var v T
	if err := P(&v).unmarshalJSON(d); err != nil {
		if errors.Is(err, errNullElement) {
			return true, nil
		}
		return true, err
	}
	*f.p = &v
	return true, nil
}

func (f elementFieldOf[T, P]) checkChoiceTypes(path string) error {
	if *f.p == nil {
		return nil
	}
	return (**f.p).checkChoiceTypes(path + "." + f.n)
}

type elementListFieldOf[T choiceChecker, P interface {
	*T
	structure
}] struct {
	n string
	p *[]T
}

// elementListField binds a repeating complex element. Empty lists are omitted.
func elementListField[T choiceChecker, P interface {
	*T
	structure
}](name string, p *[]T) field {
	return elementListFieldOf[T, P]{n: name, p: p}
}

func (f elementListFieldOf[T, P]) name() string { return f.n }

func (f elementListFieldOf[T, P]) marshalJSON(o *objectWriter) error {
	s := *f.p
	if len(s) == 0 {
		return nil
	}
	if err := o.key(f.n); err != nil {
		return err
	}
	return writeArray(o.w, len(s), func(i int) error {
		return P(&s[i]).marshalJSON(o.w)
	})
}

func (f elementListFieldOf[T, P]) unmarshalJSON(d *json.Decoder, key string) (bool, error) {
	if key != f.n {
		return false, nil
	}
	if ok, err := openArray(d, f.n); !ok {
		return true, err
	}
	for i := 0; d.More(); i++ {
		var v T
		if err := P(&v).unmarshalJSON(d); err != nil {
			if errors.Is(err, errNullElement) {
				continue
			}
			return true, fmt.Errorf("[%d]: %w", i, err)
		}
		*f.p = append(*f.p, v)
	}
	return true, expectDelim(d, ']', f.n)
}

func (f elementListFieldOf[T, P]) checkChoiceTypes(path string) error {
	var err error
	for i, e := range *f.p {
		err = multierr.Append(err, e.checkChoiceTypes(fmt.Sprintf("%s.%s[%d]", path, f.n, i)))
	}
	return err
}

// resourceListField binds nested resources, e.g. DomainResource.contained.
type resourceListField struct {
	n string
	p *[]model.Resource
}

func (f resourceListField) name() string { return f.n }

func (f resourceListField) marshalJSON(o *objectWriter) error {
	s := *f.p
	if len(s) == 0 {
		return nil
	}
	if err := o.key(f.n); err != nil {
		return err
	}
	return writeArray(o.w, len(s), func(i int) error {
		return ContainedResource{s[i]}.marshalJSON(o.w)
	})
}

func (f resourceListField) unmarshalJSON(d *json.Decoder, key string) (bool, error) {
	if key != f.n {
		return false, nil
	}
	if ok, err := openArray(d, f.n); !ok {
		return true, err
	}
	for i := 0; d.More(); i++ {
		var v ContainedResource
		if err := v.unmarshalJSON(d); err != nil {
			return true, fmt.Errorf("[%d]: %w", i, err)
		}
		*f.p = append(*f.p, v.Resource)
	}
	return true, expectDelim(d, ']', f.n)
}

func (f resourceListField) checkChoiceTypes(path string) error {
	var err error
	for i, r := range *f.p {
		if c, ok := r.(choiceChecker); ok {
			err = multierr.Append(err, c.checkChoiceTypes(fmt.Sprintf("%s.%s[%d]", path, f.n, i)))
		}
	}
	return err
}

func writeArray(w io.Writer, n int, writeElement func(i int) error) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if err := writeElement(i); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

func checkExtensions(path string, extensions []Extension) error {
	var err error
	for i, e := range extensions {
		err = multierr.Append(err, e.checkChoiceTypes(path+".extension["+strconv.Itoa(i)+"]"))
	}
	return err
}
