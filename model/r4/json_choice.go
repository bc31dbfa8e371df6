package r4

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// choiceCodec decodes one DynamicValueType.
type choiceCodec struct {
	primitive bool
	// decode reads either the value ("valueString") or, for primitives with meta set, the
	// sibling ("_valueString") and merges it into prev.
	decode func(d *json.Decoder, prev Datatype, meta bool) (Datatype, error)
}

func primitiveChoice[T Datatype, P interface {
	*T
	primitive
}]() choiceCodec {
	return choiceCodec{
		primitive: true,
		decode: func(d *json.Decoder, prev Datatype, meta bool) (Datatype, error) {
			var v T
			if p, ok := prev.(T); ok {
				v = p
			}
			if meta {
				var m primitiveElement
				if err := m.unmarshalJSON(d); err != nil {
					return nil, err
				}
				P(&v).setPrimitiveMeta(m)
				return v, nil
			}
			var raw json.RawMessage
			if err := d.Decode(&raw); err != nil {
				return nil, err
			}
			if err := P(&v).unmarshalValue(raw); err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

func structureChoice[T Datatype, P interface {
	*T
	structure
}]() choiceCodec {
	return choiceCodec{
		decode: func(d *json.Decoder, _ Datatype, _ bool) (Datatype, error) {
			var v T
			if err := P(&v).unmarshalJSON(d); err != nil {
				if errors.Is(err, errNullElement) {
					return nil, nil
				}
				return nil, err
			}
			return v, nil
		},
	}
}

// choiceField binds a choice element "name[x]". allowed lists the permitted types; it only
// steers suffix resolution and CheckChoiceTypes, decoding accepts every registered type.
type choiceField struct {
	n       string
	p       **DynamicValue
	allowed []DynamicValueType
}

func (f choiceField) name() string { return f.n + "[x]" }

func (f choiceField) marshalJSON(o *objectWriter) error {
	dv := *f.p
	if dv == nil || dv.Value == nil {
		return nil
	}
	t, err := dv.valueType()
	if err != nil {
		return err
	}
	key := f.n + t.Suffix()

	switch v := dv.Value.(type) {
	case primitiveMarshaler:
		if v.hasValue() {
			if err := o.key(key); err != nil {
				return err
			}
			if err := v.marshalValue(o.w); err != nil {
				return err
			}
		}
		if meta := v.primitiveMeta(); !meta.isEmpty() {
			if err := o.key("_" + key); err != nil {
				return err
			}
			return meta.marshalJSON(o.w)
		}
		return nil
	case structureMarshaler:
		if err := o.key(key); err != nil {
			return err
		}
		return v.marshalJSON(o.w)
	default:
		return fmt.Errorf("unsupported choice value %T", dv.Value)
	}
}

func (f choiceField) unmarshalJSON(d *json.Decoder, key string) (bool, error) {
	base, meta := strings.CutPrefix(key, "_")
	suffix, ok := strings.CutPrefix(base, f.n)
	if !ok || suffix == "" {
		return false, nil
	}
	t, ok := ParseSuffix(suffix, f.allowed...)
	if !ok {
		return false, nil
	}
	codec, ok := choiceCodecs[t]
	if !ok || meta && !codec.primitive {
		return false, nil
	}

	var prev Datatype
	if dv := *f.p; dv != nil && dv.Value != nil {
		if dv.Type != t {
			return true, fmt.Errorf("%w: %s%s and %s%s", ErrAmbiguousChoice, f.n, dv.Type.Suffix(), f.n, suffix)
		}
		prev = dv.Value
	}

	v, err := codec.decode(d, prev, meta)
	if err != nil {
		return true, err
	}
	if v != nil {
		*f.p = &DynamicValue{Type: t, Value: v}
	}
	return true, nil
}

func (f choiceField) checkChoiceTypes(path string) error {
	dv := *f.p
	if dv == nil || dv.Value == nil {
		return nil
	}
	path = path + "." + f.n
	t := dv.Value.DynamicValueType()
	if f.allowed != nil && !slices.Contains(f.allowed, t) {
		return fmt.Errorf("%s: type %s is not permitted, expected one of %v", path, t, f.allowed)
	}
	if c, ok := dv.Value.(choiceChecker); ok {
		return c.checkChoiceTypes(path + t.Suffix())
	}
	return nil
}
