package ir

import (
	"slices"
	"testing"
)

func TestR4(t *testing.T) {
	defs := R4()

	if !slices.IsSorted(defs.ResourceTypes) {
		t.Error("resource types are not sorted")
	}
	for _, r := range defs.Filter(KindResource) {
		if _, ok := slices.BinarySearch(defs.ResourceTypes, r.Name); !ok {
			t.Errorf("resource %s missing from resource types", r.Name)
		}
	}

	tags := map[string]string{}
	for _, tt := range defs.Tagged() {
		if prev, ok := tags[tt.Tag]; ok {
			t.Errorf("tag %s used by %s and %s", tt.Tag, prev, tt.Name)
		}
		tags[tt.Tag] = tt.Name
	}

	for _, p := range defs.Filter(KindPrimitive) {
		if p.ValueType == "" {
			t.Errorf("primitive %s has no value type", p.Name)
		}
		if p.Tag == "" {
			t.Errorf("primitive %s has no tag", p.Name)
		}
	}
}

func TestTaggedKeepsOrder(t *testing.T) {
	defs := Definitions{Types: []Type{
		{Name: "Quantity", Kind: KindDatatype, Tag: "QUANTITY"},
		{Name: "Narrative", Kind: KindDatatype},
		{Name: "SimpleQuantity", Kind: KindDatatype, Tag: "SIMPLE_QUANTITY"},
	}}

	var names []string
	for _, tt := range defs.Tagged() {
		names = append(names, tt.Name)
	}
	if !slices.Equal(names, []string{"Quantity", "SimpleQuantity"}) {
		t.Errorf("got %v", names)
	}
	if got := defs.Filter(KindResource); got != nil {
		t.Errorf("got %v", got)
	}
}
