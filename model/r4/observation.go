package r4

import "github.com/damedic/fhir-model-go/model"

var (
	// ObservationEffectiveTypes are the types permitted for Observation.effective[x].
	ObservationEffectiveTypes = []DynamicValueType{TypeDateTime, TypePeriod, TypeTiming, TypeInstant}
	// ObservationValueTypes are the types permitted for Observation.value[x] and
	// Observation.component.value[x].
	ObservationValueTypes = []DynamicValueType{
		TypeQuantity, TypeCodeableConcept, TypeString, TypeBoolean, TypeInteger, TypeRange,
		TypeRatio, TypeSampledData, TypeTime, TypeDateTime, TypePeriod,
	}
)

// Observation holds measurements and simple assertions made about a patient, device or other
// subject.
type Observation struct {
	Id                *Id
	Meta              *Meta
	ImplicitRules     *Uri
	Language          *Code
	Text              *Narrative
	Contained         []model.Resource
	Extension         []Extension
	ModifierExtension []Extension
	Identifier        []Identifier
	BasedOn           []Reference
	PartOf            []Reference
	Status            *Code
	Category          []CodeableConcept
	Code              *CodeableConcept
	Subject           *Reference
	Focus             []Reference
	Encounter         *Reference
	Effective         *DynamicValue
	Issued            *Instant
	Performer         []Reference
	Value             *DynamicValue
	DataAbsentReason  *CodeableConcept
	Interpretation    []CodeableConcept
	Note              []Annotation
	BodySite          *CodeableConcept
	Method            *CodeableConcept
	Specimen          *Reference
	Device            *Reference
	ReferenceRange    []ObservationReferenceRange
	HasMember         []Reference
	DerivedFrom       []Reference
	Component         []ObservationComponent
}

func (r *Observation) jsonFields() []field {
	return []field{
		primitiveField("id", &r.Id),
		elementField("meta", &r.Meta),
		primitiveField("implicitRules", &r.ImplicitRules),
		primitiveField("language", &r.Language),
		elementField("text", &r.Text),
		resourceListField{n: "contained", p: &r.Contained},
		elementListField("extension", &r.Extension),
		elementListField("modifierExtension", &r.ModifierExtension),
		elementListField("identifier", &r.Identifier),
		elementListField("basedOn", &r.BasedOn),
		elementListField("partOf", &r.PartOf),
		primitiveField("status", &r.Status),
		elementListField("category", &r.Category),
		elementField("code", &r.Code),
		elementField("subject", &r.Subject),
		elementListField("focus", &r.Focus),
		elementField("encounter", &r.Encounter),
		choiceField{n: "effective", p: &r.Effective, allowed: ObservationEffectiveTypes},
		primitiveField("issued", &r.Issued),
		elementListField("performer", &r.Performer),
		choiceField{n: "value", p: &r.Value, allowed: ObservationValueTypes},
		elementField("dataAbsentReason", &r.DataAbsentReason),
		elementListField("interpretation", &r.Interpretation),
		elementListField("note", &r.Note),
		elementField("bodySite", &r.BodySite),
		elementField("method", &r.Method),
		elementField("specimen", &r.Specimen),
		elementField("device", &r.Device),
		elementListField("referenceRange", &r.ReferenceRange),
		elementListField("hasMember", &r.HasMember),
		elementListField("derivedFrom", &r.DerivedFrom),
		elementListField("component", &r.Component),
	}
}

// ObservationReferenceRange provides guidance on how to interpret the value.
type ObservationReferenceRange struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Low               *SimpleQuantity
	High              *SimpleQuantity
	Type              *CodeableConcept
	AppliesTo         []CodeableConcept
	Age               *Range
	Text              *String
}

func (r *ObservationReferenceRange) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementListField("modifierExtension", &r.ModifierExtension),
		elementField("low", &r.Low),
		elementField("high", &r.High),
		elementField("type", &r.Type),
		elementListField("appliesTo", &r.AppliesTo),
		elementField("age", &r.Age),
		primitiveField("text", &r.Text),
	}
}

// ObservationComponent is a component result, e.g. the systolic part of a blood pressure.
type ObservationComponent struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Code              *CodeableConcept
	Value             *DynamicValue
	DataAbsentReason  *CodeableConcept
	Interpretation    []CodeableConcept
	ReferenceRange    []ObservationReferenceRange
}

func (r *ObservationComponent) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementListField("modifierExtension", &r.ModifierExtension),
		elementField("code", &r.Code),
		choiceField{n: "value", p: &r.Value, allowed: ObservationValueTypes},
		elementField("dataAbsentReason", &r.DataAbsentReason),
		elementListField("interpretation", &r.Interpretation),
		elementListField("referenceRange", &r.ReferenceRange),
	}
}
