package r4

import "github.com/damedic/fhir-model-go/model"

// ConditionOnsetTypes are the types permitted for Condition.onset[x] and
// Condition.abatement[x].
var ConditionOnsetTypes = []DynamicValueType{TypeDateTime, TypeAge, TypePeriod, TypeRange, TypeString}

// Condition is a clinical condition, problem, diagnosis, or other event, situation, issue, or
// clinical concept that has risen to a level of concern.
type Condition struct {
	Id                 *Id
	Meta               *Meta
	ImplicitRules      *Uri
	Language           *Code
	Text               *Narrative
	Contained          []model.Resource
	Extension          []Extension
	ModifierExtension  []Extension
	Identifier         []Identifier
	ClinicalStatus     *CodeableConcept
	VerificationStatus *CodeableConcept
	Category           []CodeableConcept
	Severity           *CodeableConcept
	Code               *CodeableConcept
	BodySite           []CodeableConcept
	Subject            *Reference
	Encounter          *Reference
	Onset              *DynamicValue
	Abatement          *DynamicValue
	RecordedDate       *DateTime
	Recorder           *Reference
	Asserter           *Reference
	Stage              []ConditionStage
	Evidence           []ConditionEvidence
	Note               []Annotation
}

func (r *Condition) jsonFields() []field {
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
		elementField("clinicalStatus", &r.ClinicalStatus),
		elementField("verificationStatus", &r.VerificationStatus),
		elementListField("category", &r.Category),
		elementField("severity", &r.Severity),
		elementField("code", &r.Code),
		elementListField("bodySite", &r.BodySite),
		elementField("subject", &r.Subject),
		elementField("encounter", &r.Encounter),
		choiceField{n: "onset", p: &r.Onset, allowed: ConditionOnsetTypes},
		choiceField{n: "abatement", p: &r.Abatement, allowed: ConditionOnsetTypes},
		primitiveField("recordedDate", &r.RecordedDate),
		elementField("recorder", &r.Recorder),
		elementField("asserter", &r.Asserter),
		elementListField("stage", &r.Stage),
		elementListField("evidence", &r.Evidence),
		elementListField("note", &r.Note),
	}
}

// ConditionStage is a clinical stage or grade of a condition.
type ConditionStage struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Summary           *CodeableConcept
	Assessment        []Reference
	Type              *CodeableConcept
}

func (r *ConditionStage) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementListField("modifierExtension", &r.ModifierExtension),
		elementField("summary", &r.Summary),
		elementListField("assessment", &r.Assessment),
		elementField("type", &r.Type),
	}
}

// ConditionEvidence is supporting evidence for the verification status of a condition.
type ConditionEvidence struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Code              []CodeableConcept
	Detail            []Reference
}

func (r *ConditionEvidence) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementListField("modifierExtension", &r.ModifierExtension),
		elementListField("code", &r.Code),
		elementListField("detail", &r.Detail),
	}
}
