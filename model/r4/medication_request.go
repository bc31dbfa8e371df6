package r4

import "github.com/damedic/fhir-model-go/model"

var (
	// MedicationRequestReportedTypes are the types permitted for MedicationRequest.reported[x].
	MedicationRequestReportedTypes = []DynamicValueType{TypeBoolean, TypeReference}
	// MedicationRequestMedicationTypes are the types permitted for
	// MedicationRequest.medication[x].
	MedicationRequestMedicationTypes = []DynamicValueType{TypeCodeableConcept, TypeReference}
	// MedicationRequestSubstitutionAllowedTypes are the types permitted for
	// MedicationRequest.substitution.allowed[x].
	MedicationRequestSubstitutionAllowedTypes = []DynamicValueType{TypeBoolean, TypeCodeableConcept}
)

// MedicationRequest is an order or request for both supply of the medication and the
// instructions for administration of the medication to a patient.
type MedicationRequest struct {
	Id                    *Id
	Meta                  *Meta
	ImplicitRules         *Uri
	Language              *Code
	Text                  *Narrative
	Contained             []model.Resource
	Extension             []Extension
	ModifierExtension     []Extension
	Identifier            []Identifier
	Status                *Code
	StatusReason          *CodeableConcept
	Intent                *Code
	Category              []CodeableConcept
	Priority              *Code
	DoNotPerform          *Boolean
	Reported              *DynamicValue
	Medication            *DynamicValue
	Subject               *Reference
	Encounter             *Reference
	SupportingInformation []Reference
	AuthoredOn            *DateTime
	Requester             *Reference
	Performer             *Reference
	PerformerType         *CodeableConcept
	Recorder              *Reference
	ReasonCode            []CodeableConcept
	ReasonReference       []Reference
	InstantiatesCanonical []Canonical
	InstantiatesUri       []Uri
	BasedOn               []Reference
	GroupIdentifier       *Identifier
	CourseOfTherapyType   *CodeableConcept
	Insurance             []Reference
	Note                  []Annotation
	DosageInstruction     []Dosage
	DispenseRequest       *MedicationRequestDispenseRequest
	Substitution          *MedicationRequestSubstitution
	PriorPrescription     *Reference
	DetectedIssue         []Reference
	EventHistory          []Reference
}

func (r *MedicationRequest) jsonFields() []field {
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
		primitiveField("status", &r.Status),
		elementField("statusReason", &r.StatusReason),
		primitiveField("intent", &r.Intent),
		elementListField("category", &r.Category),
		primitiveField("priority", &r.Priority),
		primitiveField("doNotPerform", &r.DoNotPerform),
		choiceField{n: "reported", p: &r.Reported, allowed: MedicationRequestReportedTypes},
		choiceField{n: "medication", p: &r.Medication, allowed: MedicationRequestMedicationTypes},
		elementField("subject", &r.Subject),
		elementField("encounter", &r.Encounter),
		elementListField("supportingInformation", &r.SupportingInformation),
		primitiveField("authoredOn", &r.AuthoredOn),
		elementField("requester", &r.Requester),
		elementField("performer", &r.Performer),
		elementField("performerType", &r.PerformerType),
		elementField("recorder", &r.Recorder),
		elementListField("reasonCode", &r.ReasonCode),
		elementListField("reasonReference", &r.ReasonReference),
		primitiveListField("instantiatesCanonical", &r.InstantiatesCanonical),
		primitiveListField("instantiatesUri", &r.InstantiatesUri),
		elementListField("basedOn", &r.BasedOn),
		elementField("groupIdentifier", &r.GroupIdentifier),
		elementField("courseOfTherapyType", &r.CourseOfTherapyType),
		elementListField("insurance", &r.Insurance),
		elementListField("note", &r.Note),
		elementListField("dosageInstruction", &r.DosageInstruction),
		elementField("dispenseRequest", &r.DispenseRequest),
		elementField("substitution", &r.Substitution),
		elementField("priorPrescription", &r.PriorPrescription),
		elementListField("detectedIssue", &r.DetectedIssue),
		elementListField("eventHistory", &r.EventHistory),
	}
}

// MedicationRequestDispenseRequest holds the medication supply authorization.
type MedicationRequestDispenseRequest struct {
	Id                     *string
	Extension              []Extension
	ModifierExtension      []Extension
	InitialFill            *MedicationRequestDispenseRequestInitialFill
	DispenseInterval       *Duration
	ValidityPeriod         *Period
	NumberOfRepeatsAllowed *UnsignedInt
	Quantity               *SimpleQuantity
	ExpectedSupplyDuration *Duration
	Performer              *Reference
}

func (r *MedicationRequestDispenseRequest) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementListField("modifierExtension", &r.ModifierExtension),
		elementField("initialFill", &r.InitialFill),
		elementField("dispenseInterval", &r.DispenseInterval),
		elementField("validityPeriod", &r.ValidityPeriod),
		primitiveField("numberOfRepeatsAllowed", &r.NumberOfRepeatsAllowed),
		elementField("quantity", &r.Quantity),
		elementField("expectedSupplyDuration", &r.ExpectedSupplyDuration),
		elementField("performer", &r.Performer),
	}
}

// MedicationRequestDispenseRequestInitialFill is the first fill of a dispense request.
type MedicationRequestDispenseRequestInitialFill struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Quantity          *SimpleQuantity
	Duration          *Duration
}

func (r *MedicationRequestDispenseRequestInitialFill) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementListField("modifierExtension", &r.ModifierExtension),
		elementField("quantity", &r.Quantity),
		elementField("duration", &r.Duration),
	}
}

// MedicationRequestSubstitution indicates whether substitution can or should be part of the
// dispense.
type MedicationRequestSubstitution struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Allowed           *DynamicValue
	Reason            *CodeableConcept
}

func (r *MedicationRequestSubstitution) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementListField("modifierExtension", &r.ModifierExtension),
		choiceField{n: "allowed", p: &r.Allowed, allowed: MedicationRequestSubstitutionAllowedTypes},
		elementField("reason", &r.Reason),
	}
}
