package r4

import "github.com/damedic/fhir-model-go/model"

var (
	// PatientDeceasedTypes are the types permitted for Patient.deceased[x].
	PatientDeceasedTypes = []DynamicValueType{TypeBoolean, TypeDateTime}
	// PatientMultipleBirthTypes are the types permitted for Patient.multipleBirth[x].
	PatientMultipleBirthTypes = []DynamicValueType{TypeBoolean, TypeInteger}
)

// Patient holds demographics and other administrative information about an individual
// receiving care or other health-related services.
type Patient struct {
	Id                   *Id
	Meta                 *Meta
	ImplicitRules        *Uri
	Language             *Code
	Text                 *Narrative
	Contained            []model.Resource
	Extension            []Extension
	ModifierExtension    []Extension
	Identifier           []Identifier
	Active               *Boolean
	Name                 []HumanName
	Telecom              []ContactPoint
	Gender               *Code
	BirthDate            *Date
	Deceased             *DynamicValue
	Address              []Address
	MaritalStatus        *CodeableConcept
	MultipleBirth        *DynamicValue
	Photo                []Attachment
	Contact              []PatientContact
	Communication        []PatientCommunication
	GeneralPractitioner  []Reference
	ManagingOrganization *Reference
	Link                 []PatientLink
}

func (r *Patient) jsonFields() []field {
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
		primitiveField("active", &r.Active),
		elementListField("name", &r.Name),
		elementListField("telecom", &r.Telecom),
		primitiveField("gender", &r.Gender),
		primitiveField("birthDate", &r.BirthDate),
		choiceField{n: "deceased", p: &r.Deceased, allowed: PatientDeceasedTypes},
		elementListField("address", &r.Address),
		elementField("maritalStatus", &r.MaritalStatus),
		choiceField{n: "multipleBirth", p: &r.MultipleBirth, allowed: PatientMultipleBirthTypes},
		elementListField("photo", &r.Photo),
		elementListField("contact", &r.Contact),
		elementListField("communication", &r.Communication),
		elementListField("generalPractitioner", &r.GeneralPractitioner),
		elementField("managingOrganization", &r.ManagingOrganization),
		elementListField("link", &r.Link),
	}
}

// PatientContact is a contact party (e.g. guardian, partner, friend) for the patient.
type PatientContact struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Relationship      []CodeableConcept
	Name              *HumanName
	Telecom           []ContactPoint
	Address           *Address
	Gender            *Code
	Organization      *Reference
	Period            *Period
}

func (r *PatientContact) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementListField("modifierExtension", &r.ModifierExtension),
		elementListField("relationship", &r.Relationship),
		elementField("name", &r.Name),
		elementListField("telecom", &r.Telecom),
		elementField("address", &r.Address),
		primitiveField("gender", &r.Gender),
		elementField("organization", &r.Organization),
		elementField("period", &r.Period),
	}
}

// PatientCommunication is a language which may be used to communicate with the patient.
type PatientCommunication struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Language          *CodeableConcept
	Preferred         *Boolean
}

func (r *PatientCommunication) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementListField("modifierExtension", &r.ModifierExtension),
		elementField("language", &r.Language),
		primitiveField("preferred", &r.Preferred),
	}
}

// PatientLink links to another patient resource that concerns the same actual person.
type PatientLink struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Other             *Reference
	Type              *Code
}

func (r *PatientLink) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementListField("modifierExtension", &r.ModifierExtension),
		elementField("other", &r.Other),
		primitiveField("type", &r.Type),
	}
}
