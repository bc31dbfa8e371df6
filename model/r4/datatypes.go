package r4

// Coding is a representation of a defined concept using a symbol from a defined code system.
type Coding struct {
	Id           *string
	Extension    []Extension
	System       *Uri
	Version      *String
	Code         *Code
	Display      *String
	UserSelected *Boolean
}

func (r *Coding) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		primitiveField("system", &r.System),
		primitiveField("version", &r.Version),
		primitiveField("code", &r.Code),
		primitiveField("display", &r.Display),
		primitiveField("userSelected", &r.UserSelected),
	}
}

// CodeableConcept is a concept that may be defined by a formal reference to a terminology or
// ontology or may be provided by text.
type CodeableConcept struct {
	Id        *string
	Extension []Extension
	Coding    []Coding
	Text      *String
}

func (r *CodeableConcept) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementListField("coding", &r.Coding),
		primitiveField("text", &r.Text),
	}
}

// Identifier is a numeric or alphanumeric string that is associated with a single object or
// entity within a given system.
type Identifier struct {
	Id        *string
	Extension []Extension
	Use       *Code
	Type      *CodeableConcept
	System    *Uri
	Value     *String
	Period    *Period
	Assigner  *Reference
}

func (r *Identifier) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		primitiveField("use", &r.Use),
		elementField("type", &r.Type),
		primitiveField("system", &r.System),
		primitiveField("value", &r.Value),
		elementField("period", &r.Period),
		elementField("assigner", &r.Assigner),
	}
}

// Period is a time period defined by a start and end date and optionally time.
type Period struct {
	Id        *string
	Extension []Extension
	Start     *DateTime
	End       *DateTime
}

func (r *Period) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		primitiveField("start", &r.Start),
		primitiveField("end", &r.End),
	}
}

// HumanName is a name of a human with text, parts and usage information.
type HumanName struct {
	Id        *string
	Extension []Extension
	Use       *Code
	Text      *String
	Family    *String
	Given     []String
	Prefix    []String
	Suffix    []String
	Period    *Period
}

func (r *HumanName) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		primitiveField("use", &r.Use),
		primitiveField("text", &r.Text),
		primitiveField("family", &r.Family),
		primitiveListField("given", &r.Given),
		primitiveListField("prefix", &r.Prefix),
		primitiveListField("suffix", &r.Suffix),
		elementField("period", &r.Period),
	}
}

// ContactPoint holds the details for all kinds of technology mediated contact points.
type ContactPoint struct {
	Id        *string
	Extension []Extension
	System    *Code
	Value     *String
	Use       *Code
	Rank      *PositiveInt
	Period    *Period
}

func (r *ContactPoint) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		primitiveField("system", &r.System),
		primitiveField("value", &r.Value),
		primitiveField("use", &r.Use),
		primitiveField("rank", &r.Rank),
		elementField("period", &r.Period),
	}
}

// Address is an address expressed using postal conventions.
type Address struct {
	Id         *string
	Extension  []Extension
	Use        *Code
	Type       *Code
	Text       *String
	Line       []String
	City       *String
	District   *String
	State      *String
	PostalCode *String
	Country    *String
	Period     *Period
}

func (r *Address) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		primitiveField("use", &r.Use),
		primitiveField("type", &r.Type),
		primitiveField("text", &r.Text),
		primitiveListField("line", &r.Line),
		primitiveField("city", &r.City),
		primitiveField("district", &r.District),
		primitiveField("state", &r.State),
		primitiveField("postalCode", &r.PostalCode),
		primitiveField("country", &r.Country),
		elementField("period", &r.Period),
	}
}

// Attachment is content in a format defined elsewhere.
type Attachment struct {
	Id          *string
	Extension   []Extension
	ContentType *Code
	Language    *Code
	Data        *Base64Binary
	Url         *Url
	Size        *UnsignedInt
	Hash        *Base64Binary
	Title       *String
	Creation    *DateTime
}

func (r *Attachment) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		primitiveField("contentType", &r.ContentType),
		primitiveField("language", &r.Language),
		primitiveField("data", &r.Data),
		primitiveField("url", &r.Url),
		primitiveField("size", &r.Size),
		primitiveField("hash", &r.Hash),
		primitiveField("title", &r.Title),
		primitiveField("creation", &r.Creation),
	}
}

// AnnotationAuthorTypes are the types permitted for Annotation.author[x].
var AnnotationAuthorTypes = []DynamicValueType{TypeReference, TypeString}

// Annotation is a text note which also contains information about who made the statement and
// when.
type Annotation struct {
	Id        *string
	Extension []Extension
	// Author is a Reference or a String.
	Author *DynamicValue
	Time   *DateTime
	Text   *Markdown
}

func (r *Annotation) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		choiceField{n: "author", p: &r.Author, allowed: AnnotationAuthorTypes},
		primitiveField("time", &r.Time),
		primitiveField("text", &r.Text),
	}
}

// Meta is the metadata about a resource.
type Meta struct {
	Id          *string
	Extension   []Extension
	VersionId   *Id
	LastUpdated *Instant
	Source      *Uri
	Profile     []Canonical
	Security    []Coding
	Tag         []Coding
}

func (r *Meta) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		primitiveField("versionId", &r.VersionId),
		primitiveField("lastUpdated", &r.LastUpdated),
		primitiveField("source", &r.Source),
		primitiveListField("profile", &r.Profile),
		elementListField("security", &r.Security),
		elementListField("tag", &r.Tag),
	}
}

// Money is an amount of economic utility in some recognized currency.
type Money struct {
	Id        *string
	Extension []Extension
	Value     *Decimal
	Currency  *Code
}

func (r *Money) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		primitiveField("value", &r.Value),
		primitiveField("currency", &r.Currency),
	}
}

// Range is a set of ordered Quantities defined by a low and high limit.
type Range struct {
	Id        *string
	Extension []Extension
	Low       *SimpleQuantity
	High      *SimpleQuantity
}

func (r *Range) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementField("low", &r.Low),
		elementField("high", &r.High),
	}
}

// Ratio is a relationship of two Quantity values, expressed as a numerator and a denominator.
type Ratio struct {
	Id          *string
	Extension   []Extension
	Numerator   *Quantity
	Denominator *Quantity
}

func (r *Ratio) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementField("numerator", &r.Numerator),
		elementField("denominator", &r.Denominator),
	}
}

// SampledData is a series of measurements taken by a device.
type SampledData struct {
	Id         *string
	Extension  []Extension
	Origin     *SimpleQuantity
	Period     *Decimal
	Factor     *Decimal
	LowerLimit *Decimal
	UpperLimit *Decimal
	Dimensions *PositiveInt
	Data       *String
}

func (r *SampledData) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementField("origin", &r.Origin),
		primitiveField("period", &r.Period),
		primitiveField("factor", &r.Factor),
		primitiveField("lowerLimit", &r.LowerLimit),
		primitiveField("upperLimit", &r.UpperLimit),
		primitiveField("dimensions", &r.Dimensions),
		primitiveField("data", &r.Data),
	}
}

// Signature is a signature along with supporting context.
type Signature struct {
	Id           *string
	Extension    []Extension
	Type         []Coding
	When         *Instant
	Who          *Reference
	OnBehalfOf   *Reference
	TargetFormat *Code
	SigFormat    *Code
	Data         *Base64Binary
}

func (r *Signature) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementListField("type", &r.Type),
		primitiveField("when", &r.When),
		elementField("who", &r.Who),
		elementField("onBehalfOf", &r.OnBehalfOf),
		primitiveField("targetFormat", &r.TargetFormat),
		primitiveField("sigFormat", &r.SigFormat),
		primitiveField("data", &r.Data),
	}
}

// ContactDetail specifies contact information for a person or organization.
type ContactDetail struct {
	Id        *string
	Extension []Extension
	Name      *String
	Telecom   []ContactPoint
}

func (r *ContactDetail) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		primitiveField("name", &r.Name),
		elementListField("telecom", &r.Telecom),
	}
}

// UsageContextValueTypes are the types permitted for UsageContext.value[x].
var UsageContextValueTypes = []DynamicValueType{TypeCodeableConcept, TypeQuantity, TypeRange, TypeReference}

// UsageContext describes the context of use for a conformance or knowledge resource.
type UsageContext struct {
	Id        *string
	Extension []Extension
	Code      *Coding
	Value     *DynamicValue
}

func (r *UsageContext) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementField("code", &r.Code),
		choiceField{n: "value", p: &r.Value, allowed: UsageContextValueTypes},
	}
}

// Narrative is a human-readable summary of the resource.
type Narrative struct {
	Id        *string
	Extension []Extension
	Status    *Code
	// Div is limited xhtml content.
	Div string
}

func (r *Narrative) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		primitiveField("status", &r.Status),
		stringField{n: "div", p: &r.Div},
	}
}
