package r4

// Timing specifies an event that may occur multiple times.
type Timing struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Event             []DateTime
	Repeat            *TimingRepeat
	Code              *CodeableConcept
}

func (r *Timing) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementListField("modifierExtension", &r.ModifierExtension),
		primitiveListField("event", &r.Event),
		elementField("repeat", &r.Repeat),
		elementField("code", &r.Code),
	}
}

// TimingRepeatBoundsTypes are the types permitted for Timing.repeat.bounds[x].
var TimingRepeatBoundsTypes = []DynamicValueType{TypeDuration, TypeRange, TypePeriod}

// TimingRepeat describes when the event is to occur.
type TimingRepeat struct {
	Id           *string
	Extension    []Extension
	Bounds       *DynamicValue
	Count        *PositiveInt
	CountMax     *PositiveInt
	Duration     *Decimal
	DurationMax  *Decimal
	DurationUnit *Code
	Frequency    *PositiveInt
	FrequencyMax *PositiveInt
	Period       *Decimal
	PeriodMax    *Decimal
	PeriodUnit   *Code
	DayOfWeek    []Code
	TimeOfDay    []Time
	When         []Code
	Offset       *UnsignedInt
}

func (r *TimingRepeat) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		choiceField{n: "bounds", p: &r.Bounds, allowed: TimingRepeatBoundsTypes},
		primitiveField("count", &r.Count),
		primitiveField("countMax", &r.CountMax),
		primitiveField("duration", &r.Duration),
		primitiveField("durationMax", &r.DurationMax),
		primitiveField("durationUnit", &r.DurationUnit),
		primitiveField("frequency", &r.Frequency),
		primitiveField("frequencyMax", &r.FrequencyMax),
		primitiveField("period", &r.Period),
		primitiveField("periodMax", &r.PeriodMax),
		primitiveField("periodUnit", &r.PeriodUnit),
		primitiveListField("dayOfWeek", &r.DayOfWeek),
		primitiveListField("timeOfDay", &r.TimeOfDay),
		primitiveListField("when", &r.When),
		primitiveField("offset", &r.Offset),
	}
}

// DosageAsNeededTypes are the types permitted for Dosage.asNeeded[x].
var DosageAsNeededTypes = []DynamicValueType{TypeBoolean, TypeCodeableConcept}

// Dosage indicates how the medication is/was taken or should be taken by the patient.
type Dosage struct {
	Id                       *string
	Extension                []Extension
	ModifierExtension        []Extension
	Sequence                 *Integer
	Text                     *String
	AdditionalInstruction    []CodeableConcept
	PatientInstruction       *String
	Timing                   *Timing
	AsNeeded                 *DynamicValue
	Site                     *CodeableConcept
	Route                    *CodeableConcept
	Method                   *CodeableConcept
	DoseAndRate              []DosageDoseAndRate
	MaxDosePerPeriod         *Ratio
	MaxDosePerAdministration *SimpleQuantity
	MaxDosePerLifetime       *SimpleQuantity
}

func (r *Dosage) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementListField("modifierExtension", &r.ModifierExtension),
		primitiveField("sequence", &r.Sequence),
		primitiveField("text", &r.Text),
		elementListField("additionalInstruction", &r.AdditionalInstruction),
		primitiveField("patientInstruction", &r.PatientInstruction),
		elementField("timing", &r.Timing),
		choiceField{n: "asNeeded", p: &r.AsNeeded, allowed: DosageAsNeededTypes},
		elementField("site", &r.Site),
		elementField("route", &r.Route),
		elementField("method", &r.Method),
		elementListField("doseAndRate", &r.DoseAndRate),
		elementField("maxDosePerPeriod", &r.MaxDosePerPeriod),
		elementField("maxDosePerAdministration", &r.MaxDosePerAdministration),
		elementField("maxDosePerLifetime", &r.MaxDosePerLifetime),
	}
}

var (
	// DosageDoseAndRateDoseTypes are the types permitted for Dosage.doseAndRate.dose[x].
	DosageDoseAndRateDoseTypes = []DynamicValueType{TypeRange, TypeSimpleQuantity}
	// DosageDoseAndRateRateTypes are the types permitted for Dosage.doseAndRate.rate[x].
	DosageDoseAndRateRateTypes = []DynamicValueType{TypeRatio, TypeRange, TypeSimpleQuantity}
)

// DosageDoseAndRate is the amount of medication administered.
type DosageDoseAndRate struct {
	Id        *string
	Extension []Extension
	Type      *CodeableConcept
	Dose      *DynamicValue
	Rate      *DynamicValue
}

func (r *DosageDoseAndRate) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		elementField("type", &r.Type),
		choiceField{n: "dose", p: &r.Dose, allowed: DosageDoseAndRateDoseTypes},
		choiceField{n: "rate", p: &r.Rate, allowed: DosageDoseAndRateRateTypes},
	}
}
