package r4

// BaseQuantity holds the elements shared by Quantity and its specializations.
//
// Each specialization is a distinct type with its own DynamicValueType, conversions between
// them are plain Go conversions, e.g. Quantity(age).
type BaseQuantity struct {
	Id         *string
	Extension  []Extension
	Value      *Decimal
	Comparator *Code
	Unit       *String
	System     *Uri
	Code       *Code
}

func (r *BaseQuantity) jsonFields() []field {
	return []field{
		idField{&r.Id},
		elementListField("extension", &r.Extension),
		primitiveField("value", &r.Value),
		primitiveField("comparator", &r.Comparator),
		primitiveField("unit", &r.Unit),
		primitiveField("system", &r.System),
		primitiveField("code", &r.Code),
	}
}

// Quantity is a measured amount (or an amount that can potentially be measured).
type Quantity BaseQuantity

func (r *Quantity) jsonFields() []field { return (*BaseQuantity)(r).jsonFields() }

// Age is a duration of time during which an organism (or a process) has existed.
type Age BaseQuantity

func (r *Age) jsonFields() []field { return (*BaseQuantity)(r).jsonFields() }

// Count is a measured amount of discrete entities.
type Count BaseQuantity

func (r *Count) jsonFields() []field { return (*BaseQuantity)(r).jsonFields() }

// Distance is a length, a value with a unit that is a physical distance.
type Distance BaseQuantity

func (r *Distance) jsonFields() []field { return (*BaseQuantity)(r).jsonFields() }

// Duration is a length of time.
type Duration BaseQuantity

func (r *Duration) jsonFields() []field { return (*BaseQuantity)(r).jsonFields() }

// MoneyQuantity is an amount of money, written with the "Quantity" suffix in choice elements.
type MoneyQuantity BaseQuantity

func (r *MoneyQuantity) jsonFields() []field { return (*BaseQuantity)(r).jsonFields() }

// SimpleQuantity is a Quantity without a comparator, written with the "Quantity" suffix in
// choice elements.
type SimpleQuantity BaseQuantity

func (r *SimpleQuantity) jsonFields() []field { return (*BaseQuantity)(r).jsonFields() }
