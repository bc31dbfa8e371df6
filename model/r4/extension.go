package r4

// Extension is an additional content defined by implementations.
//
// An extension holds either a value or nested extensions. Holding both is not rejected.
type Extension struct {
	Id *string
	// Url identifies the meaning of the extension.
	Url       string
	Extension []Extension
	// Value may hold any type listed by DynamicValueTypes.
	Value *DynamicValue
}

func (r *Extension) jsonFields() []field {
	return []field{
		idField{&r.Id},
		stringField{n: "url", p: &r.Url},
		elementListField("extension", &r.Extension),
		choiceField{n: "value", p: &r.Value},
	}
}

// FindExtension returns the first extension with the given url.
func FindExtension(extensions []Extension, url string) (Extension, bool) {
	for _, e := range extensions {
		if e.Url == url {
			return e, true
		}
	}
	return Extension{}, false
}
