// Package ptr provides helpers for working with pointers to values.
package ptr

// To returns a pointer to a copy of v.
//
// It is mostly useful for populating optional primitive values in composite literals:
//
//	r4.String{Value: ptr.To("Smyrna")}
func To[T any](v T) *T {
	return &v
}
