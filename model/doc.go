// Package model contains the release independent interfaces of the FHIR model.
//
// Release specific types live in sub packages, e.g. [github.com/damedic/fhir-model-go/model/r4].
package model
