package main

import (
	"io"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"

	"github.com/damedic/fhir-model-go/internal/encoding"
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/r4"
)

// format rewrites every resource read from in to out.
//
// Choice type violations do not stop formatting, they are logged and returned together once
// all resources are written.
func format(in io.Reader, out io.Writer, cfg *Config, logger zerolog.Logger) error {
	f, err := encoding.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	var violations error
	n := 0
	err = encoding.DecodeResources(in, func(i int, resource model.Resource) error {
		contained := r4.ContainedResource{Resource: resource}
		id, _ := resource.ResourceId()
		l := logger.With().Int("index", i).Str("resourceType", resource.ResourceType()).Str("id", id).Logger()

		if cfg.CheckChoiceTypes {
			if err := r4.CheckChoiceTypes(contained); err != nil {
				for _, e := range multierr.Errors(err) {
					l.Warn().Err(e).Msg("choice type not permitted")
				}
				violations = multierr.Append(violations, err)
			}
		}
		if _, ok := resource.(r4.UnknownResource); ok {
			l.Debug().Msg("no model for resource type, members are written as read")
		}

		n++
		return encoding.Encode(out, contained, f, cfg.Indent)
	})
	if err != nil {
		return err
	}

	logger.Debug().Int("resources", n).Msg("formatted")
	return violations
}
