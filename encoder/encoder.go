// Package encoder implements the specialized per-request encoder: the
// component that actually walks a resolved plan and writes a GRIB handle,
// plus the value injector that attaches the payload array afterwards.
package encoder

import (
	"errors"

	"github.com/ecmwf/metkit-sub000/concept"
	"github.com/ecmwf/metkit-sub000/dict"
	"github.com/ecmwf/metkit-sub000/gribhandle"
	"github.com/ecmwf/metkit-sub000/layout"
	"github.com/ecmwf/metkit-sub000/mgerr"
	"github.com/ecmwf/metkit-sub000/plan"
)

// SpecializedEncoder owns an immutable header layout and the encoding plan
// flattened from it. Once built it is safe to reuse and share read-only
// across goroutines: Encode only ever reads layout/plan state and writes
// into a fresh handle it creates itself.
type SpecializedEncoder struct {
	layout *layout.HeaderLayout
	plan   *plan.EncodingPlan
}

// New builds a SpecializedEncoder from a resolved header layout. Layout
// must be built before plan, since the plan is flattened from it.
func New(hl *layout.HeaderLayout) *SpecializedEncoder {
	return &SpecializedEncoder{layout: hl, plan: plan.Build(hl)}
}

// Layout returns the header layout this encoder was built from, for
// callers that need the resolved template numbers without re-deriving them.
func (e *SpecializedEncoder) Layout() *layout.HeaderLayout {
	return e.layout
}

// Encode runs every stage of the plan against a freshly loaded "GRIB2"
// sample handle, cloning the handle between stages to discard any
// transient state the previous stage's callbacks left behind. The returned
// handle carries every header key the plan wrote, ready for
// InjectValues and then Handle.Encode.
func (e *SpecializedEncoder) Encode(mars, aux, opts dict.Dict) (*gribhandle.Handle, error) {
	h, err := gribhandle.LoadSample("GRIB2")
	if err != nil {
		return nil, mgerr.Wrap("encoder: load sample", err)
	}

	seedInitializers(h, e.layout)

	for stage := 0; stage < plan.NStages; stage++ {
		for section := 0; section < layout.NSections; section++ {
			for _, cell := range e.plan.Stages[stage][section] {
				if err := cell.Callback(mars, aux, opts, h); err != nil {
					return nil, &mgerr.EncoderError{
						Stage:   stage,
						Section: section,
						Concept: cell.Concept.String(),
						Variant: concept.VariantName(cell.Variant),
						Inputs:  `{"mars":` + mars.ToJSON() + `,"aux":` + aux.ToJSON() + `}`,
						Err:     err,
					}
				}
			}
		}

		cloned, ok := h.Clone().(*gribhandle.Handle)
		if !ok {
			return nil, &mgerr.EncoderError{Stage: stage, Err: errors.New("clone did not return a *gribhandle.Handle")}
		}
		h = cloned
	}

	return h, nil
}

// seedInitializers writes the section-level template numbers the resolver
// already picked; this is the plan's conceptual "stage 0" (section
// initializers), run once before any concept callback so later callbacks
// can rely on the template number already being set.
func seedInitializers(h *gribhandle.Handle, hl *layout.HeaderLayout) {
	h.Set("discipline", dict.Long(0)) // meteorological products (Table 0.0)
	h.Set("setLocalDefinition", dict.Long(1))
	h.Set("localDefinitionNumber", dict.Long(realLocalDefinition(hl.Sections[2].TemplateNumber)))
	h.Set("gridDefinitionTemplateNumber", dict.Long(int64(hl.Sections[3].TemplateNumber)))
	h.Set("productDefinitionTemplateNumber", dict.Long(int64(hl.Sections[4].TemplateNumber)))
	h.Set("dataRepresentationTemplateNumber", dict.Long(int64(hl.Sections[5].TemplateNumber)))
}

// realLocalDefinition maps the encoder-specific virtual DestinE section 2
// template numbers (1001/1002/1004) onto the real local definition number
// written to the handle; real template numbers pass through unchanged. The
// per-theme real numbers are not modeled, so all three DestinE themes
// collapse onto local definition 1 and stay distinguishable through the
// destineActivity/destineExperiment payload fields instead.
func realLocalDefinition(templateNumber int) int64 {
	switch templateNumber {
	case 1001, 1002, 1004:
		return 1
	default:
		return int64(templateNumber)
	}
}
