package mars2grib

import (
	"fmt"
	"sync"

	"github.com/ecmwf/metkit-sub000/dict"
	"github.com/ecmwf/metkit-sub000/encoder"
	"github.com/ecmwf/metkit-sub000/gribhandle"
	"github.com/ecmwf/metkit-sub000/layout"
	"github.com/ecmwf/metkit-sub000/mgerr"
)

// Encoder is the top-level public entry point: sanitize, resolve the
// header layout, build or reuse a SpecializedEncoder for that layout,
// encode the header, then inject values. Encoder is immutable after
// construction and safe for concurrent use; its only mutable state is the
// specialized-encoder cache, which is internally synchronized.
type Encoder struct {
	opts Options

	mu    sync.RWMutex
	cache map[string]*encoder.SpecializedEncoder
}

// New builds an Encoder from the given options.
func New(opts Options) *Encoder {
	return &Encoder{
		opts:  opts,
		cache: make(map[string]*encoder.SpecializedEncoder),
	}
}

// Encode runs the full pipeline for a float64 payload.
func (e *Encoder) Encode(mars, aux dict.Dict, values []float64) (*gribhandle.Handle, error) {
	h, err := e.encodeHeader(mars, aux)
	if err != nil {
		return nil, mgerr.Wrap("mars2grib: encode", err)
	}
	if err := encoder.InjectValues(values, aux, h); err != nil {
		return nil, mgerr.Wrap("mars2grib: encode", err)
	}
	return h, nil
}

// EncodeFloat32 runs the full pipeline for a float32 payload, widening to
// float64 before injection.
func (e *Encoder) EncodeFloat32(mars, aux dict.Dict, values []float32) (*gribhandle.Handle, error) {
	h, err := e.encodeHeader(mars, aux)
	if err != nil {
		return nil, mgerr.Wrap("mars2grib: encode", err)
	}
	if err := encoder.InjectValuesFloat32(values, aux, h); err != nil {
		return nil, mgerr.Wrap("mars2grib: encode", err)
	}
	return h, nil
}

func (e *Encoder) encodeHeader(mars, aux dict.Dict) (*gribhandle.Handle, error) {
	hl, mars, aux, err := e.ResolveLayout(mars, aux)
	if err != nil {
		return nil, err
	}

	se := e.specializedEncoderFor(hl)
	h, err := se.Encode(mars, aux, e.optionsDict())
	if err != nil {
		return nil, mgerr.Wrap("mars2grib: specialized encode", err)
	}
	return h, nil
}

// ResolveLayout runs sanitization and header-layout resolution without
// encoding, returning the sanitized dicts alongside the layout. The
// check-mars2conf harness uses this to diff resolved template numbers
// against expectations without paying for a full encode.
func (e *Encoder) ResolveLayout(mars, aux dict.Dict) (*layout.HeaderLayout, dict.Dict, dict.Dict, error) {
	if e.opts.SanitizeMars {
		mars = sanitizeMarsDict(mars)
	}
	if e.opts.FixMarsGrid {
		mars = fixMarsGrid(mars)
	}
	if e.opts.SanitizeMisc {
		aux = sanitizeMiscDict(aux)
	}

	hl, err := layout.Build(mars, aux, e.optionsDict())
	if err != nil {
		return nil, nil, nil, mgerr.Wrap("mars2grib: header layout", err)
	}
	return hl, mars, aux, nil
}

// specializedEncoderFor reuses a cached SpecializedEncoder when a prior
// request resolved to the identical set of section template numbers,
// since two requests whose active concepts differ only in param/level
// values (not structural family) produce an identical plan.
func (e *Encoder) specializedEncoderFor(hl *layout.HeaderLayout) *encoder.SpecializedEncoder {
	key := layoutCacheKey(hl)

	e.mu.RLock()
	se, ok := e.cache[key]
	e.mu.RUnlock()
	if ok {
		return se
	}

	se = encoder.New(hl)

	e.mu.Lock()
	e.cache[key] = se
	e.mu.Unlock()
	return se
}

func layoutCacheKey(hl *layout.HeaderLayout) string {
	key := ""
	for _, s := range hl.Sections {
		key += fmt.Sprintf("%d:%d,", s.SectionID, s.TemplateNumber)
	}
	return key
}

func (e *Encoder) optionsDict() *dict.OptionsDict {
	return dict.NewOptionsDict(map[string]dict.Value{
		"applyChecks":                   dict.Bool(e.opts.ApplyChecks),
		"enableOverride":                dict.Bool(e.opts.EnableOverride),
		"enableBitsPerValueCompression": dict.Bool(e.opts.EnableBitsPerValueCompression),
		"sanitizeMars":                  dict.Bool(e.opts.SanitizeMars),
		"sanitizeMisc":                  dict.Bool(e.opts.SanitizeMisc),
		"fixMarsGrid":                   dict.Bool(e.opts.FixMarsGrid),
	})
}
