package concept_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecmwf/metkit-sub000/concept"
	"github.com/ecmwf/metkit-sub000/dict"
)

// TestOffsetRoundTrip checks the dense-numbering invariant: every global
// variant id falls inside its concept's [offset, nextOffset) band, and
// translating local -> global -> local is the identity.
func TestOffsetRoundTrip(t *testing.T) {
	for c := concept.ID(0); c < concept.NConcepts; c++ {
		next := concept.ID(c + 1)
		lo := concept.Offset(c)
		hi := concept.TotalVariants()
		if next < concept.NConcepts {
			hi = concept.Offset(next)
		}

		for local := concept.Variant(0); concept.Offset(c)+local < hi; local++ {
			global := concept.Global(c, local)
			assert.GreaterOrEqual(t, int(global), int(lo))
			assert.Less(t, int(global), int(hi))
			assert.Equal(t, local, concept.LocalOf(c, global))
		}
	}
}

func TestGlobalMissingPropagates(t *testing.T) {
	assert.Equal(t, concept.Missing, concept.Global(concept.Level, concept.Missing))
	assert.Equal(t, concept.Missing, concept.LocalOf(concept.Level, concept.Missing))
}

func marsWith(kv map[string]dict.Value) dict.Dict {
	d := dict.NewMarsDict()
	for k, v := range kv {
		_ = d.Set(k, v)
	}
	return d
}

// TestLevelIsobaricBoundary: levelist 50 under "pl" resolves to
// IsobaricInPa (Pascals), 500 resolves to IsobaricInHpa (hectopascals),
// split at the 100 threshold.
func TestLevelIsobaricBoundary(t *testing.T) {
	opts := dict.NewOptionsDict(nil)
	aux := dict.NewAuxDict()

	pa := marsWith(map[string]dict.Value{
		"param":    dict.Long(130),
		"levtype":  dict.String("pl"),
		"levelist": dict.Long(50),
	})
	v, err := concept.Match(concept.Level, pa, aux, opts)
	require.NoError(t, err)
	assert.Equal(t, concept.Global(concept.Level, concept.LevelIsobaricInPa), v)

	hpa := marsWith(map[string]dict.Value{
		"param":    dict.Long(130),
		"levtype":  dict.String("pl"),
		"levelist": dict.Long(500),
	})
	v, err = concept.Match(concept.Level, hpa, aux, opts)
	require.NoError(t, err)
	assert.Equal(t, concept.Global(concept.Level, concept.LevelIsobaricInHpa), v)
}

// TestWaveShortCircuitsLevel: frequency+direction present makes the level
// matcher return Missing and the wave matcher return Spectra.
func TestWaveShortCircuitsLevel(t *testing.T) {
	opts := dict.NewOptionsDict(nil)
	aux := dict.NewAuxDict()
	mars := marsWith(map[string]dict.Value{
		"param":     dict.Long(140251),
		"levtype":   dict.String("sfc"),
		"frequency": dict.Long(25),
		"direction": dict.Long(24),
	})

	level, err := concept.Match(concept.Level, mars, aux, opts)
	require.NoError(t, err)
	assert.Equal(t, concept.Missing, level)

	wave, err := concept.Match(concept.Wave, mars, aux, opts)
	require.NoError(t, err)
	assert.Equal(t, concept.Global(concept.Wave, concept.WaveSpectra), wave)
}

// TestSatelliteShortCircuitsLevel: channel+ident+instrument present makes
// the level matcher return Missing.
func TestSatelliteShortCircuitsLevel(t *testing.T) {
	opts := dict.NewOptionsDict(nil)
	aux := dict.NewAuxDict()
	mars := marsWith(map[string]dict.Value{
		"param":      dict.Long(260510),
		"levtype":    dict.String("sfc"),
		"channel":    dict.Long(1),
		"ident":      dict.Long(1),
		"instrument": dict.Long(1),
	})

	level, err := concept.Match(concept.Level, mars, aux, opts)
	require.NoError(t, err)
	assert.Equal(t, concept.Missing, level)

	sat, err := concept.Match(concept.Satellite, mars, aux, opts)
	require.NoError(t, err)
	assert.NotEqual(t, concept.Missing, sat)
}

func TestLevelUnknownLevtypeErrors(t *testing.T) {
	opts := dict.NewOptionsDict(nil)
	aux := dict.NewAuxDict()
	mars := marsWith(map[string]dict.Value{
		"param":   dict.Long(130),
		"levtype": dict.String("bogus"),
	})

	_, err := concept.Match(concept.Level, mars, aux, opts)
	require.Error(t, err)
}

func TestMatchAllCoversEveryConcept(t *testing.T) {
	opts := dict.NewOptionsDict(nil)
	aux := dict.NewAuxDict()
	mars := marsWith(map[string]dict.Value{
		"param":   dict.Long(167),
		"levtype": dict.String("sfc"),
		"class":   dict.String("od"),
		"type":    dict.String("fc"),
	})

	active, err := concept.MatchAll(mars, aux, opts)
	require.NoError(t, err)
	// Concepts active for every request regardless of specifics.
	assert.NotEqual(t, concept.Missing, active[concept.Origin])
	assert.NotEqual(t, concept.Missing, active[concept.ReferenceTime])
	assert.NotEqual(t, concept.Missing, active[concept.Tables])
	assert.NotEqual(t, concept.Missing, active[concept.Mars])
	// Nil never contributes.
	assert.Equal(t, concept.Missing, active[concept.Nil])
}
