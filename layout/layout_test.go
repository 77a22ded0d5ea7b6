package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecmwf/metkit-sub000/dict"
	"github.com/ecmwf/metkit-sub000/layout"
)

func marsWith(kv map[string]dict.Value) dict.Dict {
	d := dict.NewMarsDict()
	for k, v := range kv {
		_ = d.Set(k, v)
	}
	return d
}

var opts = dict.NewOptionsDict(nil)
var aux = dict.NewAuxDict()

// TestSurfaceTemperatureLayout resolves an instantaneous surface field:
// section 3 template 0 (lat/lon), section 4 template 0 (pointInTime),
// section 5 template 0 (simple packing).
func TestSurfaceTemperatureLayout(t *testing.T) {
	mars := marsWith(map[string]dict.Value{
		"class": dict.String("od"), "type": dict.String("fc"), "stream": dict.String("oper"),
		"expver": dict.String("0001"), "date": dict.String("20250101"), "time": dict.String("0000"),
		"step": dict.Long(12), "param": dict.Long(167), "levtype": dict.String("sfc"),
		"grid": dict.String("1/1"),
	})

	hl, err := layout.Build(mars, aux, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, hl.Sections[0].TemplateNumber)
	assert.Equal(t, 1, hl.Sections[2].TemplateNumber)
	assert.Equal(t, 0, hl.Sections[3].TemplateNumber)
	assert.Equal(t, 0, hl.Sections[4].TemplateNumber)
	assert.Equal(t, 0, hl.Sections[5].TemplateNumber)
}

// TestAccumulatedPrecipitationLayout: an accumulated field over a timespan
// resolves section 4 to template 8 (statistically processed).
func TestAccumulatedPrecipitationLayout(t *testing.T) {
	mars := marsWith(map[string]dict.Value{
		"class": dict.String("od"), "type": dict.String("fc"), "stream": dict.String("oper"),
		"date": dict.String("20250101"), "time": dict.String("0000"),
		"step": dict.Long(24), "param": dict.Long(228228), "levtype": dict.String("sfc"),
		"grid": dict.String("1/1"), "timespan": dict.Long(24),
	})

	hl, err := layout.Build(mars, aux, opts)
	require.NoError(t, err)
	assert.Equal(t, 8, hl.Sections[4].TemplateNumber)
}

// TestEnsemblePerturbedLayout: a perturbed ensemble member resolves
// section 4 to template 1.
func TestEnsemblePerturbedLayout(t *testing.T) {
	mars := marsWith(map[string]dict.Value{
		"class": dict.String("od"), "type": dict.String("pf"), "stream": dict.String("enfo"),
		"date": dict.String("20250101"), "time": dict.String("0000"),
		"step": dict.Long(12), "param": dict.Long(167), "levtype": dict.String("sfc"),
		"number": dict.Long(5), "grid": dict.String("1/1"),
	})

	hl, err := layout.Build(mars, aux, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, hl.Sections[4].TemplateNumber)
}

// TestReducedGaussianAnalysisLayout: an N320 analysis resolves section 3 to
// template 40 (Gaussian) and section 4 to template 0.
func TestReducedGaussianAnalysisLayout(t *testing.T) {
	mars := marsWith(map[string]dict.Value{
		"type": dict.String("an"), "param": dict.Long(129), "levtype": dict.String("sfc"),
		"grid": dict.String("N320"),
	})

	hl, err := layout.Build(mars, aux, opts)
	require.NoError(t, err)
	assert.Equal(t, 36, hl.Sections[2].TemplateNumber)
	assert.Equal(t, 40, hl.Sections[3].TemplateNumber)
	assert.Equal(t, 0, hl.Sections[4].TemplateNumber)
}

// TestDestineClimateDTLayout: a Destination Earth climate-dt dataset
// resolves section 2 to the virtual DestinE template 1001.
func TestDestineClimateDTLayout(t *testing.T) {
	mars := marsWith(map[string]dict.Value{
		"dataset": dict.String("climate-dt"), "activity": dict.String("ScenarioMIP"),
		"experiment": dict.String("SSP3-7.0"), "param": dict.Long(167),
		"levtype": dict.String("sfc"), "type": dict.String("fc"), "grid": dict.String("1/1"),
	})

	hl, err := layout.Build(mars, aux, opts)
	require.NoError(t, err)
	assert.Equal(t, 1001, hl.Sections[2].TemplateNumber)
}

// TestWaveSpectraLayout: 2-D wave spectra resolve section 4 to template 99
// with no level concept active.
func TestWaveSpectraLayout(t *testing.T) {
	mars := marsWith(map[string]dict.Value{
		"param": dict.Long(140251), "frequency": dict.Long(25), "direction": dict.Long(24),
		"levtype": dict.String("sfc"), "type": dict.String("fc"),
	})

	hl, err := layout.Build(mars, aux, opts)
	require.NoError(t, err)
	assert.Equal(t, 99, hl.Sections[4].TemplateNumber)
}
