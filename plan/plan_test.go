package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecmwf/metkit-sub000/dict"
	"github.com/ecmwf/metkit-sub000/layout"
	"github.com/ecmwf/metkit-sub000/plan"
)

func marsWith(kv map[string]dict.Value) dict.Dict {
	d := dict.NewMarsDict()
	for k, v := range kv {
		_ = d.Set(k, v)
	}
	return d
}

// Section initializers live in SpecializedEncoder.Encode's seedInitializers
// rather than plan cells, so Build's output holds exactly the concept
// callbacks: one cell per active concept with a registered writer.
func TestBuildSchedulesActiveConceptsWithCallbacks(t *testing.T) {
	mars := marsWith(map[string]dict.Value{
		"class": dict.String("od"), "type": dict.String("fc"), "param": dict.Long(167),
		"levtype": dict.String("sfc"), "grid": dict.String("1/1"),
	})
	aux := dict.NewAuxDict()
	opts := dict.NewOptionsDict(nil)

	hl, err := layout.Build(mars, aux, opts)
	require.NoError(t, err)

	p := plan.Build(hl)

	total := 0
	for _, stage := range p.Stages {
		for _, section := range stage {
			total += len(section)
		}
	}
	assert.Greater(t, total, 0)

	// Level, param, origin, referenceTime, dataType, tables, shapeOfTheEarth,
	// generatingProcess, pointInTime, packing all have registered callbacks
	// and are active for this request (a "1/1" grid leaves representation
	// Missing).
	assert.GreaterOrEqual(t, total, 10)
}

func TestBuildIsDeterministicAcrossCalls(t *testing.T) {
	mars := marsWith(map[string]dict.Value{
		"param": dict.Long(167), "levtype": dict.String("sfc"), "type": dict.String("fc"),
	})
	aux := dict.NewAuxDict()
	opts := dict.NewOptionsDict(nil)

	hl, err := layout.Build(mars, aux, opts)
	require.NoError(t, err)

	p1 := plan.Build(hl)
	p2 := plan.Build(hl)

	for s := range p1.Stages {
		for sec := range p1.Stages[s] {
			require.Len(t, p2.Stages[s][sec], len(p1.Stages[s][sec]))
			for i, cell := range p1.Stages[s][sec] {
				assert.Equal(t, cell.Concept, p2.Stages[s][sec][i].Concept)
				assert.Equal(t, cell.Variant, p2.Stages[s][sec][i].Variant)
			}
		}
	}
}
