package concept

import (
	"fmt"

	"github.com/ecmwf/metkit-sub000/dict"
	"github.com/ecmwf/metkit-sub000/mgerr"
)

// Level variants: one per vertical-coordinate kind the encoder writes into
// the typeOfFirstFixedSurface family of product-section keys.
const (
	LevelSurface Variant = iota
	LevelEntireAtmosphere
	LevelMeanSea
	LevelHeightAboveGround
	LevelHeightAboveGroundAt10M
	LevelHeightAboveGroundAt2M
	LevelIsobaricInHpa
	LevelIsobaricInPa
	LevelHybrid
	LevelTheta
	LevelPotentialVorticity
	LevelSoilLayer
	LevelAbstractSingleLevel
	nLevelVariants
)

var levelVariantNames = []string{
	LevelSurface:                "Surface",
	LevelEntireAtmosphere:       "EntireAtmosphere",
	LevelMeanSea:                "MeanSea",
	LevelHeightAboveGround:      "HeightAboveGround",
	LevelHeightAboveGroundAt10M: "HeightAboveGroundAt10M",
	LevelHeightAboveGroundAt2M: "HeightAboveGroundAt2M",
	LevelIsobaricInHpa:          "IsobaricInHpa",
	LevelIsobaricInPa:           "IsobaricInPa",
	LevelHybrid:                 "Hybrid",
	LevelTheta:                  "Theta",
	LevelPotentialVorticity:     "PotentialVorticity",
	LevelSoilLayer:              "SoilLayer",
	LevelAbstractSingleLevel:    "AbstractSingleLevel",
}

func init() {
	register(Level, levelVariantNames, matchLevel)
}

var entireAtmosphereParams = []int64{136, 137}
var hAboveGround10mParams = []int64{165, 166}
var hAboveGround2mParams = []int64{167, 168}

// matchLevel first defers to wave and satellite (they own the level axis
// when present), then dispatches on levtype.
func matchLevel(mars, aux, opts dict.Dict) (Variant, error) {
	if hasAll(mars, "frequency", "direction") {
		return Missing, nil
	}
	if hasAll(mars, "channel", "ident", "instrument") {
		return Missing, nil
	}

	levtype, err := getStringOrThrow(mars, "levtype")
	if err != nil {
		return Missing, err
	}

	param, paramErr := getIntOrThrow(mars, "param")

	switch levtype {
	case "sfc":
		if paramErr != nil {
			return Missing, paramErr
		}
		if matchAny(param, hAboveGround10mParams) {
			return LevelHeightAboveGroundAt10M, nil
		}
		if matchAny(param, hAboveGround2mParams) {
			return LevelHeightAboveGroundAt2M, nil
		}
		if matchAny(param, entireAtmosphereParams) {
			return LevelEntireAtmosphere, nil
		}
		// Params beyond the tables above are plain surface fields: levtype
		// alone fixes the surface kind, the tables only refine it for the
		// params that encode a more specific vertical anchor.
		return LevelSurface, nil
	case "hl":
		return LevelHeightAboveGround, nil
	case "ml":
		return LevelHybrid, nil
	case "pl":
		if paramErr != nil {
			return Missing, paramErr
		}
		levelist, err := getIntOrThrow(mars, "levelist")
		if err != nil {
			return Missing, err
		}
		if levelist >= 100 {
			return LevelIsobaricInHpa, nil
		}
		return LevelIsobaricInPa, nil
	case "pt":
		return LevelTheta, nil
	case "pv":
		return LevelPotentialVorticity, nil
	case "sol":
		return LevelSoilLayer, nil
	case "al":
		return LevelAbstractSingleLevel, nil
	default:
		return Missing, &mgerr.MatcherError{
			Concept: "level",
			Levtype: levtype,
			Err:     fmt.Errorf("unrecognized levtype %q", levtype),
		}
	}
}
