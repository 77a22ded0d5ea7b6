package concept

import "github.com/ecmwf/metkit-sub000/dict"

// Wave variants: param range [140114,140120) covers wave period
// diagnostics, 140251 is the 2-D spectra parameter itself, which
// additionally requires frequency/direction to be present on the request.
const (
	WavePeriod Variant = iota
	WaveSpectra
	nWaveVariants
)

var waveVariantNames = []string{
	WavePeriod:  "Period",
	WaveSpectra: "Spectra",
}

func init() {
	register(Wave, waveVariantNames, matchWave)
}

func matchWave(mars, aux, opts dict.Dict) (Variant, error) {
	param, ok := mars.GetInt("param")
	if !ok {
		return Missing, nil
	}
	if matchAny(param, nil, rng(140114, 140120)) {
		return WavePeriod, nil
	}
	if param == 140251 && hasAll(mars, "frequency", "direction") {
		return WaveSpectra, nil
	}
	return Missing, nil
}
