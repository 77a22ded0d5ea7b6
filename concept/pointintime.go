package concept

import "github.com/ecmwf/metkit-sub000/dict"

// PointInTime has a single variant, Default. Any request carrying a param
// but no statistical processing is instantaneous;
// accumulated/statistical fields fall through to Missing and are picked up
// by the Statistics concept instead.
const (
	PointInTimeDefault Variant = iota
	nPointInTimeVariants
)

var pointInTimeVariantNames = []string{
	PointInTimeDefault: "Default",
}

func init() {
	register(PointInTime, pointInTimeVariantNames, matchPointInTime)
}

func matchPointInTime(mars, aux, opts dict.Dict) (Variant, error) {
	if _, ok := mars.GetInt("param"); !ok {
		return Missing, nil
	}
	if stat, err := matchStatistics(mars, aux, opts); err == nil && stat != Missing {
		return Missing, nil
	}
	return PointInTimeDefault, nil
}
