package concept

import "github.com/ecmwf/metkit-sub000/dict"

// Statistics variants. Local indices stay dense for the registry's sake;
// the non-contiguous Code Table 4.10 values live in
// TypeOfStatisticalProcessing instead.
const (
	StatAverage Variant = iota
	StatAccumulation
	StatMaximum
	StatMinimum
	StatStandardDeviation
	StatSummation
	StatSeverity
	StatMode
	nStatVariants
)

var statVariantNames = []string{
	StatAverage:           "Average",
	StatAccumulation:      "Accumulation",
	StatMaximum:           "Maximum",
	StatMinimum:           "Minimum",
	StatStandardDeviation: "StandardDeviation",
	StatSummation:         "Summation",
	StatSeverity:          "Severity",
	StatMode:              "Mode",
}

// TypeOfStatisticalProcessing maps a local statistics variant onto its
// GRIB2 Code Table 4.10 value; Severity/Mode sit in the local-use range
// at 100/101.
func TypeOfStatisticalProcessing(local Variant) (uint8, bool) {
	switch local {
	case StatAverage:
		return 0, true
	case StatAccumulation:
		return 1, true
	case StatMaximum:
		return 2, true
	case StatMinimum:
		return 3, true
	case StatStandardDeviation:
		return 6, true
	case StatSummation:
		return 11, true
	case StatSeverity:
		return 100, true
	case StatMode:
		return 101, true
	default:
		return 0, false
	}
}

func init() {
	register(Statistics, statVariantNames, matchStatistics)
}

var accumulationParams = []int64{228, 205, 182, 169, 175, 176, 177, 179, 228228}
var averageParams = []int64{165, 166, 167, 168, 235}
var maximumParams = []int64{201}
var minimumParams = []int64{202}
var severityParams = []int64{260048}

// matchStatistics honors an explicit "statistic" MARS key, else infers from
// param; returns Missing rather than an error when unmatched, since most
// requests carry no statistical processing at all.
func matchStatistics(mars, aux, opts dict.Dict) (Variant, error) {
	if stat, ok := mars.GetString("statistic"); ok {
		switch stat {
		case "average":
			return StatAverage, nil
		case "accumulation":
			return StatAccumulation, nil
		case "maximum":
			return StatMaximum, nil
		case "minimum":
			return StatMinimum, nil
		case "stdev":
			return StatStandardDeviation, nil
		}
	}

	// Without an explicit "statistic" key, only infer statistical processing
	// from the param-id tables when "timespan" also marks the request as
	// processed over an interval: several param ids (e.g. 167) denote both
	// an instantaneous and a time-averaged field, and the bare param table
	// alone can't disambiguate them.
	if !mars.Has("timespan") {
		return Missing, nil
	}

	param, ok := mars.GetInt("param")
	if !ok {
		return Missing, nil
	}
	switch {
	case matchAny(param, severityParams):
		return StatSeverity, nil
	case matchAny(param, accumulationParams):
		return StatAccumulation, nil
	case matchAny(param, maximumParams):
		return StatMaximum, nil
	case matchAny(param, minimumParams):
		return StatMinimum, nil
	case matchAny(param, averageParams):
		return StatAverage, nil
	}
	return Missing, nil
}
