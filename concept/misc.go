package concept

import "github.com/ecmwf/metkit-sub000/dict"

// The concepts in this file each own a small, mostly binary variant space
// and a short matcher; they are grouped together because none needs the
// literal param-range tables that level/statistics/wave do. Every matcher
// follows the same shape: inspect a handful of MARS/aux keys, return
// Missing when the concept does not apply.

// Param carries the MARS "param" value through to Section 4's
// parameterCategory (param/1000) and parameterNumber (param%1000) fields;
// it has one variant because every request with a
// param key classifies identically, the value itself is read directly out
// of the MARS dict by the encoder rather than discriminated here.
const (
	ParamDefault Variant = iota
	nParamVariants
)

func init() {
	register(Param, []string{ParamDefault: "Default"}, func(mars, aux, opts dict.Dict) (Variant, error) {
		if mars.Has("param") {
			return ParamDefault, nil
		}
		return Missing, nil
	})
}

// GeneratingProcess selects between deterministic and ensemble generating
// process descriptions; every request has one.
const (
	GenProcDeterministic Variant = iota
	GenProcEnsemble
	nGenProcVariants
)

func init() {
	register(GeneratingProcess, []string{
		GenProcDeterministic: "Deterministic",
		GenProcEnsemble:      "Ensemble",
	}, func(mars, aux, opts dict.Dict) (Variant, error) {
		if mars.Has("number") {
			return GenProcEnsemble, nil
		}
		return GenProcDeterministic, nil
	})
}

// Ensemble is Missing for deterministic requests and resolves to a specific
// perturbation kind when MARS carries ensemble keys.
const (
	EnsembleDefault Variant = iota
	EnsemblePerturbedParameters
	nEnsembleVariants
)

func init() {
	register(Ensemble, []string{
		EnsembleDefault:             "Default",
		EnsemblePerturbedParameters: "PerturbedParameters",
	}, func(mars, aux, opts dict.Dict) (Variant, error) {
		if !mars.Has("number") {
			return Missing, nil
		}
		if typ, ok := mars.GetString("type"); ok && (typ == "pf" || typ == "cf") {
			return EnsemblePerturbedParameters, nil
		}
		return EnsembleDefault, nil
	})
}

// Packing selects the data representation family; defaults to simple
// packing unless options request bits-per-value compression.
const (
	PackingSimple Variant = iota
	PackingCCSDS
	nPackingVariants
)

func init() {
	register(Packing, []string{
		PackingSimple: "Simple",
		PackingCCSDS:  "CCSDS",
	}, func(mars, aux, opts dict.Dict) (Variant, error) {
		if opts.GetBoolOpt("enableBitsPerValueCompression", false) {
			return PackingCCSDS, nil
		}
		return PackingSimple, nil
	})
}

// Composition flags atmospheric-composition (chemical constituent) fields,
// which select the chemistry product definition templates; the MARS "chem"
// key carries the constituent id.
const (
	CompositionChemical Variant = iota
	nCompositionVariants
)

func init() {
	register(Composition, []string{CompositionChemical: "Chemical"},
		func(mars, aux, opts dict.Dict) (Variant, error) {
			if mars.Has("chem") {
				return CompositionChemical, nil
			}
			return Missing, nil
		})
}

// Origin carries the originating centre/sub-centre; always active.
const (
	OriginDefault Variant = iota
	nOriginVariants
)

func init() {
	register(Origin, []string{OriginDefault: "Default"},
		func(mars, aux, opts dict.Dict) (Variant, error) {
			return OriginDefault, nil
		})
}

// ReferenceTime is always active: every message has a reference date/time.
const (
	ReferenceTimeDefault Variant = iota
	nReferenceTimeVariants
)

func init() {
	register(ReferenceTime, []string{ReferenceTimeDefault: "Default"},
		func(mars, aux, opts dict.Dict) (Variant, error) {
			return ReferenceTimeDefault, nil
		})
}

// DataType distinguishes forecast, analysis, and control-forecast data
// types, mirroring MARS "type".
const (
	DataTypeForecast Variant = iota
	DataTypeAnalysis
	DataTypeControlForecast
	nDataTypeVariants
)

func init() {
	register(DataType, []string{
		DataTypeForecast:        "Forecast",
		DataTypeAnalysis:        "Analysis",
		DataTypeControlForecast: "ControlForecast",
	}, func(mars, aux, opts dict.Dict) (Variant, error) {
		typ, ok := mars.GetString("type")
		if !ok {
			return DataTypeForecast, nil
		}
		switch typ {
		case "an":
			return DataTypeAnalysis, nil
		case "cf":
			return DataTypeControlForecast, nil
		default:
			return DataTypeForecast, nil
		}
	})
}

// Tables selects the GRIB master/local table version pairing; a single
// variant covers the current table set used throughout the scenarios.
const (
	TablesCurrent Variant = iota
	nTablesVariants
)

func init() {
	register(Tables, []string{TablesCurrent: "Current"},
		func(mars, aux, opts dict.Dict) (Variant, error) {
			return TablesCurrent, nil
		})
}

// Mars marks that the request came through the MARS language at all; every
// request handled by this encoder does, so it is always Default.
const (
	MarsDefault Variant = iota
	nMarsVariants
)

func init() {
	register(Mars, []string{MarsDefault: "Default"},
		func(mars, aux, opts dict.Dict) (Variant, error) {
			return MarsDefault, nil
		})
}

// Nil is a reserved placeholder slot with no variants; it never contributes
// to any recipe and always resolves to Missing.
const nNilVariants = 0

func init() {
	register(Nil, nil, func(mars, aux, opts dict.Dict) (Variant, error) {
		return Missing, nil
	})
}

// LongRange flags seasonal/long-range forecast streams.
const (
	LongRangeDefault Variant = iota
	nLongRangeVariants
)

func init() {
	register(LongRange, []string{LongRangeDefault: "Default"},
		func(mars, aux, opts dict.Dict) (Variant, error) {
			stream, ok := mars.GetString("stream")
			if ok && (stream == "seas" || stream == "mnfc" || stream == "mnfh") {
				return LongRangeDefault, nil
			}
			return Missing, nil
		})
}

// Satellite flags satellite-channel observations.
const (
	SatelliteDefault Variant = iota
	nSatelliteVariants
)

func init() {
	register(Satellite, []string{SatelliteDefault: "Default"},
		func(mars, aux, opts dict.Dict) (Variant, error) {
			if hasAll(mars, "channel", "ident", "instrument") {
				return SatelliteDefault, nil
			}
			return Missing, nil
		})
}

// Analysis flags requests that are themselves analyses rather than
// forecasts, a distinct axis from DataType used by reference-time
// significance selection.
const (
	AnalysisDefault Variant = iota
	nAnalysisVariants
)

func init() {
	register(Analysis, []string{AnalysisDefault: "Default"},
		func(mars, aux, opts dict.Dict) (Variant, error) {
			typ, ok := mars.GetString("type")
			if ok && typ == "an" {
				return AnalysisDefault, nil
			}
			return Missing, nil
		})
}

// Destine classifies Destination Earth products by data theme; each theme
// carries its own local-use section conventions, so the exact variant (not
// mere presence) selects the section 2 template.
const (
	DestineClimateDT Variant = iota
	DestineExtremesDT
	DestineOnDemandExtremesDT
	nDestineVariants
)

func init() {
	register(Destine, []string{
		DestineClimateDT:          "ClimateDT",
		DestineExtremesDT:         "ExtremesDT",
		DestineOnDemandExtremesDT: "OnDemandExtremesDT",
	}, func(mars, aux, opts dict.Dict) (Variant, error) {
		dataset, ok := mars.GetString("dataset")
		if !ok {
			return Missing, nil
		}
		switch dataset {
		case "climate-dt":
			return DestineClimateDT, nil
		case "extremes-dt":
			return DestineExtremesDT, nil
		case "on-demand-extremes-dt":
			return DestineOnDemandExtremesDT, nil
		default:
			return Missing, nil
		}
	})
}

// ShapeOfTheEarth selects the Earth-shape code table 3.2 entry; defaults to
// the WGS84-equivalent spherical shape used throughout IFS output.
const (
	ShapeSphericalDefault Variant = iota
	nShapeVariants
)

func init() {
	register(ShapeOfTheEarth, []string{ShapeSphericalDefault: "SphericalDefault"},
		func(mars, aux, opts dict.Dict) (Variant, error) {
			return ShapeSphericalDefault, nil
		})
}

// Derived flags fields computed from other fields (e.g. probabilities,
// percentiles) rather than directly forecast; Missing for ordinary fields.
const (
	DerivedProbability Variant = iota
	DerivedPercentile
	nDerivedVariants
)

func init() {
	register(Derived, []string{
		DerivedProbability: "Probability",
		DerivedPercentile:  "Percentile",
	}, func(mars, aux, opts dict.Dict) (Variant, error) {
		quantile, hasQuantile := mars.GetString("quantile")
		if !hasQuantile {
			return Missing, nil
		}
		if quantile == "probability" {
			return DerivedProbability, nil
		}
		return DerivedPercentile, nil
	})
}
