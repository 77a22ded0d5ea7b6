package plan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ecmwf/metkit-sub000/concept"
	"github.com/ecmwf/metkit-sub000/dict"
	"github.com/ecmwf/metkit-sub000/gribhandle"
)

// Each writer below corresponds to one concept's contribution to the GRIB
// handle under construction. They read from mars/par/opts and Set GRIB key
// names onto handle; gribhandle.Handle.Encode later reads these same keys
// back out to assemble section bytes. Keys follow ecCodes naming
// conventions so the mapping to real GRIB2 octets stays obvious.

func writeOrigin(mars, par, opts, h dict.Dict) error {
	centre := par.GetIntOpt("centre", 98) // 98 = ECMWF
	subCentre := par.GetIntOpt("subCentre", 0)
	if err := h.Set("centre", dict.Long(centre)); err != nil {
		return err
	}
	return h.Set("subCentre", dict.Long(subCentre))
}

func writeTables(mars, par, opts, h dict.Dict) error {
	if err := h.Set("tablesVersion", dict.Long(par.GetIntOpt("tablesVersion", 32))); err != nil {
		return err
	}
	return h.Set("localTablesVersion", dict.Long(par.GetIntOpt("localTablesVersion", 1)))
}

func writeReferenceTime(mars, par, opts, h dict.Dict) error {
	date := mars.GetStringOpt("date", "")
	year, month, day := splitDate(date)
	if err := h.Set("year", dict.Long(year)); err != nil {
		return err
	}
	if err := h.Set("month", dict.Long(month)); err != nil {
		return err
	}
	if err := h.Set("day", dict.Long(day)); err != nil {
		return err
	}

	hour, minute := splitTime(mars.GetStringOpt("time", "0000"))
	if err := h.Set("hour", dict.Long(hour)); err != nil {
		return err
	}
	if err := h.Set("minute", dict.Long(minute)); err != nil {
		return err
	}
	if err := h.Set("second", dict.Long(0)); err != nil {
		return err
	}

	// dataDate/dataTime are the composite ecCodes spellings of the same
	// octets; kept in sync with the component keys above.
	if err := h.Set("dataDate", dict.Long(year*10000+month*100+day)); err != nil {
		return err
	}
	if err := h.Set("dataTime", dict.Long(hour*100+minute)); err != nil {
		return err
	}

	significance := int64(1) // start of forecast
	if typ, ok := mars.GetString("type"); ok && typ == "an" {
		significance = 0 // analysis
	}
	return h.Set("significanceOfReferenceTime", dict.Long(significance))
}

func splitDate(date string) (year, month, day int64) {
	if len(date) != 8 {
		return 1970, 1, 1
	}
	y, _ := strconv.ParseInt(date[0:4], 10, 64)
	m, _ := strconv.ParseInt(date[4:6], 10, 64)
	d, _ := strconv.ParseInt(date[6:8], 10, 64)
	return y, m, d
}

func splitTime(t string) (hour, minute int64) {
	t = strings.TrimSuffix(t, "00")
	if len(t) == 0 {
		return 0, 0
	}
	if len(t) <= 2 {
		h, _ := strconv.ParseInt(t, 10, 64)
		return h, 0
	}
	h, _ := strconv.ParseInt(t[:len(t)-2], 10, 64)
	m, _ := strconv.ParseInt(t[len(t)-2:], 10, 64)
	return h, m
}

func writeDataType(mars, par, opts, h dict.Dict) error {
	productionStatus := par.GetIntOpt("productionStatusOfProcessedData", 0)
	if err := h.Set("productionStatusOfProcessedData", dict.Long(productionStatus)); err != nil {
		return err
	}

	typ, _ := mars.GetString("type")
	var typeOfProcessedData int64 = 1 // forecast products
	switch typ {
	case "an":
		typeOfProcessedData = 0
	case "cf", "pf":
		typeOfProcessedData = 3 // control/perturbed forecast products
	}
	return h.Set("typeOfProcessedData", dict.Long(typeOfProcessedData))
}

// writeDestine contributes the DestinE payload fields of the local use
// section; setLocalDefinition/localDefinitionNumber themselves are owned by
// the section initializer layer, which derives them from the resolved
// section 2 template number.
func writeDestine(mars, par, opts, h dict.Dict) error {
	activity := mars.GetStringOpt("activity", "")
	experiment := mars.GetStringOpt("experiment", "")
	if err := h.Set("destineActivity", dict.String(activity)); err != nil {
		return err
	}
	return h.Set("destineExperiment", dict.String(experiment))
}

func writeRepresentation(mars, par, opts, h dict.Dict) error {
	grid := mars.GetStringOpt("grid", "")
	switch {
	case mars.Has("truncation"):
		trunc, _ := mars.GetInt("truncation")
		return h.Set("pentagonalResolutionParameterJ", dict.Long(trunc))
	case len(grid) > 0 && (grid[0] == 'N' || grid[0] == 'O'):
		n := parseGaussianN(grid)
		if err := h.Set("N", dict.Long(n)); err != nil {
			return err
		}
		return h.Set("numberOfParallelsBetweenPoleAndEquator", dict.Long(n))
	case len(grid) > 0 && grid[0] == 'F':
		n := parseGaussianN(grid)
		return h.Set("N", dict.Long(n))
	default:
		di, dj := parseLatLonIncrement(grid)
		if err := h.Set("iDirectionIncrement", dict.Double(di)); err != nil {
			return err
		}
		return h.Set("jDirectionIncrement", dict.Double(dj))
	}
}

func parseGaussianN(grid string) int64 {
	digits := strings.TrimLeft(grid, "NOF")
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseLatLonIncrement(grid string) (float64, float64) {
	parts := strings.SplitN(grid, "/", 2)
	if len(parts) != 2 {
		return 1, 1
	}
	di, err1 := strconv.ParseFloat(parts[0], 64)
	dj, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil {
		return 1, 1
	}
	return di, dj
}

func writeShapeOfTheEarth(mars, par, opts, h dict.Dict) error {
	// Shape 6: Earth assumed spherical with radius of 6,371,229.0 m, the
	// default IFS product convention.
	return h.Set("shapeOfTheEarth", dict.Long(6))
}

func writeGeneratingProcess(mars, par, opts, h dict.Dict) error {
	typeOfGeneratingProcess := int64(2) // forecast
	if typ, ok := mars.GetString("type"); ok && typ == "an" {
		typeOfGeneratingProcess = 0
	}
	if err := h.Set("typeOfGeneratingProcess", dict.Long(typeOfGeneratingProcess)); err != nil {
		return err
	}
	return h.Set("generatingProcessIdentifier", dict.Long(par.GetIntOpt("generatingProcessIdentifier", 255)))
}

func writePointInTime(mars, par, opts, h dict.Dict) error {
	step := mars.GetIntOpt("step", 0)
	return h.Set("forecastTime", dict.Long(step))
}

func writeLevel(mars, par, opts, h dict.Dict) error {
	global, err := concept.Match(concept.Level, mars, par, opts)
	if err != nil {
		return err
	}
	levelist := mars.GetIntOpt("levelist", 0)

	// Code Table 4.5 surface type plus the scaled first-surface value; the
	// scale factor expresses pressure levels in Pa regardless of whether
	// MARS spelled them in hPa.
	var surfaceType, scaleFactor, scaledValue int64
	switch concept.LocalOf(concept.Level, global) {
	case concept.LevelSurface:
		surfaceType = 1
	case concept.LevelEntireAtmosphere:
		surfaceType = 10
	case concept.LevelMeanSea:
		surfaceType = 101
	case concept.LevelHeightAboveGround:
		surfaceType, scaledValue = 103, levelist
	case concept.LevelHeightAboveGroundAt10M:
		surfaceType, scaledValue = 103, 10
	case concept.LevelHeightAboveGroundAt2M:
		surfaceType, scaledValue = 103, 2
	case concept.LevelIsobaricInHpa:
		surfaceType, scaleFactor, scaledValue = 100, -2, levelist
	case concept.LevelIsobaricInPa:
		surfaceType, scaledValue = 100, levelist
	case concept.LevelHybrid:
		surfaceType, scaledValue = 105, levelist
	case concept.LevelTheta:
		surfaceType, scaledValue = 107, levelist
	case concept.LevelPotentialVorticity:
		surfaceType, scaledValue = 109, levelist
	case concept.LevelSoilLayer:
		surfaceType, scaledValue = 106, levelist
	default:
		surfaceType = 1
	}

	if err := h.Set("typeOfFirstFixedSurface", dict.Long(surfaceType)); err != nil {
		return err
	}
	if err := h.Set("scaleFactorOfFirstFixedSurface", dict.Long(scaleFactor)); err != nil {
		return err
	}
	if err := h.Set("scaledValueOfFirstFixedSurface", dict.Long(scaledValue)); err != nil {
		return err
	}

	// None of the level kinds this encoder models are layers bounded by two
	// surfaces (levelist names a single point/level, never a [top, bottom]
	// pair), so the second fixed surface is always absent. GRIB2 represents
	// "no second surface" with the explicit missing sentinel on all three
	// keys, not with a zero/default value.
	gh, ok := h.(*gribhandle.Handle)
	if !ok {
		return fmt.Errorf("plan: writeLevel requires a *gribhandle.Handle, got %T", h)
	}
	if err := gh.SetMissing("typeOfSecondFixedSurface"); err != nil {
		return err
	}
	if err := gh.SetMissing("scaleFactorOfSecondFixedSurface"); err != nil {
		return err
	}
	return gh.SetMissing("scaledValueOfSecondFixedSurface")
}

func writeParam(mars, par, opts, h dict.Dict) error {
	param, _ := mars.GetInt("param")
	// MARS paramId convention: category*1000 + number, when below 1000 it
	// is a bare legacy table 2 parameter number.
	category := param / 1000
	number := param % 1000
	if err := h.Set("parameterCategory", dict.Long(category)); err != nil {
		return err
	}
	return h.Set("parameterNumber", dict.Long(number))
}

func writeStatistics(mars, par, opts, h dict.Dict) error {
	global, err := concept.Match(concept.Statistics, mars, par, opts)
	if err != nil {
		return err
	}
	code, ok := concept.TypeOfStatisticalProcessing(concept.LocalOf(concept.Statistics, global))
	if !ok {
		code = 255 // Default / missing, per GRIB2 Code Table 4.10
	}
	if err := h.Set("typeOfStatisticalProcessing", dict.Long(int64(code))); err != nil {
		return err
	}
	lengthInHours := mars.GetIntOpt("timespan", mars.GetIntOpt("step", 0))
	return h.Set("lengthOfTimeRange", dict.Long(lengthInHours))
}

func writeComposition(mars, par, opts, h dict.Dict) error {
	chem := mars.GetIntOpt("chem", 0)
	return h.Set("constituentType", dict.Long(chem))
}

func writeEnsemble(mars, par, opts, h dict.Dict) error {
	number := mars.GetIntOpt("number", 0)
	if err := h.Set("perturbationNumber", dict.Long(number)); err != nil {
		return err
	}
	return h.Set("numberOfForecastsInEnsemble", dict.Long(par.GetIntOpt("numberOfForecastsInEnsemble", 50)))
}

func writeDerived(mars, par, opts, h dict.Dict) error {
	quantile := mars.GetStringOpt("quantile", "")
	if quantile == "probability" {
		return h.Set("probabilityType", dict.Long(1))
	}
	num, den := parseQuantile(quantile)
	if err := h.Set("percentileValue", dict.Long(num)); err != nil {
		return err
	}
	return h.Set("totalNumberOfPercentiles", dict.Long(den))
}

func parseQuantile(q string) (int64, int64) {
	parts := strings.SplitN(q, ":", 2)
	if len(parts) != 2 {
		return 0, 100
	}
	num, err1 := strconv.ParseInt(parts[0], 10, 64)
	den, err2 := strconv.ParseInt(parts[1], 10, 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0, 100
	}
	return num, den
}

func writeWave(mars, par, opts, h dict.Dict) error {
	if mars.Has("frequency") && mars.Has("direction") {
		freq := mars.GetIntOpt("frequency", 0)
		dir := mars.GetIntOpt("direction", 0)
		if err := h.Set("numberOfFrequencies", dict.Long(freq)); err != nil {
			return err
		}
		return h.Set("numberOfDirections", dict.Long(dir))
	}
	return nil
}

func writePacking(mars, par, opts, h dict.Dict) error {
	bitsPerValue := par.GetIntOpt("bitsPerValue", 16)
	if err := h.Set("bitsPerValue", dict.Long(bitsPerValue)); err != nil {
		return err
	}
	return h.Set("binaryScaleFactor", dict.Long(0))
}
