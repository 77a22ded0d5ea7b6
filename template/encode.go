// Package template serializes the per-section GRIB2 template payloads the
// section package's writers embed: each EncodeXTemplate emits the octet
// layout its template number defines, ready for section.EncodeSectionN.
// Field coverage is bounded to the templates the encoding pipeline actually
// produces: regular lat/lon, (reduced/regular) Gaussian, and spherical
// harmonic grids, the product templates named in the section 4 recipe
// table, and simple/CCSDS data representation.
package template

import (
	"bytes"
	"encoding/binary"
	"math"
)

// LatLonGridFields is the write-side payload for Grid Template 3.0.
type LatLonGridFields struct {
	ShapeOfEarth   uint8
	Ni, Nj         uint32
	La1, Lo1       int32 // microdegrees
	La2, Lo2       int32
	Di, Dj         uint32 // microdegrees
	ScanningMode   uint8
	ResolutionFlag uint8
}

func EncodeLatLonGridTemplate(f LatLonGridFields) []byte {
	buf := &bytes.Buffer{}
	buf.WriteByte(f.ShapeOfEarth)
	buf.WriteByte(0) // scale factor of radius of spherical earth
	binary.Write(buf, binary.BigEndian, uint32(0))
	buf.WriteByte(0) // scale factor of earth major axis
	binary.Write(buf, binary.BigEndian, uint32(0))
	buf.WriteByte(0) // scale factor of earth minor axis
	binary.Write(buf, binary.BigEndian, uint32(0))
	binary.Write(buf, binary.BigEndian, f.Ni)
	binary.Write(buf, binary.BigEndian, f.Nj)
	binary.Write(buf, binary.BigEndian, uint32(0)) // basic angle
	binary.Write(buf, binary.BigEndian, uint32(0)) // subdivisions
	binary.Write(buf, binary.BigEndian, f.La1)
	binary.Write(buf, binary.BigEndian, f.Lo1)
	buf.WriteByte(f.ResolutionFlag)
	binary.Write(buf, binary.BigEndian, f.La2)
	binary.Write(buf, binary.BigEndian, f.Lo2)
	binary.Write(buf, binary.BigEndian, f.Di)
	binary.Write(buf, binary.BigEndian, f.Dj)
	buf.WriteByte(f.ScanningMode)
	return buf.Bytes()
}

// GaussianGridFields is the write-side payload for Grid Template 3.40
// (regular or reduced Gaussian, disambiguated by N and the absence/
// presence of a section 3 optional list of points per parallel).
type GaussianGridFields struct {
	ShapeOfEarth   uint8
	Ni, Nj         uint32
	La1, Lo1       int32
	La2, Lo2       int32
	N              uint32 // parallels between pole and equator
	ScanningMode   uint8
	ResolutionFlag uint8
}

func EncodeGaussianGridTemplate(f GaussianGridFields) []byte {
	buf := &bytes.Buffer{}
	buf.WriteByte(f.ShapeOfEarth)
	buf.WriteByte(0)
	binary.Write(buf, binary.BigEndian, uint32(0))
	buf.WriteByte(0)
	binary.Write(buf, binary.BigEndian, uint32(0))
	buf.WriteByte(0)
	binary.Write(buf, binary.BigEndian, uint32(0))
	binary.Write(buf, binary.BigEndian, f.Ni)
	binary.Write(buf, binary.BigEndian, f.Nj)
	binary.Write(buf, binary.BigEndian, uint32(0))
	binary.Write(buf, binary.BigEndian, uint32(0))
	binary.Write(buf, binary.BigEndian, f.La1)
	binary.Write(buf, binary.BigEndian, f.Lo1)
	buf.WriteByte(f.ResolutionFlag)
	binary.Write(buf, binary.BigEndian, f.La2)
	binary.Write(buf, binary.BigEndian, f.Lo2)
	binary.Write(buf, binary.BigEndian, uint32(0)) // Di not applicable to Gaussian
	binary.Write(buf, binary.BigEndian, f.N)
	buf.WriteByte(f.ScanningMode)
	return buf.Bytes()
}

// ProductFields carries the fields any of the supported product
// definition templates (0,1,2,8,11,12,40,42,99) draws from; not every
// field applies to every template, each EncodeProductTemplateN picks the
// subset it needs.
type ProductFields struct {
	ParameterCategory, ParameterNumber     uint8
	ConstituentType                        uint16
	TypeOfGeneratingProcess                uint8
	GeneratingProcessIdentifier            uint8
	ForecastTime                           uint32
	TypeOfFirstFixedSurface                uint8
	ScaleFactorOfFirstFixedSurface         int8
	ScaledValueOfFirstFixedSurface         int32
	TypeOfSecondFixedSurface               uint8
	ScaleFactorOfSecondFixedSurface        int8
	ScaledValueOfSecondFixedSurface        int32
	TypeOfStatisticalProcessing            uint8
	LengthOfTimeRange                      uint32
	PerturbationNumber                     uint8
	NumberOfForecastsInEnsemble            uint8
	ProbabilityType                        uint8
	PercentileValue                        uint8
	TotalNumberOfPercentiles               uint8
	NumberOfFrequencies, NumberOfDirections uint16
}

// signMagnitude8/signMagnitude16 encode negative values the way GRIB2
// stores signed octets: high bit set, magnitude in the remaining bits.
func signMagnitude8(v int8) uint8 {
	if v < 0 {
		return 0x80 | uint8(-v)
	}
	return uint8(v)
}

func signMagnitude16(v int16) uint16 {
	if v < 0 {
		return 0x8000 | uint16(-v)
	}
	return uint16(v)
}

func encodeProductCommon(buf *bytes.Buffer, f ProductFields) {
	buf.WriteByte(f.ParameterCategory)
	buf.WriteByte(f.ParameterNumber)
	buf.WriteByte(f.TypeOfGeneratingProcess)
	buf.WriteByte(0) // background process
	buf.WriteByte(f.GeneratingProcessIdentifier)
	binary.Write(buf, binary.BigEndian, uint16(0)) // hours of data cutoff
	buf.WriteByte(0)                               // minutes of data cutoff
	buf.WriteByte(1)                               // indicator of unit of time range: hour
	binary.Write(buf, binary.BigEndian, f.ForecastTime)
	buf.WriteByte(f.TypeOfFirstFixedSurface)
	buf.WriteByte(signMagnitude8(f.ScaleFactorOfFirstFixedSurface))
	binary.Write(buf, binary.BigEndian, uint32(f.ScaledValueOfFirstFixedSurface))
	buf.WriteByte(f.TypeOfSecondFixedSurface)
	buf.WriteByte(signMagnitude8(f.ScaleFactorOfSecondFixedSurface))
	binary.Write(buf, binary.BigEndian, uint32(f.ScaledValueOfSecondFixedSurface))
}

// EncodeProductTemplate0 serializes PDT 4.0: point-in-time field at a level.
func EncodeProductTemplate0(f ProductFields) []byte {
	buf := &bytes.Buffer{}
	encodeProductCommon(buf, f)
	return buf.Bytes()
}

// EncodeProductTemplate1 serializes PDT 4.1: individual ensemble member.
func EncodeProductTemplate1(f ProductFields) []byte {
	buf := &bytes.Buffer{}
	encodeProductCommon(buf, f)
	buf.WriteByte(3) // type of ensemble forecast: perturbed
	buf.WriteByte(f.PerturbationNumber)
	buf.WriteByte(f.NumberOfForecastsInEnsemble)
	return buf.Bytes()
}

// EncodeProductTemplate2 serializes PDT 4.2: derived ensemble product.
func EncodeProductTemplate2(f ProductFields) []byte {
	buf := &bytes.Buffer{}
	encodeProductCommon(buf, f)
	if f.ProbabilityType != 0 {
		buf.WriteByte(1) // probability of event above upper limit
	} else {
		buf.WriteByte(0) // unweighted mean
	}
	buf.WriteByte(f.NumberOfForecastsInEnsemble)
	return buf.Bytes()
}

func encodeTimeRangeTrailer(buf *bytes.Buffer, f ProductFields) {
	binary.Write(buf, binary.BigEndian, uint16(0)) // year of end of overall time interval (placeholder)
	buf.WriteByte(0)
	buf.WriteByte(0)
	buf.WriteByte(0)
	buf.WriteByte(0)
	buf.WriteByte(0)
	buf.WriteByte(1) // number of time range specifications
	binary.Write(buf, binary.BigEndian, uint32(0))
	buf.WriteByte(f.TypeOfStatisticalProcessing)
	buf.WriteByte(2) // type of time increment: successive times processed have same start time of forecast
	buf.WriteByte(1) // indicator of unit of time for time range
	binary.Write(buf, binary.BigEndian, f.LengthOfTimeRange)
	buf.WriteByte(1) // indicator of unit of time for increment
	binary.Write(buf, binary.BigEndian, uint32(0))
}

// EncodeProductTemplate8 serializes PDT 4.8: statistically processed field.
func EncodeProductTemplate8(f ProductFields) []byte {
	buf := &bytes.Buffer{}
	encodeProductCommon(buf, f)
	encodeTimeRangeTrailer(buf, f)
	return buf.Bytes()
}

// EncodeProductTemplate11 serializes PDT 4.11: ensemble member, statistically processed.
func EncodeProductTemplate11(f ProductFields) []byte {
	buf := &bytes.Buffer{}
	encodeProductCommon(buf, f)
	buf.WriteByte(3)
	buf.WriteByte(f.PerturbationNumber)
	buf.WriteByte(f.NumberOfForecastsInEnsemble)
	encodeTimeRangeTrailer(buf, f)
	return buf.Bytes()
}

// EncodeProductTemplate12 serializes PDT 4.12: derived ensemble, statistically processed.
func EncodeProductTemplate12(f ProductFields) []byte {
	buf := &bytes.Buffer{}
	encodeProductCommon(buf, f)
	buf.WriteByte(0)
	buf.WriteByte(f.NumberOfForecastsInEnsemble)
	encodeTimeRangeTrailer(buf, f)
	return buf.Bytes()
}

// encodeChemicalCommon is encodeProductCommon with the atmospheric chemical
// constituent type inserted after the parameter number, the layout PDT 4.40
// and 4.42 share.
func encodeChemicalCommon(buf *bytes.Buffer, f ProductFields) {
	buf.WriteByte(f.ParameterCategory)
	buf.WriteByte(f.ParameterNumber)
	binary.Write(buf, binary.BigEndian, f.ConstituentType)
	buf.WriteByte(f.TypeOfGeneratingProcess)
	buf.WriteByte(0) // background process
	buf.WriteByte(f.GeneratingProcessIdentifier)
	binary.Write(buf, binary.BigEndian, uint16(0)) // hours of data cutoff
	buf.WriteByte(0)                               // minutes of data cutoff
	buf.WriteByte(1)                               // indicator of unit of time range: hour
	binary.Write(buf, binary.BigEndian, f.ForecastTime)
	buf.WriteByte(f.TypeOfFirstFixedSurface)
	buf.WriteByte(signMagnitude8(f.ScaleFactorOfFirstFixedSurface))
	binary.Write(buf, binary.BigEndian, uint32(f.ScaledValueOfFirstFixedSurface))
	buf.WriteByte(f.TypeOfSecondFixedSurface)
	buf.WriteByte(signMagnitude8(f.ScaleFactorOfSecondFixedSurface))
	binary.Write(buf, binary.BigEndian, uint32(f.ScaledValueOfSecondFixedSurface))
}

// EncodeProductTemplate40 serializes PDT 4.40: atmospheric chemical
// constituent at a point in time.
func EncodeProductTemplate40(f ProductFields) []byte {
	buf := &bytes.Buffer{}
	encodeChemicalCommon(buf, f)
	return buf.Bytes()
}

// EncodeProductTemplate42 serializes PDT 4.42: atmospheric chemical
// constituent, statistically processed.
func EncodeProductTemplate42(f ProductFields) []byte {
	buf := &bytes.Buffer{}
	encodeChemicalCommon(buf, f)
	encodeTimeRangeTrailer(buf, f)
	return buf.Bytes()
}

// EncodeProductTemplate99 serializes PDT 4.99: ocean wave spectra.
func EncodeProductTemplate99(f ProductFields) []byte {
	buf := &bytes.Buffer{}
	encodeProductCommon(buf, f)
	binary.Write(buf, binary.BigEndian, f.NumberOfFrequencies)
	binary.Write(buf, binary.BigEndian, f.NumberOfDirections)
	return buf.Bytes()
}

// SphericalHarmonicsFields is the write-side payload for Grid Template
// 3.50: pentagonal resolution parameters plus the spectral representation
// type and mode.
type SphericalHarmonicsFields struct {
	J, K, M            uint32
	RepresentationType uint8
	RepresentationMode uint8
}

func EncodeSphericalHarmonicsTemplate(f SphericalHarmonicsFields) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, f.J)
	binary.Write(buf, binary.BigEndian, f.K)
	binary.Write(buf, binary.BigEndian, f.M)
	buf.WriteByte(f.RepresentationType)
	buf.WriteByte(f.RepresentationMode)
	return buf.Bytes()
}

// SimplePackingFields is the write-side payload for Data Representation
// Template 5.0.
type SimplePackingFields struct {
	ReferenceValue          float32
	BinaryScaleFactor       int16
	DecimalScaleFactor      int16
	BitsPerValue            uint8
	TypeOfOriginalFieldValues uint8
}

func EncodeSimplePackingTemplate(f SimplePackingFields) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, math.Float32bits(f.ReferenceValue))
	binary.Write(buf, binary.BigEndian, signMagnitude16(f.BinaryScaleFactor))
	binary.Write(buf, binary.BigEndian, signMagnitude16(f.DecimalScaleFactor))
	buf.WriteByte(f.BitsPerValue)
	buf.WriteByte(f.TypeOfOriginalFieldValues)
	return buf.Bytes()
}

// CCSDSPackingFields is the write-side payload for Data Representation
// Template 5.42, layered on top of simple packing's common header plus the
// CCSDS AEC compression knobs.
type CCSDSPackingFields struct {
	SimplePackingFields
	CCSDSFlags       uint8
	CCSDSBlockSize   uint8
	CCSDSRSI         uint16
}

func EncodeCCSDSPackingTemplate(f CCSDSPackingFields) []byte {
	buf := bytes.NewBuffer(EncodeSimplePackingTemplate(f.SimplePackingFields))
	buf.WriteByte(f.CCSDSFlags)
	buf.WriteByte(f.CCSDSBlockSize)
	binary.Write(buf, binary.BigEndian, f.CCSDSRSI)
	return buf.Bytes()
}
