package section

import (
	"bytes"
	"encoding/binary"
)

// This file adds the write-side counterpart to this package's decode
// structs (NewSectionXFromBytes): each EncodeSectionN serializes exactly
// the octet layout documented on the corresponding interface in
// interface.go, so a round trip through NewSectionNFromBytes(EncodeSectionN(...))
// reproduces the fields passed in.

// EncodeSection0 serializes the 16-octet Indicator Section.
func EncodeSection0(discipline uint8, totalLength uint64) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("GRIB")
	buf.Write([]byte{0, 0})
	buf.WriteByte(discipline)
	buf.WriteByte(2)
	binary.Write(buf, binary.BigEndian, totalLength)
	return buf.Bytes()
}

// Section1Fields carries the Identification Section's content fields.
type Section1Fields struct {
	OriginatingCenter, OriginatingSubcenter uint16
	MasterTablesVersion, LocalTablesVersion uint8
	ReferenceTimeSignificance               uint8
	Year                                     uint16
	Month, Day, Hour, Minute, Second         uint8
	ProductionStatus, DataType               uint8
}

func EncodeSection1(f Section1Fields) []byte {
	body := &bytes.Buffer{}
	body.WriteByte(1)
	binary.Write(body, binary.BigEndian, f.OriginatingCenter)
	binary.Write(body, binary.BigEndian, f.OriginatingSubcenter)
	body.WriteByte(f.MasterTablesVersion)
	body.WriteByte(f.LocalTablesVersion)
	body.WriteByte(f.ReferenceTimeSignificance)
	binary.Write(body, binary.BigEndian, f.Year)
	body.WriteByte(f.Month)
	body.WriteByte(f.Day)
	body.WriteByte(f.Hour)
	body.WriteByte(f.Minute)
	body.WriteByte(f.Second)
	body.WriteByte(f.ProductionStatus)
	body.WriteByte(f.DataType)

	length := uint32(4 + body.Len())
	out := &bytes.Buffer{}
	binary.Write(out, binary.BigEndian, length)
	out.Write(body.Bytes())
	return out.Bytes()
}

// EncodeSection2 serializes the Local Use Section; an empty localUse
// produces a bare 5-octet section, which callers typically omit entirely.
func EncodeSection2(localUse []byte) []byte {
	length := uint32(5 + len(localUse))
	out := &bytes.Buffer{}
	binary.Write(out, binary.BigEndian, length)
	out.WriteByte(2)
	out.Write(localUse)
	return out.Bytes()
}

// EncodeSection3 serializes the Grid Definition Section around a
// pre-built template payload (see template.EncodeLatLonGridTemplate /
// EncodeGaussianGridTemplate).
func EncodeSection3(gridDefinitionTemplateNumber uint16, numberOfDataPoints uint32, templateBytes []byte, optionalList []uint32) []byte {
	body := &bytes.Buffer{}
	body.WriteByte(3)
	body.WriteByte(0) // grid definition source: specified in template
	binary.Write(body, binary.BigEndian, numberOfDataPoints)
	body.WriteByte(uint8(len(optionalList) * 4))
	if len(optionalList) > 0 {
		body.WriteByte(0) // points are ordered north to south, west to east
	} else {
		body.WriteByte(0)
	}
	binary.Write(body, binary.BigEndian, gridDefinitionTemplateNumber)
	body.Write(templateBytes)
	for _, v := range optionalList {
		binary.Write(body, binary.BigEndian, v)
	}

	length := uint32(4 + body.Len())
	out := &bytes.Buffer{}
	binary.Write(out, binary.BigEndian, length)
	out.Write(body.Bytes())
	return out.Bytes()
}

// EncodeSection4 serializes the Product Definition Section around a
// pre-built product template payload.
func EncodeSection4(productDefinitionTemplateNumber uint16, templateBytes []byte, coordinateValues []float32) []byte {
	body := &bytes.Buffer{}
	body.WriteByte(4)
	binary.Write(body, binary.BigEndian, uint16(len(coordinateValues)))
	binary.Write(body, binary.BigEndian, productDefinitionTemplateNumber)
	body.Write(templateBytes)
	for _, v := range coordinateValues {
		binary.Write(body, binary.BigEndian, v)
	}

	length := uint32(4 + body.Len())
	out := &bytes.Buffer{}
	binary.Write(out, binary.BigEndian, length)
	out.Write(body.Bytes())
	return out.Bytes()
}

// EncodeSection5 serializes the Data Representation Section around a
// pre-built packing template payload.
func EncodeSection5(numberOfDataPoints uint32, dataRepresentationTemplateNumber uint16, templateBytes []byte) []byte {
	body := &bytes.Buffer{}
	body.WriteByte(5)
	binary.Write(body, binary.BigEndian, numberOfDataPoints)
	binary.Write(body, binary.BigEndian, dataRepresentationTemplateNumber)
	body.Write(templateBytes)

	length := uint32(4 + body.Len())
	out := &bytes.Buffer{}
	binary.Write(out, binary.BigEndian, length)
	out.Write(body.Bytes())
	return out.Bytes()
}

// EncodeSection6 serializes the Bit-map Section. An empty bitMap produces
// the 6-octet form with indicator 255 (bit-map does not apply); otherwise
// indicator 0 is followed by the bitmap octets.
func EncodeSection6(bitMap []byte) []byte {
	body := &bytes.Buffer{}
	body.WriteByte(6)
	if len(bitMap) == 0 {
		body.WriteByte(255) // bit-map does not apply
	} else {
		body.WriteByte(0)
		body.Write(bitMap)
	}

	length := uint32(4 + body.Len())
	out := &bytes.Buffer{}
	binary.Write(out, binary.BigEndian, length)
	out.Write(body.Bytes())
	return out.Bytes()
}

// EncodeSection7 serializes the Data Section around already-packed bytes.
func EncodeSection7(packedData []byte) []byte {
	length := uint32(5 + len(packedData))
	out := &bytes.Buffer{}
	binary.Write(out, binary.BigEndian, length)
	out.WriteByte(7)
	out.Write(packedData)
	return out.Bytes()
}

// EncodeSection8 serializes the 4-octet End Section.
func EncodeSection8() []byte {
	return []byte("7777")
}
