package plan

import "github.com/ecmwf/metkit-sub000/concept"

// callbackFor looks up the registered writer for a concept. Concepts with
// no callback (Nil, and any concept whose contribution is purely
// structural — i.e. only affects template selection, not header content)
// return ok=false and are skipped by Build.
func callbackFor(c concept.ID) (Callback, bool) {
	cb, ok := callbacks[c]
	return cb, ok
}

var callbacks = map[concept.ID]Callback{
	concept.Origin:            writeOrigin,
	concept.Tables:            writeTables,
	concept.ReferenceTime:     writeReferenceTime,
	concept.DataType:          writeDataType,
	concept.Destine:           writeDestine,
	concept.Representation:    writeRepresentation,
	concept.ShapeOfTheEarth:   writeShapeOfTheEarth,
	concept.GeneratingProcess: writeGeneratingProcess,
	concept.PointInTime:       writePointInTime,
	concept.Level:             writeLevel,
	concept.Param:             writeParam,
	concept.Statistics:        writeStatistics,
	concept.Composition:       writeComposition,
	concept.Ensemble:          writeEnsemble,
	concept.Derived:           writeDerived,
	concept.Wave:              writeWave,
	concept.Packing:           writePacking,
}
