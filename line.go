package sharedstreets

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Line is the normalized form of the polymorphic geometry input: an ordered
// lon/lat sequence plus optional property data used for road class and form
// of way extraction. All builders consume this single shape.
type Line struct {
	Coordinates orb.LineString
	Properties  map[string]interface{}
}

// LineFromCoords wraps a raw [lon, lat] pair sequence
func LineFromCoords(coords [][]float64) *Line {
	line := make(orb.LineString, 0, len(coords))
	for _, pair := range coords {
		line = append(line, orb.Point{pair[0], pair[1]})
	}
	return &Line{Coordinates: line}
}

// LineFromLonLats wraps a flattened alternating lon/lat sequence
func LineFromLonLats(lonlats []float64) *Line {
	return LineFromCoords(LonLatsToCoords(lonlats))
}

// LineFromGeoJSON extracts a Line from a GeoJSON LineString feature, keeping
// the feature properties for road class / form of way lookups
func LineFromGeoJSON(feature *geojson.Feature) (*Line, error) {
	if feature == nil || feature.Geometry == nil {
		return nil, errors.Wrap(ErrInvalidGeometry, "Can't extract line from GeoJSON feature")
	}
	if !feature.Geometry.IsLineString() {
		return nil, errors.Wrapf(ErrInvalidGeometry, "Expected LineString geometry, got '%s'", feature.Geometry.Type)
	}
	line := LineFromCoords(feature.Geometry.LineString)
	line.Properties = feature.Properties
	return line, nil
}

// PointFromGeoJSON extracts a point from a GeoJSON Point feature
func PointFromGeoJSON(feature *geojson.Feature) (orb.Point, error) {
	if feature == nil || feature.Geometry == nil {
		return orb.Point{}, errors.Wrap(ErrInvalidGeometry, "Can't extract point from GeoJSON feature")
	}
	if !feature.Geometry.IsPoint() {
		return orb.Point{}, errors.Wrapf(ErrInvalidGeometry, "Expected Point geometry, got '%s'", feature.Geometry.Type)
	}
	return orb.Point{feature.Geometry.Point[0], feature.Geometry.Point[1]}, nil
}

// LonLatsToCoords converts a flattened alternating lon/lat sequence to [lon,
// lat] pairs. A dangling value on odd-length input is ignored.
func LonLatsToCoords(lonlats []float64) [][]float64 {
	coords := make([][]float64, 0, len(lonlats)/2)
	for i := 0; i+1 < len(lonlats); i += 2 {
		coords = append(coords, []float64{lonlats[i], lonlats[i+1]})
	}
	return coords
}

// CoordsToLonLats flattens [lon, lat] pairs into an alternating sequence
func CoordsToLonLats(coords [][]float64) []float64 {
	lonlats := make([]float64, 0, 2*len(coords))
	for _, pair := range coords {
		lonlats = append(lonlats, pair[0], pair[1])
	}
	return lonlats
}

// lineToLonLats flattens an orb line into the alternating lon/lat storage form
func lineToLonLats(line orb.LineString) []float64 {
	lonlats := make([]float64, 0, 2*len(line))
	for _, pt := range line {
		lonlats = append(lonlats, pt.Lon(), pt.Lat())
	}
	return lonlats
}
