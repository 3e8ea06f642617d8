package sharedstreets

import (
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

func TestLonLatsCoordsRoundTrip(t *testing.T) {
	lonlats := []float64{110.0, 45.0, 115.0, 50.0, 120.0, 55.0}
	coords := LonLatsToCoords(lonlats)
	if len(coords) != 3 {
		t.Errorf("Flattened sequence of 6 values must produce 3 pairs, but got %d", len(coords))
		return
	}
	back := CoordsToLonLats(coords)
	if len(back) != len(lonlats) {
		t.Errorf("Round-trip must keep %d values, but got %d", len(lonlats), len(back))
		return
	}
	for i := range lonlats {
		if back[i] != lonlats[i] {
			t.Errorf("Round-trip value %d must be %f, but got %f", i, lonlats[i], back[i])
		}
	}
}

func TestLonLatsToCoordsOddLength(t *testing.T) {
	coords := LonLatsToCoords([]float64{110.0, 45.0, 115.0})
	if len(coords) != 1 {
		t.Errorf("Dangling value must be ignored, expected 1 pair but got %d", len(coords))
	}
}

func TestLineFromCoords(t *testing.T) {
	line := LineFromCoords([][]float64{{110.0, 45.0}, {115.0, 50.0}})
	correct := orb.LineString{{110.0, 45.0}, {115.0, 50.0}}
	if len(line.Coordinates) != len(correct) {
		t.Errorf("Line must have %d points, but got %d", len(correct), len(line.Coordinates))
		return
	}
	for i := range correct {
		if line.Coordinates[i] != correct[i] {
			t.Errorf("Line point %d must be %v, but got %v", i, correct[i], line.Coordinates[i])
		}
	}
}

func TestLineFromLonLats(t *testing.T) {
	line := LineFromLonLats([]float64{110.0, 45.0, 115.0, 50.0, 120.0, 55.0})
	if GeometryID(line.Coordinates) != "ce9c0ec1472c0a8bab3190ab075e9b21" {
		t.Errorf("Flattened input must produce the same geometry id as paired input")
	}
}

func TestLineFromGeoJSON(t *testing.T) {
	raw := `{"type":"Feature","geometry":{"type":"LineString","coordinates":[[110.0,45.0],[115.0,50.0],[120.0,55.0]]},"properties":{"highway":"Residential"}}`
	feature, err := geojson.UnmarshalFeature([]byte(raw))
	if err != nil {
		t.Error(err)
		return
	}
	line, err := LineFromGeoJSON(feature)
	if err != nil {
		t.Error(err)
		return
	}
	if len(line.Coordinates) != 3 {
		t.Errorf("Line must have 3 points, but got %d", len(line.Coordinates))
	}
	if line.Properties["highway"] != "Residential" {
		t.Errorf("Line must keep the feature properties")
	}
	if GeometryID(line.Coordinates) != "ce9c0ec1472c0a8bab3190ab075e9b21" {
		t.Errorf("GeoJSON input must produce the same geometry id as raw input")
	}
}

func TestLineFromGeoJSONRejectsNonLineString(t *testing.T) {
	raw := `{"type":"Feature","geometry":{"type":"Point","coordinates":[110.0,45.0]},"properties":{}}`
	feature, err := geojson.UnmarshalFeature([]byte(raw))
	if err != nil {
		t.Error(err)
		return
	}
	if _, err := LineFromGeoJSON(feature); errors.Cause(err) != ErrInvalidGeometry {
		t.Errorf("Point feature must fail with ErrInvalidGeometry, but got %v", err)
	}
	if _, err := LineFromGeoJSON(nil); errors.Cause(err) != ErrInvalidGeometry {
		t.Errorf("Nil feature must fail with ErrInvalidGeometry, but got %v", err)
	}
}

func TestPointFromGeoJSON(t *testing.T) {
	raw := `{"type":"Feature","geometry":{"type":"Point","coordinates":[110.0,45.0]},"properties":{}}`
	feature, err := geojson.UnmarshalFeature([]byte(raw))
	if err != nil {
		t.Error(err)
		return
	}
	pt, err := PointFromGeoJSON(feature)
	if err != nil {
		t.Error(err)
		return
	}
	if pt != (orb.Point{110.0, 45.0}) {
		t.Errorf("Point must be {110, 45}, but got %v", pt)
	}
	if IntersectionID(pt) != "71f34691f182a467137b3d37265cb3b6" {
		t.Errorf("GeoJSON point must produce the same intersection id as raw input")
	}
}

func TestPointFromGeoJSONRejectsNonPoint(t *testing.T) {
	raw := `{"type":"Feature","geometry":{"type":"LineString","coordinates":[[110.0,45.0],[115.0,50.0]]},"properties":{}}`
	feature, err := geojson.UnmarshalFeature([]byte(raw))
	if err != nil {
		t.Error(err)
		return
	}
	if _, err := PointFromGeoJSON(feature); errors.Cause(err) != ErrInvalidGeometry {
		t.Errorf("LineString feature must fail with ErrInvalidGeometry, but got %v", err)
	}
}
