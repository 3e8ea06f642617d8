package sharedstreets

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Geometry is a road segment with a content-addressed identifier: two
// logically identical coordinate sequences always mint the same id, so
// independently processed datasets deduplicate without coordination.
// Immutable once built.
type Geometry struct {
	ID                 string
	FromIntersectionID string
	ToIntersectionID   string
	ForwardReferenceID string
	BackReferenceID    string
	RoadClass          RoadClass
	// Coordinates flattened as alternating lon/lat values
	LonLats []float64
}

// GeometryOptions names the feature properties holding GIS-derived form of
// way and road class values. Empty keys (or unresolvable values) fall back to
// FORM_OF_WAY_UNDEFINED and ROAD_CLASS_OTHER.
type GeometryOptions struct {
	FormOfWayProperty string
	RoadClassProperty string
}

// GeometryID returns the content-addressed identifier for a coordinate sequence
func GeometryID(line orb.LineString) string {
	return hashMessage(geometryMessage(line))
}

// LineLocationReferences builds the two endpoint location references for a
// path: the start carries the outbound bearing of the first 20 meters and the
// distance to the end reference, the end carries the inbound bearing only.
func LineLocationReferences(line orb.LineString) []LocationReference {
	start := line[0]
	end := line[len(line)-1]
	outbound := OutboundBearing(line)
	inbound := InboundBearing(line)
	distance := DistanceToNextRef(start, end)
	return []LocationReference{
		{
			IntersectionID:    IntersectionID(start),
			Point:             start,
			OutboundBearing:   &outbound,
			DistanceToNextRef: &distance,
		},
		{
			IntersectionID: IntersectionID(end),
			Point:          end,
			InboundBearing: &inbound,
		},
	}
}

// NewGeometry assembles the full geometry record for a line: endpoint
// intersection ids, forward and back reference ids (the back reference is
// computed from the reversed line with the same form of way), road class, and
// the geometry id itself.
func NewGeometry(line *Line, opts *GeometryOptions) (*Geometry, error) {
	if line == nil || len(line.Coordinates) < 2 {
		return nil, errors.Wrap(ErrInvalidGeometry, "Can't build geometry")
	}
	if opts == nil {
		opts = &GeometryOptions{}
	}

	roadClass := ROAD_CLASS_OTHER
	if opts.RoadClassProperty != "" {
		roadClass = roadClassFromProperty(line.Properties[opts.RoadClassProperty])
	}
	formOfWay := FORM_OF_WAY_UNDEFINED
	if opts.FormOfWayProperty != "" {
		formOfWay = formOfWayFromProperty(line.Properties[opts.FormOfWayProperty])
	}

	coords := line.Coordinates
	forwardReferenceID := ReferenceID(LineLocationReferences(coords), formOfWay)
	backReferenceID := ReferenceID(LineLocationReferences(reverseLine(coords)), formOfWay)

	return &Geometry{
		ID:                 GeometryID(coords),
		FromIntersectionID: IntersectionID(coords[0]),
		ToIntersectionID:   IntersectionID(coords[len(coords)-1]),
		ForwardReferenceID: forwardReferenceID,
		BackReferenceID:    backReferenceID,
		RoadClass:          roadClass,
		LonLats:            lineToLonLats(coords),
	}, nil
}

// roadClassFromProperty resolves a GIS property value (name or numeric code)
// to a road class, falling back to ROAD_CLASS_OTHER
func roadClassFromProperty(value interface{}) RoadClass {
	switch v := value.(type) {
	case string:
		if roadClass, err := RoadClassFromString(v); err == nil {
			return roadClass
		}
	case float64:
		if roadClass, err := RoadClassFromNumber(int(v)); err == nil {
			return roadClass
		}
	case int:
		if roadClass, err := RoadClassFromNumber(v); err == nil {
			return roadClass
		}
	}
	return ROAD_CLASS_OTHER
}

// formOfWayFromProperty resolves a GIS property value (name or numeric code)
// to a form of way, falling back to FORM_OF_WAY_UNDEFINED
func formOfWayFromProperty(value interface{}) FormOfWay {
	switch v := value.(type) {
	case string:
		if formOfWay, err := FormOfWayFromString(v); err == nil {
			return formOfWay
		}
	case float64:
		if formOfWay, err := FormOfWayFromNumber(int(v)); err == nil {
			return formOfWay
		}
	case int:
		if formOfWay, err := FormOfWayFromNumber(v); err == nil {
			return formOfWay
		}
	}
	return FORM_OF_WAY_UNDEFINED
}
