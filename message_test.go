package sharedstreets

import (
	"testing"

	"github.com/paulmach/orb"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestGeometryMessage(t *testing.T) {
	line := orb.LineString{{110.0, 45.0}, {115.0, 50.0}}
	correct := "Geometry 110.000000 45.000000 115.000000 50.000000"
	msg := geometryMessage(line)
	if msg != correct {
		t.Errorf("Geometry message must be '%s', but got '%s'", correct, msg)
	}
}

func TestIntersectionMessage(t *testing.T) {
	correct := "Intersection 110.000000 45.000000"
	msg := intersectionMessage(orb.Point{110.0, 45.0})
	if msg != correct {
		t.Errorf("Intersection message must be '%s', but got '%s'", correct, msg)
	}
}

func TestReferenceMessage(t *testing.T) {
	locationReferences := []LocationReference{
		{
			Point:             orb.Point{-74.0048213, 40.7416415},
			OutboundBearing:   floatPtr(208),
			DistanceToNextRef: floatPtr(9279),
		},
		{
			Point:          orb.Point{-74.0051265, 40.7408505},
			InboundBearing: floatPtr(188),
		},
	}
	correct := "Reference 2 -74.004821 40.741642 208 9279 -74.005127 40.740851"
	msg := referenceMessage(locationReferences, FORM_OF_WAY_MULTIPLE_CARRIAGEWAY)
	if msg != correct {
		t.Errorf("Reference message must be '%s', but got '%s'", correct, msg)
	}
}

func TestReferenceMessageTruncatesTowardZero(t *testing.T) {
	locationReferences := []LocationReference{
		{
			Point:             orb.Point{110.0, 45.0},
			OutboundBearing:   floatPtr(32.9),
			DistanceToNextRef: floatPtr(13189.788390787704),
		},
		{
			Point: orb.Point{120.0, 55.0},
		},
	}
	correct := "Reference 0 110.000000 45.000000 32 13189 120.000000 55.000000"
	msg := referenceMessage(locationReferences, FORM_OF_WAY_UNDEFINED)
	if msg != correct {
		t.Errorf("Reference message must be '%s', but got '%s'", correct, msg)
	}
}

func TestReferenceMessageSkipsBearingWithoutDistance(t *testing.T) {
	// A bearing with no distance never reaches the message
	locationReferences := []LocationReference{
		{
			Point:           orb.Point{110.0, 45.0},
			OutboundBearing: floatPtr(90),
		},
	}
	correct := "Reference 3 110.000000 45.000000"
	msg := referenceMessage(locationReferences, FORM_OF_WAY_SINGLE_CARRIAGEWAY)
	if msg != correct {
		t.Errorf("Reference message must be '%s', but got '%s'", correct, msg)
	}
}

func TestHashMessage(t *testing.T) {
	correct := "ce9c0ec1472c0a8bab3190ab075e9b21"
	hash := hashMessage("Geometry 110.000000 45.000000 115.000000 50.000000 120.000000 55.000000")
	if hash != correct {
		t.Errorf("Hash must be '%s', but got '%s'", correct, hash)
	}
	if len(hash) != 32 {
		t.Errorf("Hash must be 32 lowercase hex characters, but got %d", len(hash))
	}
}
