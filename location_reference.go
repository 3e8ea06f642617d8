package sharedstreets

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// LocationReference is a directional waypoint: a position plus optional
// bearing/distance data describing a path end without carrying the geometry.
type LocationReference struct {
	IntersectionID    string
	Point             orb.Point
	InboundBearing    *float64
	OutboundBearing   *float64
	DistanceToNextRef *float64
}

// LocationReferenceOptions carries the optional fields of a location
// reference. Nil pointers mean "not present".
type LocationReferenceOptions struct {
	IntersectionID    string
	InboundBearing    *float64
	OutboundBearing   *float64
	DistanceToNextRef *float64
}

// NewLocationReference builds a location reference for the given point. An
// outbound bearing without a distance to the next reference is a usage error
// and fails immediately with ErrInvalidReference.
func NewLocationReference(pt orb.Point, opts *LocationReferenceOptions) (*LocationReference, error) {
	if opts == nil {
		opts = &LocationReferenceOptions{}
	}
	if opts.OutboundBearing != nil && opts.DistanceToNextRef == nil {
		return nil, errors.Wrap(ErrInvalidReference, "Can't build location reference")
	}
	return &LocationReference{
		IntersectionID:    opts.IntersectionID,
		Point:             pt,
		InboundBearing:    opts.InboundBearing,
		OutboundBearing:   opts.OutboundBearing,
		DistanceToNextRef: opts.DistanceToNextRef,
	}, nil
}
