package sharedstreets

import (
	"github.com/paulmach/orb"
)

// Intersection is a point where geometries meet. Identity depends only on the
// rounded location, so independently produced datasets converge on the same
// intersection id regardless of provenance.
type Intersection struct {
	ID                   string
	NodeID               *int64
	Point                orb.Point
	InboundReferenceIDs  []string
	OutboundReferenceIDs []string
}

// IntersectionOptions carries the optional externally supplied node id and
// the references touching the intersection
type IntersectionOptions struct {
	NodeID               *int64
	InboundReferenceIDs  []string
	OutboundReferenceIDs []string
}

// IntersectionID returns the content-addressed identifier for a point
func IntersectionID(pt orb.Point) string {
	return hashMessage(intersectionMessage(pt))
}

// NewIntersection builds the intersection record for a point
func NewIntersection(pt orb.Point, opts *IntersectionOptions) *Intersection {
	if opts == nil {
		opts = &IntersectionOptions{}
	}
	return &Intersection{
		ID:                   IntersectionID(pt),
		NodeID:               opts.NodeID,
		Point:                pt,
		InboundReferenceIDs:  opts.InboundReferenceIDs,
		OutboundReferenceIDs: opts.OutboundReferenceIDs,
	}
}
