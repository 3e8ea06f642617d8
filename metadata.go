package sharedstreets

import (
	"github.com/pkg/errors"
)

// OSMWaySection records the slice of an OSM way a geometry was cut from
type OSMWaySection struct {
	WayID      int64
	RoadClass  RoadClass
	OneWay     bool
	Roundabout bool
	Link       bool
	Name       string
	NodeIDs    []int64
}

// OSMMetadata is the OSM provenance payload of a geometry
type OSMMetadata struct {
	Name        string
	WaySections []OSMWaySection
}

// GISSectionMetadata is a single attributed section from a GIS source
type GISSectionMetadata struct {
	SectionID         string
	SectionProperties map[string]interface{}
}

// GISMetadata is the GIS provenance payload of a geometry
type GISMetadata struct {
	Source   string
	Sections []GISSectionMetadata
}

// Metadata is a side-table entry keyed by geometry id. It is a plain
// association, not content-addressed: no identity hashing is involved.
type Metadata struct {
	GeometryID  string
	OSMMetadata *OSMMetadata
	GISMetadata []GISMetadata
}

// NewMetadata associates provenance payloads with a geometry
func NewMetadata(geometry *Geometry, osmMetadata *OSMMetadata, gisMetadata []GISMetadata) (*Metadata, error) {
	if geometry == nil {
		return nil, errors.Wrap(ErrInvalidGeometry, "Can't build metadata")
	}
	return &Metadata{
		GeometryID:  geometry.ID,
		OSMMetadata: osmMetadata,
		GISMetadata: gisMetadata,
	}, nil
}
