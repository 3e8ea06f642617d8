package sharedstreets

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// In-memory bridge from OSM entities to SharedStreets records. Parsing OSM
// files is left to the caller; only already-loaded ways and nodes are
// accepted here.

var roadClassByHighway = map[string]RoadClass{
	"motorway":       ROAD_CLASS_MOTORWAY,
	"motorway_link":  ROAD_CLASS_MOTORWAY,
	"trunk":          ROAD_CLASS_TRUNK,
	"trunk_link":     ROAD_CLASS_TRUNK,
	"primary":        ROAD_CLASS_PRIMARY,
	"primary_link":   ROAD_CLASS_PRIMARY,
	"secondary":      ROAD_CLASS_SECONDARY,
	"secondary_link": ROAD_CLASS_SECONDARY,
	"tertiary":       ROAD_CLASS_TERTIARY,
	"tertiary_link":  ROAD_CLASS_TERTIARY,
	"residential":    ROAD_CLASS_RESIDENTIAL,
	"living_street":  ROAD_CLASS_RESIDENTIAL,
	"unclassified":   ROAD_CLASS_UNCLASSIFIED,
	"road":           ROAD_CLASS_UNCLASSIFIED,
	"service":        ROAD_CLASS_SERVICE,
	"services":       ROAD_CLASS_SERVICE,
}

// RoadClassFromHighway maps an OSM highway tag value to a road class,
// defaulting to ROAD_CLASS_OTHER for values outside the mapped set
func RoadClassFromHighway(highway string) RoadClass {
	if found, ok := roadClassByHighway[highway]; ok {
		return found
	}
	return ROAD_CLASS_OTHER
}

// FormOfWayFromWay derives a form of way from OSM way tags
func FormOfWayFromWay(way *osm.Way) FormOfWay {
	if way.Tags.Find("junction") == "roundabout" {
		return FORM_OF_WAY_ROUNDABOUT
	}
	switch way.Tags.Find("highway") {
	case "motorway":
		return FORM_OF_WAY_MOTORWAY
	case "motorway_link", "trunk_link", "primary_link", "secondary_link", "tertiary_link":
		return FORM_OF_WAY_SLIP_ROAD
	}
	if wayIsOneway(way) {
		return FORM_OF_WAY_MULTIPLE_CARRIAGEWAY
	}
	return FORM_OF_WAY_SINGLE_CARRIAGEWAY
}

func wayIsOneway(way *osm.Way) bool {
	switch way.Tags.Find("oneway") {
	case "yes", "1", "-1":
		return true
	}
	return false
}

// GeometryFromWay builds the geometry record for an OSM way, resolving node
// coordinates through the given map
func GeometryFromWay(way *osm.Way, nodes map[osm.NodeID]orb.Point) (*Geometry, error) {
	if way == nil || len(way.Nodes) < 2 {
		return nil, errors.Wrap(ErrInvalidGeometry, "Can't build geometry from OSM way")
	}
	coords := make(orb.LineString, 0, len(way.Nodes))
	for _, wayNode := range way.Nodes {
		pt, ok := nodes[wayNode.ID]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidGeometry, "Node %d of way %d is not found", wayNode.ID, way.ID)
		}
		coords = append(coords, pt)
	}
	line := &Line{
		Coordinates: coords,
		Properties: map[string]interface{}{
			"roadClass": int(RoadClassFromHighway(way.Tags.Find("highway"))),
			"formOfWay": int(FormOfWayFromWay(way)),
		},
	}
	return NewGeometry(line, &GeometryOptions{
		RoadClassProperty: "roadClass",
		FormOfWayProperty: "formOfWay",
	})
}

// MetadataFromWay builds the OSM provenance side-table entry for a geometry
// derived from a single way
func MetadataFromWay(geometry *Geometry, way *osm.Way) (*Metadata, error) {
	if way == nil {
		return NewMetadata(geometry, nil, nil)
	}
	nodeIDs := make([]int64, 0, len(way.Nodes))
	for _, wayNode := range way.Nodes {
		nodeIDs = append(nodeIDs, int64(wayNode.ID))
	}
	highway := way.Tags.Find("highway")
	section := OSMWaySection{
		WayID:      int64(way.ID),
		RoadClass:  RoadClassFromHighway(highway),
		OneWay:     wayIsOneway(way),
		Roundabout: way.Tags.Find("junction") == "roundabout",
		Link:       len(highway) > 5 && highway[len(highway)-5:] == "_link",
		Name:       way.Tags.Find("name"),
		NodeIDs:    nodeIDs,
	}
	return NewMetadata(geometry, &OSMMetadata{
		Name:        way.Tags.Find("name"),
		WaySections: []OSMWaySection{section},
	}, nil)
}

// IntersectionFromNode builds the intersection record for an OSM node,
// keeping the node id alongside the content-addressed intersection id
func IntersectionFromNode(node *osm.Node, inboundReferenceIDs, outboundReferenceIDs []string) *Intersection {
	nodeID := int64(node.ID)
	return NewIntersection(orb.Point{node.Lon, node.Lat}, &IntersectionOptions{
		NodeID:               &nodeID,
		InboundReferenceIDs:  inboundReferenceIDs,
		OutboundReferenceIDs: outboundReferenceIDs,
	})
}
