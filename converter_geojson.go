package sharedstreets

import (
	geojson "github.com/paulmach/go.geojson"
)

// PrepareGeoJSONGeometry returns GeoJSON feature for a geometry, with the
// property names used by the SharedStreets tile format
func PrepareGeoJSONGeometry(g *Geometry) *geojson.Feature {
	feature := geojson.NewLineStringFeature(LonLatsToCoords(g.LonLats))
	feature.SetProperty("id", g.ID)
	feature.SetProperty("fromIntersectionId", g.FromIntersectionID)
	feature.SetProperty("toIntersectionId", g.ToIntersectionID)
	feature.SetProperty("forwardReferenceId", g.ForwardReferenceID)
	feature.SetProperty("backReferenceId", g.BackReferenceID)
	feature.SetProperty("roadClass", g.RoadClass.String())
	return feature
}

// PrepareGeoJSONIntersection returns GeoJSON feature for an intersection
func PrepareGeoJSONIntersection(i *Intersection) *geojson.Feature {
	feature := geojson.NewPointFeature([]float64{i.Point.Lon(), i.Point.Lat()})
	feature.SetProperty("id", i.ID)
	if i.NodeID != nil {
		feature.SetProperty("nodeId", *i.NodeID)
	}
	feature.SetProperty("inboundReferenceIds", i.InboundReferenceIDs)
	feature.SetProperty("outboundReferenceIds", i.OutboundReferenceIDs)
	return feature
}
