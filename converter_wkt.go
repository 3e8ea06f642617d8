package sharedstreets

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
)

// PrepareWKTLinestring returns WKT representation of LineString
func PrepareWKTLinestring(line orb.LineString) string {
	ptsStr := make([]string, len(line))
	for i := range line {
		ptsStr[i] = fmt.Sprintf("%f %f", line[i].Lon(), line[i].Lat())
	}
	return fmt.Sprintf("LINESTRING(%s)", strings.Join(ptsStr, ","))
}

// PrepareWKTPoint returns WKT representation of Point
func PrepareWKTPoint(pt orb.Point) string {
	return fmt.Sprintf("POINT(%f %f)", pt.Lon(), pt.Lat())
}
