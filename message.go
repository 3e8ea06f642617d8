package sharedstreets

import (
	"crypto/md5"
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Canonical messages are the exact text fingerprinted to mint identifiers.
// Field order and the single-space separator are part of the scheme: any
// deviation changes every identifier and breaks compatibility with other
// SharedStreets implementations.

// geometryMessage returns canonical message for a geometry,
// e.g. "Geometry 110.000000 45.000000 115.000000 50.000000"
func geometryMessage(line orb.LineString) string {
	parts := make([]string, 0, 2*len(line)+1)
	parts = append(parts, "Geometry")
	for _, pt := range line {
		parts = append(parts, formatCoordinate(pt.Lon()), formatCoordinate(pt.Lat()))
	}
	return strings.Join(parts, " ")
}

// intersectionMessage returns canonical message for an intersection,
// e.g. "Intersection 110.000000 45.000000"
func intersectionMessage(pt orb.Point) string {
	return strings.Join([]string{"Intersection", formatCoordinate(pt.Lon()), formatCoordinate(pt.Lat())}, " ")
}

// referenceMessage returns canonical message for a directional reference.
// Bearing and distance to next reference (stored in centimeters) are written
// only when both are present, truncated toward zero.
func referenceMessage(locationReferences []LocationReference, formOfWay FormOfWay) string {
	parts := []string{"Reference", strconv.Itoa(int(formOfWay))}
	for i := range locationReferences {
		lr := &locationReferences[i]
		parts = append(parts, formatCoordinate(lr.Point.Lon()), formatCoordinate(lr.Point.Lat()))
		if lr.OutboundBearing != nil && lr.DistanceToNextRef != nil {
			parts = append(parts,
				strconv.FormatInt(int64(math.Trunc(*lr.OutboundBearing)), 10),
				strconv.FormatInt(int64(math.Trunc(*lr.DistanceToNextRef)), 10),
			)
		}
	}
	return strings.Join(parts, " ")
}

// hashMessage returns the 128-bit MD5 digest of the canonical message as 32
// lowercase hexadecimal characters. MD5 is fixed by the referencing scheme;
// substituting another hash would break cross-dataset identifiers.
func hashMessage(message string) string {
	sum := md5.Sum([]byte(message))
	return hex.EncodeToString(sum[:])
}
