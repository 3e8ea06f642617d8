package sharedstreets

import (
	"github.com/pkg/errors"
)

// RoadClass is the 9-category road importance classification. Numeric codes
// are fixed by the referencing scheme and appear in persisted data.
type RoadClass uint16

const (
	ROAD_CLASS_MOTORWAY = RoadClass(iota)
	ROAD_CLASS_TRUNK
	ROAD_CLASS_PRIMARY
	ROAD_CLASS_SECONDARY
	ROAD_CLASS_TERTIARY
	ROAD_CLASS_RESIDENTIAL
	ROAD_CLASS_UNCLASSIFIED
	ROAD_CLASS_SERVICE
	ROAD_CLASS_OTHER
)

func (iotaIdx RoadClass) String() string {
	return [...]string{"Motorway", "Trunk", "Primary", "Secondary", "Tertiary", "Residential", "Unclassified", "Service", "Other"}[iotaIdx]
}

var roadClassByName = map[string]RoadClass{
	"Motorway":     ROAD_CLASS_MOTORWAY,
	"Trunk":        ROAD_CLASS_TRUNK,
	"Primary":      ROAD_CLASS_PRIMARY,
	"Secondary":    ROAD_CLASS_SECONDARY,
	"Tertiary":     ROAD_CLASS_TERTIARY,
	"Residential":  ROAD_CLASS_RESIDENTIAL,
	"Unclassified": ROAD_CLASS_UNCLASSIFIED,
	"Service":      ROAD_CLASS_SERVICE,
	"Other":        ROAD_CLASS_OTHER,
}

// RoadClassFromString returns the road class named by str
func RoadClassFromString(str string) (RoadClass, error) {
	if found, ok := roadClassByName[str]; ok {
		return found, nil
	}
	return 0, errors.Wrapf(ErrInvalidEnumValue, "Road class '%s'", str)
}

// RoadClassFromNumber returns the road class with the given numeric code
func RoadClassFromNumber(num int) (RoadClass, error) {
	if num < int(ROAD_CLASS_MOTORWAY) || num > int(ROAD_CLASS_OTHER) {
		return 0, errors.Wrapf(ErrInvalidEnumValue, "Road class %d", num)
	}
	return RoadClass(num), nil
}
