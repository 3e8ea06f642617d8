package sharedstreets

import (
	"github.com/pkg/errors"
)

// FormOfWay is the 8-category road geometry classification hashed into every
// reference identifier.
type FormOfWay uint16

const (
	FORM_OF_WAY_UNDEFINED = FormOfWay(iota)
	FORM_OF_WAY_MOTORWAY
	FORM_OF_WAY_MULTIPLE_CARRIAGEWAY
	FORM_OF_WAY_SINGLE_CARRIAGEWAY
	FORM_OF_WAY_ROUNDABOUT
	FORM_OF_WAY_TRAFFIC_SQUARE
	FORM_OF_WAY_SLIP_ROAD
	FORM_OF_WAY_OTHER
)

func (iotaIdx FormOfWay) String() string {
	return [...]string{"Undefined", "Motorway", "MultipleCarriageway", "SingleCarriageway", "Roundabout", "TrafficSquare", "SlipRoad", "Other"}[iotaIdx]
}

var formOfWayByName = map[string]FormOfWay{
	"Undefined":           FORM_OF_WAY_UNDEFINED,
	"Motorway":            FORM_OF_WAY_MOTORWAY,
	"MultipleCarriageway": FORM_OF_WAY_MULTIPLE_CARRIAGEWAY,
	"SingleCarriageway":   FORM_OF_WAY_SINGLE_CARRIAGEWAY,
	"Roundabout":          FORM_OF_WAY_ROUNDABOUT,
	"TrafficSquare":       FORM_OF_WAY_TRAFFIC_SQUARE,
	"SlipRoad":            FORM_OF_WAY_SLIP_ROAD,
	"Other":               FORM_OF_WAY_OTHER,
}

// FormOfWayFromString returns the form of way named by str
func FormOfWayFromString(str string) (FormOfWay, error) {
	if found, ok := formOfWayByName[str]; ok {
		return found, nil
	}
	return 0, errors.Wrapf(ErrInvalidEnumValue, "Form of way '%s'", str)
}

// FormOfWayFromNumber returns the form of way with the given numeric code
func FormOfWayFromNumber(num int) (FormOfWay, error) {
	if num < int(FORM_OF_WAY_UNDEFINED) || num > int(FORM_OF_WAY_OTHER) {
		return 0, errors.Wrapf(ErrInvalidEnumValue, "Form of way %d", num)
	}
	return FormOfWay(num), nil
}
