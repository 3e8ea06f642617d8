package sharedstreets

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidReference is returned when a location reference carries an outbound bearing without a distance to the next reference
	ErrInvalidReference = errors.New("Outbound bearing requires distance to next reference")
	// ErrInvalidEnumValue is returned when a road class or form of way conversion is given a value outside of the defined set
	ErrInvalidEnumValue = errors.New("Value is out of enumeration range")
	// ErrInvalidGeometry is returned when geometry data is missing or malformed where coordinates were expected
	ErrInvalidGeometry = errors.New("Invalid or missing geometry")
)
