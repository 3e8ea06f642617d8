package sharedstreets

import (
	"github.com/pkg/errors"
)

// Reference is a directional description of a geometry: an ordered location
// reference sequence plus a form of way, hashed order-sensitively so the
// forward and back references of the same geometry get distinct ids.
type Reference struct {
	ID                 string
	GeometryID         string
	FormOfWay          FormOfWay
	LocationReferences []LocationReference
}

// ReferenceID returns the content-addressed identifier for an ordered
// location reference sequence and form of way
func ReferenceID(locationReferences []LocationReference, formOfWay FormOfWay) string {
	return hashMessage(referenceMessage(locationReferences, formOfWay))
}

// NewReference builds the reference record linking back to the geometry it
// was derived from
func NewReference(geometry *Geometry, locationReferences []LocationReference, formOfWay FormOfWay) (*Reference, error) {
	if geometry == nil {
		return nil, errors.Wrap(ErrInvalidGeometry, "Can't build reference")
	}
	return &Reference{
		ID:                 ReferenceID(locationReferences, formOfWay),
		GeometryID:         geometry.ID,
		FormOfWay:          formOfWay,
		LocationReferences: locationReferences,
	}, nil
}
