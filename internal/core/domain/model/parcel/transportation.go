package parcel

import (
	"fmt"

	"gatepass/internal/pkg/errs"
)

// TransportationType determines whether a parcel passes the logistics gate.
// Courier parcels must be processed by logistics before any manager sees
// them; by-hand parcels reach the manager queue immediately.
type TransportationType string

const (
	// Courier parcels are shipped through an external courier and require
	// logistics processing before manager review.
	Courier TransportationType = "courier"

	// ByHand parcels are carried out personally and skip the logistics gate.
	ByHand TransportationType = "byHand"
)

// TransportationTypeFromString validates and converts a raw string.
func TransportationTypeFromString(s string) (TransportationType, error) {
	switch TransportationType(s) {
	case Courier:
		return Courier, nil
	case ByHand:
		return ByHand, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"transportationType", fmt.Errorf("%q is not a valid transportation type", s))
	}
}

// Validate checks that the value is one of the two known transport modes.
func (t TransportationType) Validate() error {
	if t != Courier && t != ByHand {
		return errs.NewValueIsInvalidErrorWithCause(
			"transportationType", fmt.Errorf("%q is not a valid transportation type", string(t)))
	}
	return nil
}

// String returns the wire form of the transportation type.
func (t TransportationType) String() string {
	return string(t)
}
