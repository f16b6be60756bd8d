package gatepass

import (
	"fmt"

	"gatepass/internal/pkg/errs"
)

// PassType is the sequence namespace a gate pass is numbered in.
// Returnable packages draw from RGP, non-returnable from NRGP.
type PassType string

const (
	// RGP is the Returnable Gate Pass namespace.
	RGP PassType = "RGP"

	// NRGP is the Non-Returnable Gate Pass namespace.
	NRGP PassType = "NRGP"
)

// PassTypeForReturnable maps the returnable flag of a package to its
// numbering namespace.
func PassTypeForReturnable(returnable bool) PassType {
	if returnable {
		return RGP
	}
	return NRGP
}

// PassTypeFromString validates and converts a raw string to a PassType.
func PassTypeFromString(s string) (PassType, error) {
	switch PassType(s) {
	case RGP:
		return RGP, nil
	case NRGP:
		return NRGP, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("passType", fmt.Errorf("%q is not a valid pass type", s))
	}
}

// Validate checks that the PassType holds one of the two known namespaces.
func (p PassType) Validate() error {
	if p != RGP && p != NRGP {
		return errs.NewValueIsInvalidErrorWithCause("passType", fmt.Errorf("%q is not a valid pass type", string(p)))
	}
	return nil
}

// String returns the namespace code as printed inside gate-pass numbers.
func (p PassType) String() string {
	return string(p)
}
