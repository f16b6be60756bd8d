package parcel

import (
	"fmt"

	"gatepass/internal/pkg/errs"
)

// ReturnStatus tracks a returnable parcel after dispatch. It is only
// meaningful when the parcel is returnable; non-returnable parcels carry
// ReturnStatusNone.
type ReturnStatus string

const (
	// ReturnStatusNone marks a parcel with no explicit return status. The
	// effective status is then derived from the return date.
	ReturnStatusNone ReturnStatus = ""

	// ReturnPending means the parcel is expected back and the return date has
	// not passed.
	ReturnPending ReturnStatus = "pending"

	// Returned means the return was explicitly confirmed.
	Returned ReturnStatus = "returned"

	// ReturnOverdue means the return date passed without confirmation.
	ReturnOverdue ReturnStatus = "overdue"
)

// ReturnStatusFromString validates and converts a raw string.
// The empty string maps to ReturnStatusNone.
func ReturnStatusFromString(s string) (ReturnStatus, error) {
	switch ReturnStatus(s) {
	case ReturnStatusNone, ReturnPending, Returned, ReturnOverdue:
		return ReturnStatus(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"returnStatus", fmt.Errorf("%q is not a valid return status", s))
	}
}

// Validate checks that the value is one of the defined return statuses.
func (r ReturnStatus) Validate() error {
	switch r {
	case ReturnStatusNone, ReturnPending, Returned, ReturnOverdue:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"returnStatus", fmt.Errorf("%q is not a valid return status", string(r)))
	}
}

// String returns the wire form of the return status.
func (r ReturnStatus) String() string {
	return string(r)
}
