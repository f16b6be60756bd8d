package parcel

import (
	"errors"
	"fmt"

	"gatepass/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel wrapped by every rejected workflow
// transition, whether the source state or a guard failed.
var ErrInvalidTransition = errors.New("invalid state transition")

// Status represents the lifecycle state of a parcel.
// It implements the workflow state machine and owns transition validation.
//
// State transitions:
//
//	Submitted ──> Approved ──> Dispatched
//	    │
//	    └──> Rejected
//
// Dispatched is terminal for the primary flow. Rejected is terminal for the
// parcel itself; a resubmission is a new parcel, not a transition.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Submitted is the initial status of every parcel. Courier parcels stay
	// here through logistics processing; the logistics flag is a visibility
	// predicate, not a separate state.
	Submitted

	// Approved indicates the assigned manager cleared the parcel to leave.
	Approved

	// Rejected indicates the assigned manager turned the parcel down.
	// The parcel is retained; only a resubmission supersedes it.
	Rejected

	// Dispatched indicates the parcel has left the premises.
	Dispatched
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Submitted:     "Submitted",
		Approved:      "Approved",
		Rejected:      "Rejected",
		Dispatched:    "Dispatched",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Submitted:  "Submitted",
		Approved:   "Approved",
		Rejected:   "Rejected",
		Dispatched: "Dispatched",
	}
}

// Validate checks if the Status value is one of the defined workflow states.
// Used when reconstructing parcels from persistence or external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Submitted -> Approved
//
// Returns (0, error wrapping ErrInvalidTransition) from any other state.
func (s Status) Approve() (Status, error) {
	if s != Submitted {
		return 0, fmt.Errorf("%w: cannot approve a %s parcel", ErrInvalidTransition, s)
	}
	return Approved, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Submitted -> Rejected
//
// Returns (0, error wrapping ErrInvalidTransition) from any other state.
func (s Status) Reject() (Status, error) {
	if s != Submitted {
		return 0, fmt.Errorf("%w: cannot reject a %s parcel", ErrInvalidTransition, s)
	}
	return Rejected, nil
}

// Dispatch transitions the status to Dispatched.
//
// Valid transitions:
//   - Approved -> Dispatched
//
// Returns (0, error wrapping ErrInvalidTransition) from any other state.
func (s Status) Dispatch() (Status, error) {
	if s != Approved {
		return 0, fmt.Errorf("%w: cannot dispatch a %s parcel", ErrInvalidTransition, s)
	}
	return Dispatched, nil
}

// ValidateResubmittable checks whether a parcel in this status may be
// superseded by a resubmission. Only Rejected parcels qualify.
func (s Status) ValidateResubmittable() error {
	if s != Rejected {
		return fmt.Errorf("%w: cannot resubmit a %s parcel", ErrInvalidTransition, s)
	}
	return nil
}
