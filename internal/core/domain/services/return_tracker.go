package services

import (
	"time"

	"gatepass/internal/core/domain/model/parcel"
)

// ReturnTracker resolves the return status of returnable parcels. An explicit
// status is authoritative; otherwise the status derives from the return date:
// past due is overdue, anything else is pending.
type ReturnTracker struct{}

// NewReturnTracker creates a ReturnTracker.
func NewReturnTracker() ReturnTracker {
	return ReturnTracker{}
}

// DeriveStatus resolves the effective return status of a parcel at the given
// time. Non-returnable parcels have none.
func (t ReturnTracker) DeriveStatus(p *parcel.Parcel, now time.Time) (parcel.ReturnStatus, error) {
	if err := p.Validate(); err != nil {
		return parcel.ReturnStatusNone, err
	}
	return p.EffectiveReturnStatus(now), nil
}

// ConfirmReturn records an explicit return on a dispatched returnable parcel.
func (t ReturnTracker) ConfirmReturn(p *parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return p.ConfirmReturn()
}

// MarkOverdue flips a dispatched returnable parcel with a past return date
// and no explicit status to overdue. Reports whether the parcel changed.
func (t ReturnTracker) MarkOverdue(p *parcel.Parcel, now time.Time) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	return p.MarkReturnOverdue(now), nil
}
