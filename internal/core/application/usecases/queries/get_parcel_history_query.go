package queries

import (
	"errors"
	"time"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/pkg/guard"
)

var ErrGetParcelHistoryQueryIsNotConstructed = errors.New(
	"GetParcelHistoryQuery must be created via NewGetParcelHistoryQuery constructor",
)

// GetParcelHistoryQuery retrieves parcels in every status, newest first,
// optionally scoped to one submitter. Backs the history view and exports.
type GetParcelHistoryQuery struct {
	submitterID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelHistoryQuery creates a history query. A nil submitter returns
// every parcel.
func NewGetParcelHistoryQuery(submitterID *kernel.UUID) (GetParcelHistoryQuery, error) {
	if submitterID != nil {
		if err := submitterID.Validate(); err != nil {
			return GetParcelHistoryQuery{}, err
		}
	}
	return GetParcelHistoryQuery{
		submitterID: submitterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// SubmitterID returns the optional submitter filter.
func (q GetParcelHistoryQuery) SubmitterID() *kernel.UUID {
	return q.submitterID
}

// Validate ensures the query was created through the constructor.
func (q GetParcelHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelHistoryQueryIsNotConstructed)
}

// GetParcelHistoryQueryResponse is one row of the parcel history. The
// return status is the stored one; callers needing the derived view load
// the full parcel.
type GetParcelHistoryQueryResponse struct {
	ID             kernel.UUID
	Number         string
	Status         string
	Transportation string
	Recipient      string
	Returnable     bool
	ReturnStatus   string
	Resubmitted    bool
	SubmittedAt    time.Time
	DispatchedAt   *time.Time
}
