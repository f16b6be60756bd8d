package queries

import (
	"errors"
	"time"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/pkg/guard"
)

var ErrGetNeedsAttentionQueryIsNotConstructed = errors.New(
	"GetNeedsAttentionQuery must be created via NewGetNeedsAttentionQuery constructor",
)

// GetNeedsAttentionQuery retrieves an employee's rejected parcels that have
// not been superseded by a resubmission. Once a resubmission exists the
// rejection drops off the list.
type GetNeedsAttentionQuery struct {
	submitterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetNeedsAttentionQuery creates a query scoped to one submitter.
func NewGetNeedsAttentionQuery(submitterID kernel.UUID) (GetNeedsAttentionQuery, error) {
	if err := submitterID.Validate(); err != nil {
		return GetNeedsAttentionQuery{}, err
	}
	return GetNeedsAttentionQuery{
		submitterID: submitterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// SubmitterID returns the employee the list is scoped to.
func (q GetNeedsAttentionQuery) SubmitterID() kernel.UUID {
	return q.submitterID
}

// Validate ensures the query was created through the constructor.
func (q GetNeedsAttentionQuery) Validate() error {
	return q.guard.Validate(ErrGetNeedsAttentionQueryIsNotConstructed)
}

// GetNeedsAttentionQueryResponse is one rejected parcel awaiting a decision
// from its submitter.
type GetNeedsAttentionQueryResponse struct {
	ID              kernel.UUID
	Number          string
	Recipient       string
	RejectionReason string
	RejectedAt      time.Time
}
