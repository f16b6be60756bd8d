// Package queries contains read-only operations over the parcel store.
// Query handlers bypass the domain model and read projections straight
// from the database, keeping the read path cheap.
package queries

import (
	"errors"
	"time"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/pkg/guard"
)

var ErrGetPendingParcelsQueryIsNotConstructed = errors.New(
	"GetPendingParcelsQuery must be created via NewGetPendingParcelsQuery constructor",
)

// GetPendingParcelsQuery retrieves the approval queue for one manager:
// submitted parcels past the logistics gate that are unassigned or assigned
// to this manager.
//
// Example:
//
//	query, _ := NewGetPendingParcelsQuery(managerID)
//	handler := NewGetPendingParcelsQueryHandler(db)
//
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending parcels: %w", err)
//	}
type GetPendingParcelsQuery struct {
	managerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingParcelsQuery creates a query scoped to the given manager.
func NewGetPendingParcelsQuery(managerID kernel.UUID) (GetPendingParcelsQuery, error) {
	if err := managerID.Validate(); err != nil {
		return GetPendingParcelsQuery{}, err
	}
	return GetPendingParcelsQuery{
		managerID: managerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ManagerID returns the manager the queue is scoped to.
func (q GetPendingParcelsQuery) ManagerID() kernel.UUID {
	return q.managerID
}

// Validate ensures the query was created through the constructor.
func (q GetPendingParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingParcelsQueryIsNotConstructed)
}

// GetPendingParcelsQueryResponse is one row of a manager's approval queue.
type GetPendingParcelsQueryResponse struct {
	ID                kernel.UUID
	Number            string
	Recipient         string
	Transportation    string
	Returnable        bool
	SubmitterID       kernel.UUID
	AssignedManagerID *kernel.UUID
	SubmittedAt       time.Time
}
