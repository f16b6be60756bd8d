// Package ports defines the persistence contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"
	"time"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/parcel"
)

// ErrConcurrentModification is returned when a conditional update finds the
// parcel changed since it was read. The losing writer must re-fetch and
// re-decide; the store never silently overwrites.
var ErrConcurrentModification = errors.New("parcel was modified concurrently")

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel conditioned on the
	// version the aggregate was loaded with. Returns
	// ErrConcurrentModification when the stored version moved on.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier, complete
	// with items and dimensions.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetSupersededBy returns the parcel whose PreviousRejection references
	// the given id, or an ObjectNotFound error when the rejection has not
	// been superseded. Used to keep a rejected parcel from being resubmitted
	// twice.
	GetSupersededBy(ctx context.Context, rejectedID kernel.UUID) (*parcel.Parcel, error)

	// GetOverdueReturnCandidates returns dispatched returnable parcels with
	// no explicit return status whose return date has passed as of the given
	// instant. Fed to the overdue sweep.
	GetOverdueReturnCandidates(ctx context.Context, asOf time.Time) ([]*parcel.Parcel, error)
}
