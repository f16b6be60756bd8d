// Package services contains stateless domain services coordinating rules
// that span aggregates: manager assignment and return tracking.
package services

import (
	"context"
	"errors"
	"fmt"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/staff"
	"gatepass/internal/core/ports"
)

// ErrUnknownManager is returned when a requested manager id does not refer to
// an existing user holding the manager role.
var ErrUnknownManager = errors.New("unknown manager")

// ManagerResolver picks or validates the manager responsible for a submitted
// parcel.
//
// Rules:
//   - A requested manager must exist and hold the manager role.
//   - No requested manager leaves the parcel unassigned; it is then visible
//     to every manager and the first decision claims it.
type ManagerResolver struct {
	staffRepository ports.StaffRepository
}

// NewManagerResolver creates a resolver over the given staff read model.
func NewManagerResolver(staffRepository ports.StaffRepository) ManagerResolver {
	return ManagerResolver{staffRepository: staffRepository}
}

// Resolve validates the requested manager. Returns (nil, nil) when no manager
// was requested, the validated id on success, or ErrUnknownManager.
func (r ManagerResolver) Resolve(ctx context.Context, requestedManagerID *kernel.UUID) (*kernel.UUID, error) {
	if requestedManagerID == nil {
		return nil, nil
	}

	member, err := r.staffRepository.Get(ctx, *requestedManagerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownManager, requestedManagerID)
	}

	if !member.HasRole(staff.Manager) {
		return nil, fmt.Errorf("%w: %s is not a manager", ErrUnknownManager, requestedManagerID)
	}

	id := member.ID()
	return &id, nil
}
