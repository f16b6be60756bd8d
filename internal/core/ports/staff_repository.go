package ports

import (
	"context"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/staff"
)

// StaffRepository is the read-side contract for workflow actors. Account
// management happens outside this service.
type StaffRepository interface {
	// Get retrieves a staff member by id. Returns an ObjectNotFound error
	// when no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)
}
