// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"gatepass/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers declare the narrowest unit of work they need.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// SequenceRepoFactory provides access to the sequence allocator within a transaction.
	SequenceRepoFactory interface {
		SequenceRepository() ports.SequenceRepository
	}

	// StaffRepoFactory provides access to the staff read model within a transaction.
	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	// ParcelUoW manages transactions for parcel-only operations
	// (logistics processing, return confirmation).
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// AllocationUoW manages transactions for standalone sequence allocation.
	AllocationUoW interface {
		TxManager
		SequenceRepoFactory
	}

	// AllocationUoWFactory creates new allocation unit of work instances.
	AllocationUoWFactory interface {
		Create() AllocationUoW
	}

	// DecisionUoW manages transactions for actor-gated transitions
	// (approve/reject, dispatch), which need the staff read model.
	DecisionUoW interface {
		TxManager
		ParcelRepoFactory
		StaffRepoFactory
	}

	// DecisionUoWFactory creates new decision unit of work instances.
	DecisionUoWFactory interface {
		Create() DecisionUoW
	}

	// UoW manages transactions spanning allocation, parcel persistence and
	// staff lookups. Submission and resubmission allocate their sequence in
	// the same transaction that persists the parcel, so an aborted write
	// rolls the counter back.
	UoW interface {
		TxManager
		ParcelRepoFactory
		SequenceRepoFactory
		StaffRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-resource operations.
	UoWFactory interface {
		Create() UoW
	}
)
