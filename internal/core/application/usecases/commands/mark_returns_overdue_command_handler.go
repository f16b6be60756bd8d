package commands

import (
	"context"
	"errors"
	"time"

	"gatepass/internal/core/domain/services"
	"gatepass/internal/core/ports"
)

// MarkReturnsOverdueCommandHandler is the write side of the overdue sweep.
// Overdue is already derived on every read; the sweep only makes the state
// durable so reports and exports see it without recomputing.
type MarkReturnsOverdueCommandHandler struct {
	uowFactory    ParcelUoWFactory
	returnTracker services.ReturnTracker
}

// NewMarkReturnsOverdueCommandHandler creates a handler for the overdue sweep.
func NewMarkReturnsOverdueCommandHandler(uowFactory ParcelUoWFactory) MarkReturnsOverdueCommandHandler {
	return MarkReturnsOverdueCommandHandler{
		uowFactory:    uowFactory,
		returnTracker: services.NewReturnTracker(),
	}
}

// Handle marks every overdue candidate and returns how many were updated.
// A parcel that a concurrent writer touched mid-sweep is skipped; the next
// sweep picks it up if it is still overdue.
func (h *MarkReturnsOverdueCommandHandler) Handle(ctx context.Context, cmd MarkReturnsOverdueCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()
	parcelRepo := uow.ParcelRepository()
	candidates, err := parcelRepo.GetOverdueReturnCandidates(ctx, now)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, candidate := range candidates {
		changed, err := h.returnTracker.MarkOverdue(candidate, now)
		if err != nil {
			return 0, err
		}
		if !changed {
			continue
		}

		if err = parcelRepo.Update(ctx, candidate); err != nil {
			if errors.Is(err, ports.ErrConcurrentModification) {
				continue
			}
			return 0, err
		}
		marked++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return marked, nil
}
