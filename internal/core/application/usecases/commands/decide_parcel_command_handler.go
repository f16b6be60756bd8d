package commands

import (
	"context"
	"time"

	"gatepass/internal/core/domain/model/parcel"
	"gatepass/internal/core/domain/services"
)

// DecideParcelCommandHandler handles manager verdicts on pending parcels.
// The first manager to decide on an unassigned parcel claims it; a second
// manager racing on the same parcel loses on the version check and gets a
// concurrent modification error.
type DecideParcelCommandHandler struct {
	uowFactory DecisionUoWFactory
}

// NewDecideParcelCommandHandler creates a handler for approve/reject decisions.
func NewDecideParcelCommandHandler(uowFactory DecisionUoWFactory) DecideParcelCommandHandler {
	return DecideParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the actor against the staff directory, applies the
// verdict to the parcel and persists it with an optimistic concurrency check.
func (h *DecideParcelCommandHandler) Handle(ctx context.Context, cmd DecideParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	resolver := services.NewManagerResolver(uow.StaffRepository())
	managerID := cmd.ManagerID()
	if _, err := resolver.Resolve(ctx, &managerID); err != nil {
		return nil, err
	}

	parcelRepo := uow.ParcelRepository()
	decided, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	switch cmd.Decision() {
	case DecisionApprove:
		err = decided.Approve(managerID, now)
	case DecisionReject:
		err = decided.Reject(managerID, cmd.Reason(), now)
	}
	if err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, decided); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return decided, nil
}
