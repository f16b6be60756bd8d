package commands

import (
	"context"

	"gatepass/internal/core/domain/model/parcel"
	"gatepass/internal/core/domain/services"
)

// ConfirmReturnCommandHandler marks a dispatched returnable parcel as
// returned.
type ConfirmReturnCommandHandler struct {
	uowFactory    ParcelUoWFactory
	returnTracker services.ReturnTracker
}

// NewConfirmReturnCommandHandler creates a handler for return confirmation.
func NewConfirmReturnCommandHandler(uowFactory ParcelUoWFactory) ConfirmReturnCommandHandler {
	return ConfirmReturnCommandHandler{
		uowFactory:    uowFactory,
		returnTracker: services.NewReturnTracker(),
	}
}

// Handle confirms the return and persists the parcel with an optimistic
// concurrency check.
func (h *ConfirmReturnCommandHandler) Handle(ctx context.Context, cmd ConfirmReturnCommand) (*parcel.Parcel, error) {
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

	parcelRepo := uow.ParcelRepository()
	returned, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	if err = h.returnTracker.ConfirmReturn(returned); err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, returned); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return returned, nil
}
