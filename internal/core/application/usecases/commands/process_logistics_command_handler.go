package commands

import (
	"context"

	"gatepass/internal/core/domain/model/parcel"
)

// ProcessLogisticsCommandHandler applies logistics enrichment to a
// submitted courier parcel, which lifts the visibility gate that keeps
// unprocessed courier parcels out of manager queues.
type ProcessLogisticsCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewProcessLogisticsCommandHandler creates a handler for logistics processing.
func NewProcessLogisticsCommandHandler(uowFactory ParcelUoWFactory) ProcessLogisticsCommandHandler {
	return ProcessLogisticsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the parcel, records the enrichment and persists it with an
// optimistic concurrency check.
func (h *ProcessLogisticsCommandHandler) Handle(ctx context.Context, cmd ProcessLogisticsCommand) (*parcel.Parcel, error) {
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
	processed, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	err = processed.CompleteLogistics(cmd.CourierName(), cmd.CourierTrackingNumber(),
		cmd.Dimensions(), cmd.ImageRefs())
	if err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, processed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return processed, nil
}
