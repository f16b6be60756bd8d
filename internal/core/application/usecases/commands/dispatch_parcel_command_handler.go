package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gatepass/internal/core/domain/model/parcel"
	"gatepass/internal/core/domain/model/staff"
)

// ErrActorNotPermitted is returned when a staff member's role does not
// allow the attempted operation.
var ErrActorNotPermitted = errors.New("actor role does not permit this operation")

// DispatchParcelCommandHandler moves an approved parcel to Dispatched.
// Dispatch is terminal for the approval flow; only return tracking can
// still change the parcel after this.
type DispatchParcelCommandHandler struct {
	uowFactory DecisionUoWFactory
}

// NewDispatchParcelCommandHandler creates a handler for parcel dispatch.
func NewDispatchParcelCommandHandler(uowFactory DecisionUoWFactory) DispatchParcelCommandHandler {
	return DispatchParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the actor holds the logistics role, records the dispatch
// instant and persists the parcel with an optimistic concurrency check.
func (h *DispatchParcelCommandHandler) Handle(ctx context.Context, cmd DispatchParcelCommand) (*parcel.Parcel, error) {
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

	actor, err := uow.StaffRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return nil, err
	}
	if !actor.HasRole(staff.Logistics) {
		return nil, fmt.Errorf("%w: dispatch requires the logistics role", ErrActorNotPermitted)
	}

	parcelRepo := uow.ParcelRepository()
	dispatched, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	if err = dispatched.Dispatch(time.Now()); err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, dispatched); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return dispatched, nil
}
