package commands

import (
	"context"
	"time"

	"gatepass/internal/core/domain/model/gatepass"
	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/parcel"
	"gatepass/internal/core/domain/services"
)

// SubmitParcelCommandHandler handles the business logic for parcel
// submission. Allocates the next gate pass number and persists the new
// parcel in a single transaction, so a failed submission rolls the
// sequence counter back with it.
//
// Example:
//
//	handler := NewSubmitParcelCommandHandler(uowFactory)
//	cmd, _ := NewSubmitParcelCommand(employeeID, "Acme Labs", parcel.Courier,
//	    items, dims, true, &returnDate, nil)
//
//	submitted, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("parcel submission failed: %w", err)
//	}
//	// submitted carries the composed gate pass number
type SubmitParcelCommandHandler struct {
	uowFactory UoWFactory
}

// NewSubmitParcelCommandHandler creates a handler for parcel submission.
func NewSubmitParcelCommandHandler(uowFactory UoWFactory) SubmitParcelCommandHandler {
	return SubmitParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the submission command and returns the persisted parcel.
// The requested approver, when present, must exist in the staff directory
// with the manager role; otherwise the submission is rejected outright.
func (h *SubmitParcelCommandHandler) Handle(ctx context.Context, cmd SubmitParcelCommand) (*parcel.Parcel, error) {
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
	assignedManagerID, err := resolver.Resolve(ctx, cmd.RequestedManagerID())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	passType := gatepass.PassTypeForReturnable(cmd.Returnable())
	financialYear := gatepass.FinancialYearOf(now)

	sequence, err := uow.SequenceRepository().Allocate(ctx, financialYear, passType)
	if err != nil {
		return nil, err
	}

	number, err := gatepass.ComposeNumber(sequence, financialYear, passType)
	if err != nil {
		return nil, err
	}

	submitted, err := parcel.NewParcel(kernel.NewUUID(), number, cmd.SubmitterID(),
		cmd.Recipient(), cmd.Transportation(), cmd.Items(), cmd.Dimensions(),
		cmd.Returnable(), cmd.ReturnDate(), assignedManagerID, now)
	if err != nil {
		return nil, err
	}

	if err = uow.ParcelRepository().Add(ctx, submitted); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return submitted, nil
}
