package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gatepass/internal/core/domain/model/gatepass"
	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/parcel"
	"gatepass/internal/core/domain/services"
	"gatepass/internal/pkg/errs"
)

// ErrNotOriginalSubmitter is returned when someone other than the parcel's
// submitter attempts a resubmission.
var ErrNotOriginalSubmitter = errors.New("only the original submitter can resubmit")

// ErrAlreadyResubmitted is returned when the rejected parcel has already
// been superseded by another resubmission.
var ErrAlreadyResubmitted = errors.New("rejected parcel was already resubmitted")

// ResubmitParcelCommandHandler creates a fresh parcel superseding a
// rejected one. The rejected parcel stays rejected; the new parcel links
// back to it and enters the approval flow from the start with a new gate
// pass number.
type ResubmitParcelCommandHandler struct {
	uowFactory UoWFactory
}

// NewResubmitParcelCommandHandler creates a handler for parcel resubmission.
func NewResubmitParcelCommandHandler(uowFactory UoWFactory) ResubmitParcelCommandHandler {
	return ResubmitParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the actor and the rejected parcel, allocates a new gate
// pass number and persists the superseding parcel, all in one transaction.
func (h *ResubmitParcelCommandHandler) Handle(ctx context.Context, cmd ResubmitParcelCommand) (*parcel.Parcel, error) {
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
	original, err := parcelRepo.Get(ctx, cmd.RejectedParcelID())
	if err != nil {
		return nil, err
	}

	if !original.SubmitterID().IsEqual(cmd.ActorID()) {
		return nil, fmt.Errorf("%w: parcel %s", ErrNotOriginalSubmitter, original.ID())
	}

	successor, err := parcelRepo.GetSupersededBy(ctx, original.ID())
	if err == nil {
		return nil, fmt.Errorf("%w: superseded by %s", ErrAlreadyResubmitted, successor.ID())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

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

	resubmitted, err := parcel.NewResubmission(original, kernel.NewUUID(), number,
		cmd.Recipient(), cmd.Transportation(), cmd.Items(), cmd.Dimensions(),
		cmd.Returnable(), cmd.ReturnDate(), assignedManagerID, now)
	if err != nil {
		return nil, err
	}

	if err = parcelRepo.Add(ctx, resubmitted); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return resubmitted, nil
}
