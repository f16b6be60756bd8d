package commands

import (
	"context"
	"time"

	"gatepass/internal/core/domain/model/gatepass"
)

// GenerateGatePassCommandHandler allocates the next sequence for the
// current financial year and composes a printable gate pass number.
type GenerateGatePassCommandHandler struct {
	uowFactory AllocationUoWFactory
}

// NewGenerateGatePassCommandHandler creates a handler for standalone
// gate pass number generation.
func NewGenerateGatePassCommandHandler(uowFactory AllocationUoWFactory) GenerateGatePassCommandHandler {
	return GenerateGatePassCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle allocates a sequence and returns the composed number.
func (h *GenerateGatePassCommandHandler) Handle(ctx context.Context, cmd GenerateGatePassCommand) (gatepass.Number, error) {
	if err := cmd.Validate(); err != nil {
		return gatepass.Number{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return gatepass.Number{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	financialYear := gatepass.FinancialYearOf(time.Now())

	sequence, err := uow.SequenceRepository().Allocate(ctx, financialYear, cmd.PassType())
	if err != nil {
		return gatepass.Number{}, err
	}

	number, err := gatepass.ComposeNumber(sequence, financialYear, cmd.PassType())
	if err != nil {
		return gatepass.Number{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return gatepass.Number{}, err
	}

	return number, nil
}
