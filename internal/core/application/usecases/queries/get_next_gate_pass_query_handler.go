package queries

import (
	"context"
	"time"

	"gatepass/internal/core/domain/model/gatepass"
	"gatepass/internal/core/ports"
)

// GetNextGatePassQueryHandler previews gate-pass numbers. Unlike the other
// query handlers it reads through the allocator port rather than raw SQL:
// the counter is the allocator's source of truth and the preview must agree
// with what Allocate would hand out next.
type GetNextGatePassQueryHandler struct {
	sequenceRepository ports.SequenceRepository
}

// NewGetNextGatePassQueryHandler creates a handler over the sequence store.
func NewGetNextGatePassQueryHandler(sequenceRepository ports.SequenceRepository) GetNextGatePassQueryHandler {
	return GetNextGatePassQueryHandler{sequenceRepository: sequenceRepository}
}

// Handle returns the number the next allocation in the query's namespace
// would produce, without consuming it.
func (h GetNextGatePassQueryHandler) Handle(
	ctx context.Context, query GetNextGatePassQuery,
) (GetNextGatePassQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNextGatePassQueryResponse{}, err
	}

	financialYear := gatepass.FinancialYearOf(time.Now())
	current, err := h.sequenceRepository.Current(ctx, financialYear, query.PassType())
	if err != nil {
		return GetNextGatePassQueryResponse{}, err
	}

	number, err := gatepass.ComposeNumber(current+1, financialYear, query.PassType())
	if err != nil {
		return GetNextGatePassQueryResponse{}, err
	}

	return GetNextGatePassQueryResponse{
		Code:          number.Code(),
		PassType:      number.PassType().String(),
		FinancialYear: number.FinancialYear().Code(),
		Sequence:      number.Sequence(),
	}, nil
}
