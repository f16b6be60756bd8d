package queries

import (
	"errors"

	"gatepass/internal/core/domain/model/gatepass"
	"gatepass/internal/pkg/guard"
)

var ErrGetNextGatePassQueryIsNotConstructed = errors.New(
	"GetNextGatePassQuery must be created via NewGetNextGatePassQuery constructor",
)

// GetNextGatePassQuery previews the gate-pass number the next allocation in a
// pass-type namespace would produce. The preview does not reserve the number;
// a concurrent submission can still claim it first.
type GetNextGatePassQuery struct {
	passType gatepass.PassType

	guard guard.ConstructorGuard
}

// NewGetNextGatePassQuery creates a query for the given pass type.
func NewGetNextGatePassQuery(passType gatepass.PassType) (GetNextGatePassQuery, error) {
	if err := passType.Validate(); err != nil {
		return GetNextGatePassQuery{}, err
	}
	return GetNextGatePassQuery{
		passType: passType,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// PassType returns the sequence namespace to preview.
func (q GetNextGatePassQuery) PassType() gatepass.PassType {
	return q.passType
}

// Validate ensures the query was created through the constructor.
func (q GetNextGatePassQuery) Validate() error {
	return q.guard.Validate(ErrGetNextGatePassQueryIsNotConstructed)
}

// GetNextGatePassQueryResponse is a non-binding preview of the next number.
type GetNextGatePassQueryResponse struct {
	Code          string
	PassType      string
	FinancialYear string
	Sequence      int
}
