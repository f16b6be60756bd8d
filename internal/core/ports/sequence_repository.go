package ports

import (
	"context"
	"errors"

	"gatepass/internal/core/domain/model/gatepass"
)

// ErrAllocationUnavailable is returned when the sequence store cannot be
// reached. Callers must fail the surrounding operation; there is no fallback
// number generator.
var ErrAllocationUnavailable = errors.New("sequence allocation is unavailable")

// SequenceRepository is the gate-pass sequence allocator. Counters are scoped
// by (financial year, pass type), created lazily on first allocation, and
// never deleted.
type SequenceRepository interface {
	// Allocate atomically increments the counter for the key and returns the
	// new value. Two concurrent callers on the same key never observe the
	// same number, and numbers are strictly increasing with no gaps under
	// normal operation. A store failure yields ErrAllocationUnavailable.
	Allocate(ctx context.Context, financialYear gatepass.FinancialYear, passType gatepass.PassType) (int, error)

	// Current reads the last allocated value for the key without consuming a
	// number. Returns 0 for a key that has never allocated.
	Current(ctx context.Context, financialYear gatepass.FinancialYear, passType gatepass.PassType) (int, error)
}
