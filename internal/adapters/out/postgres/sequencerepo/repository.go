// Package sequencerepo implements the gate-pass sequence allocator on
// Postgres. Allocation is a single upsert that increments under row lock, so
// concurrent allocations on the same (financial year, pass type) key
// serialize in the database and never hand out duplicates.
package sequencerepo

import (
	"context"
	"errors"
	"fmt"

	"gatepass/internal/core/domain/model/gatepass"
	"gatepass/internal/core/ports"

	"gorm.io/gorm"
)

// SequenceCounterDTO represents one allocation counter row.
type SequenceCounterDTO struct {
	FinancialYear   string `gorm:"type:varchar(8);primaryKey"`
	PassType        string `gorm:"type:varchar(8);primaryKey"`
	CurrentSequence int    `gorm:"type:int;not null"`
}

// TableName specifies the database table name for sequence counters.
func (SequenceCounterDTO) TableName() string {
	return "sequence_counters"
}

// GormSequenceRepository implements SequenceRepository using GORM.
type GormSequenceRepository struct {
	db *gorm.DB
}

// NewGormSequenceRepository creates a new GORM sequence repository.
func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// Allocate increments the counter for the key and returns the new value,
// creating the counter at 1 on first use. Any database failure surfaces as
// ErrAllocationUnavailable; there is no fallback source of numbers.
func (r *GormSequenceRepository) Allocate(ctx context.Context, financialYear gatepass.FinancialYear, passType gatepass.PassType) (int, error) {
	var sequence int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO sequence_counters (financial_year, pass_type, current_sequence)
		VALUES (?, ?, 1)
		ON CONFLICT (financial_year, pass_type)
		DO UPDATE SET current_sequence = sequence_counters.current_sequence + 1
		RETURNING current_sequence
	`, financialYear.Code(), passType.String()).Scan(&sequence).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ports.ErrAllocationUnavailable, err)
	}

	return sequence, nil
}

// Current reads the last allocated value without consuming a number.
func (r *GormSequenceRepository) Current(ctx context.Context, financialYear gatepass.FinancialYear, passType gatepass.PassType) (int, error) {
	var dto SequenceCounterDTO
	err := r.db.WithContext(ctx).
		First(&dto, "financial_year = ? AND pass_type = ?", financialYear.Code(), passType.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %v", ports.ErrAllocationUnavailable, err)
	}

	return dto.CurrentSequence, nil
}
