// Package staffrepo implements the read-side staff directory on Postgres.
// Accounts are provisioned outside this service; the workflow only looks
// actors up by id.
package staffrepo

import (
	"context"
	"errors"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/staff"
	"gatepass/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffDTO represents the database structure for staff members.
type StaffDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
	Role string    `gorm:"type:varchar(16);not null"`
}

// TableName specifies the database table name for staff entities.
func (StaffDTO) TableName() string {
	return "staff"
}

// GormStaffRepository implements StaffRepository using GORM.
type GormStaffRepository struct {
	db *gorm.DB
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// Get retrieves a staff member by ID.
func (r *GormStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func toDomain(dto StaffDTO) (*staff.Staff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := staff.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return staff.RestoreStaff(id, dto.Name, role)
}
