package parcelrepo

import (
	"context"
	"errors"
	"time"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/parcel"
	"gatepass/internal/core/ports"
	"gatepass/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel with its items and dimensions to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel conditioned on the version it was loaded
// with. The row update carries version+1; zero rows affected means either
// the parcel is gone or another writer got there first.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	loadedVersion := aggregate.Version()
	dto := fromDomain(aggregate)
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Omit(clause.Associations).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&ParcelDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("parcel", aggregate.ID().String())
		}
		return ports.ErrConcurrentModification
	}

	// Items are immutable after submission; only dimensions can grow, so
	// they are rewritten wholesale.
	if err := r.db.WithContext(ctx).
		Where("parcel_id = ?", dto.ID).Delete(&DimensionDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Dimensions) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Dimensions).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID, complete with items and dimensions.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetSupersededBy retrieves the parcel that superseded the given rejection.
func (r *GormParcelRepository) GetSupersededBy(ctx context.Context, rejectedID kernel.UUID) (*parcel.Parcel, error) {
	if err := rejectedID.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	err := r.preloaded(ctx).First(&dto, "previous_rejection = ?", rejectedID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("previousRejection", rejectedID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOverdueReturnCandidates retrieves dispatched returnable parcels with no
// explicit return status whose return date fell before the start of asOf's day.
func (r *GormParcelRepository) GetOverdueReturnCandidates(ctx context.Context, asOf time.Time) ([]*parcel.Parcel, error) {
	cutoff := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())

	var dtos []ParcelDTO
	err := r.preloaded(ctx).
		Where("status = ? AND returnable AND return_status = ? AND return_date < ?",
			int(parcel.Dispatched), parcel.ReturnStatusNone.String(), cutoff).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}

func (r *GormParcelRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Dimensions", func(db *gorm.DB) *gorm.DB { return db.Order("position") })
}
