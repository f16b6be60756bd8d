// Package settingsrepo persists per-user dashboard settings on Postgres.
// Settings follow an explicit load/save lifecycle: every read hits the
// store, every change is written back in full.
package settingsrepo

import (
	"context"
	"errors"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/ports"
	"gatepass/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DashboardSettingsDTO represents one user's saved dashboard layout.
type DashboardSettingsDTO struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Layout string    `gorm:"type:jsonb;not null"`
}

// TableName specifies the database table name for dashboard settings.
func (DashboardSettingsDTO) TableName() string {
	return "dashboard_settings"
}

// GormSettingsStore implements SettingsStore using GORM.
type GormSettingsStore struct {
	db *gorm.DB
}

// NewGormSettingsStore creates a new GORM settings store.
func NewGormSettingsStore(db *gorm.DB) *GormSettingsStore {
	return &GormSettingsStore{db: db}
}

// Load retrieves the settings for a user.
func (s *GormSettingsStore) Load(ctx context.Context, userID kernel.UUID) (ports.DashboardSettings, error) {
	if err := userID.Validate(); err != nil {
		return ports.DashboardSettings{}, err
	}

	var dto DashboardSettingsDTO
	if err := s.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.DashboardSettings{}, errs.NewObjectNotFoundError("dashboardSettings", userID.String())
		}
		return ports.DashboardSettings{}, err
	}

	return ports.DashboardSettings{
		UserID: userID,
		Layout: dto.Layout,
	}, nil
}

// Save creates or replaces the settings for a user.
func (s *GormSettingsStore) Save(ctx context.Context, settings ports.DashboardSettings) error {
	if err := settings.UserID.Validate(); err != nil {
		return err
	}

	dto := DashboardSettingsDTO{
		UserID: settings.UserID.Bytes(),
		Layout: settings.Layout,
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"layout"}),
		}).
		Create(&dto).Error
}
