package ports

import (
	"context"

	"gatepass/internal/core/domain/model/kernel"
)

// DashboardSettings is a user's saved dashboard layout. The service only
// stores and returns it; rendering is a client concern.
type DashboardSettings struct {
	UserID kernel.UUID
	Layout string // opaque JSON document owned by the client
}

// SettingsStore persists per-user dashboard settings with an explicit
// load/save lifecycle. There is no ambient cached copy; callers load what
// they need and save what they change.
type SettingsStore interface {
	// Load returns the settings for a user, or an ObjectNotFound error when
	// the user never saved any.
	Load(ctx context.Context, userID kernel.UUID) (DashboardSettings, error)

	// Save creates or replaces the settings for a user.
	Save(ctx context.Context, settings DashboardSettings) error
}
