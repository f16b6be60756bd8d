package queries

import (
	"context"
	"database/sql"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelHistoryQueryHandler reads the full parcel history from the
// database, newest submission first.
type GetParcelHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelHistoryQueryHandler creates a handler for history queries.
func NewGetParcelHistoryQueryHandler(db *gorm.DB) GetParcelHistoryQueryHandler {
	return GetParcelHistoryQueryHandler{db: db}
}

// Handle executes the query, applying the submitter filter when present.
func (h GetParcelHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetParcelHistoryQuery,
) ([]GetParcelHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			number_code,
			status,
			transportation,
			recipient,
			returnable,
			return_status,
			resubmitted,
			submitted_at,
			dispatched_at
		FROM parcels
	`
	args := make([]any, 0, 1)
	if query.SubmitterID() != nil {
		sqlText += ` WHERE submitter_id = ?`
		args = append(args, query.SubmitterID().Bytes())
	}
	sqlText += ` ORDER BY submitted_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]GetParcelHistoryQueryResponse, 0)
	for rows.Next() {
		var resp GetParcelHistoryQueryResponse
		var id uuid.UUID
		var status int
		var dispatchedAt sql.NullTime

		err = rows.Scan(
			&id,
			&resp.Number,
			&status,
			&resp.Transportation,
			&resp.Recipient,
			&resp.Returnable,
			&resp.ReturnStatus,
			&resp.Resubmitted,
			&resp.SubmittedAt,
			&dispatchedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.Status = parcel.Status(status).String()
		if dispatchedAt.Valid {
			at := dispatchedAt.Time
			resp.DispatchedAt = &at
		}

		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
