package queries

import (
	"context"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNeedsAttentionQueryHandler reads the rejected-and-not-yet-resubmitted
// list for one employee. Supersession is detected through the
// previous_rejection back-reference on the successor parcel.
type GetNeedsAttentionQueryHandler struct {
	db *gorm.DB
}

// NewGetNeedsAttentionQueryHandler creates a handler for needs-attention queries.
func NewGetNeedsAttentionQueryHandler(db *gorm.DB) GetNeedsAttentionQueryHandler {
	return GetNeedsAttentionQueryHandler{db: db}
}

// Handle executes the query, most recent rejection first.
func (h GetNeedsAttentionQueryHandler) Handle(
	ctx context.Context,
	query GetNeedsAttentionQuery,
) ([]GetNeedsAttentionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetNeedsAttentionQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.number_code,
			p.recipient,
			p.rejection_reason,
			p.rejected_at
		FROM parcels p
		WHERE p.status = ?
		  AND p.submitter_id = ?
		  AND NOT EXISTS (
			SELECT 1 FROM parcels successor
			WHERE successor.previous_rejection = p.id
		  )
		ORDER BY p.rejected_at DESC
	`, parcel.Rejected, query.SubmitterID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetNeedsAttentionQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Number,
			&resp.Recipient,
			&resp.RejectionReason,
			&resp.RejectedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
