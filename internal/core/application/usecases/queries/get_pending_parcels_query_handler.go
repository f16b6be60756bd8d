package queries

import (
	"context"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingParcelsQueryHandler reads a manager's approval queue from the
// database. The visibility rules are folded into the WHERE clause so the
// queue never shows unprocessed courier parcels or parcels claimed by
// another manager.
type GetPendingParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingParcelsQueryHandler creates a handler for approval queue queries.
func NewGetPendingParcelsQueryHandler(db *gorm.DB) GetPendingParcelsQueryHandler {
	return GetPendingParcelsQueryHandler{db: db}
}

// Handle executes the query. Results are ordered oldest first so the queue
// drains in submission order.
func (h GetPendingParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingParcelsQuery,
) ([]GetPendingParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetPendingParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number_code,
			recipient,
			transportation,
			returnable,
			submitter_id,
			assigned_manager_id,
			submitted_at
		FROM parcels
		WHERE status = ?
		  AND (transportation = ? OR logistics_processed)
		  AND (assigned_manager_id IS NULL OR assigned_manager_id = ?)
		ORDER BY submitted_at
	`, parcel.Submitted, parcel.ByHand, query.ManagerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingParcelsQueryResponse
		var id, submitterID uuid.UUID
		var assignedManagerID uuid.NullUUID

		err = rows.Scan(
			&id,
			&resp.Number,
			&resp.Recipient,
			&resp.Transportation,
			&resp.Returnable,
			&submitterID,
			&assignedManagerID,
			&resp.SubmittedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.SubmitterID, err = kernel.UUIDFromBytes(submitterID[:]); err != nil {
			return nil, err
		}
		if assignedManagerID.Valid {
			managerID, idErr := kernel.UUIDFromBytes(assignedManagerID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.AssignedManagerID = &managerID
		}

		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
