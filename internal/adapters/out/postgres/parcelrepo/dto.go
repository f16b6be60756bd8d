// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. This package implements the repository pattern for the
// parcel domain aggregate, handling the conversion between domain entities and
// database representations.
package parcelrepo

import (
	"time"

	"gatepass/internal/core/domain/model/gatepass"
	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The gate pass number is stored in its canonical string form
// and re-parsed on load; items and dimensions live in child tables keyed by
// parcel and position.
type ParcelDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	NumberCode            string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	Status                int        `gorm:"type:int;not null;index"`
	Transportation        string     `gorm:"type:varchar(16);not null"`
	LogisticsProcessed    bool       `gorm:"not null"`
	CourierName           string     `gorm:"type:varchar(255)"`
	CourierTrackingNumber string     `gorm:"type:varchar(255)"`
	AfterPackingImageRefs []string   `gorm:"serializer:json"`
	Returnable            bool       `gorm:"not null"`
	ReturnDate            *time.Time
	ReturnStatus          string     `gorm:"type:varchar(16);not null"`
	SubmitterID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	Recipient             string     `gorm:"type:varchar(255);not null"`
	AssignedManagerID     *uuid.UUID `gorm:"type:uuid;index"`
	SubmittedAt           time.Time  `gorm:"not null"`
	ApprovedAt            *time.Time
	ApprovedBy            *uuid.UUID `gorm:"type:uuid"`
	RejectedAt            *time.Time
	RejectedBy            *uuid.UUID `gorm:"type:uuid"`
	RejectionReason       string     `gorm:"type:text"`
	DispatchedAt          *time.Time
	Resubmitted           bool           `gorm:"not null"`
	PreviousRejection     *uuid.UUID     `gorm:"type:uuid;index"`
	Version               int            `gorm:"type:int;not null"`
	Items                 []ItemDTO      `gorm:"foreignKey:ParcelID;constraint:OnDelete:CASCADE"`
	Dimensions            []DimensionDTO `gorm:"foreignKey:ParcelID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// ItemDTO represents one line item of a parcel. Position within the parcel
// is part of the key so ordering survives round trips.
type ItemDTO struct {
	ParcelID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position     int       `gorm:"primaryKey"`
	SerialNumber string    `gorm:"type:varchar(255)"`
	Description  string    `gorm:"type:varchar(255);not null"`
	Quantity     int       `gorm:"type:int;not null"`
	UnitPrice    float64   `gorm:"not null"`
}

// TableName specifies the database table name for parcel items.
func (ItemDTO) TableName() string {
	return "parcel_items"
}

// DimensionDTO represents one dimension record of a parcel. Logistics may
// append records after submission.
type DimensionDTO struct {
	ParcelID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position      int       `gorm:"primaryKey"`
	Weight        float64   `gorm:"not null"`
	WeightUnit    string    `gorm:"type:varchar(16);not null"`
	DimensionText string    `gorm:"type:varchar(255)"`
	Purpose       string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for parcel dimensions.
func (DimensionDTO) TableName() string {
	return "parcel_dimensions"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	parcelID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ParcelID:     parcelID,
			Position:     i,
			SerialNumber: item.SerialNumber(),
			Description:  item.Description(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice(),
		})
	}

	dimensions := make([]DimensionDTO, 0, len(aggregate.Dimensions()))
	for i, dim := range aggregate.Dimensions() {
		dimensions = append(dimensions, DimensionDTO{
			ParcelID:      parcelID,
			Position:      i,
			Weight:        dim.Weight(),
			WeightUnit:    dim.WeightUnit(),
			DimensionText: dim.DimensionText(),
			Purpose:       dim.Purpose(),
		})
	}

	return ParcelDTO{
		ID:                    parcelID,
		NumberCode:            aggregate.Number().Code(),
		Status:                int(aggregate.Status()),
		Transportation:        aggregate.Transportation().String(),
		LogisticsProcessed:    aggregate.LogisticsProcessed(),
		CourierName:           aggregate.CourierName(),
		CourierTrackingNumber: aggregate.CourierTrackingNumber(),
		AfterPackingImageRefs: aggregate.AfterPackingImageRefs(),
		Returnable:            aggregate.IsReturnable(),
		ReturnDate:            aggregate.ReturnDate(),
		ReturnStatus:          aggregate.ReturnStatus().String(),
		SubmitterID:           aggregate.SubmitterID().Bytes(),
		Recipient:             aggregate.Recipient(),
		AssignedManagerID:     optionalUUID(aggregate.AssignedManager()),
		SubmittedAt:           aggregate.SubmittedAt(),
		ApprovedAt:            aggregate.ApprovedAt(),
		ApprovedBy:            optionalUUID(aggregate.ApprovedBy()),
		RejectedAt:            aggregate.RejectedAt(),
		RejectedBy:            optionalUUID(aggregate.RejectedBy()),
		RejectionReason:       aggregate.RejectionReason(),
		DispatchedAt:          aggregate.DispatchedAt(),
		Resubmitted:           aggregate.Resubmitted(),
		PreviousRejection:     optionalUUID(aggregate.PreviousRejection()),
		Version:               aggregate.Version(),
		Items:                 items,
		Dimensions:            dimensions,
	}
}

// toDomain converts a database DTO back to a parcel domain aggregate.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := gatepass.ParseNumber(dto.NumberCode)
	if err != nil {
		return nil, err
	}

	transportation, err := parcel.TransportationTypeFromString(dto.Transportation)
	if err != nil {
		return nil, err
	}

	returnStatus, err := parcel.ReturnStatusFromString(dto.ReturnStatus)
	if err != nil {
		return nil, err
	}

	submitterID, err := kernel.UUIDFromBytes(dto.SubmitterID[:])
	if err != nil {
		return nil, err
	}

	assignedManagerID, err := optionalKernelUUID(dto.AssignedManagerID)
	if err != nil {
		return nil, err
	}
	approvedBy, err := optionalKernelUUID(dto.ApprovedBy)
	if err != nil {
		return nil, err
	}
	rejectedBy, err := optionalKernelUUID(dto.RejectedBy)
	if err != nil {
		return nil, err
	}
	previousRejection, err := optionalKernelUUID(dto.PreviousRejection)
	if err != nil {
		return nil, err
	}

	items := make([]parcel.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := parcel.NewItem(itemDTO.SerialNumber, itemDTO.Description,
			itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	dimensions := make([]parcel.Dimension, 0, len(dto.Dimensions))
	for _, dimDTO := range dto.Dimensions {
		dim, dimErr := parcel.NewDimension(dimDTO.Weight, dimDTO.WeightUnit,
			dimDTO.DimensionText, dimDTO.Purpose)
		if dimErr != nil {
			return nil, dimErr
		}
		dimensions = append(dimensions, dim)
	}

	return parcel.RestoreParcel(parcel.RestoreParcelParams{
		ID:                    id,
		Number:                number,
		Status:                parcel.Status(dto.Status),
		Transportation:        transportation,
		LogisticsProcessed:    dto.LogisticsProcessed,
		CourierName:           dto.CourierName,
		CourierTrackingNumber: dto.CourierTrackingNumber,
		AfterPackingImageRefs: dto.AfterPackingImageRefs,
		Returnable:            dto.Returnable,
		ReturnDate:            dto.ReturnDate,
		ReturnStatus:          returnStatus,
		SubmitterID:           submitterID,
		Recipient:             dto.Recipient,
		AssignedManagerID:     assignedManagerID,
		Items:                 items,
		Dimensions:            dimensions,
		SubmittedAt:           dto.SubmittedAt,
		ApprovedAt:            dto.ApprovedAt,
		ApprovedBy:            approvedBy,
		RejectedAt:            dto.RejectedAt,
		RejectedBy:            rejectedBy,
		RejectionReason:       dto.RejectionReason,
		DispatchedAt:          dto.DispatchedAt,
		Resubmitted:           dto.Resubmitted,
		PreviousRejection:     previousRejection,
		Version:               dto.Version,
	})
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
