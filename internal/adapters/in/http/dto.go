package http

import (
	"time"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/parcel"
)

// returnDateLayout is the wire format for return dates. Only the day
// matters; overdue derivation works on day boundaries.
const returnDateLayout = "2006-01-02"

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ItemPayload struct {
	SerialNumber string  `json:"serialNumber"`
	Description  string  `json:"description"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
}

type DimensionPayload struct {
	Weight        float64 `json:"weight"`
	WeightUnit    string  `json:"weightUnit"`
	DimensionText string  `json:"dimensionText"`
	Purpose       string  `json:"purpose"`
}

type SubmitParcelRequest struct {
	SubmitterID    string             `json:"submitterId"`
	Recipient      string             `json:"recipient"`
	Transportation string             `json:"transportation"`
	Items          []ItemPayload      `json:"items"`
	Dimensions     []DimensionPayload `json:"dimensions"`
	Returnable     bool               `json:"returnable"`
	ReturnDate     string             `json:"returnDate"`
	ManagerID      string             `json:"managerId"`
}

type ProcessLogisticsRequest struct {
	CourierName           string             `json:"courierName"`
	CourierTrackingNumber string             `json:"courierTrackingNumber"`
	Dimensions            []DimensionPayload `json:"dimensions"`
	AfterPackingImageRefs []string           `json:"afterPackingImageRefs"`
}

type DecideParcelRequest struct {
	ManagerID string `json:"managerId"`
	Decision  string `json:"decision"`
	Reason    string `json:"reason"`
}

type ResubmitParcelRequest struct {
	ActorID        string             `json:"actorId"`
	Recipient      string             `json:"recipient"`
	Transportation string             `json:"transportation"`
	Items          []ItemPayload      `json:"items"`
	Dimensions     []DimensionPayload `json:"dimensions"`
	Returnable     bool               `json:"returnable"`
	ReturnDate     string             `json:"returnDate"`
	ManagerID      string             `json:"managerId"`
}

type DispatchParcelRequest struct {
	ActorID string `json:"actorId"`
}

type GenerateGatePassRequest struct {
	PassType string `json:"passType"`
}

type GatePassResponse struct {
	Code          string `json:"code"`
	PassType      string `json:"passType"`
	FinancialYear string `json:"financialYear"`
	Sequence      int    `json:"sequence"`
}

type DashboardSettingsRequest struct {
	Layout string `json:"layout"`
}

type DashboardSettingsResponse struct {
	UserID string `json:"userId"`
	Layout string `json:"layout"`
}

// ParcelResponse is the full representation of a parcel. The return status
// is the effective one: explicit when set, derived from the return date
// otherwise.
type ParcelResponse struct {
	ID                    string             `json:"id"`
	Number                string             `json:"number"`
	Status                string             `json:"status"`
	Transportation        string             `json:"transportation"`
	LogisticsProcessed    bool               `json:"logisticsProcessed"`
	CourierName           string             `json:"courierName,omitempty"`
	CourierTrackingNumber string             `json:"courierTrackingNumber,omitempty"`
	AfterPackingImageRefs []string           `json:"afterPackingImageRefs,omitempty"`
	Returnable            bool               `json:"returnable"`
	ReturnDate            string             `json:"returnDate,omitempty"`
	ReturnStatus          string             `json:"returnStatus,omitempty"`
	SubmitterID           string             `json:"submitterId"`
	Recipient             string             `json:"recipient"`
	AssignedManagerID     string             `json:"assignedManagerId,omitempty"`
	Items                 []ItemPayload      `json:"items"`
	Dimensions            []DimensionPayload `json:"dimensions,omitempty"`
	SubmittedAt           time.Time          `json:"submittedAt"`
	ApprovedAt            *time.Time         `json:"approvedAt,omitempty"`
	RejectedAt            *time.Time         `json:"rejectedAt,omitempty"`
	RejectionReason       string             `json:"rejectionReason,omitempty"`
	DispatchedAt          *time.Time         `json:"dispatchedAt,omitempty"`
	Resubmitted           bool               `json:"resubmitted"`
	PreviousRejection     string             `json:"previousRejection,omitempty"`
}

func toParcelResponse(p *parcel.Parcel, now time.Time) ParcelResponse {
	items := make([]ItemPayload, 0, len(p.Items()))
	for _, item := range p.Items() {
		items = append(items, ItemPayload{
			SerialNumber: item.SerialNumber(),
			Description:  item.Description(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice(),
		})
	}

	dimensions := make([]DimensionPayload, 0, len(p.Dimensions()))
	for _, dim := range p.Dimensions() {
		dimensions = append(dimensions, DimensionPayload{
			Weight:        dim.Weight(),
			WeightUnit:    dim.WeightUnit(),
			DimensionText: dim.DimensionText(),
			Purpose:       dim.Purpose(),
		})
	}

	resp := ParcelResponse{
		ID:                    p.ID().String(),
		Number:                p.Number().Code(),
		Status:                p.Status().String(),
		Transportation:        p.Transportation().String(),
		LogisticsProcessed:    p.LogisticsProcessed(),
		CourierName:           p.CourierName(),
		CourierTrackingNumber: p.CourierTrackingNumber(),
		AfterPackingImageRefs: p.AfterPackingImageRefs(),
		Returnable:            p.IsReturnable(),
		ReturnStatus:          p.EffectiveReturnStatus(now).String(),
		SubmitterID:           p.SubmitterID().String(),
		Recipient:             p.Recipient(),
		Items:                 items,
		Dimensions:            dimensions,
		SubmittedAt:           p.SubmittedAt(),
		ApprovedAt:            p.ApprovedAt(),
		RejectedAt:            p.RejectedAt(),
		RejectionReason:       p.RejectionReason(),
		DispatchedAt:          p.DispatchedAt(),
		Resubmitted:           p.Resubmitted(),
	}

	if p.ReturnDate() != nil {
		resp.ReturnDate = p.ReturnDate().Format(returnDateLayout)
	}
	if p.AssignedManager() != nil {
		resp.AssignedManagerID = p.AssignedManager().String()
	}
	if p.PreviousRejection() != nil {
		resp.PreviousRejection = p.PreviousRejection().String()
	}

	return resp
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(returnDateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseOptionalUUID(raw string) (*kernel.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func toItems(payloads []ItemPayload) ([]parcel.Item, error) {
	items := make([]parcel.Item, 0, len(payloads))
	for _, p := range payloads {
		item, err := parcel.NewItem(p.SerialNumber, p.Description, p.Quantity, p.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func toDimensions(payloads []DimensionPayload) ([]parcel.Dimension, error) {
	dimensions := make([]parcel.Dimension, 0, len(payloads))
	for _, p := range payloads {
		dim, err := parcel.NewDimension(p.Weight, p.WeightUnit, p.DimensionText, p.Purpose)
		if err != nil {
			return nil, err
		}
		dimensions = append(dimensions, dim)
	}
	return dimensions, nil
}
