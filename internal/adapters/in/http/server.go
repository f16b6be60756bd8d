// Package http exposes the parcel workflow over a JSON API. Handlers
// translate between wire payloads and commands/queries; all business rules
// stay in the core.
package http

import (
	"errors"
	"net/http"
	"time"

	"gatepass/internal/core/application/usecases/commands"
	"gatepass/internal/core/application/usecases/queries"
	"gatepass/internal/core/domain/model/gatepass"
	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/core/domain/model/parcel"
	"gatepass/internal/core/domain/services"
	"gatepass/internal/core/ports"
	"gatepass/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitParcelHandler     commands.SubmitParcelCommandHandler
	processLogisticsHandler commands.ProcessLogisticsCommandHandler
	decideParcelHandler     commands.DecideParcelCommandHandler
	resubmitParcelHandler   commands.ResubmitParcelCommandHandler
	dispatchParcelHandler   commands.DispatchParcelCommandHandler
	confirmReturnHandler    commands.ConfirmReturnCommandHandler
	generateGatePassHandler commands.GenerateGatePassCommandHandler

	// Query handlers
	pendingParcelsHandler queries.GetPendingParcelsQueryHandler
	needsAttentionHandler queries.GetNeedsAttentionQueryHandler
	parcelHistoryHandler  queries.GetParcelHistoryQueryHandler
	nextGatePassHandler   queries.GetNextGatePassQueryHandler

	settingsStore ports.SettingsStore
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitParcelHandler commands.SubmitParcelCommandHandler,
	processLogisticsHandler commands.ProcessLogisticsCommandHandler,
	decideParcelHandler commands.DecideParcelCommandHandler,
	resubmitParcelHandler commands.ResubmitParcelCommandHandler,
	dispatchParcelHandler commands.DispatchParcelCommandHandler,
	confirmReturnHandler commands.ConfirmReturnCommandHandler,
	generateGatePassHandler commands.GenerateGatePassCommandHandler,
	pendingParcelsHandler queries.GetPendingParcelsQueryHandler,
	needsAttentionHandler queries.GetNeedsAttentionQueryHandler,
	parcelHistoryHandler queries.GetParcelHistoryQueryHandler,
	nextGatePassHandler queries.GetNextGatePassQueryHandler,
	settingsStore ports.SettingsStore,
) *Server {
	return &Server{
		submitParcelHandler:     submitParcelHandler,
		processLogisticsHandler: processLogisticsHandler,
		decideParcelHandler:     decideParcelHandler,
		resubmitParcelHandler:   resubmitParcelHandler,
		dispatchParcelHandler:   dispatchParcelHandler,
		confirmReturnHandler:    confirmReturnHandler,
		generateGatePassHandler: generateGatePassHandler,
		pendingParcelsHandler:   pendingParcelsHandler,
		needsAttentionHandler:   needsAttentionHandler,
		parcelHistoryHandler:    parcelHistoryHandler,
		nextGatePassHandler:     nextGatePassHandler,
		settingsStore:           settingsStore,
	}
}

// RegisterRoutes mounts every route on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", NormalizeJSONKeys)
	api.POST("/parcels", s.SubmitParcel)
	api.POST("/parcels/:id/logistics", s.ProcessLogistics)
	api.POST("/parcels/:id/decision", s.DecideParcel)
	api.POST("/parcels/:id/resubmit", s.ResubmitParcel)
	api.POST("/parcels/:id/dispatch", s.DispatchParcel)
	api.POST("/parcels/:id/return", s.ConfirmReturn)
	api.POST("/gatepass-numbers", s.GenerateGatePass)
	api.GET("/gatepass-numbers/next", s.GetNextGatePass)
	api.GET("/managers/:id/pending", s.GetPendingParcels)
	api.GET("/parcels/needs-attention", s.GetNeedsAttention)
	api.GET("/parcels/history", s.GetParcelHistory)
	api.GET("/users/:id/dashboard", s.GetDashboardSettings)
	api.PUT("/users/:id/dashboard", s.PutDashboardSettings)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SubmitParcel handles POST /api/v1/parcels.
func (s *Server) SubmitParcel(ctx echo.Context) error {
	var req SubmitParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	submitterID, err := kernel.UUIDFromString(req.SubmitterID)
	if err != nil {
		return badRequest(ctx, "submitterId must be a UUID")
	}
	transportation, err := parcel.TransportationTypeFromString(req.Transportation)
	if err != nil {
		return respondError(ctx, err)
	}
	items, err := toItems(req.Items)
	if err != nil {
		return respondError(ctx, err)
	}
	dimensions, err := toDimensions(req.Dimensions)
	if err != nil {
		return respondError(ctx, err)
	}
	returnDate, err := parseOptionalDate(req.ReturnDate)
	if err != nil {
		return badRequest(ctx, "returnDate must be formatted as YYYY-MM-DD")
	}
	managerID, err := parseOptionalUUID(req.ManagerID)
	if err != nil {
		return badRequest(ctx, "managerId must be a UUID")
	}

	cmd, err := commands.NewSubmitParcelCommand(submitterID, req.Recipient, transportation,
		items, dimensions, req.Returnable, returnDate, managerID)
	if err != nil {
		return respondError(ctx, err)
	}

	submitted, err := s.submitParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toParcelResponse(submitted, time.Now()))
}

// ProcessLogistics handles POST /api/v1/parcels/:id/logistics.
func (s *Server) ProcessLogistics(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "parcel id must be a UUID")
	}

	var req ProcessLogisticsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	dimensions, err := toDimensions(req.Dimensions)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewProcessLogisticsCommand(parcelID, req.CourierName,
		req.CourierTrackingNumber, dimensions, req.AfterPackingImageRefs)
	if err != nil {
		return respondError(ctx, err)
	}

	processed, err := s.processLogisticsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelResponse(processed, time.Now()))
}

// DecideParcel handles POST /api/v1/parcels/:id/decision.
func (s *Server) DecideParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "parcel id must be a UUID")
	}

	var req DecideParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	managerID, err := kernel.UUIDFromString(req.ManagerID)
	if err != nil {
		return badRequest(ctx, "managerId must be a UUID")
	}

	cmd, err := commands.NewDecideParcelCommand(parcelID, managerID,
		commands.Decision(req.Decision), req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	decided, err := s.decideParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelResponse(decided, time.Now()))
}

// ResubmitParcel handles POST /api/v1/parcels/:id/resubmit.
func (s *Server) ResubmitParcel(ctx echo.Context) error {
	rejectedID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "parcel id must be a UUID")
	}

	var req ResubmitParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "actorId must be a UUID")
	}
	transportation, err := parcel.TransportationTypeFromString(req.Transportation)
	if err != nil {
		return respondError(ctx, err)
	}
	items, err := toItems(req.Items)
	if err != nil {
		return respondError(ctx, err)
	}
	dimensions, err := toDimensions(req.Dimensions)
	if err != nil {
		return respondError(ctx, err)
	}
	returnDate, err := parseOptionalDate(req.ReturnDate)
	if err != nil {
		return badRequest(ctx, "returnDate must be formatted as YYYY-MM-DD")
	}
	managerID, err := parseOptionalUUID(req.ManagerID)
	if err != nil {
		return badRequest(ctx, "managerId must be a UUID")
	}

	cmd, err := commands.NewResubmitParcelCommand(rejectedID, actorID, req.Recipient,
		transportation, items, dimensions, req.Returnable, returnDate, managerID)
	if err != nil {
		return respondError(ctx, err)
	}

	resubmitted, err := s.resubmitParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toParcelResponse(resubmitted, time.Now()))
}

// DispatchParcel handles POST /api/v1/parcels/:id/dispatch.
func (s *Server) DispatchParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "parcel id must be a UUID")
	}

	var req DispatchParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "actorId must be a UUID")
	}

	cmd, err := commands.NewDispatchParcelCommand(parcelID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	dispatched, err := s.dispatchParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelResponse(dispatched, time.Now()))
}

// ConfirmReturn handles POST /api/v1/parcels/:id/return.
func (s *Server) ConfirmReturn(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "parcel id must be a UUID")
	}

	cmd, err := commands.NewConfirmReturnCommand(parcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	returned, err := s.confirmReturnHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelResponse(returned, time.Now()))
}

// GenerateGatePass handles POST /api/v1/gatepass-numbers.
func (s *Server) GenerateGatePass(ctx echo.Context) error {
	var req GenerateGatePassRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	passType, err := gatepass.PassTypeFromString(req.PassType)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewGenerateGatePassCommand(passType)
	if err != nil {
		return respondError(ctx, err)
	}

	number, err := s.generateGatePassHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, GatePassResponse{
		Code:          number.Code(),
		PassType:      number.PassType().String(),
		FinancialYear: number.FinancialYear().Code(),
		Sequence:      number.Sequence(),
	})
}

// GetNextGatePass handles GET /api/v1/gatepass-numbers/next. The preview is
// non-binding: the number is not reserved.
func (s *Server) GetNextGatePass(ctx echo.Context) error {
	passType, err := gatepass.PassTypeFromString(ctx.QueryParam("passType"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetNextGatePassQuery(passType)
	if err != nil {
		return respondError(ctx, err)
	}

	preview, err := s.nextGatePassHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, GatePassResponse{
		Code:          preview.Code,
		PassType:      preview.PassType,
		FinancialYear: preview.FinancialYear,
		Sequence:      preview.Sequence,
	})
}

// GetPendingParcels handles GET /api/v1/managers/:id/pending.
func (s *Server) GetPendingParcels(ctx echo.Context) error {
	managerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "manager id must be a UUID")
	}

	query, err := queries.NewGetPendingParcelsQuery(managerID)
	if err != nil {
		return respondError(ctx, err)
	}

	pending, err := s.pendingParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pendingToResponse(pending))
}

// GetNeedsAttention handles GET /api/v1/parcels/needs-attention.
func (s *Server) GetNeedsAttention(ctx echo.Context) error {
	submitterID, err := kernel.UUIDFromString(ctx.QueryParam("submitterId"))
	if err != nil {
		return badRequest(ctx, "submitterId must be a UUID")
	}

	query, err := queries.NewGetNeedsAttentionQuery(submitterID)
	if err != nil {
		return respondError(ctx, err)
	}

	attention, err := s.needsAttentionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, attentionToResponse(attention))
}

// GetParcelHistory handles GET /api/v1/parcels/history.
func (s *Server) GetParcelHistory(ctx echo.Context) error {
	submitterID, err := parseOptionalUUID(ctx.QueryParam("submitterId"))
	if err != nil {
		return badRequest(ctx, "submitterId must be a UUID")
	}

	query, err := queries.NewGetParcelHistoryQuery(submitterID)
	if err != nil {
		return respondError(ctx, err)
	}

	history, err := s.parcelHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, historyToResponse(history))
}

// GetDashboardSettings handles GET /api/v1/users/:id/dashboard.
func (s *Server) GetDashboardSettings(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "user id must be a UUID")
	}

	settings, err := s.settingsStore.Load(ctx.Request().Context(), userID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardSettingsResponse{
		UserID: settings.UserID.String(),
		Layout: settings.Layout,
	})
}

// PutDashboardSettings handles PUT /api/v1/users/:id/dashboard.
func (s *Server) PutDashboardSettings(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "user id must be a UUID")
	}

	var req DashboardSettingsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	err = s.settingsStore.Save(ctx.Request().Context(), ports.DashboardSettings{
		UserID: userID,
		Layout: req.Layout,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pendingToResponse(rows []queries.GetPendingParcelsQueryResponse) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		entry := map[string]any{
			"id":             row.ID.String(),
			"number":         row.Number,
			"recipient":      row.Recipient,
			"transportation": row.Transportation,
			"returnable":     row.Returnable,
			"submitterId":    row.SubmitterID.String(),
			"submittedAt":    row.SubmittedAt,
		}
		if row.AssignedManagerID != nil {
			entry["assignedManagerId"] = row.AssignedManagerID.String()
		}
		out = append(out, entry)
	}
	return out
}

func attentionToResponse(rows []queries.GetNeedsAttentionQueryResponse) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, map[string]any{
			"id":              row.ID.String(),
			"number":          row.Number,
			"recipient":       row.Recipient,
			"rejectionReason": row.RejectionReason,
			"rejectedAt":      row.RejectedAt,
		})
	}
	return out
}

func historyToResponse(rows []queries.GetParcelHistoryQueryResponse) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		entry := map[string]any{
			"id":             row.ID.String(),
			"number":         row.Number,
			"status":         row.Status,
			"transportation": row.Transportation,
			"recipient":      row.Recipient,
			"returnable":     row.Returnable,
			"resubmitted":    row.Resubmitted,
			"submittedAt":    row.SubmittedAt,
		}
		if row.ReturnStatus != "" {
			entry["returnStatus"] = row.ReturnStatus
		}
		if row.DispatchedAt != nil {
			entry["dispatchedAt"] = row.DispatchedAt
		}
		out = append(out, entry)
	}
	return out
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps core errors onto the HTTP taxonomy: validation 400,
// unknown ids 404, guard and version conflicts 409, allocator down 503.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, ports.ErrAllocationUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, ports.ErrConcurrentModification),
		errors.Is(err, parcel.ErrInvalidTransition),
		errors.Is(err, commands.ErrNotOriginalSubmitter),
		errors.Is(err, commands.ErrAlreadyResubmitted),
		errors.Is(err, commands.ErrActorNotPermitted):
		status = http.StatusConflict
	case errors.Is(err, services.ErrUnknownManager),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, gatepass.ErrInvalidNumberFormat):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
