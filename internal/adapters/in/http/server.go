// Package http is the inbound HTTP adapter: thin echo handlers that parse
// requests, call the application layer, and translate domain errors to
// status codes. Authentication is assumed done by the outer boundary.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/application/usecases/commands"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/application/usecases/queries"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/entitlement"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/kernel"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/listing"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/model/request"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createListingHandler    commands.CreateListingCommandHandler
	submitRequestHandler    commands.SubmitRequestCommandHandler
	approveRequestHandler   commands.ApproveRequestCommandHandler
	rejectRequestHandler    commands.RejectRequestCommandHandler
	advanceListingHandler   commands.AdvanceListingCommandHandler
	confirmDeliveryHandler  commands.ConfirmDeliveryCommandHandler
	reopenListingHandler    commands.ReopenListingCommandHandler
	activateGrantHandler    commands.ActivateGrantCommandHandler
	registerCourierHandler  commands.RegisterCourierCommandHandler
	getOpenListingsHandler  queries.GetOpenListingsQueryHandler
	getListingRequests      queries.GetListingRequestsQueryHandler
	getActiveGrantHandler   queries.GetActiveGrantQueryHandler
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(
	createListingHandler commands.CreateListingCommandHandler,
	submitRequestHandler commands.SubmitRequestCommandHandler,
	approveRequestHandler commands.ApproveRequestCommandHandler,
	rejectRequestHandler commands.RejectRequestCommandHandler,
	advanceListingHandler commands.AdvanceListingCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	reopenListingHandler commands.ReopenListingCommandHandler,
	activateGrantHandler commands.ActivateGrantCommandHandler,
	registerCourierHandler commands.RegisterCourierCommandHandler,
	getOpenListingsHandler queries.GetOpenListingsQueryHandler,
	getListingRequests queries.GetListingRequestsQueryHandler,
	getActiveGrantHandler queries.GetActiveGrantQueryHandler,
) *Server {
	return &Server{
		createListingHandler:   createListingHandler,
		submitRequestHandler:   submitRequestHandler,
		approveRequestHandler:  approveRequestHandler,
		rejectRequestHandler:   rejectRequestHandler,
		advanceListingHandler:  advanceListingHandler,
		confirmDeliveryHandler: confirmDeliveryHandler,
		reopenListingHandler:   reopenListingHandler,
		activateGrantHandler:   activateGrantHandler,
		registerCourierHandler: registerCourierHandler,
		getOpenListingsHandler: getOpenListingsHandler,
		getListingRequests:     getListingRequests,
		getActiveGrantHandler:  getActiveGrantHandler,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/listings", s.CreateListing)
	api.GET("/listings", s.GetListings)
	api.POST("/listings/:id/requests", s.SubmitRequest)
	api.GET("/listings/:id/requests", s.GetListingRequests)
	api.PUT("/listings/:id/status", s.UpdateListingStatus)
	api.POST("/listings/:id/reopen", s.ReopenListing)
	api.POST("/requests/:id/approve", s.ApproveRequest)
	api.POST("/requests/:id/reject", s.RejectRequest)
	api.POST("/couriers", s.RegisterCourier)
	api.POST("/grants", s.ActivateGrant)
	api.GET("/users/:id/grant", s.GetActiveGrant)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateListing handles POST /api/v1/listings.
func (s *Server) CreateListing(ctx echo.Context) error {
	var body NewListing
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(body.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner_id: "+err.Error())
	}

	route, err := listing.NewRoute(
		body.PickupCountry, body.DestCountry, body.Address,
		body.ReceiverName, body.ReceiverPhone)
	if err != nil {
		return badRequest(ctx, "Invalid route: "+err.Error())
	}

	listingID := kernel.NewUUID()

	cmd, err := commands.NewCreateListingCommand(listingID, ownerID, route, body.Weight, body.Fee)
	if err != nil {
		return badRequest(ctx, "Invalid listing data: "+err.Error())
	}

	if err = s.createListingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": listingID.String()})
}

// GetListings handles GET /api/v1/listings.
func (s *Server) GetListings(ctx echo.Context) error {
	query := queries.NewGetOpenListingsQuery()

	feed, err := s.getOpenListingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]Listing, len(feed))
	for i, row := range feed {
		response[i] = Listing{
			ID:            row.ID.String(),
			OwnerID:       row.OwnerID.String(),
			PickupCountry: row.PickupCountry,
			DestCountry:   row.DestCountry,
			Address:       row.Address,
			ReceiverName:  row.ReceiverName,
			Weight:        row.Weight,
			Fee:           row.Fee,
			RankingScore:  row.RankingScore,
			Status:        row.DisplayStatus,
			CreatedAt:     row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitRequest handles POST /api/v1/listings/:id/requests.
func (s *Server) SubmitRequest(ctx echo.Context) error {
	listingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid listing id: "+err.Error())
	}

	var body NewPickupRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(body.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier_id: "+err.Error())
	}

	requestID := kernel.NewUUID()

	cmd, err := commands.NewSubmitRequestCommand(requestID, listingID, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	if err = s.submitRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetListingRequests handles GET /api/v1/listings/:id/requests.
func (s *Server) GetListingRequests(ctx echo.Context) error {
	listingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid listing id: "+err.Error())
	}

	query, err := queries.NewGetListingRequestsQuery(listingID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	candidates, err := s.getListingRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]PickupRequest, len(candidates))
	for i, row := range candidates {
		response[i] = PickupRequest{
			ID:                   row.RequestID.String(),
			CourierID:            row.CourierID.String(),
			CourierName:          row.CourierName,
			CourierRating:        row.CourierRating,
			CompletedDeliveries:  row.CompletedDeliveries,
			AverageDeliveryHours: row.AverageDeliveryHours,
			Status:               row.Status,
			CreatedAt:            row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateListingStatus handles PUT /api/v1/listings/:id/status. A DELIVERED
// target is the owner's confirmation; every other target is a courier
// progression step.
func (s *Server) UpdateListingStatus(ctx echo.Context) error {
	listingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid listing id: "+err.Error())
	}

	var body StatusUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(body.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor_id: "+err.Error())
	}

	next, err := listing.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	if next == listing.Delivered {
		cmd, cmdErr := commands.NewConfirmDeliveryCommand(listingID, actorID)
		if cmdErr != nil {
			return badRequest(ctx, "Invalid confirmation: "+cmdErr.Error())
		}

		if err = s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
			return domainError(ctx, err)
		}

		return ctx.NoContent(http.StatusOK)
	}

	cmd, err := commands.NewAdvanceListingCommand(listingID, actorID, next)
	if err != nil {
		return badRequest(ctx, "Invalid transition: "+err.Error())
	}

	if err = s.advanceListingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ReopenListing handles POST /api/v1/listings/:id/reopen.
func (s *Server) ReopenListing(ctx echo.Context) error {
	listingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid listing id: "+err.Error())
	}

	var body ReopenListing
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(body.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner_id: "+err.Error())
	}

	cmd, err := commands.NewReopenListingCommand(listingID, ownerID)
	if err != nil {
		return badRequest(ctx, "Invalid reopen data: "+err.Error())
	}

	if err = s.reopenListingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ApproveRequest handles POST /api/v1/requests/:id/approve.
func (s *Server) ApproveRequest(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid request id: "+err.Error())
	}

	cmd, err := commands.NewApproveRequestCommand(requestID)
	if err != nil {
		return badRequest(ctx, "Invalid approval: "+err.Error())
	}

	if err = s.approveRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RejectRequest handles POST /api/v1/requests/:id/reject.
func (s *Server) RejectRequest(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid request id: "+err.Error())
	}

	cmd, err := commands.NewRejectRequestCommand(requestID)
	if err != nil {
		return badRequest(ctx, "Invalid rejection: "+err.Error())
	}

	if err = s.rejectRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RegisterCourier handles POST /api/v1/couriers.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var body NewCourier
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID := kernel.NewUUID()

	cmd, err := commands.NewRegisterCourierCommand(courierID, body.Name)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	if err = s.registerCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": courierID.String()})
}

// ActivateGrant handles POST /api/v1/grants.
func (s *Server) ActivateGrant(ctx echo.Context) error {
	var body NewGrant
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	holderID, err := kernel.UUIDFromString(body.HolderID)
	if err != nil {
		return badRequest(ctx, "Invalid holder_id: "+err.Error())
	}

	planID, err := kernel.UUIDFromString(body.PlanID)
	if err != nil {
		return badRequest(ctx, "Invalid plan_id: "+err.Error())
	}

	grantID := kernel.NewUUID()

	cmd, err := commands.NewActivateGrantCommand(grantID, holderID, planID)
	if err != nil {
		return badRequest(ctx, "Invalid grant data: "+err.Error())
	}

	if err = s.activateGrantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": grantID.String()})
}

// GetActiveGrant handles GET /api/v1/users/:id/grant.
func (s *Server) GetActiveGrant(ctx echo.Context) error {
	holderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	query, err := queries.NewGetActiveGrantQuery(holderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	grant, err := s.getActiveGrantHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Grant{
		ID:             grant.GrantID.String(),
		PlanName:       grant.PlanName,
		PlanRole:       grant.PlanRole,
		IsPremium:      grant.IsPremium,
		RemainingUsage: grant.RemainingUsage,
		ExpiresAt:      grant.ExpiresAt,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps core errors to status codes. Unrecognized errors become
// 500 with a generic message so internals do not leak.
func domainError(ctx echo.Context, err error) error {
	var code int

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, entitlement.ErrQuotaExhausted):
		code = http.StatusPaymentRequired
	case errors.Is(err, listing.ErrAlreadyAssigned),
		errors.Is(err, listing.ErrNotOpenForRequests),
		errors.Is(err, request.ErrRequestNotPending):
		code = http.StatusConflict
	case errors.Is(err, commands.ErrNotAssignedCourier),
		errors.Is(err, commands.ErrNotListingOwner):
		code = http.StatusForbidden
	case errors.Is(err, listing.ErrInvalidStatus),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
