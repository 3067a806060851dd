package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gatherly/gatherly-api/internal/api/handler/v1/request"
	"github.com/gatherly/gatherly-api/internal/api/handler/v1/response"
	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/service"
)

type TicketService interface {
	CreateTicketType(ctx context.Context, ticketType domain.TicketType, callerID uint) (domain.TicketType, error)
	ListEventTicketTypes(ctx context.Context, eventID uint) ([]domain.TicketType, error)
	Purchase(ctx context.Context, buyerID, ticketTypeID uint, buyerInfo domain.BuyerInfo) (domain.Ticket, error)
	ListUserTickets(ctx context.Context, callerID, userID uint) ([]domain.Ticket, error)
}

type TicketHandler struct {
	svc  TicketService
	uSvc UserService
}

func NewTicketHandler(svc TicketService, uSvc UserService) *TicketHandler {
	return &TicketHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateTicketType godoc
// @Summary      Create a ticket type for an event
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      request.CreateTicketTypeRequest true "request body"
// @Success      201      {object}  domain.TicketType
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /tickets/types [post]
func (h *TicketHandler) HandleCreateTicketType(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateTicketTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ticketType, err := h.svc.CreateTicketType(ctx.Request.Context(), req.ToTicketType(), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", req.EventID))
		case errors.Is(err, service.ErrNotEventOrganizer):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventOrganizer))
		default:
			err = fmt.Errorf("v1.HandleCreateTicketType -> h.svc.CreateTicketType -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, ticketType)
}

// HandleListEventTicketTypes godoc
// @Summary      List an event's ticket types
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        eventID  path      int true "event ID"
// @Success      200      {array}   domain.TicketType
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /tickets/types/events/{eventID} [get]
func (h *TicketHandler) HandleListEventTicketTypes(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ticketTypes, err := h.svc.ListEventTicketTypes(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleListEventTicketTypes -> h.svc.ListEventTicketTypes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, ticketTypes)
}

// HandlePurchase godoc
// @Summary      Purchase a ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      request.PurchaseTicketRequest true "request body"
// @Success      201      {object}  domain.Ticket
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /tickets/purchase [post]
func (h *TicketHandler) HandlePurchase(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.PurchaseTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ticket, err := h.svc.Purchase(ctx.Request.Context(), user.ID, req.TicketTypeID, req.ToBuyerInfo())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTicketTypeNotFound):
			response.RenderErr(ctx, response.ErrNotFound("ticket type", "ID", req.TicketTypeID))
		case errors.Is(err, service.ErrTicketsSoldOut):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrTicketsSoldOut))
		case errors.Is(err, service.ErrTicketLimitReached):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrTicketLimitReached))
		default:
			err = fmt.Errorf("v1.HandlePurchase -> h.svc.Purchase -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, ticket)
}

// HandleListUserTickets godoc
// @Summary      List a user's tickets
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        userID  path      int true "user ID"
// @Success      200     {array}   domain.Ticket
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /tickets/user/{userID} [get]
func (h *TicketHandler) HandleListUserTickets(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tickets, err := h.svc.ListUserTickets(ctx.Request.Context(), user.ID, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotSelf) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotSelf))
			return
		}

		err = fmt.Errorf("v1.HandleListUserTickets -> h.svc.ListUserTickets -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tickets)
}
