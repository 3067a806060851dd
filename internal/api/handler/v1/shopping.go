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

type ShoppingService interface {
	AddItem(ctx context.Context, item domain.ShoppingItem) (domain.ShoppingItem, error)
	GetEventList(ctx context.Context, callerID, eventID uint) (domain.ShoppingList, error)
}

type ShoppingHandler struct {
	svc  ShoppingService
	uSvc UserService
}

func NewShoppingHandler(svc ShoppingService, uSvc UserService) *ShoppingHandler {
	return &ShoppingHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleAddItem godoc
// @Summary      Add an item to an event's shopping list
// @Tags         shopping
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      request.AddShoppingItemRequest true "request body"
// @Success      201      {object}  domain.ShoppingItem
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /shopping [post]
func (h *ShoppingHandler) HandleAddItem(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.AddShoppingItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.AddItem(ctx.Request.Context(), req.ToItem(user.ID))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", req.EventID))
		case errors.Is(err, service.ErrNotEventParticipant):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventParticipant))
		case errors.Is(err, service.ErrShoppingItemNameTaken):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrShoppingItemNameTaken))
		default:
			err = fmt.Errorf("v1.HandleAddItem -> h.svc.AddItem -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// HandleGetEventList godoc
// @Summary      Get an event's shopping list
// @Tags         shopping
// @Produce      json
// @Security     BearerAuth
// @Param        eventID  path      int true "event ID"
// @Success      200      {object}  domain.ShoppingList
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /shopping/events/{eventID} [get]
func (h *ShoppingHandler) HandleGetEventList(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	list, err := h.svc.GetEventList(ctx.Request.Context(), user.ID, eventID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		case errors.Is(err, service.ErrNotEventParticipant):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventParticipant))
		default:
			err = fmt.Errorf("v1.HandleGetEventList -> h.svc.GetEventList -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, list)
}
