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

type DiscussionService interface {
	CreateDiscussion(ctx context.Context, discussion domain.Discussion) (domain.Discussion, error)
	GetDiscussion(ctx context.Context, callerID, id uint) (domain.DiscussionDetail, error)
	ListDiscussions(ctx context.Context, callerID uint, discussionType domain.DiscussionType, linkedID uint, skip, limit int) ([]domain.Discussion, error)
	PostMessage(ctx context.Context, message domain.Message) (domain.Message, error)
}

type DiscussionHandler struct {
	svc  DiscussionService
	uSvc UserService
}

func NewDiscussionHandler(svc DiscussionService, uSvc UserService) *DiscussionHandler {
	return &DiscussionHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// renderDiscussionAccessErr maps the delegated authorization failures
// shared by every discussion endpoint.
func renderDiscussionAccessErr(ctx *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrGroupNotFound):
		response.RenderErr(ctx, response.ErrNotFound("group", "linked_id", "discussion link"))
	case errors.Is(err, service.ErrEventNotFound):
		response.RenderErr(ctx, response.ErrNotFound("event", "linked_id", "discussion link"))
	case errors.Is(err, service.ErrNotGroupMember):
		response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotGroupMember))
	case errors.Is(err, service.ErrNotEventParticipant):
		response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventParticipant))
	default:
		return false
	}

	return true
}

// HandleCreateDiscussion godoc
// @Summary      Create a discussion on a group or event
// @Tags         discussions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      request.CreateDiscussionRequest true "request body"
// @Success      201      {object}  domain.Discussion
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /discussions [post]
func (h *DiscussionHandler) HandleCreateDiscussion(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateDiscussionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	discussion, err := h.svc.CreateDiscussion(ctx.Request.Context(), req.ToDiscussion(user.ID))
	if err != nil {
		if !renderDiscussionAccessErr(ctx, err) {
			err = fmt.Errorf("v1.HandleCreateDiscussion -> h.svc.CreateDiscussion -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, discussion)
}

// HandleListDiscussions godoc
// @Summary      List discussions
// @Tags         discussions
// @Produce      json
// @Security     BearerAuth
// @Param        linked_type  query     string false "group or event"
// @Param        linked_id    query     int    false "linked resource ID"
// @Param        skip         query     int    false "rows to skip"
// @Param        limit        query     int    false "page size (max 100)"
// @Success      200          {array}   domain.Discussion
// @Failure      400          {object}  response.Err
// @Failure      401          {object}  response.Err
// @Failure      403          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /discussions [get]
func (h *DiscussionHandler) HandleListDiscussions(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var discussionType domain.DiscussionType
	if raw := ctx.Query("linked_type"); raw != "" {
		discussionType = domain.DiscussionType(raw)
		if !discussionType.Valid() {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid linked_type (%v)", raw)))
			return
		}
	}

	var linkedID uint
	if raw := ctx.Query("linked_id"); raw != "" {
		id, err := parseQueryID(raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		linkedID = id
	}

	skip, limit := parsePagination(ctx)

	discussions, err := h.svc.ListDiscussions(ctx.Request.Context(), user.ID, discussionType, linkedID, skip, limit)
	if err != nil {
		if !renderDiscussionAccessErr(ctx, err) {
			err = fmt.Errorf("v1.HandleListDiscussions -> h.svc.ListDiscussions -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, discussions)
}

// HandleGetDiscussion godoc
// @Summary      Get a discussion with its last messages
// @Tags         discussions
// @Produce      json
// @Security     BearerAuth
// @Param        discussionID  path      int true "discussion ID"
// @Success      200           {object}  domain.DiscussionDetail
// @Failure      400           {object}  response.Err
// @Failure      401           {object}  response.Err
// @Failure      403           {object}  response.Err
// @Failure      404           {object}  response.Err
// @Failure      500           {object}  response.Err
// @Router       /discussions/{discussionID} [get]
func (h *DiscussionHandler) HandleGetDiscussion(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	discussionID, err := parseIDParam(ctx, "discussionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	detail, err := h.svc.GetDiscussion(ctx.Request.Context(), user.ID, discussionID)
	if err != nil {
		if errors.Is(err, service.ErrDiscussionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("discussion", "ID", discussionID))
			return
		}
		if !renderDiscussionAccessErr(ctx, err) {
			err = fmt.Errorf("v1.HandleGetDiscussion -> h.svc.GetDiscussion -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// HandlePostMessage godoc
// @Summary      Post a message or reply in a discussion
// @Tags         discussions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        discussionID  path      int true "discussion ID"
// @Param        request       body      request.PostMessageRequest true "request body"
// @Success      201           {object}  domain.Message
// @Failure      400           {object}  response.Err
// @Failure      401           {object}  response.Err
// @Failure      403           {object}  response.Err
// @Failure      404           {object}  response.Err
// @Failure      500           {object}  response.Err
// @Router       /discussions/{discussionID}/messages [post]
func (h *DiscussionHandler) HandlePostMessage(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	discussionID, err := parseIDParam(ctx, "discussionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.PostMessageRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	message, err := h.svc.PostMessage(ctx.Request.Context(), domain.Message{
		DiscussionID:    discussionID,
		ParentMessageID: req.ParentMessageID,
		AuthorID:        user.ID,
		Content:         req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDiscussionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("discussion", "ID", discussionID))
		case errors.Is(err, service.ErrMessageNotFound):
			response.RenderErr(ctx, response.ErrNotFound("message", "ID", req.ParentMessageID))
		case errors.Is(err, service.ErrParentMessageMismatch):
			response.RenderErr(ctx, response.ErrNotFound("message", "ID", req.ParentMessageID))
		default:
			if !renderDiscussionAccessErr(ctx, err) {
				err = fmt.Errorf("v1.HandlePostMessage -> h.svc.PostMessage -> %w", err)
				response.RenderErr(ctx, response.ErrInternalServerError(err))
			}
		}
		return
	}

	ctx.JSON(http.StatusCreated, message)
}
