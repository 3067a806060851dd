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

type GroupService interface {
	CreateGroup(ctx context.Context, group domain.Group) (domain.Group, error)
	GetGroup(ctx context.Context, callerID, id uint) (domain.GroupDetail, error)
	ListGroups(ctx context.Context, groupType *domain.GroupType, skip, limit int) ([]domain.Group, error)
	ListUserGroups(ctx context.Context, userID uint, skip, limit int) ([]domain.Group, error)
	UpdateGroup(ctx context.Context, callerID, id uint, update domain.GroupUpdate) (domain.Group, error)
	DeleteGroup(ctx context.Context, callerID, id uint) error
	JoinGroup(ctx context.Context, callerID, id uint) (domain.Group, error)
	LeaveGroup(ctx context.Context, callerID, id uint) error
	PromoteUser(ctx context.Context, callerID, id, userID uint) (domain.Group, error)
}

type GroupHandler struct {
	svc  GroupService
	uSvc UserService
}

func NewGroupHandler(svc GroupService, uSvc UserService) *GroupHandler {
	return &GroupHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateGroup godoc
// @Summary      Create a group
// @Tags         groups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      request.CreateGroupRequest true "request body"
// @Success      201      {object}  domain.Group
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /groups [post]
func (h *GroupHandler) HandleCreateGroup(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	group, err := h.svc.CreateGroup(ctx.Request.Context(), req.ToGroup(user.ID))
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateGroup -> h.svc.CreateGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, group)
}

// HandleListGroups godoc
// @Summary      List groups
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Param        type   query     string false "group type filter (public|private|secret)"
// @Param        skip   query     int    false "rows to skip"
// @Param        limit  query     int    false "page size (max 100)"
// @Success      200    {array}   domain.Group
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /groups [get]
func (h *GroupHandler) HandleListGroups(ctx *gin.Context) {
	var groupType *domain.GroupType
	if raw := ctx.Query("type"); raw != "" {
		t := domain.GroupType(raw)
		if !t.Valid() {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid group type (%v)", raw)))
			return
		}
		groupType = &t
	}

	skip, limit := parsePagination(ctx)

	groups, err := h.svc.ListGroups(ctx.Request.Context(), groupType, skip, limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleListGroups -> h.svc.ListGroups -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, groups)
}

// HandleGetGroup godoc
// @Summary      Get a group's detail
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Param        groupID  path      int true "group ID"
// @Success      200      {object}  domain.GroupDetail
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /groups/{groupID} [get]
func (h *GroupHandler) HandleGetGroup(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	groupID, err := parseIDParam(ctx, "groupID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	detail, err := h.svc.GetGroup(ctx.Request.Context(), user.ID, groupID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGroupNotFound):
			response.RenderErr(ctx, response.ErrNotFound("group", "ID", groupID))
		case errors.Is(err, service.ErrSecretGroup):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrSecretGroup))
		default:
			err = fmt.Errorf("v1.HandleGetGroup -> h.svc.GetGroup -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// HandleListUserGroups godoc
// @Summary      List groups a user belongs to
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Param        userID  path      int true "user ID"
// @Success      200     {array}   domain.Group
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /groups/user/{userID} [get]
func (h *GroupHandler) HandleListUserGroups(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	skip, limit := parsePagination(ctx)

	groups, err := h.svc.ListUserGroups(ctx.Request.Context(), userID, skip, limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleListUserGroups -> h.svc.ListUserGroups -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, groups)
}

// HandleUpdateGroup godoc
// @Summary      Update a group
// @Tags         groups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        groupID  path      int true "group ID"
// @Param        request  body      request.UpdateGroupRequest true "request body"
// @Success      200      {object}  domain.Group
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /groups/{groupID} [put]
func (h *GroupHandler) HandleUpdateGroup(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	groupID, err := parseIDParam(ctx, "groupID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateGroupRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	group, err := h.svc.UpdateGroup(ctx.Request.Context(), user.ID, groupID, req.ToUpdate())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGroupNotFound):
			response.RenderErr(ctx, response.ErrNotFound("group", "ID", groupID))
		case errors.Is(err, service.ErrNotGroupAdmin):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotGroupAdmin))
		default:
			err = fmt.Errorf("v1.HandleUpdateGroup -> h.svc.UpdateGroup -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, group)
}

// HandleDeleteGroup godoc
// @Summary      Deactivate a group
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Param        groupID  path      int true "group ID"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /groups/{groupID} [delete]
func (h *GroupHandler) HandleDeleteGroup(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	groupID, err := parseIDParam(ctx, "groupID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteGroup(ctx.Request.Context(), user.ID, groupID); err != nil {
		switch {
		case errors.Is(err, service.ErrGroupNotFound):
			response.RenderErr(ctx, response.ErrNotFound("group", "ID", groupID))
		case errors.Is(err, service.ErrNotGroupAdmin):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotGroupAdmin))
		default:
			err = fmt.Errorf("v1.HandleDeleteGroup -> h.svc.DeleteGroup -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "group deactivated"})
}

// HandleJoinGroup godoc
// @Summary      Join a public or private group
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Param        groupID  path      int true "group ID"
// @Success      200      {object}  domain.Group
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /groups/{groupID}/join [post]
func (h *GroupHandler) HandleJoinGroup(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	groupID, err := parseIDParam(ctx, "groupID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	group, err := h.svc.JoinGroup(ctx.Request.Context(), user.ID, groupID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGroupNotFound):
			response.RenderErr(ctx, response.ErrNotFound("group", "ID", groupID))
		case errors.Is(err, service.ErrCannotJoinSecretGroup):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrCannotJoinSecretGroup))
		case errors.Is(err, service.ErrAlreadyGroupMember):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrAlreadyGroupMember))
		default:
			err = fmt.Errorf("v1.HandleJoinGroup -> h.svc.JoinGroup -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, group)
}

// HandleLeaveGroup godoc
// @Summary      Leave a group
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Param        groupID  path      int true "group ID"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /groups/{groupID}/leave [post]
func (h *GroupHandler) HandleLeaveGroup(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	groupID, err := parseIDParam(ctx, "groupID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.LeaveGroup(ctx.Request.Context(), user.ID, groupID); err != nil {
		switch {
		case errors.Is(err, service.ErrGroupNotFound):
			response.RenderErr(ctx, response.ErrNotFound("group", "ID", groupID))
		case errors.Is(err, service.ErrNotGroupMember):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrNotGroupMember))
		case errors.Is(err, service.ErrSoleAdmin):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrSoleAdmin))
		default:
			err = fmt.Errorf("v1.HandleLeaveGroup -> h.svc.LeaveGroup -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "left the group"})
}

// HandlePromoteUser godoc
// @Summary      Promote a member to admin
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Param        groupID  path      int true "group ID"
// @Param        userID   path      int true "user ID to promote"
// @Success      200      {object}  domain.Group
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /groups/{groupID}/promote/{userID} [post]
func (h *GroupHandler) HandlePromoteUser(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	groupID, err := parseIDParam(ctx, "groupID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	group, err := h.svc.PromoteUser(ctx.Request.Context(), user.ID, groupID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGroupNotFound):
			response.RenderErr(ctx, response.ErrNotFound("group", "ID", groupID))
		case errors.Is(err, service.ErrNotGroupAdmin):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotGroupAdmin))
		case errors.Is(err, service.ErrNotGroupMember):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrNotGroupMember))
		case errors.Is(err, service.ErrAlreadyGroupAdmin):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrAlreadyGroupAdmin))
		default:
			err = fmt.Errorf("v1.HandlePromoteUser -> h.svc.PromoteUser -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, group)
}
