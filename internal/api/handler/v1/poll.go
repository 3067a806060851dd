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

type PollService interface {
	CreatePoll(ctx context.Context, poll domain.Poll) (domain.Poll, error)
	ListEventPolls(ctx context.Context, callerID, eventID uint) ([]domain.Poll, error)
	Vote(ctx context.Context, callerID, pollID, questionID uint, answer string) (domain.VoteResult, error)
}

type PollHandler struct {
	svc  PollService
	uSvc UserService
}

func NewPollHandler(svc PollService, uSvc UserService) *PollHandler {
	return &PollHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreatePoll godoc
// @Summary      Create a poll on an event
// @Tags         polls
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      request.CreatePollRequest true "request body"
// @Success      201      {object}  domain.Poll
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /polls [post]
func (h *PollHandler) HandleCreatePoll(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreatePollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	poll, err := h.svc.CreatePoll(ctx.Request.Context(), req.ToPoll(user.ID))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", req.EventID))
		case errors.Is(err, service.ErrNotEventOrganizer):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventOrganizer))
		default:
			err = fmt.Errorf("v1.HandleCreatePoll -> h.svc.CreatePoll -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, poll)
}

// HandleListEventPolls godoc
// @Summary      List an event's polls
// @Tags         polls
// @Produce      json
// @Security     BearerAuth
// @Param        eventID  path      int true "event ID"
// @Success      200      {array}   domain.Poll
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /polls/events/{eventID} [get]
func (h *PollHandler) HandleListEventPolls(ctx *gin.Context) {
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

	polls, err := h.svc.ListEventPolls(ctx.Request.Context(), user.ID, eventID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		case errors.Is(err, service.ErrNotEventParticipant):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventParticipant))
		default:
			err = fmt.Errorf("v1.HandleListEventPolls -> h.svc.ListEventPolls -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, polls)
}

// HandleVote godoc
// @Summary      Vote on a poll question
// @Tags         polls
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      request.VoteRequest true "request body"
// @Success      200      {object}  domain.VoteResult
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /polls/vote [post]
func (h *PollHandler) HandleVote(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.VoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.Vote(ctx.Request.Context(), user.ID, req.PollID, req.QuestionID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPollNotFound):
			response.RenderErr(ctx, response.ErrNotFound("poll", "ID", req.PollID))
		case errors.Is(err, service.ErrQuestionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("question", "ID", req.QuestionID))
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", "poll link"))
		case errors.Is(err, service.ErrNotEventParticipant):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventParticipant))
		case errors.Is(err, service.ErrInvalidAnswer):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidAnswer))
		case errors.Is(err, service.ErrAlreadyVoted):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrAlreadyVoted))
		default:
			err = fmt.Errorf("v1.HandleVote -> h.svc.Vote -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}
