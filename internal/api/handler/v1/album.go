package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gatherly/gatherly-api/internal/api/handler/v1/request"
	"github.com/gatherly/gatherly-api/internal/api/handler/v1/response"
	"github.com/gatherly/gatherly-api/internal/config"
	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/service"
)

type AlbumService interface {
	CreateAlbum(ctx context.Context, album domain.Album) (domain.Album, error)
	ListEventAlbums(ctx context.Context, callerID, eventID uint) ([]domain.Album, error)
	AddPhoto(ctx context.Context, photo domain.Photo) (domain.Photo, error)
	AddComment(ctx context.Context, comment domain.Comment) (domain.Comment, error)
}

type AlbumHandler struct {
	conf *config.APIConfig
	svc  AlbumService
	uSvc UserService
}

func NewAlbumHandler(conf *config.APIConfig, svc AlbumService, uSvc UserService) *AlbumHandler {
	return &AlbumHandler{
		conf: conf,
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateAlbum godoc
// @Summary      Create a photo album on an event
// @Tags         albums
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      request.CreateAlbumRequest true "request body"
// @Success      201      {object}  domain.Album
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /albums [post]
func (h *AlbumHandler) HandleCreateAlbum(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateAlbumRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	album, err := h.svc.CreateAlbum(ctx.Request.Context(), domain.Album{
		EventID:     req.EventID,
		Name:        req.Name,
		Description: req.Description,
		CreatorID:   user.ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", req.EventID))
		case errors.Is(err, service.ErrNotEventParticipant):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventParticipant))
		case errors.Is(err, service.ErrAlbumNameTaken):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrAlbumNameTaken))
		default:
			err = fmt.Errorf("v1.HandleCreateAlbum -> h.svc.CreateAlbum -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, album)
}

// HandleListEventAlbums godoc
// @Summary      List an event's albums
// @Tags         albums
// @Produce      json
// @Security     BearerAuth
// @Param        eventID  path      int true "event ID"
// @Success      200      {array}   domain.Album
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /albums/events/{eventID} [get]
func (h *AlbumHandler) HandleListEventAlbums(ctx *gin.Context) {
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

	albums, err := h.svc.ListEventAlbums(ctx.Request.Context(), user.ID, eventID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		case errors.Is(err, service.ErrNotEventParticipant):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventParticipant))
		default:
			err = fmt.Errorf("v1.HandleListEventAlbums -> h.svc.ListEventAlbums -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, albums)
}

// HandleUploadPhoto godoc
// @Summary      Upload a photo into an album
// @Tags         albums
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        album_id  formData  int    true  "album ID"
// @Param        caption   formData  string false "caption"
// @Param        file      formData  file   true  "image file"
// @Success      201       {object}  domain.Photo
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /albums/photos [post]
func (h *AlbumHandler) HandleUploadPhoto(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	albumID, err := strconv.ParseUint(ctx.PostForm("album_id"), 10, 64)
	if err != nil || albumID == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("album_id is required")))
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("file is required")))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("unsupported file extension (%v)", ext)))
		return
	}

	if err = os.MkdirAll(h.conf.UploadDir, 0o755); err != nil {
		err = fmt.Errorf("v1.HandleUploadPhoto -> os.MkdirAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	filename := uuid.NewString() + ext
	dst := filepath.Join(h.conf.UploadDir, filename)
	if err = ctx.SaveUploadedFile(file, dst); err != nil {
		err = fmt.Errorf("v1.HandleUploadPhoto -> ctx.SaveUploadedFile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	photo, err := h.svc.AddPhoto(ctx.Request.Context(), domain.Photo{
		AlbumID:  uint(albumID),
		AuthorID: user.ID,
		Caption:  ctx.PostForm("caption"),
		ImageURL: "/uploads/photos/" + filename,
	})
	if err != nil {
		// The DB row failed; don't leave the file behind.
		_ = os.Remove(dst)

		switch {
		case errors.Is(err, service.ErrAlbumNotFound):
			response.RenderErr(ctx, response.ErrNotFound("album", "ID", albumID))
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", "album link"))
		case errors.Is(err, service.ErrNotEventParticipant):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventParticipant))
		default:
			err = fmt.Errorf("v1.HandleUploadPhoto -> h.svc.AddPhoto -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, photo)
}

// HandleCreateComment godoc
// @Summary      Comment on a photo
// @Tags         albums
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        photoID  path      int true "photo ID"
// @Param        request  body      request.CreateCommentRequest true "request body"
// @Success      201      {object}  domain.Comment
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /albums/photos/{photoID}/comments [post]
func (h *AlbumHandler) HandleCreateComment(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	photoID, err := parseIDParam(ctx, "photoID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateCommentRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	comment, err := h.svc.AddComment(ctx.Request.Context(), domain.Comment{
		PhotoID:  photoID,
		AuthorID: user.ID,
		Content:  req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPhotoNotFound):
			response.RenderErr(ctx, response.ErrNotFound("photo", "ID", photoID))
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", "photo link"))
		case errors.Is(err, service.ErrNotEventParticipant):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventParticipant))
		default:
			err = fmt.Errorf("v1.HandleCreateComment -> h.svc.AddComment -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}
