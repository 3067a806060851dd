package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the uniform error body every endpoint renders.
type Err struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"msg"`

	err error
}

func (e *Err) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	return e.Msg
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        err.Error(),
		err:        err,
	}
}

func ErrUnauthorized() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        "authentication required",
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        "wrong email or password",
		err:        err,
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Msg:        err.Error(),
		err:        err,
	}
}

func ErrNotFound(resource, field string, value any) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v not found by %v (%v)", resource, field, value),
	}
}

// ErrInternalServerError hides the cause from the client; the wrapped
// error still reaches the log.
func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Msg:        "internal server error",
		err:        err,
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	logError(ctx, err)
	ctx.JSON(err.StatusCode, err)
}

// AbortWithErr is RenderErr for middlewares, where the chain must stop.
func AbortWithErr(ctx *gin.Context, err *Err) {
	logError(ctx, err)
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func logError(ctx *gin.Context, err *Err) {
	logger := zap.L().With(
		zap.String("request_id", requestid.Get(ctx)),
		zap.String("method", ctx.Request.Method),
		zap.String("path", ctx.Request.URL.Path),
		zap.Int("status", err.StatusCode),
	)

	if err.StatusCode >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
		return
	}

	logger.Info("request rejected", zap.String("msg", err.Msg))
}
