package ez

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitclub-admin/internal/domain"
	mdw "fitclub-admin/internal/transport/http/middleware"
	resp "fitclub-admin/internal/transport/http/response"
)

type Options struct {
	// EnforceRoles off means a guarded action only needs a session.
	EnforceRoles bool
}

type EZ struct {
	g    *gin.RouterGroup
	l    *zap.Logger
	opts Options
}

func New(g *gin.RouterGroup, l *zap.Logger, opts Options) EZ {
	return EZ{g: g, l: l, opts: opts}
}

// With returns a copy registering on g instead.
func (e EZ) With(g *gin.RouterGroup) EZ {
	e.g = g
	return e
}

// Binder selects where an action reads its input from.
type Binder string

const (
	BindJSON  Binder = "json"
	BindQuery Binder = "query"
	BindForm  Binder = "form" // form, multipart or JSON by Content-Type
	BindNone  Binder = "none"
)

// AErr is a transport-level failure with its envelope code.
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &AErr{Code: resp.CodeBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Code: resp.CodeUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &AErr{Code: resp.CodeForbidden, Msg: msg} }
func NotFound(msg string) error     { return &AErr{Code: resp.CodeNotFound, Msg: msg} }
func Internal(msg string, err error) error {
	return &AErr{Code: resp.CodeServerError, Msg: msg, Err: err}
}

// Action declares one route. I is the bound input, O the data payload.
type Action[I any, O any] struct {
	Method string
	Path   string
	Binder Binder
	Auth   bool
	// Cap is checked only when Auth is set and roles are enforced.
	Cap domain.Capability
	// OKMsg becomes the envelope msg on success.
	OKMsg   string
	Handler func(c *gin.Context, in *I) (O, error)
}

func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		if a.Auth {
			actor := mdw.CurrentActor(c)
			if actor == nil {
				c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "login required"))
				return
			}
			if e.opts.EnforceRoles && !actor.Role.Can(a.Cap) {
				c.JSON(http.StatusOK, resp.Error(resp.CodeForbidden, domain.ErrForbidden.Error()))
				return
			}
		}

		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		case BindForm:
			bindErr = c.ShouldBind(&in)
		default:
		}
		if bindErr != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(bindErr, &tooLarge) {
				c.JSON(http.StatusOK, resp.Error(resp.CodeTooLarge, ""))
				return
			}
			c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, bindErr.Error()))
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			code, msg := e.mapErr(c, err)
			c.JSON(http.StatusOK, resp.Error(code, msg))
			return
		}
		c.JSON(http.StatusOK, resp.Notice(a.OKMsg, out))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}

func (e EZ) mapErr(c *gin.Context, err error) (int, string) {
	var ae *AErr
	switch {
	case errors.As(err, &ae):
		if ae.Code >= resp.CodeServerError {
			e.l.Error("action failed", zap.String("path", c.FullPath()), zap.Error(err),
				zap.String("rid", c.GetString(mdw.KeyRequestID)))
		}
		return ae.Code, ae.Error()
	case errors.Is(err, domain.ErrAuthFailure):
		return resp.CodeUnauthorized, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		return resp.CodeForbidden, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return resp.CodeNotFound, err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return resp.CodeBadRequest, err.Error()
	case errors.Is(err, domain.ErrDuplicateUsername),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrCapacityExceeded):
		return resp.CodeConflict, err.Error()
	}
	e.l.Error("action failed", zap.String("path", c.FullPath()), zap.Error(err),
		zap.String("rid", c.GetString(mdw.KeyRequestID)))
	return resp.CodeServerError, "internal error"
}

// ParamID reads a positive numeric path parameter.
func ParamID(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, NotFound("not found")
	}
	return uint(v), nil
}
