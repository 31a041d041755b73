package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler installs the supervisor error handler on e.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps creates an error code to http status mapping.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	return map[string]int{
		ErrBadParameter:        http.StatusBadRequest,
		ErrEntityNotFound:      http.StatusNotFound,
		ErrInternalServerError: http.StatusInternalServerError,
		ErrServiceUnavailable:  http.StatusServiceUnavailable,
	}
}

// HTTPErrorHandler renders errors returned by echo handlers as ErrResponse JSON.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		logger:                       log.With(logger, "component", "HTTPErrorHandler"),
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	if status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// Handler maps err to a status code and writes the error body.
// echo.HTTPError keeps its own status; an openapi3filter.RequestError inside it is reported as bad_parameter.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var statusCode int
	myErr := ToMyError(err)
	he, isHTTPError := err.(*echo.HTTPError)
	switch {
	case isHTTPError:
		code := ErrInternalServerError
		if he.Code < http.StatusInternalServerError {
			code = ErrBadParameter
		}
		if he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed {
			code = ErrEntityNotFound
		}
		if he.Internal != nil {
			if inner, ok := he.Internal.(*echo.HTTPError); ok {
				he = inner
			}
			var requestError *openapi3filter.RequestError
			if errors.As(he.Internal, &requestError) {
				code = ErrBadParameter
			}
		}
		message, _ := he.Message.(string)
		myErr = NewMyError(code, message, err)
		statusCode = he.Code
	case myErr != nil:
		statusCode = h.getStatusCode(myErr.Code)
	default:
		myErr = NewMyError(ErrInternalServerError, "an internal server error has occurred", err)
		statusCode = http.StatusInternalServerError
	}

	logLevel := level.Warn
	if statusCode >= http.StatusInternalServerError {
		logLevel = level.Error
	}
	_ = logLevel(h.logger).Log(
		"msg", "HTTP request error",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", statusCode,
		"err", err,
	)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(statusCode)
		return
	}
	_ = c.JSON(statusCode, ErrResponse{Error: myErr})
}

// ErrResponse from server.
type ErrResponse struct {
	Error *MyError `json:"error,omitempty"`
}
