package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/kisan-advisor/pkg/errors"
)

// HTTPError is the transport form of a failure: status plus the public
// code and message of the error envelope.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error { return e.Err }

// NewHTTPError builds an HTTPError.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

type errorMapping struct {
	status int
	code   string
	// message replaces the domain message when set, hiding upstream detail.
	message string
}

// domainErrors maps AppError codes onto the public envelope. Codes not listed
// become internal_error.
var domainErrors = map[string]errorMapping{
	apperrors.CodeInvalidInput:     {status: http.StatusBadRequest, code: "invalid_request"},
	apperrors.CodeNotFound:         {status: http.StatusNotFound, code: "not_found"},
	apperrors.CodeConversationBusy: {status: http.StatusConflict, code: "conversation_busy"},
	apperrors.CodeUpstream:         {status: http.StatusBadGateway, code: "upstream_error", message: "data provider unavailable"},
}

var internalError = errorMapping{status: http.StatusInternalServerError, code: "internal_error", message: "something went wrong"}

// asHTTPError resolves any handler error: HTTPErrors pass through, AppErrors
// go through domainErrors, everything else is internal.
func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	mapping, ok := domainErrors[apperrors.CodeOf(err)]
	if !ok {
		mapping = internalError
	}
	message := mapping.message
	if message == "" {
		message = err.Error()
	}
	return NewHTTPError(mapping.status, mapping.code, message, err)
}

func badRequest(err error) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, "invalid_request", err.Error(), err)
}

// abortWithError records err for errorHandlingMiddleware and stops the chain.
func abortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(asHTTPError(err))
	c.Abort()
}
