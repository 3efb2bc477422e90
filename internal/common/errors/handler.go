// internal/common/errors/handler.go
package errors

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns handler errors into JSON error responses.
type ErrorHandler struct {
	logger Logger
}

// detailer is implemented by causes whose Error text is deliberately terse.
type detailer interface {
	Detail() string
}

type Logger interface {
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Respond normalizes err, logs it and writes {"error": message} with the
// mapped status code.
func (h *ErrorHandler) Respond(c *gin.Context, err error) {
	stdErr := AsStandardError(err)
	status := HTTPStatus(stdErr.Code)

	h.logError(c, stdErr, status)

	c.AbortWithStatusJSON(status, gin.H{"error": stdErr.Message})
}

func (h *ErrorHandler) logError(c *gin.Context, stdErr *StandardError, status int) {
	fields := map[string]interface{}{
		"errorCode": string(stdErr.Code),
		"message":   stdErr.Message,
		"details":   stdErr.Details,
		"retryable": stdErr.Retryable,
		"status":    status,
		"method":    c.Request.Method,
		"path":      c.FullPath(),
		"requestId": c.Writer.Header().Get("X-Request-ID"),
	}

	var d detailer
	if stderrors.As(stdErr.Unwrap(), &d) {
		fields["cause"] = d.Detail()
	}

	if status >= 500 {
		h.logger.Error("request failed", fields)
		return
	}
	h.logger.Warn("request rejected", fields)
}
