package response

import (
	stdErrors "errors"
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ecommerce/domain/shared"
	"ecommerce/pkg/errors"
	"ecommerce/pkg/logger"
)

func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

func captureStack(skip int) []string {
	var pcs [16]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	stack := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		frame, more := frames.Next()
		if frame.Function != "" {
			stack = append(stack, frame.Function)
		}
		if !more {
			break
		}
	}
	return stack
}

// HandleBadRequest answers framework-level failures such as a body or query
// that does not bind.
func HandleBadRequest(c *gin.Context, err error) {
	appErr := errors.BadRequest("Parâmetros inválidos")
	appErr.Err = err
	HandleAppError(c, appErr)
}

// HandleAppError maps err onto an HTTP status through its error kind.
// Client errors are logged at warn, everything else at error with a stack.
func HandleAppError(c *gin.Context, err error) {
	requestID := GetRequestID(c)
	appErr := errors.FromError(err)
	status := appErr.HTTPStatusCode()

	fields := []zap.Field{
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("error_code", string(appErr.Code)),
		zap.Int("http_status", status),
	}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}

	log := logger.WithRequestID(requestID)
	if status >= http.StatusInternalServerError {
		log.Error(appErr.Message, append(fields, zap.Strings("stack", extractStack(err)))...)
	} else {
		log.Warn(appErr.Message, fields...)
	}

	c.JSON(status, &Response{
		Success:   false,
		Error:     string(appErr.Code),
		Message:   appErr.Message,
		Details:   appErr.Details,
		Code:      status,
		RequestID: requestID,
	})
}

// extractStack prefers the stack recorded where a domain error was raised and
// falls back to the current one.
func extractStack(err error) []string {
	var stacker shared.Stacker
	if stdErrors.As(err, &stacker) {
		if stack := stacker.Stack(); len(stack) > 0 {
			return stack
		}
	}
	return captureStack(4)
}
