package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HandleSuccess(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, &Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Code:      http.StatusOK,
		RequestID: GetRequestID(c),
	})
}

func HandleCreated(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, &Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Code:      http.StatusCreated,
		RequestID: GetRequestID(c),
	})
}

func HandleNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// HandleList answers a slice; a nil slice is sent as [].
func HandleList[T any](c *gin.Context, items []T, message string) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, &ListResponse{
		Success:   true,
		Data:      items,
		Total:     len(items),
		Message:   message,
		Code:      http.StatusOK,
		RequestID: GetRequestID(c),
	})
}
