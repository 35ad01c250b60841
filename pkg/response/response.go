package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/fictus/bookstore/pkg/errors"
	"github.com/fictus/bookstore/pkg/logger"
)

// Response is the envelope returned by the non-GraphQL endpoints (health,
// auth middleware rejections). Code is a business error code, 0 on success.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success writes a successful response.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error writes an error response, extracting the business code and message
// from an AppError and logging the internal cause.
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	if appErr.Err != nil {
		logger.L.Errorw("request failed",
			"path", c.Request.URL.Path,
			"code", appErr.Code,
			"error", appErr.Err,
		)
	}

	c.JSON(http.StatusOK, Response{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}

// ErrorWithCode writes an error response with an explicit code and message.
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}
