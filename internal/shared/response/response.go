package response

import (
	"go-workforce/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the refusal document: clients read Error, Code is advisory.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Success writes data as the bare JSON body.
func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func Error(c *gin.Context, status int, code string, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: message, Code: code})
}

// FromError writes err through apperror.ToHTTP and returns the mapped triple.
func FromError(c *gin.Context, err error) apperror.HTTPError {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
	return httpErr
}
