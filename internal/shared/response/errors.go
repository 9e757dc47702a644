package response

import (
	"go-staffpay/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// ServiceError writes err using its AppError status and code.
func ServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// BindError writes a request binding or validation failure as a 400.
func BindError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
}
