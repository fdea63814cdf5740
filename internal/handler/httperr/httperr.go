package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// Codes the storefront branches on; anything else is a generic failure.
const (
	CodeValidation            = "VALIDATION_ERROR"
	CodeNotFound              = "NOT_FOUND"
	CodeDropEnded             = "DROP_ENDED"
	CodeDropNotStarted        = "DROP_NOT_STARTED"
	CodeInsufficientInventory = "INSUFFICIENT_INVENTORY"
	CodeNotLimitedEdition     = "NOT_LIMITED_EDITION"
	CodeIdempotencyConflict   = "IDEMPOTENCY_CONFLICT"
	CodeInvalidSignature      = "INVALID_SIGNATURE"
	CodeTransactionFailure    = "TRANSACTION_FAILED"
	CodeInternal              = "INTERNAL_ERROR"
)

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
