package api

import (
	"net/http"

	"hof-drops/internal/domain/reservation"
	"hof-drops/internal/handler/httperr"
	"hof-drops/internal/pkg/errs"
	"hof-drops/internal/usecase/commands"
	"hof-drops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type inventoryDetail struct {
	Available int64 `json:"available"`
	Requested int64 `json:"requested"`
}

// respondError maps use case errors to the storefront error contract.
func respondError(c *gin.Context, err error) {
	if short, ok := reservation.AsInsufficientInventory(err); ok {
		available := max(short.Available, 0)
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeInsufficientInventory,
			"Insufficient inventory", inventoryDetail{Available: available, Requested: short.Requested})
		return
	}

	switch {
	case errs.Is(err, commands.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, validationMessage(err), nil)
	case errs.Is(err, commands.ErrProductNotFound), errs.Is(err, queries.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Product not found", nil)
	case errs.Is(err, commands.ErrVariantNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Variant not found", nil)
	case errs.Is(err, commands.ErrOrderNotFound), errs.Is(err, queries.ErrOrderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Order not found", nil)
	case errs.Is(err, commands.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Reservation not found", nil)
	case errs.Is(err, queries.ErrNoActiveDrop):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "No active drop", nil)
	case errs.Is(err, commands.ErrNotLimitedEdition), errs.Is(err, queries.ErrNotLimited):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeNotLimitedEdition, "Product is not a limited edition drop", nil)
	case errs.Is(err, reservation.ErrDropEnded):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeDropEnded, "Drop has ended", nil)
	case errs.Is(err, reservation.ErrDropNotStarted):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeDropNotStarted, "Drop has not started", nil)
	case errs.Is(err, commands.ErrIdempotencyInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeIdempotencyConflict, "Request is currently being processed", nil)
	case errs.Is(err, commands.ErrIdempotencyKeyReused):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeIdempotencyConflict, "Idempotency key was used with a different request", nil)
	case errs.Is(err, commands.ErrTransactionFailure):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeTransactionFailure, "Transaction failed, please retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error", nil)
	}
}

func validationMessage(err error) string {
	// the innermost cause is the domain rule that failed
	if cause := errs.UnwrapAll(err); cause != nil {
		return cause.Error()
	}
	return "Invalid request"
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, msg, nil)
}
