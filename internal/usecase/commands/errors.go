package commands

import "hof-drops/internal/pkg/errs"

var (
	ErrProductNotFound     = errs.New("product not found")
	ErrVariantNotFound     = errs.New("variant not found")
	ErrOrderNotFound       = errs.New("order not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrNotLimitedEdition   = errs.New("product is not a limited edition drop")
	ErrValidation          = errs.New("validation error")
	ErrInvalidSignature    = errs.New("invalid webhook signature")

	ErrIdempotencyInProgress  = errs.New("idempotency in progress")
	ErrIdempotencyKeyReused   = errs.New("idempotency key reused with a different request")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")

	// ErrTransactionFailure means nothing was committed; the client may retry.
	ErrTransactionFailure = errs.New("transaction failed")
)
