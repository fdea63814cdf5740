package queries

import "hof-drops/internal/pkg/errs"

var (
	ErrProductNotFound = errs.New("product not found")
	ErrOrderNotFound   = errs.New("order not found")
	ErrNoActiveDrop    = errs.New("no active drop")
	ErrNotLimited      = errs.New("product is not a limited edition")
)
