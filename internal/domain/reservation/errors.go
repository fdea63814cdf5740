package reservation

import (
	"errors"
	"fmt"
)

var (
	ErrDropEnded        = errors.New("drop has ended")
	ErrDropNotStarted   = errors.New("drop has not been released yet")
	ErrHoldNotRefreshed = errors.New("only an active, unexpired hold can be refreshed")
)

// InsufficientInventoryError is returned when a request exceeds what is
// currently available.
type InsufficientInventoryError struct {
	Available int64
	Requested int64
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory: available %d, requested %d", e.Available, e.Requested)
}

func AsInsufficientInventory(err error) (*InsufficientInventoryError, bool) {
	var target *InsufficientInventoryError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
