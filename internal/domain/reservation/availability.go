package reservation

// Availability is the reconciled view of one variant:
// ledger minus every active, unexpired hold.
type Availability struct {
	Ledger int64
	Held   int64
}

func NewAvailability(ledger int32, held int64) Availability {
	return Availability{Ledger: int64(ledger), Held: held}
}

// Available is never reported below zero.
func (a Availability) Available() int64 {
	if v := a.Ledger - a.Held; v > 0 {
		return v
	}
	return 0
}

func (a Availability) Ensure(requested int64) error {
	if requested > a.Available() {
		return &InsufficientInventoryError{Available: a.Available(), Requested: requested}
	}
	return nil
}
