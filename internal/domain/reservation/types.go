package reservation

// State is derived at read time; only Inactive is persisted (is_active=false).
type State string

const (
	StateActiveValid   State = "ACTIVE_VALID"
	StateActiveExpired State = "ACTIVE_EXPIRED"
	StateInactive      State = "INACTIVE"
)

func (s State) String() string {
	return string(s)
}

// Counts reports whether a hold in this state is subtracted from the ledger.
func (s State) Counts() bool {
	return s == StateActiveValid
}
