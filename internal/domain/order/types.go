package order

type Status string

const (
	StatusPending       Status = "pending"
	StatusPaid          Status = "paid"
	StatusPaymentFailed Status = "payment_failed"
	StatusCancelled     Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusPaymentFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanBecomePaid covers retried payments after an earlier failure.
func (s Status) CanBecomePaid() bool {
	return s == StatusPending || s == StatusPaymentFailed
}

func (s Status) CanFailPayment() bool {
	return s == StatusPending
}
