package notification

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type JobKind string

const (
	KindOrderConfirmation JobKind = "order_confirmation"
	KindDropLive          JobKind = "drop_live"
)

type JobStatus string

const (
	StatusQueued JobStatus = "queued"
	StatusSent   JobStatus = "sent"
	StatusFailed JobStatus = "failed"
)

const ChannelEmail = "email"

// Job is one outbox row destined for the notification topic.
type Job struct {
	Kind    JobKind
	Channel string
	Payload []byte
	RunAt   time.Time
}

type OrderConfirmationPayload struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	TotalCents  int64     `json:"total_cents"`
	Currency    string    `json:"currency"`
}

type DropLivePayload struct {
	ProductID   uuid.UUID  `json:"product_id"`
	ProductName string     `json:"product_name"`
	Email       string     `json:"email"`
	DropEndDate *time.Time `json:"drop_end_date,omitempty"`
}

func NewOrderConfirmationJob(p OrderConfirmationPayload, runAt time.Time) (Job, error) {
	return newJob(KindOrderConfirmation, p, runAt)
}

func NewDropLiveJob(p DropLivePayload, runAt time.Time) (Job, error) {
	return newJob(KindDropLive, p, runAt)
}

func newJob(kind JobKind, payload any, runAt time.Time) (Job, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Job{}, err
	}
	return Job{Kind: kind, Channel: ChannelEmail, Payload: b, RunAt: runAt}, nil
}
