package payment

import (
	"encoding/json"
	"strings"

	"hof-drops/internal/pkg/config"
	"hof-drops/internal/pkg/errs"
	"hof-drops/internal/usecase/commands"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

var (
	ErrInvalidSignature = commands.ErrInvalidSignature
	ErrMalformedEvent   = errs.New("malformed webhook event")
)

const (
	eventPaymentSucceeded = "payment_intent.succeeded"
	eventPaymentFailed    = "payment_intent.payment_failed"

	orderNumberMetadataKey = "order_number"
)

type StripeVerifier struct {
	secret  string
	options webhook.ConstructEventOptions
}

func NewStripeVerifier(cfg config.PaymentConfig) *StripeVerifier {
	return &StripeVerifier{
		secret: cfg.WebhookSecret,
		options: webhook.ConstructEventOptions{
			Tolerance:                cfg.Tolerance,
			IgnoreAPIVersionMismatch: true,
		},
	}
}

// Verify checks the Stripe-Signature header against the raw body and reduces
// the event to a PaymentEvent. Unknown event types come back as ignored.
func (v *StripeVerifier) Verify(payload []byte, signatureHeader string) (*commands.PaymentEvent, error) {
	if strings.TrimSpace(signatureHeader) == "" {
		return nil, errs.Wrap(ErrInvalidSignature, "missing signature header")
	}

	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, v.options)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "verify webhook signature"), ErrInvalidSignature)
	}

	ev := &commands.PaymentEvent{
		ID:      event.ID,
		Type:    string(event.Type),
		Outcome: outcomeFor(string(event.Type)),
	}
	if ev.Outcome == commands.PaymentIgnored {
		return ev, nil
	}

	if event.Data == nil || len(event.Data.Raw) == 0 {
		return nil, errs.Wrap(ErrMalformedEvent, "event has no data object")
	}
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode payment intent"), ErrMalformedEvent)
	}

	ev.PaymentIntentID = intent.ID
	ev.OrderNumber = intent.Metadata[orderNumberMetadataKey]
	if ev.OrderNumber == "" {
		return nil, errs.Wrapf(ErrMalformedEvent, "payment intent %s has no %s metadata", intent.ID, orderNumberMetadataKey)
	}
	return ev, nil
}

func outcomeFor(eventType string) commands.PaymentOutcome {
	switch eventType {
	case eventPaymentSucceeded:
		return commands.PaymentSucceeded
	case eventPaymentFailed:
		return commands.PaymentFailed
	default:
		return commands.PaymentIgnored
	}
}
