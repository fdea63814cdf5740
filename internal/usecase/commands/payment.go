package commands

import (
	"context"
	"log/slog"

	"hof-drops/internal/domain/order"
	"hof-drops/internal/infra"
	"hof-drops/internal/pkg/clock"
	"hof-drops/internal/pkg/errs"
	"hof-drops/internal/usecase/shared"
)

type PaymentOutcome string

const (
	PaymentSucceeded PaymentOutcome = "succeeded"
	PaymentFailed    PaymentOutcome = "failed"
	PaymentIgnored   PaymentOutcome = "ignored"
)

// PaymentEvent is a verified provider event reduced to what finalization needs.
type PaymentEvent struct {
	ID              string
	Type            string
	Outcome         PaymentOutcome
	OrderNumber     string
	PaymentIntentID string
}

type PaymentResult struct {
	Duplicate   bool
	OrderFound  bool
	OrderStatus string
	Changed     bool
}

type PaymentCommands interface {
	HandlePaymentEvent(ctx context.Context, ev PaymentEvent) (*PaymentResult, error)
}

type paymentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPaymentUseCase(uow shared.UnitOfWork, clock clock.Clock) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow, clock: clock}
}

func (p *paymentUseCaseImpl) HandlePaymentEvent(ctx context.Context, ev PaymentEvent) (*PaymentResult, error) {
	if ev.ID == "" {
		return nil, errs.Mark(errs.New("payment event id is required"), ErrValidation)
	}
	if ev.Outcome == PaymentIgnored {
		slog.InfoContext(ctx, "payment event ignored", "event_id", ev.ID, "event_type", ev.Type)
		return &PaymentResult{}, nil
	}

	var result *PaymentResult
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := p.clock.Now()
		result = &PaymentResult{}

		state, err := tx.Orders().LockByNumber(ctx, tx.DB(), ev.OrderNumber)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			slog.WarnContext(ctx, "payment event references unknown order",
				"event_id", ev.ID, "order_number", ev.OrderNumber)
			fresh, err := tx.PaymentEvents().Record(ctx, tx.DB(), ev.ID, ev.Type, nil, now)
			result.Duplicate = !fresh
			return err
		}
		result.OrderFound = true
		result.OrderStatus = state.Status.String()

		fresh, err := tx.PaymentEvents().Record(ctx, tx.DB(), ev.ID, ev.Type, &state.ID, now)
		if err != nil {
			return err
		}
		if !fresh {
			result.Duplicate = true
			return nil
		}

		switch ev.Outcome {
		case PaymentSucceeded:
			return p.applySuccess(ctx, tx, state, result)
		case PaymentFailed:
			return p.applyFailure(ctx, tx, state, result)
		}
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "payment event processing failed",
			"event_id", ev.ID, "order_number", ev.OrderNumber, "error", err.Error())
		return nil, errs.Mark(err, ErrTransactionFailure)
	}

	if result.Duplicate {
		slog.InfoContext(ctx, "duplicate payment event acknowledged", "event_id", ev.ID)
	}
	return result, nil
}

// applySuccess converges with direct order creation: the ledger is decremented
// only if no earlier path applied it, and the session's holds are released.
func (p *paymentUseCaseImpl) applySuccess(ctx context.Context, tx shared.Tx, state *shared.OrderState, result *PaymentResult) error {
	now := p.clock.Now()

	if state.Status.CanBecomePaid() {
		changed, err := tx.Orders().MarkPaid(ctx, tx.DB(), state.ID, now)
		if err != nil {
			return err
		}
		if changed {
			result.Changed = true
			result.OrderStatus = order.StatusPaid.String()
		}
	} else if state.Status != order.StatusPaid {
		slog.WarnContext(ctx, "payment succeeded for order in terminal status",
			"order_id", state.ID, "status", state.Status.String())
		return nil
	}

	if !state.InventoryApplied {
		lines, err := tx.Orders().Items(ctx, tx.DB(), state.ID)
		if err != nil {
			return err
		}
		if err := applyInventory(ctx, tx, state.ID, lines, now); err != nil {
			return err
		}
	}

	if state.SessionID != "" {
		if _, err := tx.Reservations().ReleaseSession(ctx, tx.DB(), state.SessionID, now); err != nil {
			return err
		}
	}
	return nil
}

func (p *paymentUseCaseImpl) applyFailure(ctx context.Context, tx shared.Tx, state *shared.OrderState, result *PaymentResult) error {
	if !state.Status.CanFailPayment() {
		slog.InfoContext(ctx, "payment failure ignored for order status",
			"order_id", state.ID, "status", state.Status.String())
		return nil
	}
	changed, err := tx.Orders().MarkPaymentFailed(ctx, tx.DB(), state.ID, p.clock.Now())
	if err != nil {
		return err
	}
	if changed {
		result.Changed = true
		result.OrderStatus = order.StatusPaymentFailed.String()
	}
	return nil
}
