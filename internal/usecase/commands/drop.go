package commands

import (
	"context"
	"log/slog"

	"hof-drops/internal/domain/drop"
	"hof-drops/internal/domain/notification"
	"hof-drops/internal/domain/reservation"
	reqdto "hof-drops/internal/handler/dto/request"
	"hof-drops/internal/pkg/clock"
	"hof-drops/internal/pkg/errs"
	"hof-drops/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubscribeResult struct {
	ProductID uuid.UUID
	Email     string
	Created   bool
}

type NotifyResult struct {
	ProductID uuid.UUID
	Enqueued  int
}

type DropCommands interface {
	Subscribe(ctx context.Context, productID uuid.UUID, req reqdto.SubscribeRequest) (*SubscribeResult, error)
	// NotifySubscribers queues one drop_live job per subscriber not yet notified.
	NotifySubscribers(ctx context.Context, productID uuid.UUID) (*NotifyResult, error)
}

type dropUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDropUseCase(uow shared.UnitOfWork, clock clock.Clock) DropCommands {
	return &dropUseCaseImpl{uow: uow, clock: clock}
}

func (d *dropUseCaseImpl) Subscribe(ctx context.Context, productID uuid.UUID, req reqdto.SubscribeRequest) (*SubscribeResult, error) {
	sub, err := req.ToDomain(productID)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	result := &SubscribeResult{ProductID: productID, Email: sub.Email().String()}
	err = d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		product, err := loadActiveProduct(ctx, tx, productID)
		if err != nil {
			return err
		}
		if !product.IsLimitedEdition {
			return ErrNotLimitedEdition
		}
		if product.Window.HasEnded(d.clock.Now()) {
			return reservation.ErrDropEnded
		}

		created, err := tx.DropSubscriptions().Upsert(ctx, tx.DB(), sub)
		result.Created = created
		return err
	})
	if err != nil {
		return nil, classifyDropErr(err)
	}

	slog.InfoContext(ctx, "drop subscription recorded",
		"product_id", productID, "source", sub.Source(), "created", result.Created)
	return result, nil
}

func (d *dropUseCaseImpl) NotifySubscribers(ctx context.Context, productID uuid.UUID) (*NotifyResult, error) {
	result := &NotifyResult{ProductID: productID}
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := d.clock.Now()
		result.Enqueued = 0

		product, err := loadActiveProduct(ctx, tx, productID)
		if err != nil {
			return err
		}
		if !product.IsLimitedEdition {
			return ErrNotLimitedEdition
		}
		switch product.Window.Classify(now) {
		case drop.PhaseUpcoming:
			return reservation.ErrDropNotStarted
		case drop.PhaseEnded:
			return reservation.ErrDropEnded
		}

		pending, err := tx.DropSubscriptions().PendingForProduct(ctx, tx.DB(), productID)
		if err != nil {
			return err
		}

		ids := make([]uuid.UUID, 0, len(pending))
		for _, sub := range pending {
			job, err := notification.NewDropLiveJob(notification.DropLivePayload{
				ProductID:   product.ID,
				ProductName: product.Name,
				Email:       sub.Email,
				DropEndDate: product.Window.DropEndDate(),
			}, now)
			if err != nil {
				return err
			}
			if err := tx.Notifications().Enqueue(ctx, tx.DB(), job); err != nil {
				return err
			}
			ids = append(ids, sub.ID)
		}

		if _, err := tx.DropSubscriptions().MarkNotified(ctx, tx.DB(), ids, now); err != nil {
			return err
		}
		result.Enqueued = len(ids)
		return nil
	})
	if err != nil {
		return nil, classifyDropErr(err)
	}

	slog.InfoContext(ctx, "drop subscribers notified", "product_id", productID, "enqueued", result.Enqueued)
	return result, nil
}

func classifyDropErr(err error) error {
	switch {
	case errs.Is(err, ErrProductNotFound),
		errs.Is(err, ErrNotLimitedEdition),
		errs.Is(err, ErrValidation),
		errs.Is(err, reservation.ErrDropEnded),
		errs.Is(err, reservation.ErrDropNotStarted):
		return err
	}
	return errs.Mark(err, ErrTransactionFailure)
}
