package commands

import (
	"context"
	"log/slog"
	"time"

	"hof-drops/internal/domain/reservation"
	reqdto "hof-drops/internal/handler/dto/request"
	"hof-drops/internal/infra"
	"hof-drops/internal/pkg/clock"
	"hof-drops/internal/pkg/errs"
	"hof-drops/internal/usecase/shared"

	"github.com/google/uuid"
)

const noReservationNeeded = "No reservation needed for regular products"

type ReserveResult struct {
	Reserved       bool
	Message        string
	ReservationID  uuid.UUID
	SessionID      string
	SessionCreated bool
	ProductID      uuid.UUID
	VariantID      uuid.UUID
	Quantity       int32
	ExpiresAt      time.Time
	RemainingMs    int64
}

type SweepResult struct {
	Reservations    int64
	IdempotencyKeys int64
}

type ReservationCommands interface {
	Reserve(ctx context.Context, req reqdto.ReserveRequest) (*ReserveResult, error)
	ReleaseSession(ctx context.Context, sessionID string) (int64, error)
	ReleaseByID(ctx context.Context, reservationID uuid.UUID, sessionID string) error
	SweepExpired(ctx context.Context) (*SweepResult, error)
}

type reservationUseCaseImpl struct {
	uow    shared.UnitOfWork
	policy reservation.HoldPolicy
	clock  clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, policy reservation.HoldPolicy, clock clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:    uow,
		policy: policy,
		clock:  clock,
	}
}

func (r *reservationUseCaseImpl) Reserve(ctx context.Context, req reqdto.ReserveRequest) (*ReserveResult, error) {
	quantity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	session, created, err := resolveSession(req.SessionID)
	if err != nil {
		return nil, err
	}

	var result *ReserveResult
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()
		result = nil

		product, err := loadActiveProduct(ctx, tx, req.ProductID)
		if err != nil {
			return err
		}

		if !product.IsLimitedEdition {
			result = &ReserveResult{Reserved: false, Message: noReservationNeeded, SessionID: req.SessionID, ProductID: product.ID}
			return nil
		}
		if product.Window.HasEnded(now) {
			return reservation.ErrDropEnded
		}

		variant, err := lockTargetVariant(ctx, tx, product.ID, req.VariantID)
		if err != nil {
			return err
		}

		if _, err := tx.Reservations().SweepExpiredForVariant(ctx, tx.DB(), variant.ID, now); err != nil {
			return err
		}

		held, err := tx.Reservations().HeldByOthers(ctx, tx.DB(), variant.ID, session.String(), now)
		if err != nil {
			return err
		}
		if err := reservation.NewAvailability(variant.Inventory, held).Ensure(int64(quantity.Int32())); err != nil {
			return err
		}

		hold, err := r.upsertHold(ctx, tx, session, product.ID, variant.ID, quantity, now)
		if err != nil {
			return err
		}

		result = &ReserveResult{
			Reserved:       true,
			ReservationID:  hold.ID(),
			SessionID:      session.String(),
			SessionCreated: created,
			ProductID:      product.ID,
			VariantID:      variant.ID,
			Quantity:       hold.Quantity().Int32(),
			ExpiresAt:      hold.ExpiresAt(),
			RemainingMs:    hold.Remaining(now).Milliseconds(),
		}
		return nil
	})
	if err != nil {
		return nil, r.classifyReserveErr(ctx, req, err)
	}
	return result, nil
}

// upsertHold keeps at most one active row per (session, variant).
func (r *reservationUseCaseImpl) upsertHold(
	ctx context.Context,
	tx shared.Tx,
	session reservation.SessionID,
	productID, variantID uuid.UUID,
	quantity reservation.Quantity,
	now time.Time,
) (*reservation.CartReservation, error) {
	existing, err := tx.Reservations().ActiveForSession(ctx, tx.DB(), session.String(), variantID, now)
	switch {
	case err == nil:
		if err := existing.Refresh(quantity, r.policy, now); err != nil {
			return nil, err
		}
		if err := tx.Reservations().Refresh(ctx, tx.DB(), existing); err != nil {
			return nil, err
		}
		return existing, nil
	case infra.IsKind(err, infra.KindNotFound):
		hold := reservation.NewCartReservation(session, productID, variantID, quantity, r.policy, now)
		if _, err := tx.Reservations().Create(ctx, tx.DB(), hold); err != nil {
			return nil, err
		}
		return hold, nil
	default:
		return nil, err
	}
}

func (r *reservationUseCaseImpl) classifyReserveErr(ctx context.Context, req reqdto.ReserveRequest, err error) error {
	if short, ok := reservation.AsInsufficientInventory(err); ok {
		slog.InfoContext(ctx, "reservation rejected: insufficient inventory",
			"product_id", req.ProductID, "available", short.Available, "requested", short.Requested)
		return err
	}
	switch {
	case errs.Is(err, reservation.ErrDropEnded):
		slog.InfoContext(ctx, "reservation rejected: drop ended", "product_id", req.ProductID)
		return err
	case errs.Is(err, ErrProductNotFound), errs.Is(err, ErrVariantNotFound), errs.Is(err, ErrValidation):
		return err
	}
	return errs.Mark(err, ErrTransactionFailure)
}

func (r *reservationUseCaseImpl) ReleaseSession(ctx context.Context, sessionID string) (int64, error) {
	session, err := reservation.NewSessionID(sessionID)
	if err != nil {
		return 0, errs.Mark(err, ErrValidation)
	}

	var released int64
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Reservations().ReleaseSession(ctx, tx.DB(), session.String(), r.clock.Now())
		released = n
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, ErrTransactionFailure)
	}
	return released, nil
}

// ReleaseByID is a no-op when the hold is already inactive or belongs to another session.
func (r *reservationUseCaseImpl) ReleaseByID(ctx context.Context, reservationID uuid.UUID, sessionID string) error {
	session, err := reservation.NewSessionID(sessionID)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		released, err := tx.Reservations().ReleaseByID(ctx, tx.DB(), reservationID, session.String(), r.clock.Now())
		if err != nil {
			return err
		}
		if !released {
			slog.DebugContext(ctx, "release matched no active hold", "reservation_id", reservationID)
		}
		return nil
	})
	if err != nil {
		return errs.Mark(err, ErrTransactionFailure)
	}
	return nil
}

func (r *reservationUseCaseImpl) SweepExpired(ctx context.Context) (*SweepResult, error) {
	result := &SweepResult{}
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()
		n, err := tx.Reservations().SweepExpired(ctx, tx.DB(), now)
		if err != nil {
			return err
		}
		k, err := tx.Idempotency().DeleteExpired(ctx, tx.DB(), now)
		if err != nil {
			return err
		}
		result.Reservations, result.IdempotencyKeys = n, k
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrTransactionFailure)
	}
	return result, nil
}

func resolveSession(raw string) (reservation.SessionID, bool, error) {
	if raw == "" {
		return reservation.GenerateSessionID(), true, nil
	}
	s, err := reservation.NewSessionID(raw)
	if err != nil {
		return reservation.SessionID{}, false, errs.Mark(err, ErrValidation)
	}
	return s, false, nil
}

func loadActiveProduct(ctx context.Context, tx shared.Tx, productID uuid.UUID) (*shared.ProductSnapshot, error) {
	product, err := tx.Catalog().ProductByID(ctx, tx.DB(), productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if !product.IsActive {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// lockTargetVariant resolves the explicit or default variant and takes its row lock.
func lockTargetVariant(ctx context.Context, tx shared.Tx, productID uuid.UUID, variantID *uuid.UUID) (*shared.VariantSnapshot, error) {
	id := uuid.Nil
	if variantID != nil {
		id = *variantID
	} else {
		def, err := tx.Catalog().DefaultVariant(ctx, tx.DB(), productID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrVariantNotFound
			}
			return nil, err
		}
		id = def.ID
	}

	variant, err := tx.Catalog().LockVariant(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVariantNotFound
		}
		return nil, err
	}
	if variant.ProductID != productID || !variant.IsActive {
		return nil, ErrVariantNotFound
	}
	return variant, nil
}
