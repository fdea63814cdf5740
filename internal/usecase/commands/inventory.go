package commands

import (
	"context"
	"log/slog"

	"hof-drops/internal/infra"
	"hof-drops/internal/pkg/errs"
	"hof-drops/internal/usecase/shared"

	"github.com/google/uuid"
)

type RestockResult struct {
	VariantID uuid.UUID
	Inventory int32
}

type InventoryCommands interface {
	Restock(ctx context.Context, variantID uuid.UUID, quantity int32) (*RestockResult, error)
}

type inventoryUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewInventoryUseCase(uow shared.UnitOfWork) InventoryCommands {
	return &inventoryUseCaseImpl{uow: uow}
}

func (i *inventoryUseCaseImpl) Restock(ctx context.Context, variantID uuid.UUID, quantity int32) (*RestockResult, error) {
	if quantity <= 0 {
		return nil, errs.Mark(errs.New("restock quantity must be positive"), ErrValidation)
	}

	result := &RestockResult{VariantID: variantID}
	err := i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Catalog().LockVariant(ctx, tx.DB(), variantID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVariantNotFound
			}
			return err
		}
		inventory, err := tx.Catalog().Restock(ctx, tx.DB(), variantID, quantity)
		result.Inventory = inventory
		return err
	})
	if err != nil {
		if errs.Is(err, ErrVariantNotFound) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrTransactionFailure)
	}

	slog.InfoContext(ctx, "variant restocked", "variant_id", variantID, "added", quantity, "inventory", result.Inventory)
	return result, nil
}
