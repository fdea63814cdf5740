//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hof-drops/internal/pkg/errs"
	"hof-drops/internal/usecase/commands"
	"hof-drops/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestock(t *testing.T) {
	store := memstore.New()
	cmds := commands.NewInventoryUseCase(store)
	productID := store.AddProduct(memstore.ProductSeed{IsLimitedEdition: true})
	variantID := store.AddVariant(productID, 2)

	t.Run("adds to the ledger", func(t *testing.T) {
		res, err := cmds.Restock(context.Background(), variantID, 5)
		require.NoError(t, err)
		assert.Equal(t, int32(7), res.Inventory)
		assert.Equal(t, int32(7), store.Inventory(variantID))
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		_, err := cmds.Restock(context.Background(), variantID, 0)
		assert.True(t, errs.Is(err, commands.ErrValidation), "got %v", err)
	})

	t.Run("unknown variant", func(t *testing.T) {
		_, err := cmds.Restock(context.Background(), uuid.New(), 1)
		assert.True(t, errs.Is(err, commands.ErrVariantNotFound), "got %v", err)
	})
}
