//go:build unit

package inventory_test

import (
	"testing"
	"time"

	"storefront-inventory/internal/domain/inventory"
	"storefront-inventory/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.InventoryBuilder)
	errIs  error
}

func TestRecord(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewInventoryBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "P-1001", actual.ProductID())
		assert.Equal(t, int32(20), actual.Quantity())
		assert.Equal(t, int32(0), actual.ReservedQuantity())
		assert.Equal(t, int32(5), actual.LowStockThreshold())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("product id validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty product id",
				mutate: func(b *builder.InventoryBuilder) { b.WithProductID("") },
				errIs:  inventory.ErrProductIDRequired,
			},
			{
				name:   "whitespace only product id",
				mutate: func(b *builder.InventoryBuilder) { b.WithProductID("   ") },
				errIs:  inventory.ErrProductIDRequired,
			},
			{
				name:   "single character product id",
				mutate: func(b *builder.InventoryBuilder) { b.WithProductID("P") },
			},
		})
	})

	t.Run("quantity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero quantity",
				mutate: func(b *builder.InventoryBuilder) { b.WithQuantity(0) },
			},
			{
				name:   "negative quantity",
				mutate: func(b *builder.InventoryBuilder) { b.WithQuantity(-1) },
				errIs:  inventory.ErrNegativeQuantity,
			},
			{
				name:   "zero reserved quantity",
				mutate: func(b *builder.InventoryBuilder) { b.WithReservedQuantity(0) },
			},
			{
				name:   "negative reserved quantity",
				mutate: func(b *builder.InventoryBuilder) { b.WithReservedQuantity(-1) },
				errIs:  inventory.ErrNegativeReservedQuantity,
			},
			{
				name:   "zero threshold",
				mutate: func(b *builder.InventoryBuilder) { b.WithLowStockThreshold(0) },
			},
			{
				name:   "negative threshold",
				mutate: func(b *builder.InventoryBuilder) { b.WithLowStockThreshold(-1) },
				errIs:  inventory.ErrNegativeThreshold,
			},
		})
	})

	t.Run("product id trimming", func(t *testing.T) {
		now := time.Now()

		rec, err := inventory.NewRecord("  P-2002  ", 10, 0, 3, now)
		require.NoError(t, err)
		require.NotNil(t, rec)

		assert.Equal(t, "P-2002", rec.ProductID())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		now := time.Now()

		rec1, err1 := inventory.NewRecord("P-1", 10, 0, 3, now)
		rec2, err2 := inventory.NewRecord("P-1", 10, 0, 3, now)

		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, rec1.ID(), rec2.ID())
	})
}

func TestRecordIsLowStock(t *testing.T) {
	cases := []struct {
		name      string
		quantity  int32
		threshold int32
		want      bool
	}{
		{name: "well above threshold", quantity: 20, threshold: 5, want: false},
		{name: "exactly at threshold", quantity: 5, threshold: 5, want: false},
		{name: "one below threshold", quantity: 4, threshold: 5, want: true},
		{name: "zero quantity", quantity: 0, threshold: 5, want: true},
		{name: "zero threshold never flags", quantity: 0, threshold: 0, want: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec, err := builder.NewInventoryBuilder().
				WithQuantity(c.quantity).
				WithLowStockThreshold(c.threshold).
				BuildDomain()
			require.NoError(t, err)

			assert.Equal(t, c.want, rec.IsLowStock())
		})
	}
}

func TestAdjustmentDefaults(t *testing.T) {
	t.Run("type defaults to manual", func(t *testing.T) {
		entry := inventory.NewAdjustment(uuid.New(), "", -3, "", time.Now())

		assert.Equal(t, inventory.AdjustmentManual, entry.AdjustmentType())
		assert.Equal(t, "manual adjustment", entry.Reason())
	})

	t.Run("reason defaults from type", func(t *testing.T) {
		entry := inventory.NewAdjustment(uuid.New(), inventory.AdjustmentSale, -3, "", time.Now())

		assert.Equal(t, inventory.AdjustmentSale, entry.AdjustmentType())
		assert.Equal(t, "sale adjustment", entry.Reason())
	})

	t.Run("custom type passes through", func(t *testing.T) {
		entry := inventory.NewAdjustment(uuid.New(), inventory.AdjustmentType("cycle_count"), 7, "", time.Now())

		assert.Equal(t, inventory.AdjustmentType("cycle_count"), entry.AdjustmentType())
		assert.Equal(t, "cycle_count adjustment", entry.Reason())
	})

	t.Run("explicit reason wins", func(t *testing.T) {
		entry := inventory.NewAdjustment(uuid.New(), inventory.AdjustmentCorrection, -2, "damaged in transit", time.Now())

		assert.Equal(t, "damaged in transit", entry.Reason())
	})

	t.Run("whitespace reason falls back to default", func(t *testing.T) {
		entry := inventory.NewAdjustment(uuid.New(), inventory.AdjustmentRestock, 5, "   ", time.Now())

		assert.Equal(t, "restock adjustment", entry.Reason())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewInventoryBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
