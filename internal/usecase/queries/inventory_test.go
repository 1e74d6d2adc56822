//go:build unit

package queries_test

import (
	"context"
	"testing"

	"storefront-inventory/internal/infra"
	"storefront-inventory/internal/usecase/queries"
	"storefront-inventory/tests/common/builder"
	readstoremock "storefront-inventory/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInventoryQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		records := readstoremock.NewMockInventoryReadStore(ctrl)
		adjustments := readstoremock.NewMockAdjustmentReadStore(ctrl)
		q := queries.NewInventoryQueries(records, adjustments)

		expected := builder.NewInventoryBuilder().BuildView()
		records.EXPECT().FindByID(ctx, expected.ID).Return(expected, nil)

		got, err := q.GetByID(ctx, expected.ID)
		require.NoError(t, err)
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("not found maps to the domain sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		records := readstoremock.NewMockInventoryReadStore(ctrl)
		adjustments := readstoremock.NewMockAdjustmentReadStore(ctrl)
		q := queries.NewInventoryQueries(records, adjustments)

		id := uuid.New()
		records.EXPECT().FindByID(ctx, id).
			Return(nil, infra.WrapRepoErr("inventory not found", nil, infra.KindNotFound))

		got, err := q.GetByID(ctx, id)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, queries.ErrInventoryNotFound)
	})
}

func TestInventoryQueries_GetByProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("not found maps to the domain sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		records := readstoremock.NewMockInventoryReadStore(ctrl)
		adjustments := readstoremock.NewMockAdjustmentReadStore(ctrl)
		q := queries.NewInventoryQueries(records, adjustments)

		records.EXPECT().FindByProductID(ctx, "P-404").
			Return(nil, infra.WrapRepoErr("inventory not found", nil, infra.KindNotFound))

		got, err := q.GetByProduct(ctx, "P-404")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, queries.ErrInventoryNotFound)
	})
}

func TestInventoryQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("paging is normalized before hitting the store", func(t *testing.T) {
		cases := []struct {
			name       string
			limit      int
			offset     int
			wantLimit  int32
			wantOffset int32
		}{
			{name: "defaults applied", limit: 0, offset: 0, wantLimit: 20, wantOffset: 0},
			{name: "negative values reset", limit: -5, offset: -10, wantLimit: 20, wantOffset: 0},
			{name: "cap enforced", limit: 10_000, offset: 40, wantLimit: 200, wantOffset: 40},
			{name: "in-range passthrough", limit: 50, offset: 100, wantLimit: 50, wantOffset: 100},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				records := readstoremock.NewMockInventoryReadStore(ctrl)
				adjustments := readstoremock.NewMockAdjustmentReadStore(ctrl)
				q := queries.NewInventoryQueries(records, adjustments)

				records.EXPECT().
					List(ctx, queries.ListFilter{}, c.wantLimit, c.wantOffset).
					Return([]*queries.InventoryView{}, nil)

				_, err := q.List(ctx, queries.ListFilter{}, c.limit, c.offset)
				require.NoError(t, err)
			})
		}
	})

	t.Run("filter passes through untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		records := readstoremock.NewMockInventoryReadStore(ctrl)
		adjustments := readstoremock.NewMockAdjustmentReadStore(ctrl)
		q := queries.NewInventoryQueries(records, adjustments)

		productID := "P-1001"
		filter := queries.ListFilter{ProductID: &productID, LowStockOnly: true}
		expected := []*queries.InventoryView{builder.NewInventoryBuilder().WithQuantity(2).BuildView()}
		records.EXPECT().List(ctx, filter, int32(20), int32(0)).Return(expected, nil)

		got, err := q.List(ctx, filter, 0, 0)
		require.NoError(t, err)
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("list mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-1))
	assert.Equal(t, 1, queries.ValidateLimit(1))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
