//go:build unit || e2e

package builder

import (
	"time"

	dominv "storefront-inventory/internal/domain/inventory"
	reqdto "storefront-inventory/internal/handler/dto/request"
	"storefront-inventory/internal/usecase/commands"
	"storefront-inventory/internal/usecase/queries"
	"storefront-inventory/internal/usecase/shared"

	"github.com/google/uuid"
)

type InventoryBuilder struct {
	ProductID         string
	Quantity          int32
	ReservedQuantity  int32
	LowStockThreshold int32
	Now               time.Time
}

func NewInventoryBuilder() *InventoryBuilder {
	return &InventoryBuilder{
		ProductID:         "P-1001",
		Quantity:          20,
		ReservedQuantity:  0,
		LowStockThreshold: 5,
		Now:               time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *InventoryBuilder) With(mutate func(*InventoryBuilder)) *InventoryBuilder {
	mutate(b)
	return b
}

func (b *InventoryBuilder) WithProductID(id string) *InventoryBuilder {
	b.ProductID = id
	return b
}

func (b *InventoryBuilder) WithQuantity(q int32) *InventoryBuilder {
	b.Quantity = q
	return b
}

func (b *InventoryBuilder) WithReservedQuantity(q int32) *InventoryBuilder {
	b.ReservedQuantity = q
	return b
}

func (b *InventoryBuilder) WithLowStockThreshold(v int32) *InventoryBuilder {
	b.LowStockThreshold = v
	return b
}

// Build methods
func (b *InventoryBuilder) BuildDomain() (*dominv.Record, error) {
	return dominv.NewRecord(b.ProductID, b.Quantity, b.ReservedQuantity, b.LowStockThreshold, b.Now)
}

func (b *InventoryBuilder) BuildCreateRequestDTO() reqdto.CreateInventoryRequest {
	quantity := b.Quantity
	reserved := b.ReservedQuantity
	threshold := b.LowStockThreshold
	return reqdto.CreateInventoryRequest{
		ProductID:         b.ProductID,
		Quantity:          &quantity,
		ReservedQuantity:  &reserved,
		LowStockThreshold: &threshold,
	}
}

func (b *InventoryBuilder) BuildSnapshot() *shared.RecordSnapshot {
	return &shared.RecordSnapshot{
		ID:                uuid.New(),
		ProductID:         b.ProductID,
		Quantity:          b.Quantity,
		ReservedQuantity:  b.ReservedQuantity,
		LowStockThreshold: b.LowStockThreshold,
		CreatedAt:         b.Now,
		UpdatedAt:         b.Now,
	}
}

func (b *InventoryBuilder) BuildAdjusted(previousQuantity int32) *shared.AdjustedRecord {
	return &shared.AdjustedRecord{
		RecordSnapshot:   *b.BuildSnapshot(),
		PreviousQuantity: previousQuantity,
	}
}

func (b *InventoryBuilder) BuildAdjustResult(previousQuantity, quantityChange int32) *commands.AdjustResult {
	return &commands.AdjustResult{
		Record:           *b.BuildSnapshot(),
		PreviousQuantity: previousQuantity,
		QuantityChange:   quantityChange,
	}
}

func (b *InventoryBuilder) BuildView() *queries.InventoryView {
	return &queries.InventoryView{
		ID:                uuid.New(),
		ProductID:         b.ProductID,
		Quantity:          b.Quantity,
		ReservedQuantity:  b.ReservedQuantity,
		LowStockThreshold: b.LowStockThreshold,
		LowStock:          b.Quantity < b.LowStockThreshold,
		CreatedAt:         b.Now,
		UpdatedAt:         b.Now,
	}
}
