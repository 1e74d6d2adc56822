package queries

import (
	"context"
	"time"

	"storefront-inventory/internal/infra"
	"storefront-inventory/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
)

var (
	ErrInventoryNotFound = errs.ErrInventoryNotFound
)

type InventoryView struct {
	ID                uuid.UUID `json:"id"`
	ProductID         string    `json:"product_id"`
	Quantity          int32     `json:"quantity"`
	ReservedQuantity  int32     `json:"reserved_quantity"`
	LowStockThreshold int32     `json:"low_stock_threshold"`
	LowStock          bool      `json:"low_stock"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type AdjustmentView struct {
	ID             uuid.UUID `json:"id"`
	InventoryID    uuid.UUID `json:"inventory_id"`
	AdjustmentType string    `json:"adjustment_type"`
	QuantityChange int32     `json:"quantity_change"`
	Reason         string    `json:"reason"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListFilter narrows the inventory listing; zero value lists everything.
type ListFilter struct {
	ProductID    *string
	LowStockOnly bool
}

type InventoryReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryView, error)
	FindByProductID(ctx context.Context, productID string) (*InventoryView, error)
	List(ctx context.Context, filter ListFilter, limit, offset int32) ([]*InventoryView, error)
}

type AdjustmentReadStore interface {
	ListByInventory(ctx context.Context, inventoryID uuid.UUID) ([]*AdjustmentView, error)
}

type InventoryQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*InventoryView, error)
	GetByProduct(ctx context.Context, productID string) (*InventoryView, error)
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]*InventoryView, error)
	ListAdjustments(ctx context.Context, inventoryID uuid.UUID) ([]*AdjustmentView, error)
}

type inventoryQueriesImpl struct {
	records     InventoryReadStore
	adjustments AdjustmentReadStore
}

func NewInventoryQueries(records InventoryReadStore, adjustments AdjustmentReadStore) InventoryQueries {
	return &inventoryQueriesImpl{records: records, adjustments: adjustments}
}

func (q *inventoryQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*InventoryView, error) {
	view, err := q.records.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *inventoryQueriesImpl) GetByProduct(ctx context.Context, productID string) (*InventoryView, error) {
	view, err := q.records.FindByProductID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *inventoryQueriesImpl) List(ctx context.Context, filter ListFilter, limit, offset int) ([]*InventoryView, error) {
	limit = ValidateLimit(limit)
	if offset < 0 {
		offset = 0
	}
	return q.records.List(ctx, filter, int32(limit), int32(offset))
}

func (q *inventoryQueriesImpl) ListAdjustments(ctx context.Context, inventoryID uuid.UUID) ([]*AdjustmentView, error) {
	return q.adjustments.ListByInventory(ctx, inventoryID)
}

// ValidateLimit clamps a caller-supplied page size into [1, MaxListLimit].
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
