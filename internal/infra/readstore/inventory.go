package readstore

import (
	"context"

	"storefront-inventory/internal/infra"
	"storefront-inventory/internal/infra/db"
	"storefront-inventory/internal/pkg/pgconv"
	"storefront-inventory/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const inventoryColumns = `id, product_id, quantity, reserved_quantity, low_stock_threshold,
       quantity < low_stock_threshold AS low_stock, created_at, updated_at`

type InventoryReadStore struct {
	db db.DBTX
}

func NewInventoryReadStore(dbtx db.DBTX) *InventoryReadStore {
	return &InventoryReadStore{db: dbtx}
}

func (r *InventoryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InventoryView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+inventoryColumns+` FROM inventories WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	view, err := scanInventoryView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inventory record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inventory record by ID", err)
	}
	return view, nil
}

func (r *InventoryReadStore) FindByProductID(ctx context.Context, productID string) (*queries.InventoryView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+inventoryColumns+` FROM inventories WHERE product_id = $1`,
		productID,
	)
	view, err := scanInventoryView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inventory record not found for product", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inventory record by product ID", err)
	}
	return view, nil
}

// List orders by last mutation, newest first; ties break on id so pagination
// stays stable when several rows share an updated_at.
const listInventorySQL = `
SELECT ` + inventoryColumns + `
FROM inventories
WHERE ($1::text IS NULL OR product_id = $1)
  AND (NOT $2::boolean OR quantity < low_stock_threshold)
ORDER BY updated_at DESC, id DESC
LIMIT $3 OFFSET $4`

func (r *InventoryReadStore) List(ctx context.Context, filter queries.ListFilter, limit, offset int32) ([]*queries.InventoryView, error) {
	rows, err := r.db.Query(ctx, listInventorySQL,
		pgconv.StringPtrToPgtype(filter.ProductID),
		filter.LowStockOnly,
		limit,
		offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory records", err)
	}
	defer rows.Close()

	result := make([]*queries.InventoryView, 0)
	for rows.Next() {
		view, scanErr := scanInventoryView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory record", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read inventory records", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInventoryView(row rowScanner) (*queries.InventoryView, error) {
	var (
		id                   pgtype.UUID
		productID            string
		quantity             int32
		reservedQuantity     int32
		lowStockThreshold    int32
		lowStock             bool
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &productID, &quantity, &reservedQuantity, &lowStockThreshold, &lowStock, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return &queries.InventoryView{
		ID:                pgconv.UUIDFromPgtype(id),
		ProductID:         productID,
		Quantity:          quantity,
		ReservedQuantity:  reservedQuantity,
		LowStockThreshold: lowStockThreshold,
		LowStock:          lowStock,
		CreatedAt:         pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:         pgconv.TimeFromPgtype(updatedAt),
	}, nil
}
