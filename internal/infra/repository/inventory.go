package repository

import (
	"context"

	"storefront-inventory/internal/domain/inventory"
	"storefront-inventory/internal/infra"
	"storefront-inventory/internal/infra/db"
	"storefront-inventory/internal/pkg/pgconv"
	"storefront-inventory/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type InventoryRepository struct {
	db db.DBTX
}

func NewInventoryRepository(dbtx db.DBTX) *InventoryRepository {
	return &InventoryRepository{db: dbtx}
}

const createInventorySQL = `
INSERT INTO inventories (id, product_id, quantity, reserved_quantity, low_stock_threshold, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING id, product_id, quantity, reserved_quantity, low_stock_threshold, created_at, updated_at`

func (r *InventoryRepository) Create(ctx context.Context, rec *inventory.Record) (*shared.RecordSnapshot, error) {
	row := r.db.QueryRow(ctx, createInventorySQL,
		pgconv.UUIDToPgtype(rec.ID()),
		rec.ProductID(),
		rec.Quantity(),
		rec.ReservedQuantity(),
		rec.LowStockThreshold(),
		pgconv.TimeToPgtype(rec.CreatedAt()),
	)
	snap, err := scanRecordSnapshot(row)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return nil, infra.WrapRepoErr("inventory record already exists for product", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create inventory record", err)
	}
	return snap, nil
}

// COALESCE keeps unsupplied fields untouched while updated_at always moves;
// the prev subquery pins the pre-update quantity in the same statement.
const updateInventorySQL = `
UPDATE inventories i
SET quantity            = COALESCE($2, i.quantity),
    reserved_quantity   = COALESCE($3, i.reserved_quantity),
    low_stock_threshold = COALESCE($4, i.low_stock_threshold),
    updated_at          = now()
FROM (SELECT id, quantity FROM inventories WHERE id = $1 FOR UPDATE) prev
WHERE i.id = prev.id
RETURNING i.id, i.product_id, i.quantity, i.reserved_quantity, i.low_stock_threshold, i.created_at, i.updated_at, prev.quantity`

func (r *InventoryRepository) UpdateFields(ctx context.Context, id uuid.UUID, quantity, reservedQuantity, lowStockThreshold *int32) (*shared.AdjustedRecord, error) {
	row := r.db.QueryRow(ctx, updateInventorySQL,
		pgconv.UUIDToPgtype(id),
		pgconv.Int32PtrToPgtype(quantity),
		pgconv.Int32PtrToPgtype(reservedQuantity),
		pgconv.Int32PtrToPgtype(lowStockThreshold),
	)
	adjusted, err := scanAdjustedRecord(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inventory record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update inventory record", err)
	}
	return adjusted, nil
}

// The clamp is a single conditional statement so concurrent adjustments
// compose instead of losing updates; GREATEST floors the result at zero
// while prev.quantity reports what the row held before this delta.
const adjustQuantitySQL = `
UPDATE inventories i
SET quantity   = GREATEST(0, i.quantity + $2),
    updated_at = now()
FROM (SELECT id, quantity FROM inventories WHERE product_id = $1 FOR UPDATE) prev
WHERE i.id = prev.id
RETURNING i.id, i.product_id, i.quantity, i.reserved_quantity, i.low_stock_threshold, i.created_at, i.updated_at, prev.quantity`

func (r *InventoryRepository) AdjustQuantity(ctx context.Context, productID string, quantityChange int32) (*shared.AdjustedRecord, error) {
	row := r.db.QueryRow(ctx, adjustQuantitySQL, productID, quantityChange)
	adjusted, err := scanAdjustedRecord(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no inventory record for product", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to adjust inventory quantity", err)
	}
	return adjusted, nil
}

const deleteInventorySQL = `DELETE FROM inventories WHERE id = $1`

func (r *InventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteInventorySQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete inventory record", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("inventory record not found", nil, infra.KindNotFound)
	}
	return nil
}

const existsByProductSQL = `SELECT EXISTS(SELECT 1 FROM inventories WHERE product_id = $1)`

func (r *InventoryRepository) ExistsByProductID(ctx context.Context, productID string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, existsByProductSQL, productID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check inventory existence", err)
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecordSnapshot(row rowScanner) (*shared.RecordSnapshot, error) {
	var (
		id                   pgtype.UUID
		productID            string
		quantity             int32
		reservedQuantity     int32
		lowStockThreshold    int32
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &productID, &quantity, &reservedQuantity, &lowStockThreshold, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return &shared.RecordSnapshot{
		ID:                pgconv.UUIDFromPgtype(id),
		ProductID:         productID,
		Quantity:          quantity,
		ReservedQuantity:  reservedQuantity,
		LowStockThreshold: lowStockThreshold,
		CreatedAt:         pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:         pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

func scanAdjustedRecord(row rowScanner) (*shared.AdjustedRecord, error) {
	var (
		id                   pgtype.UUID
		productID            string
		quantity             int32
		reservedQuantity     int32
		lowStockThreshold    int32
		createdAt, updatedAt pgtype.Timestamptz
		previousQuantity     int32
	)
	if err := row.Scan(&id, &productID, &quantity, &reservedQuantity, &lowStockThreshold, &createdAt, &updatedAt, &previousQuantity); err != nil {
		return nil, err
	}
	return &shared.AdjustedRecord{
		RecordSnapshot: shared.RecordSnapshot{
			ID:                pgconv.UUIDFromPgtype(id),
			ProductID:         productID,
			Quantity:          quantity,
			ReservedQuantity:  reservedQuantity,
			LowStockThreshold: lowStockThreshold,
			CreatedAt:         pgconv.TimeFromPgtype(createdAt),
			UpdatedAt:         pgconv.TimeFromPgtype(updatedAt),
		},
		PreviousQuantity: previousQuantity,
	}, nil
}
