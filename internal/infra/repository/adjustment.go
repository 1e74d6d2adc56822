package repository

import (
	"context"

	"storefront-inventory/internal/domain/inventory"
	"storefront-inventory/internal/infra"
	"storefront-inventory/internal/infra/db"
	"storefront-inventory/internal/pkg/pgconv"
)

// AdjustmentRepository is append-only by construction: no update or delete
// statement exists for the ledger table.
type AdjustmentRepository struct {
	db db.DBTX
}

func NewAdjustmentRepository(dbtx db.DBTX) *AdjustmentRepository {
	return &AdjustmentRepository{db: dbtx}
}

const appendAdjustmentSQL = `
INSERT INTO inventory_adjustments (id, inventory_id, adjustment_type, quantity_change, reason, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *AdjustmentRepository) Append(ctx context.Context, entry *inventory.Adjustment) error {
	_, err := r.db.Exec(ctx, appendAdjustmentSQL,
		pgconv.UUIDToPgtype(entry.ID()),
		pgconv.UUIDToPgtype(entry.InventoryID()),
		entry.AdjustmentType().String(),
		entry.QuantityChange(),
		entry.Reason(),
		pgconv.TimeToPgtype(entry.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append adjustment entry", err)
	}
	return nil
}
