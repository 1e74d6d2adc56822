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

type AdjustmentReadStore struct {
	db db.DBTX
}

func NewAdjustmentReadStore(dbtx db.DBTX) *AdjustmentReadStore {
	return &AdjustmentReadStore{db: dbtx}
}

// Entries come back in creation order. There is no record-existence check:
// the ledger survives record deletion and stays queryable for deleted ids.
const listAdjustmentsSQL = `
SELECT id, inventory_id, adjustment_type, quantity_change, reason, created_at
FROM inventory_adjustments
WHERE inventory_id = $1
ORDER BY created_at ASC, id ASC`

func (r *AdjustmentReadStore) ListByInventory(ctx context.Context, inventoryID uuid.UUID) ([]*queries.AdjustmentView, error) {
	rows, err := r.db.Query(ctx, listAdjustmentsSQL, pgconv.UUIDToPgtype(inventoryID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list adjustment entries", err)
	}
	defer rows.Close()

	result := make([]*queries.AdjustmentView, 0)
	for rows.Next() {
		var (
			id             pgtype.UUID
			invID          pgtype.UUID
			adjustmentType string
			quantityChange int32
			reason         string
			createdAt      pgtype.Timestamptz
		)
		if scanErr := rows.Scan(&id, &invID, &adjustmentType, &quantityChange, &reason, &createdAt); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan adjustment entry", scanErr)
		}
		result = append(result, &queries.AdjustmentView{
			ID:             pgconv.UUIDFromPgtype(id),
			InventoryID:    pgconv.UUIDFromPgtype(invID),
			AdjustmentType: adjustmentType,
			QuantityChange: quantityChange,
			Reason:         reason,
			CreatedAt:      pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read adjustment entries", err)
	}
	return result, nil
}
