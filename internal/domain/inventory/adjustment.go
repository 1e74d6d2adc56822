package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Adjustment is one append-only ledger entry. It records the delta a caller
// asked for, not the clamped effect, so intent stays auditable even when the
// record was floored at zero. Entries reference their record by id only and
// outlive it if the record is later deleted.
type Adjustment struct {
	id             uuid.UUID
	inventoryID    uuid.UUID
	adjustmentType AdjustmentType
	quantityChange int32
	reason         string
	createdAt      time.Time
}

func NewAdjustment(inventoryID uuid.UUID, adjustmentType AdjustmentType, quantityChange int32, reason string, now time.Time) *Adjustment {
	if adjustmentType == "" {
		adjustmentType = AdjustmentManual
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = adjustmentType.DefaultReason()
	}

	return &Adjustment{
		id:             uuid.New(),
		inventoryID:    inventoryID,
		adjustmentType: adjustmentType,
		quantityChange: quantityChange,
		reason:         reason,
		createdAt:      now,
	}
}

func (a *Adjustment) ID() uuid.UUID                  { return a.id }
func (a *Adjustment) InventoryID() uuid.UUID         { return a.inventoryID }
func (a *Adjustment) AdjustmentType() AdjustmentType { return a.adjustmentType }
func (a *Adjustment) QuantityChange() int32          { return a.quantityChange }
func (a *Adjustment) Reason() string                 { return a.reason }
func (a *Adjustment) CreatedAt() time.Time           { return a.createdAt }
