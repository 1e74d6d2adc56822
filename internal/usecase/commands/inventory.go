package commands

import (
	"context"
	"log/slog"
	"strings"

	"storefront-inventory/internal/domain/inventory"
	"storefront-inventory/internal/infra"
	"storefront-inventory/internal/pkg/clock"
	"storefront-inventory/internal/pkg/errs"
	"storefront-inventory/internal/pkg/patch"
	"storefront-inventory/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInventoryNotFound      = errs.ErrInventoryNotFound
	ErrInventoryAlreadyExists = errs.ErrInventoryAlreadyExists
	ErrDuplicateRequest       = errs.ErrDuplicateRequest
)

type CreateInput struct {
	ProductID         string
	Quantity          int32
	ReservedQuantity  int32
	LowStockThreshold int32
}

// UpdateInput applies only the supplied fields; the caller provides absolute
// targets, no delta math happens here. When both Quantity and
// AdjustmentReason are present the implied delta is ledgered for traceability.
type UpdateInput struct {
	Quantity          *int32
	ReservedQuantity  *int32
	LowStockThreshold *int32
	AdjustmentReason  *string
}

type AdjustInput struct {
	ProductID      string
	QuantityChange *int32
	AdjustmentType inventory.AdjustmentType
	Reason         *string
	IdempotencyKey string
}

type AdjustResult struct {
	Record           shared.RecordSnapshot
	PreviousQuantity int32
	QuantityChange   int32
}

type InventoryRepository interface {
	Create(ctx context.Context, rec *inventory.Record) (*shared.RecordSnapshot, error)
	UpdateFields(ctx context.Context, id uuid.UUID, quantity, reservedQuantity, lowStockThreshold *int32) (*shared.AdjustedRecord, error)
	AdjustQuantity(ctx context.Context, productID string, quantityChange int32) (*shared.AdjustedRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByProductID(ctx context.Context, productID string) (bool, error)
}

type AdjustmentRepository interface {
	Append(ctx context.Context, entry *inventory.Adjustment) error
}

// IdempotencyGuard claims a request key; a second claim of the same key
// within the TTL reports false.
type IdempotencyGuard interface {
	Claim(ctx context.Context, key string) (bool, error)
}

type InventoryCommands interface {
	Create(ctx context.Context, in CreateInput) (*shared.RecordSnapshot, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*shared.RecordSnapshot, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Adjust(ctx context.Context, in AdjustInput) (*AdjustResult, error)
}

type inventoryCommandsImpl struct {
	records     InventoryRepository
	adjustments AdjustmentRepository
	guard       IdempotencyGuard
	clock       clock.Clock
}

func NewInventoryCommands(records InventoryRepository, adjustments AdjustmentRepository, guard IdempotencyGuard, clk clock.Clock) InventoryCommands {
	return &inventoryCommandsImpl{
		records:     records,
		adjustments: adjustments,
		guard:       guard,
		clock:       clk,
	}
}

func (uc *inventoryCommandsImpl) Create(ctx context.Context, in CreateInput) (*shared.RecordSnapshot, error) {
	rec, err := inventory.NewRecord(in.ProductID, in.Quantity, in.ReservedQuantity, in.LowStockThreshold, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	// Fast-path duplicate check; the unique constraint on product_id stays
	// the authoritative guard for the race window between check and insert.
	exists, err := uc.records.ExistsByProductID(ctx, rec.ProductID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrInventoryAlreadyExists
	}

	snap, err := uc.records.Create(ctx, rec)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrInventoryAlreadyExists
		}
		return nil, err
	}
	return snap, nil
}

func (uc *inventoryCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*shared.RecordSnapshot, error) {
	updated, err := uc.records.UpdateFields(ctx, id, in.Quantity, in.ReservedQuantity, in.LowStockThreshold)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, err
	}

	// The one place a direct update touches the ledger: an absolute quantity
	// plus a reason records the implied delta as a manual adjustment.
	if in.Quantity != nil && in.AdjustmentReason != nil {
		impliedDelta := *in.Quantity - updated.PreviousQuantity
		entry := inventory.NewAdjustment(updated.ID, inventory.AdjustmentManual, impliedDelta, *in.AdjustmentReason, uc.clock.Now())
		uc.appendBestEffort(ctx, entry)
	}

	return &updated.RecordSnapshot, nil
}

func (uc *inventoryCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	// Ledger entries for the record are kept; the audit trail outlives it.
	if err := uc.records.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInventoryNotFound
		}
		return err
	}
	return nil
}

func (uc *inventoryCommandsImpl) Adjust(ctx context.Context, in AdjustInput) (*AdjustResult, error) {
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return nil, inventory.ErrProductIDRequired
	}
	if in.QuantityChange == nil {
		return nil, inventory.ErrQuantityChangeRequired
	}

	if in.IdempotencyKey != "" && uc.guard != nil {
		ok, err := uc.guard.Claim(ctx, in.IdempotencyKey)
		if err != nil {
			return nil, errs.Wrap(err, "idempotency claim failed")
		}
		if !ok {
			return nil, ErrDuplicateRequest
		}
	}

	adjusted, err := uc.records.AdjustQuantity(ctx, productID, *in.QuantityChange)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, err
	}

	// The ledger keeps the requested delta, pre-clamp, so intent stays
	// auditable even when the quantity was floored at zero.
	reason := patch.Coalesce(in.Reason, "")
	entry := inventory.NewAdjustment(adjusted.ID, in.AdjustmentType, *in.QuantityChange, reason, uc.clock.Now())
	uc.appendBestEffort(ctx, entry)

	return &AdjustResult{
		Record:           adjusted.RecordSnapshot,
		PreviousQuantity: adjusted.PreviousQuantity,
		QuantityChange:   *in.QuantityChange,
	}, nil
}

// appendBestEffort writes a ledger entry without ever failing the state
// change that preceded it. The record update is authoritative; a lost audit
// entry is surfaced as a warning only.
func (uc *inventoryCommandsImpl) appendBestEffort(ctx context.Context, entry *inventory.Adjustment) {
	if err := uc.adjustments.Append(ctx, entry); err != nil {
		slog.Warn("adjustment ledger append failed, quantity update already applied",
			"inventory_id", entry.InventoryID().String(),
			"adjustment_type", entry.AdjustmentType().String(),
			"quantity_change", entry.QuantityChange(),
			"error", err.Error())
	}
}
