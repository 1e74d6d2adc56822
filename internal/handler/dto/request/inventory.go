package request

import (
	"storefront-inventory/internal/domain/inventory"
	"storefront-inventory/internal/pkg/patch"
	"storefront-inventory/internal/usecase/commands"
)

// Quantity is a pointer so an explicit 0 binds while an absent field is
// rejected; the same applies to quantity_change on adjustments.
type CreateInventoryRequest struct {
	ProductID         string `json:"product_id" binding:"required"`
	Quantity          *int32 `json:"quantity" binding:"required,min=0"`
	ReservedQuantity  *int32 `json:"reserved_quantity" binding:"omitempty,min=0"`
	LowStockThreshold *int32 `json:"low_stock_threshold" binding:"omitempty,min=0"`
}

func (r *CreateInventoryRequest) ToInput() commands.CreateInput {
	return commands.CreateInput{
		ProductID:         r.ProductID,
		Quantity:          *r.Quantity,
		ReservedQuantity:  patch.Coalesce(r.ReservedQuantity, 0),
		LowStockThreshold: patch.Coalesce(r.LowStockThreshold, 0),
	}
}

type UpdateInventoryRequest struct {
	Quantity          *int32  `json:"quantity" binding:"omitempty,min=0"`
	ReservedQuantity  *int32  `json:"reserved_quantity" binding:"omitempty,min=0"`
	LowStockThreshold *int32  `json:"low_stock_threshold" binding:"omitempty,min=0"`
	AdjustmentReason  *string `json:"adjustment_reason" binding:"omitempty,max=500"`
}

func (r *UpdateInventoryRequest) ToInput() commands.UpdateInput {
	return commands.UpdateInput{
		Quantity:          r.Quantity,
		ReservedQuantity:  r.ReservedQuantity,
		LowStockThreshold: r.LowStockThreshold,
		AdjustmentReason:  r.AdjustmentReason,
	}
}

type AdjustInventoryRequest struct {
	ProductID      string  `json:"product_id" binding:"required"`
	QuantityChange *int32  `json:"quantity_change" binding:"required"`
	AdjustmentType string  `json:"adjustment_type" binding:"omitempty,max=50"`
	Reason         *string `json:"reason" binding:"omitempty,max=500"`
}

func (r *AdjustInventoryRequest) ToInput(idempotencyKey string) commands.AdjustInput {
	return commands.AdjustInput{
		ProductID:      r.ProductID,
		QuantityChange: r.QuantityChange,
		AdjustmentType: inventory.AdjustmentType(r.AdjustmentType),
		Reason:         r.Reason,
		IdempotencyKey: idempotencyKey,
	}
}
