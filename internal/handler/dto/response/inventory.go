package response

import (
	"storefront-inventory/internal/usecase/commands"
	"storefront-inventory/internal/usecase/queries"
	"storefront-inventory/internal/usecase/shared"
)

type InventoryResponse struct {
	ID                string `json:"id"`
	ProductID         string `json:"product_id"`
	Quantity          int32  `json:"quantity"`
	ReservedQuantity  int32  `json:"reserved_quantity"`
	LowStockThreshold int32  `json:"low_stock_threshold"`
	LowStock          bool   `json:"low_stock"`
	CreatedAt         int64  `json:"created_at"`
	UpdatedAt         int64  `json:"updated_at"`
}

func FromInventoryView(v *queries.InventoryView) *InventoryResponse {
	return &InventoryResponse{
		ID:                v.ID.String(),
		ProductID:         v.ProductID,
		Quantity:          v.Quantity,
		ReservedQuantity:  v.ReservedQuantity,
		LowStockThreshold: v.LowStockThreshold,
		LowStock:          v.LowStock,
		CreatedAt:         v.CreatedAt.Unix(),
		UpdatedAt:         v.UpdatedAt.Unix(),
	}
}

func FromInventoryList(items []*queries.InventoryView) []*InventoryResponse {
	res := make([]*InventoryResponse, len(items))
	for i, it := range items {
		res[i] = FromInventoryView(it)
	}
	return res
}

func FromRecordSnapshot(s *shared.RecordSnapshot) *InventoryResponse {
	return &InventoryResponse{
		ID:                s.ID.String(),
		ProductID:         s.ProductID,
		Quantity:          s.Quantity,
		ReservedQuantity:  s.ReservedQuantity,
		LowStockThreshold: s.LowStockThreshold,
		LowStock:          s.Quantity < s.LowStockThreshold,
		CreatedAt:         s.CreatedAt.Unix(),
		UpdatedAt:         s.UpdatedAt.Unix(),
	}
}

// AdjustResponse flattens the updated record alongside the pre-adjustment
// quantity and the delta as requested; previous_quantity + quantity_change
// differing from quantity signals a clamp.
type AdjustResponse struct {
	InventoryResponse
	PreviousQuantity int32 `json:"previous_quantity"`
	QuantityChange   int32 `json:"quantity_change"`
}

func FromAdjustResult(r *commands.AdjustResult) *AdjustResponse {
	return &AdjustResponse{
		InventoryResponse: *FromRecordSnapshot(&r.Record),
		PreviousQuantity:  r.PreviousQuantity,
		QuantityChange:    r.QuantityChange,
	}
}

type AdjustmentEntryResponse struct {
	ID             string `json:"id"`
	InventoryID    string `json:"inventory_id"`
	AdjustmentType string `json:"adjustment_type"`
	QuantityChange int32  `json:"quantity_change"`
	Reason         string `json:"reason"`
	CreatedAt      int64  `json:"created_at"`
}

func FromAdjustmentList(items []*queries.AdjustmentView) []*AdjustmentEntryResponse {
	res := make([]*AdjustmentEntryResponse, len(items))
	for i, it := range items {
		res[i] = &AdjustmentEntryResponse{
			ID:             it.ID.String(),
			InventoryID:    it.InventoryID.String(),
			AdjustmentType: it.AdjustmentType,
			QuantityChange: it.QuantityChange,
			Reason:         it.Reason,
			CreatedAt:      it.CreatedAt.Unix(),
		}
	}
	return res
}

type DeleteInventoryResponse struct {
	Success bool `json:"success"`
}
