package inventory

// AdjustmentType categorizes a quantity change. The set is open: persisted as
// plain text so new categories need no schema change.
type AdjustmentType string

const (
	AdjustmentManual     AdjustmentType = "manual"
	AdjustmentSale       AdjustmentType = "sale"
	AdjustmentRestock    AdjustmentType = "restock"
	AdjustmentCorrection AdjustmentType = "correction"
)

func (t AdjustmentType) String() string {
	return string(t)
}

// DefaultReason derives the ledger reason used when a caller supplies none.
func (t AdjustmentType) DefaultReason() string {
	return string(t) + " adjustment"
}
