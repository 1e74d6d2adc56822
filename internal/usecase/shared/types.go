package shared

import (
	"time"

	"github.com/google/uuid"
)

// RecordSnapshot is the write-side projection of one inventory row, returned
// by every mutating repository call so commands never re-read what they just
// wrote.
type RecordSnapshot struct {
	ID                uuid.UUID
	ProductID         string
	Quantity          int32
	ReservedQuantity  int32
	LowStockThreshold int32
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AdjustedRecord couples the updated row with the quantity it held before the
// statement ran. Callers detect clamping by comparing PreviousQuantity plus
// the requested delta against Quantity.
type AdjustedRecord struct {
	RecordSnapshot
	PreviousQuantity int32
}
