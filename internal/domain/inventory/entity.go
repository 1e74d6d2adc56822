package inventory

import (
	"strings"
	"time"

	"storefront-inventory/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProductIDRequired        = errs.New("product id is required")
	ErrQuantityChangeRequired   = errs.New("quantity change is required")
	ErrNegativeQuantity         = errs.New("quantity cannot be negative")
	ErrNegativeReservedQuantity = errs.New("reserved quantity cannot be negative")
	ErrNegativeThreshold        = errs.New("low stock threshold cannot be negative")
)

// Record is the single source of truth for the on-hand state of one product.
// Exactly one record may exist per product id; the id itself is opaque and
// owned by the external catalog.
type Record struct {
	id                uuid.UUID
	productID         string
	quantity          int32
	reservedQuantity  int32
	lowStockThreshold int32
	createdAt         time.Time
	updatedAt         time.Time
}

func NewRecord(productID string, quantity, reservedQuantity, lowStockThreshold int32, now time.Time) (*Record, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, ErrProductIDRequired
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if reservedQuantity < 0 {
		return nil, ErrNegativeReservedQuantity
	}
	if lowStockThreshold < 0 {
		return nil, ErrNegativeThreshold
	}

	return &Record{
		id:                uuid.New(),
		productID:         productID,
		quantity:          quantity,
		reservedQuantity:  reservedQuantity,
		lowStockThreshold: lowStockThreshold,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func (r *Record) ID() uuid.UUID            { return r.id }
func (r *Record) ProductID() string        { return r.productID }
func (r *Record) Quantity() int32          { return r.quantity }
func (r *Record) ReservedQuantity() int32  { return r.reservedQuantity }
func (r *Record) LowStockThreshold() int32 { return r.lowStockThreshold }
func (r *Record) CreatedAt() time.Time     { return r.createdAt }
func (r *Record) UpdatedAt() time.Time     { return r.updatedAt }

// IsLowStock flags a record whose on-hand count dropped below its own
// threshold. The per-record threshold is authoritative; there is no global one.
func (r *Record) IsLowStock() bool {
	return r.quantity < r.lowStockThreshold
}
