//go:build e2e

package inventory_test

import (
	"net/http"
	"sync"
	"testing"

	"storefront-inventory/internal/handler/dto/response"
	"storefront-inventory/tests/common/builder"
	"storefront-inventory/tests/common/httptest"
	"storefront-inventory/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	inventoryURL = "/api/inventory"
	adjustURL    = "/api/inventory/adjust"
)

type InventorySuite struct {
	e2e.SharedSuite
}

func (s *InventorySuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestInventorySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(InventorySuite))
}

type listEnvelope struct {
	Inventory []response.InventoryResponse `json:"inventory"`
}

type adjustmentsEnvelope struct {
	Adjustments []response.AdjustmentEntryResponse `json:"adjustments"`
}

func (s *InventorySuite) createRecord(t *testing.T, productID string, quantity, threshold int32) response.InventoryResponse {
	t.Helper()

	reqBody := builder.NewInventoryBuilder().
		WithProductID(productID).
		WithQuantity(quantity).
		WithLowStockThreshold(threshold).
		BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, inventoryURL, reqBody, nil)
	require.Equal(t, http.StatusCreated, w.Code, "record creation failed: %s", w.Body.String())

	var created response.InventoryResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotEmpty(t, created.ID)
	return created
}

func (s *InventorySuite) adjust(t *testing.T, body map[string]any, headers map[string]string) (*response.AdjustResponse, int) {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, adjustURL, body, headers)
	if w.Code != http.StatusOK {
		return nil, w.Code
	}
	var res response.AdjustResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return &res, w.Code
}

// =============================================================================
// TestLifecycle - create, read, update, delete round trip
// =============================================================================

func (s *InventorySuite) TestLifecycle() {
	s.Run("Normal case: created record is readable by id and by product filter", func() {
		t := s.T()

		created := s.createRecord(t, "P1", 20, 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL+"/"+created.ID, nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var fetched response.InventoryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &fetched))

		expected := &response.InventoryResponse{
			ID:                created.ID,
			ProductID:         "P1",
			Quantity:          20,
			ReservedQuantity:  0,
			LowStockThreshold: 5,
			LowStock:          false,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.InventoryResponse{}, "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &fetched, opts...); diff != "" {
			t.Errorf("inventory response mismatch (-want +got):\n%s", diff)
		}

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL+"?product_id=P1", nil, nil)
		require.Equal(t, http.StatusOK, lw.Code)

		var listed listEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &listed))
		require.Len(t, listed.Inventory, 1)
		require.Equal(t, created.ID, listed.Inventory[0].ID)
	})

	s.Run("Error case: second record for the same product is rejected", func() {
		t := s.T()

		s.createRecord(t, "P1", 20, 5)

		reqBody := builder.NewInventoryBuilder().WithProductID("P1").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, inventoryURL, reqBody, nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "already_exists")
	})

	s.Run("Normal case: partial update touches only the supplied fields", func() {
		t := s.T()

		created := s.createRecord(t, "P1", 20, 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, inventoryURL+"/"+created.ID,
			map[string]any{"low_stock_threshold": 25}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var updated response.InventoryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, int32(20), updated.Quantity)
		require.Equal(t, int32(25), updated.LowStockThreshold)
		require.True(t, updated.LowStock)
	})

	s.Run("Normal case: delete removes the record and reports success", func() {
		t := s.T()

		created := s.createRecord(t, "P1", 20, 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, inventoryURL+"/"+created.ID, nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var deleted response.DeleteInventoryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &deleted))
		require.True(t, deleted.Success)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL+"/"+created.ID, nil, nil)
		httptest.AssertErrorResponse(t, gw, http.StatusNotFound, "not_found")

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, inventoryURL+"/"+created.ID, nil, nil)
		httptest.AssertErrorResponse(t, dw, http.StatusNotFound, "not_found")
	})

	s.Run("Error case: unknown id yields 404, malformed id yields 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL+"/"+uuid.NewString(), nil, nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "not_found")

		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL+"/not-a-uuid", nil, nil)
		httptest.AssertErrorResponse(t, mw, http.StatusBadRequest, "invalid_argument")
	})
}

// =============================================================================
// TestAdjust - quantity deltas, clamping, and the ledger
// =============================================================================

func (s *InventorySuite) TestAdjust() {
	s.Run("Normal case: a sale drops the quantity below the threshold", func() {
		t := s.T()

		created := s.createRecord(t, "P1", 20, 5)

		res, code := s.adjust(t, map[string]any{
			"product_id":      "P1",
			"quantity_change": -18,
			"adjustment_type": "sale",
		}, nil)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, int32(2), res.Quantity)
		require.Equal(t, int32(20), res.PreviousQuantity)
		require.Equal(t, int32(-18), res.QuantityChange)
		require.True(t, res.LowStock)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL+"?low_stock=true", nil, nil)
		require.Equal(t, http.StatusOK, lw.Code)

		var lowStock listEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &lowStock))
		require.Len(t, lowStock.Inventory, 1)
		require.Equal(t, created.ID, lowStock.Inventory[0].ID)
	})

	s.Run("Normal case: an oversized deduction clamps at zero but ledgers the intent", func() {
		t := s.T()

		created := s.createRecord(t, "P1", 5, 3)

		res, code := s.adjust(t, map[string]any{
			"product_id":      "P1",
			"quantity_change": -1000,
			"adjustment_type": "correction",
		}, nil)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, int32(0), res.Quantity)
		require.Equal(t, int32(5), res.PreviousQuantity)
		require.Equal(t, int32(-1000), res.QuantityChange)

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL+"/"+created.ID+"/adjustments", nil, nil)
		require.Equal(t, http.StatusOK, aw.Code)

		var ledger adjustmentsEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &ledger))
		require.Len(t, ledger.Adjustments, 1)
		require.Equal(t, int32(-1000), ledger.Adjustments[0].QuantityChange)
		require.Equal(t, "correction", ledger.Adjustments[0].AdjustmentType)
	})

	s.Run("Normal case: omitted type and reason default to a manual entry", func() {
		t := s.T()

		created := s.createRecord(t, "P1", 10, 3)

		_, code := s.adjust(t, map[string]any{
			"product_id":      "P1",
			"quantity_change": 4,
		}, nil)
		require.Equal(t, http.StatusOK, code)

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL+"/"+created.ID+"/adjustments", nil, nil)
		require.Equal(t, http.StatusOK, aw.Code)

		var ledger adjustmentsEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &ledger))
		require.Len(t, ledger.Adjustments, 1)
		require.Equal(t, "manual", ledger.Adjustments[0].AdjustmentType)
		require.Equal(t, "manual adjustment", ledger.Adjustments[0].Reason)
	})

	s.Run("Normal case: concurrent deductions serialize on the record row", func() {
		t := s.T()

		s.createRecord(t, "P1", 10, 3)

		var wg sync.WaitGroup
		codes := make([]int, 2)
		for i := range codes {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, adjustURL, map[string]any{
					"product_id":      "P1",
					"quantity_change": -3,
					"adjustment_type": "sale",
				}, nil)
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		for _, code := range codes {
			require.Equal(t, http.StatusOK, code)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL+"?product_id=P1", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var listed listEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listed))
		require.Len(t, listed.Inventory, 1)
		require.Equal(t, int32(4), listed.Inventory[0].Quantity)
	})

	s.Run("Error case: adjusting an unknown product yields 404", func() {
		t := s.T()

		_, code := s.adjust(t, map[string]any{
			"product_id":      "P-missing",
			"quantity_change": -1,
		}, nil)
		require.Equal(t, http.StatusNotFound, code)
	})

	s.Run("Error case: a replayed Idempotency-Key is applied once", func() {
		t := s.T()

		s.createRecord(t, "P1", 10, 3)

		headers := map[string]string{"Idempotency-Key": "adjust-" + uuid.NewString()}
		body := map[string]any{
			"product_id":      "P1",
			"quantity_change": -3,
			"adjustment_type": "sale",
		}

		res, code := s.adjust(t, body, headers)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, int32(7), res.Quantity)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adjustURL, body, headers)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "duplicate_request")

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL+"?product_id=P1", nil, nil)
		var listed listEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &listed))
		require.Len(t, listed.Inventory, 1)
		require.Equal(t, int32(7), listed.Inventory[0].Quantity)
	})
}

// =============================================================================
// TestLedger - append-only history semantics
// =============================================================================

func (s *InventorySuite) TestLedger() {
	s.Run("Normal case: entries are returned oldest first", func() {
		t := s.T()

		created := s.createRecord(t, "P1", 50, 5)

		deltas := []int32{-5, 10, -7}
		types := []string{"sale", "restock", "sale"}
		for i, d := range deltas {
			_, code := s.adjust(t, map[string]any{
				"product_id":      "P1",
				"quantity_change": d,
				"adjustment_type": types[i],
			}, nil)
			require.Equal(t, http.StatusOK, code)
		}

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL+"/"+created.ID+"/adjustments", nil, nil)
		require.Equal(t, http.StatusOK, aw.Code)

		var ledger adjustmentsEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &ledger))
		require.Len(t, ledger.Adjustments, 3)
		for i, d := range deltas {
			require.Equal(t, d, ledger.Adjustments[i].QuantityChange)
			require.Equal(t, types[i], ledger.Adjustments[i].AdjustmentType)
		}
	})

	s.Run("Normal case: an absolute update with a reason ledgers the implied delta", func() {
		t := s.T()

		created := s.createRecord(t, "P1", 20, 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, inventoryURL+"/"+created.ID,
			map[string]any{"quantity": 8, "adjustment_reason": "stocktake correction"}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL+"/"+created.ID+"/adjustments", nil, nil)
		require.Equal(t, http.StatusOK, aw.Code)

		var ledger adjustmentsEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &ledger))
		require.Len(t, ledger.Adjustments, 1)
		require.Equal(t, int32(-12), ledger.Adjustments[0].QuantityChange)
		require.Equal(t, "manual", ledger.Adjustments[0].AdjustmentType)
		require.Equal(t, "stocktake correction", ledger.Adjustments[0].Reason)
	})

	s.Run("Normal case: the ledger outlives its deleted record", func() {
		t := s.T()

		created := s.createRecord(t, "P1", 10, 3)

		_, code := s.adjust(t, map[string]any{
			"product_id":      "P1",
			"quantity_change": -4,
			"adjustment_type": "sale",
		}, nil)
		require.Equal(t, http.StatusOK, code)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, inventoryURL+"/"+created.ID, nil, nil)
		require.Equal(t, http.StatusOK, dw.Code)

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL+"/"+created.ID+"/adjustments", nil, nil)
		require.Equal(t, http.StatusOK, aw.Code)

		var ledger adjustmentsEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &ledger))
		require.Len(t, ledger.Adjustments, 1)
		require.Equal(t, int32(-4), ledger.Adjustments[0].QuantityChange)
	})
}

// =============================================================================
// TestList - ordering and paging
// =============================================================================

func (s *InventorySuite) TestList() {
	s.Run("Normal case: most recently updated records come first", func() {
		t := s.T()

		s.createRecord(t, "P1", 20, 5)
		s.createRecord(t, "P2", 30, 5)
		s.createRecord(t, "P3", 40, 5)

		// Touch P1 last so it resurfaces at the top.
		_, code := s.adjust(t, map[string]any{
			"product_id":      "P1",
			"quantity_change": -1,
		}, nil)
		require.Equal(t, http.StatusOK, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL, nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var listed listEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listed))
		require.Len(t, listed.Inventory, 3)
		require.Equal(t, "P1", listed.Inventory[0].ProductID)
	})

	s.Run("Normal case: limit and offset page through the collection", func() {
		t := s.T()

		s.createRecord(t, "P1", 20, 5)
		s.createRecord(t, "P2", 30, 5)
		s.createRecord(t, "P3", 40, 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL+"?limit=2", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var page1 listEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page1))
		require.Len(t, page1.Inventory, 2)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL+"?limit=2&offset=2", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var page2 listEnvelope
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page2))
		require.Len(t, page2.Inventory, 1)
	})
}
