package api

import (
	"errors"
	"net/http"
	"strconv"

	"storefront-inventory/internal/domain/inventory"
	reqdto "storefront-inventory/internal/handler/dto/request"
	resdto "storefront-inventory/internal/handler/dto/response"
	"storefront-inventory/internal/handler/httperr"
	"storefront-inventory/internal/infra"
	"storefront-inventory/internal/usecase/commands"
	"storefront-inventory/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	cmds commands.InventoryCommands
	q    queries.InventoryQueries
}

func NewInventoryHandler(cmds commands.InventoryCommands, q queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{cmds: cmds, q: q}
}

// @Summary List inventory records
// @Description List inventory records ordered by last update, optionally filtered by product or low stock
// @Tags inventory
// @Produce json
// @Param product_id query string false "Exact product id"
// @Param low_stock query bool false "Only records below their low-stock threshold"
// @Param limit query int false "Max items (default 20)"
// @Param offset query int false "Items to skip"
// @Success 200 {array} resdto.InventoryResponse
// @Failure 503 {object} httperr.Response
// @Router /inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	var filter queries.ListFilter
	if v := c.Query("product_id"); v != "" {
		filter.ProductID = &v
	}
	if v := c.Query("low_stock"); v != "" {
		lowStock, err := strconv.ParseBool(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidArgument, "Invalid low_stock value")
			return
		}
		filter.LowStockOnly = lowStock
	}
	limit := 0
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			limit = iv
		}
	}
	offset := 0
	if v := c.Query("offset"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			offset = iv
		}
	}

	items, err := h.q.List(c.Request.Context(), filter, limit, offset)
	if err != nil {
		abortInventoryError(c, err, "List inventory failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": resdto.FromInventoryList(items)})
}

// @Summary Get inventory record
// @Description Get one inventory record by ID
// @Tags inventory
// @Produce json
// @Param id path string true "Inventory record ID"
// @Success 200 {object} resdto.InventoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /inventory/{id} [get]
func (h *InventoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidArgument, "Invalid id")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortInventoryError(c, err, "Get inventory failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventoryView(view))
}

// @Summary Create inventory record
// @Description Create the single inventory record for a product
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body reqdto.CreateInventoryRequest true "Create inventory request"
// @Success 201 {object} resdto.InventoryResponse
// @Failure 400 {object} httperr.Response
// @Router /inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var req reqdto.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidArgument, "Invalid request")
		return
	}
	snap, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		abortInventoryError(c, err, "Create inventory failed")
		return
	}
	c.Header("Location", "/api/inventory/"+snap.ID.String())
	c.JSON(http.StatusCreated, resdto.FromRecordSnapshot(snap))
}

// @Summary Update inventory record
// @Description Apply absolute field updates to an inventory record
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Inventory record ID"
// @Param request body reqdto.UpdateInventoryRequest true "Update inventory request"
// @Success 200 {object} resdto.InventoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /inventory/{id} [put]
func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidArgument, "Invalid id")
		return
	}
	var req reqdto.UpdateInventoryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, httperr.CodeInvalidArgument, "Invalid request")
		return
	}
	snap, err := h.cmds.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		abortInventoryError(c, err, "Update inventory failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecordSnapshot(snap))
}

// @Summary Delete inventory record
// @Description Hard-delete an inventory record; its adjustment ledger entries are kept
// @Tags inventory
// @Produce json
// @Param id path string true "Inventory record ID"
// @Success 200 {object} resdto.DeleteInventoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidArgument, "Invalid id")
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortInventoryError(c, err, "Delete inventory failed")
		return
	}
	c.JSON(http.StatusOK, resdto.DeleteInventoryResponse{Success: true})
}

// @Summary Adjust inventory quantity
// @Description Apply a signed delta to a product's on-hand quantity, clamped at zero
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body reqdto.AdjustInventoryRequest true "Adjust inventory request"
// @Param Idempotency-Key header string false "Deduplicates retried adjustments"
// @Success 200 {object} resdto.AdjustResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /inventory/adjust [post]
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var req reqdto.AdjustInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidArgument, "Invalid request")
		return
	}
	result, err := h.cmds.Adjust(c.Request.Context(), req.ToInput(c.GetHeader("Idempotency-Key")))
	if err != nil {
		abortInventoryError(c, err, "Adjust inventory failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdjustResult(result))
}

// @Summary List adjustment ledger entries
// @Description List the append-only adjustment history of an inventory record, oldest first
// @Tags inventory
// @Produce json
// @Param id path string true "Inventory record ID"
// @Success 200 {array} resdto.AdjustmentEntryResponse
// @Failure 400 {object} httperr.Response
// @Router /inventory/{id}/adjustments [get]
func (h *InventoryHandler) ListAdjustments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidArgument, "Invalid id")
		return
	}
	items, err := h.q.ListAdjustments(c.Request.Context(), id)
	if err != nil {
		abortInventoryError(c, err, "List adjustments failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"adjustments": resdto.FromAdjustmentList(items)})
}

// abortInventoryError maps usecase errors onto the stable response classes:
// caller mistakes are 4xx, an unreachable store is 503, anything else 500.
func abortInventoryError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrInventoryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Inventory record not found")
	case errors.Is(err, commands.ErrInventoryAlreadyExists):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeAlreadyExists, "Inventory record already exists for product")
	case errors.Is(err, commands.ErrDuplicateRequest):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeDuplicateRequest, "Duplicate request")
	case errors.Is(err, inventory.ErrProductIDRequired),
		errors.Is(err, inventory.ErrQuantityChangeRequired),
		errors.Is(err, inventory.ErrNegativeQuantity),
		errors.Is(err, inventory.ErrNegativeReservedQuantity),
		errors.Is(err, inventory.ErrNegativeThreshold):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidArgument, err.Error())
	case infra.IsKind(err, infra.KindDBFailure):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, httperr.CodeStoreUnavailable, "Backing store unavailable")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, msg)
	}
}
