package handlers

import (
	"net/http"

	"cmms-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkOrderHandler handles HTTP requests for work order operations
type WorkOrderHandler struct {
	workOrderService service.WorkOrderServiceInterface
}

// NewWorkOrderHandler creates a new work order handler
func NewWorkOrderHandler(workOrderService service.WorkOrderServiceInterface) *WorkOrderHandler {
	return &WorkOrderHandler{
		workOrderService: workOrderService,
	}
}

// CreateWorkOrder handles POST /work-orders
// @Summary Create a new work order
// @Description Create a work order with optional category and part links. Supplied vendor, procedure, category and part references must all resolve.
// @Tags work-orders
// @Accept json
// @Produce json
// @Param work_order body service.CreateWorkOrderRequest true "Work order data"
// @Success 201 {object} service.WorkOrderResponse "Successfully created work order"
// @Failure 400 {object} ErrorResponse "Invalid request or unresolved reference"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /work-orders [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var req service.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workOrder, err := h.workOrderService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, workOrder)
}

// GetWorkOrder handles GET /work-orders/:id
// @Summary Get work order by ID
// @Description Get a work order with its embedded vendor, procedure, categories and parts
// @Tags work-orders
// @Accept json
// @Produce json
// @Param id path int true "Work order ID"
// @Success 200 {object} service.WorkOrderResponse "Successfully retrieved work order"
// @Failure 400 {object} ErrorResponse "Invalid work order ID"
// @Failure 404 {object} ErrorResponse "Work order not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /work-orders/{id} [get]
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	workOrder, err := h.workOrderService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workOrder)
}

// ListWorkOrders handles GET /work-orders
// @Summary List all work orders
// @Description Get all work orders, most recently created first
// @Tags work-orders
// @Accept json
// @Produce json
// @Success 200 {array} service.WorkOrderResponse "Successfully retrieved work orders"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /work-orders [get]
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	workOrders, err := h.workOrderService.GetAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workOrders)
}

// UpdateWorkOrder handles PATCH /work-orders/:id
// @Summary Update a work order
// @Description Update the supplied fields. Supplying category_ids or parts replaces that whole collection; omitting them leaves the links untouched.
// @Tags work-orders
// @Accept json
// @Produce json
// @Param id path int true "Work order ID"
// @Param work_order body service.UpdateWorkOrderRequest true "Fields to update"
// @Success 200 {object} service.WorkOrderResponse "Successfully updated work order"
// @Failure 400 {object} ErrorResponse "Invalid request or unresolved reference"
// @Failure 404 {object} ErrorResponse "Work order not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /work-orders/{id} [patch]
func (h *WorkOrderHandler) UpdateWorkOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workOrder, err := h.workOrderService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workOrder)
}

// DeleteWorkOrder handles DELETE /work-orders/:id
// @Summary Delete a work order
// @Description Delete a work order together with its category and part links
// @Tags work-orders
// @Accept json
// @Produce json
// @Param id path int true "Work order ID"
// @Success 204 "Successfully deleted work order"
// @Failure 400 {object} ErrorResponse "Invalid work order ID"
// @Failure 404 {object} ErrorResponse "Work order not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /work-orders/{id} [delete]
func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.workOrderService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
