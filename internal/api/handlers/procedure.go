package handlers

import (
	"net/http"

	"cmms-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProcedureHandler handles HTTP requests for procedure template operations
type ProcedureHandler struct {
	procedureService service.ProcedureServiceInterface
}

// NewProcedureHandler creates a new procedure handler
func NewProcedureHandler(procedureService service.ProcedureServiceInterface) *ProcedureHandler {
	return &ProcedureHandler{
		procedureService: procedureService,
	}
}

// CreateProcedure handles POST /procedures
// @Summary Create a new procedure template
// @Description Create a procedure template with its full section and field tree
// @Tags procedures
// @Accept json
// @Produce json
// @Param procedure body service.CreateProcedureRequest true "Procedure data"
// @Success 201 {object} service.ProcedureResponse "Successfully created procedure"
// @Failure 400 {object} ErrorResponse "Invalid request or unresolved asset"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /procedures [post]
func (h *ProcedureHandler) CreateProcedure(c *gin.Context) {
	var req service.CreateProcedureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	procedure, err := h.procedureService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, procedure)
}

// GetProcedure handles GET /procedures/:id
// @Summary Get procedure by ID
// @Description Get a procedure template with its ordered section and field tree
// @Tags procedures
// @Accept json
// @Produce json
// @Param id path int true "Procedure ID"
// @Success 200 {object} service.ProcedureResponse "Successfully retrieved procedure"
// @Failure 400 {object} ErrorResponse "Invalid procedure ID"
// @Failure 404 {object} ErrorResponse "Procedure not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /procedures/{id} [get]
func (h *ProcedureHandler) GetProcedure(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	procedure, err := h.procedureService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, procedure)
}

// ListProcedures handles GET /procedures
// @Summary List all procedure templates
// @Description Get all procedure templates, most recently created first
// @Tags procedures
// @Accept json
// @Produce json
// @Success 200 {array} service.ProcedureResponse "Successfully retrieved procedures"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /procedures [get]
func (h *ProcedureHandler) ListProcedures(c *gin.Context) {
	procedures, err := h.procedureService.GetAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, procedures)
}

// UpdateProcedure handles PATCH /procedures/:id
// @Summary Update a procedure template
// @Description Update the supplied fields. Supplying sections replaces the whole tree with fresh rows; omitting it leaves the tree untouched.
// @Tags procedures
// @Accept json
// @Produce json
// @Param id path int true "Procedure ID"
// @Param procedure body service.UpdateProcedureRequest true "Fields to update"
// @Success 200 {object} service.ProcedureResponse "Successfully updated procedure"
// @Failure 400 {object} ErrorResponse "Invalid request or unresolved asset"
// @Failure 404 {object} ErrorResponse "Procedure not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /procedures/{id} [patch]
func (h *ProcedureHandler) UpdateProcedure(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateProcedureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	procedure, err := h.procedureService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, procedure)
}

// DeleteProcedure handles DELETE /procedures/:id
// @Summary Delete a procedure template
// @Description Delete a procedure with its tree. Work orders referencing it are detached, not deleted.
// @Tags procedures
// @Accept json
// @Produce json
// @Param id path int true "Procedure ID"
// @Success 204 "Successfully deleted procedure"
// @Failure 400 {object} ErrorResponse "Invalid procedure ID"
// @Failure 404 {object} ErrorResponse "Procedure not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /procedures/{id} [delete]
func (h *ProcedureHandler) DeleteProcedure(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.procedureService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
