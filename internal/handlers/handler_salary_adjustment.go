package handlers

import (
	"net/http"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	portssvc "github.com/SscSPs/fuel_station_app/internal/core/ports/services"
	"github.com/SscSPs/fuel_station_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type salaryAdjustmentHandler struct {
	adjustmentService portssvc.SalaryAdjustmentSvcFacade
}

func newSalaryAdjustmentHandler(as portssvc.SalaryAdjustmentSvcFacade) *salaryAdjustmentHandler {
	return &salaryAdjustmentHandler{adjustmentService: as}
}

func registerSalaryAdjustmentRoutes(rg *gin.RouterGroup, adjustmentService portssvc.SalaryAdjustmentSvcFacade) {
	h := newSalaryAdjustmentHandler(adjustmentService)

	adjustments := rg.Group("/salary-adjustments")
	{
		adjustments.GET("", h.listAdjustments)
		adjustments.POST("/discrepancy", h.recordDiscrepancy)
	}
	rg.POST("/shifts/:shiftID/salary-adjustments", h.recordShiftVariance)
}

// recordDiscrepancy godoc
// @Summary Record a discrepancy
// @Description Creates a salary adjustment when expected and actual differ. An exact match creates nothing.
// @Tags salary-adjustments
// @Accept json
// @Produce json
// @Param discrepancy body dto.RecordDiscrepancyRequest true "Discrepancy"
// @Success 200 {object} dto.RecordDiscrepancyResponse "Exact match, nothing recorded"
// @Success 201 {object} dto.RecordDiscrepancyResponse "Adjustment recorded"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Supervisor role required"
// @Security BearerAuth
// @Router /salary-adjustments/discrepancy [post]
func (h *salaryAdjustmentHandler) recordDiscrepancy(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.RecordDiscrepancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	adj, err := h.adjustmentService.RecordDiscrepancy(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "record discrepancy")
		return
	}
	respondAdjustment(c, adj)
}

// recordShiftVariance godoc
// @Summary Record a closed shift's cash variance
// @Description Compares expected cash against submitted cash and charges or credits the shift's worker.
// @Tags salary-adjustments
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} dto.RecordDiscrepancyResponse "Balanced, nothing recorded"
// @Success 201 {object} dto.RecordDiscrepancyResponse "Adjustment recorded"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Supervisor role required"
// @Failure 404 {object} map[string]string "No closed shift with that id"
// @Security BearerAuth
// @Router /shifts/{shiftID}/salary-adjustments [post]
func (h *salaryAdjustmentHandler) recordShiftVariance(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	adj, err := h.adjustmentService.RecordShiftVariance(c.Request.Context(), actor, c.Param("shiftID"))
	if err != nil {
		respondError(c, err, "record shift variance")
		return
	}
	respondAdjustment(c, adj)
}

// listAdjustments godoc
// @Summary List salary adjustments
// @Description Workers only see their own adjustments. Dates are inclusive (YYYY-MM-DD, UTC).
// @Tags salary-adjustments
// @Produce json
// @Param employeeID query string false "Employee ID"
// @Param from query string false "Start date"
// @Param to query string false "End date"
// @Success 200 {object} dto.ListAdjustmentsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /salary-adjustments [get]
func (h *salaryAdjustmentHandler) listAdjustments(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var params dto.ListAdjustmentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	adjustments, err := h.adjustmentService.ListAdjustments(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err, "list salary adjustments")
		return
	}
	c.JSON(http.StatusOK, dto.ListAdjustmentsResponse{Adjustments: adjustments})
}

func respondAdjustment(c *gin.Context, adj *domain.SalaryAdjustment) {
	if adj == nil {
		c.JSON(http.StatusOK, dto.RecordDiscrepancyResponse{Created: false})
		return
	}
	c.JSON(http.StatusCreated, dto.RecordDiscrepancyResponse{Created: true, Adjustment: adj})
}
