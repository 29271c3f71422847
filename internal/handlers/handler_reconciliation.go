package handlers

import (
	"net/http"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	portssvc "github.com/SscSPs/fuel_station_app/internal/core/ports/services"
	"github.com/SscSPs/fuel_station_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newReconciliationHandler(rs portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{reconciliationService: rs}
}

func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(reconciliationService)

	rg.GET("/shifts/:shiftID/summary", h.getShiftSummary)
	rg.GET("/shifts/:shiftID/slip.pdf", h.getShiftSlip)

	terminals := rg.Group("/terminals/:terminalID")
	{
		terminals.GET("/metrics", h.getTerminalMetrics)
		terminals.GET("/metrics.xlsx", h.exportTerminalMetrics)
	}
}

// getShiftSummary godoc
// @Summary Summarize a shift
// @Description Computes fuel sold, expected and collected amounts and the cash variance of a shift.
// @Description Unverified and rejected items are included.
// @Tags reconciliation
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} domain.ShiftSummary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Shift not found"
// @Security BearerAuth
// @Router /shifts/{shiftID}/summary [get]
func (h *reconciliationHandler) getShiftSummary(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	summary, err := h.reconciliationService.SummarizeShift(c.Request.Context(), actor, c.Param("shiftID"))
	if err != nil {
		respondError(c, err, "summarize shift")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getShiftSlip godoc
// @Summary Download a shift reconciliation slip
// @Tags reconciliation
// @Produce application/pdf
// @Param shiftID path string true "Shift ID"
// @Success 200 {file} file
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Shift not found"
// @Security BearerAuth
// @Router /shifts/{shiftID}/slip.pdf [get]
func (h *reconciliationHandler) getShiftSlip(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	doc, err := h.reconciliationService.RenderShiftSlip(c.Request.Context(), actor, c.Param("shiftID"))
	if err != nil {
		respondError(c, err, "render shift slip")
		return
	}
	sendDocument(c, doc)
}

// getTerminalMetrics godoc
// @Summary Terminal metrics for a period
// @Description Aggregates shifts started at the terminal in the day, ISO week or month containing date (UTC).
// @Tags reconciliation
// @Produce json
// @Param terminalID path string true "Terminal ID"
// @Param period query string false "day, week or month" Enums(day, week, month)
// @Param date query string false "Any date in the period (YYYY-MM-DD), defaults to today"
// @Success 200 {object} domain.TerminalMetrics
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /terminals/{terminalID}/metrics [get]
func (h *reconciliationHandler) getTerminalMetrics(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var params dto.TerminalMetricsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	period, anchor := params.Resolve(nowUTC())

	metrics, err := h.reconciliationService.SummarizeTerminal(c.Request.Context(), actor, c.Param("terminalID"), period, anchor)
	if err != nil {
		respondError(c, err, "summarize terminal")
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// exportTerminalMetrics godoc
// @Summary Download terminal metrics as a workbook
// @Tags reconciliation
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param terminalID path string true "Terminal ID"
// @Param period query string false "day, week or month" Enums(day, week, month)
// @Param date query string false "Any date in the period (YYYY-MM-DD), defaults to today"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /terminals/{terminalID}/metrics.xlsx [get]
func (h *reconciliationHandler) exportTerminalMetrics(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var params dto.TerminalMetricsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	period, anchor := params.Resolve(nowUTC())

	doc, err := h.reconciliationService.ExportTerminalMetrics(c.Request.Context(), actor, c.Param("terminalID"), period, anchor)
	if err != nil {
		respondError(c, err, "export terminal metrics")
		return
	}
	sendDocument(c, doc)
}

func sendDocument(c *gin.Context, doc *domain.Document) {
	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}
