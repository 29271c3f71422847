package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fuel_station_app/internal/core/ports/services"
	"github.com/SscSPs/fuel_station_app/internal/dto"
	"github.com/SscSPs/fuel_station_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// shiftHandler handles HTTP requests related to shifts.
type shiftHandler struct {
	shiftService portssvc.ShiftSvcFacade
}

func newShiftHandler(ss portssvc.ShiftSvcFacade) *shiftHandler {
	return &shiftHandler{shiftService: ss}
}

// registerShiftRoutes registers routes related to the shift lifecycle.
func registerShiftRoutes(rg *gin.RouterGroup, shiftService portssvc.ShiftSvcFacade) {
	h := newShiftHandler(shiftService)

	shifts := rg.Group("/shifts")
	{
		shifts.POST("", h.startShift)
		shifts.GET("", h.listShifts)
		shifts.GET("/active", h.getActiveShift)
		shifts.GET("/current", h.getCurrentShift)
		shifts.GET("/:shiftID", h.getShift)
		shifts.POST("/:shiftID/end", h.endShift)
	}
}

// startShift godoc
// @Summary Start a shift
// @Description Opens a shift for the caller. A worker can have only one open shift.
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body dto.StartShiftRequest true "Shift details"
// @Success 201 {object} domain.Shift
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Session is bound to another terminal"
// @Failure 409 {object} map[string]string "Worker already has an open shift"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /shifts [post]
func (h *shiftHandler) startShift(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.StartShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	shift, err := h.shiftService.StartShift(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "start shift")
		return
	}
	c.JSON(http.StatusCreated, shift)
}

// endShift godoc
// @Summary End a shift
// @Description Closes the caller's open shift, then force-closes open readings and auto-verifies handovers.
// @Description A cleanup failure is reported in cleanupError; the shift stays closed.
// @Tags shifts
// @Accept json
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Param shift body dto.EndShiftRequest false "Closing notes"
// @Success 200 {object} dto.EndShiftResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No open shift with that id"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /shifts/{shiftID}/end [post]
func (h *shiftHandler) endShift(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.EndShiftRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}

	result, err := h.shiftService.EndShift(c.Request.Context(), actor, c.Param("shiftID"), req)
	if err != nil && !(isCleanupError(err) && result != nil) {
		respondError(c, err, "end shift")
		return
	}

	resp := dto.EndShiftResponse{Shift: result.Shift, Cleanup: result.Cleanup}
	if result.CleanupErr != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Shift closed with cleanup failure",
			slog.String("shift_id", result.Shift.ShiftID), slog.String("error", result.CleanupErr.Error()))
		resp.CleanupError = "cleanup failed; open readings or handovers may need manual attention"
	}
	c.JSON(http.StatusOK, resp)
}

// getActiveShift godoc
// @Summary Get a worker's open shift
// @Description Returns the worker's open shift at any terminal, or null. Defaults to the caller.
// @Tags shifts
// @Produce json
// @Param workerID query string false "Worker ID"
// @Success 200 {object} domain.Shift
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /shifts/active [get]
func (h *shiftHandler) getActiveShift(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	workerID := c.DefaultQuery("workerID", actor.UserID)

	shift, err := h.shiftService.GetActiveShift(c.Request.Context(), actor, workerID)
	if err != nil {
		respondError(c, err, "get active shift")
		return
	}
	c.JSON(http.StatusOK, shift)
}

// getCurrentShift godoc
// @Summary Get a worker's open shift at a terminal
// @Description Returns the worker's open shift at the terminal, or null.
// @Tags shifts
// @Produce json
// @Param terminalID query string false "Terminal ID (defaults to the caller's terminal)"
// @Param workerID query string false "Worker ID (defaults to the caller)"
// @Success 200 {object} domain.Shift
// @Failure 400 {object} map[string]string "Terminal not given"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /shifts/current [get]
func (h *shiftHandler) getCurrentShift(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	workerID := c.DefaultQuery("workerID", actor.UserID)
	terminalID := c.DefaultQuery("terminalID", actor.TerminalID)
	if terminalID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "terminalID is required"})
		return
	}

	shift, err := h.shiftService.GetCurrentShift(c.Request.Context(), actor, workerID, terminalID)
	if err != nil {
		respondError(c, err, "get current shift")
		return
	}
	c.JSON(http.StatusOK, shift)
}

// getShift godoc
// @Summary Get a shift by ID
// @Tags shifts
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} domain.Shift
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /shifts/{shiftID} [get]
func (h *shiftHandler) getShift(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	shift, err := h.shiftService.GetShift(c.Request.Context(), actor, c.Param("shiftID"))
	if err != nil {
		respondError(c, err, "get shift")
		return
	}
	c.JSON(http.StatusOK, shift)
}

// listShifts godoc
// @Summary List shifts
// @Description Lists the company's shifts, newest first. Dates are inclusive (YYYY-MM-DD, UTC).
// @Tags shifts
// @Produce json
// @Param terminalID query string false "Terminal ID"
// @Param workerID query string false "Worker ID"
// @Param from query string false "Start date"
// @Param to query string false "End date"
// @Param openOnly query bool false "Only open shifts"
// @Success 200 {object} dto.ListShiftsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /shifts [get]
func (h *shiftHandler) listShifts(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var params dto.ListShiftsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	shifts, err := h.shiftService.ListShifts(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err, "list shifts")
		return
	}
	c.JSON(http.StatusOK, dto.ListShiftsResponse{Shifts: shifts})
}
