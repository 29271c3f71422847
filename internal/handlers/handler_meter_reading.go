package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fuel_station_app/internal/core/ports/services"
	"github.com/SscSPs/fuel_station_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type meterReadingHandler struct {
	readingService portssvc.MeterReadingSvcFacade
}

func newMeterReadingHandler(rs portssvc.MeterReadingSvcFacade) *meterReadingHandler {
	return &meterReadingHandler{readingService: rs}
}

func registerMeterReadingRoutes(rg *gin.RouterGroup, readingService portssvc.MeterReadingSvcFacade) {
	h := newMeterReadingHandler(readingService)

	readings := rg.Group("/readings")
	{
		readings.POST("", h.openReading)
		readings.GET("", h.listReadings)
		readings.GET("/:readingID", h.getReading)
		readings.POST("/:readingID/close", h.closeReading)
	}
}

// openReading godoc
// @Summary Open a pump reading
// @Description Records the opening counter of a pump on the caller's open shift.
// @Tags readings
// @Accept json
// @Produce json
// @Param reading body dto.OpenReadingRequest true "Opening reading"
// @Success 201 {object} dto.MeterReadingResponse
// @Failure 400 {object} map[string]string "Invalid input or counter below the last closing"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Shift or pump not found"
// @Failure 409 {object} map[string]string "Pump already has an open reading on this shift"
// @Failure 424 {object} map[string]string "Pump registry unavailable"
// @Security BearerAuth
// @Router /readings [post]
func (h *meterReadingHandler) openReading(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.OpenReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	reading, err := h.readingService.OpenReading(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "open reading")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMeterReadingResponse(*reading))
}

// closeReading godoc
// @Summary Close a pump reading
// @Description Records the closing counter and prices the liters at the pump's current price.
// @Tags readings
// @Accept json
// @Produce json
// @Param readingID path string true "Reading ID"
// @Param reading body dto.CloseReadingRequest true "Closing reading"
// @Success 200 {object} dto.MeterReadingResponse
// @Failure 400 {object} map[string]string "Invalid input or closing below opening"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Reading belongs to another worker"
// @Failure 404 {object} map[string]string "No open reading with that id"
// @Failure 424 {object} map[string]string "Pump registry unavailable"
// @Security BearerAuth
// @Router /readings/{readingID}/close [post]
func (h *meterReadingHandler) closeReading(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.CloseReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	reading, err := h.readingService.CloseReading(c.Request.Context(), actor, c.Param("readingID"), req)
	if err != nil {
		respondError(c, err, "close reading")
		return
	}
	c.JSON(http.StatusOK, dto.ToMeterReadingResponse(*reading))
}

// getReading godoc
// @Summary Get a reading by ID
// @Tags readings
// @Produce json
// @Param readingID path string true "Reading ID"
// @Success 200 {object} dto.MeterReadingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Reading not found"
// @Security BearerAuth
// @Router /readings/{readingID} [get]
func (h *meterReadingHandler) getReading(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	reading, err := h.readingService.GetReading(c.Request.Context(), actor, c.Param("readingID"))
	if err != nil {
		respondError(c, err, "get reading")
		return
	}
	c.JSON(http.StatusOK, dto.ToMeterReadingResponse(*reading))
}

// listReadings godoc
// @Summary List readings
// @Description Lists readings oldest first with token pagination. Dates are inclusive (YYYY-MM-DD, UTC).
// @Tags readings
// @Produce json
// @Param userID query string false "Worker ID"
// @Param pumpID query string false "Pump ID"
// @Param shiftID query string false "Shift ID"
// @Param from query string false "Start date"
// @Param to query string false "End date"
// @Param limit query int false "Page size (max 500)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListReadingsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /readings [get]
func (h *meterReadingHandler) listReadings(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var params dto.ListReadingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.readingService.ListReadings(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err, "list readings")
		return
	}
	c.JSON(http.StatusOK, dto.ListReadingsResponse{
		Readings:  dto.ToMeterReadingResponses(page.Items),
		NextToken: page.NextToken,
	})
}
