package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fuel_station_app/internal/core/ports/services"
	"github.com/SscSPs/fuel_station_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// collectionHandler handles cash, handover, electronic payment and expense requests.
type collectionHandler struct {
	collectionService     portssvc.CollectionSvcFacade
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newCollectionHandler(cs portssvc.CollectionSvcFacade, rs portssvc.ReconciliationSvcFacade) *collectionHandler {
	return &collectionHandler{collectionService: cs, reconciliationService: rs}
}

func registerCollectionRoutes(rg *gin.RouterGroup, collectionService portssvc.CollectionSvcFacade, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newCollectionHandler(collectionService, reconciliationService)

	cash := rg.Group("/cash-submissions")
	{
		cash.POST("", h.submitCash)
		cash.POST("/:id/verify", h.verifyCash)
	}

	handovers := rg.Group("/handovers")
	{
		handovers.POST("", h.recordHandover)
		handovers.POST("/:id/verify", h.verifyHandover)
	}

	payments := rg.Group("/electronic-payments")
	{
		payments.POST("", h.recordElectronicPayment)
		payments.POST("/:id/verify", h.verifyElectronicPayment)
	}

	rg.POST("/expenses", h.recordExpense)
	rg.GET("/shifts/:shiftID/collections", h.listShiftCollections)
}

// submitCash godoc
// @Summary Submit cash
// @Description Declares cash collected on the caller's open shift.
// @Tags collections
// @Accept json
// @Produce json
// @Param submission body dto.SubmitCashRequest true "Cash submission"
// @Success 201 {object} domain.CashSubmission
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No open shift"
// @Security BearerAuth
// @Router /cash-submissions [post]
func (h *collectionHandler) submitCash(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.SubmitCashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sub, err := h.collectionService.SubmitCash(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "submit cash")
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// verifyCash godoc
// @Summary Verify a cash submission
// @Description Verifies a submission once. The verifier cannot be the submitter.
// @Tags collections
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} domain.CashSubmission
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller may not verify"
// @Failure 404 {object} map[string]string "No unverified submission with that id"
// @Security BearerAuth
// @Router /cash-submissions/{id}/verify [post]
func (h *collectionHandler) verifyCash(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	sub, err := h.collectionService.VerifyCash(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "verify cash submission")
		return
	}
	c.JSON(http.StatusOK, sub)
}

// recordHandover godoc
// @Summary Record a cash handover
// @Description Records cash handed from the caller to another user during the caller's open shift.
// @Tags collections
// @Accept json
// @Produce json
// @Param handover body dto.RecordHandoverRequest true "Handover"
// @Success 201 {object} domain.CashHandover
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No open shift"
// @Security BearerAuth
// @Router /handovers [post]
func (h *collectionHandler) recordHandover(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.RecordHandoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	handover, err := h.collectionService.RecordHandover(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "record handover")
		return
	}
	c.JSON(http.StatusCreated, handover)
}

// verifyHandover godoc
// @Summary Verify a cash handover
// @Tags collections
// @Produce json
// @Param id path string true "Handover ID"
// @Success 200 {object} domain.CashHandover
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller may not verify"
// @Failure 404 {object} map[string]string "No unverified handover with that id"
// @Security BearerAuth
// @Router /handovers/{id}/verify [post]
func (h *collectionHandler) verifyHandover(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	handover, err := h.collectionService.VerifyHandover(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "verify handover")
		return
	}
	c.JSON(http.StatusOK, handover)
}

// recordElectronicPayment godoc
// @Summary Record an electronic payment
// @Description Records a pending non-cash payment. Non-empty reference numbers must be unique.
// @Tags collections
// @Accept json
// @Produce json
// @Param payment body dto.RecordElectronicPaymentRequest true "Payment"
// @Success 201 {object} domain.ElectronicPayment
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No open shift"
// @Failure 409 {object} map[string]string "Reference number already used"
// @Security BearerAuth
// @Router /electronic-payments [post]
func (h *collectionHandler) recordElectronicPayment(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.RecordElectronicPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	payment, err := h.collectionService.RecordElectronicPayment(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "record electronic payment")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// verifyElectronicPayment godoc
// @Summary Verify or reject an electronic payment
// @Tags collections
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param decision body dto.VerifyElectronicPaymentRequest true "Decision"
// @Success 200 {object} domain.ElectronicPayment
// @Failure 400 {object} map[string]string "Invalid decision"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller may not verify"
// @Failure 404 {object} map[string]string "No pending payment with that id"
// @Security BearerAuth
// @Router /electronic-payments/{id}/verify [post]
func (h *collectionHandler) verifyElectronicPayment(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.VerifyElectronicPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	payment, err := h.collectionService.VerifyElectronicPayment(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "verify electronic payment")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// recordExpense godoc
// @Summary Record a till expense
// @Tags collections
// @Accept json
// @Produce json
// @Param expense body dto.RecordExpenseRequest true "Expense"
// @Success 201 {object} domain.Expense
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No open shift"
// @Security BearerAuth
// @Router /expenses [post]
func (h *collectionHandler) recordExpense(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	expense, err := h.collectionService.RecordExpense(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "record expense")
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// listShiftCollections godoc
// @Summary List a shift's collections
// @Description Returns cash submissions, handovers, electronic payments and expenses of the shift.
// @Tags collections
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} dto.ShiftCollectionsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Shift not found"
// @Security BearerAuth
// @Router /shifts/{shiftID}/collections [get]
func (h *collectionHandler) listShiftCollections(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	ledger, err := h.reconciliationService.GetShiftLedger(c.Request.Context(), actor, c.Param("shiftID"))
	if err != nil {
		respondError(c, err, "list shift collections")
		return
	}
	c.JSON(http.StatusOK, dto.ToShiftCollectionsResponse(*ledger))
}
