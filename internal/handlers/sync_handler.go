package handlers

import (
	stderrors "errors"
	"net/http"

	"crm-service/internal/dto"
	"crm-service/internal/errors"
	"crm-service/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultSyncRunsLimit = 20

// SyncHandler triggers Firebase reconciliation runs. Each run is synchronous
// and returns its summary.
type SyncHandler struct {
	syncService services.SyncServiceInterface
}

func NewSyncHandler(syncService services.SyncServiceInterface) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// Status reports whether Firebase is configured and the circuit breaker state
// @Summary Sync status
// @Tags Sync
// @Produce json
// @Success 200 {object} dto.SyncStatusResponse
// @Router /sync/firebase/status [get]
func (h *SyncHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.syncService.Status(c.Request().Context()))
}

// SyncUsers reconciles the Firestore users collection into local customers
// @Summary Sync customers from Firestore
// @Tags Sync
// @Produce json
// @Success 200 {object} dto.CustomerSyncSummary
// @Failure 502 {object} errors.ErrorResponse "SYNC_002 - Firebase could not be reached"
// @Failure 503 {object} errors.ErrorResponse "SYNC_001 - Firebase Admin is not configured"
// @Router /sync/firebase/users [get]
func (h *SyncHandler) SyncUsers(c echo.Context) error {
	summary, err := h.syncService.SyncCustomers(c.Request().Context())
	if err != nil {
		return sendSyncError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// SyncOrders derives last order dates and follow-up tasks from Firestore orders
// @Summary Sync orders from Firestore
// @Tags Sync
// @Produce json
// @Success 200 {object} dto.OrderSyncSummary
// @Failure 502 {object} errors.ErrorResponse "SYNC_002 - Firebase could not be reached"
// @Failure 503 {object} errors.ErrorResponse "SYNC_001 - Firebase Admin is not configured"
// @Router /sync/firebase/orders [get]
func (h *SyncHandler) SyncOrders(c echo.Context) error {
	summary, err := h.syncService.SyncOrders(c.Request().Context())
	if err != nil {
		return sendSyncError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// SyncStaff mirrors staff documents into Firebase Auth custom claims
// @Summary Sync staff claims
// @Tags Sync
// @Produce json
// @Success 200 {object} dto.StaffSyncSummary
// @Router /sync/firebase/staff [get]
func (h *SyncHandler) SyncStaff(c echo.Context) error {
	summary, err := h.syncService.SyncStaffClaims(c.Request().Context())
	if err != nil {
		return sendSyncError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// ListRuns returns recent sync runs, newest first
// @Summary Sync run history
// @Tags Sync
// @Produce json
// @Param kind query string false "Run kind" Enums(customers, orders, staff)
// @Param limit query int false "Max results" default(20)
// @Success 200 {array} dto.SyncRunResponse
// @Router /sync/firebase/runs [get]
func (h *SyncHandler) ListRuns(c echo.Context) error {
	var req dto.ListSyncRunsRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	if req.Limit == 0 {
		req.Limit = defaultSyncRunsLimit
	}

	runs, err := h.syncService.ListRuns(req.Kind, req.Limit)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSyncRunResponses(runs))
}

func sendSyncError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrRemoteNotConfigured):
		return SendError(c, errors.SyncNotConfigured)
	case stderrors.Is(err, services.ErrRemoteCircuitOpen):
		return SendError(c, errors.SyncCircuitOpen)
	case stderrors.Is(err, services.ErrRemoteUnavailable):
		return SendError(c, errors.SyncUnavailable)
	}
	return SendSystemError(c, err)
}
