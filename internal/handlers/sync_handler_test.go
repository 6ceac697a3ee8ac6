package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crm-service/internal/database"
	"crm-service/internal/dto"
	"crm-service/internal/models"
	"crm-service/internal/services"
	"crm-service/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type SyncHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	e        *echo.Echo
	mockSync *service_mocks.MockSyncServiceInterface
	handler  *SyncHandler
}

func TestSyncHandlerSuite(t *testing.T) {
	suite.Run(t, new(SyncHandlerTestSuite))
}

func (s *SyncHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.mockSync = service_mocks.NewMockSyncServiceInterface(s.ctrl)
	s.handler = NewSyncHandler(s.mockSync)
}

func (s *SyncHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SyncHandlerTestSuite) get(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func (s *SyncHandlerTestSuite) TestStatus() {
	c, rec := s.get("/api/sync/firebase/status")
	s.mockSync.EXPECT().Status(gomock.Any()).Return(dto.SyncStatusResponse{Configured: true, CircuitState: "closed"})

	s.Require().NoError(s.handler.Status(c))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"configured":true,"circuitState":"closed"}`, rec.Body.String())
}

func (s *SyncHandlerTestSuite) TestSyncUsers_ReturnsSummary() {
	c, rec := s.get("/api/sync/firebase/users")
	s.mockSync.EXPECT().SyncCustomers(gomock.Any()).Return(&dto.CustomerSyncSummary{Created: 2, Updated: 1, Total: 3}, nil)

	s.Require().NoError(s.handler.SyncUsers(c))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"created":2,"updated":1,"failed":0,"total":3}`, rec.Body.String())
}

func (s *SyncHandlerTestSuite) TestSyncOrders_ReturnsSummary() {
	c, rec := s.get("/api/sync/firebase/orders")
	s.mockSync.EXPECT().SyncOrders(gomock.Any()).Return(&dto.OrderSyncSummary{Updated: 1, Scanned: 4, Skipped: 2, Ignored: 1}, nil)

	s.Require().NoError(s.handler.SyncOrders(c))

	s.Equal(http.StatusOK, rec.Code)
	var summary dto.OrderSyncSummary
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &summary))
	s.Equal(4, summary.Scanned)
}

func (s *SyncHandlerTestSuite) TestSyncErrors() {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{services.ErrRemoteNotConfigured, http.StatusServiceUnavailable, "SYNC_001"},
		{fmt.Errorf("%w: %w", services.ErrRemoteUnavailable, errors.New("deadline exceeded")), http.StatusBadGateway, "SYNC_002"},
		{services.ErrRemoteCircuitOpen, http.StatusServiceUnavailable, "SYNC_003"},
		{errors.New("disk full"), http.StatusInternalServerError, "SYSTEM_001"},
	}

	for _, tt := range tests {
		s.Run(tt.code, func() {
			c, rec := s.get("/api/sync/firebase/staff")
			s.mockSync.EXPECT().SyncStaffClaims(gomock.Any()).Return(nil, tt.err)

			s.Require().NoError(s.handler.SyncStaff(c))

			s.Equal(tt.status, rec.Code)
			var resp ErrorResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			s.Equal(tt.code, resp.Error.Code)
		})
	}
}

func (s *SyncHandlerTestSuite) TestListRuns() {
	started := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	c, rec := s.get("/api/sync/firebase/runs?kind=orders")
	s.mockSync.EXPECT().ListRuns(models.SyncKindOrders, 20).Return([]models.SyncRun{{
		ID:         uuid.New(),
		Kind:       models.SyncKindOrders,
		Status:     models.SyncStatusCompleted,
		Failures:   models.JSONMap{"o-1": "customer update failed"},
		StartedAt:  started,
		FinishedAt: started.Add(1500 * time.Millisecond),
	}}, nil)

	s.Require().NoError(s.handler.ListRuns(c))

	s.Equal(http.StatusOK, rec.Code)
	var runs []dto.SyncRunResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &runs))
	s.Require().Len(runs, 1)
	s.Equal(int64(1500), runs[0].DurationMs)
	s.Equal("customer update failed", runs[0].Failures["o-1"])
}

func (s *SyncHandlerTestSuite) TestListRuns_InvalidKind() {
	c, rec := s.get("/api/sync/firebase/runs?kind=invoices")

	s.Require().NoError(s.handler.ListRuns(c))

	s.Equal(http.StatusBadRequest, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	db := database.SetupTestDB(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHealthCheckHandler(db.DB, func() bool { return false })
	if err := handler.HealthCheck(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp dto.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "healthy" || resp.Checks["firebase"] != "not configured" {
		t.Fatalf("unexpected health response: %+v", resp)
	}
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	db := database.SetupTestDB(t)
	sqlDB, err := db.DB.DB()
	if err != nil {
		t.Fatal(err)
	}
	_ = sqlDB.Close()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	if err := NewHealthCheckHandler(db.DB, nil).HealthCheck(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
