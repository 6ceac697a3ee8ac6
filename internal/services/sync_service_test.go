package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"crm-service/internal/cache"
	"crm-service/internal/database"
	"crm-service/internal/firebase"
	"crm-service/internal/models"
	"crm-service/internal/repositories"
	"crm-service/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type SyncServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	db        *database.DB
	remote    *service_mocks.MockRemoteSource
	claims    *service_mocks.MockClaimsWriter
	customers repositories.CustomerRepositoryInterface
	tasks     repositories.TaskRepositoryInterface
	runs      repositories.SyncRunRepositoryInterface
	cache     *cache.MemoryCache
	metrics   *PrometheusMetrics
	breaker   *CircuitBreaker
	service   *SyncService
	ctx       context.Context
}

func TestSyncServiceSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.db = database.SetupTestDB(s.T())
	s.remote = service_mocks.NewMockRemoteSource(s.ctrl)
	s.claims = service_mocks.NewMockClaimsWriter(s.ctrl)
	s.customers = repositories.NewCustomerRepository(s.db.DB)
	s.tasks = repositories.NewTaskRepository(s.db.DB)
	s.runs = repositories.NewSyncRunRepository(s.db.DB)
	s.cache = cache.NewMemoryCache()
	s.metrics = NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)
	s.breaker = newCircuitBreaker(CircuitBreakerConfig{MaxFailures: 2, ResetTimeout: time.Minute, HalfOpenMaxSucc: 1}, time.Now)
	s.ctx = context.Background()

	s.service = newSyncService(SyncServiceDeps{
		Remote:    s.remote,
		Claims:    s.claims,
		Customers: s.customers,
		Tasks:     s.tasks,
		Runs:      s.runs,
		Cache:     s.cache,
		Breaker:   s.breaker,
		Metrics:   s.metrics,
		Logger:    NewSyncLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	})

	s.remote.EXPECT().Configured().Return(true).AnyTimes()
}

func (s *SyncServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
	s.ctrl.Finish()
}

func (s *SyncServiceTestSuite) expectUsers(docs ...firebase.Document) {
	s.remote.EXPECT().FetchAll(gomock.Any(), "users_prod").Return(docs, nil)
}

func (s *SyncServiceTestSuite) expectOrders(docs ...firebase.Document) {
	s.remote.EXPECT().FetchAll(gomock.Any(), "orders_prod").Return(docs, nil)
}

func (s *SyncServiceTestSuite) countCustomers() int64 {
	var n int64
	s.Require().NoError(s.db.Model(&models.Customer{}).Count(&n).Error)
	return n
}

func (s *SyncServiceTestSuite) followUps(customerID string) []models.Task {
	var tasks []models.Task
	s.Require().NoError(s.db.Where("customer_id = ? AND kind = ?", customerID, models.TaskKindFollowUp).Find(&tasks).Error)
	return tasks
}

// Customers

func (s *SyncServiceTestSuite) TestSyncCustomers_CreatesUnmatchedRemoteCustomer() {
	s.expectUsers(doc("doc-1", map[string]interface{}{"uid": "u1", "email": "a@b.com", "name": "A"}))

	summary, err := s.service.SyncCustomers(s.ctx)
	s.Require().NoError(err)

	s.Equal(1, summary.Created)
	s.Equal(0, summary.Updated)
	s.Equal(1, summary.Total)
	s.Equal(int64(1), s.countCustomers())

	created, err := s.customers.GetByExternalID("u1")
	s.Require().NoError(err)
	s.Equal("A", created.Name)
	s.Equal("a@b.com", created.Email)
}

func (s *SyncServiceTestSuite) TestSyncCustomers_UpdatesByExternalID() {
	existing := database.CreateTestCustomer(s.T(), s.db, "Old name", "old@example.com", "u1")

	s.expectUsers(doc("doc-1", map[string]interface{}{"uid": "u1", "name": "New name", "city": "Lyon"}))

	summary, err := s.service.SyncCustomers(s.ctx)
	s.Require().NoError(err)

	s.Equal(0, summary.Created)
	s.Equal(1, summary.Updated)
	s.Equal(summary.Total, summary.Created+summary.Updated+summary.Failed)
	s.Equal(int64(1), s.countCustomers())

	updated, err := s.customers.GetByID(existing.ID)
	s.Require().NoError(err)
	s.Equal("New name", updated.Name)
	s.Equal("Lyon", updated.City)
	s.Equal("old@example.com", updated.Email)
	s.WithinDuration(existing.CreatedAt, updated.CreatedAt, time.Second)
}

func (s *SyncServiceTestSuite) TestSyncCustomers_FallsBackToEmail() {
	existing := database.CreateTestCustomer(s.T(), s.db, "Local", "Ada@Example.com", "")

	s.expectUsers(doc("remote-doc", map[string]interface{}{"email": "ada@example.com", "name": "Ada"}))

	summary, err := s.service.SyncCustomers(s.ctx)
	s.Require().NoError(err)

	s.Equal(1, summary.Updated)
	s.Equal(0, summary.Created)

	updated, err := s.customers.GetByID(existing.ID)
	s.Require().NoError(err)
	s.Equal("Ada", updated.Name)
	s.Equal("remote-doc", updated.ExternalID)
}

func (s *SyncServiceTestSuite) TestSyncCustomers_EmailMatchIgnoresRecordsLinkedElsewhere() {
	database.CreateTestCustomer(s.T(), s.db, "Linked", "shared@example.com", "other-uid")

	s.expectUsers(doc("d", map[string]interface{}{"uid": "u2", "email": "shared@example.com"}))

	summary, err := s.service.SyncCustomers(s.ctx)
	s.Require().NoError(err)

	s.Equal(1, summary.Created)
	s.Equal(int64(2), s.countCustomers())
}

func (s *SyncServiceTestSuite) TestSyncCustomers_EmailMatchSkipsLinkedToReachUnlinked() {
	database.CreateTestCustomer(s.T(), s.db, "Linked", "shared@example.com", "other-uid")
	unlinked := database.CreateTestCustomer(s.T(), s.db, "Unlinked", "shared@example.com", "")

	s.expectUsers(doc("d", map[string]interface{}{"uid": "u2", "email": "shared@example.com"}))

	summary, err := s.service.SyncCustomers(s.ctx)
	s.Require().NoError(err)

	s.Equal(0, summary.Created)
	s.Equal(1, summary.Updated)
	s.Equal(int64(2), s.countCustomers())

	linked, err := s.customers.GetByID(unlinked.ID)
	s.Require().NoError(err)
	s.Equal("u2", linked.ExternalID)
}

func (s *SyncServiceTestSuite) TestSyncCustomers_UnchangedRecordIsNotRewritten() {
	docs := []firebase.Document{doc("d1", map[string]interface{}{"uid": "u1", "email": "one@example.com", "name": "One"})}
	s.expectUsers(docs...)
	s.expectUsers(docs...)

	_, err := s.service.SyncCustomers(s.ctx)
	s.Require().NoError(err)
	before, err := s.customers.GetByExternalID("u1")
	s.Require().NoError(err)

	second, err := s.service.SyncCustomers(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, second.Updated)

	after, err := s.customers.GetByExternalID("u1")
	s.Require().NoError(err)
	s.True(before.UpdatedAt.Equal(after.UpdatedAt), "updated_at moved from %v to %v", before.UpdatedAt, after.UpdatedAt)
}

func (s *SyncServiceTestSuite) TestSyncCustomers_IsIdempotent() {
	docs := []firebase.Document{
		doc("d1", map[string]interface{}{"uid": "u1", "email": "one@example.com", "name": "One"}),
		doc("d2", map[string]interface{}{"uid": "u2", "firstName": "Two", "lastName": "Smith"}),
	}
	s.expectUsers(docs...)
	s.expectUsers(docs...)

	first, err := s.service.SyncCustomers(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, first.Created)

	second, err := s.service.SyncCustomers(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, second.Created)
	s.Equal(2, second.Updated)
	s.Equal(int64(2), s.countCustomers())
}

func (s *SyncServiceTestSuite) TestSyncCustomers_DuplicateWithinSnapshotUpdates() {
	s.expectUsers(
		doc("d1", map[string]interface{}{"uid": "u1", "name": "First"}),
		doc("d2", map[string]interface{}{"uid": "u1", "name": "Second"}),
	)

	summary, err := s.service.SyncCustomers(s.ctx)
	s.Require().NoError(err)

	s.Equal(1, summary.Created)
	s.Equal(1, summary.Updated)
	s.Equal(int64(1), s.countCustomers())

	c, err := s.customers.GetByExternalID("u1")
	s.Require().NoError(err)
	s.Equal("Second", c.Name)
}

func (s *SyncServiceTestSuite) TestSyncCustomers_RecordFailureDoesNotAbortBatch() {
	customers := failingCustomerRepo{CustomerRepositoryInterface: s.customers, failName: "Broken"}
	s.service.customers = customers

	s.expectUsers(
		doc("d1", map[string]interface{}{"uid": "u1", "name": "Broken"}),
		doc("d2", map[string]interface{}{"uid": "u2", "name": "Fine"}),
	)

	summary, err := s.service.SyncCustomers(s.ctx)
	s.Require().NoError(err)

	s.Equal(1, summary.Created)
	s.Equal(1, summary.Failed)
	s.Equal(2, summary.Total)
	s.Contains(summary.Failures, "d1")

	runs, err := s.runs.List(models.SyncKindCustomers, 10)
	s.Require().NoError(err)
	s.Require().Len(runs, 1)
	s.Equal(models.SyncStatusCompleted, runs[0].Status)
	s.Equal(1, runs[0].Failed)
	s.Contains(runs[0].Failures, "d1")
	s.Contains(runs[0].Error, "d1")
}

func (s *SyncServiceTestSuite) TestSyncCustomers_InvalidatesCityCache() {
	s.Require().NoError(s.cache.Set(s.ctx, cache.KeyCustomerCities, []string{"Stale"}, time.Hour))
	s.expectUsers(doc("d1", map[string]interface{}{"uid": "u1", "city": "Oslo"}))

	_, err := s.service.SyncCustomers(s.ctx)
	s.Require().NoError(err)

	var cities []string
	found, err := s.cache.Get(s.ctx, cache.KeyCustomerCities, &cities)
	s.NoError(err)
	s.False(found)
}

func (s *SyncServiceTestSuite) TestSyncCustomers_RecordsRunAndMetrics() {
	s.expectUsers(doc("d1", map[string]interface{}{"uid": "u1"}))

	_, err := s.service.SyncCustomers(s.ctx)
	s.Require().NoError(err)

	runs, err := s.service.ListRuns("", 10)
	s.Require().NoError(err)
	s.Require().Len(runs, 1)
	s.Equal(models.SyncKindCustomers, runs[0].Kind)
	s.Equal(1, runs[0].Created)
	s.Equal(1, runs[0].Total)

	s.Equal(float64(1), testutil.ToFloat64(s.metrics.syncRuns.WithLabelValues(models.SyncKindCustomers, models.SyncStatusCompleted)))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.syncRecords.WithLabelValues(models.SyncKindCustomers, "created")))
}

// Preconditions

func (s *SyncServiceTestSuite) TestSync_NotConfiguredFailsBeforeReading() {
	ctrl := gomock.NewController(s.T())
	remote := service_mocks.NewMockRemoteSource(ctrl)
	remote.EXPECT().Configured().Return(false).AnyTimes()
	s.service.remote = remote

	_, err := s.service.SyncCustomers(s.ctx)
	s.ErrorIs(err, ErrRemoteNotConfigured)

	_, err = s.service.SyncOrders(s.ctx)
	s.ErrorIs(err, ErrRemoteNotConfigured)

	s.False(s.service.Status(s.ctx).Configured)

	runs, err := s.runs.List("", 10)
	s.Require().NoError(err)
	s.Empty(runs)
}

func (s *SyncServiceTestSuite) TestSync_NilRemoteIsNotConfigured() {
	s.service.remote = nil

	_, err := s.service.SyncCustomers(s.ctx)
	s.ErrorIs(err, ErrRemoteNotConfigured)
}

func (s *SyncServiceTestSuite) TestSync_FetchFailureWritesNothing() {
	database.CreateTestCustomer(s.T(), s.db, "Local", "", "u1")
	s.remote.EXPECT().FetchAll(gomock.Any(), "users_prod").Return(nil, errors.New("permission denied"))

	_, err := s.service.SyncCustomers(s.ctx)
	s.ErrorIs(err, ErrRemoteUnavailable)
	s.Equal(int64(1), s.countCustomers())
	s.Equal(0, s.breaker.GetFailureCount())

	runs, err := s.runs.List(models.SyncKindCustomers, 10)
	s.Require().NoError(err)
	s.Require().Len(runs, 1)
	s.Equal(models.SyncStatusFailed, runs[0].Status)
}

func (s *SyncServiceTestSuite) TestSync_TransientFailuresOpenCircuit() {
	outage := status.Error(codes.Unavailable, "backend down")
	s.remote.EXPECT().FetchAll(gomock.Any(), "users_prod").Return(nil, outage).Times(2)

	for i := 0; i < 2; i++ {
		_, err := s.service.SyncCustomers(s.ctx)
		s.ErrorIs(err, ErrRemoteUnavailable)
	}

	_, err := s.service.SyncCustomers(s.ctx)
	s.ErrorIs(err, ErrRemoteCircuitOpen)
	s.Equal("open", s.service.Status(s.ctx).CircuitState)
}

// Orders

func (s *SyncServiceTestSuite) TestSyncOrders_LatestOrderDrivesFollowUp() {
	customer := database.CreateTestCustomer(s.T(), s.db, "Buyer", "", "u1")
	earlier := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	later := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	s.expectOrders(
		doc("o1", map[string]interface{}{"userId": "u1", "createdAt": later}),
		doc("o2", map[string]interface{}{"userId": "u1", "createdAt": earlier}),
	)

	summary, err := s.service.SyncOrders(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, summary.Updated)
	s.Equal(2, summary.Scanned)

	updated, err := s.customers.GetByID(customer.ID)
	s.Require().NoError(err)
	s.Require().NotNil(updated.LastOrderAt)
	s.True(later.Equal(*updated.LastOrderAt))

	tasks := s.followUps(customer.ID.String())
	s.Require().Len(tasks, 1)
	s.Equal(models.FollowUpTitle, tasks[0].Title)
	s.Equal(models.TaskStatusOpen, tasks[0].Status)
	s.True(time.Date(2024, 9, 15, 10, 30, 0, 0, time.UTC).Equal(tasks[0].DueAt))
}

func (s *SyncServiceTestSuite) TestSyncOrders_RerunReplacesFollowUp() {
	customer := database.CreateTestCustomer(s.T(), s.db, "Buyer", "", "u1")
	orders := []firebase.Document{
		doc("o1", map[string]interface{}{"uid": "u1", "createdAt": "2024-05-01T00:00:00Z"}),
	}
	s.expectOrders(orders...)
	s.expectOrders(orders...)
	s.expectOrders(doc("o1", map[string]interface{}{"uid": "u1", "createdAt": "2024-08-31T00:00:00Z"}))

	for i := 0; i < 2; i++ {
		_, err := s.service.SyncOrders(s.ctx)
		s.Require().NoError(err)
		s.Len(s.followUps(customer.ID.String()), 1)
	}

	_, err := s.service.SyncOrders(s.ctx)
	s.Require().NoError(err)

	tasks := s.followUps(customer.ID.String())
	s.Require().Len(tasks, 1)
	s.True(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC).Equal(tasks[0].DueAt), tasks[0].DueAt.String())
}

func (s *SyncServiceTestSuite) TestSyncOrders_KeepsManualTasks() {
	customer := database.CreateTestCustomer(s.T(), s.db, "Buyer", "", "u1")
	manual := &models.Task{CustomerID: customer.ID, Title: "Send samples", DueAt: time.Now(), Kind: "call"}
	s.Require().NoError(s.tasks.Create(manual))

	s.expectOrders(doc("o1", map[string]interface{}{"uid": "u1", "createdAt": time.Now()}))

	_, err := s.service.SyncOrders(s.ctx)
	s.Require().NoError(err)

	_, err = s.tasks.GetByID(manual.ID)
	s.NoError(err)
}

func (s *SyncServiceTestSuite) TestSyncOrders_TieKeepsFirstSeen() {
	database.CreateTestCustomer(s.T(), s.db, "Buyer", "", "u1")
	when := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	s.expectOrders(
		doc("first", map[string]interface{}{"uid": "u1", "createdAt": when}),
		doc("second", map[string]interface{}{"uid": "u1", "createdAt": when.UnixMilli()}),
	)

	summary, err := s.service.SyncOrders(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, summary.Updated)
}

func (s *SyncServiceTestSuite) TestSyncOrders_SkipsUnknownOwnersAndIgnoresIncompleteDocs() {
	s.expectOrders(
		doc("o1", map[string]interface{}{"uid": "ghost", "createdAt": time.Now()}),
		doc("o2", map[string]interface{}{"createdAt": time.Now()}),
		doc("o3", map[string]interface{}{"uid": "u1"}),
	)

	summary, err := s.service.SyncOrders(s.ctx)
	s.Require().NoError(err)

	s.Equal(3, summary.Scanned)
	s.Equal(0, summary.Updated)
	s.Equal(1, summary.Skipped)
	s.Equal(2, summary.Ignored)
	s.Equal(0, summary.Failed)
}

// Staff

func (s *SyncServiceTestSuite) TestSyncStaffClaims() {
	s.remote.EXPECT().FetchAll(gomock.Any(), "staff").Return([]firebase.Document{
		doc("admin-1", map[string]interface{}{"active": true, "role": "admin"}),
		doc("clerk-1", map[string]interface{}{"status": "active"}),
		doc("gone-1", map[string]interface{}{"active": false}),
	}, nil)

	s.claims.EXPECT().SetCustomUserClaims(gomock.Any(), "admin-1", map[string]interface{}{"employee": true, "admin": true}).Return(nil)
	s.claims.EXPECT().SetCustomUserClaims(gomock.Any(), "clerk-1", map[string]interface{}{"employee": true, "admin": false}).Return(nil)
	s.claims.EXPECT().SetCustomUserClaims(gomock.Any(), "gone-1", map[string]interface{}{"employee": false, "admin": false}).Return(errors.New("user not found"))

	summary, err := s.service.SyncStaffClaims(s.ctx)
	s.Require().NoError(err)

	s.Equal(3, summary.Scanned)
	s.Equal(2, summary.Updated)
	s.Equal(1, summary.Failed)
	s.Equal("user not found", summary.Failures["gone-1"])
}

func (s *SyncServiceTestSuite) TestSyncStaffClaims_RequiresClaimsWriter() {
	s.service.claims = nil

	_, err := s.service.SyncStaffClaims(s.ctx)
	s.ErrorIs(err, ErrRemoteNotConfigured)
}

func (s *SyncServiceTestSuite) TestStatus() {
	st := s.service.Status(s.ctx)
	s.True(st.Configured)
	s.Equal("closed", st.CircuitState)
}

// failingCustomerRepo fails Create and Update for customers with a given name.
type failingCustomerRepo struct {
	repositories.CustomerRepositoryInterface
	failName string
}

func (r failingCustomerRepo) Create(c *models.Customer) error {
	if c.Name == r.failName {
		return errors.New("write failed")
	}
	return r.CustomerRepositoryInterface.Create(c)
}

func (r failingCustomerRepo) Update(c *models.Customer) error {
	if c.Name == r.failName {
		return errors.New("write failed")
	}
	return r.CustomerRepositoryInterface.Update(c)
}

func TestCustomerIndex_ReplaceDropsStaleEmail(t *testing.T) {
	idx := newCustomerIndex([]models.Customer{{Name: "Moved", Email: "old@example.com"}})

	target, _ := idx.match(RemoteCustomer{Email: "old@example.com"})
	require.NotNil(t, target)

	next := *target
	next.Email = "new@example.com"
	idx.replace(target, &next)

	stale, _ := idx.match(RemoteCustomer{Email: "old@example.com"})
	assert.Nil(t, stale)

	moved, matchedBy := idx.match(RemoteCustomer{Email: "NEW@example.com"})
	assert.Same(t, target, moved)
	assert.Equal(t, "email", matchedBy)
}
