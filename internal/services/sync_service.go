package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-service/internal/cache"
	"crm-service/internal/dto"
	"crm-service/internal/firebase"
	"crm-service/internal/models"
	"crm-service/internal/repositories"

	"github.com/hashicorp/go-multierror"
)

const remoteServiceName = "firebase"

// SyncCollections names the remote collections read by the reconciler
type SyncCollections struct {
	Users  string
	Orders string
	Staff  string
}

// SyncService reconciles Firebase customers, orders and staff into the local
// store. Runs are synchronous and uncoordinated: two concurrent runs may both
// write the same customer, and the last write wins.
type SyncService struct {
	remote      RemoteSource
	claims      ClaimsWriter
	customers   repositories.CustomerRepositoryInterface
	tasks       repositories.TaskRepositoryInterface
	runs        repositories.SyncRunRepositoryInterface
	cache       cache.Cache
	breaker     CircuitBreakerInterface
	metrics     MetricsRecorderInterface
	logger      SyncLoggerInterface
	collections SyncCollections
	now         func() time.Time
}

type SyncServiceDeps struct {
	Remote      RemoteSource
	Claims      ClaimsWriter
	Customers   repositories.CustomerRepositoryInterface
	Tasks       repositories.TaskRepositoryInterface
	Runs        repositories.SyncRunRepositoryInterface
	Cache       cache.Cache
	Breaker     CircuitBreakerInterface
	Metrics     MetricsRecorderInterface
	Logger      SyncLoggerInterface
	Collections SyncCollections
}

func NewSyncService(deps SyncServiceDeps) SyncServiceInterface {
	return newSyncService(deps)
}

func newSyncService(deps SyncServiceDeps) *SyncService {
	if deps.Breaker == nil {
		deps.Breaker = NewCircuitBreaker(DefaultCircuitBreakerConfig())
	}
	if deps.Collections.Users == "" {
		deps.Collections.Users = "users_prod"
	}
	if deps.Collections.Orders == "" {
		deps.Collections.Orders = "orders_prod"
	}
	if deps.Collections.Staff == "" {
		deps.Collections.Staff = "staff"
	}

	return &SyncService{
		remote:      deps.Remote,
		claims:      deps.Claims,
		customers:   deps.Customers,
		tasks:       deps.Tasks,
		runs:        deps.Runs,
		cache:       deps.Cache,
		breaker:     deps.Breaker,
		metrics:     deps.Metrics,
		logger:      deps.Logger,
		collections: deps.Collections,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *SyncService) Status(ctx context.Context) dto.SyncStatusResponse {
	return dto.SyncStatusResponse{
		Configured:   s.configured(),
		CircuitState: s.breaker.GetState().String(),
	}
}

func (s *SyncService) configured() bool {
	return s.remote != nil && s.remote.Configured()
}

// SyncCustomers reconciles a full snapshot of the users collection. Each
// remote record is matched by external id, then by email against local
// records that are unlinked or linked to the same id. Matched records are
// overwritten with every remote value present; the rest are created.
func (s *SyncService) SyncCustomers(ctx context.Context) (*dto.CustomerSyncSummary, error) {
	run := s.startRun(ctx, models.SyncKindCustomers)

	docs, err := s.fetch(ctx, s.collections.Users)
	if err != nil {
		return nil, s.failRun(ctx, run, err)
	}

	local, err := s.customers.ListAll()
	if err != nil {
		return nil, s.failRun(ctx, run, fmt.Errorf("failed to load local customers: %w", err))
	}
	idx := newCustomerIndex(local)
	s.recordGauge(MetricCustomersTracked, float64(len(local)), nil)

	summary := &dto.CustomerSyncSummary{Total: len(docs)}
	failures := newFailureSet()

	for _, doc := range docs {
		rc := NormalizeRemoteCustomer(doc)

		target, matchedBy := idx.match(rc)
		if target != nil {
			next := *target
			if changed := rc.ApplyTo(&next); len(changed) > 0 {
				if err := s.customers.Update(&next); err != nil {
					s.recordFailure(ctx, run, failures, doc.ID, err)
					continue
				}
				idx.replace(target, &next)
			}
			s.logger.LogCustomerMatched(ctx, next.ID, next.ExternalID, next.Email, matchedBy)
			summary.Updated++
			s.countRecord(run.Kind, "updated")
			s.incrementCounter(MetricCustomerUpdated, map[string]string{"source": "sync"})
			continue
		}

		customer := rc.NewCustomer()
		if err := s.customers.Create(customer); err != nil {
			s.recordFailure(ctx, run, failures, doc.ID, err)
			continue
		}
		idx.add(customer)
		summary.Created++
		s.countRecord(run.Kind, "created")
		s.incrementCounter(MetricCustomerCreated, map[string]string{"source": "sync"})
	}

	summary.Failed = failures.len()
	summary.Failures = failures.reasons()

	if summary.Created+summary.Updated > 0 {
		s.invalidate(ctx, cache.KeyCustomerCities)
	}

	run.Created = summary.Created
	run.Updated = summary.Updated
	run.Failed = summary.Failed
	run.Total = summary.Total
	s.completeRun(ctx, run, failures)

	return summary, nil
}

// SyncOrders derives lastOrderAt and the follow-up task for every customer
// that owns at least one remote order. Of several orders sharing the latest
// timestamp, the first one in snapshot order wins.
func (s *SyncService) SyncOrders(ctx context.Context) (*dto.OrderSyncSummary, error) {
	run := s.startRun(ctx, models.SyncKindOrders)

	docs, err := s.fetch(ctx, s.collections.Orders)
	if err != nil {
		return nil, s.failRun(ctx, run, err)
	}

	summary := &dto.OrderSyncSummary{Scanned: len(docs)}
	failures := newFailureSet()

	latest := make(map[string]time.Time)
	var owners []string
	for _, doc := range docs {
		order, ok := NormalizeRemoteOrder(doc)
		if !ok {
			summary.Ignored++
			s.countRecord(run.Kind, "ignored")
			continue
		}

		prev, seen := latest[order.OwnerID]
		if !seen {
			owners = append(owners, order.OwnerID)
			latest[order.OwnerID] = order.PlacedAt
		} else if order.PlacedAt.After(prev) {
			latest[order.OwnerID] = order.PlacedAt
		}
	}

	for _, owner := range owners {
		lastOrderAt := latest[owner]

		customer, err := s.customers.GetByExternalID(owner)
		if err != nil {
			if errors.Is(err, repositories.ErrCustomerNotFound) {
				summary.Skipped++
				s.countRecord(run.Kind, "skipped")
				continue
			}
			s.recordFailure(ctx, run, failures, owner, err)
			continue
		}

		if err := s.customers.UpdateLastOrderAt(customer.ID, lastOrderAt); err != nil {
			s.recordFailure(ctx, run, failures, owner, err)
			continue
		}
		if err := s.tasks.ReplaceByKind(models.NewFollowUpTask(customer.ID, lastOrderAt)); err != nil {
			s.recordFailure(ctx, run, failures, owner, err)
			continue
		}

		summary.Updated++
		s.countRecord(run.Kind, "updated")
	}

	summary.Failed = failures.len()
	summary.Failures = failures.reasons()

	run.Updated = summary.Updated
	run.Skipped = summary.Skipped + summary.Ignored
	run.Failed = summary.Failed
	run.Total = summary.Scanned
	s.completeRun(ctx, run, failures)

	return summary, nil
}

// SyncStaffClaims grants employee and admin auth claims from the staff
// collection. A staff member is active when active==true or status=="active".
func (s *SyncService) SyncStaffClaims(ctx context.Context) (*dto.StaffSyncSummary, error) {
	run := s.startRun(ctx, models.SyncKindStaff)

	if s.claims == nil {
		return nil, s.failRun(ctx, run, ErrRemoteNotConfigured)
	}

	docs, err := s.fetch(ctx, s.collections.Staff)
	if err != nil {
		return nil, s.failRun(ctx, run, err)
	}

	summary := &dto.StaffSyncSummary{Scanned: len(docs)}
	failures := newFailureSet()

	for _, doc := range docs {
		staff := NormalizeRemoteStaff(doc)
		if staff.UID == "" {
			s.recordFailure(ctx, run, failures, doc.ID, errors.New("missing uid"))
			continue
		}
		if err := s.claims.SetCustomUserClaims(ctx, staff.UID, staff.Claims()); err != nil {
			s.recordFailure(ctx, run, failures, staff.UID, err)
			continue
		}
		summary.Updated++
		s.countRecord(run.Kind, "updated")
	}

	summary.Failed = failures.len()
	summary.Failures = failures.reasons()

	run.Updated = summary.Updated
	run.Failed = summary.Failed
	run.Total = summary.Scanned
	s.completeRun(ctx, run, failures)

	return summary, nil
}

func (s *SyncService) ListRuns(kind string, limit int) ([]models.SyncRun, error) {
	runs, err := s.runs.List(kind, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}
	return runs, nil
}

// fetch checks the preconditions and reads one whole collection. Nothing is
// written when it fails.
func (s *SyncService) fetch(ctx context.Context, collection string) ([]firebase.Document, error) {
	if !s.configured() {
		return nil, ErrRemoteNotConfigured
	}
	if s.breaker.IsOpen() {
		return nil, ErrRemoteCircuitOpen
	}

	docs, err := s.remote.FetchAll(ctx, collection)
	if err != nil {
		if errors.Is(err, firebase.ErrNotConfigured) {
			return nil, ErrRemoteNotConfigured
		}
		if firebase.IsTransient(err) {
			s.breaker.RecordFailure()
			s.recordBreakerState()
		}
		return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	s.breaker.RecordSuccess()
	s.recordBreakerState()
	return docs, nil
}

func (s *SyncService) startRun(ctx context.Context, kind string) *models.SyncRun {
	s.logger.LogSyncStarted(ctx, kind)
	return &models.SyncRun{Kind: kind, StartedAt: s.now()}
}

// failRun finishes a run that stopped before processing records. Runs refused
// for missing configuration are not persisted.
func (s *SyncService) failRun(ctx context.Context, run *models.SyncRun, err error) error {
	run.FinishedAt = s.now()
	run.Status = models.SyncStatusFailed
	run.Error = err.Error()

	s.logger.LogSyncFailed(ctx, run.Kind, err, run.Duration().Milliseconds())
	s.incrementCounter(MetricSyncRun, map[string]string{"kind": run.Kind, "status": run.Status})

	if !errors.Is(err, ErrRemoteNotConfigured) {
		s.saveRun(ctx, run)
	}
	return err
}

func (s *SyncService) completeRun(ctx context.Context, run *models.SyncRun, failures *failureSet) {
	run.FinishedAt = s.now()
	run.Status = models.SyncStatusCompleted
	run.Failures = failures.jsonMap()
	if err := failures.err(); err != nil {
		run.Error = err.Error()
	}

	s.logger.LogSyncCompleted(ctx, run)
	s.incrementCounter(MetricSyncRun, map[string]string{"kind": run.Kind, "status": run.Status})
	s.recordDuration(MetricSyncDuration, run.Duration(), map[string]string{"kind": run.Kind})
	s.saveRun(ctx, run)
}

func (s *SyncService) saveRun(ctx context.Context, run *models.SyncRun) {
	if s.runs == nil {
		return
	}
	if err := s.runs.Create(run); err != nil {
		s.logger.LogRecordFailed(ctx, run.Kind, "sync_run", err.Error())
	}
}

func (s *SyncService) recordFailure(ctx context.Context, run *models.SyncRun, failures *failureSet, key string, err error) {
	failures.add(key, err)
	s.logger.LogRecordFailed(ctx, run.Kind, key, err.Error())
	s.countRecord(run.Kind, "failed")
}

func (s *SyncService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.LogRecordFailed(ctx, "cache", keys[0], err.Error())
	}
}

func (s *SyncService) recordBreakerState() {
	s.recordGauge(MetricCircuitState, float64(s.breaker.GetState()), map[string]string{"service": remoteServiceName})
}

func (s *SyncService) countRecord(kind, outcome string) {
	s.incrementCounter(MetricSyncRecord, map[string]string{"kind": kind, "outcome": outcome})
}

func (s *SyncService) incrementCounter(name string, tags map[string]string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter(name, tags)
	}
}

func (s *SyncService) recordDuration(name string, d time.Duration, tags map[string]string) {
	if s.metrics != nil {
		s.metrics.RecordProcessingTime(name, d, tags)
	}
}

func (s *SyncService) recordGauge(name string, value float64, tags map[string]string) {
	if s.metrics != nil {
		s.metrics.RecordGauge(name, value, tags)
	}
}

// customerIndex holds the local lookup tables for one customer sync. Records
// created or relinked during the run are added so later duplicates in the
// same snapshot update instead of creating.
type customerIndex struct {
	byExternalID map[string]*models.Customer
	byEmail      map[string][]*models.Customer
}

func newCustomerIndex(local []models.Customer) *customerIndex {
	idx := &customerIndex{
		byExternalID: make(map[string]*models.Customer, len(local)),
		byEmail:      make(map[string][]*models.Customer, len(local)),
	}
	for i := range local {
		idx.add(&local[i])
	}
	return idx
}

func (idx *customerIndex) add(c *models.Customer) {
	if c.HasExternalID() {
		idx.byExternalID[c.ExternalID] = c
	}
	if email := c.NormalizedEmail(); email != "" {
		for _, existing := range idx.byEmail[email] {
			if existing == c {
				return
			}
		}
		idx.byEmail[email] = append(idx.byEmail[email], c)
	}
}

func (idx *customerIndex) remove(c *models.Customer) {
	if c.HasExternalID() && idx.byExternalID[c.ExternalID] == c {
		delete(idx.byExternalID, c.ExternalID)
	}
	email := c.NormalizedEmail()
	candidates := idx.byEmail[email]
	for i, existing := range candidates {
		if existing == c {
			candidates = append(candidates[:i:i], candidates[i+1:]...)
			break
		}
	}
	if len(candidates) == 0 {
		delete(idx.byEmail, email)
	} else {
		idx.byEmail[email] = candidates
	}
}

// replace swaps old for its updated version, dropping keys it no longer carries.
func (idx *customerIndex) replace(old, updated *models.Customer) {
	idx.remove(old)
	*old = *updated
	idx.add(old)
}

// match looks up by external id, then by email among records that are
// unlinked or linked to the same id, oldest first.
func (idx *customerIndex) match(rc RemoteCustomer) (*models.Customer, string) {
	if rc.ExternalID != "" {
		if c, ok := idx.byExternalID[rc.ExternalID]; ok {
			return c, "external_id"
		}
	}

	if email := models.NormalizeEmail(rc.Email); email != "" {
		for _, c := range idx.byEmail[email] {
			if !c.HasExternalID() || c.ExternalID == rc.ExternalID {
				return c, "email"
			}
		}
	}

	return nil, ""
}

// failureSet collects per-record failures of one run.
type failureSet struct {
	byKey  map[string]string
	merged *multierror.Error
}

func newFailureSet() *failureSet {
	return &failureSet{byKey: make(map[string]string)}
}

func (f *failureSet) add(key string, err error) {
	if _, dup := f.byKey[key]; dup {
		key = fmt.Sprintf("%s#%d", key, len(f.byKey))
	}
	f.byKey[key] = err.Error()
	f.merged = multierror.Append(f.merged, fmt.Errorf("%s: %w", key, err))
}

func (f *failureSet) len() int {
	return len(f.byKey)
}

func (f *failureSet) reasons() map[string]string {
	if len(f.byKey) == 0 {
		return nil
	}
	out := make(map[string]string, len(f.byKey))
	for k, v := range f.byKey {
		out[k] = v
	}
	return out
}

func (f *failureSet) jsonMap() models.JSONMap {
	if len(f.byKey) == 0 {
		return nil
	}
	out := make(models.JSONMap, len(f.byKey))
	for k, v := range f.byKey {
		out[k] = v
	}
	return out
}

func (f *failureSet) err() error {
	return f.merged.ErrorOrNil()
}
