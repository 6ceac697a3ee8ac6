package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"crm-service/internal/cache"
	"crm-service/internal/dto"
	"crm-service/internal/models"
	"crm-service/internal/repositories"

	"github.com/google/uuid"
)

// customerService handles customer CRUD and the cached city list
type customerService struct {
	customers repositories.CustomerRepositoryInterface
	objects   ObjectStore
	cache     cache.Cache
	cityTTL   time.Duration
	logger    CustomerLoggerInterface
	metrics   MetricsRecorderInterface
}

func NewCustomerService(
	customers repositories.CustomerRepositoryInterface,
	objects ObjectStore,
	c cache.Cache,
	cityTTL time.Duration,
	logger CustomerLoggerInterface,
	metrics MetricsRecorderInterface,
) CustomerServiceInterface {
	return &customerService{
		customers: customers,
		objects:   objects,
		cache:     c,
		cityTTL:   cityTTL,
		logger:    logger,
		metrics:   metrics,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*models.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrCustomerNameRequired
	}

	customer := &models.Customer{
		ExternalID: strings.TrimSpace(req.FirebaseUID),
		Name:       name,
		Email:      strings.TrimSpace(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		City:       strings.TrimSpace(req.City),
		Tag:        req.Tag,
		Notes:      req.Notes,
		LogoURL:    strings.TrimSpace(req.LogoURL),
	}

	if req.LastOrderAt != "" {
		t, err := ParseTimestamp(req.LastOrderAt)
		if err != nil {
			return nil, err
		}
		customer.LastOrderAt = &t
	}

	if err := s.checkUnique(customer); err != nil {
		return nil, err
	}

	if err := s.customers.Create(customer); err != nil {
		if errors.Is(err, repositories.ErrCustomerAlreadyExists) {
			return nil, ErrCustomerAlreadyExists
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	if urls := cleanURLs(req.OrderImageURLs); len(urls) > 0 {
		photos := make([]models.CustomerPhoto, 0, len(urls))
		for _, u := range urls {
			photos = append(photos, models.CustomerPhoto{URL: u})
		}
		if _, err := s.customers.AddPhotos(customer.ID, photos); err != nil {
			return nil, fmt.Errorf("failed to attach customer photos: %w", err)
		}
	}

	if customer.City != "" {
		s.invalidateCities(ctx)
	}
	s.logger.LogCustomerCreated(ctx, customer.ID, customer.Email)
	s.incrementCounter(MetricCustomerCreated, map[string]string{"source": "api"})

	return s.GetCustomer(customer.ID)
}

// checkUnique enforces one customer per external id, and one per email among
// customers without an external id.
func (s *customerService) checkUnique(customer *models.Customer) error {
	if customer.HasExternalID() {
		existing, err := s.customers.GetByExternalID(customer.ExternalID)
		if err != nil && !errors.Is(err, repositories.ErrCustomerNotFound) {
			return fmt.Errorf("failed to check external id: %w", err)
		}
		if existing != nil && existing.ID != customer.ID {
			return ErrCustomerAlreadyExists
		}
		return nil
	}

	if customer.NormalizedEmail() == "" {
		return nil
	}
	existing, err := s.customers.GetUnlinkedByEmail(customer.Email)
	if err != nil && !errors.Is(err, repositories.ErrCustomerNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil && existing.ID != customer.ID {
		return ErrCustomerAlreadyExists
	}
	return nil
}

func (s *customerService) GetCustomer(id uuid.UUID) (*models.Customer, error) {
	customer, err := s.customers.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

func (s *customerService) ListCustomers(filter repositories.CustomerFilter) ([]models.Customer, int64, error) {
	customers, total, err := s.customers.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, total, nil
}

// UpdateCustomer applies the fields present in req. A present orderImageUrls
// list replaces the photo set; uploaded objects dropped from it are deleted.
func (s *customerService) UpdateCustomer(ctx context.Context, id uuid.UUID, req *dto.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.GetCustomer(id)
	if err != nil {
		return nil, err
	}

	previousCity := customer.City
	var changed []string
	setString := func(field string, dst *string, value *string) {
		if value == nil {
			return
		}
		v := strings.TrimSpace(*value)
		if field == "notes" {
			v = *value
		}
		if *dst != v {
			*dst = v
			changed = append(changed, field)
		}
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, ErrCustomerNameRequired
	}
	setString("name", &customer.Name, req.Name)
	setString("email", &customer.Email, req.Email)
	setString("phone", &customer.Phone, req.Phone)
	setString("city", &customer.City, req.City)
	setString("tag", &customer.Tag, req.Tag)
	setString("notes", &customer.Notes, req.Notes)
	setString("logoUrl", &customer.LogoURL, req.LogoURL)

	if len(changed) > 0 {
		if err := s.checkUnique(customer); err != nil {
			return nil, err
		}
		customer.Photos = nil
		if err := s.customers.Update(customer); err != nil {
			if errors.Is(err, repositories.ErrCustomerAlreadyExists) {
				return nil, ErrCustomerAlreadyExists
			}
			return nil, fmt.Errorf("failed to update customer: %w", err)
		}
	}

	if req.OrderImageURLs != nil {
		removed, err := s.customers.ReplacePhotos(id, cleanURLs(*req.OrderImageURLs))
		if err != nil {
			return nil, fmt.Errorf("failed to replace customer photos: %w", err)
		}
		s.deleteObjects(ctx, removed)
		changed = append(changed, "orderImageUrls")
	}

	if previousCity != customer.City {
		s.invalidateCities(ctx)
	}
	if len(changed) > 0 {
		s.logger.LogCustomerUpdated(ctx, id, changed)
		s.incrementCounter(MetricCustomerUpdated, map[string]string{"source": "api"})
	}

	return s.GetCustomer(id)
}

// DeleteCustomer removes the customer with its photos and tasks.
func (s *customerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.GetCustomer(id)
	if err != nil {
		return err
	}

	if err := s.customers.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	s.deleteObjects(ctx, customer.Photos)
	if customer.City != "" {
		s.invalidateCities(ctx)
	}
	s.logger.LogCustomerDeleted(ctx, id, len(customer.Photos))
	s.incrementCounter(MetricCustomerDeleted, nil)

	return nil
}

// ListCities serves the distinct city list from cache, loading it from the
// store on a miss. Cache failures fall through to the store.
func (s *customerService) ListCities(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		var cities []string
		found, err := s.cache.Get(ctx, cache.KeyCustomerCities, &cities)
		if err != nil {
			s.logger.LogCacheFailure(ctx, cache.KeyCustomerCities, err)
		}
		if found {
			s.incrementCounter(MetricCacheLookup, map[string]string{"key": cache.KeyCustomerCities, "result": "hit"})
			return cities, nil
		}
		s.incrementCounter(MetricCacheLookup, map[string]string{"key": cache.KeyCustomerCities, "result": "miss"})
	}

	cities, err := s.customers.ListCities()
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	if cities == nil {
		cities = []string{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.KeyCustomerCities, cities, s.cityTTL); err != nil {
			s.logger.LogCacheFailure(ctx, cache.KeyCustomerCities, err)
		}
	}
	return cities, nil
}

func (s *customerService) invalidateCities(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.KeyCustomerCities); err != nil {
		s.logger.LogCacheFailure(ctx, cache.KeyCustomerCities, err)
	}
}

func (s *customerService) deleteObjects(ctx context.Context, photos []models.CustomerPhoto) {
	if s.objects == nil {
		return
	}
	for _, p := range photos {
		if !p.IsUploaded() {
			continue
		}
		if err := s.objects.Delete(ctx, p.ObjectName); err != nil {
			s.logger.LogObjectCleanupFailed(ctx, p.ObjectName, err)
		}
	}
}

func (s *customerService) incrementCounter(name string, tags map[string]string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter(name, tags)
	}
}

// ParseTimestamp parses an API timestamp: RFC 3339, a plain date, or epoch
// milliseconds.
func ParseTimestamp(value string) (time.Time, error) {
	t, ok := parseTimeString(value)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
	}
	return t.UTC(), nil
}

func cleanURLs(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}
