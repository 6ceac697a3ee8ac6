package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"crm-service/internal/cache"
	"crm-service/internal/dto"
	"crm-service/internal/models"
	"crm-service/internal/pricing"
	"crm-service/internal/repositories"

	"github.com/shopspring/decimal"
)

type pricingService struct {
	schedule   pricing.Schedule
	products   repositories.ProductRepositoryInterface
	cache      cache.Cache
	catalogTTL time.Duration
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
}

// NewPricingService creates the quote engine over the product catalog. Products
// may be nil, in which case quotes rely on explicit prices only.
func NewPricingService(
	schedule pricing.Schedule,
	products repositories.ProductRepositoryInterface,
	c cache.Cache,
	catalogTTL time.Duration,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) PricingServiceInterface {
	return &pricingService{
		schedule:   schedule,
		products:   products,
		cache:      c,
		catalogTTL: catalogTTL,
		metrics:    metrics,
		logger:     logger,
	}
}

func (s *pricingService) Schedule() pricing.Schedule {
	return s.schedule
}

// Quote prices every item independently and sums the line totals.
func (s *pricingService) Quote(ctx context.Context, items []pricing.ItemInput) (*pricing.PricedCart, error) {
	start := time.Now()

	catalog, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}

	cart := pricing.PriceCart(s.schedule, items, catalog)

	if s.metrics != nil {
		s.metrics.IncrementCounter(MetricQuoteComputed, nil)
		s.metrics.RecordProcessingTime(MetricQuoteDuration, time.Since(start), nil)
		s.metrics.RecordGauge(MetricQuoteTotal, cart.MerchandiseTotal.InexactFloat64(), nil)
	}
	return &cart, nil
}

func (s *pricingService) catalog(ctx context.Context) (pricing.MapCatalog, error) {
	if s.products == nil {
		return pricing.MapCatalog{}, nil
	}

	if s.cache != nil {
		var cached map[string]decimal.Decimal
		found, err := s.cache.Get(ctx, cache.KeyProductCatalog, &cached)
		if err != nil {
			s.logger.Warn("product catalog cache read failed", "error", err)
		}
		if found {
			s.recordLookup("hit")
			return pricing.MapCatalog(cached), nil
		}
		s.recordLookup("miss")
	}

	products, err := s.products.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load product catalog: %w", err)
	}

	catalog := make(pricing.MapCatalog, len(products))
	for _, p := range products {
		catalog[p.Slug] = p.Price
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.KeyProductCatalog, map[string]decimal.Decimal(catalog), s.catalogTTL); err != nil {
			s.logger.Warn("product catalog cache write failed", "error", err)
		}
	}
	return catalog, nil
}

func (s *pricingService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *pricingService) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Slug:  strings.TrimSpace(req.Slug),
		Name:  strings.TrimSpace(req.Name),
		Price: req.Price,
	}
	if product.Price.IsNegative() {
		return nil, ErrInvalidProductPrice
	}

	if err := s.products.Create(product); err != nil {
		return nil, mapProductError(err)
	}

	s.invalidateCatalog(ctx)
	s.logger.Info("product created", "slug", product.Slug, "price", product.Price.String())
	return product, nil
}

func (s *pricingService) UpdateProduct(ctx context.Context, slug string, req *dto.UpdateProductRequest) (*models.Product, error) {
	product, err := s.products.GetBySlug(slug)
	if err != nil {
		return nil, mapProductError(err)
	}

	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, ErrInvalidProductPrice
		}
		product.Price = *req.Price
	}

	if err := s.products.Update(product); err != nil {
		return nil, mapProductError(err)
	}

	s.invalidateCatalog(ctx)
	s.logger.Info("product updated", "slug", product.Slug, "price", product.Price.String())
	return product, nil
}

func (s *pricingService) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.KeyProductCatalog); err != nil {
		s.logger.Warn("product catalog cache invalidation failed", "error", err)
	}
}

func (s *pricingService) recordLookup(result string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter(MetricCacheLookup, map[string]string{"key": cache.KeyProductCatalog, "result": result})
	}
}

func mapProductError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrProductNotFound):
		return ErrProductNotFound
	case errors.Is(err, repositories.ErrProductAlreadyExists):
		return ErrProductAlreadyExists
	case errors.Is(err, models.ErrInvalidSlug):
		return ErrInvalidProductSlug
	case errors.Is(err, models.ErrInvalidPrice):
		return ErrInvalidProductPrice
	}
	return fmt.Errorf("product store: %w", err)
}
