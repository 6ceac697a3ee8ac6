package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crm-service/internal/dto"
	"crm-service/internal/models"
	"crm-service/internal/repositories"
	"crm-service/internal/storage"

	"github.com/google/uuid"
)

type photoService struct {
	customers repositories.CustomerRepositoryInterface
	objects   ObjectStore
	maxBytes  int64
	logger    CustomerLoggerInterface
	metrics   MetricsRecorderInterface
}

// NewPhotoService creates a photo service. A nil store disables uploads but
// still allows listing and deleting linked photos.
func NewPhotoService(
	customers repositories.CustomerRepositoryInterface,
	objects ObjectStore,
	maxBytes int64,
	logger CustomerLoggerInterface,
	metrics MetricsRecorderInterface,
) PhotoServiceInterface {
	return &photoService{
		customers: customers,
		objects:   objects,
		maxBytes:  maxBytes,
		logger:    logger,
		metrics:   metrics,
	}
}

// UploadPhotos stores every file and appends them to the customer's photo
// list. Either all files are attached or none are.
func (s *photoService) UploadPhotos(ctx context.Context, customerID uuid.UUID, uploads []dto.PhotoUpload) ([]models.CustomerPhoto, error) {
	if s.objects == nil {
		return nil, ErrStorageUnavailable
	}
	if len(uploads) == 0 {
		return nil, ErrNoPhotos
	}

	for _, u := range uploads {
		if !storage.IsAllowedContentType(contentTypeOf(u.ContentType)) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedPhotoType, u.ContentType)
		}
		if s.maxBytes > 0 && u.Size > s.maxBytes {
			return nil, fmt.Errorf("%w: %s", ErrPhotoTooLarge, u.Filename)
		}
	}

	if _, err := s.customers.GetByID(customerID); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	photos := make([]models.CustomerPhoto, 0, len(uploads))
	for _, u := range uploads {
		contentType := contentTypeOf(u.ContentType)
		name := storage.NewObjectName(customerID, contentType)

		url, err := s.objects.Put(ctx, name, contentType, u.Body)
		if err != nil {
			s.cleanup(ctx, photos)
			return nil, fmt.Errorf("failed to store photo %s: %w", u.Filename, err)
		}
		photos = append(photos, models.CustomerPhoto{URL: url, ObjectName: name})
	}

	added, err := s.customers.AddPhotos(customerID, photos)
	if err != nil {
		s.cleanup(ctx, photos)
		return nil, fmt.Errorf("failed to attach photos: %w", err)
	}

	s.logger.LogPhotosUploaded(ctx, customerID, len(added))
	if s.metrics != nil {
		for range added {
			s.metrics.IncrementCounter(MetricPhotoUploaded, nil)
		}
	}

	return added, nil
}

func (s *photoService) ListPhotos(customerID uuid.UUID) ([]models.CustomerPhoto, error) {
	if _, err := s.customers.GetByID(customerID); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	photos, err := s.customers.ListPhotos(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}

// DeletePhoto unlinks one photo and removes its stored object when this
// service uploaded it.
func (s *photoService) DeletePhoto(ctx context.Context, customerID, photoID uuid.UUID) error {
	photo, err := s.customers.GetPhoto(customerID, photoID)
	if err != nil {
		if errors.Is(err, repositories.ErrPhotoNotFound) {
			return ErrPhotoNotFound
		}
		return fmt.Errorf("failed to get photo: %w", err)
	}

	if err := s.customers.DeletePhoto(customerID, photoID); err != nil {
		if errors.Is(err, repositories.ErrPhotoNotFound) {
			return ErrPhotoNotFound
		}
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	s.cleanup(ctx, []models.CustomerPhoto{*photo})
	s.logger.LogPhotoDeleted(ctx, customerID, photoID)
	if s.metrics != nil {
		s.metrics.IncrementCounter(MetricPhotoDeleted, nil)
	}
	return nil
}

func (s *photoService) cleanup(ctx context.Context, photos []models.CustomerPhoto) {
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

// contentTypeOf strips parameters such as "; charset=binary".
func contentTypeOf(header string) string {
	mediaType, _, _ := strings.Cut(header, ";")
	return strings.ToLower(strings.TrimSpace(mediaType))
}
