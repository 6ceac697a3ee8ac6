package handlers

import (
	stderrors "errors"
	"mime/multipart"
	"net/http"

	"crm-service/internal/dto"
	"crm-service/internal/errors"
	"crm-service/internal/services"

	"github.com/labstack/echo/v4"
)

// multipart fields accepted for image files, in lookup order
var photoFormFields = []string{"files", "photos", "file"}

// PhotoHandler handles customer photo uploads and listing
type PhotoHandler struct {
	photoService services.PhotoServiceInterface
}

func NewPhotoHandler(photoService services.PhotoServiceInterface) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// ListPhotos returns the customer's photos in display order
// @Summary List customer photos
// @Tags Photos
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Success 200 {array} dto.PhotoResponse
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{id}/photos [get]
func (h *PhotoHandler) ListPhotos(c echo.Context) error {
	customerID, ok, err := parseUUIDParam(c, "id", errors.CustomerInvalidID)
	if !ok {
		return err
	}

	photos, err := h.photoService.ListPhotos(customerID)
	if err != nil {
		return sendPhotoError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPhotoResponses(photos))
}

// UploadPhotos stores multipart image files and appends them to the
// customer's photo list
// @Summary Upload customer photos
// @Tags Photos
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Param files formData file true "Image files (jpeg, png, webp, gif)"
// @Success 201 {object} dto.UploadPhotosResponse
// @Failure 400 {object} errors.ErrorResponse "PHOTO_005 - No files were uploaded"
// @Failure 413 {object} errors.ErrorResponse "PHOTO_004 - Image too large"
// @Failure 415 {object} errors.ErrorResponse "PHOTO_003 - Unsupported image type"
// @Failure 503 {object} errors.ErrorResponse "PHOTO_006 - Storage unavailable"
// @Router /customers/{id}/photos [post]
func (h *PhotoHandler) UploadPhotos(c echo.Context) error {
	customerID, ok, err := parseUUIDParam(c, "id", errors.CustomerInvalidID)
	if !ok {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return SendError(c, errors.PhotoNoFiles, errors.WithDetails("Expected a multipart/form-data body"))
	}

	var headers []*multipart.FileHeader
	for _, field := range photoFormFields {
		headers = append(headers, form.File[field]...)
	}

	uploads := make([]dto.PhotoUpload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeUploads(uploads)
			return SendSystemError(c, err)
		}
		uploads = append(uploads, dto.PhotoUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Size:        fh.Size,
			Body:        f,
		})
	}
	defer closeUploads(uploads)

	photos, err := h.photoService.UploadPhotos(c.Request().Context(), customerID, uploads)
	if err != nil {
		return sendPhotoError(c, err)
	}

	urls := make([]string, 0, len(photos))
	for _, p := range photos {
		urls = append(urls, p.URL)
	}
	return c.JSON(http.StatusCreated, dto.UploadPhotosResponse{URLs: urls})
}

// DeletePhoto removes one photo from the customer
// @Summary Delete customer photo
// @Tags Photos
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Param photoId path string true "Photo ID (UUID)"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} errors.ErrorResponse "PHOTO_001 - Photo not found"
// @Router /customers/{id}/photos/{photoId} [delete]
func (h *PhotoHandler) DeletePhoto(c echo.Context) error {
	customerID, ok, err := parseUUIDParam(c, "id", errors.CustomerInvalidID)
	if !ok {
		return err
	}
	photoID, ok, err := parseUUIDParam(c, "photoId", errors.PhotoInvalidID)
	if !ok {
		return err
	}

	if err := h.photoService.DeletePhoto(c.Request().Context(), customerID, photoID); err != nil {
		return sendPhotoError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{OK: true})
}

func closeUploads(uploads []dto.PhotoUpload) {
	for _, u := range uploads {
		if f, ok := u.Body.(multipart.File); ok {
			_ = f.Close()
		}
	}
}

func sendPhotoError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrCustomerNotFound):
		return SendError(c, errors.CustomerNotFound)
	case stderrors.Is(err, services.ErrPhotoNotFound):
		return SendError(c, errors.PhotoNotFound)
	case stderrors.Is(err, services.ErrNoPhotos):
		return SendError(c, errors.PhotoNoFiles)
	case stderrors.Is(err, services.ErrUnsupportedPhotoType):
		return SendError(c, errors.PhotoUnsupportedType, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrPhotoTooLarge):
		return SendError(c, errors.PhotoTooLarge, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrStorageUnavailable):
		return SendError(c, errors.PhotoStorageUnavailable)
	}
	return SendSystemError(c, err)
}
