package dto

import (
	"io"

	"crm-service/internal/models"
)

// ListCustomersRequest carries listing filters from the query string
type ListCustomersRequest struct {
	Query  string `query:"q" validate:"omitempty,max=100"`
	City   string `query:"city" validate:"omitempty,max=128"`
	Tag    string `query:"tag" validate:"omitempty,customer_tag"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
}

// CreateCustomerRequest represents the request to create a customer
type CreateCustomerRequest struct {
	Name           string   `json:"name" validate:"required,max=255"`
	Email          string   `json:"email" validate:"omitempty,email,max=255"`
	Phone          string   `json:"phone" validate:"omitempty,max=64"`
	City           string   `json:"city" validate:"omitempty,max=128"`
	Tag            string   `json:"tag" validate:"omitempty,customer_tag"`
	Notes          string   `json:"notes"`
	LogoURL        string   `json:"logoUrl"`
	OrderImageURLs []string `json:"orderImageUrls" validate:"omitempty,max=100,dive,required"`
	FirebaseUID    string   `json:"firebaseUid" validate:"omitempty,max=128"`
	LastOrderAt    string   `json:"lastOrderAt" validate:"omitempty"`
}

// UpdateCustomerRequest changes only the fields present. A present
// orderImageUrls replaces the whole photo list.
type UpdateCustomerRequest struct {
	Name           *string   `json:"name" validate:"omitempty,min=1,max=255"`
	Email          *string   `json:"email" validate:"omitempty,email,max=255"`
	Phone          *string   `json:"phone" validate:"omitempty,max=64"`
	City           *string   `json:"city" validate:"omitempty,max=128"`
	Tag            *string   `json:"tag" validate:"omitempty,customer_tag"`
	Notes          *string   `json:"notes"`
	LogoURL        *string   `json:"logoUrl"`
	OrderImageURLs *[]string `json:"orderImageUrls" validate:"omitempty,max=100"`
}

// CustomerResponse is the API shape of a customer. Timestamps are epoch milliseconds.
type CustomerResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	City           string   `json:"city,omitempty"`
	Tag            string   `json:"tag,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	LogoURL        string   `json:"logoUrl,omitempty"`
	OrderImageURLs []string `json:"orderImageUrls"`
	FirebaseUID    string   `json:"firebaseUid,omitempty"`
	LastOrderAt    *int64   `json:"lastOrderAt,omitempty"`
	CreatedAt      int64    `json:"createdAt"`
	UpdatedAt      int64    `json:"updatedAt"`
}

// ListCustomersResponse wraps a page of customers
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Total     int64              `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// PhotoResponse is one entry of a customer's photo list
type PhotoResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// PhotoUpload is one image file received by the upload endpoint
type PhotoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadPhotosResponse lists the public URLs of freshly stored images
type UploadPhotosResponse struct {
	URLs []string `json:"urls"`
}

// CitiesResponse lists the distinct customer cities
type CitiesResponse struct {
	Cities []string `json:"cities"`
}

func NewCustomerResponse(c *models.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:             c.ID.String(),
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		City:           c.City,
		Tag:            c.Tag,
		Notes:          c.Notes,
		LogoURL:        c.LogoURL,
		OrderImageURLs: c.OrderImageURLs(),
		FirebaseUID:    c.ExternalID,
		CreatedAt:      c.CreatedAt.UnixMilli(),
		UpdatedAt:      c.UpdatedAt.UnixMilli(),
	}
	if c.LastOrderAt != nil {
		ms := c.LastOrderAt.UnixMilli()
		resp.LastOrderAt = &ms
	}
	return resp
}

func NewCustomerResponses(customers []models.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, NewCustomerResponse(&customers[i]))
	}
	return out
}

func NewPhotoResponses(photos []models.CustomerPhoto) []PhotoResponse {
	out := make([]PhotoResponse, 0, len(photos))
	for _, p := range models.SortPhotos(photos) {
		out = append(out, PhotoResponse{ID: p.ID.String(), URL: p.URL, Position: p.Position})
	}
	return out
}
