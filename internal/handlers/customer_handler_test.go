package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"crm-service/internal/dto"
	"crm-service/internal/models"
	"crm-service/internal/repositories"
	"crm-service/internal/services"
	"crm-service/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// CustomerHandlerTestSuite is the test suite for CustomerHandler and PhotoHandler
type CustomerHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	e                *echo.Echo
	mockCustomers    *service_mocks.MockCustomerServiceInterface
	mockPhotos       *service_mocks.MockPhotoServiceInterface
	customerHandler  *CustomerHandler
	photoHandler     *PhotoHandler
	testCustomerID   uuid.UUID
	testCustomerTime time.Time
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.mockCustomers = service_mocks.NewMockCustomerServiceInterface(s.ctrl)
	s.mockPhotos = service_mocks.NewMockPhotoServiceInterface(s.ctrl)
	s.customerHandler = NewCustomerHandler(s.mockCustomers)
	s.photoHandler = NewPhotoHandler(s.mockPhotos)
	s.testCustomerID = uuid.New()
	s.testCustomerTime = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) newContext(method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-test")
	return c, rec
}

func (s *CustomerHandlerTestSuite) testCustomer() *models.Customer {
	return &models.Customer{
		ID:        s.testCustomerID,
		Name:      "Acme Bakery",
		Email:     "owner@acme.test",
		City:      "Haifa",
		Tag:       models.TagVIP,
		CreatedAt: s.testCustomerTime,
		UpdatedAt: s.testCustomerTime,
		Photos: []models.CustomerPhoto{
			{URL: "https://img/2.png", Position: 1},
			{URL: "https://img/1.png", Position: 0},
		},
	}
}

func decodeError(s *suite.Suite, rec *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *CustomerHandlerTestSuite) TestListCustomers_AppliesFiltersAndDefaults() {
	c, rec := s.newContext(http.MethodGet, "/api/customers?q=+acme+&city=Haifa&tag=vip", nil)

	s.mockCustomers.EXPECT().
		ListCustomers(repositories.CustomerFilter{Query: "acme", City: "Haifa", Tag: "vip", Limit: 50}).
		Return([]models.Customer{*s.testCustomer()}, int64(1), nil)

	s.Require().NoError(s.customerHandler.ListCustomers(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListCustomersResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(1), resp.Total)
	s.Equal(50, resp.Limit)
	s.Require().Len(resp.Customers, 1)
	s.Equal([]string{"https://img/1.png", "https://img/2.png"}, resp.Customers[0].OrderImageURLs)
	s.Equal(s.testCustomerTime.UnixMilli(), resp.Customers[0].CreatedAt)
}

func (s *CustomerHandlerTestSuite) TestListCustomers_InvalidTag() {
	c, rec := s.newContext(http.MethodGet, "/api/customers?tag=gold", nil)

	s.Require().NoError(s.customerHandler.ListCustomers(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	resp := decodeError(&s.Suite, rec)
	s.Equal("VALIDATION_001", resp.Error.Code)
	s.Contains(resp.Error.Details[0], "tag")
	s.Equal("trace-test", resp.Error.TraceID)
}

func (s *CustomerHandlerTestSuite) TestCreateCustomer_Success() {
	body := `{"name":"Acme Bakery","email":"owner@acme.test","orderImageUrls":["https://img/1.png"]}`
	c, rec := s.newContext(http.MethodPost, "/api/customers", strings.NewReader(body))

	s.mockCustomers.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req *dto.CreateCustomerRequest) (*models.Customer, error) {
			s.Equal("Acme Bakery", req.Name)
			s.Equal([]string{"https://img/1.png"}, req.OrderImageURLs)
			return s.testCustomer(), nil
		})

	s.Require().NoError(s.customerHandler.CreateCustomer(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.CustomerResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(s.testCustomerID.String(), resp.ID)
}

func (s *CustomerHandlerTestSuite) TestCreateCustomer_Validation() {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.test"}`},
		{"bad email", `{"name":"A","email":"not-an-email"}`},
		{"malformed json", `{"name":`},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, rec := s.newContext(http.MethodPost, "/api/customers", strings.NewReader(tt.body))
			s.Require().NoError(s.customerHandler.CreateCustomer(c))
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}

func (s *CustomerHandlerTestSuite) TestCreateCustomer_Conflict() {
	c, rec := s.newContext(http.MethodPost, "/api/customers", strings.NewReader(`{"name":"A","firebaseUid":"uid-1"}`))
	s.mockCustomers.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(nil, services.ErrCustomerAlreadyExists)

	s.Require().NoError(s.customerHandler.CreateCustomer(c))

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("CUSTOMER_002", decodeError(&s.Suite, rec).Error.Code)
}

func (s *CustomerHandlerTestSuite) TestCreateCustomer_InvalidLastOrderAt() {
	c, rec := s.newContext(http.MethodPost, "/api/customers", strings.NewReader(`{"name":"A","lastOrderAt":"soon"}`))
	s.mockCustomers.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: %q", services.ErrInvalidTimestamp, "soon"))

	s.Require().NoError(s.customerHandler.CreateCustomer(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_006", decodeError(&s.Suite, rec).Error.Code)
}

func (s *CustomerHandlerTestSuite) TestGetCustomer() {
	c, rec := s.newContext(http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(s.testCustomerID.String())
	s.mockCustomers.EXPECT().GetCustomer(s.testCustomerID).Return(s.testCustomer(), nil)

	s.Require().NoError(s.customerHandler.GetCustomer(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_Errors() {
	c, rec := s.newContext(http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	s.Require().NoError(s.customerHandler.GetCustomer(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("CUSTOMER_003", decodeError(&s.Suite, rec).Error.Code)

	c, rec = s.newContext(http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(s.testCustomerID.String())
	s.mockCustomers.EXPECT().GetCustomer(s.testCustomerID).Return(nil, services.ErrCustomerNotFound)
	s.Require().NoError(s.customerHandler.GetCustomer(c))
	s.Equal(http.StatusNotFound, rec.Code)

	c, rec = s.newContext(http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(s.testCustomerID.String())
	s.mockCustomers.EXPECT().GetCustomer(s.testCustomerID).Return(nil, errors.New("connection refused"))
	s.Require().NoError(s.customerHandler.GetCustomer(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "connection refused")
}

func (s *CustomerHandlerTestSuite) TestUpdateCustomer_PassesPresentFieldsOnly() {
	c, rec := s.newContext(http.MethodPut, "/", strings.NewReader(`{"city":"Tel Aviv","orderImageUrls":[]}`))
	c.SetParamNames("id")
	c.SetParamValues(s.testCustomerID.String())

	s.mockCustomers.EXPECT().UpdateCustomer(gomock.Any(), s.testCustomerID, gomock.Any()).DoAndReturn(
		func(_ interface{}, _ uuid.UUID, req *dto.UpdateCustomerRequest) (*models.Customer, error) {
			s.Nil(req.Name)
			s.Require().NotNil(req.City)
			s.Equal("Tel Aviv", *req.City)
			s.Require().NotNil(req.OrderImageURLs)
			s.Empty(*req.OrderImageURLs)
			return s.testCustomer(), nil
		})

	s.Require().NoError(s.customerHandler.UpdateCustomer(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *CustomerHandlerTestSuite) TestDeleteCustomer() {
	c, rec := s.newContext(http.MethodDelete, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(s.testCustomerID.String())
	s.mockCustomers.EXPECT().DeleteCustomer(gomock.Any(), s.testCustomerID).Return(nil)

	s.Require().NoError(s.customerHandler.DeleteCustomer(c))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"ok":true}`, rec.Body.String())
}

func (s *CustomerHandlerTestSuite) TestListCities() {
	c, rec := s.newContext(http.MethodGet, "/api/customers/cities", nil)
	s.mockCustomers.EXPECT().ListCities(gomock.Any()).Return([]string{"Eilat", "Haifa"}, nil)

	s.Require().NoError(s.customerHandler.ListCities(c))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"cities":["Eilat","Haifa"]}`, rec.Body.String())
}

func (s *CustomerHandlerTestSuite) multipartRequest(files map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, contentType := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename=%q`, name))
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		s.Require().NoError(err)
		_, err = part.Write([]byte("image-bytes"))
		s.Require().NoError(err)
	}
	s.Require().NoError(w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(s.testCustomerID.String())
	return c, rec
}

func (s *CustomerHandlerTestSuite) TestUploadPhotos() {
	c, rec := s.multipartRequest(map[string]string{"a.png": "image/png"})

	s.mockPhotos.EXPECT().UploadPhotos(gomock.Any(), s.testCustomerID, gomock.Any()).DoAndReturn(
		func(_ interface{}, _ uuid.UUID, uploads []dto.PhotoUpload) ([]models.CustomerPhoto, error) {
			s.Require().Len(uploads, 1)
			s.Equal("a.png", uploads[0].Filename)
			s.Equal("image/png", uploads[0].ContentType)
			s.Equal(int64(len("image-bytes")), uploads[0].Size)
			return []models.CustomerPhoto{{URL: "/uploads/customers/x.png"}}, nil
		})

	s.Require().NoError(s.photoHandler.UploadPhotos(c))

	s.Equal(http.StatusCreated, rec.Code)
	s.JSONEq(`{"urls":["/uploads/customers/x.png"]}`, rec.Body.String())
}

func (s *CustomerHandlerTestSuite) TestUploadPhotos_ServiceErrors() {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{services.ErrNoPhotos, http.StatusBadRequest, "PHOTO_005"},
		{services.ErrUnsupportedPhotoType, http.StatusUnsupportedMediaType, "PHOTO_003"},
		{services.ErrPhotoTooLarge, http.StatusRequestEntityTooLarge, "PHOTO_004"},
		{services.ErrStorageUnavailable, http.StatusServiceUnavailable, "PHOTO_006"},
		{services.ErrCustomerNotFound, http.StatusNotFound, "CUSTOMER_001"},
	}

	for _, tt := range tests {
		s.Run(tt.code, func() {
			c, rec := s.multipartRequest(map[string]string{"a.gif": "image/gif"})
			s.mockPhotos.EXPECT().UploadPhotos(gomock.Any(), s.testCustomerID, gomock.Any()).Return(nil, tt.err)

			s.Require().NoError(s.photoHandler.UploadPhotos(c))

			s.Equal(tt.status, rec.Code)
			s.Equal(tt.code, decodeError(&s.Suite, rec).Error.Code)
		})
	}
}

func (s *CustomerHandlerTestSuite) TestUploadPhotos_NotMultipart() {
	c, rec := s.newContext(http.MethodPost, "/", strings.NewReader(`{}`))
	c.SetParamNames("id")
	c.SetParamValues(s.testCustomerID.String())

	s.Require().NoError(s.photoHandler.UploadPhotos(c))

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *CustomerHandlerTestSuite) TestListAndDeletePhotos() {
	photoID := uuid.New()

	c, rec := s.newContext(http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(s.testCustomerID.String())
	s.mockPhotos.EXPECT().ListPhotos(s.testCustomerID).Return([]models.CustomerPhoto{
		{ID: photoID, URL: "https://img/b.png", Position: 1},
		{ID: uuid.New(), URL: "https://img/a.png", Position: 0},
	}, nil)
	s.Require().NoError(s.photoHandler.ListPhotos(c))
	s.Equal(http.StatusOK, rec.Code)

	var photos []dto.PhotoResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &photos))
	s.Require().Len(photos, 2)
	s.Equal("https://img/a.png", photos[0].URL)

	c, rec = s.newContext(http.MethodDelete, "/", nil)
	c.SetParamNames("id", "photoId")
	c.SetParamValues(s.testCustomerID.String(), photoID.String())
	s.mockPhotos.EXPECT().DeletePhoto(gomock.Any(), s.testCustomerID, photoID).Return(services.ErrPhotoNotFound)
	s.Require().NoError(s.photoHandler.DeletePhoto(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("PHOTO_001", decodeError(&s.Suite, rec).Error.Code)
}
