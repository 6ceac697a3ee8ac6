package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"crm-service/internal/cache"
	"crm-service/internal/config"
	"crm-service/internal/database"
	"crm-service/internal/dto"
	"crm-service/internal/errors"
	"crm-service/internal/pricing"
	"crm-service/internal/storage"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite
	e *echo.Echo
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	db := database.SetupTestDB(s.T())
	s.Require().NoError(db.SeedProducts(database.DefaultProducts()))

	uploadsDir := s.T().TempDir()
	store, err := storage.NewLocalStore(uploadsDir, "/uploads")
	s.Require().NoError(err)

	cfg := &config.Config{
		Server:  config.ServerConfig{BodyLimit: "1M", CORSAllowOrigins: []string{"*"}},
		Storage: config.StorageConfig{PublicPrefix: "/uploads", MaxUploadBytes: 1024},
	}

	s.e = NewEcho(cfg, Deps{
		DB:         db.DB,
		Cache:      cache.NewMemoryCache(),
		Objects:    store,
		UploadsDir: store.Dir(),
		Schedule:   pricing.DefaultSchedule,
		Registry:   prometheus.NewRegistry(),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil)
}

func (s *ServerTestSuite) do(method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) createCustomer(body string) dto.CustomerResponse {
	rec := s.do(http.MethodPost, "/api/customers", strings.NewReader(body), echo.MIMEApplicationJSON)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var customer dto.CustomerResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &customer))
	return customer
}

func (s *ServerTestSuite) TestCustomerLifecycle() {
	customer := s.createCustomer(`{"name":"Ada Lovelace","email":"ada@example.com","city":"London"}`)
	s.NotEmpty(customer.ID)

	rec := s.do(http.MethodGet, "/api/customers/cities", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "London")

	rec = s.do(http.MethodPut, "/api/customers/"+customer.ID, strings.NewReader(`{"city":"Paris"}`), echo.MIMEApplicationJSON)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/customers/cities", nil, "")
	s.Contains(rec.Body.String(), "Paris")
	s.NotContains(rec.Body.String(), "London")

	rec = s.do(http.MethodDelete, "/api/customers/"+customer.ID, nil, "")
	s.JSONEq(`{"ok":true}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/customers/"+customer.ID, nil, "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestPhotoUploadIsServed() {
	customer := s.createCustomer(`{"name":"Grace Hopper"}`)
	png := []byte("\x89PNG\r\n\x1a\nfake")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="files"; filename="order.png"`)
	header.Set("Content-Type", "image/png")
	part, err := w.CreatePart(header)
	s.Require().NoError(err)
	_, _ = part.Write(png)
	s.Require().NoError(w.Close())

	rec := s.do(http.MethodPost, "/api/customers/"+customer.ID+"/photos", &buf, w.FormDataContentType())
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var uploaded dto.UploadPhotosResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &uploaded))
	s.Require().Len(uploaded.URLs, 1)
	s.True(strings.HasPrefix(uploaded.URLs[0], "/uploads/customers/"+customer.ID+"/"))

	rec = s.do(http.MethodGet, uploaded.URLs[0], nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(png, rec.Body.Bytes())
	s.Equal("public, max-age=86400", rec.Header().Get("Cache-Control"))
}

func (s *ServerTestSuite) TestQuoteUsesSeededCatalog() {
	rec := s.do(http.MethodPost, "/api/pricing/quote",
		strings.NewReader(`{"items":[{"productRef":"premium-box","qty":10}]}`), echo.MIMEApplicationJSON)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("976.1", body["merchandiseTotal"])
}

func (s *ServerTestSuite) TestSyncWithoutFirebase() {
	rec := s.do(http.MethodGet, "/api/sync/firebase/status", nil, "")
	s.JSONEq(`{"configured":false,"circuitState":"closed"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/sync/firebase/users", nil, "")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Contains(rec.Body.String(), string(errors.SyncNotConfigured))
}

func (s *ServerTestSuite) TestHealthAndMetrics() {
	rec := s.do(http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"firebase":"not configured"`)

	s.createCustomer(`{"name":"Metric Customer"}`)

	rec = s.do(http.MethodGet, "/metrics", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "crm_customers_created_total")
}

func (s *ServerTestSuite) TestUnknownRouteAndTraceHeader() {
	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	req.Header.Set("X-Trace-ID", "trace-from-client")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("trace-from-client", rec.Header().Get("X-Trace-ID"))

	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.SystemRouteNotFound), resp.Error.Code)
	s.Equal("trace-from-client", resp.Error.TraceID)
}

func (s *ServerTestSuite) TestRoutesRegistered() {
	registered := make(map[string]bool)
	for _, r := range s.e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"GET /health",
		"GET /metrics",
		"GET /api/customers",
		"POST /api/customers",
		"GET /api/customers/cities",
		"GET /api/customers/:id",
		"PUT /api/customers/:id",
		"DELETE /api/customers/:id",
		"GET /api/customers/:id/photos",
		"POST /api/customers/:id/photos",
		"DELETE /api/customers/:id/photos/:photoId",
		"GET /api/tasks",
		"POST /api/tasks",
		"GET /api/tasks/:id",
		"PUT /api/tasks/:id",
		"DELETE /api/tasks/:id",
		"GET /api/products",
		"POST /api/products",
		"PUT /api/products/:slug",
		"POST /api/pricing/quote",
		"GET /api/pricing/schedule",
		"GET /api/sync/firebase/status",
		"GET /api/sync/firebase/users",
		"GET /api/sync/firebase/orders",
		"GET /api/sync/firebase/staff",
		"GET /api/sync/firebase/runs",
	} {
		s.True(registered[route], "missing route %s", route)
	}
}
