package app

import (
	"crm-service/internal/handlers"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Health    *handlers.HealthCheckHandler
	Customers *handlers.CustomerHandler
	Photos    *handlers.PhotoHandler
	Tasks     *handlers.TaskHandler
	Products  *handlers.ProductHandler
	Sync      *handlers.SyncHandler
}

// RouterOptions controls the routes served outside /api.
type RouterOptions struct {
	Gatherer      prometheus.Gatherer
	UploadsDir    string // empty when photos live in a bucket
	UploadsPrefix string
}

func SetupRouter(e *echo.Echo, h *Handlers, opts RouterOptions) {
	e.GET("/health", h.Health.HealthCheck)
	if opts.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}
	if opts.UploadsDir != "" && opts.UploadsPrefix != "" {
		e.Static(opts.UploadsPrefix, opts.UploadsDir)
	}

	api := e.Group("/api")
	api.GET("/health", h.Health.HealthCheck)

	// ==================== Customers ====================
	customers := api.Group("/customers")
	customers.GET("", h.Customers.ListCustomers)
	customers.POST("", h.Customers.CreateCustomer)
	customers.GET("/cities", h.Customers.ListCities)
	customers.GET("/:id", h.Customers.GetCustomer)
	customers.PUT("/:id", h.Customers.UpdateCustomer)
	customers.DELETE("/:id", h.Customers.DeleteCustomer)

	customers.GET("/:id/photos", h.Photos.ListPhotos)
	customers.POST("/:id/photos", h.Photos.UploadPhotos)
	customers.DELETE("/:id/photos/:photoId", h.Photos.DeletePhoto)

	// ==================== Tasks ====================
	tasks := api.Group("/tasks")
	tasks.GET("", h.Tasks.ListTasks)
	tasks.POST("", h.Tasks.CreateTask)
	tasks.GET("/:id", h.Tasks.GetTask)
	tasks.PUT("/:id", h.Tasks.UpdateTask)
	tasks.DELETE("/:id", h.Tasks.DeleteTask)

	// ==================== Products & pricing ====================
	api.GET("/products", h.Products.ListProducts)
	api.POST("/products", h.Products.CreateProduct)
	api.PUT("/products/:slug", h.Products.UpdateProduct)
	api.POST("/pricing/quote", h.Products.Quote)
	api.GET("/pricing/schedule", h.Products.Schedule)

	// ==================== Firebase sync ====================
	sync := api.Group("/sync/firebase")
	sync.GET("/status", h.Sync.Status)
	sync.GET("/users", h.Sync.SyncUsers)
	sync.GET("/orders", h.Sync.SyncOrders)
	sync.GET("/staff", h.Sync.SyncStaff)
	sync.GET("/runs", h.Sync.ListRuns)
}
