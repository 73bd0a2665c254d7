package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"invoice-dashboard/internal/cache"
	"invoice-dashboard/internal/config"
	handler "invoice-dashboard/internal/handlers"
	"invoice-dashboard/internal/middleware"
	"invoice-dashboard/internal/repository"
	"invoice-dashboard/internal/services/dashboard"
	"invoice-dashboard/internal/services/invoices"
	"invoice-dashboard/internal/web"
)

// NewRouter builds the gin engine with middleware, templates and every route.
func NewRouter(db *gorm.DB, pages cache.PageCache, cfg *config.Config) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.Logging(), middleware.Recover(handler.ErrorPage))
	r.NoRoute(handler.NotFound)

	RegisterRoutes(r, db, pages, web.NewRenderer(tmpl), cfg)
	return r, nil
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, pages cache.PageCache, renderer *web.Renderer, cfg *config.Config) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)

	invoiceService := invoices.NewService(invoiceRepo, pages)
	dashboardService := dashboard.NewService(invoiceRepo, customerRepo, revenueRepo)

	invoiceHandler := handler.NewInvoiceHandler(
		invoiceService,
		invoiceRepo,
		customerRepo,
		pages,
		renderer,
		cfg.SearchDebounce,
	)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})

	dash := r.Group("/dashboard")
	dash.GET("", dashboardHandler.Overview)

	// Invoice routes
	inv := dash.Group("/invoices")
	{
		inv.GET("", invoiceHandler.List)
		inv.POST("", invoiceHandler.Create)
		inv.GET("/search", invoiceHandler.Search)
		inv.GET("/create", invoiceHandler.CreateForm)
		inv.GET("/:id/edit", invoiceHandler.EditForm)
		inv.POST("/:id", invoiceHandler.Update)
		inv.POST("/:id/delete", invoiceHandler.Delete)
	}

	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	api.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
