package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"sportsinventory/internal/metrics"
	"sportsinventory/internal/middleware"
	"sportsinventory/internal/modules/catalog"
	"sportsinventory/internal/modules/customer"
	"sportsinventory/internal/modules/penalty"
	"sportsinventory/internal/modules/sales"
	"sportsinventory/internal/pkg/jwt"
	"sportsinventory/internal/pkg/response"
	"sportsinventory/internal/repository"
)

type Deps struct {
	DB          *gorm.DB
	JWT         *jwt.Service
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	CORSOrigins []string
}

// NewRouter wires repositories, services and handlers into a gin engine.
func NewRouter(d Deps) *gin.Engine {
	customerRepo := repository.NewCustomerRepository(d.DB)
	categoryRepo := repository.NewCategoryRepository(d.DB)
	equipmentRepo := repository.NewEquipmentRepository(d.DB)
	supplierRepo := repository.NewSupplierRepository(d.DB)
	transactionRepo := repository.NewTransactionRepository(d.DB)
	penaltyRepo := repository.NewPenaltyRepository(d.DB)
	txManager := repository.NewTxManager(d.DB)

	customerHandler := customer.NewHandler(customer.NewService(customerRepo))
	catalogHandler := catalog.NewHandler(catalog.NewService(categoryRepo, equipmentRepo, supplierRepo, txManager))
	salesHandler := sales.NewHandler(sales.NewService(customerRepo, equipmentRepo, transactionRepo, txManager, d.Metrics))
	penaltyHandler := penalty.NewHandler(penalty.NewService(customerRepo, penaltyRepo, transactionRepo))

	r := gin.New()
	r.Use(
		middleware.RequestLogger(),
		middleware.ErrorLogger(),
		middleware.CORS(d.CORSOrigins),
		d.Metrics.Middleware(),
	)

	r.GET("/healthz", healthz(d.DB))
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/api/v1")
	{
		// public
		customerHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		staff := v1.Group("", middleware.JWTAuth(d.JWT), middleware.StaffOnly())
		{
			customerHandler.RegisterRoutes(staff)
			salesHandler.RegisterRoutes(staff)
			penaltyHandler.RegisterRoutes(staff)
		}

		admin := v1.Group("", middleware.JWTAuth(d.JWT), middleware.AdminOnly())
		{
			catalogHandler.RegisterAdminRoutes(admin)
			penaltyHandler.RegisterAdminRoutes(admin)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "ROUTE_NOT_FOUND", "Route not found")
	})

	return r
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database is unreachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	}
}
