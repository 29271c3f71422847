package handlers

import (
	"time"

	"github.com/SscSPs/fuel_station_app/cmd/docs"
	portssvc "github.com/SscSPs/fuel_station_app/internal/core/ports/services"
	"github.com/SscSPs/fuel_station_app/internal/middleware"
	"github.com/SscSPs/fuel_station_app/internal/platform/config"
	"github.com/SscSPs/fuel_station_app/internal/utils/validation"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// nowUTC anchors period queries without an explicit date.
var nowUTC = func() time.Time { return time.Now().UTC() }

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Decimal request fields are validated numerically.
	validation.RegisterGinBinding()

	r.GET("/health", getHealth)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	v1.GET("/me", getMe)
	registerShiftRoutes(v1, service.Shift)
	registerMeterReadingRoutes(v1, service.MeterReading)
	registerCollectionRoutes(v1, service.Collection, service.Reconciliation)
	registerReconciliationRoutes(v1, service.Reconciliation)
	registerSalaryAdjustmentRoutes(v1, service.SalaryAdjustment)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
