package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sangkips/residence-api/internal/config"
	"github.com/sangkips/residence-api/internal/domain/enum"
	"github.com/sangkips/residence-api/internal/presentation/http/handler"
	"github.com/sangkips/residence-api/internal/presentation/http/middleware"
	"github.com/sangkips/residence-api/pkg/logger"
	"github.com/sangkips/residence-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Report  *handler.ReportHandler
	Export  *handler.ExportHandler
	Printer *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager  *utils.JWTManager
	Cfg         *config.Config
	Log         *logger.Logger
	RateLimiter *middleware.RateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.Recovery())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", h.Printer.Health)

	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		registerReportRoutes(protected, h, deps)
	}

	return router
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	reports := protected.Group("/reports")
	reports.Use(middleware.RequireRole(string(enum.UserRoleAdmin), string(enum.UserRoleEmployee)))

	reports.GET("/printer/status", h.Printer.GetStatus)

	operational := reports.Group("/operational")
	{
		operational.GET("/complaints/stats", h.Report.GetComplaintStats)
		operational.GET("/security-reports/stats", h.Report.GetSecurityReportStats)
		operational.GET("/units-residents/stats", h.Report.GetUnitResidentStats)
		operational.GET("/preview", h.Export.PreviewOperational)
	}

	payments := reports.Group("/payments")
	{
		payments.GET("/revenue", h.Report.GetRevenue)
		payments.GET("/history", h.Report.GetPaymentHistory)
		payments.GET("/preview", h.Export.PreviewPayments)
	}

	// PDF exports hold a browser tab each, so they are rate limited
	exports := reports.Group("")
	if deps.RateLimiter != nil {
		exports.Use(deps.RateLimiter.Middleware())
	}
	{
		exports.GET("/operational/export", h.Export.ExportOperational)
		exports.POST("/operational/export", h.Export.ExportOperationalCustom)
		exports.GET("/payments/export", h.Export.ExportPayments)
		exports.POST("/payments/export", h.Export.ExportPaymentsCustom)
	}
}
