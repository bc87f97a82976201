package handlers

import (
	"github.com/Shalini-Dasari/TrustMed/cmd/docs"
	portssvc "github.com/Shalini-Dasari/TrustMed/internal/core/ports/services"
	"github.com/Shalini-Dasari/TrustMed/internal/middleware"
	"github.com/Shalini-Dasari/TrustMed/pkg/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	home := NewHomeHandler()
	r.GET("/health", home.Health)

	// Public authentication routes
	registerAuthRoutes(r, cfg, services.Session)

	// Authenticated API routes
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAccountRoutes(v1, services.Session)
	registerDocumentRoutes(v1, services.Document)
	registerEligibilityRoutes(v1, services.Session)
	registerLedgerRoutes(v1, services.Ledger)
	registerBillRoutes(v1, services.Bill)
}

func registerAccountRoutes(rg *gin.RouterGroup, sessions portssvc.SessionSvcFacade) {
	h := NewAccountHandler(sessions)
	accounts := rg.Group("/accounts")
	{
		accounts.GET("/me", h.GetCurrentAccount)
		accounts.POST("/me/card", h.RegenerateCard)
		accounts.PATCH("/me/card/status", h.UpdateCardStatus)
	}
}

func registerDocumentRoutes(rg *gin.RouterGroup, documents portssvc.DocumentSvcFacade) {
	h := NewDocumentHandler(documents)
	docs := rg.Group("/accounts/me/documents")
	{
		docs.POST("", h.UploadDocuments)
		docs.GET("", h.ListDocuments)
	}
}

func registerEligibilityRoutes(rg *gin.RouterGroup, sessions portssvc.SessionSvcFacade) {
	h := NewEligibilityHandler(sessions)
	rg.POST("/eligibility", h.CheckEligibility)
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := NewLedgerHandler(ledger)
	transactions := rg.Group("/accounts/me/transactions")
	{
		transactions.POST("", h.RecordEntry)
		transactions.GET("", h.ListEntries)
	}
}

func registerBillRoutes(rg *gin.RouterGroup, bills portssvc.BillSvcFacade) {
	h := NewBillHandler(bills)
	billGroup := rg.Group("/accounts/me/bills")
	{
		billGroup.POST("", h.SubmitBill)
		billGroup.GET("", h.ListBills)
	}
	// Status resolution addresses the bill directly, not via the account.
	rg.PATCH("/bills/:billID/status", h.UpdateBillStatus)
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
