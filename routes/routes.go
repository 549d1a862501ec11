package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bookflow/handlers"
	"bookflow/utils"
)

// RegisterWizardRoutes registers all endpoints for the booking wizard.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	sessions := r.Group("/api/wizard/sessions")
	{
		sessions.POST("", hb.Wizard.StartSession)
		sessions.GET("/:sessionID", hb.Wizard.GetSession)
		sessions.DELETE("/:sessionID", hb.Wizard.AbandonSession)

		sessions.POST("/:sessionID/zipcode", hb.Wizard.SubmitZipcode)
		sessions.POST("/:sessionID/category", hb.Wizard.SelectCategory)
		sessions.POST("/:sessionID/service", hb.Wizard.SelectService)
		sessions.POST("/:sessionID/advance", hb.Wizard.Advance)
		sessions.POST("/:sessionID/back", hb.Wizard.Back)

		sessions.PATCH("/:sessionID/draft", hb.Wizard.PatchDraft)
		sessions.POST("/:sessionID/images", hb.Wizard.UploadImages)
		sessions.POST("/:sessionID/validate", hb.Wizard.ValidateForm)
		sessions.POST("/:sessionID/submit", hb.Wizard.Submit)

		sessions.GET("/:sessionID/suggestions", hb.Wizard.Suggest)
		sessions.POST("/:sessionID/resolve", hb.Wizard.ResolveAddress)
	}
}

// RegisterCatalogRoutes registers the service catalogue pass-through.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("/categories", hb.Catalog.GetCategories)
		api.GET("/category", hb.Catalog.GetCategoryServices)
	}
}

// RegisterReceiptRoutes registers booking receipt lookup.
func RegisterReceiptRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("/receipts/:receiptID", hb.Receipts.GetReceipt)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	RegisterHealthRoute(r)
	RegisterWizardRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterReceiptRoutes(r, hb)
}
