// File: bookflow/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookflow/clients"
	"bookflow/config"
	"bookflow/database"
	receiptRepo "bookflow/database/repository/receipt"
	"bookflow/handlers"
	"bookflow/middleware"
	"bookflow/routes"
	"bookflow/services/places"
	"bookflow/services/wizard"
	"bookflow/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitWizardCache()

	// Create the Gin router.
	router := gin.New()
	router.MaxMultipartMemory = 16 << 20
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// External collaborators.
	upstream := clients.NewUpstreamClient(config.AppConfig.UpstreamAPIURL)
	placesClient := places.NewGoogleClient(config.AppConfig.GoogleAPIKey)
	suggester := places.NewDebouncedSuggester(placesClient, logger)

	// Repositories and stores.
	receipts := receiptRepo.NewMongoReceiptRepo()
	stepStore := wizard.NewRedisStepStore(utils.GetWizardCacheClient())

	// Wizard engine.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	wizardSvc := wizard.NewDefaultWizardService(
		upstream,
		stepStore,
		receipts,
		suggester,
		config.AppConfig.PickupCategoryID,
		sessionTTL,
		logger,
	)

	hb := &handlers.HandlerBundle{
		Wizard:   &handlers.WizardHandler{Svc: wizardSvc, Logger: logger},
		Catalog:  &handlers.CatalogHandler{API: upstream, Logger: logger},
		Receipts: &handlers.ReceiptHandler{Repo: receipts, Logger: logger},
	}
	routes.RegisterRoutes(router, hb)

	utils.StartHealthMonitor(utils.GetWizardCacheClient(), database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
