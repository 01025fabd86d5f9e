package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ZanderH-code/mtg-ai-backend/internal/api"
	"github.com/ZanderH-code/mtg-ai-backend/internal/services"
)

func main() {
	// Initialize services once and pass them down explicitly; there is no
	// cross-request state anywhere below this point.
	normalizer := services.NewNormalizer()
	fallback := services.NewFallbackTranslator()
	translator := services.NewTranslator(normalizer, fallback)
	scryfallService := services.NewScryfallService()
	searchService := services.NewSearchService(translator, scryfallService)

	router := api.SetupRouter(searchService, translator)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests a deadline to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
