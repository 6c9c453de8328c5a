package main

import (
	"context"
	"errors"
	"log"
	"milk-route-service/internal/api"
	"milk-route-service/internal/config"
	"milk-route-service/internal/platform/graceful"
	"net/http"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It builds the router and runs an explicitly constructed HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	host := config.Get("HOST", "127.0.0.1")
	port := config.Get("PORT", "8000")

	router := api.NewRouter()

	srv := &http.Server{
		Addr:              host + ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening addr=%s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}
}
