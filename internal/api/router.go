package api

import (
	"milk-route-service/internal/api/handlers"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of the middleware stack).
func NewRouter() http.Handler {
	mux := http.NewServeMux()

	formHandler := handlers.NewFormHandler()

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/", formHandler.Form)

	return requestIDMiddleware(loggingMiddleware(mux))
}
