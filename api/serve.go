package api

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"

	"github.com/oersearch/oersearch/api/handlers"
	"github.com/oersearch/oersearch/search"
	"github.com/oersearch/oersearch/store"
)

func Serve() error {
	r := chi.NewRouter()
	cors := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum age for preflight requests
	})
	r.Use(cors.Handler)
	r.Use(middleware.Logger)

	client, err := store.NewClient()
	if err != nil {
		return fmt.Errorf("cannot connect to document store: %w", err)
	}
	courseStore := store.NewCourseStore(client, store.IndexName())

	searchHandler := handlers.SearchHandler{
		Searcher: search.NewSearcher(courseStore),
	}
	r.Get("/search", searchHandler.Search)

	port := 3000
	if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		port = p
	}
	log.Infof("Running server on :%d", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), r)
}
