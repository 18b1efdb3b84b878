package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/oersearch/oersearch/search"
)

// how long one store round trip may take before the request fails
// with a gateway timeout
const searchTimeout = 10 * time.Second

type SearchHandler struct {
	Searcher *search.Searcher
}

// Search answers GET /search?title=...&prof=...&sem=... with a JSON
// array of result records. No usable terms is an empty array, not an
// error.
func (h SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	requestLog := log.WithField("request_id", uuid.NewString())

	terms := search.SearchTerms{}
	for _, field := range []string{"title", "loc", "time", "prof", "day", "sem"} {
		if value := r.URL.Query().Get(field); value != "" {
			terms[field] = value
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), searchTimeout)
	defer cancel()

	records, err := h.Searcher.SearchCourses(ctx, terms)
	if err != nil {
		requestLog.Error("Search failed: ", err)
		switch {
		case errors.Is(err, search.ErrSearchTimeout):
			http.Error(w, http.StatusText(http.StatusGatewayTimeout), http.StatusGatewayTimeout)
		case errors.Is(err, search.ErrSearchExecution):
			http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		default:
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	body, err := json.Marshal(records)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
