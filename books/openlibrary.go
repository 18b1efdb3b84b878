package books

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// OpenLibraryClient looks editions up through the OpenLibrary search
// endpoint.
type OpenLibraryClient struct {
	BaseURL    string
	httpClient *http.Client
	logger     *log.Entry
}

func NewOpenLibraryClient(logger *log.Entry) *OpenLibraryClient {
	limiter := NewAdaptiveRateLimiter(rate.Every(500*time.Millisecond), 2, rate.Every(time.Second))
	return &OpenLibraryClient{
		BaseURL:    "https://openlibrary.org",
		httpClient: NewRetryClientWithLimiter(logger, limiter),
		logger:     logger,
	}
}

type openLibraryResponse struct {
	Docs []struct {
		EditionKey []string `json:"edition_key"`
	} `json:"docs"`
}

// LookupBooks finds the first two editions matching title and author.
// Subtitles after a ":" throw the search off so the title is cut there
// first.
func (c *OpenLibraryClient) LookupBooks(ctx context.Context, title, author string) ([]BookMatch, error) {
	if idx := strings.Index(title, ":"); idx != -1 {
		title = title[:idx]
	}

	params := url.Values{
		"title":  {title},
		"author": {author},
	}
	req, err := http.NewRequestWithContext(
		ctx,
		"GET",
		c.BaseURL+"/search.json?"+params.Encode(),
		nil,
	)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openlibrary search answered %s", resp.Status)
	}

	var result openLibraryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Debug("Unparseable openlibrary response: ", err)
		return []BookMatch{}, nil
	}

	matches := []BookMatch{}
	for i, doc := range result.Docs {
		if i >= 2 {
			break
		}
		if len(doc.EditionKey) == 0 {
			continue
		}
		matches = append(matches, BookMatch{
			Title:  title,
			Author: author,
			URL:    c.BaseURL + "/books/" + doc.EditionKey[0],
		})
	}
	return matches, nil
}
