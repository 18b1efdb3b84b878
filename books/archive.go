package books

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ArchiveClient searches The Internet Archive's advanced search for
// scanned copies of a book.
type ArchiveClient struct {
	BaseURL    string
	httpClient *http.Client
	logger     *log.Entry
}

func NewArchiveClient(logger *log.Entry) *ArchiveClient {
	limiter := NewAdaptiveRateLimiter(rate.Every(500*time.Millisecond), 2, rate.Every(time.Second))
	return &ArchiveClient{
		BaseURL:    "https://archive.org",
		httpClient: NewRetryClientWithLimiter(logger, limiter),
		logger:     logger,
	}
}

// the archive response schema, only the parts read here
type archiveResponse struct {
	ResponseHeader struct {
		Params struct {
			Rows string `json:"rows"`
		} `json:"params"`
	} `json:"responseHeader"`
	Response struct {
		Docs []struct {
			Identifier string `json:"identifier"`
			MediaType  string `json:"mediatype"`
		} `json:"docs"`
	} `json:"response"`
}

// LookupBooks searches for title AND author and keeps the first 10
// text results. The endpoint answers JSONP so the callback wrapper has
// to be peeled off before decoding. An unparseable answer is an empty
// result, not an error.
func (c *ArchiveClient) LookupBooks(ctx context.Context, title, author string) ([]BookMatch, error) {
	params := url.Values{
		"q":        {title + " AND " + author},
		"fl[]":     {"identifier", "mediatype", "description", "avg_rating"},
		"rows":     {"50"},
		"page":     {"1"},
		"output":   {"json"},
		"callback": {"callback"},
	}
	req, err := http.NewRequestWithContext(
		ctx,
		"GET",
		c.BaseURL+"/advancedsearch.php?"+params.Encode(),
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
		return nil, fmt.Errorf("archive search answered %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result archiveResponse
	if err := json.Unmarshal(stripJSONP(body), &result); err != nil {
		c.logger.Debug("Unparseable archive response: ", err)
		return []BookMatch{}, nil
	}

	if rows, err := strconv.Atoi(result.ResponseHeader.Params.Rows); err == nil && rows < 1 {
		c.logger.Debugf("Couldn't find results for %s %s", title, author)
		return []BookMatch{}, nil
	}

	matches := []BookMatch{}
	for _, doc := range result.Response.Docs {
		if doc.MediaType != "texts" {
			continue
		}
		matches = append(matches, BookMatch{
			Title:  title,
			Author: author,
			URL:    c.BaseURL + "/details/" + doc.Identifier,
		})
		if len(matches) == maxMatches {
			break
		}
	}
	return matches, nil
}

// stripJSONP peels a callback(...) wrapper off a JSONP body
func stripJSONP(body []byte) []byte {
	s := strings.TrimSpace(string(body))
	open := strings.Index(s, "(")
	if open == -1 || !strings.HasSuffix(s, ")") {
		return body
	}
	return []byte(s[open+1 : len(s)-1])
}
