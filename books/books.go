package books

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// maximum matches any lookup hands back, best matches first
const maxMatches = 10

// BookMatch is one open access copy of a textbook found in an outside
// catalog.
type BookMatch struct {
	Title  string
	Author string
	URL    string
}

// Lookup finds open access copies of a textbook. Implementations treat
// parse problems and empty result sets as soft, returning an empty
// slice, and only error on the transport itself.
type Lookup interface {
	LookupBooks(ctx context.Context, title, author string) ([]BookMatch, error)
}

// CatalogLookup tries the Internet Archive first and falls back to
// OpenLibrary when the archive has nothing.
type CatalogLookup struct {
	archive     Lookup
	openLibrary Lookup
	logger      *log.Entry
}

func NewCatalogLookup() *CatalogLookup {
	logger := log.WithField("component", "books")
	return &CatalogLookup{
		archive:     NewArchiveClient(logger),
		openLibrary: NewOpenLibraryClient(logger),
		logger:      logger,
	}
}

func (c *CatalogLookup) LookupBooks(ctx context.Context, title, author string) ([]BookMatch, error) {
	matches, err := c.archive.LookupBooks(ctx, title, author)
	if err != nil {
		c.logger.Warn("Archive lookup failed: ", err)
	}
	if len(matches) > 0 {
		return matches, nil
	}

	matches, err = c.openLibrary.LookupBooks(ctx, title, author)
	if err != nil {
		c.logger.Warn("OpenLibrary lookup failed: ", err)
		return []BookMatch{}, nil
	}
	return matches, nil
}
