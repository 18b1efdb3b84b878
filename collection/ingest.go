package collection

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/oersearch/oersearch/books"
	"github.com/oersearch/oersearch/search"
)

// to limit the max amount of lookup requests out that go without
// having an answer
const defaultLookupSemaphore = 5

// DocumentWriter is the write half of the store that ingest needs.
type DocumentWriter interface {
	Index(ctx context.Context, id int64, doc search.Document) error
}

// Ingestor indexes course listings, attaching open access book urls on
// the way in. Runs at ingest time only, never while serving searches.
type Ingestor struct {
	writer DocumentWriter
	books  books.Lookup
	logger *log.Entry

	LookupSemaphore int
}

func NewIngestor(writer DocumentWriter, lookup books.Lookup) *Ingestor {
	return &Ingestor{
		writer:          writer,
		books:           lookup,
		logger:          log.WithField("component", "ingest"),
		LookupSemaphore: defaultLookupSemaphore,
	}
}

// ReadListings loads a course listings JSON file, an array of courses
// in the document shape.
func ReadListings(path string) ([]search.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var courses []search.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

type IngestSummary struct {
	Indexed int32
	Skipped int32
}

// IngestAll indexes every course. Unindexable records are logged and
// skipped, the listing source has to repair those. A store write
// failure stops the whole run.
func (ing *Ingestor) IngestAll(ctx context.Context, courses []search.Course) (IngestSummary, error) {
	var summary IngestSummary
	semaphore := make(chan struct{}, ing.LookupSemaphore)

	eg, ctx := errgroup.WithContext(ctx)
	for i := range courses {
		course := courses[i]
		eg.Go(func() error {
			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
			case <-ctx.Done():
				return ctx.Err()
			}

			id, err := search.ComputeID(course)
			if errors.Is(err, search.ErrUnindexable) {
				ing.logger.Warn("Skipping unindexable course: ", err)
				atomic.AddInt32(&summary.Skipped, 1)
				return nil
			}
			if err != nil {
				return err
			}

			ing.attachBooks(ctx, &course)

			if err := ing.writer.Index(ctx, id, search.ToDocument(course)); err != nil {
				ing.logger.Error("Error indexing course: ", err)
				return err
			}
			atomic.AddInt32(&summary.Indexed, 1)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return summary, err
	}
	ing.logger.WithFields(log.Fields{
		"indexed": summary.Indexed,
		"skipped": summary.Skipped,
	}).Info("Finished ingest")
	return summary, nil
}

// attachBooks fills in open access urls for the course's books. Any
// lookup failure leaves the book as it came, missing urls are not
// worth failing an ingest over.
func (ing *Ingestor) attachBooks(ctx context.Context, course *search.Course) {
	if ing.books == nil {
		return
	}
	for i, book := range course.Books {
		if book.URL != "" || book.Title == "" {
			continue
		}
		matches, err := ing.books.LookupBooks(ctx, book.Title, book.Author)
		if err != nil {
			ing.logger.Warn("Book lookup failed: ", err)
			continue
		}
		if len(matches) > 0 {
			course.Books[i].URL = matches[0].URL
		}
	}
}
