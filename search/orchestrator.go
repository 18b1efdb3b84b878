package search

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
)

// MaxResults is the hard cap on matches requested from the store, it
// is not user configurable.
const MaxResults = 100

// Hit is one matched course document with its stored id.
type Hit struct {
	ID  int64
	Doc Document
}

// DocumentStore is the boundary to the external search engine. The
// store is a long lived shared client and must be safe for concurrent
// callers, Search honors ctx cancellation.
type DocumentStore interface {
	Search(ctx context.Context, q Query, limit int) ([]Hit, error)
}

// BookDisplay is the book shape consumers of search results expect.
type BookDisplay struct {
	Title  string  `json:"booktitle"`
	Author string  `json:"bookauthor"`
	Price  float64 `json:"bookprice"`
}

// ResultRecord is one display ready course: the representative
// section's fields flattened together with the course level ones.
//
// Books is either a []BookDisplay or the empty string "" when the
// course has no books. The empty string sentinel is what existing
// consumers key off of so it stays, do not swap it for an empty list.
type ResultRecord struct {
	ID    int64  `json:"id"`
	Prof  string `json:"prof"`
	Sem   string `json:"sem"`
	Day   string `json:"day"`
	Title string `json:"title"`
	Dept  string `json:"dept,omitempty"`
	Books any    `json:"books"`
}

// Searcher runs course searches against a document store.
type Searcher struct {
	store  DocumentStore
	policy SectionPolicy
	logger *log.Entry
}

func NewSearcher(store DocumentStore) *Searcher {
	return &Searcher{
		store:  store,
		policy: FirstEligible,
		logger: log.WithField("component", "search"),
	}
}

// WithPolicy swaps the representative section policy.
func (s *Searcher) WithPolicy(policy SectionPolicy) *Searcher {
	s.policy = policy
	return s
}

// SearchCourses answers a multi-field conjunctive search.
//
// Courses whose sections are all tutorials are dropped, the survivors
// are reshaped into ResultRecords in the order the store returned
// them. A store failure surfaces as ErrSearchExecution, or
// ErrSearchTimeout when the ctx deadline ran out, with no retrying
// here either way.
func (s *Searcher) SearchCourses(ctx context.Context, terms SearchTerms) ([]ResultRecord, error) {
	s.logger.WithField("terms", terms).Info("search request")

	q, ok := BuildQuery(terms)
	if !ok {
		// no usable terms means no results without a store round trip
		return []ResultRecord{}, nil
	}

	hits, err := s.store.Search(ctx, q, MaxResults)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Join(ErrSearchTimeout, err)
		}
		return nil, errors.Join(ErrSearchExecution, err)
	}
	s.logger.WithFields(log.Fields{
		"terms": terms,
		"hits":  len(hits),
	}).Info("search executed")

	records := []ResultRecord{}
	for _, hit := range hits {
		eligible, ok := FilterSections(hit.Doc)
		if !ok {
			continue
		}
		records = append(records, s.toRecord(hit, eligible))
	}
	return records, nil
}

func (s *Searcher) toRecord(hit Hit, eligible []Section) ResultRecord {
	rep := s.policy.Pick(eligible)
	rec := ResultRecord{
		ID:    hit.ID,
		Prof:  rep.Prof,
		Sem:   rep.Sem,
		Day:   rep.Day,
		Title: hit.Doc.Title,
	}
	// titles frequently already lead with the department so only add
	// it when it is not in there
	if !strings.Contains(hit.Doc.Title, hit.Doc.Dept) {
		rec.Dept = hit.Doc.Dept
	}
	if len(hit.Doc.Books) > 0 {
		books := make([]BookDisplay, len(hit.Doc.Books))
		for i, b := range hit.Doc.Books {
			books[i] = BookDisplay{Title: b.Title, Author: b.Author, Price: b.Price}
		}
		rec.Books = books
	} else {
		rec.Books = ""
	}
	return rec
}
