package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	elastic "github.com/olivere/elastic/v7"

	"github.com/oersearch/oersearch/search"
)

// CourseStore is the elasticsearch backed document store for course
// documents. It satisfies search.DocumentStore.
type CourseStore struct {
	client *elastic.Client
	index  string
}

var _ search.DocumentStore = (*CourseStore)(nil)

func NewCourseStore(client *elastic.Client, index string) *CourseStore {
	return &CourseStore{client: client, index: index}
}

// Search runs the composite query and unpacks the raw hits back into
// course documents, keeping the store's result order.
func (s *CourseStore) Search(ctx context.Context, q search.Query, limit int) ([]search.Hit, error) {
	res, err := s.client.Search().
		Index(s.index).
		Query(translate(q)).
		From(0).
		Size(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("searching index %s: %w", s.index, err)
	}

	hits := make([]search.Hit, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc search.Document
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			return nil, fmt.Errorf("decoding hit %s: %w", hit.Id, err)
		}
		id, err := strconv.ParseInt(hit.Id, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("document id %q is not numeric: %w", hit.Id, err)
		}
		hits = append(hits, search.Hit{ID: id, Doc: doc})
	}
	return hits, nil
}

// Index writes one course document under its derived id. Writing the
// same id again overwrites, which is the wanted upsert behavior.
func (s *CourseStore) Index(ctx context.Context, id int64, doc search.Document) error {
	_, err := s.client.Index().
		Index(s.index).
		Id(strconv.FormatInt(id, 10)).
		BodyJson(doc).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("indexing document %d: %w", id, err)
	}
	return nil
}

// translate maps the store agnostic query onto the elastic DSL. Every
// clause is a must so the whole thing is a conjunction.
func translate(q search.Query) elastic.Query {
	boolQuery := elastic.NewBoolQuery()
	for _, clause := range q.Clauses {
		switch clause.Kind {
		case search.KindMatch:
			boolQuery.Must(elastic.NewMatchQuery(clause.Field, clause.Term))
		case search.KindSemesterTerm:
			boolQuery.Must(elastic.NewTermsQuery(clause.Field, clause.Term))
		}
	}
	return boolQuery
}
