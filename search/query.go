package search

// SearchTerms maps a caller supplied field name to the text searched
// against it. Empty values and unknown fields are ignored.
type SearchTerms map[string]string

// QueryKind picks how a clause should be run by the store.
type QueryKind int

const (
	// analyzed full text match
	KindMatch QueryKind = iota
	// exact term equality against the section semester label
	KindSemesterTerm
)

// Clause is one field specific sub-query.
type Clause struct {
	Field string
	Term  string
	Kind  QueryKind
}

// Query is a conjunction of clauses, every clause must match.
type Query struct {
	Clauses []Clause
}

// searchableFields fixes the order clauses are emitted in so that a
// given set of terms always builds the same query
var searchableFields = []string{"title", "loc", "time", "prof", "day", "sem"}

// clauseFor is the closed field to query kind mapping. Adding a field
// means adding a case here and to searchableFields.
func clauseFor(field, term string) (Clause, bool) {
	switch field {
	case "title", "loc", "time", "prof", "day":
		return Clause{Field: field, Term: term, Kind: KindMatch}, true
	case "sem":
		// semester labels are date ranges, analyzing them would split
		// the range apart so it has to be an exact term filter
		return Clause{Field: "sections.sem", Term: term, Kind: KindSemesterTerm}, true
	}
	return Clause{}, false
}

// BuildQuery translates search terms into one composite query. The
// second return is false when no term produced a clause, which callers
// must treat as "no results" without ever reaching the store.
func BuildQuery(terms SearchTerms) (Query, bool) {
	var q Query
	for _, field := range searchableFields {
		term, ok := terms[field]
		if !ok || term == "" {
			continue
		}
		clause, ok := clauseFor(field, term)
		if !ok {
			continue
		}
		q.Clauses = append(q.Clauses, clause)
	}
	return q, len(q.Clauses) > 0
}
