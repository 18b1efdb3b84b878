package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oersearch/oersearch/search"
)

func querySource(t *testing.T, q search.Query) string {
	t.Helper()
	src, err := translate(q).Source()
	require.NoError(t, err)
	body, err := json.Marshal(src)
	require.NoError(t, err)
	return string(body)
}

func TestTranslateMatchClause(t *testing.T) {
	q := search.Query{Clauses: []search.Clause{
		{Field: "title", Term: "calc", Kind: search.KindMatch},
	}}
	assert.JSONEq(t,
		`{"bool":{"must":{"match":{"title":{"query":"calc"}}}}}`,
		querySource(t, q))
}

func TestTranslateSemesterClauseIsExact(t *testing.T) {
	q := search.Query{Clauses: []search.Clause{
		{Field: "sections.sem", Term: "2024F", Kind: search.KindSemesterTerm},
	}}
	assert.JSONEq(t,
		`{"bool":{"must":{"terms":{"sections.sem":["2024F"]}}}}`,
		querySource(t, q))
}

func TestTranslateConjunction(t *testing.T) {
	q := search.Query{Clauses: []search.Clause{
		{Field: "title", Term: "calc", Kind: search.KindMatch},
		{Field: "prof", Term: "Smith", Kind: search.KindMatch},
		{Field: "sections.sem", Term: "2024F", Kind: search.KindSemesterTerm},
	}}
	assert.JSONEq(t,
		`{"bool":{"must":[
			{"match":{"title":{"query":"calc"}}},
			{"match":{"prof":{"query":"Smith"}}},
			{"terms":{"sections.sem":["2024F"]}}
		]}}`,
		querySource(t, q))
}
