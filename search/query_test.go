package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQueryNoTerms(t *testing.T) {
	_, ok := BuildQuery(SearchTerms{})
	assert.False(t, ok)

	_, ok = BuildQuery(SearchTerms{"unknown_field": "x"})
	assert.False(t, ok)

	_, ok = BuildQuery(SearchTerms{"title": ""})
	assert.False(t, ok)
}

func TestBuildQuerySemesterIsExact(t *testing.T) {
	q, ok := BuildQuery(SearchTerms{"sem": "2024F"})
	require.True(t, ok)
	require.Len(t, q.Clauses, 1)

	clause := q.Clauses[0]
	assert.Equal(t, "sections.sem", clause.Field)
	assert.Equal(t, "2024F", clause.Term)
	assert.Equal(t, KindSemesterTerm, clause.Kind)
}

func TestBuildQueryConjunction(t *testing.T) {
	q, ok := BuildQuery(SearchTerms{"title": "calc", "prof": "Smith"})
	require.True(t, ok)

	// both fields must be present, each as its own required clause
	require.Len(t, q.Clauses, 2)
	assert.Equal(t, Clause{Field: "title", Term: "calc", Kind: KindMatch}, q.Clauses[0])
	assert.Equal(t, Clause{Field: "prof", Term: "Smith", Kind: KindMatch}, q.Clauses[1])
}

func TestBuildQueryStableOrder(t *testing.T) {
	terms := SearchTerms{"sem": "2024F", "day": "Mo", "title": "physics"}
	first, ok := BuildQuery(terms)
	require.True(t, ok)
	second, ok := BuildQuery(terms)
	require.True(t, ok)
	assert.Equal(t, first, second)
	assert.Equal(t, "title", first.Clauses[0].Field)
	assert.Equal(t, "day", first.Clauses[1].Field)
	assert.Equal(t, "sections.sem", first.Clauses[2].Field)
}

func TestBuildQuerySkipsUnknownAmongKnown(t *testing.T) {
	q, ok := BuildQuery(SearchTerms{"title": "calc", "made_up": "x"})
	require.True(t, ok)
	assert.Len(t, q.Clauses, 1)
}
