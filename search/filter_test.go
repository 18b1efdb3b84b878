package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterSectionsAllStaff(t *testing.T) {
	doc := Document{
		Title: "COLLAB 2C03 - Sociology I",
		Sections: []Section{
			{Prof: "Staff", Sem: "2015/09/08 - 2015/12/08", Day: "Mo"},
			{Prof: "Staff", Sem: "2015/09/08 - 2015/12/08", Day: "Th"},
		},
	}
	_, ok := FilterSections(doc)
	assert.False(t, ok)
}

func TestFilterSectionsMixed(t *testing.T) {
	doc := Document{
		Sections: []Section{
			{Prof: "Staff", Day: "Mo"},
			{Prof: "Lisa Pender", Day: "Tu"},
			{Prof: "Carol Friedman", Day: "We"},
			{Prof: "Staff", Day: "Th"},
		},
	}
	kept, ok := FilterSections(doc)
	require.True(t, ok)
	require.Len(t, kept, 2)
	assert.Equal(t, "Lisa Pender", kept[0].Prof)
	assert.Equal(t, "Carol Friedman", kept[1].Prof)
}

func TestFilterSectionsSubstringMarker(t *testing.T) {
	// the marker is a substring check, this false positive is the
	// documented behavior
	doc := Document{
		Sections: []Section{{Prof: "Staff-Smith", Day: "Mo"}},
	}
	_, ok := FilterSections(doc)
	assert.False(t, ok)
}

func TestFilterSectionsNoSections(t *testing.T) {
	_, ok := FilterSections(Document{})
	assert.False(t, ok)
}

func TestFirstEligiblePicksFirstInOrder(t *testing.T) {
	eligible := []Section{
		{Prof: "Lisa Pender", Day: "Tu"},
		{Prof: "Carol Friedman", Day: "We"},
	}
	rep := FirstEligible.Pick(eligible)
	assert.Equal(t, "Lisa Pender", rep.Prof)
}
