package search

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeIDDeterministic(t *testing.T) {
	course := Course{
		Code:  "2C03",
		Title: "COLLAB 2C03 - Sociology I",
		Sections: []Section{
			{Prof: "Lisa Pender", Sem: "2015/09/08 - 2015/12/08", Day: "Mo"},
		},
	}

	first, err := ComputeID(course)
	require.NoError(t, err)
	second, err := ComputeID(course)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, int64(0))
	assert.LessOrEqual(t, len(strconv.FormatInt(first, 10)), 12)
}

func TestComputeIDDependsOnIdentityFields(t *testing.T) {
	base := Course{
		Code:     "2C03",
		Title:    "Sociology I",
		Sections: []Section{{Sem: "2015/09/08 - 2015/12/08"}},
	}
	baseID, err := ComputeID(base)
	require.NoError(t, err)

	changedTitle := base
	changedTitle.Title = "Sociology II"
	changedID, err := ComputeID(changedTitle)
	require.NoError(t, err)
	assert.NotEqual(t, baseID, changedID)

	changedSem := base
	changedSem.Sections = []Section{{Sem: "2016/01/04 - 2016/04/15"}}
	changedSemID, err := ComputeID(changedSem)
	require.NoError(t, err)
	assert.NotEqual(t, baseID, changedSemID)

	// fields outside code/title/first semester do not move the id
	changedProf := base
	changedProf.Dept = "SOC"
	changedProf.Sections = []Section{{Prof: "Somebody Else", Sem: base.Sections[0].Sem, Day: "Th"}}
	sameID, err := ComputeID(changedProf)
	require.NoError(t, err)
	assert.Equal(t, baseID, sameID)
}

func TestComputeIDUnindexable(t *testing.T) {
	course := Course{
		Dept: "COLLAB",
		Sections: []Section{
			{Prof: "Lisa Pender", Sem: "2015/09/08 - 2015/12/08", Day: "Mo"},
		},
	}
	_, err := ComputeID(course)
	assert.ErrorIs(t, err, ErrUnindexable)
}

func TestComputeIDNoSections(t *testing.T) {
	// zero sections hash as one synthetic empty section
	noSections := Course{Code: "1A03", Title: "Intro"}
	id, err := ComputeID(noSections)
	require.NoError(t, err)

	emptySem := Course{Code: "1A03", Title: "Intro", Sections: []Section{{}}}
	sameID, err := ComputeID(emptySem)
	require.NoError(t, err)
	assert.Equal(t, id, sameID)
}
