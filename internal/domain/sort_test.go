package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortState_ToggleCycle(t *testing.T) {
	var s SortState

	s = s.Toggle(SortByMovie)
	assert.Equal(t, SortState{Key: SortByMovie, Direction: SortAscending}, s)

	s = s.Toggle(SortByMovie)
	assert.Equal(t, SortState{Key: SortByMovie, Direction: SortDescending}, s)

	s = s.Toggle(SortByMovie)
	assert.False(t, s.IsActive())
	assert.Equal(t, SortNone, s.DirectionOf(SortByMovie))
}

func TestSortState_ToggleResetsOtherKeys(t *testing.T) {
	s := SortState{Key: SortByCinema, Direction: SortDescending}

	s = s.Toggle(SortByBooked)

	assert.Equal(t, SortAscending, s.DirectionOf(SortByBooked))
	assert.Equal(t, SortNone, s.DirectionOf(SortByCinema))
	for _, k := range SortKeys {
		if k != SortByBooked {
			assert.Equal(t, SortNone, s.DirectionOf(k), "key %s", k)
		}
	}
}

func TestParseSortKeyAndDirection(t *testing.T) {
	k, err := ParseSortKey("release")
	assert.NoError(t, err)
	assert.Equal(t, SortByRelease, k)

	_, err = ParseSortKey("price")
	assert.Error(t, err)

	d, err := ParseSortDirection(-1)
	assert.NoError(t, err)
	assert.Equal(t, SortDescending, d)

	_, err = ParseSortDirection(2)
	assert.Error(t, err)
}
