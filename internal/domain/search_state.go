package domain

// SearchState criteria, sort and bulk selection of the search page.
// Any change of criteria or sort clears the selection.
type SearchState struct {
	criteria  FilterCriteria
	sort      SortState
	selection map[string]struct{}
}

// RestoreSearchState rebuilds the state a selection was made under
func RestoreSearchState(c FilterCriteria, st SortState, selected []string) *SearchState {
	s := &SearchState{criteria: c, sort: st}
	s.clearSelection()
	for _, id := range selected {
		s.selection[id] = struct{}{}
	}
	return s
}

// Apply moves the state to new criteria and sort.
// The selection survives only if neither changed; reports whether it was cleared.
func (s *SearchState) Apply(c FilterCriteria, st SortState) bool {
	changed := !s.criteria.Equal(c) || !s.sort.Equal(st)
	s.criteria, s.sort = c, st
	if !changed {
		return false
	}
	cleared := len(s.selection) > 0
	s.clearSelection()
	return cleared
}

// IsSelected reports whether id is selected
func (s *SearchState) IsSelected(id string) bool {
	_, ok := s.selection[id]
	return ok
}

// Selected returns selected ids in the order of visible
func (s *SearchState) Selected(visible []Showtime) []string {
	ids := make([]string, 0, len(s.selection))
	for _, st := range visible {
		if s.IsSelected(st.ID) {
			ids = append(ids, st.ID)
		}
	}
	return ids
}

func (s *SearchState) clearSelection() {
	s.selection = make(map[string]struct{})
}
