// Package paging holds the page/perPage arithmetic shared by every table.
package paging

// State tracks where a paginated table is. LastCount is the size of the most
// recent page, used to stop paging forward on endpoints that report no total.
type State struct {
	Page      int
	PerPage   int
	Total     int
	HasTotal  bool
	LastCount int
}

func New(perPage int) State {
	if perPage <= 0 {
		perPage = 10
	}
	return State{Page: 1, PerPage: perPage}
}

func (s State) TotalPages() int {
	if !s.HasTotal || s.PerPage <= 0 {
		return 0
	}
	return (s.Total + s.PerPage - 1) / s.PerPage
}

func (s State) HasPrev() bool {
	return s.Page > 1
}

func (s State) HasNext() bool {
	if s.HasTotal {
		return s.Page < s.TotalPages()
	}
	return s.LastCount == s.PerPage
}

// SetPerPage changes the page size and always resets to the first page.
func (s *State) SetPerPage(perPage int) {
	if perPage <= 0 {
		return
	}
	s.PerPage = perPage
	s.Page = 1
}

// Apply records the outcome of a load.
func (s *State) Apply(count, total int, hasTotal bool) {
	s.LastCount = count
	s.Total = total
	s.HasTotal = hasTotal
}

func (s *State) Next() bool {
	if !s.HasNext() {
		return false
	}
	s.Page++
	return true
}

func (s *State) Prev() bool {
	if !s.HasPrev() {
		return false
	}
	s.Page--
	return true
}
