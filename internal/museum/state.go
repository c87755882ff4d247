package museum

import (
	"sort"
	"strings"

	"github.com/prasanthprabakaran/css-art-museum/internal/manifest"
)

// Art is one gallery item merged with its like count.
type Art struct {
	manifest.Artwork
	Likes int
}

// SortMode selects the gallery ordering.
type SortMode int

const (
	SortUnsorted SortMode = iota
	SortNewest
	SortOldest
	SortMostLiked
	SortLeastLiked
)

var sortModeNames = map[SortMode]string{
	SortUnsorted:   "unsorted",
	SortNewest:     "newest",
	SortOldest:     "oldest",
	SortMostLiked:  "most-liked",
	SortLeastLiked: "least-liked",
}

func (m SortMode) String() string {
	if name, ok := sortModeNames[m]; ok {
		return name
	}
	return "unsorted"
}

// ParseSortMode maps a mode name to its SortMode, defaulting to unsorted.
func ParseSortMode(name string) SortMode {
	for mode, n := range sortModeNames {
		if n == name {
			return mode
		}
	}
	return SortUnsorted
}

// DefaultPageSize is the number of artworks shown per gallery page.
const DefaultPageSize = 24

// Ellipsis is the collapsed-range marker returned by PageNumbers.
const Ellipsis = -1

// State owns the visible-gallery computation: the full merged artwork
// list filtered by the search query, ordered by the sort mode, and
// windowed onto the current page. It replaces the ambient globals of
// the original site with one explicit object.
type State struct {
	allItems    []Art
	visible     []Art
	query       string
	sortMode    SortMode
	currentPage int
	pageSize    int
}

// NewState creates gallery state over the merged artwork list. A
// non-positive pageSize falls back to DefaultPageSize.
func NewState(items []Art, pageSize int) *State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	s := &State{
		allItems:    items,
		sortMode:    SortUnsorted,
		currentPage: 1,
		pageSize:    pageSize,
	}
	s.recompute()
	return s
}

func (s *State) Query() string     { return s.query }
func (s *State) Sort() SortMode    { return s.sortMode }
func (s *State) CurrentPage() int  { return s.currentPage }
func (s *State) PageSize() int     { return s.pageSize }
func (s *State) TotalItems() int   { return len(s.allItems) }
func (s *State) VisibleCount() int { return len(s.visible) }

// TotalPages is always at least 1, even for an empty visible list, so
// the UI never shows "page 0 of 0".
func (s *State) TotalPages() int {
	pages := (len(s.visible) + s.pageSize - 1) / s.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// SetQuery updates the search filter and resets to page 1.
func (s *State) SetQuery(query string) {
	s.query = query
	s.currentPage = 1
	s.recompute()
}

// SetSort updates the sort mode and resets to page 1.
func (s *State) SetSort(mode SortMode) {
	s.sortMode = mode
	s.currentPage = 1
	s.recompute()
}

// GoToPage moves to page n. Out-of-range targets leave the state
// untouched; the return value tells the renderer whether to redraw and
// scroll to top.
func (s *State) GoToPage(n int) bool {
	if n < 1 || n > s.TotalPages() {
		return false
	}
	s.currentPage = n
	return true
}

// NextPage advances one page, clamping at the last page.
func (s *State) NextPage() bool {
	if s.currentPage >= s.TotalPages() {
		return false
	}
	return s.GoToPage(s.currentPage + 1)
}

// PreviousPage steps back one page, clamping at page 1.
func (s *State) PreviousPage() bool {
	if s.currentPage <= 1 {
		return false
	}
	return s.GoToPage(s.currentPage - 1)
}

// CurrentPageItems returns the visible window for the current page. The
// last page may be short; an empty gallery yields an empty slice.
func (s *State) CurrentPageItems() []Art {
	start := (s.currentPage - 1) * s.pageSize
	if start >= len(s.visible) {
		return []Art{}
	}
	end := start + s.pageSize
	if end > len(s.visible) {
		end = len(s.visible)
	}
	return s.visible[start:end]
}

// VisibleItems returns the full filtered and sorted list.
func (s *State) VisibleItems() []Art {
	return s.visible
}

// SetLikeCount overwrites the displayed count for one artwork without
// re-running the sort, so cards keep their position mid-interaction.
func (s *State) SetLikeCount(id string, count int) {
	for i := range s.allItems {
		if s.allItems[i].ID() == id {
			s.allItems[i].Likes = count
			break
		}
	}
	for i := range s.visible {
		if s.visible[i].ID() == id {
			s.visible[i].Likes = count
			break
		}
	}
}

// LikeCount returns the displayed count for one artwork.
func (s *State) LikeCount(id string) int {
	for i := range s.allItems {
		if s.allItems[i].ID() == id {
			return s.allItems[i].Likes
		}
	}
	return 0
}

// PageNumbers returns the page buttons to display, with Ellipsis
// markers where runs are collapsed. All pages are listed when seven or
// fewer exist; otherwise the first page, a one-page window around the
// current page, and the last page are kept.
func (s *State) PageNumbers() []int {
	total := s.TotalPages()
	const maxButtons = 7

	if total <= maxButtons {
		pages := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	pages := []int{1}

	left := s.currentPage - 1
	if left < 2 {
		left = 2
	}
	right := s.currentPage + 1
	if right > total-1 {
		right = total - 1
	}

	if left > 2 {
		pages = append(pages, Ellipsis)
	}
	for i := left; i <= right; i++ {
		pages = append(pages, i)
	}
	if right < total-1 {
		pages = append(pages, Ellipsis)
	}

	return append(pages, total)
}

func (s *State) recompute() {
	s.visible = sortArts(filterArts(s.allItems, s.query), s.sortMode)
}

// filterArts keeps artworks whose title or author contains the
// case-folded, trimmed query. An empty query matches everything.
func filterArts(arts []Art, query string) []Art {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]Art, len(arts))
		copy(out, arts)
		return out
	}

	out := make([]Art, 0, len(arts))
	for _, a := range arts {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Author), q) {
			out = append(out, a)
		}
	}
	return out
}

// sortArts returns a new ordered copy; the input is never mutated and
// ties keep their prior relative order.
func sortArts(arts []Art, mode SortMode) []Art {
	out := make([]Art, len(arts))
	copy(out, arts)

	switch mode {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	case SortMostLiked:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Likes > out[j].Likes })
	case SortLeastLiked:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Likes < out[j].Likes })
	}

	return out
}
