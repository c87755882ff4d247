// Package prefs persists per-visitor gallery preferences: the liked-id
// set, the recently viewed ring, and the theme choice.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultTheme = "light"

	// RecentCapacity bounds the recently-viewed ring.
	RecentCapacity = 3
)

// LikedSet is the typed set of artwork ids this visitor has liked.
type LikedSet struct {
	ids map[string]bool
}

// NewLikedSet builds a set from ids, ignoring empties.
func NewLikedSet(ids ...string) *LikedSet {
	s := &LikedSet{ids: make(map[string]bool, len(ids))}
	for _, id := range ids {
		if id != "" {
			s.ids[id] = true
		}
	}
	return s
}

func (s *LikedSet) Has(id string) bool { return s.ids[id] }
func (s *LikedSet) Add(id string)      { s.ids[id] = true }
func (s *LikedSet) Remove(id string)   { delete(s.ids, id) }
func (s *LikedSet) Len() int           { return len(s.ids) }

// List returns the ids in sorted order, the set's serialized form.
func (s *LikedSet) List() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// RecentArt is one recently-viewed entry.
type RecentArt struct {
	File   string `toml:"file"`
	Title  string `toml:"title"`
	Author string `toml:"author"`
}

// Recent is a small ring of the last viewed artworks, most recent last.
// Re-viewing an artwork moves it to the back without duplication.
type Recent struct {
	items []RecentArt
}

func NewRecent(items ...RecentArt) *Recent {
	r := &Recent{}
	for _, it := range items {
		r.Add(it)
	}
	return r
}

// Add records a view, evicting the oldest entry past capacity.
func (r *Recent) Add(a RecentArt) {
	if a.File == "" {
		return
	}
	kept := r.items[:0]
	for _, it := range r.items {
		if it.File != a.File {
			kept = append(kept, it)
		}
	}
	r.items = append(kept, a)
	for len(r.items) > RecentCapacity {
		r.items = r.items[1:]
	}
}

// Items returns the ring oldest-first.
func (r *Recent) Items() []RecentArt {
	out := make([]RecentArt, len(r.items))
	copy(out, r.items)
	return out
}

// NewestFirst returns the ring in display order.
func (r *Recent) NewestFirst() []RecentArt {
	out := make([]RecentArt, len(r.items))
	for i, it := range r.items {
		out[len(r.items)-1-i] = it
	}
	return out
}

func (r *Recent) Len() int { return len(r.items) }

// Prefs holds everything the gallery remembers about a visitor. Sort
// is the last chosen sort mode by name; empty means unsorted.
type Prefs struct {
	Theme  string
	Sort   string
	Liked  *LikedSet
	Recent *Recent
}

// Default returns empty preferences with the light theme.
func Default() *Prefs {
	return &Prefs{
		Theme:  defaultTheme,
		Liked:  NewLikedSet(),
		Recent: NewRecent(),
	}
}

// prefsFile is the on-disk TOML shape.
type prefsFile struct {
	Theme  string      `toml:"theme"`
	Sort   string      `toml:"sort,omitempty"`
	Liked  []string    `toml:"liked"`
	Recent []RecentArt `toml:"recent"`
}

// Load reads preferences from path, falling back to defaults when the
// file is missing or unreadable.
func Load(path string) (*Prefs, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, nil // Graceful degradation
	}

	var file prefsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return Default(), nil // Graceful degradation
	}

	if strings.TrimSpace(file.Theme) != "" {
		p.Theme = file.Theme
	}
	p.Sort = file.Sort
	p.Liked = NewLikedSet(file.Liked...)
	p.Recent = NewRecent(file.Recent...)

	return p, nil
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p *Prefs) error {
	file := prefsFile{
		Theme:  p.Theme,
		Sort:   p.Sort,
		Liked:  p.Liked.List(),
		Recent: p.Recent.Items(),
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}
