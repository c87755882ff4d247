package museum

import (
	"context"
	"log"

	"github.com/prasanthprabakaran/css-art-museum/internal/likes"
	"github.com/prasanthprabakaran/css-art-museum/internal/manifest"
)

// LikedSet is the browser-local record of which artworks this visitor
// has liked. The like service keeps only anonymous aggregate counters,
// so the per-visitor liked state never comes from the server.
type LikedSet interface {
	Has(id string) bool
	Add(id string)
	Remove(id string)
}

// Merge joins the local manifest with remote like records by id. Every
// manifest entry survives; ids the service doesn't know yet get a zero
// count, and remote orphans are dropped from display.
func Merge(arts []manifest.Artwork, records []likes.Record) []Art {
	counts := make(map[string]int, len(records))
	for _, r := range records {
		counts[r.ID] = r.Likes
	}

	merged := make([]Art, 0, len(arts))
	for _, a := range arts {
		merged = append(merged, Art{Artwork: a, Likes: counts[a.File]})
	}
	return merged
}

// LoadState fetches remote like counts and builds gallery state from
// the merged list. A failed fetch degrades to all-zero counts so the
// gallery still renders.
func LoadState(ctx context.Context, client *Client, arts []manifest.Artwork, pageSize int) *State {
	records, err := client.ListArtworks(ctx)
	if err != nil {
		log.Printf("Warning: could not fetch like counts: %v", err)
		records = nil
	}
	return NewState(Merge(arts, records), pageSize)
}

// SyncRegistrations registers every manifest id the like service
// doesn't know yet. 409 conflicts are benign (a concurrent first load
// may have won the race) and per-id failures are logged, not surfaced.
func SyncRegistrations(ctx context.Context, client *Client, arts []manifest.Artwork) error {
	records, err := client.ListArtworks(ctx)
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(records))
	for _, r := range records {
		known[r.ID] = true
	}

	for _, a := range arts {
		if known[a.File] {
			continue
		}
		if err := client.Register(ctx, a.File); err != nil {
			log.Printf("Warning: could not register artwork %s: %v", a.File, err)
		}
	}

	return nil
}

// Session wires the gallery state to the like service and the local
// liked set for one page load.
type Session struct {
	client *Client
	state  *State
	liked  LikedSet
}

func NewSession(client *Client, state *State, liked LikedSet) *Session {
	return &Session{client: client, state: state, liked: liked}
}

func (s *Session) State() *State {
	return s.state
}

// IsLiked reports this visitor's liked state for an artwork.
func (s *Session) IsLiked(id string) bool {
	return s.liked.Has(id)
}

// ToggleResult reports the outcome of a like toggle. Count is the
// displayed count after the toggle: the server's authoritative value on
// success, the optimistic local value otherwise.
type ToggleResult struct {
	ID    string
	Liked bool
	Count int
	Err   error
}

// BeginToggle applies the optimistic half of a like toggle: the liked
// set flips and the displayed count moves by one (floored at zero)
// before any network traffic. Runs on the caller's goroutine; the
// returned result feeds CompleteToggle.
func (s *Session) BeginToggle(id string) ToggleResult {
	current := s.state.LikeCount(id)

	if s.liked.Has(id) {
		s.liked.Remove(id)
		optimistic := current - 1
		if optimistic < 0 {
			optimistic = 0
		}
		s.state.SetLikeCount(id, optimistic)
		return ToggleResult{ID: id, Liked: false, Count: optimistic}
	}

	s.liked.Add(id)
	s.state.SetLikeCount(id, current+1)
	return ToggleResult{ID: id, Liked: true, Count: current + 1}
}

// CompleteToggle performs the service round-trip for a toggle already
// applied by BeginToggle. It touches neither gallery state nor the
// liked set, so it may run off the render loop; the caller applies the
// returned Count. A successful response carries the server's value
// (which absorbs concurrent likes from other visitors). On failure the
// liked flip stands and a single authoritative fetch reconciles the
// count when it can.
func (s *Session) CompleteToggle(ctx context.Context, toggle ToggleResult) ToggleResult {
	var (
		record *likes.Record
		err    error
	)
	if toggle.Liked {
		record, err = s.client.Like(ctx, toggle.ID)
	} else {
		record, err = s.client.Unlike(ctx, toggle.ID)
	}

	if err == nil && record != nil {
		return ToggleResult{ID: toggle.ID, Liked: toggle.Liked, Count: record.Likes}
	}

	log.Printf("Warning: like toggle for %s failed: %v", toggle.ID, err)

	// Follow-up authoritative fetch so a failed round-trip doesn't leave
	// a count the server never saw.
	if fetched, fetchErr := s.client.GetArtwork(ctx, toggle.ID); fetchErr == nil && fetched != nil {
		return ToggleResult{ID: toggle.ID, Liked: toggle.Liked, Count: fetched.Likes, Err: err}
	}

	return ToggleResult{ID: toggle.ID, Liked: toggle.Liked, Count: toggle.Count, Err: err}
}

// ToggleLike runs both halves of a toggle on the calling goroutine and
// applies the reconciled count.
func (s *Session) ToggleLike(ctx context.Context, id string) ToggleResult {
	res := s.CompleteToggle(ctx, s.BeginToggle(id))
	s.state.SetLikeCount(id, res.Count)
	return res
}
