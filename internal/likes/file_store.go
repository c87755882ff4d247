package likes

import (
	"encoding/json"
	"os"
	"sort"
	"sync"
)

// FileStore keeps like counts in memory and mirrors them to a JSON file.
// A missing or unreadable file means an empty store.
type FileStore struct {
	mu       sync.RWMutex
	records  map[string]int
	filePath string
}

// NewFileStore creates a file-backed like store, loading existing data
// from filePath when present. An empty filePath disables persistence.
func NewFileStore(filePath string) *FileStore {
	s := &FileStore{
		records:  make(map[string]int),
		filePath: filePath,
	}

	s.load()

	return s
}

// List returns all records ordered by id.
func (s *FileStore) List() ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.records))
	for id, likes := range s.records {
		out = append(out, Record{ID: id, Likes: likes})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (s *FileStore) Get(id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	likes, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &Record{ID: id, Likes: likes}, nil
}

// Create registers an artwork with zero likes.
func (s *FileStore) Create(id string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; ok {
		return nil, ErrExists
	}

	s.records[id] = 0
	s.save()

	return &Record{ID: id, Likes: 0}, nil
}

func (s *FileStore) Increment(id string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	likes, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}

	likes++
	s.records[id] = likes
	s.save()

	return &Record{ID: id, Likes: likes}, nil
}

// Decrement lowers the count by one, flooring at zero. Decrementing a
// zero count is a no-op that still succeeds.
func (s *FileStore) Decrement(id string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	likes, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}

	if likes > 0 {
		likes--
		s.records[id] = likes
		s.save()
	}

	return &Record{ID: id, Likes: likes}, nil
}

// Count returns the number of registered artworks.
func (s *FileStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) load() {
	if s.filePath == "" {
		return
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return // File doesn't exist yet
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return
	}

	for _, r := range records {
		if r.ID == "" || r.Likes < 0 {
			continue
		}
		s.records[r.ID] = r.Likes
	}
}

func (s *FileStore) save() {
	if s.filePath == "" {
		return
	}

	records := make([]Record, 0, len(s.records))
	for id, likes := range s.records {
		records = append(records, Record{ID: id, Likes: likes})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return
	}

	os.WriteFile(s.filePath, data, 0644)
}
