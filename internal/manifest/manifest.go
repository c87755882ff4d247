package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Artwork is one gallery entry from the local manifest. File doubles as
// the stable id used to join against the like service.
type Artwork struct {
	File   string `json:"file"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Date   int64  `json:"date,omitempty"`
}

// ID returns the artwork's stable identifier.
func (a Artwork) ID() string {
	return a.File
}

// Load reads the artwork manifest from a JSON file. Entries without a
// file name are skipped; duplicate ids are an error since the id is the
// join key against the like store.
func Load(path string) ([]Artwork, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return Parse(data)
}

// Parse decodes a manifest from raw JSON.
func Parse(data []byte) ([]Artwork, error) {
	var entries []Artwork
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	seen := make(map[string]bool, len(entries))
	arts := make([]Artwork, 0, len(entries))
	for _, a := range entries {
		if a.File == "" {
			continue
		}
		if seen[a.File] {
			return nil, fmt.Errorf("duplicate artwork id %q", a.File)
		}
		seen[a.File] = true
		arts = append(arts, a)
	}

	return arts, nil
}
