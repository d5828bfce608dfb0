// Package catalog holds the curated learning-resource catalog and the
// matching policy that attaches resources to roadmap topics.
package catalog

import (
	"encoding/json"
	"log/slog"
	"os"
)

// Entry is one curated resource record from the catalog file.
type Entry struct {
	Type       string   `json:"type"`
	Title      string   `json:"title"`
	URL        string   `json:"url"`
	Categories []string `json:"categories"`
	Level      string   `json:"level"`
	LevelNote  string   `json:"level_note"`
}

// Catalog is the static resource collection, read-only after load.
type Catalog struct {
	entries []Entry
}

// New creates a Catalog from a fixed entry list. Used by tests and the
// empty-catalog degradation path.
func New(entries []Entry) Catalog {
	return Catalog{entries: entries}
}

// Len reports the number of loaded entries.
func (c Catalog) Len() int {
	return len(c.entries)
}

// Load reads the catalog file at path. A missing or corrupt file degrades to
// an empty catalog; a malformed individual record is skipped. Load never
// fails the process.
func Load(path string, logger *slog.Logger) Catalog {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("resource catalog not readable, using empty catalog", "path", path, "error", err)
		return Catalog{}
	}

	// Decode record-by-record so one malformed entry doesn't discard the rest.
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn("resource catalog corrupt, using empty catalog", "path", path, "error", err)
		return Catalog{}
	}

	entries := make([]Entry, 0, len(raw))
	for i, r := range raw {
		var e Entry
		if err := json.Unmarshal(r, &e); err != nil {
			logger.Warn("skipping malformed catalog entry", "path", path, "index", i, "error", err)
			continue
		}
		entries = append(entries, e)
	}

	logger.Info("resource catalog loaded", "path", path, "entries", len(entries))
	return Catalog{entries: entries}
}
