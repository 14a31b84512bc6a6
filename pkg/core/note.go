// Note is the central entity of the domain.
package core

import "time"

// Note is one Markdown file of a workspace as seen by a listing.
// Key is decoded from the filename on every read; Numbered is false for files
// that carry no ordering key (foreign or not yet migrated).
type Note struct {
	Name     string    `json:"name" yaml:"name"`
	Path     string    `json:"path" yaml:"path"`
	Key      uint64    `json:"key,omitempty" yaml:"key,omitempty"`
	Numbered bool      `json:"numbered" yaml:"numbered"`
	Slug     string    `json:"slug,omitempty" yaml:"slug,omitempty"`
	Title    string    `json:"title" yaml:"title"`
	Modified time.Time `json:"modified" yaml:"modified"`
}

// MigrationReport summarises a legacy migration pass.
// Renamed maps old paths to new ones; Skipped lists files left in place.
type MigrationReport struct {
	Renamed map[string]string `json:"renamed" yaml:"renamed"`
	Skipped []string          `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// EventType represents the type of change in a workspace directory.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
	EventRename EventType = "RENAME"
)

// Event represents a change to a note file.
type Event struct {
	Type      EventType `json:"type" yaml:"type"`
	Path      string    `json:"path" yaml:"path"`
	Timestamp int64     `json:"timestamp" yaml:"timestamp"` // Unix timestamp
}

func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}
