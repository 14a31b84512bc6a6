package core

import (
	"context"

	"github.com/aretw0/quire/pkg/order"
)

// NoteRepository defines the contract for the notes of a workspace directory.
// Directory arguments name a workspace directory; path arguments name a note file.
type NoteRepository interface {
	// EnsureDir creates the directory if it does not exist.
	EnsureDir(ctx context.Context, dir string) error

	// List returns the notes of dir in display order. A missing dir is empty.
	List(ctx context.Context, dir string) ([]Note, error)

	// Read returns the content of a note.
	Read(ctx context.Context, path string) (string, error)

	// Write saves content and renames the note when its title changed.
	// It returns the path the note ends up at.
	Write(ctx context.Context, path, content string) (string, error)

	// Create adds an empty note at the top of dir and returns its path.
	Create(ctx context.Context, dir string) (string, error)

	// Delete removes a note.
	Delete(ctx context.Context, path string) error

	// Rename gives a note a new stem in the same directory.
	Rename(ctx context.Context, path, newName string) (string, error)

	// PlanReorder computes, without touching the disk, what Reorder would do.
	PlanReorder(ctx context.Context, dir, path string, index int) (order.Plan, error)

	// Reorder moves a note to a display index and returns its new path.
	Reorder(ctx context.Context, dir, path string, index int) (string, error)

	// Migrate renames legacy timestamp-named notes into the numbered scheme.
	// It is best-effort and never fails as a whole.
	Migrate(ctx context.Context, dir string) MigrationReport
}

// Watchable defines an interface for repositories that can report changes.
type Watchable interface {
	// Watch emits events for note files of dir whose names match pattern.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context, dir, pattern string) (<-chan Event, error)
}

// ConfigStore persists the workspace configuration.
type ConfigStore interface {
	// Load returns ErrNotFound when nothing was saved yet.
	Load(ctx context.Context) (WorkspaceConfig, error)
	Save(ctx context.Context, cfg WorkspaceConfig) error
}
