package quire

import (
	"log/slog"

	"github.com/aretw0/quire/internal/platform"
	"github.com/aretw0/quire/pkg/core"
)

// --- Types ---

// Service is the note and workspace service returned by New.
type Service = core.Service

// Note describes one note file.
type Note = core.Note

// Workspace is a named directory of notes.
type Workspace = core.Workspace

// Event is a change notification emitted by Service.Watch.
type Event = core.Event

// --- Errors ---

var (
	ErrNotFound      = core.ErrNotFound
	ErrAlreadyExists = core.ErrAlreadyExists
	ErrInvalidInput  = core.ErrInvalidInput
	ErrLastWorkspace = core.ErrLastWorkspace
	ErrReadOnly      = core.ErrReadOnly
)

// --- Configuration ---

// Option defines a functional option for configuring quire.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithNotesRoot sets the directory holding the workspace directories.
func WithNotesRoot(path string) Option {
	return platform.WithNotesRoot(path)
}

// WithConfigPath sets the workspace config file.
func WithConfigPath(path string) Option {
	return platform.WithConfigPath(path)
}

// WithReadOnly enables read-only mode.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithEventBuffer sets the size of the watcher event channel.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithConfigStore replaces the file-backed workspace config store.
func WithConfigStore(store core.ConfigStore) Option {
	return platform.WithConfigStore(store)
}

// WithRepository allows injecting a custom note repository.
func WithRepository(repo core.NoteRepository) Option {
	return platform.WithRepository(repo)
}

// WithMigrateOnStart controls whether New migrates legacy notes.
func WithMigrateOnStart(enabled bool) Option {
	return platform.WithMigrateOnStart(enabled)
}

// --- Factory ---

// New creates a quire Service.
func New(opts ...Option) (*Service, error) {
	return platform.New(opts...)
}

// --- Paths ---

// DefaultNotesRoot returns the notes root used when none is configured.
func DefaultNotesRoot() string {
	return platform.DefaultNotesRoot()
}

// DefaultConfigPath returns the workspace config path used when none is configured.
func DefaultConfigPath() string {
	return platform.DefaultConfigPath()
}
