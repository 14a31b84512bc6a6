package platform

import (
	"log/slog"

	"github.com/aretw0/quire/pkg/core"
)

// options holds the internal configuration for the quire service.
type options struct {
	logger      *slog.Logger
	notesRoot   string
	configPath  string
	readOnly    bool
	eventBuffer int
	store       core.ConfigStore
	repository  core.NoteRepository
	migrate     bool
}

// Option defines a functional option for configuring quire.
type Option func(*options)

// defaultOptions returns the default configuration. Paths left empty are
// resolved by New.
func defaultOptions() *options {
	return &options{migrate: true}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithNotesRoot sets the directory holding one subdirectory per workspace.
// Defaults to DefaultNotesRoot().
func WithNotesRoot(path string) Option {
	return func(o *options) {
		o.notesRoot = path
	}
}

// WithConfigPath sets the workspace config file. A ".yaml" or ".yml"
// extension selects YAML. Defaults to DefaultConfigPath().
func WithConfigPath(path string) Option {
	return func(o *options) {
		o.configPath = path
	}
}

// WithReadOnly enables read-only mode.
// In this mode:
// 1. Write, Create, Delete, Rename and Reorder return ErrReadOnly.
// 2. Directories are not created and legacy notes are not migrated.
// 3. The workspace config is never written.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithEventBuffer sets the size of the watcher event channel.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithConfigStore replaces the file-backed workspace config store.
func WithConfigStore(store core.ConfigStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithRepository allows injecting a custom note repository (e.g. a mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.NoteRepository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithMigrateOnStart controls whether New renames legacy timestamp notes in
// every workspace. Enabled by default.
func WithMigrateOnStart(enabled bool) Option {
	return func(o *options) {
		o.migrate = enabled
	}
}
