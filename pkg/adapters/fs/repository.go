// Package fs is the filesystem adapter: one directory per workspace, one
// Markdown file per note, with the display order encoded in the filenames.
package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/naming"
)

// DefaultEventBuffer is the watcher channel size used when Config leaves it zero.
const DefaultEventBuffer = 100

// emptyNote is the body of a freshly created note.
const emptyNote = "\n"

// Repository implements core.NoteRepository on the local filesystem.
type Repository struct {
	config Config
	logger *slog.Logger

	mu       sync.RWMutex
	watchers int
	active   map[string]*Transaction
	lastTx   *TransactionSummary
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Logger      *slog.Logger
	ReadOnly    bool
	EventBuffer int // Watch channel size; zero means DefaultEventBuffer.
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = DefaultEventBuffer
	}
	return &Repository{
		config: config,
		logger: logger,
		active: make(map[string]*Transaction),
	}
}

var _ core.NoteRepository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)

// EnsureDir creates a workspace directory.
func (r *Repository) EnsureDir(ctx context.Context, dir string) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create notes directory: %w", err)
	}
	return nil
}

// Read returns the content of a note.
func (r *Repository) Read(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", wrapNotFound(path, err)
	}
	return string(data), nil
}

// Write saves content atomically, then renames a numbered note when the slug
// derived from its title changed.
//
// The rename is best-effort: when the target name is taken, or the rename
// fails, the note keeps its old name and the save still succeeds. Notes
// without an ordering key are never renamed.
func (r *Repository) Write(ctx context.Context, path, content string) (string, error) {
	if r.config.ReadOnly {
		return "", core.ErrReadOnly
	}
	if err := writeFileAtomic(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write note: %w", err)
	}

	stem := naming.Stem(path)
	key, ok := naming.ParseKey(stem)
	if !ok {
		return path, nil
	}

	newStem := naming.FormatStem(key, naming.SlugOrUntitled(naming.ParseTitle(content)))
	if newStem == stem {
		return path, nil
	}

	newPath := filepath.Join(filepath.Dir(path), newStem+naming.Ext)
	if taken(path, newPath) {
		r.logger.Debug("title rename skipped, name taken", "path", path, "target", newPath)
		return path, nil
	}
	if err := os.Rename(path, newPath); err != nil {
		r.logger.Warn("title rename failed", "path", path, "target", newPath, "error", err)
		return path, nil
	}

	r.logger.Debug("note renamed from title", "from", path, "to", newPath)
	return newPath, nil
}

// Create writes an empty note numbered above every existing one.
func (r *Repository) Create(ctx context.Context, dir string) (string, error) {
	if err := r.EnsureDir(ctx, dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, naming.FormatFilename(NextNumber(dir), naming.Untitled))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("note %s: %w", path, core.ErrAlreadyExists)
		}
		return "", fmt.Errorf("failed to create note: %w", err)
	}
	if _, err := f.WriteString(emptyNote); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to create note: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to create note: %w", err)
	}

	r.logger.Debug("note created", "path", path)
	return path, nil
}

// Delete removes a note.
func (r *Repository) Delete(ctx context.Context, path string) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := os.Remove(path); err != nil {
		return wrapNotFound(path, err)
	}
	return nil
}

// Rename gives a note a new stem in its directory. It refuses to replace an
// existing file.
func (r *Repository) Rename(ctx context.Context, path, newName string) (string, error) {
	if r.config.ReadOnly {
		return "", core.ErrReadOnly
	}
	newName = strings.TrimSuffix(strings.TrimSpace(newName), naming.Ext)
	if newName == "" || newName == "." || newName == ".." || strings.ContainsAny(newName, `/\`) {
		return "", fmt.Errorf("%w: note name %q", core.ErrInvalidInput, newName)
	}

	if _, err := os.Lstat(path); err != nil {
		return "", wrapNotFound(path, err)
	}

	newPath := filepath.Join(filepath.Dir(path), newName+naming.Ext)
	if filepath.Clean(newPath) == filepath.Clean(path) {
		return path, nil
	}
	if _, err := os.Lstat(newPath); err == nil {
		return "", fmt.Errorf("a note named %q: %w", newName, core.ErrAlreadyExists)
	}

	if err := os.Rename(path, newPath); err != nil {
		return "", wrapNotFound(path, err)
	}
	return newPath, nil
}

// taken reports whether target exists and is a different file than path.
func taken(path, target string) bool {
	ti, err := os.Stat(target)
	if err != nil {
		return false
	}
	pi, err := os.Stat(path)
	if err != nil {
		return true
	}
	return !os.SameFile(pi, ti)
}

func wrapNotFound(path string, err error) error {
	if os.IsNotExist(err) {
		return fmt.Errorf("note %s: %w", path, core.ErrNotFound)
	}
	return fmt.Errorf("note %s: %w", path, err)
}
