package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/aretw0/quire/pkg/order"
)

// ServiceConfig wires a Service.
type ServiceConfig struct {
	NotesRoot  string
	Repository NoteRepository
	Store      ConfigStore
	Config     WorkspaceConfig
	Logger     *slog.Logger
}

// Service handles the business logic for notes and workspaces.
//
// The workspace configuration is guarded by mu. Note operations hold the lock
// only while resolving the active directory and release it before touching
// the filesystem.
type Service struct {
	mu     sync.Mutex
	config WorkspaceConfig

	root   string
	repo   NoteRepository
	store  ConfigStore
	logger *slog.Logger
}

// NewService creates a new Service.
func NewService(sc ServiceConfig) (*Service, error) {
	if sc.Repository == nil {
		return nil, errors.New("service requires a note repository")
	}
	if sc.Store == nil {
		return nil, errors.New("service requires a config store")
	}
	if err := sc.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workspace config: %w", err)
	}
	logger := sc.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Service{
		config: sc.Config.Clone(),
		root:   sc.NotesRoot,
		repo:   sc.Repository,
		store:  sc.Store,
		logger: logger,
	}, nil
}

// NotesRoot returns the directory holding every workspace directory.
func (s *Service) NotesRoot() string {
	return s.root
}

func (s *Service) activeDir() string {
	s.mu.Lock()
	id := s.config.ActiveWorkspaceID
	s.mu.Unlock()

	return WorkspaceDir(s.root, id)
}

// --- Notes ---

// EnsureNotesDir creates the active workspace directory and returns it.
func (s *Service) EnsureNotesDir(ctx context.Context) (string, error) {
	dir := s.activeDir()
	if err := s.repo.EnsureDir(ctx, dir); err != nil {
		return "", err
	}
	return dir, nil
}

// ListNotes lists the active workspace in display order.
func (s *Service) ListNotes(ctx context.Context) ([]Note, error) {
	return s.repo.List(ctx, s.activeDir())
}

// ReadNote returns the content of a note.
func (s *Service) ReadNote(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: note path cannot be empty", ErrInvalidInput)
	}
	return s.repo.Read(ctx, path)
}

// WriteNote saves a note and returns its possibly new path.
func (s *Service) WriteNote(ctx context.Context, path, content string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: note path cannot be empty", ErrInvalidInput)
	}
	return s.repo.Write(ctx, path, content)
}

// CreateNote adds an untitled note at the top of the active workspace.
func (s *Service) CreateNote(ctx context.Context) (string, error) {
	return s.repo.Create(ctx, s.activeDir())
}

// DeleteNote removes a note.
func (s *Service) DeleteNote(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("%w: note path cannot be empty", ErrInvalidInput)
	}
	return s.repo.Delete(ctx, path)
}

// RenameNote renames a note within its directory.
func (s *Service) RenameNote(ctx context.Context, path, newName string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: note path cannot be empty", ErrInvalidInput)
	}
	return s.repo.Rename(ctx, path, newName)
}

// ReorderNote moves a note of the active workspace to a display index.
func (s *Service) ReorderNote(ctx context.Context, path string, index int) (string, error) {
	return s.repo.Reorder(ctx, s.activeDir(), path, index)
}

// PlanReorder reports what ReorderNote would do without doing it.
func (s *Service) PlanReorder(ctx context.Context, path string, index int) (order.Plan, error) {
	return s.repo.PlanReorder(ctx, s.activeDir(), path, index)
}

// Migrate runs the legacy migration on the active workspace.
func (s *Service) Migrate(ctx context.Context) MigrationReport {
	return s.repo.Migrate(ctx, s.activeDir())
}

// MigrateAll runs the legacy migration on every workspace directory.
func (s *Service) MigrateAll(ctx context.Context) map[string]MigrationReport {
	s.mu.Lock()
	ids := make([]string, 0, len(s.config.Workspaces))
	for _, w := range s.config.Workspaces {
		ids = append(ids, w.ID)
	}
	s.mu.Unlock()

	reports := make(map[string]MigrationReport, len(ids))
	for _, id := range ids {
		reports[id] = s.repo.Migrate(ctx, WorkspaceDir(s.root, id))
	}
	return reports
}

// Watch observes note changes in the active workspace if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx, s.activeDir(), pattern)
}

// --- Workspaces ---

// Workspaces returns a snapshot of the workspace configuration.
func (s *Service) Workspaces() WorkspaceConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config.Clone()
}

// ActiveWorkspace returns the active workspace.
func (s *Service) ActiveWorkspace() Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, _ := s.config.Active()
	return ws
}

// SetActiveWorkspace switches the active workspace.
func (s *Service) SetActiveWorkspace(ctx context.Context, id string) error {
	return s.mutate(ctx, func(c *WorkspaceConfig) error {
		return c.SetActive(id)
	})
}

// CreateWorkspace creates a workspace and its directory.
func (s *Service) CreateWorkspace(ctx context.Context, name string) (Workspace, error) {
	id, err := WorkspaceID(name)
	if err != nil {
		return Workspace{}, err
	}
	if _, exists := s.Workspaces().Find(id); exists {
		return Workspace{}, fmt.Errorf("workspace %q: %w", id, ErrAlreadyExists)
	}
	if err := s.repo.EnsureDir(ctx, WorkspaceDir(s.root, id)); err != nil {
		return Workspace{}, err
	}

	var created Workspace
	err = s.mutate(ctx, func(c *WorkspaceConfig) error {
		created, err = c.Add(name)
		return err
	})
	if err != nil {
		return Workspace{}, err
	}

	s.logger.Info("workspace created", "id", created.ID, "shortcut", created.Shortcut)
	return created, nil
}

// DeleteWorkspace removes a workspace from the configuration. Its directory
// and notes are left on disk.
func (s *Service) DeleteWorkspace(ctx context.Context, id string) error {
	return s.mutate(ctx, func(c *WorkspaceConfig) error {
		return c.Remove(id)
	})
}

// RenameWorkspace changes the display name of a workspace.
func (s *Service) RenameWorkspace(ctx context.Context, id, name string) (Workspace, error) {
	var renamed Workspace
	err := s.mutate(ctx, func(c *WorkspaceConfig) error {
		var err error
		renamed, err = c.Rename(id, name)
		return err
	})
	return renamed, err
}

// mutate applies fn to a copy of the configuration, saves the copy and only
// then makes it current, so a failed save leaves the service unchanged.
func (s *Service) mutate(ctx context.Context, fn func(*WorkspaceConfig) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.config.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save workspace config: %w", err)
	}
	s.config = next
	return nil
}
