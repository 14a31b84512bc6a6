package core

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/aretw0/quire/pkg/naming"
)

// DefaultWorkspaceID names the workspace created on first run.
const DefaultWorkspaceID = "Personal"

// Workspace is a named ordering namespace backed by one directory.
// ID is the directory name and never changes; Name is for display.
type Workspace struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Shortcut string `json:"shortcut,omitempty" yaml:"shortcut,omitempty"`
}

// WorkspaceConfig is the durable record of all workspaces and the active one.
type WorkspaceConfig struct {
	Workspaces        []Workspace `json:"workspaces" yaml:"workspaces"`
	ActiveWorkspaceID string      `json:"active_workspace_id" yaml:"active_workspace_id"`
}

// DefaultConfig returns the configuration used on first run.
func DefaultConfig() WorkspaceConfig {
	return WorkspaceConfig{
		Workspaces: []Workspace{{
			ID:       DefaultWorkspaceID,
			Name:     DefaultWorkspaceID,
			Shortcut: "1",
		}},
		ActiveWorkspaceID: DefaultWorkspaceID,
	}
}

// WorkspaceDir maps a workspace ID to its directory under the notes root.
func WorkspaceDir(root, id string) string {
	return filepath.Join(root, id)
}

// Clone returns a deep copy.
func (c WorkspaceConfig) Clone() WorkspaceConfig {
	return WorkspaceConfig{
		Workspaces:        slices.Clone(c.Workspaces),
		ActiveWorkspaceID: c.ActiveWorkspaceID,
	}
}

// Validate checks the invariants: at least one workspace, unique IDs and an
// active ID that references one of them.
func (c WorkspaceConfig) Validate() error {
	if len(c.Workspaces) == 0 {
		return fmt.Errorf("%w: no workspaces configured", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(c.Workspaces))
	for _, w := range c.Workspaces {
		if w.ID == "" {
			return fmt.Errorf("%w: workspace with empty id", ErrInvalidInput)
		}
		if seen[w.ID] {
			return fmt.Errorf("%w: duplicate workspace %q", ErrInvalidInput, w.ID)
		}
		seen[w.ID] = true
	}
	if !seen[c.ActiveWorkspaceID] {
		return fmt.Errorf("%w: active workspace %q", ErrNotFound, c.ActiveWorkspaceID)
	}
	return nil
}

func (c *WorkspaceConfig) index(id string) int {
	return slices.IndexFunc(c.Workspaces, func(w Workspace) bool { return w.ID == id })
}

// Find returns the workspace with the given ID.
func (c WorkspaceConfig) Find(id string) (Workspace, bool) {
	if i := c.index(id); i >= 0 {
		return c.Workspaces[i], true
	}
	return Workspace{}, false
}

// Active returns the active workspace.
func (c WorkspaceConfig) Active() (Workspace, bool) {
	return c.Find(c.ActiveWorkspaceID)
}

// WorkspaceID derives the ID of a workspace from its display name.
func WorkspaceID(name string) (string, error) {
	id := naming.Slugify(name)
	if id == "" {
		return "", fmt.Errorf("%w: workspace name %q", ErrInvalidInput, name)
	}
	return id, nil
}

// Add appends a workspace named name. The first free shortcut among "1".."9"
// is assigned; when all are taken the workspace has none.
func (c *WorkspaceConfig) Add(name string) (Workspace, error) {
	id, err := WorkspaceID(name)
	if err != nil {
		return Workspace{}, err
	}
	if c.index(id) >= 0 {
		return Workspace{}, fmt.Errorf("workspace %q: %w", id, ErrAlreadyExists)
	}

	ws := Workspace{ID: id, Name: name, Shortcut: c.nextShortcut()}
	c.Workspaces = append(c.Workspaces, ws)
	return ws, nil
}

func (c *WorkspaceConfig) nextShortcut() string {
	for n := 1; n <= 9; n++ {
		s := strconv.Itoa(n)
		if !slices.ContainsFunc(c.Workspaces, func(w Workspace) bool { return w.Shortcut == s }) {
			return s
		}
	}
	return ""
}

// Remove deletes a workspace. The last workspace cannot be removed. If the
// removed workspace was active, the first remaining one becomes active.
func (c *WorkspaceConfig) Remove(id string) error {
	if len(c.Workspaces) <= 1 {
		return ErrLastWorkspace
	}
	i := c.index(id)
	if i < 0 {
		return fmt.Errorf("workspace %q: %w", id, ErrNotFound)
	}

	c.Workspaces = slices.Delete(c.Workspaces, i, i+1)
	if c.ActiveWorkspaceID == id {
		c.ActiveWorkspaceID = c.Workspaces[0].ID
	}
	return nil
}

// Rename changes the display name of a workspace. Its ID stays the same.
func (c *WorkspaceConfig) Rename(id, name string) (Workspace, error) {
	i := c.index(id)
	if i < 0 {
		return Workspace{}, fmt.Errorf("workspace %q: %w", id, ErrNotFound)
	}
	c.Workspaces[i].Name = name
	return c.Workspaces[i], nil
}

// SetActive makes id the active workspace.
func (c *WorkspaceConfig) SetActive(id string) error {
	if c.index(id) < 0 {
		return fmt.Errorf("workspace %q: %w", id, ErrNotFound)
	}
	c.ActiveWorkspaceID = id
	return nil
}
