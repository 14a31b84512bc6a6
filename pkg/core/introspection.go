package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	NotesRoot       string `json:"notes_root"`
	ActiveWorkspace string `json:"active_workspace"`
	Workspaces      int    `json:"workspaces"`
	RepositoryType  string `json:"repository_type"`
	Repository      any    `json:"repository,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	repoType := "unknown"
	var repoState any
	if s.repo != nil {
		repoType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
		if intro, ok := s.repo.(introspection.Introspectable); ok {
			repoState = intro.State()
		}
	}

	return ServiceState{
		NotesRoot:       s.root,
		ActiveWorkspace: s.config.ActiveWorkspaceID,
		Workspaces:      len(s.config.Workspaces),
		RepositoryType:  repoType,
		Repository:      repoState,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
