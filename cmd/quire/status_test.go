package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quire/pkg/adapters/fs"
	"github.com/aretw0/quire/pkg/core"
)

func TestBuildStatusTree(t *testing.T) {
	cfg := core.WorkspaceConfig{
		Workspaces: []core.Workspace{
			{ID: "Personal", Name: "Personal", Shortcut: "1"},
			{ID: "work", Name: "Work", Shortcut: "2"},
		},
		ActiveWorkspaceID: "work",
	}
	state := core.ServiceState{
		NotesRoot:      "/notes",
		RepositoryType: "fs-repository",
		Repository:     fs.RepositoryState{EventBuffer: 100, Watchers: 1},
	}

	tree := buildStatusTree(state, cfg)

	assert.Equal(t, "Service", tree.Name)
	require.Len(t, tree.Children, 1)
	repo := tree.Children[0]
	require.Len(t, repo.Children, 3)
	assert.Equal(t, "suspended", repo.Children[0].Status)
	assert.Equal(t, "running", repo.Children[1].Status)
	assert.Equal(t, "Watcher", repo.Children[2].Name)
	assert.Equal(t, "running", repo.Children[2].Status)
	assert.Equal(t, "false", repo.Metadata["read_only"])
}
