package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/quire/pkg/adapters/fs"
	"github.com/aretw0/quire/pkg/core"
)

var (
	statusDiagram bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the service and its repository",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()

		state, ok := svc.State().(core.ServiceState)
		if !ok {
			fatal("Failed to read state", fmt.Errorf("unexpected state type %T", svc.State()))
		}

		if statusDiagram {
			config := introspection.DefaultDiagramConfig()
			config.SecondaryID = "quire"
			config.SecondaryLabel = "Notes Topology"
			fmt.Println(introspection.TreeDiagram(buildStatusTree(state, svc.Workspaces()), config))
			return
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(state); err != nil {
			fatal("Failed to encode state", err)
		}
	},
}

type statusNode struct {
	Name     string
	Status   string
	Metadata map[string]string
	Children []statusNode
}

// buildStatusTree lays the state out for introspection.TreeDiagram. Status
// values must match the classes of introspection.DefaultStyles().
func buildStatusTree(state core.ServiceState, cfg core.WorkspaceConfig) statusNode {
	var workspaces []statusNode
	for _, ws := range cfg.Workspaces {
		status := "suspended"
		if ws.ID == cfg.ActiveWorkspaceID {
			status = "running"
		}
		workspaces = append(workspaces, statusNode{
			Name:     ws.Name,
			Status:   status,
			Metadata: map[string]string{"type": "container", "id": ws.ID, "shortcut": ws.Shortcut},
		})
	}

	repo := statusNode{
		Name:     "Repository",
		Status:   "running",
		Metadata: map[string]string{"type": "process", "kind": state.RepositoryType},
		Children: workspaces,
	}
	if rs, ok := state.Repository.(fs.RepositoryState); ok {
		watcher := "suspended"
		if rs.Watchers > 0 {
			watcher = "running"
		}
		repo.Metadata["read_only"] = strconv.FormatBool(rs.ReadOnly)
		repo.Children = append(repo.Children, statusNode{
			Name:     "Watcher",
			Status:   watcher,
			Metadata: map[string]string{"type": "goroutine", "buffer": strconv.Itoa(rs.EventBuffer)},
		})
	}

	return statusNode{
		Name:     "Service",
		Status:   "running",
		Metadata: map[string]string{"type": "container", "root": state.NotesRoot},
		Children: []statusNode{repo},
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusDiagram, "diagram", false, "Print a Mermaid diagram instead of JSON")
}
