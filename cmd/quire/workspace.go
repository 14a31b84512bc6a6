package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var workspaceCmd = &cobra.Command{
	Use:     "workspace",
	Aliases: []string{"ws"},
	Short:   "Manage workspaces",
}

var workspaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspaces; the active one is marked with *",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := openService().Workspaces()

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, ws := range cfg.Workspaces {
			mark := " "
			if ws.ID == cfg.ActiveWorkspaceID {
				mark = "*"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", mark, ws.Shortcut, ws.ID, ws.Name)
		}
		tw.Flush()
	},
}

var workspaceCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a workspace and its folder",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ws, err := openService().CreateWorkspace(context.Background(), args[0])
		if err != nil {
			fatal("Failed to create workspace", err)
		}
		fmt.Printf("Workspace created: %s (shortcut %q)\n", ws.ID, ws.Shortcut)
	},
}

var workspaceDeleteCmd = &cobra.Command{
	Use:   "delete <workspace>",
	Short: "Forget a workspace; its folder stays on disk",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		ws, err := findWorkspace(svc.Workspaces(), args[0])
		if err != nil {
			fatal("Failed to find workspace", err)
		}
		if err := svc.DeleteWorkspace(context.Background(), ws.ID); err != nil {
			fatal("Failed to delete workspace", err)
		}
		fmt.Printf("Workspace deleted: %s\n", ws.ID)
	},
}

var workspaceRenameCmd = &cobra.Command{
	Use:   "rename <workspace> <name>",
	Short: "Change the display name of a workspace",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		ws, err := findWorkspace(svc.Workspaces(), args[0])
		if err != nil {
			fatal("Failed to find workspace", err)
		}
		renamed, err := svc.RenameWorkspace(context.Background(), ws.ID, args[1])
		if err != nil {
			fatal("Failed to rename workspace", err)
		}
		fmt.Printf("Workspace renamed: %s -> %s\n", ws.Name, renamed.Name)
	},
}

var workspaceUseCmd = &cobra.Command{
	Use:   "use <workspace>",
	Short: "Switch the active workspace by ID, shortcut or name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		ws, err := findWorkspace(svc.Workspaces(), args[0])
		if err != nil {
			fatal("Failed to find workspace", err)
		}
		if err := svc.SetActiveWorkspace(context.Background(), ws.ID); err != nil {
			fatal("Failed to switch workspace", err)
		}
		fmt.Printf("Active workspace: %s\n", ws.ID)
	},
}

func init() {
	rootCmd.AddCommand(workspaceCmd)
	workspaceCmd.AddCommand(workspaceListCmd, workspaceCreateCmd, workspaceDeleteCmd, workspaceRenameCmd, workspaceUseCmd)
}
