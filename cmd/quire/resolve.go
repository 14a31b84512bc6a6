package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/naming"
)

// findNote picks a note by stem ("3-groceries"), filename ("3-groceries.md")
// or bare ordering key ("3").
func findNote(notes []core.Note, arg string) (core.Note, error) {
	stem := strings.TrimSuffix(arg, naming.Ext)
	for _, n := range notes {
		if n.Name == stem {
			return n, nil
		}
	}
	if key, err := strconv.ParseUint(stem, 10, 64); err == nil {
		for _, n := range notes {
			if n.Numbered && n.Key == key {
				return n, nil
			}
		}
	}
	return core.Note{}, fmt.Errorf("note %q: %w", arg, core.ErrNotFound)
}

// resolveNote turns a CLI argument into a note path. An existing file path is
// taken as is; anything else is looked up in the active workspace.
func resolveNote(ctx context.Context, svc *core.Service, arg string) (string, error) {
	if strings.ContainsAny(arg, `/\`) {
		if _, err := os.Stat(arg); err == nil {
			return filepath.Abs(arg)
		}
	}
	notes, err := svc.ListNotes(ctx)
	if err != nil {
		return "", err
	}
	n, err := findNote(notes, arg)
	if err != nil {
		return "", err
	}
	return n.Path, nil
}

// findWorkspace picks a workspace by ID, shortcut or display name.
func findWorkspace(cfg core.WorkspaceConfig, arg string) (core.Workspace, error) {
	if ws, ok := cfg.Find(arg); ok {
		return ws, nil
	}
	for _, ws := range cfg.Workspaces {
		if ws.Shortcut != "" && ws.Shortcut == arg {
			return ws, nil
		}
	}
	for _, ws := range cfg.Workspaces {
		if strings.EqualFold(ws.Name, arg) {
			return ws, nil
		}
	}
	return core.Workspace{}, fmt.Errorf("workspace %q: %w", arg, core.ErrNotFound)
}
