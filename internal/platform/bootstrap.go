package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/naming"
)

// LoadConfig returns the workspace configuration to start with.
//
// On first run, when the store has nothing saved, notes lying directly in
// root are moved into the default workspace and the default configuration is
// saved. A configuration that cannot be read or fails validation is replaced
// by the default in memory, with a warning, and left untouched on disk.
func LoadConfig(ctx context.Context, store core.ConfigStore, root string, readOnly bool, logger *slog.Logger) (core.WorkspaceConfig, error) {
	cfg, err := store.Load(ctx)
	switch {
	case err == nil:
		if verr := cfg.Validate(); verr != nil {
			logger.Warn("workspace config invalid, using default", "error", verr)
			return core.DefaultConfig(), nil
		}
		return cfg, nil

	case errors.Is(err, core.ErrNotFound):
		cfg = core.DefaultConfig()
		if readOnly {
			return cfg, nil
		}
		moved, merr := adoptRootNotes(root, core.WorkspaceDir(root, core.DefaultWorkspaceID), logger)
		if merr != nil {
			return cfg, merr
		}
		if err := store.Save(ctx, cfg); err != nil {
			return cfg, fmt.Errorf("failed to save initial workspace config: %w", err)
		}
		logger.Info("workspace config created", "workspace", core.DefaultWorkspaceID, "adopted", moved)
		return cfg, nil

	default:
		logger.Warn("workspace config unreadable, using default", "error", err)
		return core.DefaultConfig(), nil
	}
}

// adoptRootNotes moves every note file directly under root into dir. Files
// whose name is already taken in dir stay where they are.
func adoptRootNotes(root, dir string, logger *slog.Logger) (int, error) {
	entries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read notes root: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && naming.IsNote(e.Name()) {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return 0, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create workspace directory: %w", err)
	}

	moved := 0
	for _, name := range files {
		target := filepath.Join(dir, name)
		if _, err := os.Lstat(target); err == nil {
			logger.Warn("root note not adopted, target exists", "note", name, "dir", dir)
			continue
		}
		if err := os.Rename(filepath.Join(root, name), target); err != nil {
			logger.Warn("root note not adopted", "note", name, "error", err)
			continue
		}
		moved++
	}
	return moved, nil
}
