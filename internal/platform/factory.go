package platform

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/quire/pkg/adapters/fs"
	"github.com/aretw0/quire/pkg/core"
)

// New wires a Service: it resolves paths, loads (or creates) the workspace
// configuration, makes sure the active workspace directory exists and, unless
// disabled, migrates legacy notes in every workspace.
//
//	svc, err := quire.New(quire.WithNotesRoot("./Notes"))
func New(opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	root := o.notesRoot
	if root == "" {
		root = DefaultNotesRoot()
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	store := o.store
	if store == nil {
		path := o.configPath
		if path == "" {
			path = DefaultConfigPath()
		}
		store = &fs.ConfigStore{Path: path, ReadOnly: o.readOnly}
	}

	repo := o.repository
	if repo == nil {
		repo = fs.NewRepository(fs.Config{
			Logger:      logger.With("component", "fs"),
			ReadOnly:    o.readOnly,
			EventBuffer: o.eventBuffer,
		})
	}

	ctx := context.Background()
	cfg, err := LoadConfig(ctx, store, root, o.readOnly, logger)
	if err != nil {
		return nil, err
	}

	service, err := core.NewService(core.ServiceConfig{
		NotesRoot:  root,
		Repository: repo,
		Store:      store,
		Config:     cfg,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	if o.readOnly {
		return service, nil
	}

	if _, err := service.EnsureNotesDir(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare notes directory: %w", err)
	}
	if o.migrate {
		service.MigrateAll(ctx)
	}

	return service, nil
}
