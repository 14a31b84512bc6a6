package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/quire/pkg/core"
)

// ConfigStore persists the workspace configuration as a single file.
// The format follows the extension: ".yaml"/".yml" for YAML, JSON otherwise.
type ConfigStore struct {
	Path     string
	ReadOnly bool
}

var _ core.ConfigStore = (*ConfigStore)(nil)

// NewConfigStore creates a store backed by the file at path.
func NewConfigStore(path string) *ConfigStore {
	return &ConfigStore{Path: path}
}

func (s *ConfigStore) isYAML() bool {
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads the configuration. It returns core.ErrNotFound when the file
// does not exist yet.
func (s *ConfigStore) Load(ctx context.Context) (core.WorkspaceConfig, error) {
	var cfg core.WorkspaceConfig

	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return cfg, fmt.Errorf("workspace config %s: %w", s.Path, core.ErrNotFound)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read workspace config: %w", err)
	}

	if s.isYAML() {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return core.WorkspaceConfig{}, fmt.Errorf("failed to parse workspace config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration atomically, creating its directory if needed.
func (s *ConfigStore) Save(ctx context.Context, cfg core.WorkspaceConfig) error {
	if s.ReadOnly {
		return core.ErrReadOnly
	}

	var (
		data []byte
		err  error
	)
	if s.isYAML() {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode workspace config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return writeFileAtomic(s.Path, data, 0644)
}
