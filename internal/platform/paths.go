package platform

import (
	"os"
	"path/filepath"
)

const (
	// NotesDirName is the notes root created under the user's documents.
	NotesDirName = "Notes"
	// AppConfigDir is the directory holding quire's files under the user config dir.
	AppConfigDir = "com.write.app"
	// ConfigFileName is the default workspace config file.
	ConfigFileName = "workspaces.json"
)

// DefaultNotesRoot returns <home>/Documents/Notes, or ./Notes when the home
// directory cannot be determined.
func DefaultNotesRoot() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", NotesDirName)
	}
	return filepath.Join(home, "Documents", NotesDirName)
}

// DefaultConfigPath returns <user config dir>/com.write.app/workspaces.json,
// rooted at the working directory when there is no user config dir.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		dir = "."
	}
	return filepath.Join(dir, AppConfigDir, ConfigFileName)
}
