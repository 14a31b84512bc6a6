package fs

import (
	"cmp"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/naming"
)

type legacyNote struct {
	path      string
	timestamp uint64
}

// Migrate renames notes still named after their creation timestamp
// ("1700000000000.md") into the numbered scheme, oldest first, so their
// relative order survives.
//
// Each file gets the next free number at the moment it is processed. Files
// that cannot be read or renamed are logged and left alone; an existing file
// is never replaced.
func (r *Repository) Migrate(ctx context.Context, dir string) core.MigrationReport {
	report := core.MigrationReport{Renamed: make(map[string]string)}
	if r.config.ReadOnly {
		return report
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warn("legacy migration skipped", "dir", dir, "error", err)
		}
		return report
	}

	var legacy []legacyNote
	for _, e := range entries {
		if e.IsDir() || !naming.IsNote(e.Name()) {
			continue
		}
		stem := naming.Stem(e.Name())
		if !naming.IsLegacyStem(stem) {
			continue
		}
		ts, _ := strconv.ParseUint(stem, 10, 64) // overflowing stems sort first
		legacy = append(legacy, legacyNote{path: filepath.Join(dir, e.Name()), timestamp: ts})
	}
	slices.SortStableFunc(legacy, func(a, b legacyNote) int {
		if c := cmp.Compare(a.timestamp, b.timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.path, b.path)
	})

	for _, note := range legacy {
		if ctx.Err() != nil {
			report.Skipped = append(report.Skipped, note.path)
			continue
		}

		content, err := os.ReadFile(note.path)
		if err != nil {
			r.logger.Warn("legacy note unreadable, migrating as untitled", "path", note.path, "error", err)
		}
		slug := naming.SlugOrUntitled(naming.ParseTitle(string(content)))
		target := filepath.Join(dir, naming.FormatFilename(NextNumber(dir), slug))

		if _, err := os.Lstat(target); err == nil {
			r.logger.Warn("legacy note not migrated, target exists", "path", note.path, "target", target)
			report.Skipped = append(report.Skipped, note.path)
			continue
		}
		if err := os.Rename(note.path, target); err != nil {
			r.logger.Warn("legacy note not migrated", "path", note.path, "error", err)
			report.Skipped = append(report.Skipped, note.path)
			continue
		}
		report.Renamed[note.path] = target
	}

	if len(report.Renamed) > 0 || len(report.Skipped) > 0 {
		r.logger.Info("legacy notes migrated", "dir", dir, "renamed", len(report.Renamed), "skipped", len(report.Skipped))
	}
	return report
}
