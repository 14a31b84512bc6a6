package fs

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/naming"
	"github.com/aretw0/quire/pkg/order"
)

// List returns the notes of dir in display order. A directory that does not
// exist yet has no notes.
//
// Notes with an ordering key come first, highest key on top. Notes without
// one follow, most recently modified first.
func (r *Repository) List(ctx context.Context, dir string) ([]core.Note, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []core.Note{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read notes directory: %w", err)
	}

	notes := make([]core.Note, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !naming.IsNote(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue // removed since ReadDir
		}
		notes = append(notes, decodeNote(dir, e.Name(), info.ModTime()))
	}

	SortNotes(notes)
	return notes, nil
}

func decodeNote(dir, filename string, modified time.Time) core.Note {
	path := filepath.Join(dir, filename)
	stem := naming.Stem(filename)
	note := core.Note{
		Name:     stem,
		Path:     path,
		Title:    naming.ReadTitle(path),
		Modified: modified,
	}
	if key, ok := naming.ParseKey(stem); ok {
		note.Key = key
		note.Numbered = true
		note.Slug = naming.SlugFromStem(stem)
	}
	return note
}

// SortNotes sorts notes for display. Ties fall back to the name so the order
// is total.
func SortNotes(notes []core.Note) {
	slices.SortStableFunc(notes, compareNotes)
}

func compareNotes(a, b core.Note) int {
	switch {
	case a.Numbered && b.Numbered:
		if c := cmp.Compare(b.Key, a.Key); c != 0 {
			return c
		}
	case a.Numbered:
		return -1
	case b.Numbered:
		return 1
	default:
		if c := b.Modified.Compare(a.Modified); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Name, b.Name)
}

// scanNumbered returns the numbered notes of dir as planner entries, in
// display order.
func scanNumbered(dir string) ([]order.Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read notes directory: %w", err)
	}

	entries := make([]order.Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() || !naming.IsNote(e.Name()) {
			continue
		}
		if entry, ok := order.NewEntry(naming.Stem(e.Name())); ok {
			entries = append(entries, entry)
		}
	}

	order.Sort(entries)
	return entries, nil
}
