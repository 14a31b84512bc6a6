// Package quire is the Composition Root for the quire note store.
//
// It connects the core business logic (pkg/core) with the filesystem adapter
// (pkg/adapters/fs) and re-exports the pieces an application needs.
//
// Model:
//
// A workspace is a directory of Markdown notes, one file per note. The display
// order lives only in the filenames: every note is named "{number}-{slug}.md"
// and a higher number sorts first. Saving a note renames it when its heading
// changes; moving a note renames as few files as the gaps between numbers
// allow.
//
// Usage:
//
//	svc, err := quire.New(
//		quire.WithNotesRoot("./Notes"),
//		quire.WithLogger(logger),
//	)
//
//	path, err := svc.CreateNote(ctx)
//	path, err = svc.WriteNote(ctx, path, "# Groceries\n- milk\n")
//	path, err = svc.ReorderNote(ctx, path, 0)
package quire
