package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quire/pkg/core"
)

func TestRepository_Write(t *testing.T) {
	ctx := context.Background()

	t.Run("Renames From Title", func(t *testing.T) {
		repo, dir := newTestRepo(t)
		path := writeNote(t, dir, "1-untitled.md", "\n")

		newPath, err := repo.Write(ctx, path, "# Hello World\nbody\n")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "1-hello-world.md"), newPath)
		assert.Equal(t, []string{"1-hello-world.md"}, names(t, dir))

		content, err := repo.Read(ctx, newPath)
		require.NoError(t, err)
		assert.Equal(t, "# Hello World\nbody\n", content)
	})

	t.Run("Same Slug Keeps Path", func(t *testing.T) {
		repo, dir := newTestRepo(t)
		path := writeNote(t, dir, "4-groceries.md", "# Groceries\n")

		newPath, err := repo.Write(ctx, path, "# Groceries\n- milk\n")
		require.NoError(t, err)
		assert.Equal(t, path, newPath)
	})

	t.Run("Lost Heading Falls Back To Untitled", func(t *testing.T) {
		repo, dir := newTestRepo(t)
		path := writeNote(t, dir, "2-todo.md", "# Todo\n")

		newPath, err := repo.Write(ctx, path, "just text\n")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "2-untitled.md"), newPath)
	})

	t.Run("Taken Target Skips Rename", func(t *testing.T) {
		repo, dir := newTestRepo(t)
		writeNote(t, dir, "3-ideas.md", "# Ideas\nkeep me\n")
		path := writeNote(t, dir, "3-untitled.md", "\n")

		newPath, err := repo.Write(ctx, path, "# Ideas\nsecond\n")
		require.NoError(t, err)
		assert.Equal(t, path, newPath)

		kept, err := os.ReadFile(filepath.Join(dir, "3-ideas.md"))
		require.NoError(t, err)
		assert.Equal(t, "# Ideas\nkeep me\n", string(kept))

		saved, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# Ideas\nsecond\n", string(saved))
	})

	t.Run("Unnumbered Note Is Not Renamed", func(t *testing.T) {
		repo, dir := newTestRepo(t)
		path := writeNote(t, dir, "readme.md", "")

		newPath, err := repo.Write(ctx, path, "# Something Else\n")
		require.NoError(t, err)
		assert.Equal(t, path, newPath)
		assert.Equal(t, []string{"readme.md"}, names(t, dir))
	})

	t.Run("Creates Missing File", func(t *testing.T) {
		repo, dir := newTestRepo(t)
		path := filepath.Join(dir, "7-new.md")

		newPath, err := repo.Write(ctx, path, "# New\n")
		require.NoError(t, err)
		assert.Equal(t, path, newPath)
	})
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("First Note", func(t *testing.T) {
		repo, root := newTestRepo(t)
		dir := filepath.Join(root, "Personal")

		path, err := repo.Create(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "1-untitled.md"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "\n", string(content))
	})

	t.Run("Numbers Above Existing", func(t *testing.T) {
		repo, dir := newTestRepo(t)
		writeNote(t, dir, "5-e.md", "")
		writeNote(t, dir, "2-b.md", "")

		path, err := repo.Create(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "6-untitled.md"), path)

		notes, err := repo.List(ctx, dir)
		require.NoError(t, err)
		require.NotEmpty(t, notes)
		assert.Equal(t, path, notes[0].Path, "new note should be on top")
	})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo, dir := newTestRepo(t)
	path := writeNote(t, dir, "1-a.md", "# A\n")

	require.NoError(t, repo.Delete(ctx, path))
	assert.Empty(t, names(t, dir))

	err := repo.Delete(ctx, path)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRepository_Read_NotFound(t *testing.T) {
	repo, dir := newTestRepo(t)

	_, err := repo.Read(context.Background(), filepath.Join(dir, "nope.md"))
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRepository_Rename(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, dir := newTestRepo(t)
		path := writeNote(t, dir, "1-a.md", "")

		newPath, err := repo.Rename(ctx, path, "9-zeta")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "9-zeta.md"), newPath)
		assert.Equal(t, []string{"9-zeta.md"}, names(t, dir))
	})

	t.Run("Extension Is Optional", func(t *testing.T) {
		repo, dir := newTestRepo(t)
		path := writeNote(t, dir, "1-a.md", "")

		newPath, err := repo.Rename(ctx, path, "2-b.md")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "2-b.md"), newPath)
	})

	t.Run("Same Name", func(t *testing.T) {
		repo, dir := newTestRepo(t)
		path := writeNote(t, dir, "1-a.md", "")

		newPath, err := repo.Rename(ctx, path, "1-a")
		require.NoError(t, err)
		assert.Equal(t, path, newPath)
	})

	t.Run("Target Exists", func(t *testing.T) {
		repo, dir := newTestRepo(t)
		path := writeNote(t, dir, "1-a.md", "a")
		writeNote(t, dir, "2-b.md", "b")

		_, err := repo.Rename(ctx, path, "2-b")
		assert.ErrorIs(t, err, core.ErrAlreadyExists)
		assert.Equal(t, []string{"1-a.md", "2-b.md"}, names(t, dir))
	})

	t.Run("Invalid Names", func(t *testing.T) {
		repo, dir := newTestRepo(t)
		path := writeNote(t, dir, "1-a.md", "")

		for _, name := range []string{"", "  ", "..", "a/b", `a\b`} {
			_, err := repo.Rename(ctx, path, name)
			assert.ErrorIs(t, err, core.ErrInvalidInput, "name %q", name)
		}
	})

	t.Run("Source Missing", func(t *testing.T) {
		repo, dir := newTestRepo(t)

		_, err := repo.Rename(ctx, filepath.Join(dir, "1-a.md"), "2-b")
		assert.ErrorIs(t, err, core.ErrNotFound)
	})
}

func TestRepository_ReadOnly(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := writeNote(t, dir, "1-a.md", "# A\n")
	legacy := writeNote(t, dir, "1700000000000.md", "# Old\n")
	repo := NewRepository(Config{ReadOnly: true})

	_, err := repo.Write(ctx, path, "# B\n")
	assert.ErrorIs(t, err, core.ErrReadOnly)

	_, err = repo.Create(ctx, dir)
	assert.ErrorIs(t, err, core.ErrReadOnly)

	assert.ErrorIs(t, repo.Delete(ctx, path), core.ErrReadOnly)

	_, err = repo.Rename(ctx, path, "2-b")
	assert.ErrorIs(t, err, core.ErrReadOnly)

	_, err = repo.Reorder(ctx, dir, path, 0)
	assert.ErrorIs(t, err, core.ErrReadOnly)

	report := repo.Migrate(ctx, dir)
	assert.Empty(t, report.Renamed)
	assert.FileExists(t, legacy)

	content, err := repo.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "# A\n", content)
}

func TestRepository_State(t *testing.T) {
	repo := NewRepository(Config{})

	assert.Equal(t, "fs-repository", repo.ComponentType())

	state, ok := repo.State().(RepositoryState)
	require.True(t, ok)
	assert.Equal(t, DefaultEventBuffer, state.EventBuffer)
	assert.False(t, state.ReadOnly)
	assert.Zero(t, state.Watchers)
	assert.Empty(t, state.ActiveTransactions)
	assert.Nil(t, state.LastTransaction)
}
