package fs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quire/pkg/core"
)

func TestTransaction(t *testing.T) {
	t.Run("Commit Keeps Renames", func(t *testing.T) {
		repo, dir := newTestRepo(t)
		writeNote(t, dir, "1-a.md", "")
		writeNote(t, dir, "2-b.md", "")

		tx := repo.Begin(dir)
		assert.NotEmpty(t, tx.ID)
		assert.Contains(t, repo.State().(RepositoryState).ActiveTransactions, tx.ID)

		require.NoError(t, tx.Rename("1-a", "3-a"))
		require.NoError(t, tx.Rename("2-b", "4-b"))
		require.NoError(t, tx.Commit())

		assert.Equal(t, []string{"3-a.md", "4-b.md"}, names(t, dir))

		state := repo.State().(RepositoryState)
		assert.Empty(t, state.ActiveTransactions)
		require.NotNil(t, state.LastTransaction)
		assert.Equal(t, tx.ID, state.LastTransaction.ID)
		assert.Equal(t, 2, state.LastTransaction.Renames)
	})

	t.Run("Rollback Restores Names", func(t *testing.T) {
		repo, dir := newTestRepo(t)
		writeNote(t, dir, "1-a.md", "")
		writeNote(t, dir, "2-b.md", "")

		tx := repo.Begin(dir)
		require.NoError(t, tx.Rename("1-a", "3-a"))
		require.NoError(t, tx.Rename("2-b", "1-b"))
		require.NoError(t, tx.Rollback())

		assert.Equal(t, []string{"1-a.md", "2-b.md"}, names(t, dir))
		assert.True(t, repo.State().(RepositoryState).LastTransaction.RolledBack)
	})

	t.Run("Refuses To Replace", func(t *testing.T) {
		repo, dir := newTestRepo(t)
		writeNote(t, dir, "1-a.md", "a")
		writeNote(t, dir, "2-b.md", "b")

		tx := repo.Begin(dir)
		err := tx.Rename("1-a", "2-b")
		assert.ErrorIs(t, err, core.ErrAlreadyExists)
		require.NoError(t, tx.Rollback())
		assert.Equal(t, []string{"1-a.md", "2-b.md"}, names(t, dir))
	})

	t.Run("Closed Transaction", func(t *testing.T) {
		repo, dir := newTestRepo(t)
		writeNote(t, dir, "1-a.md", "")

		tx := repo.Begin(dir)
		require.NoError(t, tx.Commit())

		assert.Error(t, tx.Rename("1-a", "2-a"))
		assert.Error(t, tx.Commit())
		assert.NoError(t, tx.Rollback())
		assert.Equal(t, []string{"1-a.md"}, names(t, dir))
	})
}
