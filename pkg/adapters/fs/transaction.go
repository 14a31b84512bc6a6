package fs

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/naming"
)

// Transaction journals the renames applied inside one directory so that a
// pass that fails halfway can be undone.
type Transaction struct {
	ID string

	repo    *Repository
	dir     string
	logger  *slog.Logger
	applied []renameStep
	mu      sync.Mutex
	closed  bool
}

type renameStep struct {
	from, to string
}

// TransactionSummary records how the last transaction ended.
type TransactionSummary struct {
	ID         string    `json:"id"`
	Dir        string    `json:"dir"`
	Renames    int       `json:"renames"`
	RolledBack bool      `json:"rolled_back"`
	FinishedAt time.Time `json:"finished_at"`
}

// Begin starts a new rename transaction in dir.
func (r *Repository) Begin(dir string) *Transaction {
	tx := &Transaction{
		ID:     uuid.NewString(),
		repo:   r,
		dir:    dir,
		logger: r.logger,
	}

	r.mu.Lock()
	r.active[tx.ID] = tx
	r.mu.Unlock()

	return tx
}

// Rename moves the note with stem from to stem to. It refuses to replace an
// existing file.
func (t *Transaction) Rename(from, to string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return fmt.Errorf("transaction closed")
	}

	src := filepath.Join(t.dir, from+naming.Ext)
	dst := filepath.Join(t.dir, to+naming.Ext)
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("rename %s to %s: %w", from, to, core.ErrAlreadyExists)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("rename %s to %s: %w", from, to, err)
	}

	t.applied = append(t.applied, renameStep{from: src, to: dst})
	return nil
}

// Commit closes the transaction and keeps every applied rename.
func (t *Transaction) Commit() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return fmt.Errorf("transaction already closed")
	}
	t.closed = true
	t.repo.finish(t, false)
	return nil
}

// Rollback undoes the applied renames in reverse order. It keeps going past
// failures and returns all of them joined.
func (t *Transaction) Rollback() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}

	var errs []error
	for i := len(t.applied) - 1; i >= 0; i-- {
		step := t.applied[i]
		if err := os.Rename(step.to, step.from); err != nil {
			t.logger.Warn("rollback rename failed", "tx", t.ID, "from", step.to, "to", step.from, "error", err)
			errs = append(errs, fmt.Errorf("rollback %s: %w", filepath.Base(step.to), err))
		}
	}

	t.closed = true
	t.repo.finish(t, true)
	return errors.Join(errs...)
}

func (r *Repository) finish(t *Transaction, rolledBack bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.active, t.ID)
	r.lastTx = &TransactionSummary{
		ID:         t.ID,
		Dir:        t.dir,
		Renames:    len(t.applied),
		RolledBack: rolledBack,
		FinishedAt: time.Now(),
	}
}
