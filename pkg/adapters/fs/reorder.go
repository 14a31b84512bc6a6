package fs

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/naming"
	"github.com/aretw0/quire/pkg/order"
)

// PlanReorder works out the renames that moving path to display index would
// take, without changing anything on disk.
func (r *Repository) PlanReorder(ctx context.Context, dir, path string, index int) (order.Plan, error) {
	entries, err := scanNumbered(dir)
	if err != nil {
		return order.Plan{}, err
	}

	source := slices.IndexFunc(entries, func(e order.Entry) bool {
		return samePath(filepath.Join(dir, e.Name+naming.Ext), path)
	})
	if source < 0 {
		return order.Plan{}, fmt.Errorf("note %s: %w", path, core.ErrNotFound)
	}

	return order.Move(entries, source, index)
}

// Reorder moves a note to a display index and returns its new path.
//
// All renames of one move run inside a Transaction. If any of them fails the
// ones already done are undone and the error is returned; a failing undo is
// joined to it.
func (r *Repository) Reorder(ctx context.Context, dir, path string, index int) (string, error) {
	if r.config.ReadOnly {
		return "", core.ErrReadOnly
	}

	plan, err := r.PlanReorder(ctx, dir, path, index)
	if err != nil {
		return "", err
	}
	if plan.Case == order.CaseNoop {
		return path, nil
	}

	tx := r.Begin(dir)
	for _, step := range plan.Renames {
		if err := tx.Rename(step.From, step.To); err != nil {
			err = fmt.Errorf("reorder aborted: %w", err)
			if rbErr := tx.Rollback(); rbErr != nil {
				return "", errors.Join(err, rbErr)
			}
			return "", err
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}

	r.logger.Debug("note reordered",
		"tx", tx.ID,
		"case", plan.Case,
		"renames", len(plan.Renames),
		"key", plan.Key,
	)
	return filepath.Join(dir, plan.MovedTo+naming.Ext), nil
}

func samePath(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
