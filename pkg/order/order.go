// Package order plans moves inside a list of numbered notes.
//
// Display order is descending by ordering key: the highest key is the top of
// the list. Planning is pure. A Plan only names the renames needed; carrying
// them out is the caller's job.
package order

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/aretw0/quire/pkg/naming"
)

var (
	// ErrSourceOutOfRange is returned when the moved index is not in the list.
	ErrSourceOutOfRange = errors.New("source index out of range")
	// ErrKeySpaceExhausted is returned when the new keys would overflow uint64.
	ErrKeySpaceExhausted = errors.New("ordering key space exhausted")
)

// Entry is one numbered note as seen by the planner.
type Entry struct {
	Key  uint64
	Slug string
	Name string // current stem
}

// NewEntry decodes a stem. It returns false for stems without an ordering key.
func NewEntry(stem string) (Entry, bool) {
	key, ok := naming.ParseKey(stem)
	if !ok {
		return Entry{}, false
	}
	return Entry{Key: key, Slug: naming.SlugFromStem(stem), Name: stem}, true
}

// Case names the branch the planner took.
type Case string

const (
	CaseNoop  Case = "noop"
	CaseGap   Case = "gap"
	CaseDense Case = "dense"
)

// Rename moves one note from one stem to another.
type Rename struct {
	From string
	To   string
	Key  uint64
}

// Plan is the outcome of Move.
type Plan struct {
	Case Case
	// Moved is the stem of the moved note before the move, MovedTo after it.
	Moved   string
	MovedTo string
	Key     uint64
	// Renames lists every rename to perform, in order. The moved note comes last.
	Renames []Rename
}

// Sort orders entries for display: descending key, then name for equal keys.
func Sort(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Key, a.Key); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
}

// Move plans moving entries[source] so that it ends up at display index target.
// entries must already be in display order (see Sort).
//
// A target past the end is clamped to the last index. When the neighbours
// around the new slot leave room, only the moved note is renumbered (gap case).
// The top slot leaves room unless the keys form one contiguous run.
// Otherwise every note is given a fresh key above the current maximum (dense case).
func Move(entries []Entry, source, target int) (Plan, error) {
	if source < 0 || source >= len(entries) {
		return Plan{}, fmt.Errorf("%w: %d of %d", ErrSourceOutOfRange, source, len(entries))
	}

	moved := entries[source]
	noop := Plan{Case: CaseNoop, Moved: moved.Name, MovedTo: moved.Name, Key: moved.Key}

	if target < 0 {
		target = 0
	}
	if target > len(entries)-1 {
		target = len(entries) - 1
	}
	if target == source || len(entries) < 2 {
		return noop, nil
	}

	rest := make([]Entry, 0, len(entries)-1)
	rest = append(rest, entries[:source]...)
	rest = append(rest, entries[source+1:]...)

	if key, ok := gapKey(rest, target, !contiguous(entries)); ok {
		to := naming.FormatStem(key, moved.Slug)
		return Plan{
			Case:    CaseGap,
			Moved:   moved.Name,
			MovedTo: to,
			Key:     key,
			Renames: []Rename{{From: moved.Name, To: to, Key: key}},
		}, nil
	}

	return dense(rest, moved, target)
}

// gapKey returns below+1 when it fits strictly under the note above the slot.
// A missing note below counts as key 0. The top slot has no note above; it is
// open only when topOpen is set, so a contiguous run moved to the top is
// renumbered as a whole instead of growing one key at a time.
func gapKey(rest []Entry, target int, topOpen bool) (uint64, bool) {
	var below uint64
	if target < len(rest) {
		below = rest[target].Key
	}
	if below == math.MaxUint64 {
		return 0, false
	}
	if target == 0 {
		return below + 1, topOpen
	}
	above := rest[target-1].Key
	if above > below+1 {
		return below + 1, true
	}
	return 0, false
}

// contiguous reports whether the keys of a display sequence step down by
// exactly one from each note to the next.
func contiguous(entries []Entry) bool {
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Key != entries[i].Key+1 {
			return false
		}
	}
	return true
}

func dense(rest []Entry, moved Entry, target int) (Plan, error) {
	final := slices.Insert(slices.Clone(rest), target, moved)

	maxKey := moved.Key
	for _, e := range rest {
		maxKey = max(maxKey, e.Key)
	}
	count := uint64(len(final))
	if maxKey > math.MaxUint64-count {
		return Plan{}, ErrKeySpaceExhausted
	}

	plan := Plan{Case: CaseDense, Moved: moved.Name}
	var last Rename
	for pos, e := range final {
		key := maxKey + 1 + (count - 1 - uint64(pos))
		to := naming.FormatStem(key, e.Slug)
		if pos == target {
			plan.Key = key
			plan.MovedTo = to
			last = Rename{From: e.Name, To: to, Key: key}
			continue
		}
		if key != e.Key {
			plan.Renames = append(plan.Renames, Rename{From: e.Name, To: to, Key: key})
		}
	}
	plan.Renames = append(plan.Renames, last)

	return plan, nil
}

// Apply returns the display sequence that results from carrying out a plan.
func Apply(entries []Entry, plan Plan) []Entry {
	byName := make(map[string]Rename, len(plan.Renames))
	for _, r := range plan.Renames {
		byName[r.From] = r
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if r, ok := byName[e.Name]; ok {
			e = Entry{Key: r.Key, Slug: e.Slug, Name: r.To}
		}
		out = append(out, e)
	}
	Sort(out)
	return out
}
