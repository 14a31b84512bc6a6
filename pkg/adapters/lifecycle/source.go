// Package lifecycle bridges note change events to the lifecycle event model.
//
// The file system reports a rename as two events: RENAME on the old name and
// CREATE on the new one. The bridge joins such pairs into a single MOVE, and
// folds the burst of writes an editor makes when saving a note.
package lifecycle

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/naming"
)

// EventMove is emitted for a rename whose new name was seen.
const EventMove core.EventType = "MOVE"

// DefaultWindow is how long a RENAME waits for its CREATE, and how long
// repeated writes to one note are folded together.
const DefaultWindow = 50 * time.Millisecond

// NoteEvent is a note change as seen by watchers.
type NoteEvent struct {
	Type core.EventType
	Path string
	// From is the previous path of a MOVE.
	From string
	// Name is the stem of Path; Key is its ordering key when Numbered.
	Name     string
	Key      uint64
	Numbered bool
}

func (e NoteEvent) String() string {
	if e.Type == EventMove {
		return fmt.Sprintf("%s %s -> %s", e.Type, naming.Stem(e.From), e.Name)
	}
	return string(e.Type) + " " + e.Path
}

func newNoteEvent(t core.EventType, path string) NoteEvent {
	stem := naming.Stem(path)
	key, ok := naming.ParseKey(stem)
	return NoteEvent{Type: t, Path: path, Name: stem, Key: key, Numbered: ok}
}

// Option configures a source.
type Option func(*noteSource)

// WithWindow overrides DefaultWindow.
func WithWindow(d time.Duration) Option {
	return func(s *noteSource) {
		if d > 0 {
			s.window = d
		}
	}
}

type noteSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
	window time.Duration
}

// NewSource creates a lifecycle.Source that re-emits note events from a
// Service.Watch channel as NoteEvent values. Events() is closed when the watch
// channel closes or the context passed to Start is done.
func NewSource(events <-chan core.Event, opts ...Option) lifecycle.Source {
	s := &noteSource{
		events: events,
		out:    make(chan lifecycle.Event),
		window: DefaultWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *noteSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *noteSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		s.run(ctx)
		return nil
	})
	return nil
}

func (s *noteSource) run(ctx context.Context) {
	var (
		pending *core.Event // RENAME waiting for its CREATE
		expire  <-chan time.Time
		last    NoteEvent
		lastAt  time.Time
	)

	emit := func(e NoteEvent) bool {
		select {
		case s.out <- e:
			last, lastAt = e, time.Now()
			return true
		case <-ctx.Done():
			return false
		}
	}

	for {
		select {
		case <-ctx.Done():
			return

		case <-expire:
			p := *pending
			pending, expire = nil, nil
			if !emit(newNoteEvent(p.Type, p.Path)) {
				return
			}

		case e, ok := <-s.events:
			if !ok {
				if pending != nil {
					emit(newNoteEvent(pending.Type, pending.Path))
				}
				return
			}

			if pending != nil {
				p := *pending
				pending, expire = nil, nil
				if e.Type == core.EventCreate && filepath.Dir(e.Path) == filepath.Dir(p.Path) {
					moved := newNoteEvent(EventMove, e.Path)
					moved.From = p.Path
					if !emit(moved) {
						return
					}
					continue
				}
				if !emit(newNoteEvent(p.Type, p.Path)) {
					return
				}
			}

			switch {
			case e.Type == core.EventRename:
				pending = &e
				expire = time.After(s.window)
				continue
			case e.Type == core.EventModify && s.fold(last, lastAt, e.Path):
				continue
			}
			if !emit(newNoteEvent(e.Type, e.Path)) {
				return
			}
		}
	}
}

// fold reports whether a MODIFY on path repeats the last emitted change.
func (s *noteSource) fold(last NoteEvent, at time.Time, path string) bool {
	if last.Path != path || time.Since(at) >= s.window {
		return false
	}
	return last.Type == core.EventModify || last.Type == core.EventCreate || last.Type == EventMove
}
