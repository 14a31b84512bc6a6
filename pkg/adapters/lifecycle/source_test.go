package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quire/pkg/core"
)

func feed(events ...core.Event) <-chan core.Event {
	in := make(chan core.Event, len(events))
	for _, e := range events {
		in <- e
	}
	close(in)
	return in
}

func collect(t *testing.T, src lifecycle.Source) []NoteEvent {
	t.Helper()
	var got []NoteEvent
	timeout := time.After(2 * time.Second)
	for {
		select {
		case e, ok := <-src.Events():
			if !ok {
				return got
			}
			ne, isNote := e.(NoteEvent)
			require.True(t, isNote, "unexpected event %T", e)
			got = append(got, ne)
		case <-timeout:
			t.Fatal("timed out waiting for events")
			return nil
		}
	}
}

func strs(events []NoteEvent) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.String()
	}
	return out
}

func TestSource_Forwards(t *testing.T) {
	src := NewSource(feed(
		core.Event{Type: core.EventCreate, Path: "/n/1-a.md"},
		core.Event{Type: core.EventDelete, Path: "/n/2-b.md"},
	))
	require.NoError(t, src.Start(context.Background()))

	got := collect(t, src)
	assert.Equal(t, []string{"CREATE /n/1-a.md", "DELETE /n/2-b.md"}, strs(got))

	require.Len(t, got, 2)
	assert.Equal(t, "1-a", got[0].Name)
	assert.True(t, got[0].Numbered)
	assert.Equal(t, uint64(1), got[0].Key)
}

func TestSource_UnnumberedNote(t *testing.T) {
	src := NewSource(feed(core.Event{Type: core.EventCreate, Path: "/n/loose.md"}))
	require.NoError(t, src.Start(context.Background()))

	got := collect(t, src)
	require.Len(t, got, 1)
	assert.Equal(t, "loose", got[0].Name)
	assert.False(t, got[0].Numbered)
}

func TestSource_PairsRenameIntoMove(t *testing.T) {
	src := NewSource(feed(
		core.Event{Type: core.EventRename, Path: "/n/3-c.md"},
		core.Event{Type: core.EventCreate, Path: "/n/6-c.md"},
		core.Event{Type: core.EventRename, Path: "/n/1-a.md"},
		core.Event{Type: core.EventCreate, Path: "/other/1-a.md"},
	), WithWindow(time.Minute))
	require.NoError(t, src.Start(context.Background()))

	got := collect(t, src)
	assert.Equal(t, []string{
		"MOVE 3-c -> 6-c",
		"RENAME /n/1-a.md",
		"CREATE /other/1-a.md",
	}, strs(got))

	require.NotEmpty(t, got)
	assert.Equal(t, "/n/3-c.md", got[0].From)
	assert.Equal(t, uint64(6), got[0].Key)
}

func TestSource_FlushesPendingRename(t *testing.T) {
	t.Run("On Close", func(t *testing.T) {
		src := NewSource(feed(core.Event{Type: core.EventRename, Path: "/n/2-b.md"}), WithWindow(time.Minute))
		require.NoError(t, src.Start(context.Background()))
		assert.Equal(t, []string{"RENAME /n/2-b.md"}, strs(collect(t, src)))
	})

	t.Run("After Window", func(t *testing.T) {
		in := make(chan core.Event)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		src := NewSource(in, WithWindow(10*time.Millisecond))
		require.NoError(t, src.Start(ctx))
		in <- core.Event{Type: core.EventRename, Path: "/n/2-b.md"}

		select {
		case e := <-src.Events():
			assert.Equal(t, "RENAME /n/2-b.md", e.String())
		case <-time.After(2 * time.Second):
			t.Fatal("pending rename was never emitted")
		}
	})
}

func TestSource_FoldsRepeatedWrites(t *testing.T) {
	src := NewSource(feed(
		core.Event{Type: core.EventCreate, Path: "/n/1-a.md"},
		core.Event{Type: core.EventModify, Path: "/n/1-a.md"},
		core.Event{Type: core.EventModify, Path: "/n/1-a.md"},
		core.Event{Type: core.EventModify, Path: "/n/2-b.md"},
		core.Event{Type: core.EventModify, Path: "/n/1-a.md"},
		core.Event{Type: core.EventDelete, Path: "/n/1-a.md"},
	), WithWindow(time.Minute))
	require.NoError(t, src.Start(context.Background()))

	assert.Equal(t, []string{
		"CREATE /n/1-a.md",
		"MODIFY /n/2-b.md",
		"MODIFY /n/1-a.md",
		"DELETE /n/1-a.md",
	}, strs(collect(t, src)))
}

func TestSource_StopsOnCancel(t *testing.T) {
	in := make(chan core.Event)
	ctx, cancel := context.WithCancel(context.Background())

	src := NewSource(in)
	require.NoError(t, src.Start(ctx))
	cancel()

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("source did not close after cancel")
	}
}
