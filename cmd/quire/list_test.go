package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/order"
)

func TestPrintNotes(t *testing.T) {
	notes := []core.Note{
		{Name: "2-b", Path: "/n/2-b.md", Key: 2, Numbered: true, Slug: "b", Title: "Bee"},
		{Name: "loose", Path: "/n/loose.md", Title: "Untitled"},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printNotes(&buf, notes, "text"))
		assert.Equal(t, "0  2-b    Bee\n1  loose  Untitled\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printNotes(&buf, notes, "json"))

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "2-b", decoded[0]["name"])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printNotes(&buf, notes, "yaml"))

		var decoded []map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "loose", decoded[1]["name"])
	})

	t.Run("unknown", func(t *testing.T) {
		err := printNotes(&bytes.Buffer{}, notes, "xml")
		assert.ErrorIs(t, err, core.ErrInvalidInput)
	})
}

func TestPrintPlan(t *testing.T) {
	var buf bytes.Buffer
	printPlan(&buf, order.Plan{
		Case:    order.CaseGap,
		Renames: []order.Rename{{From: "1-a", To: "6-a", Key: 6}},
	})
	assert.Equal(t, "gap: 1 rename(s)\n  1-a -> 6-a\n", buf.String())
}
