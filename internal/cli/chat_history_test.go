package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadHistoryFromPath_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "chat_history")
	assert.Nil(t, loadHistoryFromPath(path))
}

func TestLoadHistoryFromPath_TruncatesOverMax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat_history")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("what to cook?\n", 600)), 0o644))

	assert.Len(t, loadHistoryFromPath(path), maxHistoryLines)
}

func TestChatHistory_AddPersistsAndSkipsRepeats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "chat_history")
	h := newChatHistory(path)

	h.Add("What to cook?")
	h.Add("What to cook?")
	h.Add("  ")
	h.Add("suggest another")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "What to cook?\nsuggest another\n", string(data))

	reloaded := newChatHistory(path)
	assert.Equal(t, []string{"What to cook?", "suggest another"}, reloaded.entries)
}

func TestChatHistory_Browse(t *testing.T) {
	h := newChatHistory("")
	h.Add("first")
	h.Add("second")

	got, ok := h.Prev()
	assert.True(t, ok)
	assert.Equal(t, "second", got)

	got, ok = h.Prev()
	assert.True(t, ok)
	assert.Equal(t, "first", got)

	_, ok = h.Prev()
	assert.False(t, ok)

	assert.Equal(t, "second", h.Next())
	assert.Equal(t, "", h.Next())
	assert.Equal(t, "", h.Next())
}
