package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

const maxHistoryLines = 500

// chatHistory is the recall list behind the chat input's up/down keys. When
// path is set, every submitted line is also appended to that file.
type chatHistory struct {
	path    string
	entries []string
	// cursor equals len(entries) when not browsing.
	cursor int
}

func newChatHistory(path string) *chatHistory {
	h := &chatHistory{path: path}
	if path != "" {
		h.entries = loadHistoryFromPath(path)
	}
	h.cursor = len(h.entries)
	return h
}

func (h *chatHistory) Add(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if n := len(h.entries); n == 0 || h.entries[n-1] != line {
		h.entries = append(h.entries, line)
		if len(h.entries) > maxHistoryLines {
			h.entries = h.entries[len(h.entries)-maxHistoryLines:]
		}
		if h.path != "" {
			appendHistoryToPath(h.path, line)
		}
	}
	h.cursor = len(h.entries)
}

// Prev steps back; ok is false when there is nothing older.
func (h *chatHistory) Prev() (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next steps forward, returning "" once past the newest entry.
func (h *chatHistory) Next() string {
	if h.cursor >= len(h.entries)-1 {
		h.cursor = len(h.entries)
		return ""
	}
	h.cursor++
	return h.entries[h.cursor]
}

// loadHistoryFromPath returns nil if the file does not exist or cannot be
// read. Only the newest maxHistoryLines are kept.
func loadHistoryFromPath(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > maxHistoryLines {
		lines = lines[len(lines)-maxHistoryLines:]
	}
	return lines
}

// appendHistoryToPath is best-effort: errors are ignored.
func appendHistoryToPath(path, line string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = f.WriteString(line + "\n")
}
