package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func manyLines(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString("line\n")
	}
	return b.String()
}

func TestViewer_ScrollClamping(t *testing.T) {
	m := newViewerModel("t", manyLines(50))
	m.height = 10

	next, _ := m.Update(key("up"))
	m = next.(viewerModel)
	if m.offset != 0 {
		t.Errorf("offset after up at top = %d, want 0", m.offset)
	}

	next, _ = m.Update(key("G"))
	m = next.(viewerModel)
	if m.offset != 40 {
		t.Errorf("offset after G = %d, want 40", m.offset)
	}

	next, _ = m.Update(key("down"))
	m = next.(viewerModel)
	if m.offset != 40 {
		t.Errorf("offset after down at bottom = %d, want 40", m.offset)
	}

	next, _ = m.Update(key("g"))
	m = next.(viewerModel)
	if m.offset != 0 {
		t.Errorf("offset after g = %d, want 0", m.offset)
	}
}

func TestViewer_PageKeys(t *testing.T) {
	m := newViewerModel("t", manyLines(50))
	m.height = 10

	next, _ := m.Update(key("f"))
	m = next.(viewerModel)
	if m.offset != 10 {
		t.Errorf("offset after page down = %d, want 10", m.offset)
	}

	next, _ = m.Update(key("b"))
	m = next.(viewerModel)
	if m.offset != 0 {
		t.Errorf("offset after page up = %d, want 0", m.offset)
	}
}

func TestViewer_ResizeClampsOffset(t *testing.T) {
	m := newViewerModel("t", manyLines(30))
	m.height = 5
	m.offset = 25

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30 + chromeLines})
	m = next.(viewerModel)
	if m.offset != 0 {
		t.Errorf("offset after growing window = %d, want 0", m.offset)
	}
}

func TestViewer_ViewShowsPosition(t *testing.T) {
	m := newViewerModel("mytree", manyLines(50))
	m.height = 10

	view := m.View()
	if !strings.Contains(view, "mytree") {
		t.Errorf("view missing title: %q", view)
	}
	if !strings.Contains(view, "[1-10/50]") {
		t.Errorf("view missing position indicator: %q", view)
	}
}

func TestViewer_QuitKeys(t *testing.T) {
	m := newViewerModel("t", manyLines(5))

	for _, k := range []string{"q"} {
		_, cmd := m.Update(key(k))
		if cmd == nil {
			t.Errorf("key %q did not quit", k)
		}
	}
}
