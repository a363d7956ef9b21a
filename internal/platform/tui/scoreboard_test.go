package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/terminal-arcade/goldrush/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardLoadsRuns(t *testing.T) {
	store := newTestStore(t)
	store.SaveRun(storage.RunRecord{Score: 1800, Gold: 18, GoldTotal: 18, Outcome: "won"})
	store.SaveRun(storage.RunRecord{Score: 400, Gold: 4, GoldTotal: 18, Outcome: "lost"})

	m := NewScoreboardModel(store, 80, 24)

	if len(m.runs) != 2 {
		t.Fatalf("Expected 2 runs loaded, got %d", len(m.runs))
	}
	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("Expected 2 table rows, got %d", len(rows))
	}
	// Best run first
	if rows[0][0] != "#1" || rows[0][1] != "1800" || rows[0][3] != "won" {
		t.Errorf("Unexpected first row: %v", rows[0])
	}
	if rows[1][2] != "4/18" {
		t.Errorf("Expected gold column 4/18, got %q", rows[1][2])
	}

	view := m.View()
	if !strings.Contains(view, "BEST RUNS") {
		t.Error("View should render the title")
	}
	if !strings.Contains(view, "1800") {
		t.Error("View should render the best score")
	}
}

func TestScoreboardEmptyStore(t *testing.T) {
	m := NewScoreboardModel(newTestStore(t), 80, 24)

	if len(m.runs) != 0 {
		t.Fatalf("Expected no runs, got %d", len(m.runs))
	}
	if !strings.Contains(m.renderTableContent(), "No runs recorded yet") {
		t.Error("Empty store should render the placeholder message")
	}
}

func TestScoreboardNilStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	if len(m.runs) != 0 {
		t.Errorf("Nil store should load no runs, got %d", len(m.runs))
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(newTestStore(t), 80, 24)

	updated, cmd := m.Update(keyMsg("q"))
	sb := updated.(ScoreboardModel)

	if !sb.quitting {
		t.Error("Quit key should set quitting")
	}
	if cmd == nil {
		t.Fatal("Quit key should return a command")
	}
	if sb.View() != "" {
		t.Error("View should be empty while quitting")
	}
}

func TestScoreboardResize(t *testing.T) {
	store := newTestStore(t)
	store.SaveRun(storage.RunRecord{Score: 100, Outcome: "lost"})

	m := NewScoreboardModel(store, 80, 24)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	sb := updated.(ScoreboardModel)

	if sb.width != 120 || sb.height != 40 {
		t.Errorf("Size = %dx%d, expected 120x40", sb.width, sb.height)
	}
	if len(sb.table.Rows()) != 1 {
		t.Errorf("Rows lost on resize: %d", len(sb.table.Rows()))
	}
}
