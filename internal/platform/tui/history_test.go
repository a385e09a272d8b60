package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dapper-dasher/internal/storage"
)

func TestLoadHistory(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Run{
		{GameID: "dasher", Outcome: "lost", Duration: 1.25, Distance: 250},
		{GameID: "dasher", Outcome: "won", Duration: 10.5, Jumps: 6, Distance: 2100, Preset: "easy"},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	h, err := LoadHistory(store, "dasher")
	if err != nil {
		t.Fatalf("LoadHistory() failed: %v", err)
	}
	if len(h.Runs) != 2 || h.Stats.Runs != 2 || h.Best == nil {
		t.Fatalf("LoadHistory() = %+v", h)
	}

	want := "2 runs, 1 won, 1 lost, 6 jumps, fastest win 10.50s"
	if got := h.Summary(); got != want {
		t.Errorf("Summary() = %q, expected %q", got, want)
	}

	plain := PlainHistory(h)
	for _, s := range []string{"Result", "WON", "LOST", "10.50s", "easy", "2100"} {
		if !strings.Contains(plain, s) {
			t.Errorf("PlainHistory() missing %q:\n%s", s, plain)
		}
	}
}

func TestPlainHistoryEmpty(t *testing.T) {
	if got := PlainHistory(History{}); !strings.Contains(got, "No runs") {
		t.Errorf("PlainHistory() = %q", got)
	}
}

func TestHistoryModel(t *testing.T) {
	h := History{Runs: []storage.Run{
		{ID: 3, Outcome: "lost"},
		{ID: 2, Outcome: "won"},
		{ID: 1, Outcome: "lost"},
	}}
	m := NewHistoryModel("Dapper Dasher", h, 80, 24)

	if n := len(m.table.Rows()); n != 3 {
		t.Fatalf("table has %d rows, expected 3", n)
	}
	if !strings.Contains(m.View(), "RUN HISTORY - Dapper Dasher") {
		t.Error("View() should show the title")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(HistoryModel)
	if m.table.Cursor() != 1 {
		t.Errorf("Cursor() = %d, expected 1", m.table.Cursor())
	}

	next, _ = m.Update(runeKey('g'))
	m = next.(HistoryModel)
	if m.table.Cursor() != 0 {
		t.Errorf("Cursor() = %d, expected 0 after g", m.table.Cursor())
	}

	next, cmd := m.Update(runeKey('q'))
	m = next.(HistoryModel)
	if !m.quitting || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
