package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/all-my-doggies/internal/storage"
)

type fakeSessions struct {
	sessions []storage.Session
	totals   storage.Totals
	err      error
	loads    int
}

func (f *fakeSessions) RecentSessions(limit int) ([]storage.Session, error) {
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.sessions) > limit {
		return f.sessions[:limit], nil
	}
	return f.sessions, nil
}

func (f *fakeSessions) Totals() (storage.Totals, error) {
	return f.totals, f.err
}

func sampleSession() storage.Session {
	return storage.Session{
		DogName:    "Scottie",
		Player:     "ann",
		Frontend:   "ssh",
		StartedAt:  t0,
		EndedAt:    t0.Add(90 * time.Second),
		Ticks:      5400,
		Feedings:   3,
		FinalFood:  64.6,
		FinalWater: 41,
	}
}

func TestStatsRows(t *testing.T) {
	store := &fakeSessions{
		sessions: []storage.Session{sampleSession()},
		totals:   storage.Totals{Sessions: 1, Feedings: 3, PlayTime: 90 * time.Second},
	}
	m := NewStatsModel(store, 120, 30)

	rows := m.table.Rows()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	want := []string{"Scottie", "ann", "ssh", "1:30", "3", "65%", "41%"}
	if got := rows[0][1:]; strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("row = %v, expected %v", got, want)
	}

	out := m.View()
	for _, s := range []string{"DOGGY DIARY", "Totals", "Sessions  1"} {
		if !strings.Contains(out, s) {
			t.Errorf("view missing %q", s)
		}
	}
}

func TestStatsNarrowShowsTotalsLine(t *testing.T) {
	store := &fakeSessions{totals: storage.Totals{Sessions: 2, Feedings: 5, PlayTime: time.Hour}}
	m := NewStatsModel(store, 80, 24)

	out := m.View()
	if !strings.Contains(out, "2 sessions, 1:00:00 played, 5 feedings") {
		t.Errorf("expected totals line, got %q", out)
	}
	if !strings.Contains(out, "No sessions recorded yet.") {
		t.Error("expected empty message")
	}
}

func TestStatsError(t *testing.T) {
	m := NewStatsModel(&fakeSessions{err: errors.New("database is locked")}, 120, 30)
	if !strings.Contains(m.View(), "database is locked") {
		t.Error("expected the store error in the view")
	}
}

func TestStatsRefreshAndQuit(t *testing.T) {
	store := &fakeSessions{}
	m := NewStatsModel(store, 120, 30)

	updated, _ := m.Update(runeKey("r"))
	if store.loads != 2 {
		t.Errorf("expected reload, got %d loads", store.loads)
	}

	store.sessions = []storage.Session{sampleSession(), sampleSession()}
	updated, _ = updated.Update(runeKey("r"))
	if n := len(updated.(StatsModel).table.Rows()); n != 2 {
		t.Errorf("expected 2 rows after refresh, got %d", n)
	}

	updated, cmd := updated.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected quit message")
	}
	if updated.View() != "" {
		t.Error("expected empty view after quit")
	}
}

func TestStatsWithoutStore(t *testing.T) {
	m := NewStatsModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No sessions recorded yet.") {
		t.Error("expected empty message without a store")
	}
}

func TestFormatPlayTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{90*time.Second + 400*time.Millisecond, "1:30"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := formatPlayTime(tt.d); got != tt.want {
			t.Errorf("formatPlayTime(%v) = %q, expected %q", tt.d, got, tt.want)
		}
	}
}
