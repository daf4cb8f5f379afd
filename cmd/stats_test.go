package cmd

import (
	"strings"
	"testing"

	"github.com/sakinahapp/sakinah/internal/activity"
	"github.com/sakinahapp/sakinah/internal/ai"
)

func TestParseSources(t *testing.T) {
	tests := []struct {
		in   string
		want int
		err  bool
	}{
		{"all", 3, false},
		{"", 3, false},
		{"Journal", 1, false},
		{"mood", 1, false},
		{"chat", 1, false},
		{"prayer", 0, true},
	}
	for _, tt := range tests {
		got, err := parseSources(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("parseSources(%q) err = %v", tt.in, err)
			continue
		}
		if len(got) != tt.want {
			t.Errorf("parseSources(%q) = %v", tt.in, got)
		}
	}
}

func TestRunStats_Empty(t *testing.T) {
	configTestEnv(t)
	statsSource = "all"

	out := captureStdout(t, func() {
		if err := runStats(nil, nil); err != nil {
			t.Errorf("runStats: %v", err)
		}
	})
	if !strings.Contains(out, "Nothing recorded yet") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRunStats_CountsUserActivityOnly(t *testing.T) {
	configTestEnv(t)
	resetJournalFlags()
	t.Cleanup(resetJournalFlags)

	captureStdout(t, func() {
		if err := runJournalAdd(nil, []string{"alhamdulillah"}); err != nil {
			t.Errorf("runJournalAdd: %v", err)
		}
	})

	a, err := openApp()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.chats().Append(a.userID(), ai.RoleAssistant, "reply"); err != nil {
		t.Fatal(err)
	}
	recs, err := a.records(activity.SourceJournal, activity.SourceChat)
	a.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(activity.Qualifying(recs)) != 1 {
		t.Errorf("qualifying = %d, want 1", len(activity.Qualifying(recs)))
	}

	statsSource = "all"
	out := captureStdout(t, func() {
		if err := runStats(nil, nil); err != nil {
			t.Errorf("runStats: %v", err)
		}
	})
	if !strings.Contains(out, "1 day") {
		t.Errorf("expected a 1 day streak:\n%s", out)
	}
}

func TestRunStats_BadSource(t *testing.T) {
	configTestEnv(t)
	statsSource = "prayer"
	t.Cleanup(func() { statsSource = "all" })

	if err := runStats(nil, nil); err == nil {
		t.Fatal("expected error for unknown source")
	}
}
