package journal

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/sakinahapp/sakinah/internal/activity"
	"github.com/sakinahapp/sakinah/internal/store"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := store.OpenPath(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return NewStore(db.Conn())
}

// clock returns a now func that advances one minute per call.
func clock(start time.Time) func() time.Time {
	cur := start
	return func() time.Time {
		t := cur
		cur = cur.Add(time.Minute)
		return t
	}
}

func TestAddAndGet(t *testing.T) {
	s := setupTestStore(t)

	e, err := s.Add("u1", " Syukur ", "Alhamdulillah for today", 4, []string{" Gratitude", "family", "gratitude"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if e.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := s.Get(e.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "Syukur" {
		t.Errorf("expected trimmed title, got %q", got.Title)
	}
	if got.Mood != 4 {
		t.Errorf("expected mood 4, got %d", got.Mood)
	}
	if !reflect.DeepEqual(got.Tags, []string{"gratitude", "family"}) {
		t.Errorf("tags not normalized: %v", got.Tags)
	}

	byPrefix, err := s.Get(e.ID[:8])
	if err != nil {
		t.Fatalf("Get by prefix failed: %v", err)
	}
	if byPrefix.ID != e.ID {
		t.Errorf("prefix lookup returned %s", byPrefix.ID)
	}
}

func TestAddValidation(t *testing.T) {
	s := setupTestStore(t)

	tests := []struct {
		name    string
		content string
		mood    int
	}{
		{"empty content", "   ", 0},
		{"mood too high", "ok", 6},
		{"negative mood", "ok", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Add("u1", "", tt.content, tt.mood, nil); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestListNewestFirst(t *testing.T) {
	s := setupTestStore(t)
	s.now = clock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	for _, c := range []string{"first", "second", "third"} {
		if _, err := s.Add("u1", "", c, 0, nil); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.Add("u2", "", "someone else", 0, nil); err != nil {
		t.Fatal(err)
	}

	entries, err := s.List("u1", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Content != "third" || entries[2].Content != "first" {
		t.Errorf("wrong order: %q, %q", entries[0].Content, entries[2].Content)
	}

	page, err := s.List("u1", 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(page) != 1 || page[0].Content != "second" {
		t.Errorf("pagination returned %+v", page)
	}
}

func TestUpdate(t *testing.T) {
	s := setupTestStore(t)
	s.now = clock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	e, _ := s.Add("u1", "", "draft", 0, nil)
	if err := s.Update(e.ID, "Final", "edited", 2, []string{"sabr"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, _ := s.Get(e.ID)
	if got.Content != "edited" || got.Title != "Final" || got.Mood != 2 {
		t.Errorf("update not applied: %+v", got)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Error("UpdatedAt should advance")
	}

	if err := s.Update("missing", "", "x", 0, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := setupTestStore(t)

	e, _ := s.Add("u1", "", "bye", 0, nil)
	if err := s.Delete(e.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete should be ErrNotFound, got %v", err)
	}
}

func TestDeleteAll(t *testing.T) {
	s := setupTestStore(t)
	s.Add("u1", "", "a", 0, nil)
	s.Add("u1", "", "b", 0, nil)
	s.Add("u2", "", "c", 0, nil)

	n, err := s.DeleteAll("u1")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected 2 removed, got %d", n)
	}
	if c, _ := s.Count("u2"); c != 1 {
		t.Errorf("other user's entries should survive, got %d", c)
	}
}

func TestSearch(t *testing.T) {
	s := setupTestStore(t)
	s.Add("u1", "Morning", "Prayed Subuh on time", 0, nil)
	s.Add("u1", "", "Felt anxious at work", 2, []string{"work"})
	s.Add("u1", "", "100% grateful", 5, nil)

	tests := []struct {
		q    string
		want int
	}{
		{"subuh", 1},
		{"MORNING", 1},
		{"work", 1},
		{"100%", 1},
		{"%", 1},
		{"ramadan", 0},
		{"", 3},
	}
	for _, tt := range tests {
		t.Run(tt.q, func(t *testing.T) {
			got, err := s.Search("u1", tt.q)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tt.want {
				t.Errorf("Search(%q) = %d results, want %d", tt.q, len(got), tt.want)
			}
		})
	}
}

func TestRecords(t *testing.T) {
	s := setupTestStore(t)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s.now = clock(start)
	s.Add("u1", "", "a", 0, nil)
	s.Add("u1", "", "b", 0, nil)

	recs, err := s.Records("u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	for _, r := range recs {
		if r.Source != activity.SourceJournal || !r.Qualifies() {
			t.Errorf("unexpected record %+v", r)
		}
	}
	if !recs[0].At.Equal(start) {
		t.Errorf("first record at %v, want %v", recs[0].At, start)
	}
}

func TestParseTags(t *testing.T) {
	if got := ParseTags(""); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
	if got := ParseTags("Dua, ,dua,Quran"); !reflect.DeepEqual(got, []string{"dua", "quran"}) {
		t.Errorf("ParseTags = %v", got)
	}
}
