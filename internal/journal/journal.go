package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sakinahapp/sakinah/internal/activity"
)

// MaxMood is the highest mood score an entry may carry. Zero means no mood.
const MaxMood = 5

// ErrNotFound is returned when an entry id does not exist.
var ErrNotFound = errors.New("journal entry not found")

// MoodEmoji maps a mood score to its face. Index 0 is empty.
var MoodEmoji = [...]string{"", "😞", "😟", "😐", "🙂", "😊"}

// Entry is one journal entry.
type Entry struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	Mood      int
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store handles journal persistence.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore creates a new journal store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Add creates an entry and returns it.
func (s *Store) Add(userID, title, content string, mood int, tags []string) (*Entry, error) {
	content = strings.TrimSpace(content)
	if err := validate(content, mood); err != nil {
		return nil, err
	}

	now := s.now()
	e := &Entry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     strings.TrimSpace(title),
		Content:   content,
		Mood:      mood,
		Tags:      NormalizeTags(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := s.db.Exec(
		`INSERT INTO journal_entries (id, user_id, title, content, mood, tags, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Title, e.Content, e.Mood, strings.Join(e.Tags, ","), now.UnixMilli(), now.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("adding journal entry: %w", err)
	}
	return e, nil
}

// Update replaces the editable fields of an entry.
func (s *Store) Update(id, title, content string, mood int, tags []string) error {
	content = strings.TrimSpace(content)
	if err := validate(content, mood); err != nil {
		return err
	}

	res, err := s.db.Exec(
		`UPDATE journal_entries SET title = ?, content = ?, mood = ?, tags = ?, updated_at = ? WHERE id = ?`,
		strings.TrimSpace(title), content, mood, strings.Join(NormalizeTags(tags), ","), s.now().UnixMilli(), id,
	)
	if err != nil {
		return fmt.Errorf("updating journal entry: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Delete removes an entry.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM journal_entries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// DeleteAll removes every entry for a user and returns how many were removed.
func (s *Store) DeleteAll(userID string) (int, error) {
	res, err := s.db.Exec(`DELETE FROM journal_entries WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// Get returns a single entry. A unique id prefix is accepted.
func (s *Store) Get(id string) (*Entry, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	rows, err := s.db.Query(selectEntry+` WHERE id = ? OR id LIKE ? ESCAPE '\' LIMIT 2`, id, escapeLike(id)+"%")
	if err != nil {
		return nil, err
	}
	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}

	switch len(entries) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case 1:
		return &entries[0], nil
	}
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, fmt.Errorf("ambiguous id prefix %q", id)
}

// List returns a user's entries, newest first. A limit of 0 means no limit.
func (s *Store) List(userID string, limit, offset int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(
		selectEntry+` WHERE user_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

// Search returns entries whose title, content or tags contain q, ignoring case.
func (s *Store) Search(userID, q string) ([]Entry, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.List(userID, 0, 0)
	}
	pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
	rows, err := s.db.Query(
		selectEntry+` WHERE user_id = ? AND (LOWER(title) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\' OR LOWER(tags) LIKE ? ESCAPE '\') ORDER BY created_at DESC, rowid DESC`,
		userID, pattern, pattern, pattern,
	)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

// Count returns the number of entries a user has.
func (s *Store) Count(userID string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM journal_entries WHERE user_id = ?`, userID).Scan(&n)
	return n, err
}

// Records returns the user's entries as activity records, oldest first.
func (s *Store) Records(userID string) ([]activity.Record, error) {
	rows, err := s.db.Query(
		`SELECT id, created_at FROM journal_entries WHERE user_id = ? ORDER BY created_at ASC, rowid ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []activity.Record
	for rows.Next() {
		var id string
		var ms int64
		if err := rows.Scan(&id, &ms); err != nil {
			return nil, err
		}
		out = append(out, activity.Record{
			ID:     id,
			Source: activity.SourceJournal,
			Author: activity.AuthorUser,
			At:     time.UnixMilli(ms),
		})
	}
	return out, rows.Err()
}

// NormalizeTags trims, lowercases and deduplicates tags, keeping first-seen order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// ParseTags splits a comma-separated tag string.
func ParseTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return NormalizeTags(strings.Split(s, ","))
}

func validate(content string, mood int) error {
	if content == "" {
		return errors.New("journal content is required")
	}
	if mood < 0 || mood > MaxMood {
		return fmt.Errorf("invalid mood %d (use 1-%d, or 0 for none)", mood, MaxMood)
	}
	return nil
}

const selectEntry = `SELECT id, user_id, title, content, mood, tags, created_at, updated_at FROM journal_entries`

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var tagStr string
		var created, updated int64
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.Mood, &tagStr, &created, &updated); err != nil {
			return nil, err
		}
		if tagStr != "" {
			e.Tags = strings.Split(tagStr, ",")
		}
		e.CreatedAt = time.UnixMilli(created)
		e.UpdatedAt = time.UnixMilli(updated)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
