// Package mood stores one mood score per user per local day and picks a
// Quran verse to match the week's average.
package mood

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sakinahapp/sakinah/internal/activity"
)

const (
	MinScore = 1
	MaxScore = 5
)

// ErrInvalidScore is returned for a score outside 1..5.
var ErrInvalidScore = errors.New("mood score must be between 1 and 5")

// Emoji maps a score to its face. Index 0 is a blank for unlogged days.
var Emoji = [...]string{"·", "😞", "😟", "😐", "🙂", "😊"}

// Labels maps a score to its English description.
var Labels = [...]string{"", "Very bad", "Bad", "Okay", "Good", "Very good"}

// Entry is a logged mood for one day.
type Entry struct {
	UserID   string
	Day      string // activity day key
	Score    int
	LoggedAt time.Time
}

// DayMood is one slot of the weekly view. Score is 0 when nothing was logged.
type DayMood struct {
	Day   string
	Date  time.Time
	Score int
}

// Store handles mood persistence.
type Store struct {
	db *sql.DB
}

// NewStore creates a new mood store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Log records score for now's local day, replacing any earlier score that day.
func (s *Store) Log(userID string, score int, now time.Time) (*Entry, error) {
	if score < MinScore || score > MaxScore {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidScore, score)
	}

	e := &Entry{
		UserID:   userID,
		Day:      activity.DayKey(now, now.Location()),
		Score:    score,
		LoggedAt: now,
	}
	_, err := s.db.Exec(
		`INSERT INTO mood_logs (user_id, day, score, logged_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id, day) DO UPDATE SET score = excluded.score, logged_at = excluded.logged_at`,
		e.UserID, e.Day, e.Score, now.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("logging mood: %w", err)
	}
	return e, nil
}

// Today returns the mood logged for now's local day, or nil.
func (s *Store) Today(userID string, now time.Time) (*Entry, error) {
	day := activity.DayKey(now, now.Location())

	var e Entry
	var ms int64
	err := s.db.QueryRow(
		`SELECT user_id, day, score, logged_at FROM mood_logs WHERE user_id = ? AND day = ?`,
		userID, day,
	).Scan(&e.UserID, &e.Day, &e.Score, &ms)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e.LoggedAt = time.UnixMilli(ms)
	return &e, nil
}

// Week returns the seven days ending on now's local day, oldest first.
func (s *Store) Week(userID string, now time.Time) ([]DayMood, error) {
	loc := now.Location()
	base := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, loc)

	week := make([]DayMood, 7)
	for i := range week {
		d := base.AddDate(0, 0, i-6)
		week[i] = DayMood{
			Day:  activity.DayKey(d, loc),
			Date: time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc),
		}
	}

	rows, err := s.db.Query(
		`SELECT day, score FROM mood_logs WHERE user_id = ? AND day >= ? AND day <= ?`,
		userID, week[0].Day, week[6].Day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make(map[string]int)
	for rows.Next() {
		var day string
		var score int
		if err := rows.Scan(&day, &score); err != nil {
			return nil, err
		}
		scores[day] = score
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range week {
		week[i].Score = scores[week[i].Day]
	}
	return week, nil
}

// DeleteAll removes a user's mood history.
func (s *Store) DeleteAll(userID string) (int, error) {
	res, err := s.db.Exec(`DELETE FROM mood_logs WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// Records returns each logged mood as an activity record, oldest first.
func (s *Store) Records(userID string) ([]activity.Record, error) {
	rows, err := s.db.Query(
		`SELECT day, logged_at FROM mood_logs WHERE user_id = ? ORDER BY logged_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []activity.Record
	for rows.Next() {
		var day string
		var ms int64
		if err := rows.Scan(&day, &ms); err != nil {
			return nil, err
		}
		out = append(out, activity.Record{
			ID:     "mood:" + day,
			Source: activity.SourceMood,
			Author: activity.AuthorUser,
			At:     time.UnixMilli(ms),
		})
	}
	return out, rows.Err()
}

// Average returns the mean score over logged days. It is 0 when nothing was logged.
func Average(week []DayMood) float64 {
	var sum, n int
	for _, d := range week {
		if d.Score > 0 {
			sum += d.Score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
