package chat

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sakinahapp/sakinah/internal/activity"
	"github.com/sakinahapp/sakinah/internal/ai"
)

// Message is one stored chat turn.
type Message struct {
	ID        string
	UserID    string
	Role      string // ai.RoleUser or ai.RoleAssistant
	Content   string
	CreatedAt time.Time
}

// Store handles chat message persistence.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore creates a new chat store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Append saves a message and returns it.
func (s *Store) Append(userID, role, content string) (*Message, error) {
	if role != ai.RoleUser && role != ai.RoleAssistant {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	m := &Message{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      role,
		Content:   content,
		CreatedAt: s.now(),
	}
	_, err := s.db.Exec(
		`INSERT INTO chat_messages (id, user_id, role, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.Role, m.Content, m.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("saving chat message: %w", err)
	}
	return m, nil
}

// History returns every message for a user, oldest first.
func (s *Store) History(userID string) ([]Message, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, role, content, created_at FROM chat_messages WHERE user_id = ? ORDER BY created_at ASC, rowid ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return scanMessages(rows)
}

// Last returns the most recent n messages, oldest first.
func (s *Store) Last(userID string, n int) ([]Message, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := s.db.Query(
		`SELECT id, user_id, role, content, created_at FROM (
			SELECT rowid AS rid, id, user_id, role, content, created_at FROM chat_messages
			WHERE user_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?
		) ORDER BY created_at ASC, rid ASC`,
		userID, n,
	)
	if err != nil {
		return nil, err
	}
	return scanMessages(rows)
}

// Delete removes a single message.
func (s *Store) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM chat_messages WHERE id = ?`, id)
	return err
}

// Clear removes a user's whole conversation and returns how many messages were removed.
func (s *Store) Clear(userID string) (int, error) {
	res, err := s.db.Exec(`DELETE FROM chat_messages WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// CountByRole returns how many messages a user has with the given role.
func (s *Store) CountByRole(userID, role string) (int, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM chat_messages WHERE user_id = ? AND role = ?`,
		userID, role,
	).Scan(&n)
	return n, err
}

// Records returns every message as an activity record. Assistant replies
// carry AuthorAssistant and so never count toward activity.
func (s *Store) Records(userID string) ([]activity.Record, error) {
	msgs, err := s.History(userID)
	if err != nil {
		return nil, err
	}
	out := make([]activity.Record, 0, len(msgs))
	for _, m := range msgs {
		author := activity.AuthorUser
		if m.Role == ai.RoleAssistant {
			author = activity.AuthorAssistant
		}
		out = append(out, activity.Record{
			ID:     m.ID,
			Source: activity.SourceChat,
			Author: author,
			At:     m.CreatedAt,
		})
	}
	return out, nil
}

func scanMessages(rows *sql.Rows) ([]Message, error) {
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var m Message
		var ms int64
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Content, &ms); err != nil {
			return nil, err
		}
		m.CreatedAt = time.UnixMilli(ms)
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
