// Package chat persists the companion conversation and runs one round trip
// to the AI provider per user message.
package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/sakinahapp/sakinah/internal/ai"
)

// DefaultContextLimit is how many past messages are sent with each request.
const DefaultContextLimit = 40

// ErrEmptyMessage is returned when the user sends only whitespace.
var ErrEmptyMessage = errors.New("message is empty")

// Session sends user messages to a provider with the stored conversation
// as context.
type Session struct {
	Store        *Store
	Provider     ai.Provider
	Persona      ai.PersonaInfo
	Model        string
	ContextLimit int
	Log          *zap.Logger
}

// Send saves text, asks the provider for a reply and saves the reply.
// When w is non-nil the reply is streamed to it as it arrives.
//
// If the provider fails, the saved user message is removed so a retry
// does not duplicate it.
func (s *Session) Send(ctx context.Context, userID, text string, w io.Writer) (*Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}

	userMsg, err := s.Store.Append(userID, ai.RoleUser, text)
	if err != nil {
		return nil, err
	}

	limit := s.ContextLimit
	if limit <= 0 {
		limit = DefaultContextLimit
	}
	history, err := s.Store.Last(userID, limit)
	if err != nil {
		s.rollback(log, userMsg)
		return nil, fmt.Errorf("loading chat history: %w", err)
	}

	req := ai.NewRequest(toMessages(history), s.Persona.Prompt)
	req.Model = s.Model

	var reply string
	if w != nil {
		reply, err = s.Provider.Stream(ctx, req, w)
	} else {
		var resp *ai.Response
		resp, err = s.Provider.Complete(ctx, req)
		if resp != nil {
			reply = resp.Content
		}
	}
	if err != nil {
		log.Warn("chat request failed", zap.String("provider", s.Provider.Name()), zap.Error(err))
		s.rollback(log, userMsg)
		return nil, err
	}

	log.Debug("chat reply", zap.String("persona", s.Persona.Key), zap.Int("context", len(history)), zap.Int("chars", len(reply)))
	return s.Store.Append(userID, ai.RoleAssistant, reply)
}

func (s *Session) rollback(log *zap.Logger, m *Message) {
	if err := s.Store.Delete(m.ID); err != nil {
		log.Error("removing unsent message", zap.String("id", m.ID), zap.Error(err))
	}
}

// toMessages converts stored rows to provider messages. Gemini requires the
// conversation to open with a user turn, so leading assistant rows are dropped.
func toMessages(history []Message) []ai.Message {
	out := make([]ai.Message, 0, len(history))
	for _, m := range history {
		if len(out) == 0 && m.Role != ai.RoleUser {
			continue
		}
		out = append(out, ai.Message{Role: m.Role, Content: m.Content})
	}
	return out
}
