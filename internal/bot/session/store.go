// Package session persists per-conversation wizard state in Redis.
// Each conversation owns one session document; there is no sharing
// across conversations. Idle sessions expire with the key TTL.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Session is the wizard state for one conversation. Fields are filled
// step by step and survive between turns.
type Session struct {
	State string `json:"state"`

	// Purchase and statement flows.
	ProductID       string `json:"product_id,omitempty"`
	CPF             string `json:"cpf,omitempty"`
	UserID          uint   `json:"user_id,omitempty"`
	UserName        string `json:"user_name,omitempty"`
	CardNumber      string `json:"card_number,omitempty"`
	CardID          uint   `json:"card_id,omitempty"`
	CardPrintedName string `json:"card_printed_name,omitempty"`
	Expiry          string `json:"expiry,omitempty"`

	// Enrollment flow.
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Course string `json:"course,omitempty"`
}

// Store reads and writes sessions keyed by conversation id.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func sessionKey(conversationID string) string {
	return "sessao:" + conversationID
}

// Get loads the session for a conversation. A missing session returns
// a zero-value session, not an error.
func (s *Store) Get(ctx context.Context, conversationID string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKey(conversationID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

// Save persists the session and refreshes its TTL.
func (s *Store) Save(ctx context.Context, conversationID string, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(conversationID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear removes the session.
func (s *Store) Clear(ctx context.Context, conversationID string) error {
	if err := s.client.Del(ctx, sessionKey(conversationID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
