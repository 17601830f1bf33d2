package redis

// Package redis provides the Redis-backed session store. This is the durable
// half of the credential store: the accessToken cookie mirrors the token to
// the browser while the session record lives here.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/shshafin/work-agency-client-sub003/internal/domain/auth"
	apperrors "github.com/shshafin/work-agency-client-sub003/internal/errors"
)

// SessionStore persists sessions in Redis with TTL semantics derived from
// the session's ExpiresAt.
type SessionStore struct {
	client     redis.UniversalClient
	prefix     string
	defaultTTL time.Duration
}

// SessionStoreOptions configures a SessionStore.
type SessionStoreOptions struct {
	Client redis.UniversalClient
	// Prefix namespaces the session keys. Defaults to "session:".
	Prefix string
	// DefaultTTL bounds records whose session has no expiry. Defaults to 7 days.
	DefaultTTL time.Duration
}

// NewSessionStore creates a Redis-backed session store.
func NewSessionStore(opts SessionStoreOptions) *SessionStore {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "session:"
	}
	ttl := opts.DefaultTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &SessionStore{client: opts.Client, prefix: prefix, defaultTTL: ttl}
}

// Save stores the session record. Sessions whose expiry already passed are
// rejected rather than written with a non-positive TTL.
func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	ttl := s.defaultTTL
	if !sess.ExpiresAt.IsZero() {
		ttl = time.Until(sess.ExpiresAt)
		if ttl <= 0 {
			return errors.New("session is expired")
		}
	}

	return s.client.Set(ctx, s.prefix+sess.ID, data, ttl).Err()
}

// Get retrieves a session by ID. Expired records are deleted and reported
// as not found even when the Redis TTL has not fired yet.
func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, apperrors.NotFound("session not found")
	}

	data, err := s.client.Get(ctx, s.prefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Session{}, apperrors.NotFound("session not found")
		}
		return domainauth.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess domainauth.Session
	if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
		return domainauth.Session{}, fmt.Errorf("unmarshal session: %w", unmarshalErr)
	}

	if !sess.ExpiresAt.IsZero() && time.Now().After(sess.ExpiresAt) {
		if deleteErr := s.Delete(ctx, id); deleteErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup expired session: %w", deleteErr)
		}
		return domainauth.Session{}, apperrors.NotFound("session not found")
	}

	return sess, nil
}

// Delete removes a session. Deleting an absent session is not an error.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.client.Del(ctx, s.prefix+id).Err()
}
