package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/shshafin/work-agency-client-sub003/internal/domain/auth"
	apperrors "github.com/shshafin/work-agency-client-sub003/internal/errors"
	"github.com/shshafin/work-agency-client-sub003/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.CredentialVerifier = (*MockVerifier)(nil)
	_ ports.SessionStore       = (*MemorySessionStore)(nil)
)

// MockVerifier is a func-field double for the credential verifier port.
type MockVerifier struct {
	VerifyFunc func(ctx context.Context, creds ports.Credentials) (ports.Grant, error)

	// Calls records every credential set passed to Verify.
	Calls []ports.Credentials
}

func (m *MockVerifier) Verify(ctx context.Context, creds ports.Credentials) (ports.Grant, error) {
	m.Calls = append(m.Calls, creds)
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, creds)
	}
	return ports.Grant{}, apperrors.Unauthorized("invalid credentials")
}

// MemorySessionStore is an in-memory session store for unit tests. It is
// safe for concurrent use so handler tests can share one instance.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session

	// SaveErr and GetErr force failures when set.
	SaveErr error
	GetErr  error
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if m.GetErr != nil {
		return domainauth.Session{}, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, apperrors.NotFound("session not found")
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len reports the number of stored sessions.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
