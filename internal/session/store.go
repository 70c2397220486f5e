package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/road_hazard_map/internal/metrics"
)

// Session - состояние сессии пользователя.
// Учетные данные не хранятся: вход выполняется по одному имени.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	LoggedIn  bool      `json:"logged_in"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store - потокобезопасное хранилище сессий в памяти
type Store struct {
	mu              sync.RWMutex
	sessions        map[string]*Session
	ttl             time.Duration
	defaultUsername string
	clock           clockwork.Clock
	metrics         *metrics.Metrics
}

// NewStore создает новое хранилище сессий
func NewStore(ttl time.Duration, defaultUsername string, clock clockwork.Clock, m *metrics.Metrics) *Store {
	return &Store{
		sessions:        make(map[string]*Session),
		ttl:             ttl,
		defaultUsername: defaultUsername,
		clock:           clock,
		metrics:         m,
	}
}

// Login открывает новую сессию. Имя очищается от пробелов по краям,
// пустое имя заменяется именем по умолчанию. Пароль не запрашивается.
func (s *Store) Login(username string) (Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		username = s.defaultUsername
	}

	token, err := newToken()
	if err != nil {
		return Session{}, err
	}

	now := s.clock.Now().UTC()
	sess := &Session{
		Token:     token,
		Username:  username,
		LoggedIn:  true,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()

	s.metrics.SessionLogins.Inc()

	return *sess, nil
}

// Logout закрывает сессию. Имя пользователя сохраняется,
// сбрасывается только признак входа.
func (s *Store) Logout(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok || s.clock.Now().After(sess.ExpiresAt) {
		return Session{}, false
	}
	sess.LoggedIn = false
	return *sess, true
}

// Get возвращает сессию по токену. Просроченные сессии удаляются.
func (s *Store) Get(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return Session{}, false
	}
	if s.clock.Now().After(sess.ExpiresAt) {
		delete(s.sessions, token)
		return Session{}, false
	}
	return *sess, true
}

// StartCleanup запускает фоновую очистку просроченных сессий
func (s *Store) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := s.clock.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
				s.pruneExpired()
			}
		}
	}()
}

func (s *Store) pruneExpired() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}

// newToken генерирует криптографически стойкий токен сессии
func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
