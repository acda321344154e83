package session

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mayarj/Ecommerceclientappdesign/models"
	"github.com/mayarj/Ecommerceclientappdesign/pricing"
	"github.com/sirupsen/logrus"
)

const DefaultTTL = 24 * time.Hour

var ErrSessionNotFound = errors.New("session not found or expired")

// Manager keeps the live sessions in memory and forgets those idle for
// longer than the TTL.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	ttl    time.Duration
	fees   pricing.DeliveryFees
	seed   func() []models.Order
	now    func() time.Time
	logger *logrus.Entry
}

type Option func(*Manager)

func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

func WithDeliveryFees(fees pricing.DeliveryFees) Option {
	return func(m *Manager) {
		m.fees = fees
	}
}

// WithSeedOrders gives every new session the orders returned by fn as its
// starting history, newest first.
func WithSeedOrders(fn func() []models.Order) Option {
	return func(m *Manager) {
		m.seed = fn
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func NewManager(logger *logrus.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	m := &Manager{
		sessions: make(map[string]*Session),
		ttl:      DefaultTTL,
		fees:     pricing.DefaultDeliveryFees(),
		now:      time.Now,
		logger:   logger.WithField("component", "session"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) Create() *Session {
	var seed []models.Order
	if m.seed != nil {
		seed = m.seed()
	}
	s := newSession(newSessionID(), m.fees, m.now, seed)

	m.mu.Lock()
	m.sessions[s.ID] = s
	total := len(m.sessions)
	m.mu.Unlock()

	m.logger.WithFields(logrus.Fields{
		"session_id": s.ID,
		"sessions":   total,
	}).Debug("session created")
	return s
}

// Get returns a live session and counts the lookup as activity. An expired
// one is dropped on the spot.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if m.expired(s) {
		m.remove(id)
		return nil, ErrSessionNotFound
	}
	s.mu.Lock()
	s.touch()
	s.mu.Unlock()
	return s, nil
}

func (m *Manager) Delete(id string) {
	m.remove(id)
}

func (m *Manager) remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

func (m *Manager) expired(s *Session) bool {
	return m.now().Sub(s.LastSeen()) > m.ttl
}

// Sweep drops every expired session and reports how many went.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if m.expired(s) {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.logger.WithFields(logrus.Fields{
			"removed":   removed,
			"remaining": len(m.sessions),
		}).Info("expired sessions swept")
	}
	return removed
}

// Run sweeps on every tick until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// List describes the live sessions, most recently active first.
func (m *Manager) List() []Info {
	m.mu.RLock()
	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	m.mu.RUnlock()

	out := make([]Info, 0, len(all))
	for _, s := range all {
		out = append(out, s.Info())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastSeen.After(out[j].LastSeen)
	})
	return out
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func newSessionID() string {
	return "guest_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
