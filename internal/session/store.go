// internal/session/store.go
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/egpt/storebuilder/internal/models"
)

var (
	ErrNotFound        = errors.New("session not found")
	ErrNoProducts      = errors.New("at least one product is required")
	ErrNoTheme         = errors.New("unknown theme")
	ErrStaleGeneration = errors.New("generation superseded, result discarded")
)

// Session is one wizard run. All fields are snapshots owned by the store;
// handlers only ever see copies.
type Session struct {
	ID          uuid.UUID                   `json:"id"`
	State       State                       `json:"state"`
	UserPrompt  string                      `json:"user_prompt,omitempty"`
	Products    []models.Product            `json:"products,omitempty"`
	Theme       *models.Theme               `json:"theme,omitempty"`
	Enhancement *models.EnhancementResponse `json:"enhancement,omitempty"`
	FailureMsg  string                      `json:"failure_message,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`

	// generation counts submissions so a result from a superseded
	// submission is discarded instead of applied to stale state.
	generation uint64
}

// Store holds sessions in memory for the lifetime of the process. There
// is no persistence: a session dies with the process or its TTL.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
	}
	go s.sweep()
	return s
}

func (s *Store) sweep() {
	for {
		time.Sleep(time.Minute)
		s.removeExpired(time.Now())
	}
}

func (s *Store) removeExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if now.Sub(sess.UpdatedAt) > s.ttl {
			delete(s.sessions, id)
			logrus.WithField("session_id", id).Debug("Session expired")
		}
	}
}

// Create starts a new wizard session in the Landing state.
func (s *Store) Create() Session {
	sess := &Session{
		ID:        uuid.New(),
		State:     StateLanding,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return snapshot(sess)
}

// Get returns a copy of the session.
func (s *Store) Get(id uuid.UUID) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return snapshot(sess), nil
}

// Navigate performs a client-requested state change.
func (s *Store) Navigate(id uuid.UUID, to State) (Session, error) {
	return s.update(id, func(sess *Session) error {
		if !CanNavigate(sess.State, to) {
			return ErrInvalidTransition
		}
		sess.State = to
		return nil
	})
}

// SetCatalog attaches a validated product list to a session on the Home
// screen. Catalog validation has already run; the store never sees an
// invalid list.
func (s *Store) SetCatalog(id uuid.UUID, products []models.Product) (Session, error) {
	return s.update(id, func(sess *Session) error {
		if sess.State != StateHome {
			return ErrInvalidTransition
		}
		sess.Products = products
		return nil
	})
}

// BeginGeneration moves the session into Processing and stamps a new
// generation. The returned generation must be handed back to
// CompleteGeneration, FailGeneration or AbortGeneration.
func (s *Store) BeginGeneration(id uuid.UUID, prompt string) (Session, uint64, error) {
	var gen uint64
	sess, err := s.update(id, func(sess *Session) error {
		if !CanTransition(sess.State, StateProcessing) {
			return ErrInvalidTransition
		}
		if len(sess.Products) == 0 {
			return ErrNoProducts
		}
		sess.UserPrompt = prompt
		sess.State = StateProcessing
		sess.FailureMsg = ""
		sess.generation++
		gen = sess.generation
		return nil
	})
	return sess, gen, err
}

// CompleteGeneration applies an enhancement result and advances to
// Preview, unless a newer submission superseded this one.
func (s *Store) CompleteGeneration(id uuid.UUID, gen uint64, resp *models.EnhancementResponse) (Session, error) {
	return s.update(id, func(sess *Session) error {
		if sess.generation != gen || sess.State != StateProcessing {
			return ErrStaleGeneration
		}
		sess.Enhancement = resp
		sess.State = StatePreview
		return nil
	})
}

// FailGeneration records a terminal failure for this attempt. The user
// can retry from the Failed state or go back.
func (s *Store) FailGeneration(id uuid.UUID, gen uint64, msg string) (Session, error) {
	return s.update(id, func(sess *Session) error {
		if sess.generation != gen || sess.State != StateProcessing {
			return ErrStaleGeneration
		}
		sess.State = StateFailed
		sess.FailureMsg = msg
		return nil
	})
}

// AbortGeneration discards an in-flight generation (client went away) and
// returns the session to Home without touching its enhancement state.
func (s *Store) AbortGeneration(id uuid.UUID, gen uint64) (Session, error) {
	return s.update(id, func(sess *Session) error {
		if sess.generation != gen || sess.State != StateProcessing {
			return ErrStaleGeneration
		}
		sess.State = StateHome
		return nil
	})
}

// SelectTheme is the only path into the Store state, and it requires both
// a known theme and a completed enhancement.
func (s *Store) SelectTheme(id uuid.UUID, themeID string) (Session, error) {
	return s.update(id, func(sess *Session) error {
		if !CanTransition(sess.State, StateStore) {
			return ErrInvalidTransition
		}
		if sess.Enhancement == nil {
			return ErrInvalidTransition
		}
		theme, ok := models.ThemeByID(themeID)
		if !ok {
			return ErrNoTheme
		}
		sess.Theme = &theme
		sess.State = StateStore
		return nil
	})
}

func (s *Store) update(id uuid.UUID, fn func(*Session) error) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	if err := fn(sess); err != nil {
		return snapshot(sess), err
	}
	sess.UpdatedAt = time.Now()
	return snapshot(sess), nil
}

func snapshot(sess *Session) Session {
	out := *sess
	out.Products = append([]models.Product(nil), sess.Products...)
	if sess.Theme != nil {
		theme := *sess.Theme
		out.Theme = &theme
	}
	if sess.Enhancement != nil {
		resp := *sess.Enhancement
		resp.Products = append([]models.EnhancedProduct(nil), sess.Enhancement.Products...)
		out.Enhancement = &resp
	}
	return out
}
