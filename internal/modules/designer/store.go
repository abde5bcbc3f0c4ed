package designer

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps live designer sessions for the HTTP surface. Each scene is
// owned by the browser session that created it and dropped after TTL of
// inactivity; a dropped scene implicitly discards its layer.
type Store struct {
	mu     sync.Mutex
	cfg    Config
	ttl    time.Duration
	scenes map[string]*storeEntry
	now    func() time.Time
}

type storeEntry struct {
	ctrl    *Controller
	expires time.Time
}

func NewStore(cfg Config, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Store{
		cfg:    cfg,
		ttl:    ttl,
		scenes: make(map[string]*storeEntry),
		now:    time.Now,
	}
}

func (s *Store) Create(color GarmentColor) (string, *Controller, error) {
	ctrl := NewController(s.cfg)
	if err := ctrl.Init(color); err != nil {
		return "", nil, err
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.sweepLocked()
	s.scenes[id] = &storeEntry{ctrl: ctrl, expires: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return id, ctrl, nil
}

// Get returns the controller for a scene id and refreshes its deadline.
func (s *Store) Get(id string) (*Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()

	e, ok := s.scenes[id]
	if !ok {
		return nil, false
	}
	e.expires = s.now().Add(s.ttl)
	return e.ctrl, true
}

func (s *Store) Drop(id string) {
	s.mu.Lock()
	delete(s.scenes, id)
	s.mu.Unlock()
}

func (s *Store) sweepLocked() {
	now := s.now()
	for id, e := range s.scenes {
		if now.After(e.expires) {
			delete(s.scenes, id)
		}
	}
}
