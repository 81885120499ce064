package cart

import (
	"errors"
	"sync"
	"time"

	"qr-dish-reality/internal/domain"
)

// ErrCheckoutInFlight is returned when a session tries to submit a cart that
// already has a submission in progress.
var ErrCheckoutInFlight = errors.New("checkout already in progress for this cart")

type key struct {
	Session      string
	RestaurantID int
}

type entry struct {
	cart       *Cart
	submitting bool
	lastUsed   time.Time
}

// Store keeps one cart per (session, restaurant) pair and serializes all
// access to it. Carts live only in memory and are pruned when idle.
type Store struct {
	mu      sync.Mutex
	entries map[key]*entry
}

func NewStore() *Store {
	return &Store{entries: make(map[key]*entry)}
}

func (s *Store) get(k key) *entry {
	e, ok := s.entries[k]
	if !ok {
		e = &entry{cart: New()}
		s.entries[k] = e
	}
	e.lastUsed = time.Now()
	return e
}

func (s *Store) Add(session string, restaurantID int, dish domain.Dish) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(key{session, restaurantID}).cart.Add(dish)
}

func (s *Store) Remove(session string, restaurantID, dishID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(key{session, restaurantID}).cart.Remove(dishID)
}

// View returns a snapshot of the cart's lines and totals.
func (s *Store) View(session string, restaurantID int) ([]Line, float64, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(key{session, restaurantID}).cart
	return c.Lines(), c.TotalPrice(), c.TotalItems()
}

// BeginCheckout marks the cart as submitting and returns a snapshot of its
// lines. A second submission for the same cart is rejected until the first
// one is finished.
func (s *Store) BeginCheckout(session string, restaurantID int) ([]Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.get(key{session, restaurantID})
	if e.submitting {
		return nil, ErrCheckoutInFlight
	}
	e.submitting = true
	return e.cart.Lines(), nil
}

// EndCheckout releases the in-flight flag. On success the whole cart is
// cleared, including lines added while the submission was running; those
// additions were not part of the submitted snapshot and are dropped rather
// than carried into a surprise second order. On failure the cart is left
// untouched so the customer may retry.
func (s *Store) EndCheckout(session string, restaurantID int, success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key{session, restaurantID}
	e, ok := s.entries[k]
	if !ok {
		return
	}
	e.submitting = false
	if success {
		e.cart.Clear()
	}
}

// PruneIdle drops carts that have not been touched for maxIdle. Carts with a
// submission in flight are kept.
func (s *Store) PruneIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var pruned int
	cutoff := time.Now().Add(-maxIdle)
	for k, e := range s.entries {
		if !e.submitting && e.lastUsed.Before(cutoff) {
			delete(s.entries, k)
			pruned++
		}
	}
	return pruned
}
