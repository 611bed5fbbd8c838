package cart

import (
	"sync"

	"github.com/grovetools/storefront/catalog"
	"github.com/grovetools/storefront/config"
	"github.com/grovetools/storefront/errors"
	"github.com/grovetools/storefront/logging"
	"github.com/grovetools/storefront/schema"
	"github.com/grovetools/storefront/state"
	"github.com/sirupsen/logrus"
)

// Update is sent to subscribers after every successful transition.
type Update struct {
	Action Action
	State  State
}

// Store owns the cart state. Transitions go through Reduce; after any that
// may change items, the item list is written to the key/value store.
type Store struct {
	mu          sync.RWMutex
	state       State
	slot        *state.Slot[LineItem]
	logger      *logrus.Entry
	subscribers map[chan Update]struct{}
	ready       bool
}

// Option configures a Store.
type Option func(*storeOptions)

type storeOptions struct {
	key    string
	logger *logrus.Entry
}

// WithKey sets the storage key. Defaults to "cart".
func WithKey(key string) Option {
	return func(o *storeOptions) { o.key = key }
}

// WithLogger sets the logger used for rehydration and persistence messages.
func WithLogger(logger *logrus.Entry) Option {
	return func(o *storeOptions) { o.logger = logger }
}

// New creates a cart store over kv and rehydrates it. A nil kv gives an
// unpersisted cart.
func New(kv state.KV, opts ...Option) *Store {
	o := storeOptions{key: config.DefaultCartKey}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.NewLogger("cart")
	}

	s := &Store{
		state:       Initial(),
		logger:      o.logger,
		subscribers: make(map[chan Update]struct{}),
		ready:       true,
	}

	if kv != nil {
		s.slot = &state.Slot[LineItem]{
			KV:     kv,
			Key:    o.key,
			Logger: o.logger,
			Check:  ValidateItems,
		}
		if v, err := schema.For([]LineItem{}, "cart"); err == nil {
			s.slot.Schema = v
		} else {
			o.logger.WithError(err).Warn("Cart schema unavailable, loading without schema validation")
		}
		s.rehydrate()
	}

	return s
}

func (s *Store) rehydrate() {
	items, ok := s.slot.Load()
	if !ok {
		return
	}
	next, err := Reduce(s.state, Load{Items: items})
	if err != nil {
		s.logger.WithError(err).Warn("Saved cart rejected, starting empty")
		return
	}
	s.state = next
	s.logger.WithField("items", len(next.Items)).Debug("Cart rehydrated")
}

func (s *Store) mustBeReady() {
	if s == nil || !s.ready {
		panic(errors.NotInitialized("cart"))
	}
}

// Dispatch applies an action and returns the resulting state. On error the
// state is unchanged and nothing is persisted or broadcast.
func (s *Store) Dispatch(a Action) (State, error) {
	s.mustBeReady()

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Reduce(s.state, a)
	if err != nil {
		s.logger.WithError(err).Warnf("Rejected %T", a)
		return s.snapshot(), err
	}
	s.state = next

	if s.slot != nil && a.touchesItems() {
		s.slot.Save(cloneItems(next.Items))
	}

	snap := next
	snap.Items = cloneItems(next.Items)

	update := Update{Action: a, State: snap}
	for ch := range s.subscribers {
		select {
		case ch <- update:
		default:
			// Slow subscribers miss updates rather than stall the writer
		}
	}

	return snap, nil
}

// State returns a snapshot of the current cart.
func (s *Store) State() State {
	s.mustBeReady()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// snapshot copies the state for callers; s.mu must be held.
func (s *Store) snapshot() State {
	snap := s.state
	snap.Items = cloneItems(s.state.Items)
	return snap
}

// AddMenu adds quantity persons of menu to the cart.
func (s *Store) AddMenu(menu catalog.Menu, quantity int) error {
	_, err := s.Dispatch(AddMenu{Menu: menu, Quantity: quantity})
	return err
}

// AddDish adds quantity portions of dish to the cart.
func (s *Store) AddDish(dish catalog.Dish, quantity int) error {
	_, err := s.Dispatch(AddDish{Dish: dish, Quantity: quantity})
	return err
}

// RemoveItem drops the line for (id, kind). A missing line is ignored.
func (s *Store) RemoveItem(id int, kind Kind) {
	s.dispatch(RemoveItem{ID: id, Kind: kind})
}

// UpdateQuantity sets the quantity of a line. Zero or less removes it.
func (s *Store) UpdateQuantity(id int, kind Kind, quantity int) {
	s.dispatch(UpdateQuantity{ID: id, Kind: kind, Quantity: quantity})
}

// Clear empties the cart but leaves the drawer as it is.
func (s *Store) Clear() {
	s.dispatch(Clear{})
}

// ToggleOpen flips the drawer.
func (s *Store) ToggleOpen() {
	s.dispatch(ToggleOpen{})
}

// Close shuts the drawer.
func (s *Store) Close() {
	s.dispatch(Close{})
}

// Load replaces all items. Invalid items are rejected as a whole.
func (s *Store) Load(items []LineItem) error {
	_, err := s.Dispatch(Load{Items: items})
	return err
}

// dispatch is for actions that cannot fail.
func (s *Store) dispatch(a Action) {
	if _, err := s.Dispatch(a); err != nil {
		s.logger.WithError(err).Errorf("Unexpected failure applying %T", a)
	}
}

// Subscribe returns a buffered channel receiving every subsequent update.
func (s *Store) Subscribe() chan Update {
	s.mustBeReady()
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan Update, 100)
	s.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes a subscription and closes its channel.
func (s *Store) Unsubscribe(ch chan Update) {
	s.mustBeReady()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subscribers[ch]; !ok {
		return
	}
	delete(s.subscribers, ch)
	close(ch)
}
