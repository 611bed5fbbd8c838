package favorites

import (
	"sync"
	"time"

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

// Store owns the favorites state and persists the item list after every
// change.
type Store struct {
	mu          sync.RWMutex
	state       State
	slot        *state.Slot[FavoriteItem]
	logger      *logrus.Entry
	now         func() time.Time
	subscribers map[chan Update]struct{}
	ready       bool
}

// Option configures a Store.
type Option func(*storeOptions)

type storeOptions struct {
	key    string
	logger *logrus.Entry
	now    func() time.Time
}

// WithKey sets the storage key. Defaults to "favorites".
func WithKey(key string) Option {
	return func(o *storeOptions) { o.key = key }
}

// WithLogger sets the logger used for rehydration and persistence messages.
func WithLogger(logger *logrus.Entry) Option {
	return func(o *storeOptions) { o.logger = logger }
}

// WithClock sets the time source used to stamp new favorites.
func WithClock(now func() time.Time) Option {
	return func(o *storeOptions) { o.now = now }
}

// New creates a favorites store over kv and rehydrates it. A nil kv gives an
// unpersisted list.
func New(kv state.KV, opts ...Option) *Store {
	o := storeOptions{key: config.DefaultFavoritesKey, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.NewLogger("favorites")
	}

	s := &Store{
		state:       Initial(),
		logger:      o.logger,
		now:         o.now,
		subscribers: make(map[chan Update]struct{}),
		ready:       true,
	}

	if kv != nil {
		s.slot = &state.Slot[FavoriteItem]{
			KV:     kv,
			Key:    o.key,
			Logger: o.logger,
			Check:  ValidateItems,
		}
		if v, err := schema.For([]FavoriteItem{}, "favorites"); err == nil {
			s.slot.Schema = v
		} else {
			o.logger.WithError(err).Warn("Favorites schema unavailable, loading without schema validation")
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
		s.logger.WithError(err).Warn("Saved favorites rejected, starting empty")
		return
	}
	s.state = next
	s.logger.WithField("items", next.TotalItems).Debug("Favorites rehydrated")
}

func (s *Store) mustBeReady() {
	if s == nil || !s.ready {
		panic(errors.NotInitialized("favorites"))
	}
}

// Dispatch applies an action and returns the resulting state.
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

	if s.slot != nil && a.persists() {
		s.slot.Save(cloneItems(next.Items))
	}

	snap := next
	snap.Items = cloneItems(next.Items)

	update := Update{Action: a, State: snap}
	for ch := range s.subscribers {
		select {
		case ch <- update:
		default:
		}
	}

	return snap, nil
}

// State returns a snapshot of the current favorites.
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

// AddEvent bookmarks an event page. Adding an existing favorite is a no-op.
func (s *Store) AddEvent(e catalog.EventPage) {
	s.mustBeReady()
	s.dispatch(Add{Item: NewEvent(e, s.now())})
}

// AddDish bookmarks a dish.
func (s *Store) AddDish(d catalog.Dish) {
	s.mustBeReady()
	s.dispatch(Add{Item: NewDish(d, s.now())})
}

// AddMenu bookmarks a menu.
func (s *Store) AddMenu(m catalog.Menu) {
	s.mustBeReady()
	s.dispatch(Add{Item: NewMenu(m, s.now())})
}

// ToggleEvent bookmarks the event, or removes it if already bookmarked.
// It reports whether the event is a favorite afterwards.
func (s *Store) ToggleEvent(e catalog.EventPage) bool {
	s.mustBeReady()
	return s.toggle(NewEvent(e, s.now()))
}

// ToggleDish is ToggleEvent for dishes.
func (s *Store) ToggleDish(d catalog.Dish) bool {
	s.mustBeReady()
	return s.toggle(NewDish(d, s.now()))
}

// ToggleMenu is ToggleEvent for menus.
func (s *Store) ToggleMenu(m catalog.Menu) bool {
	s.mustBeReady()
	return s.toggle(NewMenu(m, s.now()))
}

func (s *Store) toggle(item FavoriteItem) bool {
	next, err := s.Dispatch(Toggle{Item: item})
	if err != nil {
		return s.IsFavorite(item.ID, item.Type)
	}
	return next.IsFavorite(item.ID, item.Type)
}

// RemoveFavorite drops the favorite with the given identity, if present.
func (s *Store) RemoveFavorite(id int, t Type) {
	s.dispatch(Remove{ID: id, Type: t})
}

// Clear removes every favorite.
func (s *Store) Clear() {
	s.dispatch(Clear{})
}

// Load replaces all items. Duplicate identities keep their first occurrence.
func (s *Store) Load(items []FavoriteItem) error {
	_, err := s.Dispatch(Load{Items: items})
	return err
}

// IsFavorite reports whether the identity is bookmarked.
func (s *Store) IsFavorite(id int, t Type) bool {
	s.mustBeReady()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsFavorite(id, t)
}

// GetByType returns the favorites of one type in insertion order.
func (s *Store) GetByType(t Type) []FavoriteItem {
	s.mustBeReady()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.GetByType(t)
}

// Count returns how many favorites of type t exist.
func (s *Store) Count(t Type) int {
	s.mustBeReady()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Count(t)
}

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
