package favorites

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/grovetools/storefront/errors"
	"github.com/grovetools/storefront/state"
	"github.com/grovetools/storefront/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func newTestStore(t *testing.T, kv state.KV) *Store {
	t.Helper()
	return New(kv, WithLogger(testutil.DiscardLogger()), WithClock(fixedClock(t0)))
}

func TestStoreStampsAddedAt(t *testing.T) {
	s := newTestStore(t, state.NewMemoryStore())
	s.AddEvent(testutil.Event(3, "Gala"))

	items := s.GetByType(TypeEvent)
	require.Len(t, items, 1)
	assert.Equal(t, t0, items[0].AddedAt)
	assert.Equal(t, "Gala", items[0].Title())
}

func TestStoreRoundTrip(t *testing.T) {
	kv := testutil.TempStorage(t)
	first := newTestStore(t, kv)

	first.AddEvent(testutil.Event(3, "Gala"))
	first.AddDish(testutil.Dish(12, "420.50"))
	first.AddMenu(testutil.Menu(5, 1000))

	second := newTestStore(t, kv)
	got := second.State()
	want := first.State()

	require.Len(t, got.Items, 3)
	assert.Equal(t, want.TotalItems, got.TotalItems)
	for i := range want.Items {
		assert.Equal(t, want.Items[i].ID, got.Items[i].ID)
		assert.Equal(t, want.Items[i].Type, got.Items[i].Type)
		assert.True(t, want.Items[i].AddedAt.Equal(got.Items[i].AddedAt))
		assert.Equal(t, want.Items[i].Title(), got.Items[i].Title())
	}
	assert.True(t, got.Items[1].Dish.Price.Equal(want.Items[1].Dish.Price))
}

func TestStoreRehydrationFallsBackToEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unparseable", "[{"},
		{"missing addedAt", `[{"id":3,"type":"event","event":{"id":3}}]`},
		{"unknown type", `[{"id":3,"type":"drink","addedAt":"2026-03-14T12:00:00Z"}]`},
		{"missing payload", `[{"id":3,"type":"event","addedAt":"2026-03-14T12:00:00Z"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := state.NewMemoryStore()
			require.NoError(t, kv.Set("favorites", tt.raw))

			var s *Store
			require.NotPanics(t, func() { s = newTestStore(t, kv) })
			assert.Equal(t, 0, s.State().TotalItems)
		})
	}
}

func TestStoreSwallowsWriteFailures(t *testing.T) {
	kv := state.NewMemoryStore()
	kv.FailWrites = stderrors.New("storage disabled")
	s := newTestStore(t, kv)

	s.AddDish(testutil.Dish(11, "350"))
	assert.True(t, s.IsFavorite(11, TypeDish))
}

func TestStoreToggle(t *testing.T) {
	kv := state.NewMemoryStore()
	s := newTestStore(t, kv)
	menu := testutil.Menu(6, 2500)

	assert.True(t, s.ToggleMenu(menu))
	assert.Equal(t, 1, s.Count(TypeMenu))
	assert.False(t, s.ToggleMenu(menu))
	assert.Equal(t, 0, s.Count(TypeMenu))

	raw, ok, _ := kv.Get("favorites")
	require.True(t, ok)
	assert.Equal(t, "[]", raw)
}

func TestStoreClear(t *testing.T) {
	s := newTestStore(t, state.NewMemoryStore())
	s.AddDish(testutil.Dish(11, "350"))
	s.AddEvent(testutil.Event(3, "Gala"))

	s.Clear()
	assert.Equal(t, 0, s.State().TotalItems)
}

func TestStoreLoadDeduplicates(t *testing.T) {
	s := newTestStore(t, nil)
	dish := NewDish(testutil.Dish(11, "350"), t0)

	require.NoError(t, s.Load([]FavoriteItem{dish, dish}))
	assert.Equal(t, 1, s.State().TotalItems)
}

func TestStoreSnapshotsDoNotShareRecords(t *testing.T) {
	s := newTestStore(t, state.NewMemoryStore())
	s.AddEvent(testutil.Event(3, "Gala"))

	snap := s.State()
	snap.Items[0].Event.Title = "edited"
	byType := s.GetByType(TypeEvent)
	byType[0].Event.Title = "edited too"

	assert.Equal(t, "Gala", s.State().Items[0].Title())
}

func TestZeroStorePanics(t *testing.T) {
	var zero Store
	testutil.AssertPanicsWithCode(t, errors.ErrCodeNotInitialized, func() {
		zero.IsFavorite(3, TypeEvent)
	})

	ops := map[string]func(s *Store){
		"AddEvent":    func(s *Store) { s.AddEvent(testutil.Event(3, "Gala")) },
		"AddDish":     func(s *Store) { s.AddDish(testutil.Dish(11, "350")) },
		"AddMenu":     func(s *Store) { s.AddMenu(testutil.Menu(5, 1000)) },
		"ToggleEvent": func(s *Store) { s.ToggleEvent(testutil.Event(3, "Gala")) },
		"ToggleDish":  func(s *Store) { s.ToggleDish(testutil.Dish(11, "350")) },
		"ToggleMenu":  func(s *Store) { s.ToggleMenu(testutil.Menu(5, 1000)) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			var zero Store
			testutil.AssertPanicsWithCode(t, errors.ErrCodeNotInitialized, func() { op(&zero) })

			var nilStore *Store
			testutil.AssertPanicsWithCode(t, errors.ErrCodeNotInitialized, func() { op(nilStore) })
		})
	}
}
