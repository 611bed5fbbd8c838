package cart

import (
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"github.com/grovetools/storefront/catalog"
	"github.com/grovetools/storefront/errors"
	"github.com/grovetools/storefront/state"
	"github.com/grovetools/storefront/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, kv state.KV) *Store {
	t.Helper()
	return New(kv, WithLogger(testutil.DiscardLogger()))
}

func TestStorePersistsItemsOnly(t *testing.T) {
	kv := state.NewMemoryStore()
	s := newTestStore(t, kv)

	require.NoError(t, s.AddMenu(testutil.Menu(5, 1000), 2))

	raw, ok, err := kv.Get("cart")
	require.NoError(t, err)
	require.True(t, ok)

	var saved []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &saved))
	require.Len(t, saved, 1)
	assert.EqualValues(t, 2, saved[0]["quantity"])
	assert.NotContains(t, raw, "totalAmount")
	assert.NotContains(t, raw, "isOpen")
}

func TestStoreRoundTrip(t *testing.T) {
	kv := testutil.TempStorage(t)
	first := newTestStore(t, kv)

	require.NoError(t, first.AddMenu(testutil.Menu(5, 1000), 2))
	require.NoError(t, first.AddDish(testutil.Dish(12, "420.50"), 3))
	first.ToggleOpen()

	second := newTestStore(t, kv)
	got := second.State()
	want := first.State()

	require.Len(t, got.Items, 2)
	for i := range want.Items {
		assert.Equal(t, want.Items[i].ID(), got.Items[i].ID())
		assert.Equal(t, want.Items[i].Kind(), got.Items[i].Kind())
		assert.Equal(t, want.Items[i].Quantity, got.Items[i].Quantity)
		assert.True(t, want.Items[i].UnitPrice().Equal(got.Items[i].UnitPrice()))
	}
	assert.Equal(t, want.TotalItems, got.TotalItems)
	assert.True(t, want.TotalAmount.Equal(got.TotalAmount))
	assert.False(t, got.IsOpen, "drawer state is not persisted")
}

func TestStoreRehydrationFallsBackToEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unparseable", "{not json"},
		{"not an array", `{"menu":{"id":5}}`},
		{"missing quantity", `[{"menu":{"id":5,"pricePerPerson":"1000"}}]`},
		{"missing price", `[{"dish":{"id":11},"quantity":1}]`},
		{"no product", `[{"quantity":2}]`},
		{"zero quantity", `[{"dish":{"id":11,"price":"350"},"quantity":0}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := state.NewMemoryStore()
			require.NoError(t, kv.Set("cart", tt.raw))

			var s *Store
			require.NotPanics(t, func() { s = newTestStore(t, kv) })
			got := s.State()
			assert.Empty(t, got.Items)
			assert.Equal(t, 0, got.TotalItems)
			assert.True(t, got.TotalAmount.IsZero())
		})
	}
}

func TestStoreRehydratesNumericPrices(t *testing.T) {
	kv := state.NewMemoryStore()
	require.NoError(t, kv.Set("cart", `[{"menu":{"id":5,"pricePerPerson":1000,"currency":"руб"},"quantity":2}]`))

	s := newTestStore(t, kv)
	got := s.State()
	assert.Equal(t, 2, got.TotalItems)
	assert.True(t, decimal.NewFromInt(2000).Equal(got.TotalAmount))
}

func TestStoreSwallowsWriteFailures(t *testing.T) {
	kv := state.NewMemoryStore()
	s := newTestStore(t, kv)
	kv.FailWrites = stderrors.New("quota exceeded")

	require.NoError(t, s.AddMenu(testutil.Menu(5, 1000), 2))
	s.UpdateQuantity(5, KindMenu, 3)

	got := s.State()
	assert.Equal(t, 3, got.TotalItems, "in-memory state stays authoritative")
	assert.True(t, decimal.NewFromInt(3000).Equal(got.TotalAmount))
}

func TestStoreRejectsInvalidQuantity(t *testing.T) {
	kv := state.NewMemoryStore()
	s := newTestStore(t, kv)

	err := s.AddDish(testutil.Dish(11, "350"), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidQuantity))
	assert.True(t, s.State().IsEmpty())

	_, ok, _ := kv.Get("cart")
	assert.False(t, ok, "rejected add is not persisted")
}

func TestStoreDrawerDoesNotPersist(t *testing.T) {
	kv := state.NewMemoryStore()
	s := newTestStore(t, kv)

	s.ToggleOpen()
	s.Close()

	_, ok, _ := kv.Get("cart")
	assert.False(t, ok)
}

func TestStoreClearPersistsEmptyList(t *testing.T) {
	kv := state.NewMemoryStore()
	s := newTestStore(t, kv)
	require.NoError(t, s.AddMenu(testutil.Menu(5, 1000), 1))

	s.Clear()

	raw, ok, _ := kv.Get("cart")
	require.True(t, ok)
	assert.Equal(t, "[]", raw)
}

func TestStoreCustomKey(t *testing.T) {
	kv := state.NewMemoryStore()
	s := New(kv, WithKey("basket"), WithLogger(testutil.DiscardLogger()))
	require.NoError(t, s.AddDish(testutil.Dish(11, "350"), 1))

	_, ok, _ := kv.Get("basket")
	assert.True(t, ok)
	_, ok, _ = kv.Get("cart")
	assert.False(t, ok)
}

func TestStoreWithoutKV(t *testing.T) {
	s := New(nil, WithLogger(testutil.DiscardLogger()))
	require.NoError(t, s.AddMenu(testutil.Menu(5, 1000), 1))
	assert.Equal(t, 1, s.State().TotalItems)
}

func TestStoreSubscribe(t *testing.T) {
	s := newTestStore(t, state.NewMemoryStore())
	ch := s.Subscribe()
	defer s.Unsubscribe(ch)

	require.NoError(t, s.AddMenu(testutil.Menu(5, 1000), 2))

	select {
	case u := <-ch:
		assert.IsType(t, AddMenu{}, u.Action)
		assert.Equal(t, 2, u.State.TotalItems)
	case <-time.After(time.Second):
		t.Fatal("no update received")
	}

	// Rejected actions are not broadcast
	_ = s.AddMenu(testutil.Menu(5, 1000), -1)
	select {
	case u := <-ch:
		t.Fatalf("unexpected update %T", u.Action)
	default:
	}
}

func TestStoreSnapshotsAreIndependent(t *testing.T) {
	s := newTestStore(t, state.NewMemoryStore())
	require.NoError(t, s.AddMenu(testutil.Menu(5, 1000), 2))

	snap := s.State()
	snap.Items[0].Quantity = 99

	assert.Equal(t, 2, s.State().Quantity(5, KindMenu))
}

func TestStoreSnapshotsDoNotShareRecords(t *testing.T) {
	s := newTestStore(t, state.NewMemoryStore())
	require.NoError(t, s.AddMenu(testutil.Menu(5, 1000), 2))
	require.NoError(t, s.AddDish(testutil.Dish(11, "350"), 1))

	snap := s.State()
	snap.Items[0].Menu.PricePerPerson = decimal.NewFromInt(1)
	snap.Items[0].Menu.Name = "edited"
	snap.Items[1].Dish.Price = decimal.NewFromInt(1)

	got := s.State()
	assert.True(t, got.Items[0].UnitPrice().Equal(decimal.NewFromInt(1000)))
	assert.NotEqual(t, "edited", got.Items[0].Name())
	assert.True(t, got.TotalAmount.Equal(decimal.NewFromInt(2350)))

	var fold decimal.Decimal
	for _, li := range got.Items {
		fold = fold.Add(li.Subtotal())
	}
	assert.True(t, got.TotalAmount.Equal(fold))
}

func TestStoreDoesNotShareCallerRecords(t *testing.T) {
	s := newTestStore(t, nil)
	menu := testutil.Menu(5, 1000)
	menu.Dishes = []catalog.Dish{testutil.Dish(11, "350")}
	require.NoError(t, s.AddMenu(menu, 1))

	menu.Dishes[0].Name = "edited"

	assert.NotEqual(t, "edited", s.State().Items[0].Menu.Dishes[0].Name)
}

func TestRejectedDispatchReturnsSnapshot(t *testing.T) {
	s := newTestStore(t, nil)
	require.NoError(t, s.AddMenu(testutil.Menu(5, 1000), 2))

	snap, err := s.Dispatch(AddMenu{Menu: testutil.Menu(5, 1000), Quantity: 0})
	require.True(t, errors.Is(err, errors.ErrCodeInvalidQuantity))
	snap.Items[0].Menu.PricePerPerson = decimal.NewFromInt(1)

	assert.True(t, s.State().TotalAmount.Equal(decimal.NewFromInt(2000)))
}

func TestZeroStorePanics(t *testing.T) {
	var zero Store
	testutil.AssertPanicsWithCode(t, errors.ErrCodeNotInitialized, func() { zero.State() })

	var nilStore *Store
	testutil.AssertPanicsWithCode(t, errors.ErrCodeNotInitialized, func() {
		_ = nilStore.AddMenu(testutil.Menu(5, 1000), 1)
	})
}
