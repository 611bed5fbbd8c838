package favorites

// Action is a favorites transition. Every action changes (or may change)
// the item list, so the store persists after each one except Load.
type Action interface {
	persists() bool
}

// Add bookmarks an item unless its (id, type) is already present. The
// store builds Item with NewEvent, NewDish or NewMenu.
type Add struct {
	Item FavoriteItem
}

// Toggle adds the item when absent and removes it when present.
type Toggle struct {
	Item FavoriteItem
}

// Remove drops the bookmark for (ID, Type).
type Remove struct {
	ID   int
	Type Type
}

// Clear drops every bookmark.
type Clear struct{}

// Load replaces all items, used when rehydrating.
type Load struct {
	Items []FavoriteItem
}

func (Add) persists() bool    { return true }
func (Toggle) persists() bool { return true }
func (Remove) persists() bool { return true }
func (Clear) persists() bool  { return true }
func (Load) persists() bool   { return false }
