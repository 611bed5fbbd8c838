// Package favorites holds bookmarked events, dishes and menus. Each entity
// appears at most once, keyed by its id and type.
package favorites

import (
	"fmt"
	"time"

	"github.com/grovetools/storefront/catalog"
)

// Type is the kind of a favorited entity.
type Type string

const (
	TypeEvent Type = "event"
	TypeDish  Type = "dish"
	TypeMenu  Type = "menu"
)

// Types lists every favorite type in display order.
var Types = []Type{TypeEvent, TypeDish, TypeMenu}

// ParseType parses a favorite type name.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeEvent, TypeDish, TypeMenu:
		return Type(s), nil
	}
	return "", fmt.Errorf("unknown favorite type %q (want event, dish or menu)", s)
}

// FavoriteItem wraps a bookmarked record. The payload field matching Type is set.
type FavoriteItem struct {
	ID      int                `json:"id"`
	Type    Type               `json:"type"`
	Event   *catalog.EventPage `json:"event,omitempty"`
	Dish    *catalog.Dish      `json:"dish,omitempty"`
	Menu    *catalog.Menu      `json:"menu,omitempty"`
	AddedAt time.Time          `json:"addedAt"`
}

// Payload returns the referenced record.
func (f FavoriteItem) Payload() interface{} {
	switch f.Type {
	case TypeEvent:
		return f.Event
	case TypeDish:
		return f.Dish
	case TypeMenu:
		return f.Menu
	}
	return nil
}

// Title returns the display name of the payload.
func (f FavoriteItem) Title() string {
	switch {
	case f.Type == TypeEvent && f.Event != nil:
		return f.Event.Title
	case f.Type == TypeDish && f.Dish != nil:
		return f.Dish.Name
	case f.Type == TypeMenu && f.Menu != nil:
		return f.Menu.Name
	}
	return ""
}

func (f FavoriteItem) matches(id int, t Type) bool {
	return f.ID == id && f.Type == t
}

// Validate checks that the type is known and its payload is present and
// carries the same id.
func (f FavoriteItem) Validate() error {
	if _, err := ParseType(string(f.Type)); err != nil {
		return err
	}
	var payloadID int
	switch f.Type {
	case TypeEvent:
		if f.Event == nil {
			return fmt.Errorf("event #%d has no payload", f.ID)
		}
		payloadID = f.Event.ID
	case TypeDish:
		if f.Dish == nil {
			return fmt.Errorf("dish #%d has no payload", f.ID)
		}
		payloadID = f.Dish.ID
	case TypeMenu:
		if f.Menu == nil {
			return fmt.Errorf("menu #%d has no payload", f.ID)
		}
		payloadID = f.Menu.ID
	}
	if payloadID != f.ID {
		return fmt.Errorf("%s #%d: payload id %d does not match", f.Type, f.ID, payloadID)
	}
	return nil
}

// ValidateItems validates every item of a persisted favorites list.
func ValidateItems(items []FavoriteItem) error {
	for i, f := range items {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// NewEvent wraps an event page.
func NewEvent(e catalog.EventPage, at time.Time) FavoriteItem {
	return FavoriteItem{ID: e.ID, Type: TypeEvent, Event: e.Clone(), AddedAt: at}
}

// NewDish wraps a dish.
func NewDish(d catalog.Dish, at time.Time) FavoriteItem {
	return FavoriteItem{ID: d.ID, Type: TypeDish, Dish: d.Clone(), AddedAt: at}
}

// NewMenu wraps a menu.
func NewMenu(m catalog.Menu, at time.Time) FavoriteItem {
	return FavoriteItem{ID: m.ID, Type: TypeMenu, Menu: m.Clone(), AddedAt: at}
}

// State is a snapshot of the favorites list. TotalItems is len(Items).
type State struct {
	Items      []FavoriteItem `json:"items"`
	TotalItems int            `json:"totalItems"`
}

// Initial returns the empty list.
func Initial() State {
	return State{Items: []FavoriteItem{}}
}

// IsFavorite reports whether the entity is bookmarked.
func (s State) IsFavorite(id int, t Type) bool {
	return s.index(id, t) >= 0
}

// GetByType returns the items of one type in insertion order.
func (s State) GetByType(t Type) []FavoriteItem {
	out := []FavoriteItem{}
	for _, f := range s.Items {
		if f.Type == t {
			out = append(out, f)
		}
	}
	return cloneItems(out)
}

// Count returns the number of items of one type.
func (s State) Count(t Type) int {
	n := 0
	for _, f := range s.Items {
		if f.Type == t {
			n++
		}
	}
	return n
}

func (s State) index(id int, t Type) int {
	for i, f := range s.Items {
		if f.matches(id, t) {
			return i
		}
	}
	return -1
}

func (s State) withItems(items []FavoriteItem) State {
	s.Items = items
	s.TotalItems = len(items)
	return s
}

func cloneItems(items []FavoriteItem) []FavoriteItem {
	out := make([]FavoriteItem, len(items))
	for i, it := range items {
		it.Event = it.Event.Clone()
		it.Dish = it.Dish.Clone()
		it.Menu = it.Menu.Clone()
		out[i] = it
	}
	return out
}
