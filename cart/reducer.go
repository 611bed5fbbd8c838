package cart

import (
	"fmt"

	"github.com/grovetools/storefront/errors"
)

// Reduce computes the state that follows applying a to s. It never mutates
// s. An error is returned, with s unchanged, only for invalid arguments.
func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case AddMenu:
		if a.Quantity < 1 {
			return s, errors.InvalidQuantity(string(KindMenu), a.Menu.ID, a.Quantity)
		}
		return add(s, LineItem{Menu: a.Menu.Clone(), Quantity: a.Quantity}), nil

	case AddDish:
		if a.Quantity < 1 {
			return s, errors.InvalidQuantity(string(KindDish), a.Dish.ID, a.Quantity)
		}
		return add(s, LineItem{Dish: a.Dish.Clone(), Quantity: a.Quantity}), nil

	case RemoveItem:
		return remove(s, a.ID, a.Kind), nil

	case UpdateQuantity:
		if a.Quantity <= 0 {
			return remove(s, a.ID, a.Kind), nil
		}
		i := s.index(a.ID, a.Kind)
		if i < 0 {
			return s, nil
		}
		items := cloneItems(s.Items)
		items[i].Quantity = a.Quantity
		s.Items = items
		return s.withTotals(), nil

	case Clear:
		s.Items = []LineItem{}
		return s.withTotals(), nil

	case ToggleOpen:
		s.IsOpen = !s.IsOpen
		return s, nil

	case Close:
		s.IsOpen = false
		return s, nil

	case Load:
		if err := ValidateItems(a.Items); err != nil {
			return s, errors.Wrap(err, errors.ErrCodeInvalidInput, "cannot load cart items")
		}
		// Saved data may predate the one-line-per-product rule
		next := State{Items: []LineItem{}, IsOpen: s.IsOpen}
		for _, li := range cloneItems(a.Items) {
			next = add(next, li)
		}
		return next, nil

	default:
		panic(fmt.Sprintf("cart: unhandled action %T", a))
	}
}

func add(s State, li LineItem) State {
	items := cloneItems(s.Items)
	if i := s.index(li.ID(), li.Kind()); i >= 0 {
		items[i].Quantity += li.Quantity
	} else {
		items = append(items, li)
	}
	s.Items = items
	return s.withTotals()
}

func remove(s State, id int, kind Kind) State {
	items := make([]LineItem, 0, len(s.Items))
	for _, li := range s.Items {
		if !li.matches(id, kind) {
			items = append(items, li)
		}
	}
	s.Items = items
	return s.withTotals()
}
