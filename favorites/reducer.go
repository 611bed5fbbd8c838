package favorites

import (
	"fmt"

	"github.com/grovetools/storefront/errors"
)

// Reduce computes the state that follows applying a to s without mutating s.
func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case Add:
		if err := a.Item.Validate(); err != nil {
			return s, errors.Wrap(err, errors.ErrCodeInvalidInput, "cannot add favorite")
		}
		// First payload wins; a re-add with fresher data is still a no-op
		if s.IsFavorite(a.Item.ID, a.Item.Type) {
			return s, nil
		}
		return s.withItems(append(cloneItems(s.Items), cloneItems([]FavoriteItem{a.Item})...)), nil

	case Toggle:
		if err := a.Item.Validate(); err != nil {
			return s, errors.Wrap(err, errors.ErrCodeInvalidInput, "cannot toggle favorite")
		}
		if s.IsFavorite(a.Item.ID, a.Item.Type) {
			return remove(s, a.Item.ID, a.Item.Type), nil
		}
		return s.withItems(append(cloneItems(s.Items), cloneItems([]FavoriteItem{a.Item})...)), nil

	case Remove:
		return remove(s, a.ID, a.Type), nil

	case Clear:
		return s.withItems([]FavoriteItem{}), nil

	case Load:
		if err := ValidateItems(a.Items); err != nil {
			return s, errors.Wrap(err, errors.ErrCodeInvalidInput, "cannot load favorites")
		}
		next := Initial()
		for _, f := range cloneItems(a.Items) {
			if !next.IsFavorite(f.ID, f.Type) {
				next.Items = append(next.Items, f)
			}
		}
		return next.withItems(next.Items), nil

	default:
		panic(fmt.Sprintf("favorites: unhandled action %T", a))
	}
}

func remove(s State, id int, t Type) State {
	items := make([]FavoriteItem, 0, len(s.Items))
	for _, f := range s.Items {
		if !f.matches(id, t) {
			items = append(items, f)
		}
	}
	return s.withItems(items)
}
