package cart

import "github.com/grovetools/storefront/catalog"

// Action is a cart transition. The set of actions is closed; Reduce handles
// every variant.
type Action interface {
	// touchesItems reports whether the action may change Items, which is
	// what decides whether the store persists after it.
	touchesItems() bool
}

// AddMenu adds Quantity persons of a menu, merging into an existing line.
type AddMenu struct {
	Menu     catalog.Menu
	Quantity int
}

// AddDish adds Quantity portions of a dish, merging into an existing line.
type AddDish struct {
	Dish     catalog.Dish
	Quantity int
}

// RemoveItem removes the line for a product.
type RemoveItem struct {
	ID   int
	Kind Kind
}

// UpdateQuantity sets the quantity of a line. Quantities below one remove it.
type UpdateQuantity struct {
	ID       int
	Kind     Kind
	Quantity int
}

// Clear empties the cart.
type Clear struct{}

// ToggleOpen flips the drawer flag.
type ToggleOpen struct{}

// Close forces the drawer shut.
type Close struct{}

// Load replaces all items, used when rehydrating.
type Load struct {
	Items []LineItem
}

func (AddMenu) touchesItems() bool        { return true }
func (AddDish) touchesItems() bool        { return true }
func (RemoveItem) touchesItems() bool     { return true }
func (UpdateQuantity) touchesItems() bool { return true }
func (Clear) touchesItems() bool          { return true }
func (ToggleOpen) touchesItems() bool     { return false }
func (Close) touchesItems() bool          { return false }

// Load does change items but only ever restores what is already saved.
func (Load) touchesItems() bool { return false }
