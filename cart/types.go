// Package cart holds the shopping cart: line items of menus or dishes with
// quantities, totals derived from them, and the drawer visibility flag.
package cart

import (
	"fmt"

	"github.com/grovetools/storefront/catalog"
	"github.com/shopspring/decimal"
)

// Kind is the product kind of a line item.
type Kind string

const (
	KindMenu Kind = "menu"
	KindDish Kind = "dish"
)

// ParseKind parses a product kind name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindMenu, KindDish:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown product kind %q (want menu or dish)", s)
}

// LineItem is one row of the cart. Exactly one of Menu and Dish is set.
type LineItem struct {
	Menu     *catalog.Menu `json:"menu,omitempty"`
	Dish     *catalog.Dish `json:"dish,omitempty"`
	Quantity int           `json:"quantity"`
}

// Kind reports which product the item holds.
func (li LineItem) Kind() Kind {
	if li.Menu != nil {
		return KindMenu
	}
	return KindDish
}

// ID returns the catalog id of the product.
func (li LineItem) ID() int {
	if li.Menu != nil {
		return li.Menu.ID
	}
	if li.Dish != nil {
		return li.Dish.ID
	}
	return 0
}

// Name returns the display name of the product.
func (li LineItem) Name() string {
	if li.Menu != nil {
		return li.Menu.Name
	}
	if li.Dish != nil {
		return li.Dish.Name
	}
	return ""
}

// UnitPrice is the menu price per person or the dish price.
func (li LineItem) UnitPrice() decimal.Decimal {
	if li.Menu != nil {
		return li.Menu.PricePerPerson
	}
	if li.Dish != nil {
		return li.Dish.Price
	}
	return decimal.Zero
}

// Currency returns the product currency or the catalog default.
func (li LineItem) Currency() string {
	if li.Menu != nil {
		return li.Menu.CurrencyOr(catalog.DefaultCurrency)
	}
	if li.Dish != nil {
		return li.Dish.CurrencyOr(catalog.DefaultCurrency)
	}
	return catalog.DefaultCurrency
}

// Subtotal is quantity times unit price.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice().Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func (li LineItem) matches(id int, kind Kind) bool {
	return li.Kind() == kind && li.ID() == id
}

// Validate checks the item shape: one product and a positive quantity.
func (li LineItem) Validate() error {
	if (li.Menu == nil) == (li.Dish == nil) {
		return fmt.Errorf("line item must hold exactly one of menu or dish")
	}
	if li.Quantity < 1 {
		return fmt.Errorf("%s #%d: quantity must be positive, got %d", li.Kind(), li.ID(), li.Quantity)
	}
	return nil
}

// ValidateItems validates every item of a persisted cart.
func ValidateItems(items []LineItem) error {
	for i, li := range items {
		if err := li.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// State is a snapshot of the cart. TotalItems and TotalAmount are derived
// from Items and only ever set by the reducer.
type State struct {
	Items       []LineItem      `json:"items"`
	IsOpen      bool            `json:"isOpen"`
	TotalItems  int             `json:"totalItems"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// Initial returns the empty cart.
func Initial() State {
	return State{Items: []LineItem{}, TotalAmount: decimal.Zero}
}

// Quantity returns the quantity held for a product, or 0.
func (s State) Quantity(id int, kind Kind) int {
	if i := s.index(id, kind); i >= 0 {
		return s.Items[i].Quantity
	}
	return 0
}

// Contains reports whether the product is in the cart.
func (s State) Contains(id int, kind Kind) bool {
	return s.index(id, kind) >= 0
}

// IsEmpty reports whether the cart has no items.
func (s State) IsEmpty() bool {
	return len(s.Items) == 0
}

// Currency is the currency of the first item, or the catalog default.
func (s State) Currency() string {
	if len(s.Items) > 0 {
		return s.Items[0].Currency()
	}
	return catalog.DefaultCurrency
}

// Summary renders the totals line, e.g. "3 items, 2 500 руб".
func (s State) Summary() string {
	noun := "items"
	if s.TotalItems == 1 {
		noun = "item"
	}
	return fmt.Sprintf("%d %s, %s", s.TotalItems, noun, catalog.FormatPrice(s.TotalAmount, s.Currency()))
}

func (s State) index(id int, kind Kind) int {
	for i, li := range s.Items {
		if li.matches(id, kind) {
			return i
		}
	}
	return -1
}

// withTotals returns s with TotalItems and TotalAmount recomputed from Items.
func (s State) withTotals() State {
	total := 0
	amount := decimal.Zero
	for _, li := range s.Items {
		total += li.Quantity
		amount = amount.Add(li.Subtotal())
	}
	s.TotalItems = total
	s.TotalAmount = amount
	return s
}

// cloneItems copies the lines together with the records they point at.
func cloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	for i, li := range items {
		out[i] = LineItem{Menu: li.Menu.Clone(), Dish: li.Dish.Clone(), Quantity: li.Quantity}
	}
	return out
}
