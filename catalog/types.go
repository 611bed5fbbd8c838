// Package catalog holds the read-only record shapes served by the content API.
// The stores only rely on ids and prices; every other field passes through
// untouched to presentation.
package catalog

import "github.com/shopspring/decimal"

// DefaultCurrency is shown when a record carries no currency of its own.
const DefaultCurrency = "руб"

// Image is a media entry attached to a record.
type Image struct {
	ID              int    `json:"id"`
	URL             string `json:"url"`
	AlternativeText string `json:"alternativeText,omitempty"`
	Width           int    `json:"width,omitempty"`
	Height          int    `json:"height,omitempty"`
}

// Dish is a single orderable dish.
type Dish struct {
	ID          int             `json:"id"`
	Name        string          `json:"name,omitempty"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency,omitempty"`
	Weight      string          `json:"weight,omitempty"`
	Images      []Image         `json:"images,omitempty"`
}

// Menu is a set menu priced per person.
type Menu struct {
	ID             int             `json:"id"`
	Name           string          `json:"name,omitempty"`
	Description    string          `json:"description,omitempty"`
	PricePerPerson decimal.Decimal `json:"pricePerPerson"`
	Currency       string          `json:"currency,omitempty"`
	Image          []Image         `json:"image,omitempty"`
	Dishes         []Dish          `json:"dishes,omitempty"`
}

// EventPage is a showcase page for a catered event.
// Field names follow the content API, including its spelling.
type EventPage struct {
	ID            int     `json:"id"`
	Title         string  `json:"title,omitempty"`
	Description   string  `json:"description,omitempty"`
	Images        []Image `json:"Images,omitempty"`
	GaleryOfMedia []Image `json:"GaleryOfMedia,omitempty"`
}

// CurrencyOr returns the dish currency, or fallback when unset.
func (d Dish) CurrencyOr(fallback string) string {
	if d.Currency != "" {
		return d.Currency
	}
	return fallback
}

// CurrencyOr returns the menu currency, or fallback when unset.
func (m Menu) CurrencyOr(fallback string) string {
	if m.Currency != "" {
		return m.Currency
	}
	return fallback
}

func cloneImages(images []Image) []Image {
	if images == nil {
		return nil
	}
	return append([]Image(nil), images...)
}

// Clone returns a deep copy of d. A nil dish clones to nil.
func (d *Dish) Clone() *Dish {
	if d == nil {
		return nil
	}
	c := *d
	c.Images = cloneImages(d.Images)
	return &c
}

// Clone returns a deep copy of m, including its dishes.
func (m *Menu) Clone() *Menu {
	if m == nil {
		return nil
	}
	c := *m
	c.Image = cloneImages(m.Image)
	if m.Dishes != nil {
		c.Dishes = make([]Dish, len(m.Dishes))
		for i := range m.Dishes {
			c.Dishes[i] = *m.Dishes[i].Clone()
		}
	}
	return &c
}

// Clone returns a deep copy of e.
func (e *EventPage) Clone() *EventPage {
	if e == nil {
		return nil
	}
	c := *e
	c.Images = cloneImages(e.Images)
	c.GaleryOfMedia = cloneImages(e.GaleryOfMedia)
	return &c
}
