// Package storefront wires the cart and favorites stores over one local
// storage area. A Provider is built once at startup and handed to whatever
// needs the stores.
package storefront

import (
	"time"

	"github.com/grovetools/storefront/cart"
	"github.com/grovetools/storefront/config"
	"github.com/grovetools/storefront/errors"
	"github.com/grovetools/storefront/favorites"
	"github.com/grovetools/storefront/logging"
	"github.com/grovetools/storefront/state"
	"github.com/sirupsen/logrus"
)

// Provider owns both stores.
type Provider struct {
	cart      *cart.Store
	favorites *favorites.Store
	kv        state.KV
	keys      []string
}

// Options configures New.
type Options struct {
	// Config supplies the storage keys. Nil uses the defaults.
	Config *config.Config
	// Logger overrides the per-store component loggers.
	Logger *logrus.Entry
	// Clock stamps new favorites. Nil uses time.Now.
	Clock func() time.Time
}

// New creates both stores over kv and rehydrates them.
func New(kv state.KV, opts Options) *Provider {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	cartLogger, favLogger := opts.Logger, opts.Logger
	if cartLogger == nil {
		cartLogger = logging.NewLogger("cart")
		favLogger = logging.NewLogger("favorites")
	}

	favOpts := []favorites.Option{
		favorites.WithKey(cfg.Storage.FavoritesKey),
		favorites.WithLogger(favLogger),
	}
	if opts.Clock != nil {
		favOpts = append(favOpts, favorites.WithClock(opts.Clock))
	}

	return &Provider{
		cart:      cart.New(kv, cart.WithKey(cfg.Storage.CartKey), cart.WithLogger(cartLogger)),
		favorites: favorites.New(kv, favOpts...),
		kv:        kv,
		keys:      []string{cfg.Storage.CartKey, cfg.Storage.FavoritesKey},
	}
}

// Cart returns the cart store. It panics when the provider was never built.
func (p *Provider) Cart() *cart.Store {
	if p == nil || p.cart == nil {
		panic(errors.NotInitialized("cart"))
	}
	return p.cart
}

// Favorites returns the favorites store. It panics when the provider was never built.
func (p *Provider) Favorites() *favorites.Store {
	if p == nil || p.favorites == nil {
		panic(errors.NotInitialized("favorites"))
	}
	return p.favorites
}

// Forget empties both stores and removes their keys from storage, so the
// next start finds no saved state at all.
func (p *Provider) Forget() error {
	p.Cart().Clear()
	p.Favorites().Clear()
	if p.kv == nil {
		return nil
	}
	for _, key := range p.keys {
		if err := p.kv.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
