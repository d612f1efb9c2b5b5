package mixing

import (
	"github.com/DrakeCaesar/scheduleI/internal/domain/shared"
)

// Catalog bundles the static data tables: substances, effect multipliers and
// product varieties. It is loaded once (built-in tables or a JSON data file)
// and treated as read-only for the lifetime of the process, so it is safe to
// share across concurrent search workers.
type Catalog struct {
	substances   []Substance
	substanceIdx map[string]int
	effects      map[string]Effect
	products     []ProductVariety
	productIdx   map[string]int
}

// NewCatalog builds a catalog from the given tables. Iteration order of
// substances and products follows the slice order, which enumeration relies
// on for deterministic visitation.
func NewCatalog(substances []Substance, effects []Effect, products []ProductVariety) *Catalog {
	c := &Catalog{
		substances:   substances,
		substanceIdx: make(map[string]int, len(substances)),
		effects:      make(map[string]Effect, len(effects)),
		products:     products,
		productIdx:   make(map[string]int, len(products)),
	}
	for i, s := range substances {
		c.substanceIdx[s.Name] = i
	}
	for _, e := range effects {
		c.effects[e.Name] = e
	}
	for i, p := range products {
		c.productIdx[p.Name] = i
	}
	return c
}

// Substances returns the substance table in stable order.
func (c *Catalog) Substances() []Substance {
	return c.substances
}

// Products returns the product variety table in stable order.
func (c *Catalog) Products() []ProductVariety {
	return c.products
}

// Effects returns the effect multiplier table.
func (c *Catalog) Effects() map[string]Effect {
	return c.effects
}

// Substance looks up a substance by name.
func (c *Catalog) Substance(name string) (*Substance, error) {
	i, ok := c.substanceIdx[name]
	if !ok {
		return nil, shared.NewUnknownSubstanceError(name)
	}
	return &c.substances[i], nil
}

// Product looks up a product variety by name.
func (c *Catalog) Product(name string) (*ProductVariety, error) {
	i, ok := c.productIdx[name]
	if !ok {
		return nil, shared.NewUnknownProductError(name)
	}
	return &c.products[i], nil
}

// Multiplier returns the price multiplier of an effect, 0 for unknown names.
func (c *Catalog) Multiplier(effect string) float64 {
	return c.effects[effect].Multiplier
}
