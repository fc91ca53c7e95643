package domain

import "sort"

// Item is one sellable entry of the catalog.
// ID is the stable game identifier (e.g. "wrench"); Name is the resolved
// English display name and may be absent.
type Item struct {
	ID               string
	Name             *string
	Tags             []string // set semantics, first-seen order
	Prices           Prices
	Fabricate        *Fabricate     // nil when the item cannot be fabricated
	Deconstruct      *Deconstruct   // nil when the item cannot be deconstructed
	LevelResource    *LevelResource // nil unless the item spawns in levels (ores)
	HasInventoryIcon bool
	HasSprite        bool
}

// DisplayName returns the resolved name and whether one exists.
func (i *Item) DisplayName() (string, bool) {
	if i.Name == nil {
		return "", false
	}
	return *i.Name, true
}

// HasTag reports whether the item carries tag.
func (i *Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the item carries at least one of tags.
func (i *Item) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		if i.HasTag(t) {
			return true
		}
	}
	return false
}

// LocationPrice is the per-location price modifier of an item.
type LocationPrice struct {
	Multiplier float64
	Sold       bool
}

// DefaultLocationPrice applies to locations an item has no record for.
var DefaultLocationPrice = LocationPrice{Multiplier: 1.0, Sold: false}

// Prices holds the base price and the per-location-type modifiers.
type Prices struct {
	BasePrice      int
	SoldEverywhere bool                     // soldeverywhere="true"
	Locations      map[string]LocationPrice // location type -> modifier
}

// At returns the modifier recorded for location. Unrecorded locations get
// DefaultLocationPrice, sold only when the item is sold everywhere.
func (p Prices) At(location string) LocationPrice {
	if lp, ok := p.Locations[location]; ok {
		return lp
	}
	lp := DefaultLocationPrice
	lp.Sold = p.SoldEverywhere
	return lp
}

// SoldAnywhere reports whether any location sells the item.
func (p Prices) SoldAnywhere() bool {
	if p.SoldEverywhere {
		return true
	}
	for _, lp := range p.Locations {
		if lp.Sold {
			return true
		}
	}
	return false
}

// LocationKeys returns the recorded location types in sorted order.
func (p Prices) LocationKeys() []string {
	keys := make([]string, 0, len(p.Locations))
	for k := range p.Locations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Skill is a required skill level for fabrication.
type Skill struct {
	ID    string
	Level int
}

// Counted is one deduplicated entry: a value and how often it occurred.
type Counted[T comparable] struct {
	Value T
	Count int
}

// Fabricate is a fabrication recipe.
type Fabricate struct {
	Amount     int // output amount, defaults to 1
	Time       int // seconds, defaults to 0
	Skills     []Skill
	Materials  []Counted[RequiredMaterial]
	Fabricator string // suitable fabricator station id
}

// Deconstruct is a deconstruction recipe. Materials are sorted by id.
type Deconstruct struct {
	Time      int
	Materials []Counted[string]
}

// LevelResource describes how common a level resource (ore) is per level type.
type LevelResource struct {
	DefaultCommonness float64
	Commonness        map[string]float64 // level type -> commonness
}
