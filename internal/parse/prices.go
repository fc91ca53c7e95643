package parse

import (
	"fmt"

	"github.com/osse101/BaroWiki_Go/internal/domain"
	"github.com/osse101/BaroWiki_Go/internal/xmltree"
)

// Prices parses an item's <Price> element and its per-location <Price> children.
//
// An item is sold at a location when it declares minavailable there or is
// sold everywhere; an explicit sold="false" contradicting either is an
// error. With no signal at all the item is sold. soldeverywhere="false"
// leaves each location to say whether it sells.
func Prices(n xmltree.Node) (domain.Prices, error) {
	base, err := requireInt(n, AttrBasePrice)
	if err != nil {
		return domain.Prices{}, err
	}

	soldEverywhere, err := optionalBool(n, AttrSoldEverywhere)
	if err != nil {
		return domain.Prices{}, err
	}

	locations := make(map[string]domain.LocationPrice)
	for _, child := range n.Children(ElementPrice) {
		location, err := requireAttr(child, AttrLocationType)
		if err != nil {
			return domain.Prices{}, err
		}

		multiplier, err := toFloat(child, AttrMultiplier, child.AttrOr(AttrMultiplier, DefaultMultiplier))
		if err != nil {
			return domain.Prices{}, err
		}

		explicit, err := optionalBool(child, AttrSold)
		if err != nil {
			return domain.Prices{}, err
		}
		_, hasMin := child.Attr(AttrMinAvailable)

		sold, err := inferSold(soldEverywhere, explicit, hasMin)
		if err != nil {
			return domain.Prices{}, fmt.Errorf("location %q: %w", location, err)
		}

		locations[location] = domain.LocationPrice{Multiplier: multiplier, Sold: sold}
	}

	return domain.Prices{
		BasePrice:      base,
		SoldEverywhere: soldEverywhere != nil && *soldEverywhere,
		Locations:      locations,
	}, nil
}

func inferSold(soldEverywhere, explicit *bool, hasMin bool) (bool, error) {
	everywhere := soldEverywhere != nil && *soldEverywhere
	if hasMin || everywhere {
		if explicit != nil && !*explicit {
			return false, fmt.Errorf("%w: %s=false with %s or %s=true",
				domain.ErrContradiction, AttrSold, AttrMinAvailable, AttrSoldEverywhere)
		}
		return true, nil
	}
	if explicit != nil {
		return *explicit, nil
	}
	if soldEverywhere != nil {
		return false, fmt.Errorf("%w: %s=false without %s or %s",
			domain.ErrInvalidValue, AttrSoldEverywhere, AttrSold, AttrMinAvailable)
	}
	return true, nil
}

// UnknownPriceAttrs returns attributes of per-location <Price> children
// that Prices ignores, as "location/attribute".
func UnknownPriceAttrs(n xmltree.Node) []string {
	var unknown []string
	for _, child := range n.Children(ElementPrice) {
		location := child.AttrOr(AttrLocationType, "?")
		for _, attr := range child.Attrs() {
			if !isKnownPriceAttr(attr) {
				unknown = append(unknown, location+"/"+attr)
			}
		}
	}
	return unknown
}

func isKnownPriceAttr(attr string) bool {
	for _, k := range knownPriceAttrs {
		if k == attr {
			return true
		}
	}
	return false
}
