package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/BaroWiki_Go/internal/domain"
	"github.com/osse101/BaroWiki_Go/internal/localization"
	"github.com/osse101/BaroWiki_Go/internal/logger"
	"github.com/osse101/BaroWiki_Go/internal/metrics"
	"github.com/osse101/BaroWiki_Go/internal/parse"
	"github.com/osse101/BaroWiki_Go/internal/xmltree"
)

// Item element attributes and children read by the builder.
const (
	AttrIdentifier     = "identifier"
	AttrName           = "name"
	AttrNameIdentifier = "nameidentifier"
	AttrTags           = "Tags"

	ElementInventoryIcon = "InventoryIcon"
	ElementSprite        = "Sprite"
)

// ExcludedFiles lists item-tree files that are not item definitions.
var ExcludedFiles = []string{"uniqueitems.xml"}

// Builder turns item definition elements into catalog items.
type Builder struct {
	loc *localization.Table
}

// NewBuilder creates a builder resolving names through loc.
func NewBuilder(loc *localization.Table) *Builder {
	return &Builder{loc: loc}
}

// Item converts one item definition element. ok is false when the element
// has no price and therefore is not part of the catalog.
func (b *Builder) Item(n xmltree.Node) (item domain.Item, ok bool, err error) {
	priceNode, hasPrice := n.Child(parse.ElementPrice)
	if !hasPrice {
		return domain.Item{}, false, nil
	}

	id, hasID := n.Attr(AttrIdentifier)
	if !hasID {
		return domain.Item{}, false, fmt.Errorf("%w: <%s %s>", domain.ErrMissingAttribute, n.Tag(), AttrIdentifier)
	}

	prices, err := parse.Prices(priceNode)
	if err != nil {
		return domain.Item{}, false, fmt.Errorf("item %q: %w", id, err)
	}

	item = domain.Item{
		ID:     id,
		Name:   b.resolveName(n, id),
		Tags:   SplitTags(n.AttrOr(AttrTags, "")),
		Prices: prices,
	}

	if fn, ok := n.Child(parse.ElementFabricate); ok {
		if item.Fabricate, err = parse.Fabricate(fn); err != nil {
			return domain.Item{}, false, fmt.Errorf("item %q: %w", id, err)
		}
	}
	if dn, ok := n.Child(parse.ElementDeconstruct); ok {
		if item.Deconstruct, err = parse.Deconstruct(dn); err != nil {
			return domain.Item{}, false, fmt.Errorf("item %q: %w", id, err)
		}
	}
	if ln, ok := n.Child(parse.ElementLevelResource); ok {
		if item.LevelResource, err = parse.LevelResource(ln); err != nil {
			return domain.Item{}, false, fmt.Errorf("item %q: %w", id, err)
		}
	}

	_, item.HasInventoryIcon = n.Child(ElementInventoryIcon)
	_, item.HasSprite = n.Child(ElementSprite)

	return item, true, nil
}

// resolveName picks the display name: an explicit non-empty name attribute,
// then the localized nameidentifier, then the localized identifier.
func (b *Builder) resolveName(n xmltree.Node, id string) *string {
	if name, ok := n.Attr(AttrName); ok && name != "" {
		return &name
	}
	if nid, ok := n.Attr(AttrNameIdentifier); ok {
		if name, ok := b.loc.ItemName(nid); ok {
			return &name
		}
	}
	if name, ok := b.loc.ItemName(id); ok {
		return &name
	}
	return nil
}

// Build converts the item definitions of every document, in order.
// Identifiers must be unique across the catalog.
func (b *Builder) Build(ctx context.Context, docs []*xmltree.Document) ([]domain.Item, error) {
	log := logger.FromContext(ctx)

	var items []domain.Item
	seen := make(map[string]string)

	for _, doc := range docs {
		elems, ok := xmltree.ItemElements(doc)
		if !ok {
			log.Debug(LogMsgNoItemsElement, "path", doc.Path)
			continue
		}

		for _, elem := range elems {
			metrics.ItemsScanned.Inc()

			item, ok, err := b.Item(elem)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", doc.Path, err)
			}
			if !ok {
				metrics.ItemsSkipped.WithLabelValues(metrics.ReasonNoPrice).Inc()
				continue
			}

			if prev, dup := seen[item.ID]; dup {
				return nil, fmt.Errorf("%w: %q in %s and %s", domain.ErrDuplicateItem, item.ID, prev, doc.Path)
			}
			seen[item.ID] = doc.Path

			if priceNode, ok := elem.Child(parse.ElementPrice); ok {
				if unknown := parse.UnknownPriceAttrs(priceNode); len(unknown) > 0 {
					log.Debug(LogMsgUnknownPriceAttrs, "item", item.ID, "attributes", unknown)
				}
			}
			if item.Name == nil {
				log.Debug(LogMsgUnnamedItem, "item", item.ID)
			}

			metrics.ItemsCataloged.Inc()
			items = append(items, item)
		}
	}

	return items, nil
}

// SplitTags splits a comma separated Tags attribute into a set, keeping
// first-seen order and dropping empty entries.
func SplitTags(raw string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}

// Index maps identifiers to catalog entries.
func Index(items []domain.Item) map[string]*domain.Item {
	idx := make(map[string]*domain.Item, len(items))
	for i := range items {
		idx[items[i].ID] = &items[i]
	}
	return idx
}
