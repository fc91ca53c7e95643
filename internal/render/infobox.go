package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/osse101/BaroWiki_Go/internal/database"
	"github.com/osse101/BaroWiki_Go/internal/domain"
)

// field is one "| key = value" line of a wiki template.
type field struct {
	Key   string
	Value string
}

type fields []field

func (f *fields) add(key, value string) {
	*f = append(*f, field{Key: key, Value: value})
}

// template renders {{name | k = v ...}} with one field per line.
func (f fields) template(name string) string {
	var b strings.Builder
	b.WriteString("{{")
	b.WriteString(name)
	for _, kv := range f {
		fmt.Fprintf(&b, "\n| %s = %s", kv.Key, kv.Value)
	}
	b.WriteString("\n}}")
	return b.String()
}

// Infoboxes renders an infobox section for every named item of a supported
// category, in catalog order.
func Infoboxes(db *database.DB) (string, error) {
	var b strings.Builder
	for i := range db.Items {
		it := &db.Items[i]
		name, ok := it.DisplayName()
		if !ok {
			continue
		}
		category, ok := Category(it)
		if !ok {
			continue
		}
		box, err := Infobox(db, it, category)
		if err != nil {
			return "", fmt.Errorf("infobox %s: %w", it.ID, err)
		}
		fmt.Fprintf(&b, "\n\n ===  %s  ===  \n\n", name)
		b.WriteString(box)
	}
	return b.String(), nil
}

// Category returns the infobox category of an item.
func Category(it *domain.Item) (string, bool) {
	if it.HasTag(CategoryOre) {
		return CategoryOre, true
	}
	return "", false
}

// Infobox renders the infobox of one item.
func Infobox(db *database.DB, it *domain.Item, category string) (string, error) {
	if category != CategoryOre {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedCategory, category)
	}
	name, ok := it.DisplayName()
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnnamedItem, it.ID)
	}
	desc, ok := db.Localization.ItemDescription(it.ID)
	if !ok {
		return "", fmt.Errorf("%w: description of %q", domain.ErrMissingElement, it.ID)
	}

	var f fields
	f.add("identifier", it.ID)
	f.add("name", name)
	f.add("image", name+ImageExtension)
	f.add("caption", "''"+desc+"''")
	f.add("image2", name+MineralImageSuffix)
	f.add("caption2", MineralSpriteLegend)
	f.add("icon", name+ImageExtension)
	f.add("sprite", name+MineralImageSuffix)

	priceFields(&f, it.Prices)
	f.add("noreq", "Yes")

	if err := fabricateFields(db, &f, it.Fabricate); err != nil {
		return "", err
	}
	if err := deconstructFields(db, &f, it.Deconstruct); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("{{Main|Minerals}}\n\n")
	fmt.Fprintf(&b, "{{Version|%s}}\n", db.Version)
	b.WriteString(f.template("Items infobox"))
	b.WriteString("\n")

	if it.LevelResource != nil {
		mineral, err := Mineral(name, it.LevelResource)
		if err != nil {
			return "", err
		}
		b.WriteString(mineral)
	}
	return b.String(), nil
}

func priceFields(f *fields, p domain.Prices) {
	f.add("baseprice", strconv.Itoa(p.BasePrice))

	anywhere := p.SoldAnywhere()
	if !anywhere {
		f.add("unbuyable", "true")
	}
	for _, loc := range InfoboxLocations {
		lp := p.At(loc)
		f.add(loc+"multiplier", FormatNumber(lp.Multiplier))
		if anywhere && !lp.Sold {
			f.add(loc+"unbuyable", "true")
		}
	}
}

// fabricateFields describes the recipe. Only the first required skill is
// listed.
func fabricateFields(db *database.DB, f *fields, fab *domain.Fabricate) error {
	if fab == nil {
		return nil
	}
	if fab.Fabricator != InfoboxFabricator {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFabricator, fab.Fabricator)
	}
	f.add("fabricator", "Yes")
	f.add("fabricatedamount", strconv.Itoa(fab.Amount))
	f.add("fabricatortime", strconv.Itoa(fab.Time))
	if len(fab.Skills) > 0 {
		f.add("fabricatorskill", fab.Skills[0].ID)
		f.add("fabricatorskilllevel", strconv.Itoa(fab.Skills[0].Level))
	}
	mats, err := materialLinks(db, fab.Materials, 0, InfoboxSeparator)
	if err != nil {
		return err
	}
	f.add("fabricatormaterials", mats)
	return nil
}

func deconstructFields(db *database.DB, f *fields, d *domain.Deconstruct) error {
	if d == nil {
		return nil
	}
	f.add("deconstructor", "Yes")
	f.add("deconstructortime", strconv.Itoa(d.Time))
	mats, err := idLinks(db, d.Materials, 0, InfoboxSeparator)
	if err != nil {
		return err
	}
	f.add("deconstructormaterials", mats)
	return nil
}

// Mineral renders the gatherable material block of an ore. Commonness is
// given per biome as a rounded percentage, or as the raw default when the
// resource has no per-level overrides.
func Mineral(name string, lr *domain.LevelResource) (string, error) {
	var f fields
	f.add("name", name)
	f.add("kind", MineralKind)

	if len(lr.Commonness) == 0 {
		f.add("comonness", FormatNumber(lr.DefaultCommonness))
		return f.template("Gatherable Materials"), nil
	}

	for _, bl := range biomeLevels {
		c, ok := lr.Commonness[bl.Level]
		if !ok {
			if bl.Level != DefaultBiomeLevel {
				return "", fmt.Errorf("%w: commonness for level %q", domain.ErrMissingElement, bl.Level)
			}
			c = lr.DefaultCommonness
		}
		f.add("comonness_"+bl.Biome, strconv.Itoa(int(math.Round(c*100))))
	}
	return f.template("Gatherable Materials"), nil
}
