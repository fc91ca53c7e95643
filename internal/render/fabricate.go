package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/osse101/BaroWiki_Go/internal/database"
	"github.com/osse101/BaroWiki_Go/internal/domain"
)

// FabricationTable renders the wiki table of everything fabricated at station.
// Ordinary items come first, sorted by name, followed by one collapsed row
// per group with at least one member at the station.
func FabricationTable(db *database.DB, station string) (string, error) {
	items := db.SortedByName()

	var b strings.Builder
	b.WriteString(fabricationHeader)

	for _, it := range items {
		if slices.Contains(FabricationBlacklist, it.ID) {
			continue
		}
		if it.Fabricate == nil || grouped(it) {
			continue
		}
		if it.Fabricate.Fabricator != station {
			continue
		}
		cell, err := DisplayCell(it)
		if err != nil {
			return "", err
		}
		row, err := fabricationRow(db, it, cell)
		if err != nil {
			return "", fmt.Errorf("fabricate %s: %w", it.ID, err)
		}
		b.WriteString(row)
	}

	for _, g := range Groups {
		row, ok, err := groupRow(db, items, g, station)
		if err != nil {
			return "", err
		}
		if ok {
			b.WriteString(row)
		}
	}

	b.WriteString(tableFooter)
	return b.String(), nil
}

// grouped reports whether the item is shown through a collapsed group row.
func grouped(it *domain.Item) bool {
	for _, g := range Groups {
		if it.HasAnyTag(g.Tags) && !slices.Contains(g.Exceptions, it.ID) {
			return true
		}
	}
	return false
}

// groupRow renders every member of g fabricated at station and checks that
// they all produce the same row. ok is false when the group has no member.
func groupRow(db *database.DB, items []*domain.Item, g Group, station string) (row string, ok bool, err error) {
	var canonical, canonicalID string
	for _, it := range items {
		if slices.Contains(g.Exceptions, it.ID) {
			continue
		}
		if it.Fabricate == nil || it.Fabricate.Fabricator != station {
			continue
		}
		if !it.HasAnyTag(g.Tags) {
			continue
		}

		member := withSortedMaterials(it)
		line, err := fabricationRow(db, &member, g.Display)
		if err != nil {
			return "", false, fmt.Errorf("fabricate %s: %w", it.ID, err)
		}
		if !ok {
			canonical, canonicalID, ok = line, it.ID, true
			continue
		}
		if err := CheckCanonical(g.Display, canonical, it.ID, line); err != nil {
			return "", false, fmt.Errorf("first member %s: %w", canonicalID, err)
		}
	}
	return canonical, ok, nil
}

// CheckCanonical compares a group member's rendered row with the group's
// canonical row.
func CheckCanonical(group, canonical, itemID, got string) error {
	if got == canonical {
		return nil
	}
	return &domain.GroupConsistencyError{
		Group:     group,
		ItemID:    itemID,
		Canonical: canonical,
		Got:       got,
	}
}

// withSortedMaterials returns a copy of the item whose recipe lists its
// materials in sorted order. The catalog entry is left untouched.
func withSortedMaterials(it *domain.Item) domain.Item {
	c := *it
	fab := *it.Fabricate
	fab.Materials = slices.Clone(fab.Materials)
	slices.SortStableFunc(fab.Materials, compareCountedMaterial)
	c.Fabricate = &fab
	return c
}

func compareCountedMaterial(a, b domain.Counted[domain.RequiredMaterial]) int {
	switch {
	case domain.LessMaterial(a.Value, b.Value):
		return -1
	case domain.LessMaterial(b.Value, a.Value):
		return 1
	default:
		return a.Count - b.Count
	}
}

// fabricationRow renders one table row with the given item cell.
func fabricationRow(db *database.DB, it *domain.Item, cell string) (string, error) {
	fab := it.Fabricate

	mats, err := materialLinks(db, fab.Materials, MaterialLinkSize, CellSeparator)
	if err != nil {
		return "", err
	}
	skills, err := SkillList(fab.Skills)
	if err != nil {
		return "", err
	}
	decon, err := deconstructColumn(db, it)
	if err != nil {
		return "", err
	}

	amount := ""
	if fab.Amount > 1 {
		amount = fmt.Sprintf(" (x%d)", fab.Amount)
	}

	var b strings.Builder
	b.WriteString("|-\n")
	fmt.Fprintf(&b, "| align=\"center\" | %s%s\n", cell, amount)
	fmt.Fprintf(&b, "| align=\"left-index\" | %s \n", mats)
	fmt.Fprintf(&b, "| align=\"center\" | %d\n", fab.Time)
	fmt.Fprintf(&b, "| align=\"center\" | %s\n", skills)
	fmt.Fprintf(&b, "| align=\"left-index\" | %s\n", decon)
	return b.String(), nil
}

// deconstructColumn renders what the item deconstructs into, or "-" when
// that is exactly what it is made from.
func deconstructColumn(db *database.DB, it *domain.Item) (string, error) {
	if it.Deconstruct == nil {
		return NotDeconstructable, nil
	}
	same, err := sameMaterials(it.Fabricate.Materials, it.Deconstruct.Materials)
	if err != nil {
		return "", err
	}
	if same {
		return SameAsRecipe, nil
	}
	return idLinks(db, it.Deconstruct.Materials, MaterialLinkSize, CellSeparator)
}

// sameMaterials compares a fabrication and a deconstruction multiset by id
// and count. Tag ingredients never match.
func sameMaterials(fab []domain.Counted[domain.RequiredMaterial], decon []domain.Counted[string]) (bool, error) {
	ids := make([]domain.Counted[string], 0, len(fab))
	for _, m := range fab {
		switch v := m.Value.(type) {
		case domain.MaterialID:
			ids = append(ids, domain.Counted[string]{Value: string(v), Count: m.Count})
		case domain.MaterialTag:
			ids = append(ids, domain.Counted[string]{Value: unresolvedMaterial, Count: m.Count})
		default:
			return false, fmt.Errorf("%w: %T", domain.ErrUnsupportedMaterial, m.Value)
		}
	}
	d := slices.Clone(decon)
	slices.SortFunc(ids, compareCountedID)
	slices.SortFunc(d, compareCountedID)
	return slices.Equal(ids, d), nil
}

func compareCountedID(a, b domain.Counted[string]) int {
	if c := strings.Compare(a.Value, b.Value); c != 0 {
		return c
	}
	return a.Count - b.Count
}
