package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/osse101/BaroWiki_Go/internal/database"
	"github.com/osse101/BaroWiki_Go/internal/domain"
)

// DeconstructionTable renders the wiki table of items that can only be
// obtained and taken apart, never fabricated.
func DeconstructionTable(db *database.DB) (string, error) {
	var b strings.Builder
	b.WriteString(deconstructionHeader)

	for _, it := range db.SortedByName() {
		if !deconstructOnly(it) {
			continue
		}
		row, err := deconstructionRow(db, it)
		if err != nil {
			return "", fmt.Errorf("deconstruct %s: %w", it.ID, err)
		}
		b.WriteString(row)
	}

	b.WriteString(tableFooter)
	return b.String(), nil
}

func deconstructOnly(it *domain.Item) bool {
	if slices.Contains(DeconstructionBlacklist, it.ID) {
		return false
	}
	if it.Deconstruct == nil || it.Fabricate != nil {
		return false
	}
	return len(it.Deconstruct.Materials) > 0
}

func deconstructionRow(db *database.DB, it *domain.Item) (string, error) {
	cell, err := DeconstructionCell(it)
	if err != nil {
		return "", err
	}
	mats, err := idLinks(db, it.Deconstruct.Materials, MaterialLinkSize, CellSeparator)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("|-\n")
	fmt.Fprintf(&b, "| align=\"center\" | %s\n", cell)
	fmt.Fprintf(&b, "| align=\"center\" | %d\n", it.Deconstruct.Time)
	fmt.Fprintf(&b, "| align=\"left-index\" | %s\n", mats)
	return b.String(), nil
}
