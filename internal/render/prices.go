package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"

	"github.com/osse101/BaroWiki_Go/internal/domain"
)

// Locations returns the union of the location types recorded by items, sorted.
func Locations(items []domain.Item) []string {
	seen := make(map[string]struct{})
	for i := range items {
		for loc := range items[i].Prices.Locations {
			seen[loc] = struct{}{}
		}
	}
	locs := make([]string, 0, len(seen))
	for loc := range seen {
		locs = append(locs, loc)
	}
	sort.Strings(locs)
	return locs
}

// PricesCSV renders one row of location multipliers per item, in catalog
// order. Locations an item has no record for get 1.0.
func PricesCSV(items []domain.Item) ([]byte, error) {
	locs := Locations(items)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append([]string{CSVNameColumn}, locs...)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write price header: %w", err)
	}

	for i := range items {
		it := &items[i]
		record := make([]string, 0, len(header))
		record = append(record, it.ID)
		for _, loc := range locs {
			mult := domain.DefaultLocationPrice.Multiplier
			if lp, ok := it.Prices.Locations[loc]; ok {
				mult = lp.Multiplier
			}
			record = append(record, FormatMultiplier(mult))
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write price row %s: %w", it.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush prices: %w", err)
	}
	return buf.Bytes(), nil
}
