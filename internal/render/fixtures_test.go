package render

import (
	"github.com/osse101/BaroWiki_Go/internal/database"
	"github.com/osse101/BaroWiki_Go/internal/domain"
	"github.com/osse101/BaroWiki_Go/internal/localization"
)

func strPtr(s string) *string { return &s }

var allLocations = []string{"city", "military", "mine", "outpost", "research"}

func soldAt(mult float64, locs ...string) domain.Prices {
	p := domain.Prices{BasePrice: 10, Locations: map[string]domain.LocationPrice{}}
	for _, loc := range locs {
		p.Locations[loc] = domain.LocationPrice{Multiplier: mult, Sold: true}
	}
	return p
}

func ids(values ...string) []domain.Counted[domain.RequiredMaterial] {
	mats := make([]domain.Counted[domain.RequiredMaterial], 0, len(values))
	for _, v := range values {
		mats = append(mats, domain.Counted[domain.RequiredMaterial]{Value: domain.MaterialID(v), Count: 1})
	}
	return mats
}

func wrench() domain.Item {
	return domain.Item{ID: "wrench", Name: strPtr("Wrench"), Prices: soldAt(1.0, allLocations...)}
}

func pipe() domain.Item {
	return domain.Item{
		ID:     "pipe",
		Name:   strPtr("Pipe"),
		Prices: soldAt(1.25, "city", "outpost"),
		Fabricate: &domain.Fabricate{
			Amount:     1,
			Time:       10,
			Fabricator: "fabricator",
			Materials:  []domain.Counted[domain.RequiredMaterial]{{Value: domain.MaterialID("wrench"), Count: 2}},
		},
		Deconstruct: &domain.Deconstruct{
			Time:      5,
			Materials: []domain.Counted[string]{{Value: "wrench", Count: 2}},
		},
	}
}

func newDB(items ...domain.Item) *database.DB {
	return database.New("1.2.3.0", items, localization.New(map[string]string{
		"entitydescription.iron": "A common metal.",
		"skillname.mechanical":   "Mechanical Engineering",
	}))
}
