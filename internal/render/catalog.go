package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/osse101/BaroWiki_Go/internal/database"
	"github.com/osse101/BaroWiki_Go/internal/domain"
)

// catalogDump is the YAML layout of the normalized catalog.
type catalogDump struct {
	Version string     `yaml:"version"`
	Items   []itemDump `yaml:"items"`
}

type itemDump struct {
	ID            string               `yaml:"id"`
	Name          string               `yaml:"name,omitempty"`
	Tags          []string             `yaml:"tags,omitempty"`
	BasePrice     int                  `yaml:"baseprice"`
	SoldEvery     bool                 `yaml:"soldeverywhere,omitempty"`
	Locations     map[string]priceDump `yaml:"locations,omitempty"`
	Fabricate     *fabricateDump       `yaml:"fabricate,omitempty"`
	Deconstruct   *deconstructDump     `yaml:"deconstruct,omitempty"`
	LevelResource *levelResourceDump   `yaml:"levelresource,omitempty"`
}

type priceDump struct {
	Multiplier float64 `yaml:"multiplier"`
	Sold       bool    `yaml:"sold"`
}

type fabricateDump struct {
	Fabricator string         `yaml:"fabricator"`
	Amount     int            `yaml:"amount"`
	Time       int            `yaml:"time"`
	Skills     []skillDump    `yaml:"skills,omitempty"`
	Materials  []materialDump `yaml:"materials,omitempty"`
}

type skillDump struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name,omitempty"`
	Level int    `yaml:"level"`
}

type materialDump struct {
	ID    string `yaml:"id,omitempty"`
	Tag   string `yaml:"tag,omitempty"`
	Count int    `yaml:"count"`
}

type deconstructDump struct {
	Time      int            `yaml:"time"`
	Materials []materialDump `yaml:"materials,omitempty"`
}

type levelResourceDump struct {
	Default    float64            `yaml:"default"`
	Commonness map[string]float64 `yaml:"commonness,omitempty"`
}

// CatalogYAML dumps the normalized catalog, in catalog order, for diffing
// between game versions.
func CatalogYAML(db *database.DB) ([]byte, error) {
	dump := catalogDump{
		Version: db.Version,
		Items:   make([]itemDump, 0, len(db.Items)),
	}
	for i := range db.Items {
		d, err := dumpItem(db, &db.Items[i])
		if err != nil {
			return nil, fmt.Errorf("dump %s: %w", db.Items[i].ID, err)
		}
		dump.Items = append(dump.Items, d)
	}

	out, err := yaml.Marshal(dump)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	return out, nil
}

func dumpItem(db *database.DB, it *domain.Item) (itemDump, error) {
	d := itemDump{
		ID:        it.ID,
		Tags:      it.Tags,
		BasePrice: it.Prices.BasePrice,
		SoldEvery: it.Prices.SoldEverywhere,
	}
	if name, ok := it.DisplayName(); ok {
		d.Name = name
	}
	if len(it.Prices.Locations) > 0 {
		d.Locations = make(map[string]priceDump, len(it.Prices.Locations))
		for loc, lp := range it.Prices.Locations {
			d.Locations[loc] = priceDump{Multiplier: lp.Multiplier, Sold: lp.Sold}
		}
	}

	if fab := it.Fabricate; fab != nil {
		fd := &fabricateDump{Fabricator: fab.Fabricator, Amount: fab.Amount, Time: fab.Time}
		for _, s := range fab.Skills {
			sd := skillDump{ID: s.ID, Level: s.Level}
			if name, ok := db.Localization.SkillName(s.ID); ok {
				sd.Name = name
			}
			fd.Skills = append(fd.Skills, sd)
		}
		for _, m := range fab.Materials {
			md := materialDump{Count: m.Count}
			switch v := m.Value.(type) {
			case domain.MaterialID:
				md.ID = string(v)
			case domain.MaterialTag:
				md.Tag = string(v)
			default:
				return itemDump{}, fmt.Errorf("%w: %T", domain.ErrUnsupportedMaterial, m.Value)
			}
			fd.Materials = append(fd.Materials, md)
		}
		d.Fabricate = fd
	}

	if dc := it.Deconstruct; dc != nil {
		dd := &deconstructDump{Time: dc.Time}
		for _, m := range dc.Materials {
			dd.Materials = append(dd.Materials, materialDump{ID: m.Value, Count: m.Count})
		}
		d.Deconstruct = dd
	}

	if lr := it.LevelResource; lr != nil {
		d.LevelResource = &levelResourceDump{Default: lr.DefaultCommonness, Commonness: lr.Commonness}
	}
	return d, nil
}
