package render_bench

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/osse101/BaroWiki_Go/internal/catalog"
	"github.com/osse101/BaroWiki_Go/internal/database"
	"github.com/osse101/BaroWiki_Go/internal/domain"
	"github.com/osse101/BaroWiki_Go/internal/localization"
	"github.com/osse101/BaroWiki_Go/internal/parse"
	"github.com/osse101/BaroWiki_Go/internal/render"
	"github.com/osse101/BaroWiki_Go/internal/xmltree"
)

const itemCount = 1000

// --- Fixtures ---

// itemsDocument builds an item file with itemCount fabricable items, each
// made from the one before it.
func itemsDocument() string {
	var b strings.Builder
	b.WriteString("<Items>\n")
	b.WriteString(`<Item identifier="item0"><Price baseprice="1"/></Item>` + "\n")
	for i := 1; i < itemCount; i++ {
		fmt.Fprintf(&b, `<Item identifier="item%d" Tags="smallitem">
	<Price baseprice="%d"><Price locationtype="city" multiplier="1.1"/><Price locationtype="outpost" minavailable="1"/></Price>
	<Fabricate suitablefabricators="fabricator" requiredtime="10">
		<RequiredSkill identifier="mechanical" level="10"/>
		<RequiredItem identifier="item%d"/><RequiredItem identifier="item%d"/>
	</Fabricate>
	<Deconstruct time="5"><Item identifier="item%d"/></Deconstruct>
</Item>
`, i, i, i-1, i-1, i-1)
	}
	b.WriteString("</Items>\n")
	return b.String()
}

func localizationTable() *localization.Table {
	entries := make(map[string]string, itemCount)
	for i := 0; i < itemCount; i++ {
		entries[fmt.Sprintf("%sitem%d", localization.PrefixEntityName, i)] = fmt.Sprintf("Item %04d", i)
	}
	return localization.New(entries)
}

func buildDB(b *testing.B) *database.DB {
	b.Helper()
	doc, err := xmltree.ParseString(itemsDocument())
	if err != nil {
		b.Fatal(err)
	}
	loc := localizationTable()
	items, err := catalog.NewBuilder(loc).Build(context.Background(), []*xmltree.Document{doc})
	if err != nil {
		b.Fatal(err)
	}
	return database.New("1.0.0.0", items, loc)
}

// --- Benchmarks ---

func BenchmarkCatalogBuild(b *testing.B) {
	doc, err := xmltree.ParseString(itemsDocument())
	if err != nil {
		b.Fatal(err)
	}
	builder := catalog.NewBuilder(localizationTable())
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.Build(ctx, []*xmltree.Document{doc}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFabricationTable(b *testing.B) {
	db := buildDB(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := render.FabricationTable(db, "fabricator"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPricesCSV(b *testing.B) {
	db := buildDB(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := render.PricesCSV(db.Items); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDedup(b *testing.B) {
	mats := make([]domain.RequiredMaterial, 0, 64)
	for i := 0; i < 64; i++ {
		mats = append(mats, domain.MaterialID(fmt.Sprintf("item%d", i%8)))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = parse.Dedup(mats)
	}
}
