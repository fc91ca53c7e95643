package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BaroWiki_Go/internal/domain"
	"github.com/osse101/BaroWiki_Go/internal/localization"
	"github.com/osse101/BaroWiki_Go/internal/xmltree"
)

func testLocalization() *localization.Table {
	return localization.New(map[string]string{
		"entityname.wrench":    "Wrench",
		"entityname.pipe":      "Pipe",
		"entityname.sharedkey": "Shared Name",
		"entityname.namedself": "From Identifier",
	})
}

func TestBuilder_ResolveName(t *testing.T) {
	b := NewBuilder(testLocalization())

	tests := []struct {
		name string
		xml  string
		want *string
	}{
		{
			name: "explicit name wins over localization",
			xml:  `<Item identifier="wrench" name="Big Wrench" nameidentifier="pipe"><Price baseprice="1"/></Item>`,
			want: strPtr("Big Wrench"),
		},
		{
			name: "empty name falls back to nameidentifier",
			xml:  `<Item identifier="x" name="" nameidentifier="sharedkey"><Price baseprice="1"/></Item>`,
			want: strPtr("Shared Name"),
		},
		{
			name: "unresolved nameidentifier falls back to identifier",
			xml:  `<Item identifier="namedself" nameidentifier="nothere"><Price baseprice="1"/></Item>`,
			want: strPtr("From Identifier"),
		},
		{
			name: "identifier lookup",
			xml:  `<Item identifier="wrench"><Price baseprice="1"/></Item>`,
			want: strPtr("Wrench"),
		},
		{
			name: "no name anywhere",
			xml:  `<Item identifier="debugtool" name=""><Price baseprice="1"/></Item>`,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok, err := b.Item(xmltree.MustElement(tt.xml))
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, item.Name)
		})
	}
}

func TestBuilder_Item(t *testing.T) {
	b := NewBuilder(testLocalization())

	t.Run("full item", func(t *testing.T) {
		item, ok, err := b.Item(xmltree.MustElement(`<Item identifier="pipe" Tags="smallitem, weapon,,smallitem">
			<Price baseprice="20"><Price locationtype="city"/></Price>
			<InventoryIcon texture="x.png"/>
			<Fabricate suitablefabricators="fabricator" requiredtime="10">
				<RequiredItem identifier="wrench"/>
				<RequiredItem identifier="wrench"/>
			</Fabricate>
			<Deconstruct time="5">
				<Item identifier="wrench"/>
				<Item identifier="wrench"/>
			</Deconstruct>
		</Item>`))
		require.NoError(t, err)
		require.True(t, ok)

		assert.Equal(t, "pipe", item.ID)
		assert.Equal(t, strPtr("Pipe"), item.Name)
		assert.Equal(t, []string{"smallitem", "weapon"}, item.Tags)
		assert.Equal(t, 20, item.Prices.BasePrice)
		assert.True(t, item.HasInventoryIcon)
		assert.False(t, item.HasSprite)
		require.NotNil(t, item.Fabricate)
		assert.Equal(t, []domain.Counted[domain.RequiredMaterial]{{Value: domain.MaterialID("wrench"), Count: 2}}, item.Fabricate.Materials)
		require.NotNil(t, item.Deconstruct)
		assert.Equal(t, []domain.Counted[string]{{Value: "wrench", Count: 2}}, item.Deconstruct.Materials)
		assert.Nil(t, item.LevelResource)
	})

	t.Run("ore with level resource and sprite", func(t *testing.T) {
		item, ok, err := b.Item(xmltree.MustElement(`<Item identifier="iron" Tags="ore">
			<Price baseprice="5"/>
			<Sprite texture="iron.png"/>
			<LevelResource><Commonness commonness="0.3"/></LevelResource>
		</Item>`))
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, item.HasSprite)
		require.NotNil(t, item.LevelResource)
		assert.Equal(t, 0.3, item.LevelResource.DefaultCommonness)
	})

	t.Run("unpriced item is skipped", func(t *testing.T) {
		_, ok, err := b.Item(xmltree.MustElement(`<Item identifier="debug"/>`))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing identifier fails", func(t *testing.T) {
		_, _, err := b.Item(xmltree.MustElement(`<Item><Price baseprice="1"/></Item>`))
		assert.ErrorIs(t, err, domain.ErrMissingAttribute)
	})

	t.Run("parser errors carry the item id", func(t *testing.T) {
		_, _, err := b.Item(xmltree.MustElement(`<Item identifier="broken"><Price/></Item>`))
		assert.ErrorIs(t, err, domain.ErrMissingAttribute)
		assert.Contains(t, err.Error(), `"broken"`)
	})
}

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder(testLocalization())

	first, err := xmltree.ParseString(`<Items>
		<Item identifier="wrench"><Price baseprice="10"/></Item>
		<Item identifier="unsellable"/>
		<Item identifier="pipe"><Price baseprice="20"/></Item>
	</Items>`)
	require.NoError(t, err)
	notItems, err := xmltree.ParseString(`<Afflictions/>`)
	require.NoError(t, err)
	second, err := xmltree.ParseString(`<Items><Item identifier="crowbar"><Price baseprice="30"/></Item></Items>`)
	require.NoError(t, err)

	items, err := b.Build(context.Background(), []*xmltree.Document{first, notItems, second})
	require.NoError(t, err)

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"wrench", "pipe", "crowbar"}, ids, "source order is preserved")
}

func TestBuilder_Build_DuplicateIdentifier(t *testing.T) {
	b := NewBuilder(testLocalization())

	doc, err := xmltree.ParseString(`<Items>
		<Item identifier="wrench"><Price baseprice="10"/></Item>
		<Item identifier="wrench"><Price baseprice="11"/></Item>
	</Items>`)
	require.NoError(t, err)

	_, err = b.Build(context.Background(), []*xmltree.Document{doc})
	assert.ErrorIs(t, err, domain.ErrDuplicateItem)
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, SplitTags(""))
	assert.Equal(t, []string{"a", "b"}, SplitTags("a,b,a, ,"))
}

func TestIndex(t *testing.T) {
	items := []domain.Item{{ID: "a"}, {ID: "b"}}
	idx := Index(items)
	require.Contains(t, idx, "b")
	assert.Same(t, &items[1], idx["b"])
}

func strPtr(s string) *string { return &s }
