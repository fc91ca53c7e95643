package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BaroWiki_Go/internal/domain"
	"github.com/osse101/BaroWiki_Go/internal/localization"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr error
	}{
		{
			name:    "deps manifest",
			content: `{"targets":{".NETCoreApp,Version=v6.0":{"Barotrauma/1.2.8.0":{"dependencies":{}}}}}`,
			want:    "1.2.8.0",
		},
		{
			name:    "first match wins",
			content: `"Barotrauma/1.0" "Barotrauma/2.0"`,
			want:    "1.0",
		},
		{
			name:    "no entry",
			content: `{"targets":{}}`,
			wantErr: domain.ErrVersionNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.content)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDB_Named(t *testing.T) {
	name := "Wrench"
	db := New("1.0", []domain.Item{{ID: "wrench", Name: &name}, {ID: "ghost"}}, nil)

	it, got, err := db.Named("wrench")
	require.NoError(t, err)
	assert.Equal(t, "Wrench", got)
	assert.Equal(t, "wrench", it.ID)

	_, _, err = db.Named("ghost")
	assert.ErrorIs(t, err, domain.ErrUnnamedItem)

	_, _, err = db.Named("missing")
	assert.ErrorIs(t, err, domain.ErrUnknownItem)

	assert.Len(t, db.Index(), 2)
	assert.NotNil(t, db.Localization)
}

func TestDB_SortedByName(t *testing.T) {
	b, a, a2 := "Beta", "Alpha", "Alpha"
	db := New("1.0", []domain.Item{
		{ID: "b", Name: &b},
		{ID: "a1", Name: &a},
		{ID: "none"},
		{ID: "a2", Name: &a2},
	}, localization.New(nil))

	var ids []string
	for _, it := range db.SortedByName() {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"none", "a1", "a2", "b"}, ids)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	game := t.TempDir()
	writeFile(t, filepath.Join(game, DepsFileName), `{"libraries":{"Barotrauma/1.5.7.0":{}}}`)
	writeFile(t, localization.Path(game), `<infotexts language="English">
		<entityname.wrench>Wrench</entityname.wrench>
		<entityname.steel>Steel Bar</entityname.steel>
	</infotexts>`)
	writeFile(t, filepath.Join(ItemsPath(game), "Tools", "tools.xml"), `<Items>
		<Item identifier="wrench">
			<Price baseprice="30"/>
			<Fabricate suitablefabricators="fabricator"><RequiredItem identifier="steel"/></Fabricate>
		</Item>
	</Items>`)
	writeFile(t, filepath.Join(ItemsPath(game), "Materials", "materials.xml"), `<Items>
		<Item identifier="steel"><Price baseprice="10"/></Item>
	</Items>`)
	writeFile(t, filepath.Join(ItemsPath(game), "uniqueitems.xml"), `<Items><Item identifier="wrench"><Price baseprice="1"/></Item></Items>`)

	db, err := Load(context.Background(), game)
	require.NoError(t, err)

	assert.Equal(t, "1.5.7.0", db.Version)
	require.Len(t, db.Items, 2)
	assert.Equal(t, "steel", db.Items[0].ID, "Materials sorts before Tools")
	assert.Equal(t, "wrench", db.Items[1].ID)
	assert.Equal(t, 2, db.Localization.Len())

	_, name, err := db.Named("steel")
	require.NoError(t, err)
	assert.Equal(t, "Steel Bar", name)
}

func TestLoad_MissingManifest(t *testing.T) {
	_, err := Load(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgReadVersionFailed)
}

func TestLoad_MissingLocalization(t *testing.T) {
	game := t.TempDir()
	writeFile(t, filepath.Join(game, DepsFileName), `"Barotrauma/1.0"`)

	_, err := Load(context.Background(), game)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgLoadLocalizationFailed)
}
