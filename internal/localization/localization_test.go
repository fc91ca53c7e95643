package localization

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BaroWiki_Go/internal/domain"
	"github.com/osse101/BaroWiki_Go/internal/xmltree"
)

const sampleFile = `<?xml version="1.0" encoding="utf-8"?>
<infotexts language="English">
  <entityname.wrench>Wrench</entityname.wrench>
  <entitydescription.wrench>Used for tightening things.</entitydescription.wrench>
  <skillname.mechanical>Mechanical Engineering</skillname.mechanical>
  <entityname.empty></entityname.empty>
</infotexts>`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "EnglishVanilla.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())

	name, ok := table.ItemName("wrench")
	assert.True(t, ok)
	assert.Equal(t, "Wrench", name)

	desc, ok := table.ItemDescription("wrench")
	assert.True(t, ok)
	assert.Equal(t, "Used for tightening things.", desc)

	skill, ok := table.SkillName("mechanical")
	assert.True(t, ok)
	assert.Equal(t, "Mechanical Engineering", skill)

	_, ok = table.ItemName("empty")
	assert.False(t, ok, "entries without text are skipped")

	_, ok = table.Lookup("entityname.crowbar")
	assert.False(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

func TestFromDocument_MissingRoot(t *testing.T) {
	doc, err := xmltree.ParseString(`<texts/>`)
	require.NoError(t, err)

	_, err = FromDocument(doc)
	assert.ErrorIs(t, err, domain.ErrMissingElement)
}

func TestNew_CopiesEntries(t *testing.T) {
	entries := map[string]string{"entityname.pipe": "Pipe"}
	table := New(entries)
	entries["entityname.pipe"] = "Changed"

	name, ok := table.ItemName("pipe")
	assert.True(t, ok)
	assert.Equal(t, "Pipe", name)
}

func TestPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("game", "Content", "Texts", "English", "EnglishVanilla.xml"),
		Path("game"))
}
