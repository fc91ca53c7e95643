package localization

import (
	"fmt"
	"path/filepath"

	"github.com/osse101/BaroWiki_Go/internal/domain"
	"github.com/osse101/BaroWiki_Go/internal/xmltree"
)

// Key prefixes of the localization file.
const (
	PrefixEntityName        = "entityname."
	PrefixEntityDescription = "entitydescription."
	PrefixSkillName         = "skillname."
)

// RootElement is the top-level element of a localization file.
const RootElement = "infotexts"

// Path returns the English localization file of a game installation.
func Path(gamePath string) string {
	return filepath.Join(gamePath, "Content", "Texts", "English", "EnglishVanilla.xml")
}

// Table is a read-only key -> text mapping.
type Table struct {
	entries map[string]string
}

// New builds a table from a copy of entries.
func New(entries map[string]string) *Table {
	t := &Table{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		t.entries[k] = v
	}
	return t
}

// Load reads a localization file.
func Load(path string) (*Table, error) {
	doc, err := xmltree.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc)
}

// FromDocument builds a table from a parsed localization document. Every
// element child of infotexts becomes one entry; children without text are
// skipped.
func FromDocument(doc *xmltree.Document) (*Table, error) {
	root, ok := doc.Root(RootElement)
	if !ok {
		return nil, fmt.Errorf("%w: <%s> in %s", domain.ErrMissingElement, RootElement, doc.Path)
	}

	t := &Table{entries: make(map[string]string)}
	for _, entry := range root.Children() {
		text := entry.Text()
		if text == "" {
			continue
		}
		t.entries[entry.Tag()] = text
	}
	return t, nil
}

// Lookup returns the text stored under a fully qualified key.
func (t *Table) Lookup(key string) (string, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// ItemName returns the display name of an entity.
func (t *Table) ItemName(id string) (string, bool) {
	return t.Lookup(PrefixEntityName + id)
}

// ItemDescription returns the description of an entity.
func (t *Table) ItemDescription(id string) (string, bool) {
	return t.Lookup(PrefixEntityDescription + id)
}

// SkillName returns the display name of a skill.
func (t *Table) SkillName(id string) (string, bool) {
	return t.Lookup(PrefixSkillName + id)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}
