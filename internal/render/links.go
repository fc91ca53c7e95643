package render

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/BaroWiki_Go/internal/database"
	"github.com/osse101/BaroWiki_Go/internal/domain"
)

var skillTitle = cases.Title(language.English)

// Link renders a wiki hyperlink to the item with the given id. size is the
// image size in pixels, 0 for none. A count above one adds " (xN)".
func Link(db *database.DB, id string, count, size int) (string, error) {
	_, name, err := db.Named(id)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("{{Hyperlink|")
	b.WriteString(name)
	if size > 0 {
		b.WriteString("|")
		b.WriteString(strconv.Itoa(size))
		b.WriteString("px")
	}
	b.WriteString("}}")
	if count > 1 {
		fmt.Fprintf(&b, " (x%d)", count)
	}
	return b.String(), nil
}

// MaterialLink links a fabrication ingredient. Tags resolve through their
// representative item.
func MaterialLink(db *database.DB, m domain.Counted[domain.RequiredMaterial], size int) (string, error) {
	switch v := m.Value.(type) {
	case domain.MaterialID:
		return Link(db, string(v), m.Count, size)
	case domain.MaterialTag:
		id, ok := tagRepresentatives[string(v)]
		if !ok {
			return "", fmt.Errorf("%w: %q", domain.ErrUnresolvedTag, string(v))
		}
		return Link(db, id, m.Count, size)
	default:
		return "", fmt.Errorf("%w: %T", domain.ErrUnsupportedMaterial, m.Value)
	}
}

// materialLinks links every ingredient and joins them with sep.
func materialLinks(db *database.DB, mats []domain.Counted[domain.RequiredMaterial], size int, sep string) (string, error) {
	parts := make([]string, 0, len(mats))
	for _, m := range mats {
		l, err := MaterialLink(db, m, size)
		if err != nil {
			return "", err
		}
		parts = append(parts, l)
	}
	return strings.Join(parts, sep), nil
}

// idLinks links deconstruction products and joins them with sep.
func idLinks(db *database.DB, mats []domain.Counted[string], size int, sep string) (string, error) {
	parts := make([]string, 0, len(mats))
	for _, m := range mats {
		l, err := Link(db, m.Value, m.Count, size)
		if err != nil {
			return "", err
		}
		parts = append(parts, l)
	}
	return strings.Join(parts, sep), nil
}

// SkillList renders required skills as "Name level" entries, or None.
func SkillList(skills []domain.Skill) (string, error) {
	if len(skills) == 0 {
		return NoSkills, nil
	}
	parts := make([]string, 0, len(skills))
	for _, s := range skills {
		if !slices.Contains(knownSkills, s.ID) {
			return "", fmt.Errorf("%w: %q", domain.ErrUnknownSkill, s.ID)
		}
		parts = append(parts, fmt.Sprintf("%s %d", skillTitle.String(s.ID), s.Level))
	}
	return strings.Join(parts, CellSeparator), nil
}

// PictureName returns the wiki image name of an item.
func PictureName(id, name string) string {
	if pic, ok := pictureOverrides[id]; ok {
		return pic
	}
	return name
}

// DisplayCell renders the image and page link identifying an item in a table.
func DisplayCell(it *domain.Item) (string, error) {
	return displayCell(it, false)
}

// DeconstructionCell is DisplayCell with the picture overrides applied.
func DeconstructionCell(it *domain.Item) (string, error) {
	return displayCell(it, true)
}

func displayCell(it *domain.Item, overridePicture bool) (string, error) {
	name, ok := it.DisplayName()
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnnamedItem, it.ID)
	}
	pic := name
	if overridePicture {
		pic = PictureName(it.ID, name)
	}
	return fmt.Sprintf("[[File:%s.png| |%dpx|link=%s]] <br> [[%s]]",
		pic, DisplayImageSize, name, name), nil
}

// FormatMultiplier prints a CSV price multiplier with at least one decimal.
func FormatMultiplier(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatNumber prints a float in its shortest form, "1" for 1.0.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
