package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/osse101/BaroWiki_Go/internal/catalog"
	"github.com/osse101/BaroWiki_Go/internal/domain"
	"github.com/osse101/BaroWiki_Go/internal/localization"
	"github.com/osse101/BaroWiki_Go/internal/logger"
	"github.com/osse101/BaroWiki_Go/internal/metrics"
	"github.com/osse101/BaroWiki_Go/internal/xmltree"
)

var versionRe = regexp.MustCompile(VersionPattern)

// DB is everything the renderers consume: the game version, the item
// catalog in source order, and the localization table. It is built once
// and must not be modified afterwards.
type DB struct {
	Version      string
	Items        []domain.Item
	Localization *localization.Table

	index map[string]*domain.Item
}

// New assembles a DB from already built parts.
func New(version string, items []domain.Item, loc *localization.Table) *DB {
	if loc == nil {
		loc = localization.New(nil)
	}
	return &DB{
		Version:      version,
		Items:        items,
		Localization: loc,
		index:        catalog.Index(items),
	}
}

// Index returns the id -> item lookup shared by the renderers.
func (db *DB) Index() map[string]*domain.Item {
	return db.index
}

// Item returns the catalog entry with the given identifier.
func (db *DB) Item(id string) (*domain.Item, bool) {
	it, ok := db.index[id]
	return it, ok
}

// Named returns the item with the given identifier together with its
// display name. Unknown and unnamed items are errors.
func (db *DB) Named(id string) (*domain.Item, string, error) {
	it, ok := db.index[id]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", domain.ErrUnknownItem, id)
	}
	name, ok := it.DisplayName()
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", domain.ErrUnnamedItem, id)
	}
	return it, name, nil
}

// SortedByName returns pointers to the catalog items ordered by display
// name. Unnamed items come first; ties keep source order.
func (db *DB) SortedByName() []*domain.Item {
	out := make([]*domain.Item, len(db.Items))
	for i := range db.Items {
		out[i] = &db.Items[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, aok := out[i].DisplayName()
		b, bok := out[j].DisplayName()
		if aok != bok {
			return !aok
		}
		return a < b
	})
	return out
}

// ParseVersion extracts the game version from the dependency manifest.
func ParseVersion(content string) (string, error) {
	m := versionRe.FindStringSubmatch(content)
	if m == nil {
		return "", fmt.Errorf("%w: no %s entry", domain.ErrVersionNotFound, VersionPattern)
	}
	return m[1], nil
}

// ItemsPath returns the root of the item definition tree.
func ItemsPath(gamePath string) string {
	return filepath.Join(gamePath, "Content", "Items")
}

// Load reads a game installation: version, localization and item catalog.
func Load(ctx context.Context, gamePath string) (*DB, error) {
	log := logger.FromContext(ctx)

	raw, err := os.ReadFile(filepath.Join(gamePath, DepsFileName))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadVersionFailed, err)
	}
	version, err := ParseVersion(string(raw))
	if err != nil {
		return nil, err
	}
	log.Info(LogMsgVersionDetected, "version", version)

	loc, err := localization.Load(localization.Path(gamePath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadLocalizationFailed, err)
	}
	log.Info(LogMsgLocalizationLoaded, "entries", loc.Len())

	paths, err := xmltree.WalkItemFiles(ItemsPath(gamePath), catalog.ExcludedFiles...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgWalkItemsFailed, err)
	}
	log.Info(LogMsgItemFilesFound, "count", len(paths))

	docs := make([]*xmltree.Document, 0, len(paths))
	for _, p := range paths {
		doc, err := xmltree.ParseFile(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgParseItemFileFailed, err)
		}
		metrics.FilesParsed.Inc()
		docs = append(docs, doc)
	}

	items, err := catalog.NewBuilder(loc).Build(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBuildCatalogFailed, err)
	}
	log.Info(LogMsgCatalogBuilt, "items", len(items))

	return New(version, items, loc), nil
}
