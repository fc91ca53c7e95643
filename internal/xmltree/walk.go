package xmltree

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// XMLExtension is the file extension of game definition files.
const XMLExtension = ".xml"

// WalkItemFiles returns every XML file below root in lexical order,
// skipping files whose base name is listed in exclude.
func WalkItemFiles(root string, exclude ...string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), XMLExtension) {
			return nil
		}
		if contains(exclude, d.Name()) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("xmltree: walk %s: %w", root, err)
	}
	return paths, nil
}

// ItemElements returns the item definitions of a document: the element
// children of its top-level Items element. ok is false for documents that
// hold no Items element.
func ItemElements(doc *Document) (items []Node, ok bool) {
	container, ok := doc.Root(ItemsElement)
	if !ok {
		return nil, false
	}
	return container.Children(), true
}

// ItemsElement is the container element of item definition files.
const ItemsElement = "Items"
