package xmltree

import (
	"fmt"

	"github.com/beevik/etree"
)

// Node is a read-only view of one XML element.
type Node interface {
	// Tag returns the local element name.
	Tag() string

	// Attr returns the attribute value and whether it is present.
	Attr(name string) (string, bool)

	// AttrOr returns the attribute value or def when it is absent.
	AttrOr(name, def string) string

	// Attrs returns the attribute names in document order.
	Attrs() []string

	// Children returns element children, filtered by tag when tags are given.
	Children(tags ...string) []Node

	// Child returns the first element child with the given tag.
	Child(tag string) (Node, bool)

	// Text returns the element's character data.
	Text() string
}

type element struct {
	e *etree.Element
}

// Wrap exposes an etree element as a Node.
func Wrap(e *etree.Element) Node {
	return element{e: e}
}

func (n element) Tag() string {
	return n.e.Tag
}

func (n element) Attr(name string) (string, bool) {
	a := n.e.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

func (n element) AttrOr(name, def string) string {
	return n.e.SelectAttrValue(name, def)
}

func (n element) Attrs() []string {
	names := make([]string, 0, len(n.e.Attr))
	for _, a := range n.e.Attr {
		names = append(names, a.Key)
	}
	return names
}

func (n element) Children(tags ...string) []Node {
	var out []Node
	for _, c := range n.e.ChildElements() {
		if len(tags) > 0 && !contains(tags, c.Tag) {
			continue
		}
		out = append(out, element{e: c})
	}
	return out
}

func (n element) Child(tag string) (Node, bool) {
	c := n.e.SelectElement(tag)
	if c == nil {
		return nil, false
	}
	return element{e: c}, true
}

func (n element) Text() string {
	return n.e.Text()
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// Document is a parsed XML file.
type Document struct {
	Path string
	doc  *etree.Document
}

// Root returns the document's top-level element with the given tag.
func (d *Document) Root(tag string) (Node, bool) {
	e := d.doc.SelectElement(tag)
	if e == nil {
		return nil, false
	}
	return element{e: e}, true
}

// ParseFile reads and parses an XML file.
func ParseFile(path string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("xmltree: parse %s: %w", path, err)
	}
	return &Document{Path: path, doc: doc}, nil
}

// ParseString parses XML held in memory.
func ParseString(s string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		return nil, fmt.Errorf("xmltree: parse: %w", err)
	}
	return &Document{doc: doc}, nil
}

// MustElement parses s and returns its root element. It panics on malformed
// XML and is intended for tests and literals.
func MustElement(s string) Node {
	doc, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	root := doc.doc.Root()
	if root == nil {
		panic("xmltree: document has no root element")
	}
	return element{e: root}
}
