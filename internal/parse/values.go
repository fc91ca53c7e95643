package parse

import (
	"fmt"
	"strconv"

	"github.com/osse101/BaroWiki_Go/internal/domain"
	"github.com/osse101/BaroWiki_Go/internal/xmltree"
)

// Bool parses the game's boolean spelling. Only "true" and "false" are accepted.
func Bool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not a boolean", domain.ErrInvalidValue, s)
	}
}

// Dedup collapses repeated values into one entry per distinct value, in
// first-occurrence order, with the number of occurrences.
func Dedup[T comparable](values []T) []domain.Counted[T] {
	index := make(map[T]int, len(values))
	var out []domain.Counted[T]
	for _, v := range values {
		if i, ok := index[v]; ok {
			out[i].Count++
			continue
		}
		index[v] = len(out)
		out = append(out, domain.Counted[T]{Value: v, Count: 1})
	}
	return out
}

func requireAttr(n xmltree.Node, name string) (string, error) {
	v, ok := n.Attr(name)
	if !ok {
		return "", fmt.Errorf("%w: <%s %s>", domain.ErrMissingAttribute, n.Tag(), name)
	}
	return v, nil
}

func requireInt(n xmltree.Node, name string) (int, error) {
	v, err := requireAttr(n, name)
	if err != nil {
		return 0, err
	}
	return toInt(n, name, v)
}

func intOr(n xmltree.Node, name, def string) (int, error) {
	return toInt(n, name, n.AttrOr(name, def))
}

func toInt(n xmltree.Node, name, v string) (int, error) {
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: <%s %s=%q>: %v", domain.ErrInvalidValue, n.Tag(), name, v, err)
	}
	return i, nil
}

func toFloat(n xmltree.Node, name, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: <%s %s=%q>: %v", domain.ErrInvalidValue, n.Tag(), name, v, err)
	}
	return f, nil
}

// optionalBool returns nil when the attribute is absent.
func optionalBool(n xmltree.Node, name string) (*bool, error) {
	v, ok := n.Attr(name)
	if !ok {
		return nil, nil
	}
	b, err := Bool(v)
	if err != nil {
		return nil, fmt.Errorf("<%s %s>: %w", n.Tag(), name, err)
	}
	return &b, nil
}
