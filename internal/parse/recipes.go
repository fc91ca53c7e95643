package parse

import (
	"fmt"
	"sort"

	"github.com/osse101/BaroWiki_Go/internal/domain"
	"github.com/osse101/BaroWiki_Go/internal/xmltree"
)

// Fabricate parses a <Fabricate> element. Materials keep their source order.
func Fabricate(n xmltree.Node) (*domain.Fabricate, error) {
	fabricator, err := requireAttr(n, AttrSuitableFabricators)
	if err != nil {
		return nil, err
	}
	time, err := intOr(n, AttrRequiredTime, DefaultRequiredTime)
	if err != nil {
		return nil, err
	}
	amount, err := intOr(n, AttrAmount, DefaultAmount)
	if err != nil {
		return nil, err
	}

	var mats []domain.RequiredMaterial
	for _, child := range n.Children(materialElements...) {
		m, err := requiredMaterial(child)
		if err != nil {
			return nil, err
		}
		mats = append(mats, m)
	}

	var skills []domain.Skill
	for _, child := range n.Children(ElementRequiredSkill) {
		id, err := requireAttr(child, AttrIdentifier)
		if err != nil {
			return nil, err
		}
		level, err := requireInt(child, AttrLevel)
		if err != nil {
			return nil, err
		}
		skills = append(skills, domain.Skill{ID: id, Level: level})
	}

	return &domain.Fabricate{
		Amount:     amount,
		Time:       time,
		Skills:     skills,
		Materials:  Dedup(mats),
		Fabricator: fabricator,
	}, nil
}

func requiredMaterial(n xmltree.Node) (domain.RequiredMaterial, error) {
	id, hasID := n.Attr(AttrIdentifier)
	tag, hasTag := n.Attr(AttrTag)
	switch {
	case hasID && hasTag:
		return nil, fmt.Errorf("%w: <%s> has both %s=%q and %s=%q",
			domain.ErrContradiction, n.Tag(), AttrIdentifier, id, AttrTag, tag)
	case hasID:
		return domain.MaterialID(id), nil
	case hasTag:
		return domain.MaterialTag(tag), nil
	default:
		return nil, fmt.Errorf("%w: <%s> needs %s or %s",
			domain.ErrMissingAttribute, n.Tag(), AttrIdentifier, AttrTag)
	}
}

// Deconstruct parses a <Deconstruct> element. Only concrete item ids are
// allowed; materials are sorted by id.
func Deconstruct(n xmltree.Node) (*domain.Deconstruct, error) {
	time, err := requireInt(n, AttrTime)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, child := range n.Children(materialElements...) {
		id, err := requireAttr(child, AttrIdentifier)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	mats := Dedup(ids)
	sort.SliceStable(mats, func(i, j int) bool { return mats[i].Value < mats[j].Value })

	return &domain.Deconstruct{Time: time, Materials: mats}, nil
}

// LevelResource parses a <LevelResource> element. Exactly one <Commonness>
// child without leveltype provides the default.
func LevelResource(n xmltree.Node) (*domain.LevelResource, error) {
	var def *float64
	overrides := make(map[string]float64)

	for _, child := range n.Children(ElementCommonness) {
		raw, err := requireAttr(child, AttrCommonness)
		if err != nil {
			return nil, err
		}
		c, err := toFloat(child, AttrCommonness, raw)
		if err != nil {
			return nil, err
		}

		level, ok := child.Attr(AttrLevelType)
		if ok {
			overrides[level] = c
			continue
		}
		if def != nil {
			return nil, fmt.Errorf("%w: more than one default <%s>", domain.ErrContradiction, ElementCommonness)
		}
		def = &c
	}

	if def == nil {
		return nil, fmt.Errorf("%w: default <%s> in <%s>", domain.ErrMissingElement, ElementCommonness, n.Tag())
	}
	return &domain.LevelResource{DefaultCommonness: *def, Commonness: overrides}, nil
}
