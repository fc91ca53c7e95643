package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Malformed input
	ErrMsgMissingAttribute = "missing required attribute"
	ErrMsgMissingElement   = "missing required element"
	ErrMsgInvalidValue     = "invalid attribute value"
	ErrMsgContradiction    = "contradicting attributes"
	ErrMsgDuplicateItem    = "duplicate item identifier"
	ErrMsgVersionNotFound  = "game version not found"

	// Rendering
	ErrMsgUnresolvedTag         = "unresolvable material tag"
	ErrMsgUnknownSkill          = "unknown skill"
	ErrMsgUnknownItem           = "unknown item"
	ErrMsgUnnamedItem           = "item has no display name"
	ErrMsgUnsupportedCategory   = "unsupported item category"
	ErrMsgInconsistentGroup     = "inconsistent grouped row"
	ErrMsgUnsupportedMaterial   = "unsupported material variant"
	ErrMsgUnsupportedFabricator = "unsupported fabricator"
)

// Errors shared by every stage of the pipeline.
// Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	ErrMissingAttribute = errors.New(ErrMsgMissingAttribute)
	ErrMissingElement   = errors.New(ErrMsgMissingElement)
	ErrInvalidValue     = errors.New(ErrMsgInvalidValue)
	ErrContradiction    = errors.New(ErrMsgContradiction)
	ErrDuplicateItem    = errors.New(ErrMsgDuplicateItem)
	ErrVersionNotFound  = errors.New(ErrMsgVersionNotFound)

	ErrUnresolvedTag         = errors.New(ErrMsgUnresolvedTag)
	ErrUnknownSkill          = errors.New(ErrMsgUnknownSkill)
	ErrUnknownItem           = errors.New(ErrMsgUnknownItem)
	ErrUnnamedItem           = errors.New(ErrMsgUnnamedItem)
	ErrUnsupportedCategory   = errors.New(ErrMsgUnsupportedCategory)
	ErrInconsistentGroup     = errors.New(ErrMsgInconsistentGroup)
	ErrUnsupportedMaterial   = errors.New(ErrMsgUnsupportedMaterial)
	ErrUnsupportedFabricator = errors.New(ErrMsgUnsupportedFabricator)
)

// GroupConsistencyError reports a member of a collapsed group whose rendered
// row differs from the group's canonical row.
type GroupConsistencyError struct {
	Group     string
	ItemID    string
	Canonical string
	Got       string
}

func (e *GroupConsistencyError) Error() string {
	return fmt.Sprintf("%s: group %q, item %q\ncanonical:\n%s\ngot:\n%s",
		ErrMsgInconsistentGroup, e.Group, e.ItemID, e.Canonical, e.Got)
}

// Unwrap lets errors.Is match ErrInconsistentGroup.
func (e *GroupConsistencyError) Unwrap() error {
	return ErrInconsistentGroup
}
