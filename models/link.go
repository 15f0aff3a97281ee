package models

import "github.com/rcastrogi/advocacia-sub002/config"

// ParentRef is the tagged owner of a section link: a petition type or a
// petition model. One relation serves both kinds.
type ParentRef struct {
	Kind string `json:"kind"`
	ID   int64  `json:"id"`
}

func TypeRef(id int64) ParentRef {
	return ParentRef{Kind: config.ParentKindType, ID: id}
}

func ModelRef(id int64) ParentRef {
	return ParentRef{Kind: config.ParentKindModel, ID: id}
}

func (p ParentRef) Validate() error {
	if p.Kind != config.ParentKindType && p.Kind != config.ParentKindModel {
		return NewValidationError("parent_kind", "unknown parent kind %q", p.Kind)
	}

	if p.ID == 0 {
		return NewValidationError("parent_id", "parent id is required")
	}

	return nil
}

// FieldOverride adjusts a section field for one link without touching the
// shared section. Nil pointers mean "key absent", set pointers win on merge.
type FieldOverride struct {
	Label       *string `json:"label,omitempty"`
	Required    *bool   `json:"required,omitempty"`
	Size        *string `json:"size,omitempty"`
	Placeholder *string `json:"placeholder,omitempty"`
}

// IsEmpty reports whether the override carries no attribute at all.
func (o FieldOverride) IsEmpty() bool {
	return o.Label == nil && o.Required == nil && o.Size == nil && o.Placeholder == nil
}

// SectionLink attaches a section to a petition type or model with a render
// order and per-link field overrides. (parent, section) is unique.
type SectionLink struct {
	ID             int64                    `json:"id"`
	Parent         ParentRef                `json:"parent"`
	SectionID      int64                    `json:"section_id"`
	Order          int                      `json:"order"`
	IsRequired     bool                     `json:"is_required"`
	IsExpanded     bool                     `json:"is_expanded"`
	FieldOverrides map[string]FieldOverride `json:"field_overrides,omitempty"`
}

type AttachSectionRequest struct {
	Parent         ParentRef                `json:"parent"`
	SectionID      int64                    `json:"section_id"`
	Order          int                      `json:"order"`
	IsRequired     bool                     `json:"is_required"`
	IsExpanded     bool                     `json:"is_expanded"`
	FieldOverrides map[string]FieldOverride `json:"field_overrides,omitempty"`
}

type UpdateLinkRequest struct {
	ID             int64                    `json:"id"`
	Order          int                      `json:"order"`
	IsRequired     bool                     `json:"is_required"`
	IsExpanded     bool                     `json:"is_expanded"`
	FieldOverrides map[string]FieldOverride `json:"field_overrides,omitempty"`
}

type ReorderLinksRequest struct {
	Parent  ParentRef `json:"parent"`
	LinkIDs []int64   `json:"link_ids"`
}

// ComposeData is everything the composer needs, fetched in one storage call:
// the parent's links in render order and every section they can reach,
// including cpf_cnpj trigger targets that carry no link of their own.
type ComposeData struct {
	Parent   ParentRef         `json:"parent"`
	Links    []SectionLink     `json:"links"`
	Sections map[int64]Section `json:"sections"`
}
