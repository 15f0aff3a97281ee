package models

// ResolvedSection is one section of a composed form: the section's display
// attributes, the link's flags and the effective field list with the link's
// overrides already merged in.
type ResolvedSection struct {
	SectionID  int64             `json:"section_id"`
	Name       string            `json:"name"`
	Slug       string            `json:"slug"`
	Icon       string            `json:"icon"`
	Color      string            `json:"color"`
	IsRequired bool              `json:"is_required"`
	IsExpanded bool              `json:"is_expanded"`
	Fields     []FieldDescriptor `json:"fields"`
}

// ConditionalRequirement makes one section's fields mandatory when a trigger
// field's submitted value classifies as the trigger document kind. The
// target's fields are embedded so the binder needs no lookup, even when the
// target section carries no link of its own.
type ConditionalRequirement struct {
	TriggerField  string            `json:"trigger_field"`
	TriggerValue  string            `json:"trigger_value"`
	TargetID      int64             `json:"target_section_id"`
	TargetSlug    string            `json:"target_section_slug"`
	TargetName    string            `json:"target_section_name"`
	TargetFields  []FieldDescriptor `json:"target_fields"`
	TargetIsShown bool              `json:"target_is_shown"`
}

// DanglingLink records a link whose section could not be resolved. The form
// is served without it.
type DanglingLink struct {
	LinkID    int64 `json:"link_id"`
	SectionID int64 `json:"section_id"`
}

// ComposeResult is the ordered, override-applied form specification for one
// petition type or model.
type ComposeResult struct {
	Parent       ParentRef                `json:"parent"`
	Sections     []ResolvedSection        `json:"sections"`
	Requirements []ConditionalRequirement `json:"requirements,omitempty"`
	Dangling     []DanglingLink           `json:"dangling,omitempty"`
}
