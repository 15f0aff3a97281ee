// Package composer resolves a petition type or model into the ordered,
// override-applied list of form sections, and binds submitted values into a
// template-rendering context. Both transformations are pure: storage hands
// over a ComposeData snapshot and no I/O happens past that point.
package composer

import (
	"sort"

	"github.com/rcastrogi/advocacia-sub002/config"
	"github.com/rcastrogi/advocacia-sub002/models"
)

// Compose produces the ordered form specification for data.Parent.
//
// Links are walked by (order, link id) ascending, so the output is
// deterministic for a fixed snapshot. Inactive sections are soft-excluded,
// links whose section is missing from the snapshot are skipped and reported
// as dangling instead of failing the whole form.
func Compose(data models.ComposeData) models.ComposeResult {
	result := models.ComposeResult{
		Parent:   data.Parent,
		Sections: []models.ResolvedSection{},
	}

	links := make([]models.SectionLink, len(data.Links))
	copy(links, data.Links)

	sort.SliceStable(links, func(i, j int) bool {
		if links[i].Order != links[j].Order {
			return links[i].Order < links[j].Order
		}

		return links[i].ID < links[j].ID
	})

	shown := make(map[int64]bool, len(links))

	for _, link := range links {
		section, ok := data.Sections[link.SectionID]
		if !ok {
			result.Dangling = append(result.Dangling, models.DanglingLink{
				LinkID:    link.ID,
				SectionID: link.SectionID,
			})
			continue
		}

		if !section.IsActive {
			continue
		}

		result.Sections = append(result.Sections, models.ResolvedSection{
			SectionID:  section.ID,
			Name:       section.Name,
			Slug:       section.Slug,
			Icon:       section.Icon,
			Color:      section.Color,
			IsRequired: link.IsRequired,
			IsExpanded: link.IsExpanded,
			Fields:     applyOverrides(section.FieldsSchema, link.FieldOverrides),
		})
		shown[section.ID] = true
	}

	for _, resolved := range result.Sections {
		for _, field := range resolved.Fields {
			if field.Type != config.FieldTypeCpfCnpj || field.LinkedSectionID == 0 || field.LinkedSectionTrigger == "" {
				continue
			}

			target, ok := data.Sections[field.LinkedSectionID]
			if !ok || !target.IsActive {
				continue
			}

			result.Requirements = append(result.Requirements, models.ConditionalRequirement{
				TriggerField:  field.Name,
				TriggerValue:  field.LinkedSectionTrigger,
				TargetID:      target.ID,
				TargetSlug:    target.Slug,
				TargetName:    target.Name,
				TargetFields:  copyFields(target.FieldsSchema),
				TargetIsShown: shown[target.ID],
			})
		}
	}

	return result
}

// applyOverrides shallow-merges per-link overrides onto the section's field
// list. Override attributes win, everything else passes through unchanged.
// Override keys that no longer match a field name are ignored.
func applyOverrides(fields []models.FieldDescriptor, overrides map[string]models.FieldOverride) []models.FieldDescriptor {
	effective := copyFields(fields)

	if len(overrides) == 0 {
		return effective
	}

	for i, field := range effective {
		override, ok := overrides[field.Name]
		if !ok {
			continue
		}

		if override.Label != nil {
			effective[i].Label = *override.Label
		}
		if override.Required != nil {
			effective[i].Required = *override.Required
		}
		if override.Size != nil {
			effective[i].Size = *override.Size
		}
		if override.Placeholder != nil {
			effective[i].Placeholder = *override.Placeholder
		}
	}

	return effective
}

func copyFields(fields []models.FieldDescriptor) []models.FieldDescriptor {
	out := make([]models.FieldDescriptor, len(fields))
	copy(out, fields)

	for i := range out {
		if len(fields[i].Options) > 0 {
			out[i].Options = append([]string(nil), fields[i].Options...)
		}
	}

	return out
}
