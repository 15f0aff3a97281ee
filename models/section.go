package models

import (
	"time"

	"github.com/rcastrogi/advocacia-sub002/config"
)

// FieldDescriptor is one typed input inside a section's schema. The schema is
// an ordered list, the position of a descriptor is its render position.
type FieldDescriptor struct {
	Name                 string   `json:"name"`
	Label                string   `json:"label"`
	Type                 string   `json:"type"`
	Required             bool     `json:"required"`
	Size                 string   `json:"size,omitempty"`
	Placeholder          string   `json:"placeholder,omitempty"`
	Options              []string `json:"options,omitempty"`
	LinkedSectionID      int64    `json:"linked_section_id,omitempty"`
	LinkedSectionTrigger string   `json:"linked_section_trigger,omitempty"`
}

// Section is a reusable named block of form fields shared by many petition
// types and models. Edits are visible everywhere the section is linked.
type Section struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Slug         string            `json:"slug"`
	Description  string            `json:"description"`
	Icon         string            `json:"icon"`
	Color        string            `json:"color"`
	Order        int               `json:"order"`
	IsActive     bool              `json:"is_active"`
	Version      int               `json:"version"`
	FieldsSchema []FieldDescriptor `json:"fields_schema"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type CreateSectionRequest struct {
	Name         string            `json:"name"`
	Slug         string            `json:"slug"`
	Description  string            `json:"description"`
	Icon         string            `json:"icon"`
	Color        string            `json:"color"`
	Order        int               `json:"order"`
	FieldsSchema []FieldDescriptor `json:"fields_schema"`
}

type UpdateSectionRequest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"is_active"`
	Version     int    `json:"version"`
}

type UpdateFieldsSchemaRequest struct {
	SectionID    int64             `json:"section_id"`
	Version      int               `json:"version"`
	FieldsSchema []FieldDescriptor `json:"fields_schema"`
}

type GetAllSectionsRequest struct {
	Search     string `json:"search"`
	OnlyActive bool   `json:"only_active"`
	Limit      uint64 `json:"limit"`
	Offset     uint64 `json:"offset"`
}

type GetAllSectionsResponse struct {
	Sections []Section `json:"sections"`
	Count    int64     `json:"count"`
}

// ValidateFieldsSchema checks the structural invariants of a field list:
// name and type present, no duplicate names, known types, and trigger
// metadata only on cpf_cnpj fields with a target section.
func ValidateFieldsSchema(fields []FieldDescriptor) error {
	seen := make(map[string]bool, len(fields))

	for _, field := range fields {
		if field.Name == "" {
			return NewValidationError("fields_schema", "field without a name")
		}

		if seen[field.Name] {
			return NewValidationError(field.Name, "duplicate field name")
		}
		seen[field.Name] = true

		if _, ok := config.FIELD_TYPES[field.Type]; !ok {
			return NewValidationError(field.Name, "unknown field type %q", field.Type)
		}

		if field.LinkedSectionTrigger != "" {
			if field.Type != config.FieldTypeCpfCnpj {
				return NewValidationError(field.Name, "linked_section_trigger is only supported on %s fields", config.FieldTypeCpfCnpj)
			}

			if field.LinkedSectionID == 0 {
				return NewValidationError(field.Name, "linked_section_trigger requires linked_section_id")
			}

			if field.LinkedSectionTrigger != config.TriggerCnpj && field.LinkedSectionTrigger != config.TriggerCpf {
				return NewValidationError(field.Name, "unknown trigger %q", field.LinkedSectionTrigger)
			}
		}
	}

	return nil
}
