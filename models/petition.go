package models

import "time"

// PetitionType is the legal classification of a document, e.g. a civil
// complaint. Sections attach to it through section links.
type PetitionType struct {
	ID              int64     `json:"id"`
	Slug            string    `json:"slug"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	UseDynamicForm  bool      `json:"use_dynamic_form"`
	TemplateContent string    `json:"template_content"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PetitionModel is a named section-composition variant under a petition
// type. Its template content, when set, overrides the type's template.
type PetitionModel struct {
	ID              int64     `json:"id"`
	PetitionTypeID  int64     `json:"petition_type_id"`
	Slug            string    `json:"slug"`
	Name            string    `json:"name"`
	TemplateContent string    `json:"template_content"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type GetAllPetitionTypesRequest struct {
	Search     string `json:"search"`
	Category   string `json:"category"`
	OnlyActive bool   `json:"only_active"`
	Limit      uint64 `json:"limit"`
	Offset     uint64 `json:"offset"`
}

type GetAllPetitionTypesResponse struct {
	PetitionTypes []PetitionType `json:"petition_types"`
	Count         int64          `json:"count"`
}

type GetAllPetitionModelsRequest struct {
	PetitionTypeID int64  `json:"petition_type_id"`
	OnlyActive     bool   `json:"only_active"`
	Limit          uint64 `json:"limit"`
	Offset         uint64 `json:"offset"`
}

type GetAllPetitionModelsResponse struct {
	PetitionModels []PetitionModel `json:"petition_models"`
	Count          int64           `json:"count"`
}

// Petition is one submitted, rendered document: the bound context that fed
// the template plus the rendered body and, when MinIO is configured, the
// object key of the stored document.
type Petition struct {
	ID           int64          `json:"id"`
	Parent       ParentRef      `json:"parent"`
	Context      map[string]any `json:"context"`
	RenderedBody string         `json:"rendered_body"`
	DocumentKey  string         `json:"document_key,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

type GetAllPetitionsRequest struct {
	Parent ParentRef `json:"parent"`
	Limit  uint64    `json:"limit"`
	Offset uint64    `json:"offset"`
}

type GetAllPetitionsResponse struct {
	Petitions []Petition `json:"petitions"`
	Count     int64      `json:"count"`
}
