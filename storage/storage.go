package storage

import (
	"context"

	"github.com/rcastrogi/advocacia-sub002/models"
)

type StorageI interface {
	CloseDB()
	Section() SectionRepoI
	PetitionType() PetitionTypeRepoI
	PetitionModel() PetitionModelRepoI
	SectionLink() SectionLinkRepoI
	Petition() PetitionRepoI
}

type SectionRepoI interface {
	Create(ctx context.Context, req *models.CreateSectionRequest) (*models.Section, error)
	GetByID(ctx context.Context, id int64) (*models.Section, error)
	GetBySlug(ctx context.Context, slug string) (*models.Section, error)
	GetAll(ctx context.Context, req *models.GetAllSectionsRequest) (*models.GetAllSectionsResponse, error)
	Update(ctx context.Context, req *models.UpdateSectionRequest) (*models.Section, error)
	UpdateFieldsSchema(ctx context.Context, req *models.UpdateFieldsSchemaRequest) (*models.Section, error)
	Delete(ctx context.Context, id int64) error
}

type PetitionTypeRepoI interface {
	Create(ctx context.Context, req *models.PetitionType) (*models.PetitionType, error)
	GetByID(ctx context.Context, id int64) (*models.PetitionType, error)
	GetBySlug(ctx context.Context, slug string) (*models.PetitionType, error)
	GetAll(ctx context.Context, req *models.GetAllPetitionTypesRequest) (*models.GetAllPetitionTypesResponse, error)
	Update(ctx context.Context, req *models.PetitionType) (*models.PetitionType, error)
	Delete(ctx context.Context, id int64) error
}

type PetitionModelRepoI interface {
	Create(ctx context.Context, req *models.PetitionModel) (*models.PetitionModel, error)
	GetByID(ctx context.Context, id int64) (*models.PetitionModel, error)
	GetAll(ctx context.Context, req *models.GetAllPetitionModelsRequest) (*models.GetAllPetitionModelsResponse, error)
	Update(ctx context.Context, req *models.PetitionModel) (*models.PetitionModel, error)
	Delete(ctx context.Context, id int64) error
}

type SectionLinkRepoI interface {
	Attach(ctx context.Context, req *models.AttachSectionRequest) (*models.SectionLink, error)
	GetByID(ctx context.Context, id int64) (*models.SectionLink, error)
	GetByParent(ctx context.Context, parent models.ParentRef) ([]models.SectionLink, error)
	Update(ctx context.Context, req *models.UpdateLinkRequest) (*models.SectionLink, error)
	Reorder(ctx context.Context, req *models.ReorderLinksRequest) error
	Detach(ctx context.Context, id int64) error
	GetComposeData(ctx context.Context, parent models.ParentRef) (*models.ComposeData, error)
}

type PetitionRepoI interface {
	Create(ctx context.Context, req *models.Petition) (*models.Petition, error)
	GetByID(ctx context.Context, id int64) (*models.Petition, error)
	GetAll(ctx context.Context, req *models.GetAllPetitionsRequest) (*models.GetAllPetitionsResponse, error)
}
