package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcastrogi/advocacia-sub002/composer"
	"github.com/rcastrogi/advocacia-sub002/config"
	"github.com/rcastrogi/advocacia-sub002/models"
)

func createPetitionType(t *testing.T) *models.PetitionType {
	t.Helper()

	petitionType, err := strg.PetitionType().Create(context.Background(), &models.PetitionType{
		Slug:            randomSlug("type"),
		Name:            fakeData.Name(),
		Category:        "civel",
		UseDynamicForm:  true,
		TemplateContent: "Autor: {{.autor_nome}}",
	})
	require.NoError(t, err)

	return petitionType
}

func TestAttachDuplicatePairRejected(t *testing.T) {
	ctx := context.Background()

	section := createSection(t, baseFields())
	petitionType := createPetitionType(t)

	_, err := strg.SectionLink().Attach(ctx, &models.AttachSectionRequest{
		Parent:    models.TypeRef(petitionType.ID),
		SectionID: section.ID,
		Order:     1,
	})
	require.NoError(t, err)

	_, err = strg.SectionLink().Attach(ctx, &models.AttachSectionRequest{
		Parent:    models.TypeRef(petitionType.ID),
		SectionID: section.ID,
		Order:     2,
	})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestAttachToMissingParent(t *testing.T) {
	section := createSection(t, baseFields())

	_, err := strg.SectionLink().Attach(context.Background(), &models.AttachSectionRequest{
		Parent:    models.TypeRef(999999999),
		SectionID: section.ID,
	})

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestReorderRewritesOrder(t *testing.T) {
	ctx := context.Background()

	petitionType := createPetitionType(t)
	first := createSection(t, baseFields())
	second := createSection(t, baseFields())

	linkA, err := strg.SectionLink().Attach(ctx, &models.AttachSectionRequest{
		Parent: models.TypeRef(petitionType.ID), SectionID: first.ID, Order: 1,
	})
	require.NoError(t, err)

	linkB, err := strg.SectionLink().Attach(ctx, &models.AttachSectionRequest{
		Parent: models.TypeRef(petitionType.ID), SectionID: second.ID, Order: 2,
	})
	require.NoError(t, err)

	err = strg.SectionLink().Reorder(ctx, &models.ReorderLinksRequest{
		Parent:  models.TypeRef(petitionType.ID),
		LinkIDs: []int64{linkB.ID, linkA.ID},
	})
	require.NoError(t, err)

	links, err := strg.SectionLink().GetByParent(ctx, models.TypeRef(petitionType.ID))
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, linkB.ID, links[0].ID)
	assert.Equal(t, linkA.ID, links[1].ID)
}

// GetComposeData must prefetch trigger targets that have no link of their
// own, so a composed snapshot can drive the conditional requirement.
func TestGetComposeDataPrefetchesTriggerTargets(t *testing.T) {
	ctx := context.Background()

	representative := createSection(t, []models.FieldDescriptor{
		{Name: randomSlug("rep-nome"), Label: "Nome", Type: config.FieldTypeText},
	})

	author := createSection(t, []models.FieldDescriptor{
		{Name: randomSlug("autor-nome"), Label: "Nome", Type: config.FieldTypeText, Required: true},
		{Name: randomSlug("autor-doc"), Label: "CPF/CNPJ", Type: config.FieldTypeCpfCnpj, Required: true,
			LinkedSectionID: representative.ID, LinkedSectionTrigger: config.TriggerCnpj},
	})

	petitionType := createPetitionType(t)

	_, err := strg.SectionLink().Attach(ctx, &models.AttachSectionRequest{
		Parent: models.TypeRef(petitionType.ID), SectionID: author.ID, Order: 1,
	})
	require.NoError(t, err)

	data, err := strg.SectionLink().GetComposeData(ctx, models.TypeRef(petitionType.ID))
	require.NoError(t, err)

	require.Len(t, data.Links, 1)
	assert.Contains(t, data.Sections, author.ID)
	assert.Contains(t, data.Sections, representative.ID)

	result := composer.Compose(*data)
	require.Len(t, result.Sections, 1)
	require.Len(t, result.Requirements, 1)
	assert.Equal(t, representative.ID, result.Requirements[0].TargetID)
	assert.False(t, result.Requirements[0].TargetIsShown)
}
