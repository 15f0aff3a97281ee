package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcastrogi/advocacia-sub002/config"
	"github.com/rcastrogi/advocacia-sub002/models"
)

func createSection(t *testing.T, fields []models.FieldDescriptor) *models.Section {
	t.Helper()

	section, err := strg.Section().Create(context.Background(), &models.CreateSectionRequest{
		Name:         fakeData.Name(),
		Slug:         randomSlug("section"),
		FieldsSchema: fields,
	})
	require.NoError(t, err)
	require.NotEmpty(t, section.ID)

	return section
}

func baseFields() []models.FieldDescriptor {
	return []models.FieldDescriptor{
		{Name: "autor_nome", Label: "Nome", Type: config.FieldTypeText, Required: true},
		{Name: "autor_email", Label: "E-mail", Type: config.FieldTypeText},
	}
}

func TestSectionCreateAndGet(t *testing.T) {
	section := createSection(t, baseFields())

	got, err := strg.Section().GetByID(context.Background(), section.ID)
	require.NoError(t, err)

	assert.Equal(t, section.Slug, got.Slug)
	assert.Equal(t, 1, got.Version)
	assert.True(t, got.IsActive)
	require.Len(t, got.FieldsSchema, 2)
	assert.Equal(t, "autor_nome", got.FieldsSchema[0].Name)
}

func TestSectionCreateDuplicateSlug(t *testing.T) {
	section := createSection(t, baseFields())

	_, err := strg.Section().Create(context.Background(), &models.CreateSectionRequest{
		Name:         fakeData.Name(),
		Slug:         section.Slug,
		FieldsSchema: baseFields(),
	})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestSectionCreateRejectsBadTriggerTarget(t *testing.T) {
	_, err := strg.Section().Create(context.Background(), &models.CreateSectionRequest{
		Name: fakeData.Name(),
		Slug: randomSlug("section"),
		FieldsSchema: []models.FieldDescriptor{
			{Name: "doc", Type: config.FieldTypeCpfCnpj,
				LinkedSectionID: 999999999, LinkedSectionTrigger: config.TriggerCnpj},
		},
	})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestSectionUpdateStaleVersion(t *testing.T) {
	section := createSection(t, baseFields())

	_, err := strg.Section().Update(context.Background(), &models.UpdateSectionRequest{
		ID:       section.ID,
		Name:     section.Name,
		IsActive: true,
		Version:  section.Version + 5,
	})

	var conflictErr *models.ConflictError
	require.ErrorAs(t, err, &conflictErr)
}

func TestSectionUpdateFieldsSchemaRejectsOrphanedOverride(t *testing.T) {
	ctx := context.Background()

	section := createSection(t, baseFields())
	petitionType := createPetitionType(t)

	label := "Razão Social"
	_, err := strg.SectionLink().Attach(ctx, &models.AttachSectionRequest{
		Parent:    models.TypeRef(petitionType.ID),
		SectionID: section.ID,
		Order:     1,
		FieldOverrides: map[string]models.FieldOverride{
			"autor_nome": {Label: &label},
		},
	})
	require.NoError(t, err)

	_, err = strg.Section().UpdateFieldsSchema(ctx, &models.UpdateFieldsSchemaRequest{
		SectionID: section.ID,
		Version:   section.Version,
		FieldsSchema: []models.FieldDescriptor{
			{Name: "razao_social", Label: "Razão Social", Type: config.FieldTypeText},
		},
	})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "autor_nome", validationErr.Field)
}

func TestSectionDeleteGuardedByLinks(t *testing.T) {
	ctx := context.Background()

	section := createSection(t, baseFields())
	petitionType := createPetitionType(t)

	_, err := strg.SectionLink().Attach(ctx, &models.AttachSectionRequest{
		Parent:    models.TypeRef(petitionType.ID),
		SectionID: section.ID,
		Order:     1,
	})
	require.NoError(t, err)

	err = strg.Section().Delete(ctx, section.ID)

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestSectionDeleteUnreferenced(t *testing.T) {
	section := createSection(t, baseFields())

	require.NoError(t, strg.Section().Delete(context.Background(), section.ID))

	_, err := strg.Section().GetByID(context.Background(), section.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
