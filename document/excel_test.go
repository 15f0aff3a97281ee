package document_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcastrogi/advocacia-sub002/config"
	"github.com/rcastrogi/advocacia-sub002/document"
	"github.com/rcastrogi/advocacia-sub002/models"
)

func TestSectionsWorkbook(t *testing.T) {
	sections := []models.Section{
		{
			ID: 1, Name: "Autor", Slug: "autor", Order: 2, IsActive: true, Version: 3,
			FieldsSchema: []models.FieldDescriptor{
				{Name: "autor_nome", Type: config.FieldTypeText},
				{Name: "autor_cpf", Type: config.FieldTypeCpfCnpj},
			},
		},
	}

	file, err := document.SectionsWorkbook(sections)
	require.NoError(t, err)

	sheet := file.GetSheetName(0)

	header, err := file.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)

	name, err := file.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Autor", name)

	fields, err := file.GetCellValue(sheet, "G2")
	require.NoError(t, err)
	assert.Equal(t, "autor_nome (text), autor_cpf (cpf_cnpj)", fields)
}

func TestPetitionsWorkbook(t *testing.T) {
	createdAt := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

	petitions := []models.Petition{
		{ID: 7, Parent: models.TypeRef(1), DocumentKey: "abc.txt", CreatedAt: createdAt},
	}

	file, err := document.PetitionsWorkbook(petitions)
	require.NoError(t, err)

	sheet := file.GetSheetName(0)

	kind, err := file.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "type", kind)

	created, err := file.GetCellValue(sheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "10/03/2024 14:30", created)
}
