package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcastrogi/advocacia-sub002/config"
	"github.com/rcastrogi/advocacia-sub002/models"
)

func TestValidateFieldsSchemaOk(t *testing.T) {
	err := models.ValidateFieldsSchema([]models.FieldDescriptor{
		{Name: "autor_nome", Label: "Nome", Type: config.FieldTypeText, Required: true},
		{Name: "autor_cpf", Label: "CPF/CNPJ", Type: config.FieldTypeCpfCnpj,
			LinkedSectionID: 7, LinkedSectionTrigger: config.TriggerCnpj},
	})

	assert.NoError(t, err)
}

func TestValidateFieldsSchemaMissingName(t *testing.T) {
	err := models.ValidateFieldsSchema([]models.FieldDescriptor{
		{Label: "Nome", Type: config.FieldTypeText},
	})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateFieldsSchemaDuplicateName(t *testing.T) {
	err := models.ValidateFieldsSchema([]models.FieldDescriptor{
		{Name: "nome", Type: config.FieldTypeText},
		{Name: "nome", Type: config.FieldTypeTextarea},
	})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "nome", validationErr.Field)
}

func TestValidateFieldsSchemaUnknownType(t *testing.T) {
	err := models.ValidateFieldsSchema([]models.FieldDescriptor{
		{Name: "nome", Type: "hologram"},
	})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateFieldsSchemaTriggerOnWrongType(t *testing.T) {
	err := models.ValidateFieldsSchema([]models.FieldDescriptor{
		{Name: "nome", Type: config.FieldTypeText,
			LinkedSectionID: 7, LinkedSectionTrigger: config.TriggerCnpj},
	})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "nome", validationErr.Field)
}

func TestValidateFieldsSchemaTriggerWithoutTarget(t *testing.T) {
	err := models.ValidateFieldsSchema([]models.FieldDescriptor{
		{Name: "doc", Type: config.FieldTypeCpfCnpj, LinkedSectionTrigger: config.TriggerCnpj},
	})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestParentRefValidate(t *testing.T) {
	assert.NoError(t, models.TypeRef(1).Validate())
	assert.NoError(t, models.ModelRef(2).Validate())

	assert.Error(t, models.ParentRef{Kind: "folder", ID: 1}.Validate())
	assert.Error(t, models.ParentRef{Kind: config.ParentKindType}.Validate())
}
