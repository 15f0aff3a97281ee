package composer_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcastrogi/advocacia-sub002/composer"
	"github.com/rcastrogi/advocacia-sub002/config"
	"github.com/rcastrogi/advocacia-sub002/models"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func buildComposeData() models.ComposeData {
	return models.ComposeData{
		Parent: models.TypeRef(1),
		Links: []models.SectionLink{
			{ID: 3, Parent: models.TypeRef(1), SectionID: 30, Order: 3},
			{ID: 1, Parent: models.TypeRef(1), SectionID: 10, Order: 1, IsRequired: true, IsExpanded: true},
			{ID: 2, Parent: models.TypeRef(1), SectionID: 20, Order: 2},
		},
		Sections: map[int64]models.Section{
			10: {
				ID: 10, Name: "Cabeçalho", Slug: "cabecalho", IsActive: true,
				FieldsSchema: []models.FieldDescriptor{
					{Name: "vara", Label: "Vara", Type: config.FieldTypeText, Required: true},
				},
			},
			20: {
				ID: 20, Name: "Autor", Slug: "autor", IsActive: true,
				FieldsSchema: []models.FieldDescriptor{
					{Name: "autor_nome", Label: "Nome", Type: config.FieldTypeText, Required: true},
					{
						Name: "autor_cpf", Label: "CPF/CNPJ", Type: config.FieldTypeCpfCnpj, Required: true,
						LinkedSectionID: 40, LinkedSectionTrigger: config.TriggerCnpj,
					},
				},
			},
			30: {
				ID: 30, Name: "Réu", Slug: "reu", IsActive: true,
				FieldsSchema: []models.FieldDescriptor{
					{Name: "reu_nome", Label: "Nome", Type: config.FieldTypeText, Required: true},
				},
			},
			40: {
				ID: 40, Name: "Representante Legal", Slug: "representante-legal", IsActive: true,
				FieldsSchema: []models.FieldDescriptor{
					{Name: "representante_nome", Label: "Nome", Type: config.FieldTypeText},
					{Name: "representante_cpf", Label: "CPF", Type: config.FieldTypeCpfCnpj},
				},
			},
		},
	}
}

func TestComposeOrdering(t *testing.T) {
	result := composer.Compose(buildComposeData())

	require.Len(t, result.Sections, 3)
	assert.Equal(t, "cabecalho", result.Sections[0].Slug)
	assert.Equal(t, "autor", result.Sections[1].Slug)
	assert.Equal(t, "reu", result.Sections[2].Slug)
	assert.True(t, result.Sections[0].IsRequired)
	assert.True(t, result.Sections[0].IsExpanded)
}

func TestComposeOrderTieBrokenByLinkID(t *testing.T) {
	data := buildComposeData()
	for i := range data.Links {
		data.Links[i].Order = 5
	}

	result := composer.Compose(data)

	require.Len(t, result.Sections, 3)
	// link ids 1, 2, 3 -> sections 10, 20, 30
	assert.Equal(t, int64(10), result.Sections[0].SectionID)
	assert.Equal(t, int64(20), result.Sections[1].SectionID)
	assert.Equal(t, int64(30), result.Sections[2].SectionID)
}

func TestComposeDeterminism(t *testing.T) {
	data := buildComposeData()

	first := composer.Compose(data)
	second := composer.Compose(data)

	assert.Equal(t, first, second)
}

func TestComposeSoftExcludesInactiveSection(t *testing.T) {
	data := buildComposeData()
	reu := data.Sections[30]
	reu.IsActive = false
	data.Sections[30] = reu

	result := composer.Compose(data)

	require.Len(t, result.Sections, 2)
	for _, section := range result.Sections {
		assert.NotEqual(t, int64(30), section.SectionID)
	}
	assert.Empty(t, result.Dangling)
}

func TestComposeSkipsDanglingLink(t *testing.T) {
	data := buildComposeData()
	delete(data.Sections, 30)

	result := composer.Compose(data)

	require.Len(t, result.Sections, 2)
	require.Len(t, result.Dangling, 1)
	assert.Equal(t, int64(3), result.Dangling[0].LinkID)
	assert.Equal(t, int64(30), result.Dangling[0].SectionID)
}

func TestComposeOverridePrecedence(t *testing.T) {
	data := buildComposeData()
	data.Links[2].FieldOverrides = map[string]models.FieldOverride{
		"autor_nome": {
			Label:    strPtr("Razão Social"),
			Required: boolPtr(false),
		},
	}

	result := composer.Compose(data)

	autor := result.Sections[1]
	require.Equal(t, "autor", autor.Slug)

	overridden := autor.Fields[0]
	assert.Equal(t, "Razão Social", overridden.Label)
	assert.False(t, overridden.Required)
	// non-overridden attributes pass through unchanged
	assert.Equal(t, config.FieldTypeText, overridden.Type)
	assert.Equal(t, "autor_nome", overridden.Name)

	// untouched field keeps its base descriptor
	assert.Equal(t, "CPF/CNPJ", autor.Fields[1].Label)
	assert.True(t, autor.Fields[1].Required)
}

func TestComposeOverrideDoesNotMutateSection(t *testing.T) {
	data := buildComposeData()
	data.Links[2].FieldOverrides = map[string]models.FieldOverride{
		"autor_nome": {Label: strPtr("Razão Social")},
	}

	composer.Compose(data)

	assert.Equal(t, "Nome", data.Sections[20].FieldsSchema[0].Label)
}

func TestComposeOrphanedOverrideKeyIgnored(t *testing.T) {
	data := buildComposeData()
	data.Links[2].FieldOverrides = map[string]models.FieldOverride{
		"renamed_away": {Label: strPtr("Ghost")},
	}

	result := composer.Compose(data)

	autor := result.Sections[1]
	assert.Equal(t, "Nome", autor.Fields[0].Label)
}

func TestComposeExtractsConditionalRequirement(t *testing.T) {
	result := composer.Compose(buildComposeData())

	require.Len(t, result.Requirements, 1)

	req := result.Requirements[0]
	assert.Equal(t, "autor_cpf", req.TriggerField)
	assert.Equal(t, config.TriggerCnpj, req.TriggerValue)
	assert.Equal(t, int64(40), req.TargetID)
	assert.Equal(t, "representante-legal", req.TargetSlug)
	assert.False(t, req.TargetIsShown)
	require.Len(t, req.TargetFields, 2)
	assert.Equal(t, "representante_nome", req.TargetFields[0].Name)
}

func TestComposeRequirementTargetShownWhenLinked(t *testing.T) {
	data := buildComposeData()
	data.Links = append(data.Links, models.SectionLink{
		ID: 4, Parent: models.TypeRef(1), SectionID: 40, Order: 4,
	})

	result := composer.Compose(data)

	require.Len(t, result.Sections, 4)
	require.Len(t, result.Requirements, 1)
	assert.True(t, result.Requirements[0].TargetIsShown)
}

func TestResolvedSectionJSONRoundTrip(t *testing.T) {
	result := composer.Compose(buildComposeData())

	raw, err := json.Marshal(result.Sections)
	require.NoError(t, err)

	var decoded []models.ResolvedSection
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, result.Sections, decoded)
}
