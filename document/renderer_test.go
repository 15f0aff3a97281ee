package document_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcastrogi/advocacia-sub002/document"
)

func TestRender(t *testing.T) {
	body := "EXCELENTÍSSIMO SENHOR DOUTOR JUIZ DA {{.vara}}\n\n" +
		"{{.autor_nome}}, inscrito no CPF sob o nº {{.autor_cpf}}, vem propor a presente ação."

	out, err := document.Render("peticao-inicial", body, map[string]any{
		"vara":       "2ª Vara Cível",
		"autor_nome": "Maria da Silva",
		"autor_cpf":  "123.456.789-00",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "2ª Vara Cível")
	assert.Contains(t, out, "Maria da Silva, inscrito no CPF sob o nº 123.456.789-00")
}

func TestRenderEmptyOptionalValue(t *testing.T) {
	out, err := document.Render("doc", "Representante: {{.representante_nome}}.", map[string]any{
		"representante_nome": "",
	})
	require.NoError(t, err)

	assert.Equal(t, "Representante: .", out)
}

func TestRenderCurrencyFunc(t *testing.T) {
	out, err := document.Render("doc", "Valor da causa: R$ {{currency .valor_causa}}", map[string]any{
		"valor_causa": 1234567.8,
	})
	require.NoError(t, err)

	assert.Equal(t, "Valor da causa: R$ 1.234.567,80", out)
}

func TestRenderUpperFunc(t *testing.T) {
	out, err := document.Render("doc", "{{upper .autor_nome}}", map[string]any{
		"autor_nome": "maria",
	})
	require.NoError(t, err)

	assert.Equal(t, "MARIA", out)
}

func TestRenderInvalidTemplate(t *testing.T) {
	_, err := document.Render("doc", "{{.unclosed", map[string]any{})

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "template parse"))
}
