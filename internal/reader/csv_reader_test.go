package reader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVReader_Read(t *testing.T) {
	csvData := `palabras,tiempo_acumulado_ms,porcentaje_caracteres
10,200.5,50
20, 410.0,48.25`

	reader := NewCSVReader(strings.NewReader(csvData))

	records, err := reader.Read()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"palabras", "tiempo_acumulado_ms", "porcentaje_caracteres"}, reader.Headers())
	assert.Equal(t, map[string]string{
		"palabras":              "10",
		"tiempo_acumulado_ms":   "200.5",
		"porcentaje_caracteres": "50",
	}, records[0])
	assert.Equal(t, "410.0", records[1]["tiempo_acumulado_ms"])
}

func TestCSVReader_StripsByteOrderMark(t *testing.T) {
	csvData := "\ufeffpalabras,porcentaje_caracteres\n5,10\n"

	records, err := NewCSVReader(strings.NewReader(csvData)).Read()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "5", records[0]["palabras"])
}

func TestCSVReader_HeaderOnly(t *testing.T) {
	records, err := NewCSVReader(strings.NewReader("palabras,tiempo_acumulado_ms\n")).Read()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCSVReader_Errors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := NewCSVReader(strings.NewReader("")).Read()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "empty input")
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := NewCSVReader(strings.NewReader("a,b\n1,2\n3\n")).Read()
		assert.Error(t, err)
	})
}
