package results

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/autocomplete-bench/internal/apperr"
)

const validCSV = `palabras,tiempo_acumulado_ms,porcentaje_caracteres
10,200,50
20,420,45
`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestDiscover(t *testing.T) {
	t.Run("lists only result files in order", func(t *testing.T) {
		dir := writeFiles(t, map[string]string{
			"results_wikipedia_reciente.csv": validCSV,
			"results_random_base.csv":        validCSV,
			"notes.txt":                      "ignored",
			"summary.csv":                    "ignored",
		})

		paths, err := Discover(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "results_random_base.csv"),
			filepath.Join(dir, "results_wikipedia_reciente.csv"),
		}, paths)
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := Discover(t.TempDir())
		assert.True(t, errors.Is(err, ErrNoResultFiles))
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := Discover(filepath.Join(t.TempDir(), "resultados"))
		assert.True(t, errors.Is(err, ErrNoResultFiles))
	})
}

func TestLoad(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"results_wikipedia_reciente.csv":                 validCSV,
		"results_wikipedia_frecuente.csv":                validCSV,
		"results_random_reciente.csv":                    validCSV,
		"results_random_with_distribution_frecuente.csv": validCSV,
		"results_random_broken.csv":                      "palabras,tiempo_acumulado_ms\n1,2\n",
		"results.csv":                                    validCSV,
	})

	paths := []string{
		filepath.Join(dir, "results_wikipedia_reciente.csv"),
		filepath.Join(dir, "results_wikipedia_frecuente.csv"),
		filepath.Join(dir, "results_random_reciente.csv"),
		filepath.Join(dir, "results_random_with_distribution_frecuente.csv"),
		filepath.Join(dir, "results_random_broken.csv"),
		filepath.Join(dir, "results.csv"),
	}

	set, skipped := Load(paths)

	assert.Len(t, skipped, 2)
	assert.Equal(t, []string{"random", "random_with_distribution", "wikipedia"}, set.Datasets())
	assert.Equal(t, []string{"frecuente", "reciente"}, set.Variants("wikipedia"))
	assert.Equal(t, []string{"reciente"}, set.Variants("random"))

	table, ok := set.Get("random_with_distribution", "frecuente")
	require.True(t, ok)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, Label{Dataset: "random_with_distribution", Variant: "frecuente"}, table.Label)

	_, ok = set.Get("random", "broken")
	assert.False(t, ok)
	assert.False(t, set.Has("results"))
	assert.Empty(t, set.Missing(ExpectedDatasets))
}

func TestLoad_NothingUsable(t *testing.T) {
	dir := writeFiles(t, map[string]string{"results.csv": validCSV})

	set, skipped := Load([]string{filepath.Join(dir, "results.csv")})
	assert.True(t, set.Empty())
	assert.Len(t, skipped, 1)
	assert.Equal(t, ExpectedDatasets, set.Missing(ExpectedDatasets))
}

func TestSet_PutReplacesSameLabel(t *testing.T) {
	set := NewSet()
	set.Put(&Table{Label: Label{Dataset: "random", Variant: "reciente"}, Rows: []Row{{Words: 1}}})
	set.Put(&Table{Label: Label{Dataset: "random", Variant: "reciente"}, Rows: []Row{{Words: 2}}})

	tables := set.Tables("random")
	require.Len(t, tables, 1)
	assert.Equal(t, int64(2), tables[0].Rows[0].Words)
}

func TestLoadFile_ValidationErrorNamesFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{"results_random_x.csv": "palabras\n1\n"})

	_, err := NewLoader().LoadFile(filepath.Join(dir, "results_random_x.csv"))
	require.Error(t, err)

	var ve *apperr.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "results_random_x.csv", ve.Source)
	assert.Contains(t, err.Error(), `results_random_x.csv: missing column "tiempo_acumulado_ms"`)
}
