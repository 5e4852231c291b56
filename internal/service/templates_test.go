package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplateFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plans.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTemplateLibrary(t *testing.T) {
	path := writeTemplateFile(t, `
templates:
  construction:
    - phase_name: Planning & Design
      duration_days: 14
      description: Finalize drawings
    - phase_name: Foundation Work
      duration_days: 21
`)

	library, err := LoadTemplateLibrary(path)

	require.NoError(t, err)
	phases, ok := library.Get("construction")
	require.True(t, ok)
	require.Len(t, phases, 2)
	assert.Equal(t, "Planning & Design", phases[0].PhaseName)
	assert.Equal(t, 14, phases[0].DurationDays)

	_, ok = library.Get("renovation")
	assert.False(t, ok)

	assert.ElementsMatch(t, []string{"construction"}, library.Names())
}

func TestLoadTemplateLibraryInvalidPhase(t *testing.T) {
	path := writeTemplateFile(t, `
templates:
  broken:
    - phase_name: ""
      duration_days: 14
`)

	_, err := LoadTemplateLibrary(path)
	assert.Error(t, err)
}

func TestLoadTemplateLibraryEmptyTemplate(t *testing.T) {
	path := writeTemplateFile(t, `
templates:
  empty: []
`)

	_, err := LoadTemplateLibrary(path)
	assert.Error(t, err)
}

func TestLoadTemplateLibraryMissingFile(t *testing.T) {
	_, err := LoadTemplateLibrary(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
