package report

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPatient() Patient {
	imc := 29.4
	return Patient{
		Nome:         "Maria Souza",
		DataConsulta: "2026-09-01",
		Idade:        50,
		SexCode:      2,
		AlturaM:      1.65,
		PesoKg:       80,
		IMC:          &imc,
	}
}

func TestRenderWritesPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "consulta_20260901_120000.pdf")

	labels := []string{"Hipertensão Arterial Sistêmica (HAS)", "Obesidade"}
	err := Render(path, testPatient(), labels, 42.0, time.Now())
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.Equal(t, "%PDF", string(raw[:4]))

	// The atomic write must not leave temp files behind.
	leftovers, err := filepath.Glob(filepath.Join(dir, ".consulta-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestRenderNoComorbidities(t *testing.T) {
	path := filepath.Join(t.TempDir(), "consulta.pdf")
	err := Render(path, testPatient(), nil, 7.5, time.Now())
	require.NoError(t, err)

	doc := buildDocument(testPatient(), nil, 7.5, time.Now())
	assert.Equal(t, 1, doc.PageCount())
}

func TestRenderNilBMI(t *testing.T) {
	p := testPatient()
	p.IMC = nil
	p.AlturaM = 0

	path := filepath.Join(t.TempDir(), "consulta.pdf")
	require.NoError(t, Render(path, p, nil, 12.34, time.Now()))
}

func TestRenderPaginatesLongLists(t *testing.T) {
	labels := make([]string, 120)
	for i := range labels {
		labels[i] = fmt.Sprintf("Comorbidade número %d", i+1)
	}

	doc := buildDocument(testPatient(), labels, 88.0, time.Now())
	require.False(t, doc.Err())
	assert.GreaterOrEqual(t, doc.PageCount(), 2, "120 bullets must overflow one page")

	path := filepath.Join(t.TempDir(), "consulta_long.pdf")
	require.NoError(t, Render(path, testPatient(), labels, 88.0, time.Now()))
}

func TestRenderShortListStaysOnOnePage(t *testing.T) {
	labels := []string{"Asma", "Anemia", "Enxaqueca"}
	doc := buildDocument(testPatient(), labels, 15.0, time.Now())
	assert.Equal(t, 1, doc.PageCount())
}

func TestRenderOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "consulta.pdf")

	require.NoError(t, Render(path, testPatient(), []string{"Asma"}, 10.0, time.Now()))
	first, err := os.Stat(path)
	require.NoError(t, err)

	labels := make([]string, 60)
	for i := range labels {
		labels[i] = fmt.Sprintf("Comorbidade %d", i)
	}
	require.NoError(t, Render(path, testPatient(), labels, 90.0, time.Now()))
	second, err := os.Stat(path)
	require.NoError(t, err)

	assert.NotEqual(t, first.Size(), second.Size())
}

func TestRenderFailsOnMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "consulta.pdf")
	err := Render(path, testPatient(), nil, 1.0, time.Now())
	require.Error(t, err)
}
