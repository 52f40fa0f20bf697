package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/predict", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"probabilidade": 42.1234,
			"pdf_url":       "/consultas/consulta_20260901_120000.pdf",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Predict(context.Background(), PredictRequest{
		Nome:         "Maria",
		Data:         "2026-09-01",
		Idade:        50,
		Sexo:         "F",
		AlturaM:      1.65,
		PesoKg:       80,
		Comorbidades: []string{"SAH", "obesity"},
	})
	require.NoError(t, err)
	assert.Equal(t, 42.1234, resp.Probabilidade)
	assert.Equal(t, "/consultas/consulta_20260901_120000.pdf", resp.PDFURL)

	// The wire payload uses the backend's Portuguese field names.
	assert.Equal(t, "Maria", received["nome"])
	assert.Equal(t, 1.65, received["altura"])
	assert.Equal(t, 80.0, received["peso"])
	assert.Equal(t, []interface{}{"SAH", "obesity"}, received["comorbidades"])
}

func TestPredictServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "model exploded"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Predict(context.Background(), PredictRequest{Nome: "Maria"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model exploded")
}

func TestPredictConnectionRefused(t *testing.T) {
	c := New("http://127.0.0.1:1")
	_, err := c.Predict(context.Background(), PredictRequest{})
	require.Error(t, err)
}

func TestCMToMeters(t *testing.T) {
	assert.Equal(t, 1.7, CMToMeters(170))
}

func TestPreviewBMI(t *testing.T) {
	got := PreviewBMI(70, 170)
	require.NotNil(t, got)
	assert.Equal(t, 24.2, *got)

	assert.Nil(t, PreviewBMI(70, 0))
	assert.Nil(t, PreviewBMI(0, 170))
}

func TestClassifyBMI(t *testing.T) {
	band := func(v float64) string { return ClassifyBMI(&v) }

	assert.Equal(t, "Baixo peso", band(17.0))
	assert.Equal(t, "Eutrofia", band(22.0))
	assert.Equal(t, "Sobrepeso", band(27.5))
	assert.Equal(t, "Obesidade I", band(32.0))
	assert.Equal(t, "Obesidade II", band(37.0))
	assert.Equal(t, "Obesidade III", band(45.0))
	assert.Equal(t, "", ClassifyBMI(nil))
}

func TestReportFilename(t *testing.T) {
	data := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "consulta_Maria_Souza_20260901.pdf", ReportFilename("Maria Souza", data))
	assert.Equal(t, "consulta_Dr_João_Silva_20260901.pdf", ReportFilename("Dr. João Silva!", data))
}
