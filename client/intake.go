// Package client implements the intake side of the scoring flow: a typed
// HTTP client for the backend plus the preview helpers the consultation
// form uses before submitting (BMI preview and classification, unit
// conversion, report file naming).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"
	"unicode"
)

// Client calls the scoring backend.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a Client for the given base URL with a 30 second timeout,
// matching the form's submission timeout.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// PredictRequest is one consultation submission.
type PredictRequest struct {
	Nome         string   `json:"nome"`
	Data         string   `json:"data"`
	Idade        int      `json:"idade"`
	Sexo         string   `json:"sexo"`
	AlturaM      float64  `json:"altura"`
	PesoKg       float64  `json:"peso"`
	Comorbidades []string `json:"comorbidades"`
}

// PredictResponse is the backend's success payload.
type PredictResponse struct {
	Probabilidade float64 `json:"probabilidade"`
	PDFURL        string  `json:"pdf_url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Predict submits one consultation and returns the scored probability
// (percentage) and report path.
func (c *Client) Predict(ctx context.Context, req PredictRequest) (*PredictResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding predict request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building predict request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling predict: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
			return nil, fmt.Errorf("predict failed with status %d: %s", resp.StatusCode, e.Error)
		}
		return nil, fmt.Errorf("predict failed with status %d", resp.StatusCode)
	}

	var out PredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding predict response: %w", err)
	}
	return &out, nil
}

// CMToMeters converts a height in centimeters to meters.
func CMToMeters(cm float64) float64 {
	return cm / 100
}

// PreviewBMI computes the form's BMI preview from weight in kilograms and
// height in centimeters, rounded to one decimal. Returns nil when either
// value is not positive.
func PreviewBMI(pesoKg, alturaCM float64) *float64 {
	if pesoKg <= 0 || alturaCM <= 0 {
		return nil
	}
	m := CMToMeters(alturaCM)
	v := math.Round(pesoKg/(m*m)*10) / 10
	return &v
}

// ClassifyBMI maps a BMI value to its display band.
func ClassifyBMI(imc *float64) string {
	if imc == nil {
		return ""
	}
	switch {
	case *imc < 18.5:
		return "Baixo peso"
	case *imc < 25:
		return "Eutrofia"
	case *imc < 30:
		return "Sobrepeso"
	case *imc < 35:
		return "Obesidade I"
	case *imc < 40:
		return "Obesidade II"
	default:
		return "Obesidade III"
	}
}

// ReportFilename builds the form's suggested download name from the
// patient name and visit date: special characters stripped, spaces turned
// into underscores.
func ReportFilename(nome string, data time.Time) string {
	var b strings.Builder
	for _, r := range nome {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	clean := strings.ReplaceAll(strings.TrimRight(b.String(), " "), " ", "_")
	return fmt.Sprintf("consulta_%s_%s.pdf", clean, data.Format("20060102"))
}
