// Package report renders the single-layout consultation PDF.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/go-pdf/fpdf"
)

const (
	margin       = 40.0 // page margin in points
	bottomGuard  = 50.0 // minimum space left below a bullet before breaking
	footerOffset = 30.0 // footer baseline above the bottom margin
	bulletStep   = 14.0
)

// Patient carries the header fields printed in the report's data block.
type Patient struct {
	Nome         string
	DataConsulta string
	Idade        float64
	SexCode      int
	AlturaM      float64
	PesoKg       float64
	IMC          *float64
}

// Render writes the consultation report to path, overwriting any previous
// file with the same name. The document is built in memory and written to
// a temporary file in the target directory, then renamed into place, so a
// failure partway through rendering never leaves a truncated report behind.
func Render(path string, p Patient, comorbidadesPT []string, probPercent float64, generatedAt time.Time) error {
	doc := buildDocument(p, comorbidadesPT, probPercent, generatedAt)
	if doc.Err() {
		return fmt.Errorf("building report: %w", doc.Error())
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".consulta-*.pdf")
	if err != nil {
		return fmt.Errorf("creating report temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := doc.Output(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing report temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("publishing report: %w", err)
	}
	return nil
}

// buildDocument lays out the fixed single-column report: title, patient
// data block, result block, comorbidity bullet list with pagination, and a
// generation timestamp footer pinned to the last page.
func buildDocument(p Patient, comorbidadesPT []string, probPercent float64, generatedAt time.Time) *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	width, height := pdf.GetPageSize()
	y := margin + 12

	text := func(x float64, s string) {
		pdf.Text(x, y, tr(s))
	}

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	text(margin, "Relatório de Consulta - Avaliação de Risco de Diabetes")
	y += 30

	// Patient data block
	pdf.SetFont("Helvetica", "B", 12)
	text(margin, "Dados do Paciente:")
	y += 20

	pdf.SetFont("Helvetica", "", 10)
	text(margin, fmt.Sprintf("Nome: %s", orDash(p.Nome)))
	text(width/2, fmt.Sprintf("Data da Consulta: %s", orDash(p.DataConsulta)))
	y += 15

	sexo := "Masculino"
	if p.SexCode == 2 {
		sexo = "Feminino"
	}
	text(margin, fmt.Sprintf("Idade: %.0f anos", p.Idade))
	text(width/2, fmt.Sprintf("Sexo: %s", sexo))
	y += 15

	text(margin, fmt.Sprintf("Altura: %.0f cm (%.2f m)", p.AlturaM*100, p.AlturaM))
	text(width/2, fmt.Sprintf("Peso: %.1f kg", p.PesoKg))
	y += 15

	imc := "-"
	if p.IMC != nil {
		imc = fmt.Sprintf("%.1f", *p.IMC)
	}
	text(margin, fmt.Sprintf("IMC: %s", imc))
	y += 25

	// Result block
	pdf.SetFont("Helvetica", "B", 14)
	text(margin, "Resultado da Avaliação:")
	y += 20

	pdf.SetFont("Helvetica", "", 12)
	text(margin, fmt.Sprintf("Probabilidade de Diabetes Tipo 2: %.2f%%", probPercent))
	y += 25

	// Comorbidity block
	pdf.SetFont("Helvetica", "B", 12)
	text(margin, "Comorbidades Identificadas:")
	y += 20

	pdf.SetFont("Helvetica", "", 10)
	if len(comorbidadesPT) == 0 {
		text(margin+10, "Nenhuma comorbidade identificada")
		y += bulletStep
	}
	for _, label := range comorbidadesPT {
		if y > height-margin-bottomGuard {
			pdf.AddPage()
			y = margin + 12
			pdf.SetFont("Helvetica", "B", 12)
			text(margin, "Comorbidades Identificadas (continuação):")
			y += 20
			pdf.SetFont("Helvetica", "", 10)
		}
		text(margin+10, fmt.Sprintf("• %s", label))
		y += bulletStep
	}

	// Footer, pinned to a fixed offset from the bottom of the last page.
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Text(margin, height-margin-footerOffset,
		tr(fmt.Sprintf("Documento gerado em: %s", generatedAt.Format("02/01/2006 às 15:04"))))

	return pdf
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
