package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Consultation is one scored patient visit. Rows are append-only: the
// service never updates or deletes them, and nothing beyond the primary
// key is unique. Comorbidades holds the matched catalog keys serialized as
// a JSON array in payload order, and PDFPath is the report file name under
// the report directory (a naming convention, not an enforced foreign key).
type Consultation struct {
	gorm.Model
	Nome          string         `json:"nome" gorm:"column:nome;type:varchar(255)"`
	DataConsulta  string         `json:"data_consulta" gorm:"column:data_consulta;type:varchar(32)"`
	PatientAge    float64        `json:"patient_age" gorm:"column:patient_age"`
	PatientSex    int            `json:"patient_sex" gorm:"column:patient_sex"`
	Altura        float64        `json:"altura" gorm:"column:altura"`
	Peso          float64        `json:"peso" gorm:"column:peso"`
	IMC           *float64       `json:"imc" gorm:"column:imc"`
	Comorbidades  datatypes.JSON `json:"comorbidades" gorm:"column:comorbidades_json;type:json"`
	Probabilidade float64        `json:"probabilidade" gorm:"column:probabilidade"`
	PDFPath       string         `json:"pdf_path" gorm:"column:pdf_path;type:varchar(255)"`
}
