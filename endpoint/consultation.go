package endpoint

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/datacare-saude/datacare-backend/classifier"
	"github.com/datacare-saude/datacare-backend/middleware"
	"github.com/datacare-saude/datacare-backend/model"
	"github.com/datacare-saude/datacare-backend/report"
	"github.com/datacare-saude/datacare-backend/util"
)

// respondPredictError is the single error boundary of the scoring
// pipeline. Full detail goes to the server log; the caller only gets the
// error string and a 500, with no structured codes distinguishing stages.
func respondPredictError(c *gin.Context, stage string, err error) {
	logrus.WithError(err).WithField("stage", stage).Error("predict request failed")
	util.LogAuditEvent(util.AuditEvent{
		EventType: util.EventPredictFailed,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Message:   fmt.Sprintf("predict failed at %s: %v", stage, err),
	})
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// Predict scores one consultation: encode the payload into the fixed-order
// feature vector, run the classifier, render the PDF report, append the
// consultation row, and answer with the probability (as a percentage,
// 4-decimal rounding) and the report download path. Any stage error aborts
// the whole request; side effects already performed are not rolled back.
func Predict(c *gin.Context) {
	var payload classifier.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondPredictError(c, "decode", err)
		return
	}

	db := middleware.GetDB(c)
	if db == nil {
		respondPredictError(c, "storage", fmt.Errorf("database connection not available"))
		return
	}
	scorer := middleware.GetScorer(c)
	if scorer == nil {
		respondPredictError(c, "scoring", fmt.Errorf("risk scorer not available"))
		return
	}

	enc := classifier.Encode(payload)
	if len(enc.DroppedKeys) > 0 || len(enc.DefaultedFields) > 0 {
		// Silent input recovery is never surfaced, but it is observable.
		logrus.WithFields(logrus.Fields{
			"dropped_keys":     enc.DroppedKeys,
			"defaulted_fields": enc.DefaultedFields,
		}).Info("payload fields recovered with defaults")
	}

	prob, err := scorer.Score(enc.Vector)
	if err != nil {
		respondPredictError(c, "scoring", err)
		return
	}

	now := time.Now()
	filename := fmt.Sprintf("consulta_%s.pdf", now.Format("20060102_150405"))
	pdfPath := filepath.Join(middleware.GetReportDir(c), filename)

	patient := report.Patient{
		Nome:         enc.Meta.Nome,
		DataConsulta: enc.Meta.DataConsulta,
		Idade:        enc.Vector[0],
		SexCode:      enc.SexCode,
		AlturaM:      enc.Meta.Altura,
		PesoKg:       enc.Meta.Peso,
		IMC:          enc.Meta.IMC,
	}
	if err := report.Render(pdfPath, patient, enc.MatchedLabels, prob*100, now); err != nil {
		respondPredictError(c, "render", err)
		return
	}

	comorbJSON, err := json.Marshal(enc.MatchedKeys)
	if err != nil {
		respondPredictError(c, "storage", err)
		return
	}
	row := model.Consultation{
		Nome:          enc.Meta.Nome,
		DataConsulta:  enc.Meta.DataConsulta,
		PatientAge:    enc.Vector[0],
		PatientSex:    enc.SexCode,
		Altura:        enc.Meta.Altura,
		Peso:          enc.Meta.Peso,
		IMC:           enc.Meta.IMC,
		Comorbidades:  datatypes.JSON(comorbJSON),
		Probabilidade: prob,
		PDFPath:       filename,
	}
	if err := db.Create(&row).Error; err != nil {
		respondPredictError(c, "storage", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"probabilidade": util.RoundTo(prob*100, 4),
		"pdf_url":       "/consultas/" + filename,
	})
}

// DownloadReport streams a previously rendered report. The filename is
// reduced to its base to keep lookups inside the report directory.
func DownloadReport(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	full := filepath.Join(middleware.GetReportDir(c), filename)

	if _, err := os.Stat(full); err != nil {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Report not found",
			Err: fmt.Errorf("no report named %s", filename),
		})
		return
	}
	c.File(full)
}

// ListConsultations returns the consultation history, newest first, with
// optional pagination and a keyword filter on the patient name.
func ListConsultations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	keyword := c.Query("keyword")

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	query := db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if keyword != "" {
		query = query.Where("nome LIKE ?", "%"+keyword+"%")
	}

	var consultations []model.Consultation
	if err := query.Find(&consultations).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve consultations",
			Err: err,
		})
		return
	}

	var total int64
	db.Model(&model.Consultation{}).Count(&total)

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Consultations retrieved",
		Data: map[string]interface{}{"total": total, "total_fetched": len(consultations), "consultations": consultations},
	})
}
