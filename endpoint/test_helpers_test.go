package endpoint

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/datacare-saude/datacare-backend/config"
	"github.com/datacare-saude/datacare-backend/middleware"
	"github.com/datacare-saude/datacare-backend/model"
)

// stubScorer replaces the trained model in endpoint tests.
type stubScorer struct {
	prob float64
	err  error
}

func (s stubScorer) Score(features []float64) (float64, error) {
	return s.prob, s.err
}

// setupConsultationTest returns a router wired like main.go, backed by a
// temporary SQLite file and report directory, with the given scorer.
func setupConsultationTest(t *testing.T, scorer stubScorer) (*gin.Engine, *gorm.DB, string) {
	t.Helper()
	t.Setenv("APPENV", "test")
	gin.SetMode(gin.TestMode)

	db, err := config.ConnectSQLiteAt(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("connect test db: %v", err)
	}
	if err := db.AutoMigrate(&model.Consultation{}, &model.AuditLog{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	reportDir := t.TempDir()

	r := gin.New()
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.PredictorMiddleware(scorer, reportDir))
	r.GET("/", Status)
	r.POST("/predict", Predict)
	r.GET("/consultas/:filename", DownloadReport)
	r.GET("/consulta", ListConsultations)
	r.POST("/login", Login)
	r.POST("/cadastro", Cadastro)

	return r, db, reportDir
}

func doJSONRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response body %q: %v", w.Body.String(), err)
	}
	return out
}
