package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/datacare-saude/datacare-backend/config"
	"github.com/datacare-saude/datacare-backend/model"
	"github.com/datacare-saude/datacare-backend/util"
)

type fixedScorer struct{ prob float64 }

func (f fixedScorer) Score(features []float64) (float64, error) { return f.prob, nil }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.ConnectSQLiteAt(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("connect test db: %v", err)
	}
	return db
}

func TestDatabaseMiddlewareAndGetDB(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	r := gin.New()
	r.Use(DatabaseMiddleware(db))
	r.GET("/", func(c *gin.Context) {
		got := GetDB(c)
		assert.Same(t, db, got)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetDBWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetDB(c))
}

func TestPredictorMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	scorer := fixedScorer{prob: 0.9}

	r := gin.New()
	r.Use(PredictorMiddleware(scorer, "/tmp/reports"))
	r.GET("/", func(c *gin.Context) {
		got := GetScorer(c)
		require.NotNil(t, got)
		p, err := got.Score(nil)
		require.NoError(t, err)
		assert.Equal(t, 0.9, p)
		assert.Equal(t, "/tmp/reports", GetReportDir(c))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetScorerWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetScorer(c))
	assert.Equal(t, "", GetReportDir(c))
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestEndpointCallLoggerPersistsAuditRow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	require.NoError(t, db.AutoMigrate(&model.AuditLog{}))

	util.SetAuditLoggerDB(db)
	t.Cleanup(func() { util.SetAuditLoggerDB(nil) })

	r := gin.New()
	r.Use(EndpointCallLogger())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var logs []model.AuditLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, string(util.EventEndpointCall), logs[0].EventType)
	assert.Contains(t, logs[0].Message, "GET /ping")
}
