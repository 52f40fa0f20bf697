package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/datacare-saude/datacare-backend/classifier"
)

const (
	dbContextKey        = "db"
	scorerContextKey    = "scorer"
	reportDirContextKey = "report_dir"
)

// CORSMiddleware configures CORS headers for incoming requests.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		// For preflight requests, respond with 204 and abort further processing.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// DatabaseMiddleware injects the shared gorm handle into the request
// context so handlers never open their own connections.
func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dbContextKey, db)
		c.Next()
	}
}

// GetDB returns the gorm handle set by DatabaseMiddleware, or nil.
func GetDB(c *gin.Context) *gorm.DB {
	v, ok := c.Get(dbContextKey)
	if !ok {
		return nil
	}
	db, _ := v.(*gorm.DB)
	return db
}

// PredictorMiddleware injects the loaded risk scorer and the report output
// directory into the request context. Tests substitute a stub scorer here.
func PredictorMiddleware(s classifier.Scorer, reportDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(scorerContextKey, s)
		c.Set(reportDirContextKey, reportDir)
		c.Next()
	}
}

// GetScorer returns the risk scorer set by PredictorMiddleware, or nil.
func GetScorer(c *gin.Context) classifier.Scorer {
	v, ok := c.Get(scorerContextKey)
	if !ok {
		return nil
	}
	s, _ := v.(classifier.Scorer)
	return s
}

// GetReportDir returns the report directory set by PredictorMiddleware.
func GetReportDir(c *gin.Context) string {
	v, ok := c.Get(reportDirContextKey)
	if !ok {
		return ""
	}
	dir, _ := v.(string)
	return dir
}
