// main.go
package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/datacare-saude/datacare-backend/classifier"
	"github.com/datacare-saude/datacare-backend/config"
	"github.com/datacare-saude/datacare-backend/endpoint"
	"github.com/datacare-saude/datacare-backend/middleware"
	"github.com/datacare-saude/datacare-backend/model"
	"github.com/datacare-saude/datacare-backend/util"
)

func main() {
	// Load the configuration
	cfg := config.LoadConfig()

	db, err := config.ConnectSQLite()
	if err != nil {
		logrus.Fatalf("error connecting to SQLite: %v", err)
	}
	if err := db.AutoMigrate(&model.Consultation{}, &model.AuditLog{}); err != nil {
		logrus.Fatalf("error migrating schema: %v", err)
	}
	util.SetAuditLoggerDB(db)

	// A missing or invalid model artifact is fatal: the server must not
	// accept scoring requests it cannot answer.
	scorer, err := classifier.Load(cfg.ModelPath)
	if err != nil {
		logrus.Fatalf("error loading classifier: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"artifact": cfg.ModelPath,
		"features": len(classifier.FeatureNames),
	}).Info("classifier loaded")

	if err := os.MkdirAll(cfg.ReportDir, 0o755); err != nil {
		logrus.Fatalf("error creating report directory: %v", err)
	}

	// Redis is optional; without it the rate limiter fails open.
	if _, err := config.ConnectRedis(); err != nil {
		logrus.WithError(err).Warn("redis unavailable, rate limiting disabled")
	}

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DatabaseMiddleware(db))
	router.Use(middleware.PredictorMiddleware(scorer, cfg.ReportDir))
	router.Use(middleware.EndpointCallLogger())

	router.GET("/", endpoint.Status)
	router.POST("/predict", middleware.RateLimiter(middleware.RateLimitConfig{}), endpoint.Predict)
	router.GET("/consultas/:filename", endpoint.DownloadReport)
	router.GET("/consulta", endpoint.ListConsultations)
	router.POST("/login", endpoint.Login)
	router.POST("/cadastro", endpoint.Cadastro)

	// Start server on specified port
	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		logrus.Fatalf("error starting server: %v", err)
	}
}
