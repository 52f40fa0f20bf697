package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/datacare-saude/datacare-backend/config"
)

// Status returns the static service descriptor.
func Status(c *gin.Context) {
	cfg := config.LoadConfig()
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"message": cfg.AppName,
		"endpoints": gin.H{
			"predict":  "POST /predict - Calcular probabilidade de diabetes",
			"download": "GET /consultas/<filename> - Download de PDF",
		},
	})
}
