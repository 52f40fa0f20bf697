package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	AppName   string `json:"appname"`
	AppEnv    string `json:"appenv"`
	AppPort   uint16 `json:"appport"`
	GinMode   string `json:"ginmode"`
	DBPath    string `json:"dbpath"`
	ModelPath string `json:"modelpath"`
	ReportDir string `json:"reportdir"`
}

var config *Config
var once sync.Once

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadConfig loads environment variables from a .env file when present and
// returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		// A missing .env file is fine; plain environment variables win.
		if err := godotenv.Load(); err != nil {
			log.Printf("config: no .env file loaded: %v", err)
		}

		appPort, _ := strconv.ParseUint(envOrDefault("APPPORT", "5000"), 10, 16)

		config = &Config{
			AppName:   envOrDefault("APPNAME", "DataCare Backend API"),
			AppEnv:    os.Getenv("APPENV"),
			AppPort:   uint16(appPort),
			GinMode:   envOrDefault("GINMODE", "debug"),
			DBPath:    envOrDefault("DBPATH", "consultas.db"),
			ModelPath: envOrDefault("MODELPATH", "modelo_gradient_boosting.json"),
			ReportDir: envOrDefault("REPORTDIR", "consultas"),
		}
	})
	return config
}
