package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	GinMode           string
	TesseractDataPath string
	OCRLanguage       string
	MaxFileSize       int64
	MinTextLength     int
	LogLevel          string
	LogFormat         string
}

func LoadConfig() *Config {
	// .env is optional
	_ = godotenv.Load()

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/5/tessdata/"
	}

	ocrLanguage := os.Getenv("OCR_LANGUAGE")
	if ocrLanguage == "" {
		ocrLanguage = "fra"
	}

	maxFileSizeMB := envInt("MAX_FILE_SIZE_MB", 10)
	minTextLength := envInt("MIN_TEXT_LENGTH", 20)

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "console"
	}

	return &Config{
		ServerPort:        serverPort,
		GinMode:           os.Getenv("GIN_MODE"),
		TesseractDataPath: tesseractDataPath,
		OCRLanguage:       ocrLanguage,
		MaxFileSize:       int64(maxFileSizeMB) * 1024 * 1024,
		MinTextLength:     minTextLength,
		LogLevel:          logLevel,
		LogFormat:         logFormat,
	}
}

// envInt returns def when the variable is unset or not a positive integer.
func envInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
