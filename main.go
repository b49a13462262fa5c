package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Aashish23092/rsi-career-extraction/client"
	"github.com/Aashish23092/rsi-career-extraction/config"
	"github.com/Aashish23092/rsi-career-extraction/handler"
	"github.com/Aashish23092/rsi-career-extraction/service"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()
	config.SetupLogger(cfg)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Initialize Tesseract client for scanned statements
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguage)
	defer tesseractClient.Close()

	// Initialize service layer
	pdfProcessor := service.NewPDFProcessor()
	rsiService := service.NewRSIService(tesseractClient, pdfProcessor, cfg.MinTextLength)

	// Initialize handler layer
	rsiHandler := handler.NewRSIHandler(rsiService, cfg.MaxFileSize)

	router := gin.Default()
	router.MaxMultipartMemory = 32 << 20

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "RSI Career Extraction",
		})
	})

	api := router.Group("/api/v1")
	rsiHandler.Register(api)

	log.Info().Str("port", cfg.ServerPort).Str("ocr_language", cfg.OCRLanguage).Msg("starting RSI career extraction service")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
