package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Aashish23092/rsi-career-extraction/dto"
	"github.com/Aashish23092/rsi-career-extraction/service"
)

type RSIHandler struct {
	rsiService  *service.RSIService
	maxFileSize int64
}

func NewRSIHandler(rsiService *service.RSIService, maxFileSize int64) *RSIHandler {
	return &RSIHandler{
		rsiService:  rsiService,
		maxFileSize: maxFileSize,
	}
}

// Register mounts the statement routes on rg.
func (h *RSIHandler) Register(rg *gin.RouterGroup) {
	rsiGroup := rg.Group("/rsi")
	{
		rsiGroup.POST("/parse", h.ParseStatements)
		rsiGroup.POST("/parse-text", h.ParseText)
		rsiGroup.POST("/year-map", h.YearMap)
	}
}

// ParseStatements handles the POST /rsi/parse endpoint
func (h *RSIHandler) ParseStatements(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return
	}

	// "files[]" for batches, "file" for a single statement
	files := form.File["files[]"]
	if len(files) == 0 {
		files = form.File["file"]
	}

	request := &dto.RSIParseRequest{
		Files:    files,
		Password: c.PostForm("password"),
		MaxSize:  h.maxFileSize,
	}
	if err := request.Validate(); err != nil {
		h.sendError(c, statusFor(err), "Invalid request", err)
		return
	}

	log.Info().Int("files", len(files)).Msg("processing statements")

	response, err := h.rsiService.ParseDocuments(c.Request.Context(), request)
	if err != nil {
		h.sendError(c, statusFor(err), "Failed to parse statements", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ParseText handles the POST /rsi/parse-text endpoint
func (h *RSIHandler) ParseText(c *gin.Context) {
	var req dto.RSITextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	response, err := h.rsiService.ParseText(req.Text)
	if err != nil {
		h.sendError(c, statusFor(err), "Failed to parse statement text", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// YearMap handles the POST /rsi/year-map endpoint
func (h *RSIHandler) YearMap(c *gin.Context) {
	var req dto.YearMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	c.JSON(http.StatusOK, h.rsiService.AggregateYears(req.Employments))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dto.ErrInvalidInput), errors.Is(err, dto.ErrUnsupportedFile):
		return http.StatusBadRequest
	case errors.Is(err, dto.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, dto.ErrNoText):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// sendError sends a structured error response
func (h *RSIHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Error().Err(err).Int("status", statusCode).Msg(message)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "RSI_PARSE_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
