package dto

import "errors"

// Custom errors
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNoText          = errors.New("no text could be extracted from the document")
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file too large")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// TextSource tells how the statement text was obtained
type TextSource string

const (
	SourceText     TextSource = "text"
	SourcePDFText  TextSource = "pdf_text"
	SourcePDFOCR   TextSource = "pdf_ocr"
	SourceImageOCR TextSource = "image_ocr"
)

type DocumentQuality struct {
	OcrConfidence float64  `json:"ocr_confidence"`
	FinalScore    float64  `json:"final_score"`
	Issues        []string `json:"issues"`
}

// RSIParseResponse is the result of parsing one statement
type RSIParseResponse struct {
	Filename    string                  `json:"filename,omitempty"`
	Source      TextSource              `json:"source"`
	TextLength  int                     `json:"text_length"`
	Quality     DocumentQuality         `json:"quality"`
	Result      *RSIResult              `json:"result"`
	YearMap     map[int]YearIncomeEntry `json:"year_map"`
	ProcessedAt string                  `json:"processed_at"`
}

// YearMapResponse is the result of folding employment rows by year
type YearMapResponse struct {
	Years map[int]YearIncomeEntry `json:"years"`
}
