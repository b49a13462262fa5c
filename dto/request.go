package dto

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var supportedExtensions = []string{".pdf", ".png", ".jpg", ".jpeg", ".txt"}

// RSIParseRequest represents an upload of one or more statements
type RSIParseRequest struct {
	Files    []*multipart.FileHeader
	Password string
	MaxSize  int64
}

// Validate performs basic validation on the request
func (r *RSIParseRequest) Validate() error {
	if len(r.Files) == 0 {
		return fmt.Errorf("%w: at least one file is required", ErrInvalidInput)
	}

	for _, f := range r.Files {
		if !IsSupportedFile(f.Filename) {
			return fmt.Errorf("%w: %s (supported: PDF, PNG, JPG, TXT)", ErrUnsupportedFile, f.Filename)
		}
		if r.MaxSize > 0 && f.Size > r.MaxSize {
			return fmt.Errorf("%w: %s is %d bytes", ErrFileTooLarge, f.Filename, f.Size)
		}
	}

	return nil
}

// IsSupportedFile reports whether the filename has an accepted extension.
func IsSupportedFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, valid := range supportedExtensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// RSITextRequest carries already extracted statement text
type RSITextRequest struct {
	Text string `json:"text" binding:"required"`
}

// YearMapRequest carries employment rows to fold into a year map
type YearMapRequest struct {
	Employments []EmploymentInput `json:"employments"`
}
