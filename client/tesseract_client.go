package client

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
	"github.com/rs/zerolog/log"
)

// OCR reads text out of scanned statement pages.
type OCR interface {
	ExtractTextAndQuality(data []byte) (string, float64, error)
	ExtractTextFromImage(img image.Image) (string, float64, error)
}

type TesseractClient struct {
	dataPath string
	language string
}

func NewTesseractClient(dataPath, language string) *TesseractClient {
	if language == "" {
		language = "fra"
	}
	return &TesseractClient{
		dataPath: dataPath,
		language: language,
	}
}

// ExtractTextAndQuality runs OCR on an encoded image and returns the text
// with the mean word confidence (0-100).
func (tc *TesseractClient) ExtractTextAndQuality(data []byte) (string, float64, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if tc.dataPath != "" {
		client.SetTessdataPrefix(tc.dataPath)
	}
	if err := client.SetLanguage(tc.language); err != nil {
		return "", 0, fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImageFromBytes(data); err != nil {
		return "", 0, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", 0, fmt.Errorf("failed to extract text: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// text is still usable without confidence
		return text, 0, nil
	}

	var totalConf float64
	for _, box := range boxes {
		totalConf += box.Confidence
	}

	avgConf := 0.0
	if len(boxes) > 0 {
		avgConf = totalConf / float64(len(boxes))
	}

	return text, avgConf, nil
}

// ExtractTextFromImage encodes img as PNG and runs OCR on it.
func (tc *TesseractClient) ExtractTextFromImage(img image.Image) (string, float64, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", 0, fmt.Errorf("failed to encode image to PNG: %w", err)
	}
	return tc.ExtractTextAndQuality(buf.Bytes())
}

// Close performs cleanup
func (tc *TesseractClient) Close() {
	log.Debug().Msg("tesseract client closed")
}
