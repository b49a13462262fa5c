package service

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/Aashish23092/rsi-career-extraction/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statementText = "2023 4 trim. Agirc-Arrco 64 pts 2024 2 trim. Agirc-Arrco 30 pts " +
	"ACME SA 01/01/2023 31/12/2024 38 000 € AGIRC-ARRCO"

type fakePDF struct {
	text   string
	err    error
	images []image.Image
}

func (f *fakePDF) ExtractText(_ []byte, _ string) (string, error) {
	return f.text, f.err
}

func (f *fakePDF) ExtractImages(_ []byte, _ string) ([]image.Image, error) {
	return f.images, nil
}

type fakeOCR struct {
	text string
	conf float64
}

func (f *fakeOCR) ExtractTextAndQuality(_ []byte) (string, float64, error) {
	return f.text, f.conf, nil
}

func (f *fakeOCR) ExtractTextFromImage(_ image.Image) (string, float64, error) {
	return f.text, f.conf, nil
}

func TestParseText(t *testing.T) {
	s := NewRSIService(nil, nil, 0)

	resp, err := s.ParseText("  2024 4 trim.\n Agirc-Arrco 70,9 pts ")

	require.NoError(t, err)
	assert.Equal(t, dto.SourceText, resp.Source)
	require.Len(t, resp.Result.Years, 1)
	assert.Equal(t, 70.9, resp.Result.Years[0].PointsByScheme["agircArrco"])
	assert.NotEmpty(t, resp.ProcessedAt)
}

func TestParseTextBlank(t *testing.T) {
	s := NewRSIService(nil, nil, 0)

	_, err := s.ParseText(" \n ")

	assert.ErrorIs(t, err, dto.ErrInvalidInput)
}

func TestParseDocumentPlainText(t *testing.T) {
	s := NewRSIService(nil, nil, 0)

	resp, err := s.ParseDocument(context.Background(), "releve.txt", []byte(statementText), "")

	require.NoError(t, err)
	assert.Equal(t, "releve.txt", resp.Filename)
	assert.Len(t, resp.Result.Years, 2)
	assert.Equal(t, map[int]dto.YearIncomeEntry{
		2024: {Income: 38000, ActivityType: dto.ActivityPrivate},
	}, resp.YearMap)
}

func TestParseDocumentPDFTextLayer(t *testing.T) {
	s := NewRSIService(nil, &fakePDF{text: statementText}, 0)

	resp, err := s.ParseDocument(context.Background(), "releve.PDF", []byte("%PDF"), "secret")

	require.NoError(t, err)
	assert.Equal(t, dto.SourcePDFText, resp.Source)
	assert.Equal(t, 100.0, resp.Quality.FinalScore)
	assert.Len(t, resp.Result.Employments, 1)
}

func TestParseDocumentPDFFallsBackToOCR(t *testing.T) {
	pdf := &fakePDF{text: "", err: errors.New("no text layer"), images: []image.Image{
		image.NewGray(image.Rect(0, 0, 1, 1)),
		image.NewGray(image.Rect(0, 0, 1, 1)),
	}}
	ocr := &fakeOCR{text: "2024 4 trim.\nAgirc-Arrco 10 pts", conf: 50}
	s := NewRSIService(ocr, pdf, 0)

	resp, err := s.ParseDocument(context.Background(), "scan.pdf", []byte("%PDF"), "")

	require.NoError(t, err)
	assert.Equal(t, dto.SourcePDFOCR, resp.Source)
	assert.Equal(t, 50.0, resp.Quality.OcrConfidence)
	assert.Contains(t, resp.Quality.Issues, "pdf_text_extraction_failed")
	assert.Contains(t, resp.Quality.Issues, "low_quality_document")
	// both pages carry the same year anchor, so only the first block counts
	require.Len(t, resp.Result.Years, 1)
}

func TestParseDocumentImageWithoutOCR(t *testing.T) {
	s := NewRSIService(nil, nil, 0)

	_, err := s.ParseDocument(context.Background(), "scan.png", []byte{1}, "")

	assert.ErrorIs(t, err, dto.ErrUnsupportedFile)
}

func TestParseDocumentUnsupportedExtension(t *testing.T) {
	s := NewRSIService(nil, nil, 0)

	_, err := s.ParseDocument(context.Background(), "releve.docx", []byte{1}, "")

	assert.ErrorIs(t, err, dto.ErrUnsupportedFile)
}

func TestParseDocumentEmptyText(t *testing.T) {
	s := NewRSIService(nil, nil, 0)

	_, err := s.ParseDocument(context.Background(), "empty.txt", []byte("   "), "")

	assert.ErrorIs(t, err, dto.ErrNoText)
}

func TestAggregateYears(t *testing.T) {
	s := NewRSIService(nil, nil, 0)

	resp := s.AggregateYears([]dto.EmploymentInput{
		{EndDate: "31/12/2020", Income: "10 000", Regime: "AGIRC-ARRCO"},
		{EndDate: "31/12/2020", Income: "5 000"},
	})

	assert.Equal(t, dto.YearIncomeEntry{Income: 15000, ActivityType: dto.ActivityPrivate}, resp.Years[2020])
}
