package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Aashish23092/rsi-career-extraction/client"
	"github.com/Aashish23092/rsi-career-extraction/dto"
	"github.com/Aashish23092/rsi-career-extraction/utils"
	"github.com/Aashish23092/rsi-career-extraction/utils/rsi"
)

const defaultMinTextLength = 20

type RSIService struct {
	ocr           client.OCR
	pdfProcessor  PDFProcessor
	minTextLength int
}

func NewRSIService(ocr client.OCR, pdfProcessor PDFProcessor, minTextLength int) *RSIService {
	if minTextLength <= 0 {
		minTextLength = defaultMinTextLength
	}
	return &RSIService{
		ocr:           ocr,
		pdfProcessor:  pdfProcessor,
		minTextLength: minTextLength,
	}
}

// ParseDocuments processes every uploaded statement concurrently. Results
// keep the order of the uploaded files.
func (s *RSIService) ParseDocuments(ctx context.Context, req *dto.RSIParseRequest) ([]dto.RSIParseResponse, error) {
	results := make([]dto.RSIParseResponse, len(req.Files))
	g, ctx := errgroup.WithContext(ctx)

	for i, fh := range req.Files {
		i, fh := i, fh
		g.Go(func() error {
			data, err := readUpload(fh)
			if err != nil {
				return err
			}

			resp, err := s.ParseDocument(ctx, fh.Filename, data, req.Password)
			if err != nil {
				return fmt.Errorf("failed to process file %s: %w", fh.Filename, err)
			}
			results[i] = *resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ParseDocument extracts text from one statement file and parses it.
func (s *RSIService) ParseDocument(ctx context.Context, filename string, data []byte, password string) (*dto.RSIParseResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, source, quality, err := s.extractText(filename, data, password)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("%s: %w", filename, dto.ErrNoText)
	}

	resp, err := s.buildResponse(text, source, quality)
	if err != nil {
		return nil, err
	}
	resp.Filename = filename

	log.Info().
		Str("file", filename).
		Str("source", string(source)).
		Int("years", len(resp.Result.Years)).
		Int("employments", len(resp.Result.Employments)).
		Msg("statement parsed")

	return resp, nil
}

// ParseText parses statement text that was extracted elsewhere.
func (s *RSIService) ParseText(text string) (*dto.RSIParseResponse, error) {
	quality := dto.DocumentQuality{OcrConfidence: 100, FinalScore: 100, Issues: []string{}}
	return s.buildResponse(utils.CollapseWhitespace(text), dto.SourceText, quality)
}

// AggregateYears folds employment rows into income per year.
func (s *RSIService) AggregateYears(rows []dto.EmploymentInput) *dto.YearMapResponse {
	return &dto.YearMapResponse{Years: rsi.EmploymentsToYearMap(rows)}
}

func (s *RSIService) buildResponse(text string, source dto.TextSource, quality dto.DocumentQuality) (*dto.RSIParseResponse, error) {
	result, err := rsi.Parse(text)
	if err != nil {
		return nil, err
	}

	return &dto.RSIParseResponse{
		Source:      source,
		TextLength:  len(text),
		Quality:     quality,
		Result:      result,
		YearMap:     rsi.YearMap(result),
		ProcessedAt: time.Now().Format(time.RFC3339),
	}, nil
}

func (s *RSIService) extractText(filename string, data []byte, password string) (string, dto.TextSource, dto.DocumentQuality, error) {
	quality := dto.DocumentQuality{Issues: []string{}}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		quality.OcrConfidence = 100
		quality.FinalScore = 100
		return utils.CollapseWhitespace(string(data)), dto.SourceText, quality, nil

	case ".pdf":
		text, err := s.pdfProcessor.ExtractText(data, password)
		if err != nil {
			log.Warn().Err(err).Str("file", filename).Msg("pdf text extraction failed")
			quality.Issues = append(quality.Issues, "pdf_text_extraction_failed")
		}
		if len(text) >= s.minTextLength {
			quality.OcrConfidence = 100
			quality.FinalScore = 100
			return text, dto.SourcePDFText, quality, nil
		}

		log.Info().Str("file", filename).Int("text_length", len(text)).Msg("pdf has little text, attempting OCR")
		ocrText, conf, err := s.ocrPDF(data, password)
		if err != nil {
			return "", dto.SourcePDFOCR, quality, err
		}
		quality.OcrConfidence = conf
		quality.FinalScore = conf
		if conf < 60 {
			quality.Issues = append(quality.Issues, "low_quality_document")
		}
		return ocrText, dto.SourcePDFOCR, quality, nil

	case ".png", ".jpg", ".jpeg":
		if s.ocr == nil {
			return "", dto.SourceImageOCR, quality, fmt.Errorf("%w: OCR is not configured", dto.ErrUnsupportedFile)
		}
		text, conf, err := s.ocr.ExtractTextAndQuality(data)
		if err != nil {
			return "", dto.SourceImageOCR, quality, fmt.Errorf("image OCR failed: %w", err)
		}
		quality.OcrConfidence = conf
		quality.FinalScore = conf
		if conf < 60 {
			quality.Issues = append(quality.Issues, "low_quality_document")
		}
		return utils.CollapseWhitespace(text), dto.SourceImageOCR, quality, nil
	}

	return "", "", quality, fmt.Errorf("%w: %s", dto.ErrUnsupportedFile, filename)
}

// ocrPDF runs OCR over every page image and returns the joined text with
// the mean page confidence.
func (s *RSIService) ocrPDF(data []byte, password string) (string, float64, error) {
	if s.ocr == nil {
		return "", 0, dto.ErrNoText
	}

	images, err := s.pdfProcessor.ExtractImages(data, password)
	if err != nil {
		return "", 0, fmt.Errorf("failed to extract images from pdf: %w", err)
	}

	var pages []string
	var totalConfidence float64
	for i, img := range images {
		pageText, conf, err := s.ocr.ExtractTextFromImage(img)
		if err != nil {
			log.Warn().Err(err).Int("page", i+1).Msg("OCR failed for page")
			continue
		}
		pages = append(pages, pageText)
		totalConfidence += conf
	}

	if len(pages) == 0 {
		return "", 0, dto.ErrNoText
	}
	return utils.JoinPages(pages), totalConfidence / float64(len(pages)), nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fh.Filename, err)
	}
	return data, nil
}
