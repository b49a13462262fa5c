package rsi

import (
	"fmt"
	"strings"

	"github.com/Aashish23092/rsi-career-extraction/dto"
)

// Parse extracts the career record from whitespace collapsed statement text.
// Missing sections leave their fields nil or empty; only blank input is an
// error.
func Parse(text string) (*dto.RSIResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: statement text is empty", dto.ErrInvalidInput)
	}

	required, acquired := ExtractQuarterTotals(text)
	result := &dto.RSIResult{
		RequiredQuarters: required,
		AcquiredQuarters: acquired,
		Years:            BuildYears(text),
		Employments:      ExtractEmployments(text),
		AgircArrco:       ExtractSummary(text),
	}
	if result.Employments == nil {
		result.Employments = []dto.EmploymentRecord{}
	}
	return result, nil
}

// BuildYears segments text into year blocks and attaches their points.
func BuildYears(text string) []dto.YearRecord {
	blocks := SegmentYears(text)
	points := ExtractPoints(text, blocks)

	years := make([]dto.YearRecord, 0, len(blocks))
	for _, b := range blocks {
		years = append(years, dto.YearRecord{
			Year:           b.Year,
			Quarters:       b.Quarters,
			PointsByScheme: points[b.Year],
		})
	}
	return years
}

// YearMap folds the extracted employment rows of result into income per year.
func YearMap(result *dto.RSIResult) map[int]dto.YearIncomeEntry {
	rows := make([]dto.EmploymentInput, 0, len(result.Employments))
	for _, e := range result.Employments {
		rows = append(rows, e.ToInput())
	}
	return EmploymentsToYearMap(rows)
}
