package rsi

import (
	"regexp"
	"strconv"

	"github.com/Aashish23092/rsi-career-extraction/dto"
)

var fourDigits = regexp.MustCompile(`\d{4}`)

// yearFold is the accumulator threaded through EmploymentsToYearMap.
type yearFold struct {
	years      map[int]dto.YearIncomeEntry
	lastRegime string
}

// EmploymentsToYearMap folds employment rows into income per year.
//
// The year is the first four digit run of EndDate, else Date, else Periode;
// rows without one are skipped. Incomes that fail to parse count as 0. A row
// without a regime inherits the last regime seen earlier in the slice. The
// activity type of a year is set when the year is first seen and is not
// revisited by later rows of the same year.
func EmploymentsToYearMap(rows []dto.EmploymentInput) map[int]dto.YearIncomeEntry {
	acc := yearFold{years: make(map[int]dto.YearIncomeEntry)}
	for _, row := range rows {
		acc = acc.add(row)
	}
	return acc.years
}

func (f yearFold) add(row dto.EmploymentInput) yearFold {
	year, ok := rowYear(row)
	if !ok {
		return f
	}

	regime := row.Regime
	if regime == "" {
		regime = f.lastRegime
	}
	if regime != "" {
		f.lastRegime = regime
	}

	entry, seen := f.years[year]
	if !seen {
		entry.ActivityType = ClassifyActivity(regime)
	}
	entry.Income += ParseAmount(row.Income).OrZero()
	f.years[year] = entry
	return f
}

func rowYear(row dto.EmploymentInput) (int, bool) {
	dateStr := row.EndDate
	if dateStr == "" {
		dateStr = row.Date
	}
	if dateStr == "" {
		dateStr = row.Periode
	}

	match := fourDigits.FindString(dateStr)
	if match == "" {
		return 0, false
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return year, true
}
