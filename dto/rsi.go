package dto

// ActivityType is the kind of professional activity a year of income belongs to.
type ActivityType string

const (
	ActivityPrivate ActivityType = "private"
	ActivityLiberal ActivityType = "liberal"
	ActivityMSA     ActivityType = "msa"
	ActivityPublic  ActivityType = "public"
)

// YearRecord holds the quarters and per-scheme points found for one calendar year.
type YearRecord struct {
	Year           int                `json:"year"`
	Quarters       int                `json:"quarters"`
	PointsByScheme map[string]float64 `json:"pointsByScheme"`
}

// PointValuation is the document-wide points summary. Nil fields were not found.
type PointValuation struct {
	TotalPoints *float64 `json:"totalPoints,omitempty"`
	PointValue  *float64 `json:"pointValue,omitempty"`
}

// EmploymentRecord is one employment row as it appears in the statement.
// Dates keep their DD/MM/YYYY textual form.
type EmploymentRecord struct {
	Employer  string `json:"employer"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	IncomeRaw string `json:"income"`
	RegimeRaw string `json:"regime"`
}

// RSIResult is the structured career record extracted from a statement.
type RSIResult struct {
	RequiredQuarters *int               `json:"requiredQuarters,omitempty"`
	AcquiredQuarters *int               `json:"acquiredQuarters,omitempty"`
	Years            []YearRecord       `json:"years"`
	Employments      []EmploymentRecord `json:"employments"`
	AgircArrco       PointValuation     `json:"agircArrco"`
}

// EmploymentInput is an employment-like row accepted by the year aggregation.
// The year is taken from EndDate, else Date, else Periode.
type EmploymentInput struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Date      string `json:"date,omitempty"`
	Periode   string `json:"periode,omitempty"`
	Income    string `json:"income,omitempty"`
	Regime    string `json:"regime,omitempty"`
}

// YearIncomeEntry is the accumulated income of one year and its activity type.
type YearIncomeEntry struct {
	Income       float64      `json:"income"`
	ActivityType ActivityType `json:"activityType"`
}

// ToInput converts an extracted row into aggregation input.
func (e EmploymentRecord) ToInput() EmploymentInput {
	return EmploymentInput{
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		Income:    e.IncomeRaw,
		Regime:    e.RegimeRaw,
	}
}
