package rsi

import (
	"strconv"

	"github.com/Aashish23092/rsi-career-extraction/dto"
)

var (
	// TotalPointsRule matches "Total des points <n>" directly followed by "Valeur du point".
	TotalPointsRule = NewRule("total_points",
		`(?i)Total des points\s+(?P<points>\d[\d \x{00A0}\x{202F}.,]*?)\s*Valeur du point`)

	// PointValueRule matches "Valeur du point ... : <n> €".
	PointValueRule = NewRule("point_value",
		`(?i)Valeur du point.*?:\s*(?P<value>\d[\d \x{00A0}\x{202F}.,]*?)\s*€`)

	RequiredQuartersRule = NewRule("required_quarters",
		`(?i)(?P<quarters>\d+)\s*trimestres\s+sont\s+requis`)

	AcquiredQuartersRule = NewRule("acquired_quarters",
		`(?i)vous en avez (?:actuellement\s+)?enregistré\s+(?P<quarters>\d+)`)
)

// ExtractSummary reads the document wide points total and point value.
// Only the first occurrence of each is used.
func ExtractSummary(text string) dto.PointValuation {
	var v dto.PointValuation
	if m, ok := TotalPointsRule.Find(text); ok {
		v.TotalPoints = ParseAmount(m.Group("points")).Ptr()
	}
	if m, ok := PointValueRule.Find(text); ok {
		v.PointValue = ParseAmount(m.Group("value")).Ptr()
	}
	return v
}

// ExtractQuarterTotals reads the number of quarters required for a full
// pension and the number already recorded.
func ExtractQuarterTotals(text string) (required, acquired *int) {
	return findInt(RequiredQuartersRule, text, "quarters"), findInt(AcquiredQuartersRule, text, "quarters")
}

func findInt(rule Rule, text, group string) *int {
	m, ok := rule.Find(text)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(m.Group(group))
	if err != nil {
		return nil
	}
	return &n
}
