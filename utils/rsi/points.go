package rsi

// PointsRule matches "<label> <number> pts". The label is a run of letters,
// apostrophes, hyphens and spaces; the number may use space or dot
// thousands separators and a decimal comma.
var PointsRule = NewRule("points",
	`(?i)(?P<label>[\p{L}'’\- ]+?)\s*(?P<points>\d+(?:[ \x{00A0}\x{202F}.]\d{3})*(?:,\d+)?)\s*pts\b`)

// ExtractPoints sums the points of every scheme inside each year block.
// Labels that do not normalise to a scheme key are dropped, and so are
// numbers that fail to parse.
func ExtractPoints(text string, blocks []YearBlock) map[int]map[string]float64 {
	out := make(map[int]map[string]float64, len(blocks))
	for _, b := range blocks {
		bucket := out[b.Year]
		if bucket == nil {
			bucket = make(map[string]float64)
			out[b.Year] = bucket
		}
		for _, m := range PointsRule.FindAll(b.Text(text)) {
			key, ok := NormalizeScheme(SanitizeLabel(m.Group("label")))
			if !ok {
				continue
			}
			pts, ok := ParseAmount(m.Group("points")).Float()
			if !ok {
				continue
			}
			bucket[key] += pts
		}
	}
	return out
}
