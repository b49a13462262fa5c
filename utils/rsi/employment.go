package rsi

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Aashish23092/rsi-career-extraction/dto"
	"github.com/Aashish23092/rsi-career-extraction/utils"
)

var (
	// EmploymentRowRule matches the fixed columns of an employment row:
	// start date, end date and income with an optional euro sign.
	EmploymentRowRule = NewRule("employment_row",
		`(?P<start>\d{2}/\d{2}/\d{4})\s+(?P<end>\d{2}/\d{2}/\d{4})\s+(?P<income>\d+(?:[ \x{00A0}\x{202F}.]\d{3})*(?:,\d{1,2})?)\s*€?`)

	// TrailingMarkerRule matches text that closes the employment table.
	TrailingMarkerRule = NewRule("trailing_marker",
		`(?i)\b(?:total des|page\s+\d+(?:\s*/\s*\d+)?|ce relev|les informations|sous r[ée]serve|important\s*:|r[ée]capitulatif)`)

	wordRule = NewRule("word", `[\p{L}\d]+`)

	validDate = regexp.MustCompile(`^(0[1-9]|[12]\d|3[01])/(0[1-9]|1[0-2])/\d{4}$`)
)

const maxEmployerWords = 8

// Words that end a regime label. Text after the last one belongs to the
// next row's employer.
var regimeWords = map[string]bool{
	"agirc": true, "arrco": true, "ircantec": true, "rci": true, "msa": true,
	"cnav": true, "cnavpl": true, "carsat": true, "urssaf": true, "ssi": true,
	"cnracl": true, "rafp": true, "rpf": true, "cipav": true, "carmf": true,
	"régime": true, "regime": true, "régimes": true, "regimes": true,
	"général": true, "general": true, "agricole": true, "agricoles": true,
	"fonction": true, "publique": true, "territoriale": true, "hospitalière": true,
	"hospitaliere": true, "état": true, "etat": true, "civile": true, "civiles": true,
	"militaire": true, "militaires": true, "indépendants": true, "independants": true,
	"libéral": true, "liberal": true, "libérale": true, "liberale": true,
}

func isRegimeWord(w string) bool {
	w = utils.NormalizeLabel(w)
	return regimeWords[w] || strings.HasPrefix(w, "salari")
}

// ExtractEmployments finds the employment rows of the statement in document
// order. A row is "<employer> <start> <end> <income>[€] <regime>". The regime
// runs until the next row, a trailing marker or the end of the text; when it
// is followed by another row, the words after the last known regime word are
// that row's employer. Rows whose start date is not a valid DD/MM/YYYY date
// are dropped.
func ExtractEmployments(text string) []dto.EmploymentRecord {
	anchors := EmploymentRowRule.FindAll(text)

	var rows []dto.EmploymentRecord
	prevEnd := 0
	var pending *dto.EmploymentRecord

	for i, m := range anchors {
		gap := text[prevEnd:m.Start]
		regime, employerSrc := splitGap(gap, pending != nil)
		if pending != nil {
			pending.RegimeRaw = regime
			rows = append(rows, *pending)
			pending = nil
		}
		prevEnd = m.End

		if !validDate.MatchString(m.Group("start")) {
			continue
		}
		pending = &dto.EmploymentRecord{
			Employer:  trailingName(employerSrc),
			StartDate: m.Group("start"),
			EndDate:   m.Group("end"),
			IncomeRaw: sanitize(m.Group("income")),
		}

		if i == len(anchors)-1 {
			pending.RegimeRaw = lastRegime(text[prevEnd:])
			rows = append(rows, *pending)
			pending = nil
		}
	}
	return rows
}

// splitGap divides the text between two rows into the previous row's regime
// and the text the next row's employer is read from.
func splitGap(gap string, hasPrev bool) (regime, employerSrc string) {
	head, tail := gap, ""
	if markers := TrailingMarkerRule.FindAll(gap); len(markers) > 0 {
		head = gap[:markers[0].Start]
		tail = gap[markers[len(markers)-1].End:]
	}

	cut := lastRegimeWordEnd(head)
	if hasPrev && cut > 0 {
		regime = sanitize(head[:cut])
	}

	if tail != "" {
		if c := lastRegimeWordEnd(tail); c > 0 {
			tail = tail[c:]
		}
		return regime, tail
	}
	if cut > 0 {
		return regime, head[cut:]
	}
	return regime, head
}

// lastRegime reads the regime of the final row.
func lastRegime(rest string) string {
	if m, ok := TrailingMarkerRule.Find(rest); ok {
		rest = rest[:m.Start]
	}
	if cut := lastRegimeWordEnd(rest); cut > 0 {
		rest = rest[:cut]
	}
	return sanitize(rest)
}

func lastRegimeWordEnd(s string) int {
	end := 0
	for _, w := range wordRule.FindAll(s) {
		if isRegimeWord(spanText(s, w)) {
			end = w.End
		}
	}
	return end
}

func spanText(s string, m Match) string {
	return s[m.Start:m.End]
}

// trailingName keeps the last words of s that can be part of an employer
// name, stopping at anything holding a digit or ending a label.
func trailingName(s string) string {
	fields := strings.Fields(s)
	start := len(fields)
	for start > 0 && len(fields)-start < maxEmployerWords {
		f := fields[start-1]
		if strings.IndexFunc(f, unicode.IsDigit) >= 0 || strings.HasSuffix(f, ":") {
			break
		}
		start--
	}
	return sanitize(strings.Join(fields[start:], " "))
}

func sanitize(s string) string {
	return strings.Trim(utils.CollapseWhitespace(s), " -–|€")
}
