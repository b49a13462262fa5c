package rsi

import (
	"regexp"
	"strings"

	"github.com/Aashish23092/rsi-career-extraction/utils"
)

// Canonical keys of the point-bearing schemes.
const (
	SchemeAgircArrco = "agircArrco"
	SchemeIrcantec   = "ircantec"
	SchemeRCI        = "rci"
	SchemeAgircTB    = "agircTB"
	SchemeAgircTC    = "agircTC"
	SchemeCNRACL     = "cnracl"
	SchemeRPF        = "rpf"
	SchemeRAFP       = "rafp"
)

const maxSlugLength = 24

type schemePattern struct {
	key string
	re  *regexp.Regexp
}

// Checked in order, first match wins.
var schemePatterns = []schemePattern{
	{SchemeAgircArrco, regexp.MustCompile(`agirc\s*[-–‑/]?\s*arrco|\barrco\b`)},
	{SchemeIrcantec, regexp.MustCompile(`ircantec`)},
	{SchemeRCI, regexp.MustCompile(`\brci\b`)},
	{SchemeAgircTB, regexp.MustCompile(`agirc\s*[-–‑]?\s*(?:tranche\s*)?tb\b`)},
	{SchemeAgircTC, regexp.MustCompile(`agirc\s*[-–‑]?\s*(?:tranche\s*)?tc\b`)},
	{SchemeCNRACL, regexp.MustCompile(`cnracl`)},
	{SchemeRPF, regexp.MustCompile(`\brpf\b`)},
	{SchemeRAFP, regexp.MustCompile(`rafp`)},
}

var (
	baseRegime = regexp.MustCompile(`assurance\s+retraite`)
	nonSlug    = regexp.MustCompile(`[^a-z0-9]+`)
)

// NormalizeScheme maps a scheme label to its canonical key. ok is false when
// the label names the base quarters regime or leaves nothing to slug, and the
// points attached to it must be dropped.
func NormalizeScheme(label string) (key string, ok bool) {
	t := utils.NormalizeLabel(label)

	for _, p := range schemePatterns {
		if p.re.MatchString(t) {
			return p.key, true
		}
	}

	if baseRegime.MatchString(t) {
		return "", false
	}

	// Unknown point scheme, including generic "points ..." labels.
	slug := nonSlug.ReplaceAllString(t, "")
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}
	if slug == "" {
		return "", false
	}
	return slug, true
}

// SanitizeLabel collapses whitespace and trims stray separators around a label.
func SanitizeLabel(label string) string {
	return strings.Trim(utils.CollapseWhitespace(label), " -'’")
}
