package rsi

import "strconv"

// YearAnchorRule matches "<year> <quarters> trim.", e.g. "2024 4 trim.".
var YearAnchorRule = NewRule("year_anchor",
	`(?i)(?:^|\s)(?P<year>(?:19|20)\d{2})\s+(?P<quarters>\d+)\s*trim\.`)

// YearBlock is the slice of text attributed to one calendar year.
type YearBlock struct {
	Year     int
	Quarters int
	Start    int
	End      int
}

// SegmentYears finds every year anchor and returns one block per distinct
// year, in order of first occurrence. A block runs from its anchor to the
// first anchor of the next distinct year, or to the end of the text.
// A repeated year keeps the quarters and position of its first anchor.
func SegmentYears(text string) []YearBlock {
	var blocks []YearBlock
	seen := make(map[int]bool)

	for _, m := range YearAnchorRule.FindAll(text) {
		year, err := strconv.Atoi(m.Group("year"))
		if err != nil || seen[year] {
			continue
		}
		quarters, err := strconv.Atoi(m.Group("quarters"))
		if err != nil {
			continue
		}
		seen[year] = true
		blocks = append(blocks, YearBlock{
			Year:     year,
			Quarters: quarters,
			Start:    m.GroupStart("year"),
		})
	}

	for i := range blocks {
		if i+1 < len(blocks) {
			blocks[i].End = blocks[i+1].Start
		} else {
			blocks[i].End = len(text)
		}
	}
	return blocks
}

// Text returns the block's slice of text.
func (b YearBlock) Text(text string) string {
	return text[b.Start:b.End]
}
