// Package rsi turns the flattened text of a French pension statement
// (relevé de situation individuelle) into a structured career record.
//
// Every function in this package is a pure transformation of its input.
// Nothing here performs I/O or keeps state between calls.
package rsi

import "regexp"

// Rule is a named extraction pattern. Its capture groups are named so
// callers read matches by meaning instead of by index.
type Rule struct {
	Name string
	re   *regexp.Regexp
}

// Match is one occurrence of a Rule in a text.
type Match struct {
	Start  int
	End    int
	Groups map[string]string
	// spans holds the [start, end) offset of each named group.
	spans map[string][2]int
}

// NewRule compiles pattern and panics if it is invalid, like regexp.MustCompile.
func NewRule(name, pattern string) Rule {
	return Rule{Name: name, re: regexp.MustCompile(pattern)}
}

// Find returns the first match of the rule in text.
func (r Rule) Find(text string) (Match, bool) {
	loc := r.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return Match{}, false
	}
	return r.build(text, loc), true
}

// FindAll returns every non-overlapping match in document order.
func (r Rule) FindAll(text string) []Match {
	locs := r.re.FindAllStringSubmatchIndex(text, -1)
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, r.build(text, loc))
	}
	return matches
}

// MatchString reports whether text matches the rule anywhere.
func (r Rule) MatchString(text string) bool {
	return r.re.MatchString(text)
}

// Group returns the text of a named group, empty when it did not participate.
func (m Match) Group(name string) string {
	return m.Groups[name]
}

// GroupStart returns the offset of a named group, or -1.
func (m Match) GroupStart(name string) int {
	if span, ok := m.spans[name]; ok {
		return span[0]
	}
	return -1
}

func (r Rule) build(text string, loc []int) Match {
	m := Match{
		Start:  loc[0],
		End:    loc[1],
		Groups: make(map[string]string),
		spans:  make(map[string][2]int),
	}
	for i, name := range r.re.SubexpNames() {
		if name == "" || loc[2*i] < 0 {
			continue
		}
		m.Groups[name] = text[loc[2*i]:loc[2*i+1]]
		m.spans[name] = [2]int{loc[2*i], loc[2*i+1]}
	}
	return m
}
