package pageindex

import "strings"

// Strategy names.
const (
	StrategyCaseSensitive   = "case_sensitive"
	StrategyCaseInsensitive = "case_insensitive"
	StrategyBareForm        = "bare_form"
)

// Strategy decides whether a keyword occurs on a page.
type Strategy interface {
	Name() string
	Match(p Page) bool
}

// caseSensitive matches the keyword verbatim against the case-preserved text.
// It is a plain substring test with no word boundaries, so "UN" also
// matches inside "UNESCO".
type caseSensitive struct {
	needle string
}

func (s caseSensitive) Name() string { return StrategyCaseSensitive }

func (s caseSensitive) Match(p Page) bool {
	return strings.Contains(p.Text, s.needle)
}

// caseInsensitive matches a lowercased needle against the lowercased text.
type caseInsensitive struct {
	name   string
	needle string
}

func (s caseInsensitive) Name() string { return s.name }

func (s caseInsensitive) Match(p Page) bool {
	return strings.Contains(p.Lower, s.needle)
}

// Strategies returns the ordered match strategies for keyword. The primary
// strategy is case-sensitive when the keyword is in caseSensitive and
// case-insensitive otherwise. Keywords of the form "AAA (BBB)" get a
// fallback on the bare form "AAA", which is always case-insensitive and is
// skipped when the bare form is empty or ignored.
func Strategies(keyword string, ignore, caseSensitiveSet WordSet) []Strategy {
	var out []Strategy
	if caseSensitiveSet.Has(keyword) {
		out = append(out, caseSensitive{needle: keyword})
	} else {
		out = append(out, caseInsensitive{name: StrategyCaseInsensitive, needle: strings.ToLower(keyword)})
	}

	if HasQualifier(keyword) {
		bare := StripQualifier(keyword)
		if bare != "" && !ignore.Has(bare) {
			out = append(out, caseInsensitive{name: StrategyBareForm, needle: strings.ToLower(bare)})
		}
	}
	return out
}

// Match evaluates strategies in order and returns the first one that
// matches p.
func Match(strategies []Strategy, p Page) (Strategy, bool) {
	for _, s := range strategies {
		if s.Match(p) {
			return s, true
		}
	}
	return nil, false
}
