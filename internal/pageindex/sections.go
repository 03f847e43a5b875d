package pageindex

import (
	"fmt"
	"strconv"
	"strings"
)

// SectionStart is one entry of the section table: a section id and the
// printed page it starts on.
type SectionStart struct {
	Section string `mapstructure:"section" yaml:"section" json:"section"`
	Page    int    `mapstructure:"page" yaml:"page" json:"page"`
}

// SectionRange is the page span of a section. Start is inclusive, End is
// exclusive.
type SectionRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether page falls inside the range.
func (r SectionRange) Contains(page int) bool {
	return page >= r.Start && page < r.End
}

// Len returns the number of pages in the range.
func (r SectionRange) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// DefaultSections returns the section table of the Plurality book.
// "2-0" is listed twice in the source table; the later entry wins.
func DefaultSections() []SectionStart {
	return []SectionStart{
		{"1-1", 1},
		{"2-0", 6},
		{"2-0", 3},
		{"2-1", 47},
		{"2-2", 64},
		{"3-0", 88},
		{"3-1", 94},
		{"3-2", 112},
		{"3-3", 132},
		{"4-0", 162},
		{"4-1", 180},
		{"4-2", 209},
		{"4-3", 231},
		{"4-4", 253},
		{"4-5", 279},
		{"5-0", 287},
		{"5-1", 307},
		{"5-2", 319},
		{"5-3", 334},
		{"5-4", 347},
		{"5-5", 365},
		{"5-6", 379},
		{"5-7", 392},
		{"6-0", 413},
		{"6-1", 429},
		{"6-2", 446},
		{"6-3", 464},
		{"6-4", 475},
		{"7-0", 481},
		{"7-1", 512},
	}
}

// BuildSectionRanges converts an ordered section table into page ranges.
// Each section ends where the next entry starts; the last one ends at
// finalPage. The table order is trusted as given and never sorted, so a
// table out of page order yields wrong ranges. A repeated section id is
// overwritten by its later entry.
func BuildSectionRanges(entries []SectionStart, finalPage int) (map[string]SectionRange, error) {
	ranges := make(map[string]SectionRange, len(entries))
	for i, entry := range entries {
		id, err := NormalizeSection(entry.Section)
		if err != nil {
			return nil, fmt.Errorf("section table entry %d: %w", i+1, err)
		}

		end := finalPage
		if i < len(entries)-1 {
			end = entries[i+1].Page
		}
		ranges[id] = SectionRange{Start: entry.Page, End: end}
	}
	return ranges, nil
}

// NormalizeSection rewrites a section id as integers joined by "-",
// dropping leading zeros: "02-01" becomes "2-1".
func NormalizeSection(raw string) (string, error) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return "", fmt.Errorf("invalid section %q: %w", raw, err)
		}
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "-"), nil
}

// PageMask returns the set of pages covered by any of the given sections.
// Sections missing from ranges contribute nothing and are returned in
// unknown.
func PageMask(ranges map[string]SectionRange, sections []string) (mask map[int]bool, unknown []string) {
	mask = make(map[int]bool)
	for _, s := range sections {
		r, ok := ranges[s]
		if !ok {
			unknown = append(unknown, s)
			continue
		}
		for p := r.Start; p < r.End; p++ {
			mask[p] = true
		}
	}
	return mask, unknown
}
