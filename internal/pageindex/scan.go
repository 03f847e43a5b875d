package pageindex

import (
	"log/slog"
	"sort"
)

// Scan finds, for every keyword that is not ignored, the pages inside its
// annotated sections where the keyword occurs. Pages outside those sections
// are never checked. A keyword without known sections gets no pages.
func Scan(book *Book, logger *slog.Logger) *Result {
	if logger == nil {
		logger = slog.Default()
	}

	result := &Result{
		Book:         book,
		Occurrences:  make(map[string][]int),
		PageHits:     make(map[int]int),
		StrategyHits: make(map[string]int),
	}
	numbers := book.PageNumbers()
	unknown := make(map[string]struct{})

	for _, keyword := range book.Annotations.Keywords() {
		if book.Ignore.Has(keyword) {
			result.Ignored++
			continue
		}
		result.Scanned = append(result.Scanned, keyword)

		mask, missing := PageMask(book.Ranges, book.Annotations.Sections(keyword))
		for _, s := range missing {
			if _, seen := unknown[s]; !seen {
				logger.Warn("section not in section table", "section", s, "keyword", keyword)
			}
			unknown[s] = struct{}{}
		}

		strategies := Strategies(keyword, book.Ignore, book.CaseSensitive)
		pages := []int{}
		for _, n := range numbers {
			if !mask[n] {
				continue
			}
			page, _ := book.Page(n)
			s, ok := Match(strategies, page)
			if !ok {
				continue
			}
			pages = append(pages, n)
			result.PageHits[n]++
			result.StrategyHits[s.Name()]++
		}
		result.Occurrences[keyword] = pages

		logger.Debug("keyword scanned", "keyword", keyword, "masked_pages", len(mask), "occurrences", len(pages))
	}

	for s := range unknown {
		result.UnknownSections = append(result.UnknownSections, s)
	}
	sort.Strings(result.UnknownSections)

	return result
}

// BusiestPages returns up to n pages with the most keyword matches, most
// matches first and lower page numbers first on ties.
func (r *Result) BusiestPages(n int) []PageCount {
	out := make([]PageCount, 0, len(r.PageHits))
	for page, hits := range r.PageHits {
		out = append(out, PageCount{Page: page, Hits: hits})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hits != out[j].Hits {
			return out[i].Hits > out[j].Hits
		}
		return out[i].Page < out[j].Page
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// PageCount pairs a page with its keyword match count.
type PageCount struct {
	Page int
	Hits int
}
