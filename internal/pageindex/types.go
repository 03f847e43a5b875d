package pageindex

import (
	"encoding/json"
	"sort"
	"strings"
)

// Config holds configuration options for an indexing run.
type Config struct {
	// InputDir is the directory holding the page dump, annotations and word lists
	InputDir string `mapstructure:"input_dir" yaml:"input_dir" json:"input_dir"`

	// OutputDir receives the reports; empty means InputDir
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir" json:"output_dir"`

	// PageOffset is subtracted from a dump label to get the printed page number
	PageOffset int `mapstructure:"page_offset" yaml:"page_offset" json:"page_offset"`

	// FinalPage is one past the book's last page; the last section ends here
	FinalPage int `mapstructure:"final_page" yaml:"final_page" json:"final_page"`

	// Threshold is the occurrence count at which a keyword is reported as too frequent
	Threshold int `mapstructure:"threshold" yaml:"threshold" json:"threshold"`

	// Files names the input and output files
	Files Files `mapstructure:"files" yaml:"files" json:"files"`

	// Sections is the ordered section table
	Sections []SectionStart `mapstructure:"sections" yaml:"sections" json:"sections"`
}

// Files names every file read or written by a run.
type Files struct {
	Pages         string `mapstructure:"pages" yaml:"pages" json:"pages"`
	Annotations   string `mapstructure:"annotations" yaml:"annotations" json:"annotations"`
	Ignore        string `mapstructure:"ignore" yaml:"ignore" json:"ignore"`
	CaseSensitive string `mapstructure:"case_sensitive" yaml:"case_sensitive" json:"case_sensitive"`
	NoOccurrence  string `mapstructure:"no_occurrence" yaml:"no_occurrence" json:"no_occurrence"`
	Occurrence    string `mapstructure:"occurrence" yaml:"occurrence" json:"occurrence"`
	TooMany       string `mapstructure:"too_many" yaml:"too_many" json:"too_many"`
}

// DefaultConfig returns a Config with the values used for the Plurality book.
func DefaultConfig() *Config {
	return &Config{
		InputDir:   ".",
		PageOffset: 10,
		FinalPage:  522,
		Threshold:  5,
		Files:      DefaultFiles(),
		Sections:   DefaultSections(),
	}
}

// DefaultFiles returns the fixed file names the tool reads and writes.
func DefaultFiles() Files {
	return Files{
		Pages:         "book.json",
		Annotations:   "Plurality Book Indexing Exercise - Candidates.csv",
		Ignore:        "ignore.txt",
		CaseSensitive: "case_sensitive.txt",
		NoOccurrence:  "no_occurence.txt",
		Occurrence:    "keyword_occurrence.tsv",
		TooMany:       "too_many_occurrence.tsv",
	}
}

// ResolvedOutputDir returns OutputDir, falling back to InputDir.
func (c *Config) ResolvedOutputDir() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return c.InputDir
}

// Page is one page of extracted book text.
type Page struct {
	Number int
	Text   string
	Lower  string
}

// NewPage creates a Page, caching the lowercased text.
func NewPage(number int, text string) Page {
	return Page{Number: number, Text: text, Lower: strings.ToLower(text)}
}

// Book holds everything loaded for a run. It is read-only once built.
type Book struct {
	// pages keyed by printed page number
	pages map[int]Page

	// Ranges maps a normalized section id to its page range
	Ranges map[string]SectionRange

	// Annotations are the human keyword/section assignments
	Annotations *Annotations

	Ignore        WordSet
	CaseSensitive WordSet
}

// NewBook assembles a Book from already loaded parts.
func NewBook(pages []Page, ranges map[string]SectionRange, ann *Annotations, ignore, caseSensitive WordSet) *Book {
	b := &Book{
		pages:         make(map[int]Page, len(pages)),
		Ranges:        ranges,
		Annotations:   ann,
		Ignore:        ignore,
		CaseSensitive: caseSensitive,
	}
	for _, p := range pages {
		b.pages[p.Number] = p
	}
	if b.Annotations == nil {
		b.Annotations = NewAnnotations()
	}
	return b
}

// Page returns the page with the given number.
func (b *Book) Page(number int) (Page, bool) {
	p, ok := b.pages[number]
	return p, ok
}

// PageNumbers returns all page numbers in ascending order.
func (b *Book) PageNumbers() []int {
	nums := make([]int, 0, len(b.pages))
	for n := range b.pages {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// PageCount returns the number of loaded pages.
func (b *Book) PageCount() int {
	return len(b.pages)
}

// Annotations are the keyword -> sections assignments made by annotators.
// A keyword may be assigned to several sections by different annotators.
type Annotations struct {
	sections map[string]map[string]struct{}
}

// NewAnnotations returns an empty annotation table.
func NewAnnotations() *Annotations {
	return &Annotations{sections: make(map[string]map[string]struct{})}
}

// Add records that keyword was assigned to section. An empty section
// registers the keyword without assigning it anywhere.
func (a *Annotations) Add(keyword, section string) {
	set, ok := a.sections[keyword]
	if !ok {
		set = make(map[string]struct{})
		a.sections[keyword] = set
	}
	if section != "" {
		set[section] = struct{}{}
	}
}

// Keywords returns the distinct keywords in byte order.
func (a *Annotations) Keywords() []string {
	out := make([]string, 0, len(a.sections))
	for k := range a.sections {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Sections returns the sorted sections assigned to keyword.
func (a *Annotations) Sections(keyword string) []string {
	set := a.sections[keyword]
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of distinct keywords.
func (a *Annotations) Len() int {
	return len(a.sections)
}

// WordSet is a set of keywords read from a word list.
type WordSet map[string]struct{}

// NewWordSet builds a WordSet from words.
func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Has reports whether word is in the set.
func (s WordSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Result is the outcome of a scan.
type Result struct {
	Book *Book `json:"-"`

	// Scanned lists the keywords that were not ignored, in byte order
	Scanned []string `json:"scanned"`

	// Ignored counts annotated keywords skipped because they are in the ignore set
	Ignored int `json:"ignored"`

	// Occurrences maps a scanned keyword to its ascending page numbers
	Occurrences map[string][]int `json:"occurrences"`

	// PageHits counts how many keywords matched each page
	PageHits map[int]int `json:"page_hits"`

	// StrategyHits counts matches by the strategy that produced them
	StrategyHits map[string]int `json:"strategy_hits"`

	// UnknownSections lists annotated section ids missing from the section table
	UnknownSections []string `json:"unknown_sections,omitempty"`
}

// String returns a JSON representation of the Result for debugging.
func (r *Result) String() string {
	b, _ := json.MarshalIndent(r, "", "  ")
	return string(b)
}
