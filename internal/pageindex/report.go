package pageindex

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Report headers.
const (
	noOccurrenceHeader = "Keywords\tSections"
	occurrenceHeader   = "Keywords\tPages"
	tooManyHeader      = "Keywords\tSection(by Human)\tSection(by Script)"
)

// NoOccurrenceRow is a scanned keyword that was found on no page.
type NoOccurrenceRow struct {
	Keyword  string
	Sections []string
}

// OccurrenceRow is a scanned keyword with its compressed page list.
type OccurrenceRow struct {
	Keyword string
	Pages   string
	Count   int
}

// TooManyRow is a keyword found on at least the threshold number of pages.
type TooManyRow struct {
	Keyword  string
	Sections []string
	Pages    string
	Count    int
}

// CompressPages renders ascending page numbers keeping only the first page
// of each run of consecutive pages: [5 6 7 9] becomes "5, 9".
func CompressPages(pages []int) string {
	sorted := append([]int(nil), pages...)
	sort.Ints(sorted)

	var parts []string
	for i, p := range sorted {
		if i > 0 && p == sorted[i-1]+1 {
			continue
		}
		parts = append(parts, strconv.Itoa(p))
	}
	return strings.Join(parts, ", ")
}

// NoOccurrenceRows lists scanned keywords with no occurrences in byte order.
func NoOccurrenceRows(r *Result) []NoOccurrenceRow {
	var rows []NoOccurrenceRow
	for _, k := range r.Scanned {
		if len(r.Occurrences[k]) > 0 {
			continue
		}
		rows = append(rows, NoOccurrenceRow{Keyword: k, Sections: r.Book.Annotations.Sections(k)})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Keyword < rows[j].Keyword })
	return rows
}

// OccurrenceRows lists every scanned keyword ordered case-insensitively,
// with the exact keyword as tiebreak.
func OccurrenceRows(r *Result) []OccurrenceRow {
	keywords := append([]string(nil), r.Scanned...)
	sortFolded(keywords)

	rows := make([]OccurrenceRow, 0, len(keywords))
	for _, k := range keywords {
		pages := r.Occurrences[k]
		rows = append(rows, OccurrenceRow{
			Keyword: cleanKeyword(k),
			Pages:   CompressPages(pages),
			Count:   len(pages),
		})
	}
	return rows
}

// TooManyRows lists keywords whose uncompressed occurrence count is at
// least threshold, highest count first. Ties keep the occurrence report
// order.
func TooManyRows(r *Result, threshold int) []TooManyRow {
	keywords := append([]string(nil), r.Scanned...)
	sortFolded(keywords)

	var rows []TooManyRow
	for _, k := range keywords {
		pages := r.Occurrences[k]
		if len(pages) < threshold {
			continue
		}
		rows = append(rows, TooManyRow{
			Keyword:  cleanKeyword(k),
			Sections: r.Book.Annotations.Sections(k),
			Pages:    CompressPages(pages),
			Count:    len(pages),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	return rows
}

func sortFolded(keywords []string) {
	sort.Slice(keywords, func(i, j int) bool {
		a, b := strings.ToLower(keywords[i]), strings.ToLower(keywords[j])
		if a != b {
			return a < b
		}
		return keywords[i] < keywords[j]
	})
}

// WriteReports writes the three reports into dir and returns their paths.
func WriteReports(dir string, files Files, r *Result, threshold int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	noOcc := NoOccurrenceRows(r)
	occ := OccurrenceRows(r)
	tooMany := TooManyRows(r, threshold)

	reports := []struct {
		name   string
		header string
		lines  []string
	}{
		{files.NoOccurrence, noOccurrenceHeader, noOccurrenceLines(noOcc)},
		{files.Occurrence, occurrenceHeader, occurrenceLines(occ)},
		{files.TooMany, tooManyHeader, tooManyLines(tooMany)},
	}

	paths := make([]string, 0, len(reports))
	for _, rep := range reports {
		path := filepath.Join(dir, rep.name)
		if err := writeTSV(path, rep.header, rep.lines); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func noOccurrenceLines(rows []NoOccurrenceRow) []string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = row.Keyword + "\t" + strings.Join(row.Sections, ", ")
	}
	return lines
}

func occurrenceLines(rows []OccurrenceRow) []string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = row.Keyword + "\t" + row.Pages
	}
	return lines
}

func tooManyLines(rows []TooManyRow) []string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = row.Keyword + "\t" + strings.Join(row.Sections, ", ") + "\t" + row.Pages
	}
	return lines
}

func writeTSV(path, header string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, header)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
