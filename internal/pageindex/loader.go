package pageindex

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Annotation CSV columns.
const (
	colKeyword = 1
	colSection = 2
	minColumns = 3
)

// Load reads every input named in cfg from cfg.InputDir and assembles a
// Book. Any missing or malformed input is an error; there is no partial
// load.
func Load(ctx context.Context, cfg *Config, logger *slog.Logger) (*Book, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dir := cfg.InputDir

	ranges, err := BuildSectionRanges(cfg.Sections, cfg.FinalPage)
	if err != nil {
		return nil, err
	}

	ignore, err := LoadWordList(filepath.Join(dir, cfg.Files.Ignore))
	if err != nil {
		return nil, err
	}
	caseSensitive, err := LoadWordList(filepath.Join(dir, cfg.Files.CaseSensitive))
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pages, err := LoadPages(filepath.Join(dir, cfg.Files.Pages), cfg.PageOffset)
	if err != nil {
		return nil, err
	}

	ann, err := LoadAnnotations(filepath.Join(dir, cfg.Files.Annotations))
	if err != nil {
		return nil, err
	}

	logger.Info("inputs loaded",
		"sections", len(ranges),
		"pages", len(pages),
		"keywords", ann.Len(),
		"ignored", len(ignore),
		"case_sensitive", len(caseSensitive),
	)

	return NewBook(pages, ranges, ann, ignore, caseSensitive), nil
}

// LoadWordList reads one keyword per line. Lines are trimmed and blank
// lines are skipped.
func LoadWordList(path string) (WordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	set := make(WordSet)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		set[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return set, nil
}

// LoadPages reads the page-text dump, a JSON object mapping a page label to
// its text. Each label is shifted down by offset to get the printed page
// number.
func LoadPages(path string, offset int) ([]Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page dump: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse page dump %s: %w", path, err)
	}

	pages := make([]Page, 0, len(raw))
	for label, text := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(label))
		if err != nil {
			return nil, fmt.Errorf("invalid page label %q in %s: %w", label, path, err)
		}
		pages = append(pages, NewPage(n-offset, text))
	}
	return pages, nil
}

// LoadAnnotations reads the annotation CSV. The first row is a header.
// Each following row holds (unused, keyword, section, ...). A blank section
// registers the keyword as not yet assigned.
func LoadAnnotations(path string) (*Annotations, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open annotations: %w", err)
	}
	defer f.Close()
	return ReadAnnotations(f)
}

// ReadAnnotations parses annotation CSV rows from r.
func ReadAnnotations(r io.Reader) (*Annotations, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	ann := NewAnnotations()
	header := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read annotations: %w", err)
		}
		if header {
			header = false
			continue
		}

		line, _ := reader.FieldPos(0)
		if len(row) < minColumns {
			return nil, fmt.Errorf("annotations line %d: expected at least %d columns, got %d", line, minColumns, len(row))
		}
		if strings.TrimSpace(row[colSection]) == "" {
			ann.Add(row[colKeyword], "")
			continue
		}
		section, err := NormalizeSection(row[colSection])
		if err != nil {
			return nil, fmt.Errorf("annotations line %d: %w", line, err)
		}
		ann.Add(row[colKeyword], section)
	}
	return ann, nil
}
