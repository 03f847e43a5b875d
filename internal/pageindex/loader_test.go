package pageindex

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// writeInputs creates a complete input directory for a run.
func writeInputs(t *testing.T, dir string, files Files) {
	t.Helper()
	writeFile(t, dir, files.Pages, `{"60": "The diversity of opinion", "61": "Plurality and BERT", "5": "cover"}`)
	writeFile(t, dir, files.Annotations, "id,keyword,section\n1,Diversity,02-01\n2,BERT,2-1\n3,X,02-01\n")
	writeFile(t, dir, files.Ignore, "X\n\n")
	writeFile(t, dir, files.CaseSensitive, "BERT\n")
}

func TestLoadWordList(t *testing.T) {
	dir := t.TempDir()

	t.Run("trims and skips blank lines", func(t *testing.T) {
		path := writeFile(t, dir, "words.txt", "  BERT  \n\nROC\n UN\n")
		set, err := LoadWordList(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(set) != 3 {
			t.Errorf("expected 3 words, got %d", len(set))
		}
		for _, w := range []string{"BERT", "ROC", "UN"} {
			if !set.Has(w) {
				t.Errorf("expected %q in set", w)
			}
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadWordList(filepath.Join(dir, "missing.txt")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestLoadPages(t *testing.T) {
	dir := t.TempDir()

	t.Run("applies offset", func(t *testing.T) {
		path := writeFile(t, dir, "book.json", `{"11": "First Page", "60": "Diversity"}`)
		pages, err := LoadPages(path, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		byNumber := make(map[int]Page)
		for _, p := range pages {
			byNumber[p.Number] = p
		}
		p, ok := byNumber[1]
		if !ok {
			t.Fatal("expected page 1")
		}
		if p.Text != "First Page" || p.Lower != "first page" {
			t.Errorf("unexpected page text %q / %q", p.Text, p.Lower)
		}
		if _, ok := byNumber[50]; !ok {
			t.Error("expected page 50")
		}
	})

	t.Run("non-integer label", func(t *testing.T) {
		path := writeFile(t, dir, "bad.json", `{"iv": "Preface"}`)
		if _, err := LoadPages(path, 10); err == nil {
			t.Error("expected error for non-integer label")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeFile(t, dir, "broken.json", `{"1": `)
		if _, err := LoadPages(path, 10); err == nil {
			t.Error("expected error for malformed json")
		}
	})
}

func TestReadAnnotations(t *testing.T) {
	t.Run("collects sections per keyword", func(t *testing.T) {
		csv := "id,keyword,section,note\n" +
			"1,Diversity,02-01,a\n" +
			"2,Diversity,3-0,b\n" +
			"3,Diversity,2-1,c\n" +
			"4,\"Diversity of \"\"groups\"\"\",2-2,d\n" +
			"5,Pending,,e\n"
		ann, err := ReadAnnotations(strings.NewReader(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ann.Len() != 3 {
			t.Errorf("expected 3 keywords, got %v", ann.Keywords())
		}
		sections := ann.Sections("Diversity")
		if len(sections) != 2 || sections[0] != "2-1" || sections[1] != "3-0" {
			t.Errorf("Diversity sections = %v, want [2-1 3-0]", sections)
		}
		if len(ann.Sections(`Diversity of "groups"`)) != 1 {
			t.Error("expected quoted keyword to be kept verbatim")
		}
		if len(ann.Sections("Pending")) != 0 {
			t.Error("expected no sections for blank section cell")
		}
	})

	t.Run("header only", func(t *testing.T) {
		ann, err := ReadAnnotations(strings.NewReader("id,keyword,section\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ann.Len() != 0 {
			t.Errorf("expected no keywords, got %d", ann.Len())
		}
	})

	t.Run("short row", func(t *testing.T) {
		_, err := ReadAnnotations(strings.NewReader("id,keyword,section\n1,Diversity\n"))
		if err == nil {
			t.Error("expected error for short row")
		}
	})

	t.Run("bad section", func(t *testing.T) {
		_, err := ReadAnnotations(strings.NewReader("id,keyword,section\n1,Diversity,two-one\n"))
		if err == nil {
			t.Error("expected error for non-numeric section")
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("complete inputs", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.InputDir = t.TempDir()
		writeInputs(t, cfg.InputDir, cfg.Files)

		book, err := Load(context.Background(), cfg, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if book.PageCount() != 3 {
			t.Errorf("expected 3 pages, got %d", book.PageCount())
		}
		if _, ok := book.Page(-5); !ok {
			t.Error("expected front-matter page -5")
		}
		if !book.Ignore.Has("X") || !book.CaseSensitive.Has("BERT") {
			t.Error("word lists not loaded")
		}
		if book.Annotations.Len() != 3 {
			t.Errorf("expected 3 keywords, got %d", book.Annotations.Len())
		}
	})

	for _, missing := range []string{"pages", "annotations", "ignore", "case_sensitive"} {
		t.Run("missing "+missing, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.InputDir = t.TempDir()
			writeInputs(t, cfg.InputDir, cfg.Files)

			name := map[string]string{
				"pages":          cfg.Files.Pages,
				"annotations":    cfg.Files.Annotations,
				"ignore":         cfg.Files.Ignore,
				"case_sensitive": cfg.Files.CaseSensitive,
			}[missing]
			if err := os.Remove(filepath.Join(cfg.InputDir, name)); err != nil {
				t.Fatal(err)
			}

			if _, err := Load(context.Background(), cfg, nil); err == nil {
				t.Errorf("expected error when %s is missing", name)
			}
		})
	}

	t.Run("cancelled context", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.InputDir = t.TempDir()
		writeInputs(t, cfg.InputDir, cfg.Files)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := Load(ctx, cfg, nil); err == nil {
			t.Error("expected error for cancelled context")
		}
	})
}
