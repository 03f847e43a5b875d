package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/itsmostafa/bookindex/internal/pageindex"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{45210, "45,210"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.input); got != tt.expected {
			t.Errorf("formatNumber(%d) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %q, %v", f, err)
	}
	if f, err := ParseFormat("yaml"); err != nil || f != FormatYAML {
		t.Errorf("ParseFormat(yaml) = %q, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
}

func TestEncode(t *testing.T) {
	cfg := pageindex.DefaultConfig()

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Encode(&buf, FormatYAML, cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "page_offset: 10") {
			t.Errorf("expected page_offset in yaml, got:\n%s", out)
		}
		if !strings.Contains(out, "final_page: 522") {
			t.Errorf("expected final_page in yaml, got:\n%s", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Encode(&buf, FormatJSON, cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var parsed pageindex.Config
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if parsed.Threshold != 5 {
			t.Errorf("expected Threshold=5, got %d", parsed.Threshold)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if err := Encode(&bytes.Buffer{}, Format("xml"), cfg); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestFormatSummary(t *testing.T) {
	ann := pageindex.NewAnnotations()
	ann.Add("Diversity", "2-1")
	ann.Add("Missing", "2-1")
	book := pageindex.NewBook([]pageindex.Page{pageindex.NewPage(50, "diversity")}, nil, ann, nil, nil)
	r := &pageindex.Result{
		Book:            book,
		Scanned:         []string{"Diversity", "Missing"},
		Occurrences:     map[string][]int{"Diversity": {50}, "Missing": {}},
		PageHits:        map[int]int{50: 1},
		StrategyHits:    map[string]int{pageindex.StrategyCaseInsensitive: 1},
		UnknownSections: []string{"9-9"},
	}

	var buf bytes.Buffer
	FormatSummary(&buf, r, 5, []string{"out/keyword_occurrence.tsv"})
	out := buf.String()

	for _, want := range []string{"Index Complete", "Scanned:", "50 (1)", "9-9", "out/keyword_occurrence.tsv"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in summary, got:\n%s", want, out)
		}
	}
}
