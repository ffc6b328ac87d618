package render

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/Nao-Mk2/usedlog/internal/model"
	"github.com/fatih/color"
	"github.com/rivo/uniseg"
)

func withoutColor(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func TestTableLayout(t *testing.T) {
	withoutColor(t)
	entries := []model.SummaryEntry{
		{Name: "shirt", UseCount: 2, LastUsed: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)},
		{Name: "pants", UseCount: 1, LastUsed: time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)},
	}
	var buf bytes.Buffer
	if err := Table(&buf, entries); err != nil {
		t.Fatalf("Table: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	// top, header, (sep, row) x2, bottom
	if len(lines) != 7 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	width := utf8.RuneCountInString(lines[0])
	for i, l := range lines {
		if n := utf8.RuneCountInString(l); n != width {
			t.Fatalf("line %d width=%d, want %d: %q", i, n, width, l)
		}
	}
	if width != 30+11+30+4 {
		t.Fatalf("table width=%d", width)
	}
	for _, h := range headers {
		if !strings.Contains(lines[1], h) {
			t.Fatalf("header %q missing in %q", h, lines[1])
		}
	}
	if !strings.Contains(lines[3], "2023-01-02T00:00:00.000Z") || !strings.Contains(lines[3], "shirt") {
		t.Fatalf("first row should be shirt: %q", lines[3])
	}
	if !strings.Contains(lines[5], "pants") {
		t.Fatalf("second row should be pants: %q", lines[5])
	}
}

func TestTableEmpty(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	if err := Table(&buf, nil); err != nil {
		t.Fatalf("Table: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 3 {
		t.Fatalf("expected header-only table, got:\n%s", buf.String())
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"much-too-long-name", 8, "much-to…"},
		{"ジャケットとコート", 5, "ジャ…"},
		{"ジャケット", 10, "ジャケット"},
		{"ジャケットとコートとセーター", 28, "ジャケットとコートとセーター"},
		{"aジャケ", 4, "aジ…"},
	}
	for _, tt := range tests {
		if got := fit(tt.in, tt.n); got != tt.want {
			t.Fatalf("fit(%q,%d)=%q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestTableAlignsWideNames(t *testing.T) {
	withoutColor(t)
	entries := []model.SummaryEntry{
		{Name: "ジャケットとコート", UseCount: 1, LastUsed: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)},
		{Name: strings.Repeat("帽子", 20), UseCount: 12, LastUsed: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	var buf bytes.Buffer
	if err := Table(&buf, entries); err != nil {
		t.Fatalf("Table: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for i, l := range lines {
		if w := uniseg.StringWidth(l); w != 30+11+30+4 {
			t.Fatalf("line %d display width=%d, want %d: %q", i, w, 30+11+30+4, l)
		}
	}
}
