package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Nao-Mk2/usedlog/internal/model"
	"github.com/fatih/color"
	"github.com/rivo/uniseg"
)

// Column widths are display columns and include one space of padding on each side.
var (
	headers   = []string{"Last Used", "Use Count", "Name"}
	colWidths = []int{30, 11, 30}
)

// TimeLayout is how LastUsed is shown in the table.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Table writes the summary as a bordered table. The header is colourised
// unless color.NoColor is set.
func Table(w io.Writer, entries []model.SummaryEntry) error {
	head := color.New(color.FgRed)

	var b strings.Builder
	b.WriteString(border('┌', '┬', '┐'))
	b.WriteString(row(headers, head.Sprint))
	for _, e := range entries {
		b.WriteString(border('├', '┼', '┤'))
		b.WriteString(row([]string{
			e.LastUsed.UTC().Format(TimeLayout),
			strconv.Itoa(e.UseCount),
			e.Name,
		}, fmt.Sprint))
	}
	b.WriteString(border('└', '┴', '┘'))

	_, err := io.WriteString(w, b.String())
	return err
}

func border(left, mid, right rune) string {
	var b strings.Builder
	b.WriteRune(left)
	for i, width := range colWidths {
		if i > 0 {
			b.WriteRune(mid)
		}
		b.WriteString(strings.Repeat("─", width))
	}
	b.WriteRune(right)
	b.WriteByte('\n')
	return b.String()
}

func row(cells []string, style func(...any) string) string {
	var b strings.Builder
	b.WriteRune('│')
	for i, width := range colWidths {
		if i > 0 {
			b.WriteRune('│')
		}
		text := fit(cells[i], width-2)
		pad := width - 2 - uniseg.StringWidth(text)
		b.WriteByte(' ')
		b.WriteString(style(text))
		b.WriteString(strings.Repeat(" ", pad+1))
	}
	b.WriteString("│\n")
	return b.String()
}

// fit truncates s to at most n display columns, marking the cut with an
// ellipsis. Wide characters count as two columns.
func fit(s string, n int) string {
	if uniseg.StringWidth(s) <= n {
		return s
	}
	var (
		b     strings.Builder
		used  int
		state = -1
	)
	rest := s
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > n-1 {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	b.WriteString("…")
	return b.String()
}
