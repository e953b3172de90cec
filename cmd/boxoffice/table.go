package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/listenupapp/filmography/internal/domain"
)

var numbers = message.NewPrinter(language.English)

// table renders aligned text tables: first column left aligned, the rest right aligned.
type table struct {
	headers []string
	rows    [][]string
}

func newTable(headers ...string) *table {
	return &table{headers: headers}
}

func (t *table) addRow(values ...string) {
	row := make([]string, len(t.headers))
	copy(row, values)
	t.rows = append(t.rows, row)
}

func (t *table) render(w io.Writer) error {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	// Header is bold; padding is computed before coloring so ANSI codes do not skew alignment.
	bold := color.New(color.Bold)
	header := make([]string, len(t.headers))
	for i, h := range t.headers {
		header[i] = bold.Sprint(pad(h, widths[i], i > 0))
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, "  ")); err != nil {
		return err
	}

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i], i > 0)
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

func pad(s string, width int, right bool) string {
	fill := strings.Repeat(" ", max(0, width-len(s)))
	if right {
		return fill + s
	}
	return s + fill
}

func formatAmount(v float64) string {
	return numbers.Sprintf("%.0f", v)
}

// formatStat prints whole numbers without decimals and leaves undefined statistics blank.
func formatStat(v domain.Stat) string {
	if !v.IsDefined() {
		return ""
	}
	f := float64(v)
	if f == float64(int64(f)) {
		return numbers.Sprintf("%.0f", f)
	}
	return numbers.Sprintf("%.2f", f)
}
