// Package domain defines the box-office records and the tables derived from them.
package domain

import (
	"encoding/json"
	"math"
	"slices"
	"strings"
	"time"
)

// Dataset year bounds exposed by the dashboard's range control.
const (
	MinYear = 1986
	MaxYear = 2016

	DefaultFromYear = 2000
	DefaultToYear   = 2016
)

// DefaultGenres is the genre selection shown before the user touches the control.
var DefaultGenres = []string{"Action", "Adventure", "Biography", "Comedy", "Drama", "Horror"}

// MovieGenreRecord is one row of the pre-aggregated dataset.
type MovieGenreRecord struct {
	Year  int     `json:"year"`
	Genre string  `json:"genre"`
	Gross float64 `json:"gross"`
}

// YearRange is an inclusive range of years. From > To is legal and matches nothing.
type YearRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Contains reports whether year lies within the range.
func (r YearRange) Contains(year int) bool {
	return r.From <= year && year <= r.To
}

// DefaultYearRange returns the range preselected on the dashboard.
func DefaultYearRange() YearRange {
	return YearRange{From: DefaultFromYear, To: DefaultToYear}
}

// Selection is the state of the dashboard controls.
type Selection struct {
	Genres []string  `json:"genres"`
	Years  YearRange `json:"years"`
}

// NewSelection builds a selection, trimming blanks and dropping duplicate genres
// while keeping the order in which they were picked.
func NewSelection(genres []string, years YearRange) Selection {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" || slices.Contains(out, g) {
			continue
		}
		out = append(out, g)
	}
	return Selection{Genres: out, Years: years}
}

// HasGenre reports whether genre is part of the selection.
func (s Selection) HasGenre(genre string) bool {
	return slices.Contains(s.Genres, genre)
}

// Dataset is the immutable, process-wide collection loaded from the source file.
type Dataset struct {
	Records  []MovieGenreRecord
	Genres   []string // distinct, in first-appearance order
	MinYear  int
	MaxYear  int
	Source   string
	LoadedAt time.Time
}

// NewDataset indexes records into a Dataset.
func NewDataset(records []MovieGenreRecord, source string, loadedAt time.Time) *Dataset {
	ds := &Dataset{
		Records:  records,
		Genres:   make([]string, 0),
		Source:   source,
		LoadedAt: loadedAt,
	}

	seen := make(map[string]struct{})
	for i, r := range records {
		if _, ok := seen[r.Genre]; !ok {
			seen[r.Genre] = struct{}{}
			ds.Genres = append(ds.Genres, r.Genre)
		}
		if i == 0 || r.Year < ds.MinYear {
			ds.MinYear = r.Year
		}
		if i == 0 || r.Year > ds.MaxYear {
			ds.MaxYear = r.Year
		}
	}

	return ds
}

// HasGenre reports whether any record carries genre.
func (d *Dataset) HasGenre(genre string) bool {
	return slices.Contains(d.Genres, genre)
}

// WideTable is the year x genre matrix of summed gross.
// Rows are ordered by year descending; Cells[i][j] belongs to Years[i] and Genres[j].
type WideTable struct {
	Years  []int       `json:"years"`
	Genres []string    `json:"genres"`
	Cells  [][]float64 `json:"cells"`
}

// Value returns the cell for (year, genre) and whether the pair exists in the table.
func (t WideTable) Value(year int, genre string) (float64, bool) {
	i := slices.Index(t.Years, year)
	j := slices.Index(t.Genres, genre)
	if i < 0 || j < 0 {
		return 0, false
	}
	return t.Cells[i][j], true
}

// IsEmpty reports whether the table has no rows.
func (t WideTable) IsEmpty() bool {
	return len(t.Years) == 0
}

// LongRow is one (year, genre, gross) observation.
type LongRow struct {
	Year  int     `json:"year"`
	Genre string  `json:"genre"`
	Gross float64 `json:"gross"`
}

// LongTable is the long-format rendition of a WideTable, used by every chart.
type LongTable []LongRow

// Genres returns the distinct genres in first-appearance order.
func (t LongTable) Genres() []string {
	out := make([]string, 0)
	for _, r := range t {
		if !slices.Contains(out, r.Genre) {
			out = append(out, r.Genre)
		}
	}
	return out
}

// TotalsByGenre sums gross per genre.
func (t LongTable) TotalsByGenre() map[string]float64 {
	totals := make(map[string]float64)
	for _, r := range t {
		totals[r.Genre] += r.Gross
	}
	return totals
}

// Stat is a descriptive statistic. NaN marks an undefined value and encodes as JSON null.
type Stat float64

// MarshalJSON implements json.Marshaler.
func (s Stat) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// IsDefined reports whether the statistic has a value.
func (s Stat) IsDefined() bool {
	return !math.IsNaN(float64(s))
}

// ColumnSummary holds descriptive statistics for one numeric column.
type ColumnSummary struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
	Mean   Stat   `json:"mean"`
	Std    Stat   `json:"std"`
	Min    Stat   `json:"min"`
	Q1     Stat   `json:"q1"`
	Median Stat   `json:"median"`
	Q3     Stat   `json:"q3"`
	Max    Stat   `json:"max"`
}

// Summary is the describe table for the filtered rows, one entry per numeric column.
type Summary []ColumnSummary

// Column returns the summary for name.
func (s Summary) Column(name string) (ColumnSummary, bool) {
	for _, c := range s {
		if c.Column == name {
			return c, true
		}
	}
	return ColumnSummary{}, false
}

// Dashboard is everything the page renders for one Selection.
type Dashboard struct {
	Selection Selection          `json:"selection"`
	Filtered  []MovieGenreRecord `json:"filtered"`
	Wide      WideTable          `json:"wide"`
	Long      LongTable          `json:"long"`
	Summary   Summary            `json:"summary"`
}
