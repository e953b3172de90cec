package reshape

import (
	"cmp"
	"slices"

	"github.com/listenupapp/filmography/internal/domain"
)

// Pivot sums gross per (year, genre) over rows and lays the sums out as a
// year x genre table. Columns are the selected genres that occur in rows,
// ordered by name; rows are the years that occur in rows, newest first.
// Combinations with no records are zero.
func Pivot(rows []domain.MovieGenreRecord, genres []string) domain.WideTable {
	type key struct {
		year  int
		genre string
	}

	sums := make(map[key]float64)
	yearSet := make(map[int]struct{})
	genreSet := make(map[string]struct{})
	for _, r := range rows {
		if !slices.Contains(genres, r.Genre) {
			continue
		}
		sums[key{r.Year, r.Genre}] += r.Gross
		yearSet[r.Year] = struct{}{}
		genreSet[r.Genre] = struct{}{}
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	slices.SortFunc(years, func(a, b int) int { return cmp.Compare(b, a) })

	columns := make([]string, 0, len(genreSet))
	for g := range genreSet {
		columns = append(columns, g)
	}
	slices.Sort(columns)

	cells := make([][]float64, len(years))
	for i, y := range years {
		cells[i] = make([]float64, len(columns))
		for j, g := range columns {
			cells[i][j] = sums[key{y, g}]
		}
	}

	return domain.WideTable{Years: years, Genres: columns, Cells: cells}
}
