package reshape

import "github.com/listenupapp/filmography/internal/domain"

// Melt flattens a WideTable into one row per cell, zero cells included.
// Rows run down each genre column in turn, so a genre's years stay together.
func Melt(wide domain.WideTable) domain.LongTable {
	long := make(domain.LongTable, 0, len(wide.Years)*len(wide.Genres))
	for j, genre := range wide.Genres {
		for i, year := range wide.Years {
			long = append(long, domain.LongRow{
				Year:  year,
				Genre: genre,
				Gross: wide.Cells[i][j],
			})
		}
	}
	return long
}
