// Package reshape turns the raw box-office records into what the dashboard shows:
// the filtered rows, the year x genre pivot, its long-format melt, and summary statistics.
//
// Every function here is pure; the input slices are never modified.
package reshape

import (
	"github.com/listenupapp/filmography/internal/domain"
)

// Run filters records by sel and derives every table the dashboard renders.
// A data-format error aborts the whole run.
func Run(records []domain.MovieGenreRecord, sel domain.Selection) (*domain.Dashboard, error) {
	filtered, err := Filter(records, sel.Genres, sel.Years)
	if err != nil {
		return nil, err
	}

	wide := Pivot(filtered, sel.Genres)

	return &domain.Dashboard{
		Selection: sel,
		Filtered:  filtered,
		Wide:      wide,
		Long:      Melt(wide),
		Summary:   Describe(filtered),
	}, nil
}
