// Package export writes the current dashboard selection to downloadable files.
package export

import (
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/listenupapp/filmography/internal/domain"
	domainerrors "github.com/listenupapp/filmography/internal/errors"
)

// MIME types of the exports.
const (
	CSVContentType  = "text/csv; charset=utf-8"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// WriteCSV writes the long table as year,genre,gross rows with a header.
func WriteCSV(w io.Writer, long domain.LongTable) error {
	years := make([]int, len(long))
	genres := make([]string, len(long))
	gross := make([]float64, len(long))
	for i, r := range long {
		years[i] = r.Year
		genres[i] = r.Genre
		gross[i] = r.Gross
	}

	df := dataframe.New(
		series.New(years, series.Int, "year"),
		series.New(genres, series.String, "genre"),
		series.New(gross, series.Float, "gross"),
	)
	if df.Err != nil {
		return domainerrors.Wrap(df.Err, domainerrors.CodeInternal, "build export frame")
	}

	if err := df.WriteCSV(w); err != nil {
		return domainerrors.Wrap(err, domainerrors.CodeInternal, "write csv export")
	}
	return nil
}
