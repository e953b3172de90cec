package reshape

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/listenupapp/filmography/internal/domain"
	domainerrors "github.com/listenupapp/filmography/internal/errors"
)

// Frame column names.
const (
	colYear  = "year"
	colGenre = "genre"
	colGross = "gross"
)

// Filter returns the records whose genre is in genres and whose year lies in years,
// keeping their original order. An empty result is not an error.
func Filter(records []domain.MovieGenreRecord, genres []string, years domain.YearRange) ([]domain.MovieGenreRecord, error) {
	if len(records) == 0 || len(genres) == 0 || years.From > years.To {
		return []domain.MovieGenreRecord{}, nil
	}

	df := toFrame(records).FilterAggregation(dataframe.And,
		dataframe.F{Colname: colGenre, Comparator: series.In, Comparando: genres},
		dataframe.F{Colname: colYear, Comparator: series.GreaterEq, Comparando: years.From},
		dataframe.F{Colname: colYear, Comparator: series.LessEq, Comparando: years.To},
	)
	if df.Err != nil {
		return nil, domainerrors.Wrap(df.Err, domainerrors.CodeDataFormat, "filter records")
	}

	return fromFrame(df)
}

// toFrame lays records out column-wise.
func toFrame(records []domain.MovieGenreRecord) dataframe.DataFrame {
	years := make([]int, len(records))
	genres := make([]string, len(records))
	gross := make([]float64, len(records))
	for i, r := range records {
		years[i] = r.Year
		genres[i] = r.Genre
		gross[i] = r.Gross
	}

	return dataframe.New(
		series.New(years, series.Int, colYear),
		series.New(genres, series.String, colGenre),
		series.New(gross, series.Float, colGross),
	)
}

// fromFrame is the inverse of toFrame.
func fromFrame(df dataframe.DataFrame) ([]domain.MovieGenreRecord, error) {
	out := make([]domain.MovieGenreRecord, 0, df.Nrow())
	if df.Nrow() == 0 {
		return out, nil
	}

	years := df.Col(colYear)
	genres := df.Col(colGenre)
	gross := df.Col(colGross)

	for i := range df.Nrow() {
		year, err := years.Elem(i).Int()
		if err != nil {
			return nil, domainerrors.Wrapf(err, domainerrors.CodeDataFormat, "row %d: year", i)
		}
		out = append(out, domain.MovieGenreRecord{
			Year:  year,
			Genre: genres.Elem(i).String(),
			Gross: gross.Elem(i).Float(),
		})
	}

	return out, nil
}
