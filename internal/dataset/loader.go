// Package dataset loads the movie genre summary file and keeps it memoized for the process.
package dataset

import (
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/listenupapp/filmography/internal/domain"
	domainerrors "github.com/listenupapp/filmography/internal/errors"
)

// Column names every data file must carry.
const (
	ColumnYear  = "year"
	ColumnGenre = "genre"
	ColumnGross = "gross"
)

// RequiredColumns lists the header fields Load insists on.
var RequiredColumns = []string{ColumnYear, ColumnGenre, ColumnGross}

// Options configures how the file is parsed.
type Options struct {
	Delimiter rune
}

// setDefaults applies default values to unset options.
func (o *Options) setDefaults() {
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
}

// Load reads and validates the dataset at path.
// Any problem with the file is reported as a DATA_FORMAT error.
func Load(path string, opts Options) (*domain.Dataset, error) {
	f, err := os.Open(path) //#nosec G304 -- data path comes from configuration
	if err != nil {
		return nil, domainerrors.Wrapf(err, domainerrors.CodeDataFormat, "cannot open dataset %s", path)
	}
	defer f.Close()

	return Parse(f, path, opts)
}

// Parse reads a dataset from r. source is only used in messages and on the result.
func Parse(r io.Reader, source string, opts Options) (*domain.Dataset, error) {
	opts.setDefaults()

	df := dataframe.ReadCSV(r,
		dataframe.WithDelimiter(opts.Delimiter),
		dataframe.HasHeader(true),
		dataframe.WithTypes(map[string]series.Type{
			ColumnYear:  series.Int,
			ColumnGenre: series.String,
			ColumnGross: series.Float,
		}),
	)
	if df.Err != nil {
		return nil, domainerrors.Wrapf(df.Err, domainerrors.CodeDataFormat, "cannot parse dataset %s", source)
	}

	names := df.Names()
	var missing []string
	for _, col := range RequiredColumns {
		if !slices.Contains(names, col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, domainerrors.DataFormatf("dataset %s is missing column(s): %s", source, strings.Join(missing, ", ")).
			WithDetails(map[string]any{"missing": missing, "found": names})
	}

	records, err := recordsFromFrame(df.Select(RequiredColumns), source)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domainerrors.DataFormatf("dataset %s has no rows", source)
	}

	return domain.NewDataset(records, source, time.Now()), nil
}

// recordsFromFrame converts a validated frame row by row so errors can name the offending line.
// Line numbers count the header as line 1.
func recordsFromFrame(df dataframe.DataFrame, source string) ([]domain.MovieGenreRecord, error) {
	years := df.Col(ColumnYear)
	genres := df.Col(ColumnGenre)
	gross := df.Col(ColumnGross)

	records := make([]domain.MovieGenreRecord, 0, df.Nrow())
	for i := range df.Nrow() {
		line := i + 2

		yearElem := years.Elem(i)
		if yearElem.IsNA() {
			return nil, domainerrors.DataFormatf("%s line %d: year %q is not an integer", source, line, yearElem.String())
		}
		year, err := yearElem.Int()
		if err != nil {
			return nil, domainerrors.Wrapf(err, domainerrors.CodeDataFormat, "%s line %d: invalid year", source, line)
		}

		genreElem := genres.Elem(i)
		genre := strings.TrimSpace(genreElem.String())
		if genreElem.IsNA() || genre == "" {
			return nil, domainerrors.DataFormatf("%s line %d: genre is empty", source, line)
		}

		value := gross.Elem(i).Float()
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, domainerrors.DataFormatf("%s line %d: gross %q is not a number", source, line, gross.Elem(i).String())
		}
		if value < 0 {
			return nil, domainerrors.DataFormatf("%s line %d: gross %s is negative", source, line, fmt.Sprint(value))
		}

		records = append(records, domain.MovieGenreRecord{Year: year, Genre: genre, Gross: value})
	}

	return records, nil
}
