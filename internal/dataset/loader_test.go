package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/filmography/internal/domain"
	domainerrors "github.com/listenupapp/filmography/internal/errors"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeCSV(t, `year,genre,gross
2000,Drama,100
2000,Comedy,50.5
2001,Drama,200
`)

	ds, err := Load(path, Options{})
	require.NoError(t, err)

	assert.Equal(t, []domain.MovieGenreRecord{
		{Year: 2000, Genre: "Drama", Gross: 100},
		{Year: 2000, Genre: "Comedy", Gross: 50.5},
		{Year: 2001, Genre: "Drama", Gross: 200},
	}, ds.Records)
	assert.Equal(t, []string{"Drama", "Comedy"}, ds.Genres)
	assert.Equal(t, 2000, ds.MinYear)
	assert.Equal(t, 2001, ds.MaxYear)
	assert.Equal(t, path, ds.Source)
	assert.False(t, ds.LoadedAt.IsZero())
}

func TestLoad_ColumnOrderAndExtraColumns(t *testing.T) {
	path := writeCSV(t, `genre,movies,gross,year
Horror,12,3000000,1999
Action,40,9500000,1999
`)

	ds, err := Load(path, Options{})
	require.NoError(t, err)

	assert.Equal(t, []domain.MovieGenreRecord{
		{Year: 1999, Genre: "Horror", Gross: 3000000},
		{Year: 1999, Genre: "Action", Gross: 9500000},
	}, ds.Records)
}

func TestParse_CustomDelimiter(t *testing.T) {
	input := "year;genre;gross\n2010;Animation;1.5e8\n"

	ds, err := Parse(strings.NewReader(input), "inline", Options{Delimiter: ';'})
	require.NoError(t, err)

	require.Len(t, ds.Records, 1)
	assert.Equal(t, domain.MovieGenreRecord{Year: 2010, Genre: "Animation", Gross: 1.5e8}, ds.Records[0])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), Options{})

	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrDataFormat))
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:    "missing gross column",
			input:   "year,genre\n2000,Drama\n",
			wantMsg: "missing column(s): gross",
		},
		{
			name:    "missing two columns",
			input:   "title,genre\nHeat,Crime\n",
			wantMsg: "missing column(s): year, gross",
		},
		{
			name:    "non numeric year",
			input:   "year,genre,gross\n2000,Drama,1\nlate nineties,Drama,2\n",
			wantMsg: "line 3",
		},
		{
			name:    "non numeric gross",
			input:   "year,genre,gross\n2000,Drama,lots\n",
			wantMsg: "line 2",
		},
		{
			name:    "negative gross",
			input:   "year,genre,gross\n2000,Drama,-5\n",
			wantMsg: "negative",
		},
		{
			name:    "empty genre",
			input:   "year,genre,gross\n2000,,5\n",
			wantMsg: "genre is empty",
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), "fixture.csv", Options{})

			require.Error(t, err)
			assert.True(t, domainerrors.Is(err, domainerrors.ErrDataFormat), "got %v", err)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
