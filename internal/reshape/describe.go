package reshape

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/listenupapp/filmography/internal/domain"
)

// Describe computes descriptive statistics for the numeric columns of rows.
// The standard deviation is the sample one and quartiles interpolate linearly
// between order statistics. Statistics that need more rows than are available are NaN.
func Describe(rows []domain.MovieGenreRecord) domain.Summary {
	years := make([]float64, len(rows))
	gross := make([]float64, len(rows))
	for i, r := range rows {
		years[i] = float64(r.Year)
		gross[i] = r.Gross
	}

	return domain.Summary{
		describeColumn(colYear, years),
		describeColumn(colGross, gross),
	}
}

func describeColumn(name string, values []float64) domain.ColumnSummary {
	nan := domain.Stat(math.NaN())
	s := domain.ColumnSummary{
		Column: name,
		Count:  len(values),
		Mean:   nan,
		Std:    nan,
		Min:    nan,
		Q1:     nan,
		Median: nan,
		Q3:     nan,
		Max:    nan,
	}
	if len(values) == 0 {
		return s
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	s.Mean = domain.Stat(stat.Mean(sorted, nil))
	if len(sorted) > 1 {
		s.Std = domain.Stat(stat.StdDev(sorted, nil))
	}
	s.Min = domain.Stat(floats.Min(sorted))
	s.Max = domain.Stat(floats.Max(sorted))
	s.Q1 = domain.Stat(quantile(sorted, 0.25))
	s.Median = domain.Stat(quantile(sorted, 0.5))
	s.Q3 = domain.Stat(quantile(sorted, 0.75))

	return s
}

// quantile returns the p-quantile of sorted, interpolating linearly between
// the two nearest ranks. sorted must be non-empty and ascending.
func quantile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}
