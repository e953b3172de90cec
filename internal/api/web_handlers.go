package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/listenupapp/filmography/internal/chart"
	"github.com/listenupapp/filmography/internal/domain"
	domainerrors "github.com/listenupapp/filmography/internal/errors"
	"github.com/listenupapp/filmography/internal/genre"
)

//go:embed templates/*.html
var templates embed.FS

// Page copy.
const (
	pageTitle  = "Filmography Dataset"
	datasetURL = "https://www.kaggle.com/datasets/tmdb/tmdb-movie-metadata"
)

var numbers = message.NewPrinter(language.English)

func parseTemplates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"amount": formatAmount,
		"stat":   formatStat,
	}).ParseFS(templates, "templates/*.html"))
}

// genreOption is one entry of the genre multi-select.
type genreOption struct {
	Name     string
	Slug     string
	Color    string
	Selected bool
}

// chartView is one chart image on the page.
type chartView struct {
	Kind  chart.Kind
	Title string
	Src   string
}

// statRow is one line of the statistics table.
type statRow struct {
	Label  string
	Values []domain.Stat
}

type pageData struct {
	Title      string
	DatasetURL string
	Genres     []genreOption
	Years      domain.YearRange
	Bounds     domain.YearRange
	Dashboard  *domain.Dashboard
	Columns    []string
	Stats      []statRow
	Charts     []chartView
	CSVHref    string
	XLSXHref   string
}

type errorData struct {
	Title   string
	Status  int
	Message string
	Details any
}

// handleDashboardPage renders the dashboard for the requested selection.
// GET /
func (s *Server) handleDashboardPage(w http.ResponseWriter, r *http.Request) {
	dash, err := s.dashboardFromRequest(r)
	if err != nil {
		s.renderError(w, err)
		return
	}

	genres, err := s.services.Dashboard.Genres(r.Context())
	if err != nil {
		s.renderError(w, err)
		return
	}

	s.render(w, http.StatusOK, "dashboard.html", newPageData(dash, genres.Genres))
}

func newPageData(dash *domain.Dashboard, all []string) pageData {
	sel := dash.Selection
	palette := chart.NewPalette(sel.Genres)

	options := make([]genreOption, 0, len(all))
	for _, name := range all {
		options = append(options, genreOption{
			Name:     name,
			Slug:     genre.Slugify(name),
			Color:    palette.Hex(name),
			Selected: sel.HasGenre(name),
		})
	}

	query := selectionQuery(sel)
	charts := make([]chartView, 0, len(chart.Kinds))
	for _, kind := range chart.Kinds {
		charts = append(charts, chartView{
			Kind:  kind,
			Title: kind.Title(),
			Src:   "/charts/" + string(kind) + ".svg?" + query,
		})
	}

	return pageData{
		Title:      pageTitle,
		DatasetURL: datasetURL,
		Genres:     options,
		Years:      sel.Years,
		Bounds:     domain.YearRange{From: domain.MinYear, To: domain.MaxYear},
		Dashboard:  dash,
		Columns:    summaryColumns(dash.Summary),
		Stats:      statRows(dash.Summary),
		Charts:     charts,
		CSVHref:    "/export/data.csv?" + query,
		XLSXHref:   "/export/dashboard.xlsx?" + query,
	}
}

func summaryColumns(summary domain.Summary) []string {
	cols := make([]string, 0, len(summary))
	for _, c := range summary {
		cols = append(cols, c.Column)
	}
	return cols
}

// statRows transposes the summary into describe() layout: one row per statistic, one column per field.
func statRows(summary domain.Summary) []statRow {
	rows := []statRow{
		{Label: "count"}, {Label: "mean"}, {Label: "std"}, {Label: "min"},
		{Label: "25%"}, {Label: "50%"}, {Label: "75%"}, {Label: "max"},
	}
	for _, c := range summary {
		values := []domain.Stat{domain.Stat(c.Count), c.Mean, c.Std, c.Min, c.Q1, c.Median, c.Q3, c.Max}
		for i, v := range values {
			rows[i].Values = append(rows[i].Values, v)
		}
	}
	return rows
}

// renderError writes the plain error page for err.
func (s *Server) renderError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	data := errorData{Title: pageTitle, Message: "Something went wrong while building the dashboard."}

	var domainErr *domainerrors.Error
	if domainerrors.As(err, &domainErr) {
		status = domainErr.HTTPStatus()
		if status < http.StatusInternalServerError {
			data.Message = domainErr.Message
			data.Details = domainErr.Details
		}
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("Failed to render dashboard", "error", err)
	}

	data.Status = status
	s.render(w, status, "error.html", data)
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("Failed to execute template", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes()) //nolint:errcheck // client went away
}

// formatAmount prints gross with thousands separators.
func formatAmount(v float64) string {
	return numbers.Sprintf("%.0f", v)
}

// formatStat prints a statistic the way the describe table shows it; undefined values are blank.
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
