package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/listenupapp/filmography/internal/domain"
	"github.com/listenupapp/filmography/internal/export"
	"github.com/listenupapp/filmography/internal/http/response"
)

// Download file names.
const (
	csvFilename  = "movies_genres_long.csv"
	xlsxFilename = "filmography_dashboard.xlsx"
)

// handleExportCSV downloads the long table of the selection.
// GET /export/data.csv
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	s.export(w, r, export.CSVContentType, csvFilename, func(w io.Writer, dash *domain.Dashboard) error {
		return export.WriteCSV(w, dash.Long)
	})
}

// handleExportXLSX downloads a workbook with the pivot table, the summary and the long table.
// GET /export/dashboard.xlsx
func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	s.export(w, r, export.XLSXContentType, xlsxFilename, export.WriteXLSX)
}

func (s *Server) export(w http.ResponseWriter, r *http.Request, contentType, filename string, write func(io.Writer, *domain.Dashboard) error) {
	dash, err := s.dashboardFromRequest(r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	var buf bytes.Buffer
	if err := write(&buf, dash); err != nil {
		s.logger.Error("Failed to write export", "file", filename, "error", err)
		response.HandleError(w, err, s.logger)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck // client went away
}
