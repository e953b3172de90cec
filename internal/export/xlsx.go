package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/listenupapp/filmography/internal/domain"
	domainerrors "github.com/listenupapp/filmography/internal/errors"
)

// Workbook sheet names, in tab order.
const (
	SheetPivot   = "Pivot"
	SheetSummary = "Summary"
	SheetData    = "Data"
)

// summaryRows are the describe statistics in display order.
var summaryRows = []struct {
	label string
	value func(domain.ColumnSummary) any
}{
	{"count", func(c domain.ColumnSummary) any { return c.Count }},
	{"mean", func(c domain.ColumnSummary) any { return statValue(c.Mean) }},
	{"std", func(c domain.ColumnSummary) any { return statValue(c.Std) }},
	{"min", func(c domain.ColumnSummary) any { return statValue(c.Min) }},
	{"25%", func(c domain.ColumnSummary) any { return statValue(c.Q1) }},
	{"50%", func(c domain.ColumnSummary) any { return statValue(c.Median) }},
	{"75%", func(c domain.ColumnSummary) any { return statValue(c.Q3) }},
	{"max", func(c domain.ColumnSummary) any { return statValue(c.Max) }},
}

// statValue leaves undefined statistics blank.
func statValue(s domain.Stat) any {
	if !s.IsDefined() {
		return nil
	}
	return float64(s)
}

// WriteXLSX writes a workbook with the pivot table, the summary statistics and the long table.
func WriteXLSX(w io.Writer, dash *domain.Dashboard) error {
	f := excelize.NewFile()
	defer f.Close()

	wb := &workbook{f: f}
	if err := wb.init(); err != nil {
		return err
	}

	wb.writePivot(dash.Wide)
	wb.writeSummary(dash.Summary)
	wb.writeData(dash.Long)
	if wb.err != nil {
		return domainerrors.Wrap(wb.err, domainerrors.CodeInternal, "build workbook")
	}

	if err := f.Write(w); err != nil {
		return domainerrors.Wrap(err, domainerrors.CodeInternal, "write workbook")
	}
	return nil
}

// workbook keeps the first error so the sheet writers stay linear.
type workbook struct {
	f           *excelize.File
	headerStyle int
	moneyStyle  int
	err         error
}

func (wb *workbook) init() error {
	for i, name := range []string{SheetPivot, SheetSummary, SheetData} {
		if i == 0 {
			if err := wb.f.SetSheetName("Sheet1", name); err != nil {
				return domainerrors.Wrap(err, domainerrors.CodeInternal, "rename sheet")
			}
			continue
		}
		if _, err := wb.f.NewSheet(name); err != nil {
			return domainerrors.Wrapf(err, domainerrors.CodeInternal, "create sheet %s", name)
		}
	}

	var err error
	wb.headerStyle, err = wb.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return domainerrors.Wrap(err, domainerrors.CodeInternal, "create header style")
	}

	// Built-in format 3 is "#,##0".
	wb.moneyStyle, err = wb.f.NewStyle(&excelize.Style{NumFmt: 3})
	if err != nil {
		return domainerrors.Wrap(err, domainerrors.CodeInternal, "create number style")
	}
	return nil
}

func (wb *workbook) writePivot(wide domain.WideTable) {
	header := append([]string{"year"}, wide.Genres...)
	wb.header(SheetPivot, header)

	for i, year := range wide.Years {
		row := i + 2
		wb.set(SheetPivot, 1, row, year)
		for j := range wide.Genres {
			wb.set(SheetPivot, j+2, row, wide.Cells[i][j])
		}
	}
	if len(wide.Genres) > 0 && len(wide.Years) > 0 {
		wb.style(SheetPivot, 2, 2, len(wide.Genres)+1, len(wide.Years)+1, wb.moneyStyle)
	}
	wb.widths(SheetPivot, len(header), 15)
}

func (wb *workbook) writeSummary(summary domain.Summary) {
	header := []string{""}
	for _, c := range summary {
		header = append(header, c.Column)
	}
	wb.header(SheetSummary, header)

	for i, sr := range summaryRows {
		row := i + 2
		wb.set(SheetSummary, 1, row, sr.label)
		for j, c := range summary {
			if v := sr.value(c); v != nil {
				wb.set(SheetSummary, j+2, row, v)
			}
		}
	}
	wb.widths(SheetSummary, len(header), 18)
}

func (wb *workbook) writeData(long domain.LongTable) {
	wb.header(SheetData, []string{"year", "genre", "gross"})

	for i, r := range long {
		row := i + 2
		wb.set(SheetData, 1, row, r.Year)
		wb.set(SheetData, 2, row, r.Genre)
		wb.set(SheetData, 3, row, r.Gross)
	}
	if len(long) > 0 {
		wb.style(SheetData, 3, 2, 3, len(long)+1, wb.moneyStyle)
	}
	wb.widths(SheetData, 3, 15)
}

func (wb *workbook) header(sheet string, names []string) {
	for i, name := range names {
		wb.set(sheet, i+1, 1, name)
	}
	wb.style(sheet, 1, 1, len(names), 1, wb.headerStyle)
}

func (wb *workbook) set(sheet string, col, row int, value any) {
	if wb.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		wb.err = err
		return
	}
	wb.err = wb.f.SetCellValue(sheet, cell, value)
}

func (wb *workbook) style(sheet string, fromCol, fromRow, toCol, toRow, style int) {
	if wb.err != nil {
		return
	}
	from, err := excelize.CoordinatesToCellName(fromCol, fromRow)
	if err != nil {
		wb.err = err
		return
	}
	to, err := excelize.CoordinatesToCellName(toCol, toRow)
	if err != nil {
		wb.err = err
		return
	}
	wb.err = wb.f.SetCellStyle(sheet, from, to, style)
}

func (wb *workbook) widths(sheet string, cols int, width float64) {
	if wb.err != nil || cols == 0 {
		return
	}
	last, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		wb.err = err
		return
	}
	wb.err = wb.f.SetColWidth(sheet, "A", last, width)
}
