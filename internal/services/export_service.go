package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/justsurfingit/job-board/internal/logger"
	"github.com/justsurfingit/job-board/internal/models"
)

// ExportSheet is the worksheet name used for job exports.
const ExportSheet = "Jobs"

// ExportHeaders is the header row of the export, in column order.
var ExportHeaders = []string{
	"ID",
	"Title",
	"Company",
	"Type",
	"City",
	"State",
	"Country",
	"Remote",
	"Salary Min",
	"Salary Max",
	"Currency",
	"Posted At",
	"Featured",
	"Application URL",
}

// ExportService produces spreadsheet exports of the job listings.
type ExportService struct {
	Logger logger.Logger
}

func NewExportService(log logger.Logger) *ExportService {
	if log == nil {
		log = logger.NewNop()
	}
	return &ExportService{Logger: log}
}

// ExportJobsXLSX returns an XLSX workbook (as bytes) with one row per job.
func (s *ExportService) ExportJobsXLSX(jobs []models.Job) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range ExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(ExportSheet, cell, h)
	}

	for r, j := range jobs {
		row := r + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(ExportSheet, cell, v)
		}

		write(1, j.ID)
		write(2, j.Title)
		write(3, j.Company)
		write(4, string(j.Type))
		write(5, j.Location.City)
		write(6, j.Location.State)
		write(7, j.Location.Country)
		write(8, yesNo(j.Location.Remote))
		if j.Salary != nil {
			write(9, j.Salary.Min)
			write(10, j.Salary.Max)
			write(11, j.Salary.Currency)
		}
		write(12, j.PostedAt)
		write(13, yesNo(j.Featured))
		write(14, j.ApplicationURL)
	}

	_ = f.SetColWidth(ExportSheet, "A", "A", 38) // id
	_ = f.SetColWidth(ExportSheet, "B", "C", 28) // title, company
	_ = f.SetColWidth(ExportSheet, "L", "L", 26) // posted at
	_ = f.SetColWidth(ExportSheet, "N", "N", 40) // url

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.Logger.Info("Jobs exported",
		logger.Int("rows", len(jobs)),
		logger.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return buf.Bytes(), nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
