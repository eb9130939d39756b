package service

import (
	"fmt"

	"github.com/classpoint/classpoint-backend/internal/config"
	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/rs/zerolog"
	"github.com/signintech/gopdf"
)

const exportFontName = "sheet"

// ExportService renders attendance reports as downloadable PDF sheets.
type ExportService struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewExportService creates a new ExportService.
func NewExportService(cfg *config.Config, log zerolog.Logger) *ExportService {
	return &ExportService{
		cfg: cfg,
		log: log.With().Str("component", "export_service").Logger(),
	}
}

// AttendanceSheetPDF renders the full (unpaginated) report for a classroom
// and subject as an A4 sheet with one row per student.
func (s *ExportService) AttendanceSheetPDF(classroom *model.Classroom, subject *model.Subject, report *model.AttendanceReport) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	if err := pdf.AddTTFFont(exportFontName, s.cfg.PDFFontPath); err != nil {
		return nil, fmt.Errorf("load pdf font: %w", err)
	}

	if err := pdf.SetFont(exportFontName, "", 16); err != nil {
		return nil, err
	}
	pdf.SetXY(40, 40)
	if err := pdf.Cell(nil, fmt.Sprintf("Attendance Sheet - %s / %s", classroom.Name, subject.Name)); err != nil {
		return nil, err
	}

	if err := pdf.SetFont(exportFontName, "", 10); err != nil {
		return nil, err
	}
	pdf.SetXY(40, 64)
	if err := pdf.Cell(nil, fmt.Sprintf("Sessions held: %d", report.TotalClasses)); err != nil {
		return nil, err
	}

	// Column layout: roll | name | present | percentage.
	const (
		xRoll    = 40.0
		xName    = 110.0
		xPresent = 380.0
		xPercent = 470.0
		top      = 96.0
		rowStep  = 18.0
		pageEnd  = 790.0
	)

	writeHeader := func(y float64) error {
		for _, col := range []struct {
			x     float64
			label string
		}{
			{xRoll, "Roll"}, {xName, "Name"}, {xPresent, "Present"}, {xPercent, "Percent"},
		} {
			pdf.SetXY(col.x, y)
			if err := pdf.Cell(nil, col.label); err != nil {
				return err
			}
		}
		return nil
	}

	y := top
	if err := writeHeader(y); err != nil {
		return nil, err
	}
	y += rowStep

	for _, row := range report.Rows {
		if y > pageEnd {
			pdf.AddPage()
			y = 40
			if err := writeHeader(y); err != nil {
				return nil, err
			}
			y += rowStep
		}

		cells := []struct {
			x    float64
			text string
		}{
			{xRoll, row.Roll},
			{xName, row.Name},
			{xPresent, fmt.Sprintf("%d / %d", row.PresentCount, report.TotalClasses)},
			{xPercent, fmt.Sprintf("%.2f%%", row.Percentage)},
		}
		for _, cell := range cells {
			pdf.SetXY(cell.x, y)
			if err := pdf.Cell(nil, cell.text); err != nil {
				return nil, err
			}
		}
		y += rowStep
	}

	return pdf.GetBytesPdf(), nil
}
