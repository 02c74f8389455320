package bookings

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings/models"
)

// ExportSheet имя листа выгрузки
const ExportSheet = "Bookings"

var exportHeaders = []string{
	"ID", "Studio", "Type", "Area", "Address", "Date", "Time",
	"Customer", "Email", "Price", "Status", "Booked At",
}

// Export записывает все бронирования в книгу .xlsx (порядок как в List)
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	list, err := s.List(ctx, &models.ListRequest{})
	if err != nil {
		return err
	}
	s.logger.Info("Export: exporting %d bookings", len(list.Bookings))

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), ExportSheet); err != nil {
		return fmt.Errorf("%w: rename sheet: %v", ErrExport, err)
	}

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(ExportSheet, cell, header); err != nil {
			return fmt.Errorf("%w: header %s: %v", ErrExport, header, err)
		}
	}
	if style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		_ = f.SetCellStyle(ExportSheet, "A1", last, style)
	}

	for i, b := range list.Bookings {
		row := []interface{}{
			b.ID, b.StudioName, string(b.StudioType), b.StudioLocation.Area, b.StudioLocation.Address,
			b.Date, b.TimeSlot, b.UserName, b.UserEmail, b.TotalPrice, string(b.Status),
			b.BookingTime.Format("2006-01-02 15:04:05"),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return fmt.Errorf("%w: row %d: %v", ErrExport, i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		s.logger.Error("Export: failed to write workbook: %v", err)
		return fmt.Errorf("%w: write: %v", ErrExport, err)
	}
	return nil
}
