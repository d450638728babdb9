package booking

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"hotelreservation/internal/domain"
)

const exportSheet = "Bookings"

var exportHeader = []interface{}{
	"ID", "Guest", "Email", "Room", "Room type", "Check-in", "Check-out", "Nights", "Status", "Total price",
}

// ExportBookings writes every booking as an xlsx workbook.
func (s *Service) ExportBookings(ctx context.Context, w io.Writer) error {
	bookings, err := s.bookings.FindAll(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return err
	}
	for i, b := range bookings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := exportRow(b)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("export booking %d: %w", b.ID, err)
		}
	}

	_, err = f.WriteTo(w)
	return err
}

func exportRow(b domain.Booking) []interface{} {
	var guestName, guestEmail, roomNumber, roomType string
	if b.Guest != nil {
		guestName, guestEmail = b.Guest.Name, b.Guest.Email
	}
	if b.Room != nil {
		roomNumber, roomType = b.Room.RoomNumber, b.Room.Type.Name
	}
	return []interface{}{
		b.ID,
		guestName,
		guestEmail,
		roomNumber,
		roomType,
		b.CheckInDate.Format(dateLayout),
		b.CheckOutDate.Format(dateLayout),
		domain.StayDays(b.CheckInDate, b.CheckOutDate),
		string(b.Status),
		b.TotalPrice,
	}
}
