package utils

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/pavankkodange/HMAPP/models"
)

// MoneyFormatter renders an amount in the hotel's display currency.
type MoneyFormatter func(amount float64) string

// BuildBillPDF renders the checkout bill for a booking. The folio total is
// the sum of charges, not the creation-time estimate.
func BuildBillPDF(booking *models.Booking, hotel models.HotelSetting, format MoneyFormatter) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	name := hotel.Name
	if name == "" {
		name = "VervConnect"
	}
	pdf.Cell(0, 8, name)
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Booking Reference: %s", booking.ReferenceCode))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Guest: %s", booking.Guest.Name))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Room: %s (%s)", booking.Room.Number, booking.Room.Type))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Check-In: %s", booking.CheckIn))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Check-Out: %s", booking.CheckOut))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Nights: %d", Nights(booking.CheckIn, booking.CheckOut)))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(30, 6, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(80, 6, "Description", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Category", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Amount", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, charge := range booking.Charges {
		pdf.CellFormat(30, 6, charge.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(80, 6, charge.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, charge.Category, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, format(charge.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(140, 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, format(booking.ChargeTotal()), "1", 0, "R", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 6, "Thank you for staying with us. Connect with Comfort.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildBookingsXLSX renders a bookings sheet plus a revenue summary sheet
// for the given snapshot.
func BuildBookingsXLSX(bookings []models.Booking, snapshot models.DashboardSnapshot) ([]byte, error) {
	f := excelize.NewFile()
	bookingsSheet := "bookings"
	summarySheet := "revenue"
	f.SetSheetName("Sheet1", bookingsSheet)
	f.NewSheet(summarySheet)

	headers := []string{"Reference", "Guest", "Room", "Check-In", "Check-Out", "Status", "Estimate", "Charges"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(bookingsSheet, cell, h)
	}
	for i, booking := range bookings {
		row := i + 2
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("A%d", row), booking.ReferenceCode)
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("B%d", row), booking.Guest.Name)
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("C%d", row), booking.Room.Number)
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("D%d", row), booking.CheckIn)
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("E%d", row), booking.CheckOut)
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("F%d", row), booking.Status)
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("G%d", row), booking.TotalAmount)
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("H%d", row), booking.ChargeTotal())
	}

	_ = f.SetCellValue(summarySheet, "A1", "Revenue Summary")
	_ = f.SetCellValue(summarySheet, "A3", "Date")
	_ = f.SetCellValue(summarySheet, "B3", snapshot.Date)
	_ = f.SetCellValue(summarySheet, "A4", "Today Revenue")
	_ = f.SetCellValue(summarySheet, "B4", snapshot.TodayRevenue)
	_ = f.SetCellValue(summarySheet, "A5", "Month Revenue")
	_ = f.SetCellValue(summarySheet, "B5", snapshot.MonthRevenue)
	_ = f.SetCellValue(summarySheet, "A6", "Occupied Rooms")
	_ = f.SetCellValue(summarySheet, "B6", snapshot.OccupiedRooms)
	_ = f.SetCellValue(summarySheet, "A7", "Total Rooms")
	_ = f.SetCellValue(summarySheet, "B7", snapshot.TotalRooms)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
