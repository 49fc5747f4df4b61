// Package pdf renders booking receipts.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/bubbleflash/service-movers/internal/domain/booking"
)

const companyName = "BubbleFlash Movers & Packers"

// Receipt renders a PDF receipt for the booking.
func Receipt(bk *booking.Booking) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, companyName)
	doc.Ln(8)
	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 8, "Booking Receipt")
	doc.Ln(12)

	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(50, 7, "Booking Number")
	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 7, bk.BookingNumber())
	doc.Ln(7)

	rows := [][2]string{
		{"Date", bk.CreatedAt().Format("02 Jan 2006")},
		{"Customer", bk.Customer().Name},
		{"Phone", bk.Customer().Phone},
		{"Move Type", string(bk.MoveType())},
		{"Home Size", string(bk.HomeSize())},
		{"Moving Date", bk.MovingDate().Format("02 Jan 2006")},
		{"Distance", fmt.Sprintf("%.2f km", bk.DistanceKm())},
		{"Status", string(bk.Status())},
	}
	for _, r := range rows {
		doc.SetFont("Helvetica", "B", 11)
		doc.Cell(50, 7, r[0])
		doc.SetFont("Helvetica", "", 11)
		doc.Cell(0, 7, r[1])
		doc.Ln(7)
	}

	doc.Ln(4)
	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(50, 7, "From")
	doc.SetFont("Helvetica", "", 10)
	doc.MultiCell(0, 6, bk.SourceAddress().Full, "", "", false)
	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(50, 7, "To")
	doc.SetFont("Helvetica", "", 10)
	doc.MultiCell(0, 6, bk.DestinationAddress().Full, "", "", false)
	doc.Ln(6)

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, "Charges")
	doc.Ln(9)

	pricing := bk.Pricing()
	charges := [][2]string{
		{"Base Price", formatAmount(pricing.BasePrice)},
	}
	if pricing.VehicleCharge > 0 {
		charges = append(charges, [2]string{"Vehicle Shifting", formatAmount(pricing.VehicleCharge)})
	}
	if pricing.PaintingCharge > 0 {
		charges = append(charges, [2]string{"Painting Services", formatAmount(pricing.PaintingCharge)})
	}
	if pricing.DistanceCharge > 0 {
		charges = append(charges, [2]string{"Distance Charge", formatAmount(pricing.DistanceCharge)})
	}
	for _, r := range charges {
		doc.SetFont("Helvetica", "", 11)
		doc.Cell(100, 7, r[0])
		doc.CellFormat(40, 7, r[1], "", 0, "R", false, 0, "")
		doc.Ln(7)
	}

	doc.SetDrawColor(120, 120, 120)
	doc.Line(10, doc.GetY()+1, 150, doc.GetY()+1)
	doc.Ln(3)
	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(100, 8, "Total")
	doc.CellFormat(40, 8, formatAmount(pricing.TotalAmount), "", 0, "R", false, 0, "")
	doc.Ln(12)

	payment := bk.Payment()
	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(50, 7, "Payment Method")
	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 7, string(payment.Method))
	doc.Ln(7)
	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(50, 7, "Payment Status")
	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 7, string(payment.Status))
	doc.Ln(7)
	if payment.GatewayPaymentID != "" {
		doc.SetFont("Helvetica", "B", 11)
		doc.Cell(50, 7, "Payment Reference")
		doc.SetFont("Helvetica", "", 11)
		doc.Cell(0, 7, payment.GatewayPaymentID)
		doc.Ln(7)
	}

	doc.Ln(10)
	doc.SetFont("Helvetica", "I", 9)
	doc.Cell(0, 6, "Thank you for choosing "+companyName+".")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

func formatAmount(v float64) string {
	return fmt.Sprintf("Rs. %.2f", v)
}
