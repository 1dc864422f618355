package invoices

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"eventease/bookings"
	"eventease/db"
	"eventease/middleware"
	"eventease/models"
	"eventease/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// GET /api/bookings/booking/:bookingid/invoice — PDF price breakdown for the
// booking's owner or an admin.
func PrintInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("bookingid")

	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingid": bookingID}).Decode(&booking); err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}
	if booking.ClientID != claims.UserID && !utils.Contains(claims.Role, "admin") {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	qrData := fmt.Sprintf("booking=%s&ts=%d", booking.BookingID, time.Now().Unix())
	qrCode, _ := qrcode.Encode(qrData, qrcode.Medium, 128)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "Booking Invoice", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"Client: %s\nPackage: %s\nEvent Date: %s\nGuests: %d\nStatus: %s\nIssued: %s",
		booking.ClientName,
		booking.PackageName,
		booking.EventDate,
		booking.GuestCount,
		booking.Status,
		time.Now().Format("02 Jan 2006 15:04"),
	), "", "L", false)
	pdf.Ln(5)

	// Price breakdown
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(120, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Price", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	base := booking.TotalPrice
	for _, opt := range booking.Customizations {
		base -= bookings.OptionCost(opt, booking.GuestCount)
	}
	pdf.CellFormat(120, 8, booking.PackageName, "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("$%.2f", base), "", 1, "R", false, 0, "")

	for _, opt := range booking.Customizations {
		label := opt.Name
		if opt.Category == "catering" {
			label = fmt.Sprintf("%s (%d guests)", opt.Name, booking.GuestCount)
		}
		pdf.CellFormat(120, 8, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("$%.2f", bookings.OptionCost(opt, booking.GuestCount)), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(120, 10, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 10, fmt.Sprintf("$%.2f", booking.TotalPrice), "T", 1, "R", false, 0, "")

	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrCode))
	pdf.ImageOptions("qr", 150, 20, 40, 40, false, imgOpts, 0, "")

	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 10, "The total was frozen at submission and does not change with status.", "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate invoice", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=invoice-"+booking.BookingID+".pdf")
	w.Write(buf.Bytes())
}
