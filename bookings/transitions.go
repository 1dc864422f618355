package bookings

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"eventease/db"
	"eventease/globals"
	"eventease/live"
	"eventease/models"
	"eventease/notifications"
	"eventease/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// applyTransition writes the new status and, only if that write succeeded,
// emits exactly one notification to the booking's client. The two writes are
// sequential, not transactional; a failed status write emits nothing.
func applyTransition(ctx context.Context, booking models.Booking, newStatus string) (models.Booking, error) {
	res := db.BookingsCollection.FindOneAndUpdate(ctx,
		bson.M{"bookingid": booking.BookingID},
		bson.M{"$set": bson.M{"status": newStatus}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Booking
	if err := res.Decode(&updated); err != nil {
		return models.Booking{}, err
	}

	if _, err := notifications.Create(ctx, updated.ClientID,
		StatusMessage(updated.PackageName, newStatus),
		"/booking/"+updated.BookingID,
	); err != nil {
		log.Println("Failed to notify client of status change:", err)
	}

	live.Broadcast("admin:bookings", live.Event{Collection: "bookings", Action: "updated", Data: updated})
	live.Broadcast("bookings:"+updated.ClientID, live.Event{Collection: "bookings", Action: "updated", Data: updated})
	return updated, nil
}

// PUT /api/bookings/booking/:bookingid/status — admin only
func UpdateBookingStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("bookingid")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if !IsValidStatus(body.Status) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingid": bookingID}).Decode(&booking); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	if !CanTransition(booking.Status, body.Status) {
		utils.RespondWithJSON(w, http.StatusConflict, map[string]any{
			"ok":     false,
			"reason": "invalid-transition",
			"from":   booking.Status,
			"to":     body.Status,
		})
		return
	}

	updated, err := applyTransition(ctx, booking, body.Status)
	if err != nil {
		http.Error(w, "Failed to update status", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "booking": updated})
}

// POST /api/bookings/booking/:bookingid/pay — client settles an awaiting-payment
// booking, moving it to confirmed. Only the booking's owner may pay.
func PayBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingid": ps.ByName("bookingid")}).Decode(&booking); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if booking.ClientID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if booking.Status != StatusAwaitingPayment {
		utils.RespondWithJSON(w, http.StatusConflict, map[string]any{"ok": false, "reason": "not-awaiting-payment"})
		return
	}

	updated, err := applyTransition(ctx, booking, StatusConfirmed)
	if err != nil {
		http.Error(w, "Failed to update status", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "booking": updated})
}
