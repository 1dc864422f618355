package chats

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"eventease/db"
	"eventease/globals"
	"eventease/live"
	"eventease/models"
	"eventease/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxMessageLen = 2000

// CanAccess reports whether a user may read or write a booking's chat:
// the booking's client or any admin. Vendors coordinate through tasks,
// not chat.
func CanAccess(clientID, userID string, roles []string) bool {
	return clientID == userID || utils.Contains(roles, "admin")
}

// NormalizeText trims a message and rejects empty or oversized input.
func NormalizeText(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxMessageLen {
		return "", false
	}
	return s, true
}

func loadBooking(ctx context.Context, bookingID string) (models.Booking, error) {
	var booking models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingid": bookingID}).Decode(&booking)
	return booking, err
}

// GET /api/bookings/booking/:bookingid/chat — owner or admin, oldest first.
func GetMessages(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	roles, _ := r.Context().Value(globals.RoleKey).([]string)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	booking, err := loadBooking(ctx, ps.ByName("bookingid"))
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}
	if !CanAccess(booking.ClientID, userID, roles) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	skip, limit := utils.ParsePagination(r, 50, 200)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}).SetSkip(skip).SetLimit(limit)

	list, err := utils.FindAndDecode[models.ChatMessage](ctx, db.ChatMessagesCollection, bson.M{"bookingId": booking.BookingID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve messages")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "messages": list})
}

type sendRequest struct {
	Text string `json:"text"`
}

// POST /api/bookings/booking/:bookingid/chat — owner or admin.
func SendMessage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	username, _ := r.Context().Value(globals.UsernameKey).(string)
	roles, _ := r.Context().Value(globals.RoleKey).([]string)

	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	text, ok := NormalizeText(req.Text)
	if !ok {
		http.Error(w, "empty or oversized message", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	booking, err := loadBooking(ctx, ps.ByName("bookingid"))
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}
	if !CanAccess(booking.ClientID, userID, roles) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	msg := models.ChatMessage{
		MessageID:  "msg" + utils.GenerateID(14),
		BookingID:  booking.BookingID,
		SenderID:   userID,
		SenderName: username,
		Text:       text,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := db.ChatMessagesCollection.InsertOne(ctx, msg); err != nil {
		http.Error(w, "Failed to send message", http.StatusInternalServerError)
		return
	}

	live.Broadcast("booking:"+booking.BookingID, live.Event{Collection: "chats", Action: "created", Data: msg})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "message": msg})
}
