package tasks

import (
	"context"
	"encoding/json"
	"net/http"
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

// GET /api/tasks/mine — the calling vendor's task list
func GetMyTasks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	vendorID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || vendorID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	list, err := utils.FindAndDecode[models.VendorTask](ctx, db.TasksCollection, bson.M{"vendorId": vendorID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve tasks")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "tasks": list})
}

// GET /api/bookings/booking/:bookingid/tasks — booking owner or admin
func GetBookingTasks(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	roles, _ := r.Context().Value(globals.RoleKey).([]string)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingid": ps.ByName("bookingid")}).Decode(&booking); err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}
	if booking.ClientID != userID && !utils.Contains(roles, "admin") {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	list, err := utils.FindAndDecode[models.VendorTask](ctx, db.TasksCollection, bson.M{"bookingId": booking.BookingID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve tasks")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "tasks": list})
}

// PUT /api/tasks/:taskid/status — only the assigned vendor may advance a
// task; the write is a single-field update with no notification.
func UpdateTaskStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	vendorID, _ := r.Context().Value(globals.UserIDKey).(string)

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if !IsValidTaskStatus(body.Status) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res := db.TasksCollection.FindOneAndUpdate(ctx,
		bson.M{"taskid": ps.ByName("taskid"), "vendorId": vendorID},
		bson.M{"$set": bson.M{"status": body.Status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.VendorTask
	if err := res.Decode(&updated); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	live.Broadcast("tasks:"+vendorID, live.Event{Collection: "tasks", Action: "updated", Data: updated})
	live.Broadcast("booking:"+updated.BookingID, live.Event{Collection: "tasks", Action: "updated", Data: updated})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "task": updated})
}
