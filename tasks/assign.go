package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"eventease/activity"
	"eventease/db"
	"eventease/live"
	"eventease/models"
	"eventease/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	StatusAssigned   = "assigned"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

func IsValidTaskStatus(s string) bool {
	return s == StatusAssigned || s == StatusInProgress || s == StatusCompleted
}

// TaskTitle derives the task headline from category and package name.
func TaskTitle(category, packageName string) string {
	return utils.Capitalize(category) + " for " + packageName
}

// TaskDescription derives the task body from category and client name.
func TaskDescription(category, clientName string) string {
	return fmt.Sprintf("Handle %s for %s's event.", category, clientName)
}

// AssignmentLogMessage is the audit-trail entry written alongside each task.
func AssignmentLogMessage(vendorName, category, packageName string) string {
	return fmt.Sprintf("Admin assigned %s to the %s task for %q.", vendorName, category, packageName)
}

// DateBlocked reports whether date is in the vendor's unavailable set.
func DateBlocked(unavailable []string, date string) bool {
	return utils.Contains(unavailable, date)
}

// CategoryTaken reports whether the booking already has a task for the
// category, regardless of which vendor holds it.
func CategoryTaken(existing []models.VendorTask, category string) bool {
	for _, t := range existing {
		if t.Category == category {
			return true
		}
	}
	return false
}

// ClientRequirements normalizes the free-text copied onto a task at creation.
func ClientRequirements(requirements string) string {
	if requirements == "" {
		return "No specific requirements provided."
	}
	return requirements
}

type assignRequest struct {
	VendorID string `json:"vendorId"`
	Category string `json:"category"`
}

// POST /api/bookings/booking/:bookingid/assign — admin only.
//
// Links a vendor to a (booking, category) pair. The Task, the audit entry
// and the vendor notification are committed in one transaction so the audit
// trail can never disagree with the task list.
func AssignVendor(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("bookingid")

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.VendorID == "" || !models.IsValidCategory(req.Category) {
		http.Error(w, "missing or invalid fields", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var booking models.Booking
	if err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingid": bookingID}).Decode(&booking); err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	var vendor models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": req.VendorID, "role": "vendor"}).Decode(&vendor)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusNotFound, map[string]any{"ok": false, "reason": "VendorNotFound"})
		return
	}

	// One vendor per category per booking; re-assignment must be rejected,
	// never overwritten.
	existing, err := utils.FindAndDecode[models.VendorTask](ctx, db.TasksCollection, bson.M{"bookingId": booking.BookingID})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if CategoryTaken(existing, req.Category) {
		utils.RespondWithJSON(w, http.StatusConflict, map[string]any{"ok": false, "reason": "CategoryAlreadyAssigned"})
		return
	}

	var avail models.VendorAvailability
	err = db.AvailabilityCollection.FindOne(ctx, bson.M{"vendorId": vendor.UserID}).Decode(&avail)
	if err != nil && err != mongo.ErrNoDocuments {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if DateBlocked(avail.UnavailableDates, booking.EventDate) {
		utils.RespondWithJSON(w, http.StatusConflict, map[string]any{"ok": false, "reason": "VendorUnavailable"})
		return
	}

	task := models.VendorTask{
		TaskID:             "tsk" + utils.GenerateID(14),
		BookingID:          booking.BookingID,
		VendorID:           vendor.UserID,
		VendorName:         vendor.Username,
		Category:           req.Category,
		Title:              TaskTitle(req.Category, booking.PackageName),
		Description:        TaskDescription(req.Category, booking.ClientName),
		Status:             StatusAssigned,
		EventDate:          booking.EventDate,
		ClientRequirements: ClientRequirements(booking.Requirements),
		CreatedAt:          time.Now().UTC(),
	}

	vendorNote := models.Notification{
		NotificationID: "ntf" + utils.GenerateID(14),
		UserID:         vendor.UserID,
		Message:        fmt.Sprintf("You have been assigned the %s task for %q.", req.Category, booking.PackageName),
		Link:           "/task/" + task.TaskID,
		CreatedAt:      time.Now().UTC(),
	}

	var entry models.Activity

	session, err := db.Client.StartSession()
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		if _, err := db.TasksCollection.InsertOne(sessCtx, task); err != nil {
			return nil, err
		}
		entry, err = activity.AppendInSession(sessCtx,
			AssignmentLogMessage(vendor.Username, req.Category, booking.PackageName),
			models.ActivityMeta{BookingID: booking.BookingID, VendorName: vendor.Username, ClientName: booking.ClientName},
		)
		if err != nil {
			return nil, err
		}
		if _, err := db.NotificationsCollection.InsertOne(sessCtx, vendorNote); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		http.Error(w, "Failed to assign vendor", http.StatusInternalServerError)
		return
	}

	// Fan out only after the batch committed
	activity.Publish(entry)
	live.Broadcast("tasks:"+vendor.UserID, live.Event{Collection: "tasks", Action: "created", Data: task})
	live.Broadcast("notifications:"+vendor.UserID, live.Event{Collection: "notifications", Action: "created", Data: vendorNote})
	live.Broadcast("admin:bookings", live.Event{Collection: "tasks", Action: "created", Data: task})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "task": task})
}
