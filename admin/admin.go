package admin

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"eventease/bookings"
	"eventease/db"
	"eventease/models"
	"eventease/notifications"
	"eventease/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/admin/users?role=vendor&status=pending
func GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if role := r.URL.Query().Get("role"); role != "" {
		filter["role"] = role
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"password": 0, "refresh_token": 0})

	users, err := utils.FindAndDecode[models.User](ctx, db.UserCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "users": users})
}

// PUT /api/admin/users/:userid/status — activate pending vendors, disable
// misbehaving accounts.
func SetUserStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := ps.ByName("userid")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if body.Status != "active" && body.Status != "pending" && body.Status != "disabled" {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res := db.UserCollection.FindOneAndUpdate(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"status": body.Status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.User
	if err := res.Decode(&updated); err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	if body.Status == "active" {
		if _, err := notifications.Create(ctx, updated.UserID, "Your account has been activated. You can now sign in.", ""); err != nil {
			log.Println("Failed to notify activated user:", err)
		}
	}

	updated.Password = ""
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "user": updated})
}

// GET /api/admin/stats — dashboard aggregates, computed on read.
func GetStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	byStatus := map[string]int64{}
	for _, status := range bookings.AllStatuses {
		n, err := db.BookingsCollection.CountDocuments(ctx, bson.M{"status": status})
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		byStatus[status] = n
	}

	// Revenue spans every non-rejected booking's frozen total
	var revenue float64
	nonRejected, err := utils.FindAndDecode[models.Booking](ctx, db.BookingsCollection,
		bson.M{"status": bson.M{"$ne": bookings.StatusRejected}})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	for _, b := range nonRejected {
		revenue += b.TotalPrice
	}

	clients, err := db.UserCollection.CountDocuments(ctx, bson.M{"role": "client"})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	vendors, err := db.UserCollection.CountDocuments(ctx, bson.M{"role": "vendor"})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok":              true,
		"totalBookings":   int64(len(nonRejected)) + byStatus[bookings.StatusRejected],
		"pendingBookings": byStatus[bookings.StatusPending],
		"byStatus":        byStatus,
		"revenue":         revenue,
		"clients":         clients,
		"vendors":         vendors,
	})
}
