package notifications

import (
	"context"
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

// Create inserts one notification for a recipient and pushes it to their
// live feed. Callers treat a failure as "the side effect did not happen";
// nothing retries.
func Create(ctx context.Context, userID, message, link string) (models.Notification, error) {
	n := models.Notification{
		NotificationID: "ntf" + utils.GenerateID(14),
		UserID:         userID,
		Message:        message,
		IsRead:         false,
		Link:           link,
		CreatedAt:      time.Now().UTC(),
	}
	if _, err := db.NotificationsCollection.InsertOne(ctx, n); err != nil {
		return models.Notification{}, err
	}
	live.Broadcast("notifications:"+userID, live.Event{Collection: "notifications", Action: "created", Data: n})
	return n, nil
}

// GET /api/notifications
func GetNotifications(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetSkip(skip).SetLimit(limit)

	list, err := utils.FindAndDecode[models.Notification](ctx, db.NotificationsCollection, bson.M{"userId": userID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve notifications")
		return
	}

	unread, err := db.NotificationsCollection.CountDocuments(ctx, bson.M{"userId": userID, "isRead": false})
	if err != nil {
		unread = 0
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "notifications": list, "unread": unread})
}

// PUT /api/notifications/read/:notificationid
func MarkRead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.NotificationsCollection.UpdateOne(ctx,
		bson.M{"notificationid": ps.ByName("notificationid"), "userId": userID},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Notification not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// PUT /api/notifications/read-all
func MarkAllRead(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, err := db.NotificationsCollection.UpdateMany(ctx,
		bson.M{"userId": userID, "isRead": false},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}
