package activity

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"eventease/db"
	"eventease/live"
	"eventease/models"
	"eventease/rdx"
	"eventease/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const activityChannel = "activity_events"

// Append writes one entry to the append-only admin audit trail, publishes it
// to Redis and pushes it to the live admin feed.
func Append(ctx context.Context, message string, meta models.ActivityMeta) (models.Activity, error) {
	entry := models.Activity{
		ActivityID: "act" + utils.GenerateID(14),
		Message:    message,
		Meta:       meta,
		Timestamp:  time.Now().UTC(),
	}
	if _, err := db.ActivitiesCollection.InsertOne(ctx, entry); err != nil {
		return models.Activity{}, err
	}

	if payload, err := json.Marshal(entry); err == nil {
		rdx.Publish(activityChannel, payload)
	}
	live.Broadcast("admin:activity", live.Event{Collection: "activity_logs", Action: "created", Data: entry})
	return entry, nil
}

// AppendInSession is Append without the side channels, for use inside a
// transaction; the caller fans out after commit.
func AppendInSession(ctx context.Context, message string, meta models.ActivityMeta) (models.Activity, error) {
	entry := models.Activity{
		ActivityID: "act" + utils.GenerateID(14),
		Message:    message,
		Meta:       meta,
		Timestamp:  time.Now().UTC(),
	}
	if _, err := db.ActivitiesCollection.InsertOne(ctx, entry); err != nil {
		return models.Activity{}, err
	}
	return entry, nil
}

// Publish fans an already-written entry out to Redis and the live feed.
func Publish(entry models.Activity) {
	if payload, err := json.Marshal(entry); err == nil {
		rdx.Publish(activityChannel, payload)
	}
	live.Broadcast("admin:activity", live.Event{Collection: "activity_logs", Action: "created", Data: entry})
}

// GET /api/activity — admin feed, most recent N entries
func GetActivityFeed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)

	feed, err := utils.FindAndDecode[models.Activity](ctx, db.ActivitiesCollection, bson.M{}, opts)
	if err != nil {
		log.Println("Failed to fetch activity feed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch activities")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "activities": feed})
}
