package availability

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"eventease/db"
	"eventease/globals"
	"eventease/models"
	"eventease/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dateLayout = "2006-01-02"

// GET /api/availability — the calling vendor's unavailable-date set
func GetAvailability(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	vendorID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || vendorID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var avail models.VendorAvailability
	err := db.AvailabilityCollection.FindOne(ctx, bson.M{"vendorId": vendorID}).Decode(&avail)
	if err == mongo.ErrNoDocuments {
		avail = models.VendorAvailability{VendorID: vendorID, UnavailableDates: []string{}}
	} else if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if avail.UnavailableDates == nil {
		avail.UnavailableDates = []string{}
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "availability": avail})
}

// PUT /api/availability — replace the calling vendor's unavailable-date set
func SetAvailability(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	vendorID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || vendorID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body struct {
		UnavailableDates []string `json:"unavailableDates"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	for _, d := range body.UnavailableDates {
		if _, err := time.Parse(dateLayout, d); err != nil {
			http.Error(w, "invalid date: "+d, http.StatusBadRequest)
			return
		}
	}
	if body.UnavailableDates == nil {
		body.UnavailableDates = []string{}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	avail := models.VendorAvailability{VendorID: vendorID, UnavailableDates: body.UnavailableDates}
	_, err := db.AvailabilityCollection.UpdateOne(ctx,
		bson.M{"vendorId": vendorID},
		bson.M{"$set": avail},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "availability": avail})
}
