package reviews

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"eventease/db"
	"eventease/globals"
	"eventease/models"
	"eventease/mq"
	"eventease/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/reviews/package/:packageid
func GetPackageReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	packageID := ps.ByName("packageid")

	skip, limit := utils.ParsePagination(r, 10, 100)
	sort := utils.ParseSort(r.URL.Query().Get("sort"), bson.D{{Key: "createdAt", Value: -1}}, nil)

	filter := bson.M{"packageId": packageID}
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(sort)

	list, err := utils.FindAndDecode[models.Review](ctx, db.ReviewsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	avg, count, err := AggregateForPackage(ctx, packageID)
	if err != nil {
		log.Println("Failed to aggregate reviews:", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok": true, "reviews": list, "averageRating": avg, "reviewCount": count,
	})
}

// POST /api/reviews
//
// A client may review a booking once, and only after it completed.
func AddReview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	clientID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || clientID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	clientName, _ := r.Context().Value(globals.UsernameKey).(string)

	var body struct {
		BookingID string `json:"bookingId"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Rating < 1 || body.Rating > 5 || body.Comment == "" {
		http.Error(w, "Invalid review data", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingid": body.BookingID}).Decode(&booking); err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}
	if booking.ClientID != clientID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if booking.Status != "completed" {
		utils.RespondWithJSON(w, http.StatusConflict, map[string]any{"ok": false, "reason": "booking-not-completed"})
		return
	}

	count, err := db.ReviewsCollection.CountDocuments(ctx, bson.M{"bookingId": body.BookingID, "clientId": clientID})
	if err != nil {
		log.Printf("Error checking for existing review: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if count > 0 {
		utils.RespondWithJSON(w, http.StatusConflict, map[string]any{"ok": false, "reason": "already-reviewed"})
		return
	}

	review := models.Review{
		ReviewID:   "rev" + utils.GenerateID(14),
		PackageID:  booking.PackageID,
		BookingID:  booking.BookingID,
		ClientID:   clientID,
		ClientName: clientName,
		Rating:     body.Rating,
		Comment:    body.Comment,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := db.ReviewsCollection.InsertOne(ctx, review); err != nil {
		http.Error(w, "Failed to insert review", http.StatusInternalServerError)
		return
	}

	m := models.Index{EntityType: "review", EntityId: review.ReviewID, Method: "POST", ItemId: booking.PackageID, ItemType: "package"}
	go mq.Emit(r.Context(), "review-added", m)

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "review": review})
}
