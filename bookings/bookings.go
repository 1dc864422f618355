package bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"eventease/activity"
	"eventease/db"
	"eventease/globals"
	"eventease/live"
	"eventease/models"
	"eventease/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dateLayout = "2006-01-02"

type submitRequest struct {
	PackageID      string   `json:"packageId"`
	Customizations []string `json:"customizations"` // option ids, in selection order
	GuestCount     int      `json:"guestCount"`
	EventDate      string   `json:"eventDate"`
	Requirements   string   `json:"requirements"`
}

// POST /api/bookings
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	clientID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || clientID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	clientName, _ := r.Context().Value(globals.UsernameKey).(string)

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.PackageID == "" || req.EventDate == "" {
		http.Error(w, "missing fields", http.StatusBadRequest)
		return
	}
	if req.GuestCount < 1 {
		http.Error(w, "guest count must be positive", http.StatusBadRequest)
		return
	}

	// No same-day or past bookings
	eventDay, err := time.Parse(dateLayout, req.EventDate)
	if err != nil {
		http.Error(w, "invalid event date", http.StatusBadRequest)
		return
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if !eventDay.After(today) {
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": false, "reason": "date-in-past"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Advisory global guard: a date already held by a confirmed or
	// in-progress booking cannot be requested again. Not transactional, a
	// race between simultaneous submissions is accepted.
	count, err := db.BookingsCollection.CountDocuments(ctx, bson.M{
		"eventDate": req.EventDate,
		"status":    bson.M{"$in": []string{StatusConfirmed, StatusInProgress}},
	})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if count > 0 {
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": false, "reason": "date-unavailable"})
		return
	}

	var pkg models.EventPackage
	if err := db.PackagesCollection.FindOne(ctx, bson.M{"packageid": req.PackageID}).Decode(&pkg); err != nil {
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": false, "reason": "package-missing"})
		return
	}

	// Resolve option ids against the catalog so prices are authoritative.
	// Later selections replace earlier ones within the same category.
	var selected []models.CustomizationOption
	for _, id := range req.Customizations {
		var opt models.CustomizationOption
		if err := db.CustomizationsCollection.FindOne(ctx, bson.M{"optionid": id}).Decode(&opt); err != nil {
			utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": false, "reason": "option-missing"})
			return
		}
		selected = SelectOption(selected, opt)
	}
	if selected == nil {
		selected = []models.CustomizationOption{}
	}

	booking := models.Booking{
		BookingID:      "bkg" + utils.GenerateID(14),
		ClientID:       clientID,
		ClientName:     clientName,
		PackageID:      pkg.PackageID,
		PackageName:    pkg.Name,
		Customizations: selected,
		TotalPrice:     ComputeTotal(pkg.BasePrice, selected, req.GuestCount),
		EventDate:      req.EventDate,
		GuestCount:     req.GuestCount,
		Requirements:   req.Requirements,
		Status:         StatusPending,
		CreatedAt:      time.Now().UTC(),
	}

	if _, err := db.BookingsCollection.InsertOne(ctx, booking); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if _, err := activity.Append(ctx,
		fmt.Sprintf("%s requested a booking for %q.", booking.ClientName, booking.PackageName),
		models.ActivityMeta{BookingID: booking.BookingID, ClientName: booking.ClientName},
	); err != nil {
		log.Println("Failed to log booking activity:", err)
	}

	live.Broadcast("admin:bookings", live.Event{Collection: "bookings", Action: "created", Data: booking})
	live.Broadcast("bookings:"+clientID, live.Event{Collection: "bookings", Action: "created", Data: booking})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "booking": booking})
}

// GET /api/bookings/mine
func GetMyBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	clientID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || clientID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	list, err := utils.FindAndDecode[models.Booking](ctx, db.BookingsCollection, bson.M{"clientId": clientID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "bookings": list})
}

// GET /api/bookings/booking/:bookingid — owner or admin
func GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "booking": booking})
}

// GET /api/bookings — admin list, cursor-paginated on creation time.
// ?after=<bookingid> continues past the given record; concurrent inserts may
// skip or duplicate across pages, an accepted limitation.
func ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		if !IsValidStatus(status) {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
		filter["status"] = status
	}

	if after := r.URL.Query().Get("after"); after != "" {
		var cursor models.Booking
		if err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingid": after}).Decode(&cursor); err != nil {
			http.Error(w, "unknown cursor", http.StatusBadRequest)
			return
		}
		filter["createdAt"] = bson.M{"$lt": cursor.CreatedAt}
	}

	_, limit := utils.ParsePagination(r, 25, 100)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)

	list, err := utils.FindAndDecode[models.Booking](ctx, db.BookingsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	next := ""
	if int64(len(list)) == limit && len(list) > 0 {
		next = list[len(list)-1].BookingID
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "bookings": list, "next": next})
}

// GET /api/bookings/unavailable-dates — event dates currently held by a
// confirmed or in-progress booking, for the client-side date picker.
func GetUnavailableDates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	dates, err := db.BookingsCollection.Distinct(ctx, "eventDate", bson.M{
		"status": bson.M{"$in": []string{StatusConfirmed, StatusInProgress}},
	})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "dates": dates})
}
