package wishlist

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

// Toggle flips a package in or out of a wishlist set.
func Toggle(ids []string, packageID string) []string {
	out := make([]string, 0, len(ids)+1)
	found := false
	for _, id := range ids {
		if id == packageID {
			found = true
			continue
		}
		out = append(out, id)
	}
	if !found {
		out = append(out, packageID)
	}
	return out
}

// GET /api/wishlist
func GetWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var wl models.Wishlist
	err := db.WishlistsCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&wl)
	if err == mongo.ErrNoDocuments {
		wl = models.Wishlist{UserID: userID, PackageIDs: []string{}}
	} else if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if wl.PackageIDs == nil {
		wl.PackageIDs = []string{}
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "wishlist": wl})
}

// POST /api/wishlist/toggle
func ToggleWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body struct {
		PackageID string `json:"packageId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.PackageID == "" {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var wl models.Wishlist
	err := db.WishlistsCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&wl)
	if err != nil && err != mongo.ErrNoDocuments {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	wl.UserID = userID
	wl.PackageIDs = Toggle(wl.PackageIDs, body.PackageID)

	_, err = db.WishlistsCollection.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": wl},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "wishlist": wl})
}
