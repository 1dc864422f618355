package customizations

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"eventease/db"
	"eventease/models"
	"eventease/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/customizations?category=venue
func ListOptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if category := r.URL.Query().Get("category"); category != "" {
		if !models.IsValidCategory(category) {
			http.Error(w, "invalid category", http.StatusBadRequest)
			return
		}
		filter["category"] = category
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "price", Value: 1}})
	list, err := utils.FindAndDecode[models.CustomizationOption](ctx, db.CustomizationsCollection, filter, opts)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "options": list})
}

// POST /api/customizations — admin only
func CreateOption(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var opt models.CustomizationOption
	if err := json.NewDecoder(r.Body).Decode(&opt); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if opt.Name == "" || opt.Price <= 0 || !models.IsValidCategory(opt.Category) {
		http.Error(w, "missing required fields", http.StatusBadRequest)
		return
	}

	opt.OptionID = "opt" + utils.GenerateID(14)
	opt.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if _, err := db.CustomizationsCollection.InsertOne(ctx, opt); err != nil {
		http.Error(w, "db insert failed", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "option": opt})
}

// PUT /api/customizations/:optionid — admin only
func EditOption(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	optionID := ps.ByName("optionid")

	var updatedFields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&updatedFields); err != nil {
		http.Error(w, "Invalid update data", http.StatusBadRequest)
		return
	}
	delete(updatedFields, "optionid")
	if category, ok := updatedFields["category"].(string); ok && !models.IsValidCategory(category) {
		http.Error(w, "invalid category", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.CustomizationsCollection.UpdateOne(ctx,
		bson.M{"optionid": optionID},
		bson.M{"$set": updatedFields},
	)
	if err != nil {
		http.Error(w, "Failed to update option", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Option not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// DELETE /api/customizations/:optionid — admin only
func DeleteOption(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	optionID := ps.ByName("optionid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.CustomizationsCollection.DeleteOne(ctx, bson.M{"optionid": optionID})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Option not found", http.StatusNotFound)
		return
	}
	// Existing bookings keep their embedded copy of the option.
	w.WriteHeader(http.StatusNoContent)
}
