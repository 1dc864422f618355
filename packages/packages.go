package packages

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"eventease/db"
	"eventease/filemgr"
	"eventease/globals"
	"eventease/models"
	"eventease/mq"
	"eventease/rdx"
	"eventease/reviews"
	"eventease/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const packageCacheTTL = 10 * time.Minute

// PackageWithRating is the list/detail shape: catalog entry plus on-read
// review aggregates, never stored.
type PackageWithRating struct {
	models.EventPackage `bson:",inline"`
	AverageRating       float64 `json:"averageRating"`
	ReviewCount         int     `json:"reviewCount"`
}

// GET /api/packages
func GetPackages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	skip, limit := utils.ParsePagination(r, 20, 100)
	sort := utils.ParseSort(r.URL.Query().Get("sort"), bson.D{{Key: "createdAt", Value: -1}}, map[string]bool{
		"basePrice": true, "name": true, "createdAt": true,
	})
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(sort)

	pkgs, err := utils.FindAndDecode[models.EventPackage](ctx, db.PackagesCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve packages")
		return
	}

	out := make([]PackageWithRating, 0, len(pkgs))
	for _, p := range pkgs {
		avg, count, err := reviews.AggregateForPackage(ctx, p.PackageID)
		if err != nil {
			log.Println("Failed to aggregate reviews for", p.PackageID, ":", err)
		}
		out = append(out, PackageWithRating{EventPackage: p, AverageRating: avg, ReviewCount: count})
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "packages": out})
}

// GET /api/packages/:packageid
func GetPackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	packageID := ps.ByName("packageid")

	// Package docs change rarely; ratings are always aggregated live.
	var pkg models.EventPackage
	if cached, err := rdx.RdxGet("package:" + packageID); err == nil && cached != "" {
		if err := json.Unmarshal([]byte(cached), &pkg); err != nil {
			pkg = models.EventPackage{}
		}
	}
	if pkg.PackageID == "" {
		err := db.PackagesCollection.FindOne(ctx, bson.M{"packageid": packageID}).Decode(&pkg)
		if err != nil {
			http.Error(w, "Package not found", http.StatusNotFound)
			return
		}
		if data, err := json.Marshal(pkg); err == nil {
			if err := rdx.SetWithExpiry("package:"+packageID, string(data), packageCacheTTL); err != nil {
				log.Println("Failed to cache package", packageID, ":", err)
			}
		}
	}

	avg, count, err := reviews.AggregateForPackage(ctx, pkg.PackageID)
	if err != nil {
		log.Println("Failed to aggregate reviews for", pkg.PackageID, ":", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"package": PackageWithRating{EventPackage: pkg, AverageRating: avg, ReviewCount: count},
	})
}

// POST /api/packages — admin only. Multipart with a "package" JSON field and
// an optional "banner" file.
func CreatePackage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form", http.StatusBadRequest)
		return
	}

	if r.FormValue("package") == "" {
		http.Error(w, "Missing package data", http.StatusBadRequest)
		return
	}

	var pkg models.EventPackage
	if err := json.Unmarshal([]byte(r.FormValue("package")), &pkg); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if pkg.Name == "" || pkg.BasePrice <= 0 {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	adminID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		http.Error(w, "Invalid user", http.StatusBadRequest)
		return
	}
	pkg.CreatedBy = adminID
	pkg.CreatedAt = time.Now().UTC()
	pkg.PackageID = "pkg" + utils.GenerateID(14)
	if pkg.Features == nil {
		pkg.Features = []string{}
	}

	if _, fh, err := r.FormFile("banner"); err == nil {
		img, thumb, err := filemgr.SaveBannerImage(fh)
		if err != nil {
			http.Error(w, "Failed to store banner", http.StatusBadRequest)
			return
		}
		pkg.Image = img
		pkg.Thumbnail = thumb
	} else if err != http.ErrMissingFile {
		http.Error(w, "Error retrieving banner file", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if _, err := db.PackagesCollection.InsertOne(ctx, pkg); err != nil {
		http.Error(w, "db insert failed", http.StatusInternalServerError)
		return
	}

	m := models.Index{EntityType: "package", EntityId: pkg.PackageID, Method: "POST"}
	go mq.Emit(r.Context(), "package-created", m)

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "package": pkg})
}

// PUT /api/packages/:packageid — admin only
func EditPackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	packageID := ps.ByName("packageid")

	var updatedFields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&updatedFields); err != nil {
		http.Error(w, "Invalid update data", http.StatusBadRequest)
		return
	}

	// Identity and provenance fields are not editable
	delete(updatedFields, "packageid")
	delete(updatedFields, "createdBy")
	delete(updatedFields, "createdAt")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.PackagesCollection.UpdateOne(ctx,
		bson.M{"packageid": packageID},
		bson.M{"$set": updatedFields},
	)
	if err != nil {
		http.Error(w, "Failed to update package", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Package not found", http.StatusNotFound)
		return
	}

	if err := rdx.RdxDel("package:" + packageID); err != nil {
		log.Println("Failed to evict package cache for", packageID, ":", err)
	}

	m := models.Index{EntityType: "package", EntityId: packageID, Method: "PUT"}
	go mq.Emit(r.Context(), "package-edited", m)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// DELETE /api/packages/:packageid — admin only
func DeletePackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	packageID := ps.ByName("packageid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.PackagesCollection.DeleteOne(ctx, bson.M{"packageid": packageID})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Package not found", http.StatusNotFound)
		return
	}
	// Bookings referencing this package are kept; they carry their own
	// packageName and frozen totalPrice.
	if err := rdx.RdxDel("package:" + packageID); err != nil {
		log.Println("Failed to evict package cache for", packageID, ":", err)
	}

	m := models.Index{EntityType: "package", EntityId: packageID, Method: "DELETE"}
	go mq.Emit(r.Context(), "package-deleted", m)

	w.WriteHeader(http.StatusNoContent)
}

// POST /api/packages/:packageid/banner — admin only
func UploadBanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	packageID := ps.ByName("packageid")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form", http.StatusBadRequest)
		return
	}
	_, fh, err := r.FormFile("banner")
	if err != nil {
		http.Error(w, "Missing banner file", http.StatusBadRequest)
		return
	}

	img, thumb, err := filemgr.SaveBannerImage(fh)
	if err != nil {
		http.Error(w, "Failed to store banner", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err = db.PackagesCollection.FindOneAndUpdate(ctx,
		bson.M{"packageid": packageID},
		bson.M{"$set": bson.M{"image": img, "thumbnail": thumb}},
	).Err()
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Package not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if err := rdx.RdxDel("package:" + packageID); err != nil {
		log.Println("Failed to evict package cache for", packageID, ":", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "image": img, "thumbnail": thumb})
}
