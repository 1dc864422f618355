package reviews

import (
	"context"
	"net/http"

	"eventease/db"
	"eventease/models"
	"eventease/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Average computes the mean rating of a review set. Derived on read, never
// stored.
func Average(list []models.Review) (float64, int) {
	if len(list) == 0 {
		return 0, 0
	}
	sum := 0
	for _, rv := range list {
		sum += rv.Rating
	}
	return float64(sum) / float64(len(list)), len(list)
}

// AggregateForPackage scans the reviews of one package.
func AggregateForPackage(ctx context.Context, packageID string) (float64, int, error) {
	list, err := utils.FindAndDecode[models.Review](ctx, db.ReviewsCollection, bson.M{"packageId": packageID})
	if err != nil {
		return 0, 0, err
	}
	avg, count := Average(list)
	return avg, count, nil
}

// AggregateForVendor walks Task → Booking → package id and aggregates the
// reviews of every package the vendor worked on.
func AggregateForVendor(ctx context.Context, vendorID string) (float64, int, error) {
	taskList, err := utils.FindAndDecode[models.VendorTask](ctx, db.TasksCollection, bson.M{"vendorId": vendorID})
	if err != nil {
		return 0, 0, err
	}
	if len(taskList) == 0 {
		return 0, 0, nil
	}

	bookingIDs := make([]string, 0, len(taskList))
	for _, t := range taskList {
		bookingIDs = append(bookingIDs, t.BookingID)
	}

	bookingList, err := utils.FindAndDecode[models.Booking](ctx, db.BookingsCollection, bson.M{"bookingid": bson.M{"$in": bookingIDs}})
	if err != nil {
		return 0, 0, err
	}

	seen := make(map[string]bool)
	var packageIDs []string
	for _, b := range bookingList {
		if !seen[b.PackageID] {
			seen[b.PackageID] = true
			packageIDs = append(packageIDs, b.PackageID)
		}
	}
	if len(packageIDs) == 0 {
		return 0, 0, nil
	}

	list, err := utils.FindAndDecode[models.Review](ctx, db.ReviewsCollection, bson.M{"packageId": bson.M{"$in": packageIDs}})
	if err != nil {
		return 0, 0, err
	}
	avg, count := Average(list)
	return avg, count, nil
}

// GET /api/reviews/vendor/:vendorid — vendor-level aggregate for the
// insights panel.
func GetVendorRating(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	avg, count, err := AggregateForVendor(r.Context(), ps.ByName("vendorid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to aggregate reviews")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok": true, "averageRating": avg, "reviewCount": count,
	})
}
