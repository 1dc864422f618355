package utils

import (
	"net/http"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// ParsePagination reads ?page= and ?limit= and returns mongo skip/limit values.
func ParsePagination(r *http.Request, defaultLimit, maxLimit int64) (skip, limit int64) {
	q := r.URL.Query()

	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.ParseInt(q.Get("limit"), 10, 64)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return (page - 1) * limit, limit
}

// ParseSort turns "field" or "-field" into a bson sort document, falling back
// to def when the field is empty or not in allowed. A nil allowed map accepts
// any field name.
func ParseSort(raw string, def bson.D, allowed map[string]bool) bson.D {
	if raw == "" {
		return def
	}
	order := 1
	field := raw
	if strings.HasPrefix(raw, "-") {
		order = -1
		field = raw[1:]
	}
	if field == "" {
		return def
	}
	if allowed != nil && !allowed[field] {
		return def
	}
	return bson.D{{Key: field, Value: order}}
}
