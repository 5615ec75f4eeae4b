package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/propview/real-estate-api/internal/core/ports"
)

// maxExactRooms is the top of the beds/baths selector domain. The UI offers
// 1, 2, 3, 4 and "5+", so a filter value of 5 means "5 or more" while lower
// values match exactly. Values outside 1–5 are rejected by request
// validation before they reach this package.
const maxExactRooms = 5

// buildListFilter translates the structured search filter into the query
// document the properties collection understands. The base condition
// is_deleted=false is always present; every other condition is added only
// when its parameter was supplied.
func buildListFilter(f ports.ListPropertiesFilter) (bson.M, error) {
	filter := bson.M{"is_deleted": false}

	if f.Name != "" {
		filter["name"] = primitive.Regex{Pattern: f.Name, Options: "i"}
	}
	if f.ReferenceNumber != 0 {
		filter["reference_number"] = f.ReferenceNumber
	}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.Beds != 0 {
		filter["beds"] = roomCondition(f.Beds)
	}
	if f.Baths != 0 {
		filter["baths"] = roomCondition(f.Baths)
	}
	if f.PriceMin != nil || f.PriceMax != nil {
		price := bson.M{}
		if f.PriceMin != nil {
			price["$gte"] = *f.PriceMin
		}
		if f.PriceMax != nil {
			price["$lte"] = *f.PriceMax
		}
		filter["price"] = price
	}
	if f.DeveloperID != "" {
		oid, err := primitive.ObjectIDFromHex(f.DeveloperID)
		if err != nil {
			return nil, fmt.Errorf("invalid developer id %q: %w", f.DeveloperID, err)
		}
		filter["developer_id"] = oid
	}

	return filter, nil
}

// roomCondition maps a beds/baths value to its query condition: 5 becomes a
// ">= 5" range, anything lower an exact match.
func roomCondition(n int) interface{} {
	if n >= maxExactRooms {
		return bson.M{"$gte": maxExactRooms}
	}
	return n
}
