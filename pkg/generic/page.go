package generic

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Page is one window of a filtered collection scan. TotalCount covers every
// match of the filter, independent of the window.
type Page[T any] struct {
	Documents  []T   `json:"documents"`
	TotalCount int64 `json:"totalCount"`
}

// facetResult mirrors the raw $facet output:
// [{documents: [...], totalCount: [{count: N}]}]
type facetResult[T any] struct {
	Documents  []T          `bson:"documents"`
	TotalCount []facetCount `bson:"totalCount"`
}

type facetCount struct {
	Count int64 `bson:"count"`
}

// FindPage runs a single composite aggregation: exact-match filter, a
// [skip, skip+limit) slice of matches in natural order, and the total match
// count unbounded by the window.
func FindPage[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, skip, limit int64) (Page[T], error) {
	if filter == nil {
		filter = bson.M{}
	}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$facet", Value: bson.M{
			"documents":  bson.A{bson.M{"$skip": skip}, bson.M{"$limit": limit}},
			"totalCount": bson.A{bson.M{"$count": "count"}},
		}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return Page[T]{}, fmt.Errorf("aggregate %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var results []facetResult[T]
	if err := cursor.All(ctx, &results); err != nil {
		return Page[T]{}, fmt.Errorf("decode %s page: %w", coll.Name(), err)
	}
	if len(results) == 0 {
		return Page[T]{Documents: []T{}}, nil
	}
	return normalizePage(results[0]), nil
}

// normalizePage flattens the facet shape. Mongo omits the count entry when
// nothing matches; that must come back as 0, not an absent field.
func normalizePage[T any](res facetResult[T]) Page[T] {
	page := Page[T]{Documents: res.Documents}
	if page.Documents == nil {
		page.Documents = []T{}
	}
	if len(res.TotalCount) > 0 {
		page.TotalCount = res.TotalCount[0].Count
	}
	return page
}
