package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"emostore/internal/domain/model"
	dbRepository "emostore/internal/domain/repository/database"
)

type MediaStats struct {
	db *Database
}

func NewMediaStats(db *Database) *MediaStats {
	return &MediaStats{db: db}
}

// Stats aggregates record counts and byte totals in one pipeline pass.
// An empty userID yields the global view.
func (s *MediaStats) Stats(ctx context.Context, userID string) (dbRepository.LedgerStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.db.Client.Database(s.db.DBName).Collection(MediaCollection)

	match := bson.M{}
	if userID != "" {
		match["user_id"] = userID
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id":         nil,
			"records":     bson.M{"$sum": 1},
			"total_bytes": bson.M{"$sum": "$size_bytes"},
			"videos": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$media_type", model.MediaVideo}}, 1, 0,
			}}},
			"images": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$media_type", model.MediaImage}}, 1, 0,
			}}},
		}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return dbRepository.LedgerStats{}, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Records    int64 `bson:"records"`
		TotalBytes int64 `bson:"total_bytes"`
		Videos     int64 `bson:"videos"`
		Images     int64 `bson:"images"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return dbRepository.LedgerStats{}, err
	}

	if len(rows) == 0 {
		return dbRepository.LedgerStats{}, nil
	}

	return dbRepository.LedgerStats{
		Records:        rows[0].Records,
		VideoRecords:   rows[0].Videos,
		ImageRecords:   rows[0].Images,
		TotalSizeBytes: rows[0].TotalBytes,
	}, nil
}
