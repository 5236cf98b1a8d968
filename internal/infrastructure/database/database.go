package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	MediaCollection        = "media_records"
	PHQ9Collection         = "phq9_responses"
	OpenQuestionCollection = "open_question_responses"
	SettingsCollection     = "app_settings"
)

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initMediaCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initMediaCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": MediaCollection})
	if err != nil {
		return err
	}

	if len(collections) == 0 {
		collOpts := options.CreateCollection().SetValidator(bson.M{
			"$jsonSchema": bson.M{
				"bsonType": "object",
				"required": []string{
					"_id", "session_id", "user_id", "assessment_type",
					"media_type", "relative_path", "size_bytes", "created_at",
				},
				"properties": bson.M{
					"_id":        bson.M{"bsonType": "string"},
					"session_id": bson.M{"bsonType": "string"},
					"user_id":    bson.M{"bsonType": "string"},
					"assessment_type": bson.M{
						"enum": []string{"phq9", "open_questions"},
					},
					"question_identifier": bson.M{"bsonType": "string"},
					"media_type": bson.M{
						"enum": []string{"image", "video"},
					},
					"relative_path":     bson.M{"bsonType": "string"},
					"original_filename": bson.M{"bsonType": "string"},
					"mime_type":         bson.M{"bsonType": "string"},
					"size_bytes":        bson.M{"bsonType": []string{"long", "int"}},
					"duration_ms":       bson.M{"bsonType": []string{"long", "int"}},
					"resolution":        bson.M{"bsonType": "string"},
					"quality_setting":   bson.M{"bsonType": "string"},
					"captured_at":       bson.M{"bsonType": "date"},
					"created_at":        bson.M{"bsonType": "date"},
					"capture_settings":  bson.M{"bsonType": "object"},
				},
			},
		})

		if err := db.Client.Database(db.DBName).CreateCollection(ctx, MediaCollection, collOpts); err != nil {
			return err
		}
	}

	coll := db.Client.Database(db.DBName).Collection(MediaCollection)
	_, err = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// relative_path is the sole link between ledger and bytes and
			// must never collide or be reused.
			Keys:    bson.D{{Key: "relative_path", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "captured_at", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "captured_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
