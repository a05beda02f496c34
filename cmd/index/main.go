package main

import (
	"context"
	"log"
	"time"

	"trekheaven/internal/config"
	"trekheaven/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	log.Println("Migration completed successfully!")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Users indexes
	createIndex(ctx, db, "users", bson.D{{Key: "email", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})

	// Treks indexes
	createIndex(ctx, db, "treks", bson.D{{Key: "difficulty", Value: 1}}, nil)
	createIndex(ctx, db, "treks", bson.D{{Key: "createdAt", Value: -1}}, nil)

	// Trek registrations indexes
	createIndex(ctx, db, "trekregistrations", bson.D{
		{Key: "user", Value: 1},
		{Key: "createdAt", Value: -1},
	}, nil)
	createIndex(ctx, db, "trekregistrations", bson.D{{Key: "trek", Value: 1}}, nil)

	// Blogs indexes
	createIndex(ctx, db, "blogs", bson.D{{Key: "slug", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "blogs", bson.D{{Key: "title", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "blogs", bson.D{{Key: "tags", Value: 1}}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Printf("Warning: Failed to create index on %s: %v", collection, err)
		return
	}

	log.Printf("Created index %s on %s", name, collection)
}

func ptrBool(b bool) *bool {
	return &b
}
