package documentRepo

import (
	"context"
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/database"
	"frontdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository defines access to the indexed knowledge-base chunks.
type Repository interface {
	// List retrieves every indexed chunk with its embedding.
	List(ctx context.Context) ([]models.DocumentChunk, error)
	// ReplaceAll swaps the whole index for a freshly ingested set.
	ReplaceAll(ctx context.Context, chunks []models.DocumentChunk) error
}

// MongoDocumentRepo implements Repository using MongoDB.
type MongoDocumentRepo struct {
	coll *mongo.Collection
}

// NewMongoDocumentRepo creates a Repository backed by the shared Mongo client.
func NewMongoDocumentRepo() Repository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("document_chunks")
	return &MongoDocumentRepo{coll: coll}
}

func (r *MongoDocumentRepo) List(ctx context.Context) ([]models.DocumentChunk, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document chunks: %w", err)
	}
	defer cursor.Close(ctx)

	var chunks []models.DocumentChunk
	if err := cursor.All(ctx, &chunks); err != nil {
		return nil, fmt.Errorf("failed to decode document chunks: %w", err)
	}
	return chunks, nil
}

func (r *MongoDocumentRepo) ReplaceAll(ctx context.Context, chunks []models.DocumentChunk) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear document chunks: %w", err)
	}
	if len(chunks) == 0 {
		return nil
	}

	docs := make([]interface{}, len(chunks))
	for i := range chunks {
		docs[i] = chunks[i]
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert document chunks: %w", err)
	}
	return nil
}
