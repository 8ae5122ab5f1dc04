// File: ingestion/main.go
//
// Rebuilds the knowledge-base index: reads a JSON file of source chunks,
// embeds each one and replaces the stored index wholesale.
//
//	go run ./ingestion -input chunks.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"frontdesk/config"
	"frontdesk/database"
	documentRepo "frontdesk/database/repository/documents"
	"frontdesk/models"
	"frontdesk/services/intelligence"
	"frontdesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sourceChunk is one entry of the input file.
type sourceChunk struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

func main() {
	inputPath := flag.String("input", "chunks.json", "path to the JSON file of source chunks")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()
	database.InitDB()

	raw, err := os.ReadFile(*inputPath)
	if err != nil {
		logger.Sugar().Fatalf("ingestion: failed to read %s: %v", *inputPath, err)
	}

	var sources []sourceChunk
	if err := json.Unmarshal(raw, &sources); err != nil {
		logger.Sugar().Fatalf("ingestion: failed to parse %s: %v", *inputPath, err)
	}
	if len(sources) == 0 {
		logger.Sugar().Fatalf("ingestion: %s contains no chunks", *inputPath)
	}

	ctx := context.Background()
	gemini, err := intelligence.NewGeminiClient(ctx, config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("ingestion: failed to initialize Gemini client: %v", err)
	}

	chunks := make([]models.DocumentChunk, 0, len(sources))
	for i, src := range sources {
		if src.Text == "" {
			continue
		}
		embedding, err := gemini.Embed(ctx, src.Text)
		if err != nil {
			logger.Sugar().Fatalf("ingestion: failed to embed chunk %d (%s): %v", i, src.Source, err)
		}
		chunks = append(chunks, models.DocumentChunk{
			ID:        uuid.New().String(),
			Source:    src.Source,
			Text:      src.Text,
			Embedding: embedding,
		})

		// Light pacing to stay under the embedding API rate limit.
		time.Sleep(100 * time.Millisecond)
	}

	repo := documentRepo.NewMongoDocumentRepo()
	if err := repo.ReplaceAll(ctx, chunks); err != nil {
		logger.Sugar().Fatalf("ingestion: failed to store chunks: %v", err)
	}

	logger.Info("ingestion complete",
		zap.Int("chunks", len(chunks)),
		zap.String("input", *inputPath))
}
