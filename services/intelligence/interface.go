// File: services/intelligence/interface.go
package intelligence

import (
	"context"
	"time"

	documentRepo "frontdesk/database/repository/documents"
	"frontdesk/models"

	"github.com/go-redis/redis/v8"
)

// Generator produces text and embeddings. *GeminiClient is the production
// implementation; tests substitute a fake.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Embed(ctx context.Context, text string) ([]float32, error)
}

// AnswerService answers support questions against the indexed knowledge base.
type AnswerService interface {
	Answer(ctx context.Context, question string) (*models.Answer, error)
}

// DefaultAnswerService retrieves relevant chunks, generates a grounded answer
// and caches the result.
type DefaultAnswerService struct {
	Docs     documentRepo.Repository
	LLM      Generator
	Cache    *redis.Client
	CacheTTL time.Duration
}
