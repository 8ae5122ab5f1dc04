// File: services/intelligence/answer.go
package intelligence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"frontdesk/models"
	"frontdesk/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	answerCachePrefix = "qa:answer:"

	// Chunks scoring below this are treated as irrelevant.
	relevanceThreshold = 0.3
	maxContextChunks   = 10
)

// Answer produces a grounded reply for the question. Results are cached by
// normalized question text; a cache hit skips both the embedding and the
// generation call.
func (s *DefaultAnswerService) Answer(ctx context.Context, question string) (*models.Answer, error) {
	start := time.Now()
	logger := utils.GetLogger()

	question = strings.TrimSpace(question)
	if len(question) < 3 {
		return &models.Answer{
			Text:      "Could you share a bit more detail about what you'd like to know?",
			LatencyMS: time.Since(start).Milliseconds(),
		}, nil
	}

	cacheKey := answerCacheKey(question)
	if cached := s.cachedAnswer(ctx, cacheKey); cached != nil {
		cached.LatencyMS = time.Since(start).Milliseconds()
		return cached, nil
	}

	contextText := s.retrieveContext(ctx, question)
	text, err := s.LLM.GenerateContent(ctx, buildPrompt(question, contextText))
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	answer := &models.Answer{
		Text:            text,
		TriggerSchedule: shouldTriggerSchedule(question, text),
		LatencyMS:       time.Since(start).Milliseconds(),
	}
	s.storeAnswer(ctx, cacheKey, answer)

	logger.Debug("answered question",
		zap.Int64("latency_ms", answer.LatencyMS),
		zap.Bool("trigger_schedule", answer.TriggerSchedule))
	return answer, nil
}

// retrieveContext embeds the question and collects the closest chunks. Any
// failure here degrades to an uncontexted answer instead of failing the turn.
func (s *DefaultAnswerService) retrieveContext(ctx context.Context, question string) string {
	logger := utils.GetLogger()

	queryVec, err := s.LLM.Embed(ctx, question)
	if err != nil {
		logger.Warn("question embedding failed, answering without context", zap.Error(err))
		return ""
	}

	chunks, err := s.Docs.List(ctx)
	if err != nil {
		logger.Warn("chunk listing failed, answering without context", zap.Error(err))
		return ""
	}

	type scored struct {
		chunk models.DocumentChunk
		score float64
	}
	var ranked []scored
	for _, c := range chunks {
		score := cosineSimilarity(queryVec, c.Embedding)
		if score >= relevanceThreshold {
			ranked = append(ranked, scored{chunk: c, score: score})
		}
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > maxContextChunks {
		ranked = ranked[:maxContextChunks]
	}

	var sb strings.Builder
	for _, r := range ranked {
		sb.WriteString(r.chunk.Text)
		sb.WriteString("\n\n")
	}
	return strings.TrimSpace(sb.String())
}

func buildPrompt(question, contextText string) string {
	var sb strings.Builder
	sb.WriteString("You are a support assistant for our customers. Answer the question using ")
	sb.WriteString("only the provided context. If the context does not contain the answer, say ")
	sb.WriteString("you are not sure and suggest speaking with the support team.\n\n")
	if contextText != "" {
		sb.WriteString("Context:\n")
		sb.WriteString(contextText)
		sb.WriteString("\n\n")
	}
	sb.WriteString("Question: ")
	sb.WriteString(question)
	sb.WriteString("\nAnswer:")
	return sb.String()
}

func answerCacheKey(question string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(question)))
	return answerCachePrefix + hex.EncodeToString(sum[:])
}

func (s *DefaultAnswerService) cachedAnswer(ctx context.Context, key string) *models.Answer {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		utils.GetLogger().Warn("answer cache read failed", zap.Error(err))
		return nil
	}
	var answer models.Answer
	if err := json.Unmarshal([]byte(data), &answer); err != nil {
		return nil
	}
	return &answer
}

func (s *DefaultAnswerService) storeAnswer(ctx context.Context, key string, answer *models.Answer) {
	if s.Cache == nil {
		return
	}
	b, err := json.Marshal(answer)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, b, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("answer cache write failed", zap.Error(err))
	}
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
