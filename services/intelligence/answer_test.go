package intelligence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/models"
)

type fakeGenerator struct {
	answer    string
	embedding []float32
	prompts   []string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.answer, nil
}

func (f *fakeGenerator) Embed(_ context.Context, _ string) ([]float32, error) {
	return f.embedding, nil
}

type fakeDocs struct {
	chunks []models.DocumentChunk
}

func (f *fakeDocs) List(_ context.Context) ([]models.DocumentChunk, error) {
	return f.chunks, nil
}

func (f *fakeDocs) ReplaceAll(_ context.Context, chunks []models.DocumentChunk) error {
	f.chunks = chunks
	return nil
}

func TestAnswerUsesRelevantChunks(t *testing.T) {
	gen := &fakeGenerator{
		answer:    "Our cashback rate is 2%.",
		embedding: []float32{1, 0},
	}
	docs := &fakeDocs{chunks: []models.DocumentChunk{
		{ID: "a", Text: "Cashback is 2% on every purchase.", Embedding: []float32{0.9, 0.1}},
		{ID: "b", Text: "Our office dog is named Biscuit.", Embedding: []float32{-1, 0.2}},
	}}
	svc := &DefaultAnswerService{Docs: docs, LLM: gen}

	answer, err := svc.Answer(context.Background(), "what is the cashback rate?")
	require.NoError(t, err)
	assert.Equal(t, "Our cashback rate is 2%.", answer.Text)
	assert.False(t, answer.TriggerSchedule)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Cashback is 2%")
	assert.NotContains(t, gen.prompts[0], "Biscuit", "irrelevant chunks stay out of the prompt")
}

func TestAnswerRejectsTooShortQuestion(t *testing.T) {
	gen := &fakeGenerator{answer: "should not be called"}
	svc := &DefaultAnswerService{Docs: &fakeDocs{}, LLM: gen}

	answer, err := svc.Answer(context.Background(), "  a ")
	require.NoError(t, err)
	assert.Empty(t, gen.prompts)
	assert.Contains(t, answer.Text, "more detail")
}

func TestShouldTriggerSchedule(t *testing.T) {
	tests := []struct {
		name     string
		question string
		answer   string
		want     bool
	}{
		{"explicit scheduling ask", "can I schedule a call?", "Sure.", true},
		{"wants a human", "let me talk to someone please", "Of course.", true},
		{"uncertain answer", "what is the APR?", "I'm not sure about that. It may be best to speak with the support team.", true},
		{"plain informational answer", "what is cashback?", "Cashback is 2% on purchases.", false},
		{"empty", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, shouldTriggerSchedule(tc.question, tc.answer))
		})
	}
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	assert.Zero(t, cosineSimilarity(nil, []float32{1}))
	assert.Zero(t, cosineSimilarity([]float32{1}, []float32{1, 2}))
}
