package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/models"
)

func TestExtractContactAllAtOnce(t *testing.T) {
	got := ExtractContact("I'm Jane Doe, jane@example.com, 555-123-4567")
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "jane@example.com", got.Email)
	assert.Equal(t, "555-123-4567", got.Phone)
}

func TestExtractContactBareFields(t *testing.T) {
	got := ExtractContact("Jane Doe jane@x.com 555-000-1111")
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "jane@x.com", got.Email)
	assert.Equal(t, "555-000-1111", got.Phone)
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      string
	}{
		{"my name is", "my name is John Smith", "John Smith"},
		{"intro with trailing filler", "My name is Jane Doe and my email is jane@example.com", "Jane Doe"},
		{"this is", "Hi, this is Mary Jane Watson", "Mary Jane Watson"},
		{"leading capitalized pair", "Robert Brown, rb@corp.io", "Robert Brown"},
		{"pair buried mid-sentence", "you can put it under Alice Cooper please", "Alice Cooper"},
		{"single token rejected", "I'm Jane", ""},
		{"stopword pair rejected", "I'm not sure", ""},
		{"lowercase pair rejected", "jane doe here", ""},
		{"email is not a name", "jane.doe@example.com", ""},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractName(tc.utterance))
		})
	}
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      string
	}{
		{"plain address", "reach me at jane@example.com thanks", "jane@example.com"},
		{"plus and dots", "john.smith+work@mail.co.uk", "john.smith+work@mail.co.uk"},
		{"spoken form", "it's jane at example dot com", "jane@example.com"},
		{"no address", "I'll give it to you later", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractEmail(tc.utterance))
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      string
	}{
		{"dashed", "call me at 555-123-4567", "555-123-4567"},
		{"parenthesized area code", "(555) 123-4567", "(555) 123-4567"},
		{"dotted", "555.123.4567", "555.123.4567"},
		{"bare digits", "my number is 5551234567", "5551234567"},
		{"country code", "+1 555-123-4567", "+1 555-123-4567"},
		{"none", "no phone, sorry", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractPhone(tc.utterance))
		})
	}
}

func TestContactMergeNeverOverwrites(t *testing.T) {
	held := models.Contact{Name: "Jane Doe", Email: "jane@example.com"}
	update := ExtractContact("I'm John Smith, 555-000-1111, john@other.com")

	merged := held.Merge(update)
	assert.Equal(t, "Jane Doe", merged.Name)
	assert.Equal(t, "jane@example.com", merged.Email)
	assert.Equal(t, "555-000-1111", merged.Phone)
	assert.True(t, merged.Complete())
}
