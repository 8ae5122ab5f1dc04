package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreen(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		blocked    bool
		violations []string
	}{
		{"clean question", "What is the cashback rate?", false, nil},
		{"empty", "", false, nil},
		{"ssn pattern", "my ssn is 123-45-6789", true, []string{"personal_data"}},
		{"card number", "charge it to 4111 1111 1111 1111", true, []string{"personal_data"}},
		{"named credential", "here is my password for the portal", true, []string{"personal_data"}},
		{"legal question", "should I sue my landlord?", true, []string{"legal_advice"}},
		{"financial question", "should I buy tech stocks right now?", true, []string{"financial_advice"}},
		{
			"multiple categories sorted",
			"should I sue them or should I invest in bonds instead?",
			true,
			[]string{"financial_advice", "legal_advice"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Screen(tc.message)
			assert.Equal(t, tc.blocked, got.Blocked)
			assert.Equal(t, tc.violations, got.Violations)
			if tc.blocked {
				assert.NotEmpty(t, got.Reason)
			} else {
				assert.Empty(t, got.Reason)
			}
		})
	}
}

func TestScreenReasonMatchesFirstViolation(t *testing.T) {
	got := Screen("should I sue them or should I invest in bonds?")
	assert.Equal(t, "I can't provide financial or investment advice. Please consult a licensed advisor.", got.Reason)
}
