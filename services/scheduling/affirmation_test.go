package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyAffirmation(t *testing.T) {
	tests := []struct {
		utterance string
		want      Affirmation
	}{
		{"yes", AffirmationYes},
		{"Yes!", AffirmationYes},
		{"yeah sure", AffirmationYes},
		{"OK, go ahead.", AffirmationYes},
		{"sounds good", AffirmationYes},
		{"let's do it", AffirmationYes},
		{"Book it, please", AffirmationYes},
		{"that works for me", AffirmationYes},

		{"no", AffirmationNo},
		{"Nope.", AffirmationNo},
		{"no thanks", AffirmationNo},
		{"never mind", AffirmationNo},
		{"nevermind", AffirmationNo},
		{"please don't", AffirmationNo},
		{"not interested", AffirmationNo},
		{"cancel", AffirmationNo},

		{"", AffirmationUnknown},
		{"what times do you have?", AffirmationUnknown},
		{"maybe", AffirmationUnknown},
		{"tell me more first", AffirmationUnknown},
		// Both polarities present: refuse to guess.
		{"yes wait no", AffirmationUnknown},
		{"no yes", AffirmationUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.utterance, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyAffirmation(tc.utterance))
		})
	}
}

func TestClassifyAffirmationWholeWordsOnly(t *testing.T) {
	// "know" contains "no" and "yesterday" contains "yes"; neither should
	// count as an answer.
	assert.Equal(t, AffirmationUnknown, ClassifyAffirmation("I know the team is busy"))
	assert.Equal(t, AffirmationUnknown, ClassifyAffirmation("we spoke yesterday"))
}

func TestNormalizeUtterance(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Let's do it!", "lets do it"},
		{"  Monday,   at 9:00 AM. ", "monday at 9:00 am"},
		{"DON'T", "dont"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, normalizeUtterance(tc.in))
	}
}
