package scheduling

import "strings"

// Affirmation is the result of classifying an utterance as yes, no or unclear.
type Affirmation int

const (
	AffirmationUnknown Affirmation = iota
	AffirmationYes
	AffirmationNo
)

// affirmativeTokens and negativeTokens are matched as whole words (or whole
// phrases) against the normalized utterance.
var affirmativeTokens = []string{
	"yes", "yeah", "yep", "yup", "sure", "ok", "okay", "absolutely",
	"definitely", "certainly", "go ahead", "book it", "sounds good",
	"lets do it", "please do", "that works",
}

var negativeTokens = []string{
	"no", "nope", "nah", "cancel", "not now", "no thanks", "no thank you",
	"never mind", "nevermind", "dont", "stop", "not interested",
}

// ClassifyAffirmation labels an utterance as YES, NO or UNKNOWN. If both an
// affirmative and a negative token match, or neither does, the result is
// UNKNOWN and the caller re-prompts without advancing the conversation.
func ClassifyAffirmation(utterance string) Affirmation {
	normalized := " " + normalizeUtterance(utterance) + " "

	hasYes := containsAnyToken(normalized, affirmativeTokens)
	hasNo := containsAnyToken(normalized, negativeTokens)

	switch {
	case hasYes && !hasNo:
		return AffirmationYes
	case hasNo && !hasYes:
		return AffirmationNo
	default:
		return AffirmationUnknown
	}
}

func containsAnyToken(padded string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(padded, " "+token+" ") {
			return true
		}
	}
	return false
}

// normalizeUtterance lowercases the text, drops apostrophes and flattens all
// other punctuation to spaces so token matching sees clean word boundaries.
func normalizeUtterance(utterance string) string {
	lowered := strings.ToLower(utterance)
	var sb strings.Builder
	for _, r := range lowered {
		switch {
		case r == '\'' || r == '’':
			// "let's" and "don't" collapse to "lets" and "dont"
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ':':
			sb.WriteRune(r)
		default:
			sb.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
