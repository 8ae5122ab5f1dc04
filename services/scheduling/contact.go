package scheduling

import (
	"regexp"
	"strings"

	"frontdesk/models"
)

var (
	emailRE = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRE = regexp.MustCompile(`\+?1?[\s.\-]?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}\b`)

	// spokenEmailReplacer recovers addresses dictated as "jane at example dot com".
	spokenEmailReplacer = strings.NewReplacer(" at ", "@", " dot ", ".")

	introNameRE = regexp.MustCompile(`(?i)\b(?:my name is|i am|i'm|im|this is|call me)\s+([A-Za-z][A-Za-z'\-]*(?:\s+[A-Za-z][A-Za-z'\-]*){1,2})`)

	leadingNameRE     = regexp.MustCompile(`^\s*([A-Z][a-z'\-]+(?:\s+[A-Z][a-z'\-]+){1,2})\b`)
	capitalizedPairRE = regexp.MustCompile(`\b([A-Z][a-z'\-]+\s+[A-Z][a-z'\-]+)\b`)
)

// nameStopwords are tokens that look name-shaped after an intro phrase but
// never are.
var nameStopwords = map[string]bool{
	"i": true, "im": true, "a": true, "an": true, "the": true, "my": true,
	"not": true, "so": true, "just": true, "here": true, "this": true,
	"that": true, "hi": true, "hello": true, "hey": true, "thanks": true,
	"thank": true, "you": true, "name": true, "is": true, "calling": true,
	"good": true, "sure": true, "sorry": true, "and": true, "but": true,
	"at": true, "on": true, "for": true, "to": true, "with": true,
	"from": true, "or": true, "email": true, "phone": true, "number": true,
}

// ExtractContact pulls whatever contact fields the utterance carries. Absent
// fields come back empty; the caller merges the result into what it already
// holds, so partial answers across turns accumulate.
func ExtractContact(utterance string) models.Contact {
	return models.Contact{
		Name:  extractName(utterance),
		Email: extractEmail(utterance),
		Phone: extractPhone(utterance),
	}
}

func extractEmail(utterance string) string {
	if m := emailRE.FindString(utterance); m != "" {
		return m
	}
	spoken := spokenEmailReplacer.Replace(strings.ToLower(utterance))
	return emailRE.FindString(spoken)
}

func extractPhone(utterance string) string {
	// Strip any email first so its digits cannot be misread as a number.
	cleaned := emailRE.ReplaceAllString(utterance, " ")
	return strings.TrimSpace(phoneRE.FindString(cleaned))
}

// extractName tries, in order: an explicit intro phrase, a capitalized name
// at the very start of the utterance, then any capitalized pair left after
// stripping the email and phone number out.
func extractName(utterance string) string {
	if m := introNameRE.FindStringSubmatch(utterance); m != nil {
		// The capture is greedy, so trailing filler like "and" is shed
		// token by token until a clean name remains.
		tokens := strings.Fields(m[1])
		for end := len(tokens); end >= 2; end-- {
			if name := validName(strings.Join(tokens[:end], " ")); name != "" {
				return name
			}
		}
	}
	if m := leadingNameRE.FindStringSubmatch(utterance); m != nil {
		if name := validName(m[1]); name != "" {
			return name
		}
	}
	cleaned := emailRE.ReplaceAllString(utterance, " ")
	cleaned = phoneRE.ReplaceAllString(cleaned, " ")
	for _, m := range capitalizedPairRE.FindAllStringSubmatch(cleaned, -1) {
		if name := validName(m[1]); name != "" {
			return name
		}
	}
	return ""
}

// validName accepts two or three tokens, none of which is a stopword, a
// number or an address fragment. Returns the cleaned name or "".
func validName(candidate string) string {
	tokens := strings.Fields(candidate)
	if len(tokens) < 2 || len(tokens) > 3 {
		return ""
	}
	for _, tok := range tokens {
		if strings.ContainsAny(tok, "0123456789@") {
			return ""
		}
		if nameStopwords[strings.ToLower(strings.ReplaceAll(tok, "'", ""))] {
			return ""
		}
	}
	return strings.Join(tokens, " ")
}
