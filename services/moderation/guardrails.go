// File: services/moderation/guardrails.go
package moderation

import (
	"regexp"
	"sort"
	"strings"
)

// Result is the outcome of screening one user message.
type Result struct {
	Blocked    bool     `json:"blocked"`
	Reason     string   `json:"reason,omitempty"`
	Violations []string `json:"violations,omitempty"`
}

// guardrails maps a violation category to the patterns that flag it.
var guardrails = map[string][]*regexp.Regexp{
	"personal_data": {
		regexp.MustCompile(`\b\d{3}[-\s]?\d{2}[-\s]?\d{4}\b`),
		regexp.MustCompile(`\b(?:\d[\s-]?){13,16}\b`),
		regexp.MustCompile(`(?i)\b(?:my|his|her|their)\s+(?:ssn|social security|card number|account number|password)\b`),
	},
	"legal_advice": {
		regexp.MustCompile(`(?i)\b(?:should i sue|can i sue|legal advice|is it legal|lawsuit against)\b`),
		regexp.MustCompile(`(?i)\b(?:draft|review)\s+(?:a\s+)?(?:contract|will|legal document)\b`),
	},
	"financial_advice": {
		regexp.MustCompile(`(?i)\b(?:should i (?:buy|sell|invest in)|investment advice|stock tip|which stocks?)\b`),
		regexp.MustCompile(`(?i)\b(?:guaranteed return|double my money)\b`),
	},
}

var reasons = map[string]string{
	"personal_data":    "Please don't share sensitive personal details like card or social security numbers in chat.",
	"legal_advice":     "I can't provide legal advice. Please consult a qualified attorney.",
	"financial_advice": "I can't provide financial or investment advice. Please consult a licensed advisor.",
}

// Screen checks the message against every guardrail category. Categories are
// evaluated in sorted order so the reported reason is deterministic.
func Screen(message string) Result {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return Result{}
	}

	var violations []string
	for category, patterns := range guardrails {
		for _, p := range patterns {
			if p.MatchString(trimmed) {
				violations = append(violations, category)
				break
			}
		}
	}
	if len(violations) == 0 {
		return Result{}
	}

	sort.Strings(violations)
	return Result{
		Blocked:    true,
		Reason:     reasons[violations[0]],
		Violations: violations,
	}
}
