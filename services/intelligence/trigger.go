// File: services/intelligence/trigger.go
package intelligence

import "strings"

// schedulingKeywords in the question signal the user wants a human call.
var schedulingKeywords = []string{
	"schedule", "book a call", "book a meeting", "appointment",
	"talk to someone", "talk to a person", "speak with", "speak to",
	"call me", "human", "agent", "representative", "support call",
}

// uncertaintyIndicators in the generated answer signal the knowledge base
// came up short and a call should be offered instead.
var uncertaintyIndicators = []string{
	"i'm not sure", "i am not sure", "i don't know", "i do not know",
	"i don't have that information", "cannot help with that",
	"contact support", "contact our support", "reach out to the support",
	"speaking with the support team", "speak with the support team",
}

// shouldTriggerSchedule decides whether this answer should be followed by an
// offer to schedule a support call.
func shouldTriggerSchedule(question, answer string) bool {
	q := strings.ToLower(question)
	for _, kw := range schedulingKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}

	a := strings.ToLower(answer)
	for _, indicator := range uncertaintyIndicators {
		if strings.Contains(a, indicator) {
			return true
		}
	}
	return false
}
