package scheduling

import (
	"fmt"
	"strings"
	"time"

	"frontdesk/models"
)

const (
	msgOffer = "Would you like me to help you schedule a call with our support team?"

	msgOfferReprompt = "Sorry, I didn't catch that. Would you like to schedule a call " +
		"with our support team? A simple yes or no works."

	msgCancelled = "No problem. Feel free to ask if there's anything else I can help with."

	msgConfirmReprompt = "Sorry, I didn't catch that. Should I go ahead and book it? " +
		"A simple yes or no works."

	msgNoAvailability = "I'm sorry, there are no open times over the next few days. " +
		"Please reach out to %s and the team will find a time that works for you."

	msgBackendDown = "I'm having trouble reaching our calendar right now. " +
		"Please contact %s directly and the team will get you scheduled."

	msgBookingFailed = "Something went wrong while booking your call. " +
		"Please contact %s directly and the team will get you scheduled."

	msgCorruptState = "I'm sorry, I lost track of that conversation. If you'd still " +
		"like to schedule a call with our support team, just ask and we can start over."
)

func formatSlot(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("Monday, January 2 at 3:04 PM")
}

func offerMessage(slots []models.Slot, loc *time.Location) string {
	var sb strings.Builder
	sb.WriteString("Here are the times we have open:\n")
	for i, s := range slots {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, formatSlot(s.Start, loc))
	}
	sb.WriteString("Which time works for you?")
	return sb.String()
}

func timeReprompt(slots []models.Slot, loc *time.Location) string {
	var sb strings.Builder
	sb.WriteString("Sorry, I couldn't match that to one of the open times:\n")
	for i, s := range slots {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, formatSlot(s.Start, loc))
	}
	sb.WriteString(`You can say something like "Monday at 9:00 AM".`)
	return sb.String()
}

func contactPrompt(slot models.Slot, loc *time.Location) string {
	return fmt.Sprintf("Great, I have you down for %s. Can I get your full name, "+
		"email address and phone number?", formatSlot(slot.Start, loc))
}

func missingContactPrompt(missing []string) string {
	return fmt.Sprintf("Thanks! I still need your %s.", joinAnd(missing))
}

func confirmPrompt(state *models.ConversationState, slotMinutes int, loc *time.Location) string {
	return fmt.Sprintf("Just to confirm: a %d-minute support call on %s for %s (%s, %s). "+
		"Shall I book it?",
		slotMinutes,
		formatSlot(state.ChosenSlot.Start, loc),
		state.Contact.Name,
		state.Contact.Email,
		state.Contact.Phone,
	)
}

func conflictMessage(taken models.Slot, offered []models.Slot, loc *time.Location) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "I'm sorry, %s was just booked by someone else. ", formatSlot(taken.Start, loc))
	sb.WriteString("These times were open a moment ago:\n")
	for i, s := range offered {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, formatSlot(s.Start, loc))
	}
	sb.WriteString("Would another of them work for you?")
	return sb.String()
}

func bookedMessage(eventRef string, slot models.Slot, loc *time.Location) string {
	msg := fmt.Sprintf("You're booked for %s. A calendar invitation is on its way "+
		"to your email.", formatSlot(slot.Start, loc))
	if eventRef != "" {
		msg += fmt.Sprintf(" You can view the event here: %s", eventRef)
	}
	return msg
}

func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
