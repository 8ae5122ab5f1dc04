package models

import "time"

// BusyInterval is a time range already occupied on the support calendar.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Slot is a single bookable support-call window. A slot is identified by its
// start time; every slot has the same fixed duration, applied uniformly by
// the scheduling configuration.
type Slot struct {
	Start time.Time `json:"start"`
}

// Equal reports whether two slots refer to the same window.
func (s Slot) Equal(other Slot) bool {
	return s.Start.Equal(other.Start)
}

// Stage is the current step in the scheduling conversation.
type Stage string

const (
	StageOffering        Stage = "offering"
	StageAwaitingTime    Stage = "awaiting_time"
	StageAwaitingContact Stage = "awaiting_contact"
	StageConfirming      Stage = "confirming"
	StageDone            Stage = "done"
	StageCancelled       Stage = "cancelled"
	StageError           Stage = "error"
)

// Active reports whether the stage expects further user input.
func (s Stage) Active() bool {
	switch s {
	case StageOffering, StageAwaitingTime, StageAwaitingContact, StageConfirming:
		return true
	}
	return false
}

// Terminal reports whether the stage ends the conversation.
func (s Stage) Terminal() bool {
	switch s {
	case StageDone, StageCancelled, StageError:
		return true
	}
	return false
}

// Contact holds the caller details collected during the conversation.
// Fields are filled incrementally; an empty string means "not yet known".
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Complete reports whether all three contact fields are known.
func (c Contact) Complete() bool {
	return c.Name != "" && c.Email != "" && c.Phone != ""
}

// Missing lists the contact fields that are still unknown.
func (c Contact) Missing() []string {
	var missing []string
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.Email == "" {
		missing = append(missing, "email address")
	}
	if c.Phone == "" {
		missing = append(missing, "phone number")
	}
	return missing
}

// Merge fills the gaps in c from update. Fields already populated are never
// overwritten; later turns can only supply what is still missing.
func (c Contact) Merge(update Contact) Contact {
	merged := c
	if merged.Name == "" {
		merged.Name = update.Name
	}
	if merged.Email == "" {
		merged.Email = update.Email
	}
	if merged.Phone == "" {
		merged.Phone = update.Phone
	}
	return merged
}

// ConversationState is the caller-held snapshot of dialogue progress. It is
// serialized into an opaque token between turns; the engine itself keeps no
// per-conversation state.
type ConversationState struct {
	Stage        Stage   `json:"stage"`
	OfferedSlots []Slot  `json:"offeredSlots,omitempty"`
	ChosenSlot   *Slot   `json:"chosenSlot,omitempty"`
	Contact      Contact `json:"contact"`
}

// Clone returns a deep copy, so each turn can construct a new state value
// instead of mutating the incoming one.
func (s *ConversationState) Clone() *ConversationState {
	next := &ConversationState{
		Stage:   s.Stage,
		Contact: s.Contact,
	}
	if len(s.OfferedSlots) > 0 {
		next.OfferedSlots = make([]Slot, len(s.OfferedSlots))
		copy(next.OfferedSlots, s.OfferedSlots)
	}
	if s.ChosenSlot != nil {
		chosen := *s.ChosenSlot
		next.ChosenSlot = &chosen
	}
	return next
}

// BookingRequest carries everything needed to commit one support-call event.
type BookingRequest struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	StartTime time.Time `json:"startTime"`
	Notes     string    `json:"notes,omitempty"`
}

// BookingConfirmation is returned after a successful booking.
type BookingConfirmation struct {
	EventRef string `json:"eventRef"`
}
