package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"frontdesk/models"
	"frontdesk/utils"

	"go.uber.org/zap"
)

// DefaultSchedulingFlow drives the booking conversation. It holds no
// per-conversation state of its own; everything a turn needs arrives in the
// caller-held ConversationState and the reply carries the successor state.
type DefaultSchedulingFlow struct {
	Availability AvailabilityEngine
	Transactor   BookingTransactor

	// MaxOffers caps how many open slots a single reply lists.
	MaxOffers   int
	SlotMinutes int
	Location    *time.Location

	// FallbackContact is surfaced when the calendar cannot be reached.
	FallbackContact string

	// Now is swappable in tests; nil means time.Now.
	Now func() time.Time
}

func (f *DefaultSchedulingFlow) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

// StartFlow opens a fresh conversation with the scheduling offer. No network
// calls happen here; availability is only fetched once the caller says yes.
func (f *DefaultSchedulingFlow) StartFlow() *FlowResponse {
	return &FlowResponse{
		Message: msgOffer,
		State:   &models.ConversationState{Stage: models.StageOffering},
	}
}

// ContinueFlow processes one utterance against the caller-held state and
// returns the reply plus the successor state. The incoming state is never
// mutated. A state that is missing, terminal or otherwise malformed ends the
// conversation with ErrCorruptState.
func (f *DefaultSchedulingFlow) ContinueFlow(ctx context.Context, utterance string, state *models.ConversationState) *FlowResponse {
	if state == nil || !state.Stage.Active() {
		return corruptResponse(state)
	}

	switch state.Stage {
	case models.StageOffering:
		return f.handleOffering(ctx, utterance, state)
	case models.StageAwaitingTime:
		return f.handleAwaitingTime(utterance, state)
	case models.StageAwaitingContact:
		return f.handleAwaitingContact(utterance, state)
	case models.StageConfirming:
		return f.handleConfirming(ctx, utterance, state)
	default:
		return corruptResponse(state)
	}
}

func (f *DefaultSchedulingFlow) handleOffering(ctx context.Context, utterance string, state *models.ConversationState) *FlowResponse {
	switch ClassifyAffirmation(utterance) {
	case AffirmationNo:
		return terminal(msgCancelled, nil)
	case AffirmationUnknown:
		return &FlowResponse{Message: msgOfferReprompt, State: state.Clone()}
	}

	slots, err := f.Availability.ComputeAvailability(ctx, f.now())
	if err != nil {
		utils.GetLogger().Error("availability lookup failed", zap.Error(err))
		return terminal(fmt.Sprintf(msgBackendDown, f.FallbackContact), err)
	}
	if len(slots) == 0 {
		return terminal(fmt.Sprintf(msgNoAvailability, f.FallbackContact), nil)
	}
	if f.MaxOffers > 0 && len(slots) > f.MaxOffers {
		slots = slots[:f.MaxOffers]
	}

	next := state.Clone()
	next.Stage = models.StageAwaitingTime
	next.OfferedSlots = slots
	return &FlowResponse{Message: offerMessage(slots, f.Location), State: next}
}

func (f *DefaultSchedulingFlow) handleAwaitingTime(utterance string, state *models.ConversationState) *FlowResponse {
	if len(state.OfferedSlots) == 0 {
		return corruptResponse(state)
	}
	if ClassifyAffirmation(utterance) == AffirmationNo {
		return terminal(msgCancelled, nil)
	}

	slot := MatchSlot(utterance, state.OfferedSlots)
	if slot == nil {
		return &FlowResponse{Message: timeReprompt(state.OfferedSlots, f.Location), State: state.Clone()}
	}

	next := state.Clone()
	next.Stage = models.StageAwaitingContact
	chosen := *slot
	next.ChosenSlot = &chosen
	return &FlowResponse{Message: contactPrompt(chosen, f.Location), State: next}
}

func (f *DefaultSchedulingFlow) handleAwaitingContact(utterance string, state *models.ConversationState) *FlowResponse {
	if state.ChosenSlot == nil {
		return corruptResponse(state)
	}
	if ClassifyAffirmation(utterance) == AffirmationNo {
		return terminal(msgCancelled, nil)
	}

	next := state.Clone()
	next.Contact = state.Contact.Merge(ExtractContact(utterance))

	if missing := next.Contact.Missing(); len(missing) > 0 {
		return &FlowResponse{Message: missingContactPrompt(missing), State: next}
	}

	next.Stage = models.StageConfirming
	return &FlowResponse{Message: confirmPrompt(next, f.SlotMinutes, f.Location), State: next}
}

func (f *DefaultSchedulingFlow) handleConfirming(ctx context.Context, utterance string, state *models.ConversationState) *FlowResponse {
	if state.ChosenSlot == nil || !state.Contact.Complete() {
		return corruptResponse(state)
	}

	switch ClassifyAffirmation(utterance) {
	case AffirmationNo:
		return terminal(msgCancelled, nil)
	case AffirmationUnknown:
		return &FlowResponse{Message: msgConfirmReprompt, State: state.Clone()}
	}

	req := models.BookingRequest{
		Name:      state.Contact.Name,
		Email:     state.Contact.Email,
		Phone:     state.Contact.Phone,
		StartTime: state.ChosenSlot.Start,
		Notes:     "Scheduled via the support assistant.",
	}

	conf, err := f.Transactor.Book(ctx, req)
	switch {
	case errors.Is(err, ErrSlotConflict):
		// The window was taken by a racing booking. Fall back to the slots
		// already offered; some may be stale but the matcher only ever hands
		// back one of them and a second conflict lands here again.
		utils.GetLogger().Warn("slot conflict at booking time",
			zap.Time("slot", state.ChosenSlot.Start))
		next := state.Clone()
		next.Stage = models.StageAwaitingTime
		next.ChosenSlot = nil
		return &FlowResponse{
			Message: conflictMessage(*state.ChosenSlot, state.OfferedSlots, f.Location),
			State:   next,
		}
	case err != nil:
		utils.GetLogger().Error("booking failed", zap.Error(err))
		return terminal(fmt.Sprintf(msgBookingFailed, f.FallbackContact), err)
	}

	return terminal(bookedMessage(conf.EventRef, *state.ChosenSlot, f.Location), nil)
}

// terminal ends the conversation: Done is set and no successor state is
// returned, so the caller discards its token.
func terminal(message string, err error) *FlowResponse {
	return &FlowResponse{Message: message, Done: true, Err: err}
}

func corruptResponse(state *models.ConversationState) *FlowResponse {
	if state != nil {
		utils.GetLogger().Warn("unusable conversation state", zap.String("stage", string(state.Stage)))
	}
	return terminal(msgCorruptState, ErrCorruptState)
}
