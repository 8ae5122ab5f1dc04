package scheduling

import (
	"errors"
	"fmt"
)

// Failure conditions surfaced by the scheduling engine. ParseAmbiguous has no
// error value: an utterance that fails to parse is recovered locally with a
// re-prompt and never becomes a hard error.
var (
	// ErrBackendUnavailable means the calendar backend is unreachable or
	// erroring; the current booking attempt is over.
	ErrBackendUnavailable = errors.New("calendar backend unavailable")

	// ErrSlotConflict means another booking raced ahead and took the chosen
	// slot; the user is routed back to time selection.
	ErrSlotConflict = errors.New("slot no longer available")

	// ErrCorruptState means the incoming state token references an unknown
	// stage; the conversation must restart.
	ErrCorruptState = errors.New("corrupt conversation state")
)

// backendUnavailable normalizes arbitrary transport failures into the
// ErrBackendUnavailable condition so callers can match with errors.Is.
func backendUnavailable(err error) error {
	if errors.Is(err, ErrBackendUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
}
