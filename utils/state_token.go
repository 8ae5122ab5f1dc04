// File: utils/state_token.go
package utils

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"frontdesk/models"
)

// EncodeStateToken serializes a conversation state into the opaque token the
// frontend echoes back on every turn.
func EncodeStateToken(state *models.ConversationState) (string, error) {
	if state == nil {
		return "", fmt.Errorf("cannot encode a nil conversation state")
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("marshal conversation state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodeStateToken restores a conversation state from an opaque token.
func DecodeStateToken(token string) (*models.ConversationState, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("decode state token: %w", err)
	}
	var state models.ConversationState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("unmarshal conversation state: %w", err)
	}
	return &state, nil
}
