package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/models"
)

func TestStateTokenRoundTrip(t *testing.T) {
	chosen := models.Slot{Start: time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)}
	state := &models.ConversationState{
		Stage: models.StageConfirming,
		OfferedSlots: []models.Slot{
			{Start: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
			chosen,
		},
		ChosenSlot: &chosen,
		Contact: models.Contact{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Phone: "555-123-4567",
		},
	}

	token, err := EncodeStateToken(state)
	require.NoError(t, err)
	assert.NotContains(t, token, "=", "token must be URL-safe without padding")

	restored, err := DecodeStateToken(token)
	require.NoError(t, err)
	assert.Equal(t, state.Stage, restored.Stage)
	assert.Equal(t, state.Contact, restored.Contact)
	require.NotNil(t, restored.ChosenSlot)
	assert.True(t, restored.ChosenSlot.Start.Equal(chosen.Start))
	require.Len(t, restored.OfferedSlots, 2)
}

func TestEncodeStateTokenNil(t *testing.T) {
	_, err := EncodeStateToken(nil)
	assert.Error(t, err)
}

func TestDecodeStateTokenGarbage(t *testing.T) {
	for _, token := range []string{"", "not base64!!!", "bm90IGpzb24"} {
		_, err := DecodeStateToken(token)
		assert.Error(t, err, "token %q", token)
	}
}
