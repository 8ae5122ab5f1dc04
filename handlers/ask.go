// File: handlers/ask.go
package handlers

import (
	"net/http"
	"time"

	"frontdesk/models"
	"frontdesk/services/intelligence"
	"frontdesk/services/moderation"
	"frontdesk/services/scheduling"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewAskHandler answers support questions. A turn carrying a schedule-state
// token is routed to the scheduling conversation; everything else goes through
// moderation and the knowledge base, optionally opening a scheduling offer.
func NewAskHandler(answers intelligence.AnswerService, flow scheduling.SchedulingFlow) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()
		start := time.Now()

		var req models.AskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid ask request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if screened := moderation.Screen(req.Question); screened.Blocked {
			c.JSON(http.StatusOK, models.AskResponse{
				Answer:        screened.Reason,
				ScheduleState: passthroughToken(req.ScheduleState),
				Violations:    screened.Violations,
				LatencyMS:     time.Since(start).Milliseconds(),
			})
			return
		}

		// Mid-conversation turn: the token takes precedence over the
		// knowledge base.
		if req.ScheduleState != "" {
			state, err := utils.DecodeStateToken(req.ScheduleState)
			if err != nil {
				logger.Warn("Undecodable schedule state token", zap.Error(err))
				state = nil
			}
			resp := flow.ContinueFlow(c.Request.Context(), req.Question, state)
			c.JSON(http.StatusOK, models.AskResponse{
				Answer:        resp.Message,
				ScheduleState: encodeToken(resp.State),
				Done:          resp.Done,
				LatencyMS:     time.Since(start).Milliseconds(),
			})
			return
		}

		answer, err := answers.Answer(c.Request.Context(), req.Question)
		if err != nil {
			logger.Error("Answer generation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate an answer"})
			return
		}

		resp := models.AskResponse{
			Answer:    answer.Text,
			LatencyMS: time.Since(start).Milliseconds(),
		}
		if answer.TriggerSchedule {
			opening := flow.StartFlow()
			resp.Answer = answer.Text + "\n\n" + opening.Message
			resp.ScheduleState = encodeToken(opening.State)
		}
		c.JSON(http.StatusOK, resp)
	}
}

// encodeToken serializes a successor state; a nil state yields nil, telling
// the frontend to discard its token.
func encodeToken(state *models.ConversationState) *string {
	if state == nil {
		return nil
	}
	token, err := utils.EncodeStateToken(state)
	if err != nil {
		utils.GetLogger().Error("Failed to encode schedule state", zap.Error(err))
		return nil
	}
	return &token
}

func passthroughToken(token string) *string {
	if token == "" {
		return nil
	}
	return &token
}
