// File: handlers/schedule.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"frontdesk/models"
	"frontdesk/services/scheduling"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewAvailableTimesHandler lists the open support-call slots.
func NewAvailableTimesHandler(engine scheduling.AvailabilityEngine) gin.HandlerFunc {
	return func(c *gin.Context) {
		slots, err := engine.ComputeAvailability(c.Request.Context(), time.Now())
		if err != nil {
			utils.GetLogger().Error("Availability lookup failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Calendar is unavailable right now"})
			return
		}

		times := make([]string, len(slots))
		for i, s := range slots {
			times[i] = s.Start.Format(time.RFC3339)
		}
		c.JSON(http.StatusOK, gin.H{"availableTimes": times})
	}
}

// NewBookHandler books a support call directly, outside the conversational
// flow.
func NewBookHandler(transactor scheduling.BookingTransactor) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		var req models.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if req.Name == "" || req.Email == "" || req.StartTime.IsZero() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and startTime are required"})
			return
		}

		conf, err := transactor.Book(c.Request.Context(), req)
		switch {
		case errors.Is(err, scheduling.ErrSlotConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "That time is no longer available"})
			return
		case err != nil:
			logger.Error("Booking failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Calendar is unavailable right now"})
			return
		}

		logger.Info("Support call booked",
			zap.String("email", req.Email),
			zap.Time("start", req.StartTime))
		c.JSON(http.StatusCreated, conf)
	}
}
