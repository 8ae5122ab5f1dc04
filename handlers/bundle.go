// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Support chat endpoints
	AskHandler gin.HandlerFunc

	// Scheduling endpoints
	AvailableTimesHandler gin.HandlerFunc
	BookHandler           gin.HandlerFunc

	// AI endpoints
	STTHandler gin.HandlerFunc
}
