// File: frontdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frontdesk/config"
	"frontdesk/database"
	documentRepo "frontdesk/database/repository/documents"
	"frontdesk/handlers"
	"frontdesk/middleware"
	"frontdesk/routes"
	"frontdesk/services/calendar"
	"frontdesk/services/intelligence"
	"frontdesk/services/scheduling"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	location, err := time.LoadLocation(config.AppConfig.ScheduleTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid schedule timezone %q: %v", config.AppConfig.ScheduleTimezone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	docRepo := documentRepo.NewMongoDocumentRepo()

	// External backends.
	calendarBackend, err := calendar.NewGoogleCalendarBackend(
		context.Background(),
		config.AppConfig.GoogleServiceAccountFile,
		config.AppConfig.CalendarID,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar backend: %v", err)
	}

	gemini, err := intelligence.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}

	// Services.
	window := scheduling.Window{
		LookaheadDays: config.AppConfig.ScheduleLookaheadDays,
		DayStartHour:  config.AppConfig.ScheduleDayStartHour,
		DayEndHour:    config.AppConfig.ScheduleDayEndHour,
		SlotMinutes:   config.AppConfig.ScheduleSlotMinutes,
		Location:      location,
	}
	availabilityEngine := &scheduling.DefaultAvailabilityEngine{
		Calendar: calendarBackend,
		Window:   window,
	}
	bookingTransactor := &scheduling.DefaultBookingTransactor{
		Calendar: calendarBackend,
		SlotSize: window.SlotSize(),
	}
	schedulingFlow := &scheduling.DefaultSchedulingFlow{
		Availability:    availabilityEngine,
		Transactor:      bookingTransactor,
		MaxOffers:       config.AppConfig.ScheduleMaxOffers,
		SlotMinutes:     window.SlotMinutes,
		Location:        location,
		FallbackContact: config.AppConfig.SupportFallbackContact,
	}
	answerService := &intelligence.DefaultAnswerService{
		Docs:     docRepo,
		LLM:      gemini,
		Cache:    utils.GetCacheClient(),
		CacheTTL: time.Hour,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AskHandler:            handlers.NewAskHandler(answerService, schedulingFlow),
		AvailableTimesHandler: handlers.NewAvailableTimesHandler(availabilityEngine),
		BookHandler:           handlers.NewBookHandler(bookingTransactor),
		STTHandler:            handlers.STTHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
