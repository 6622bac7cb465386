package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	createBookingHandler "github.com/niltonbarber/BookingService/internal/api/handlers/create_booking"
	healthHandler "github.com/niltonbarber/BookingService/internal/api/handlers/health"
	"github.com/niltonbarber/BookingService/internal/config"
	"github.com/niltonbarber/BookingService/internal/integrations/googlecalendar"
	createBookingUC "github.com/niltonbarber/BookingService/internal/usecase/create_booking"
	"github.com/niltonbarber/BookingService/pkg/logger"
	"github.com/niltonbarber/BookingService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting BarberBookingService...")

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		bookingMetrics   createBookingUC.MetricsRecorder
		calendarMetrics  googlecalendar.MetricsRecorder
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		bookingMetrics = metricsCollector
		calendarMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Клиент Google Calendar создается только при наличии токена,
	// иначе use case работает в симулированном режиме
	var calendarClient createBookingUC.CalendarClient
	if cfg.GoogleCalendar.Enabled() {
		client, err := googlecalendar.NewClient(context.Background(), googlecalendar.Config{
			AccessToken: cfg.GoogleCalendar.AccessToken,
			CalendarID:  cfg.GoogleCalendar.CalendarID,
			Endpoint:    cfg.GoogleCalendar.Endpoint,
			Timeout:     time.Duration(cfg.GoogleCalendar.Timeout) * time.Second,
		}, calendarMetrics, log)
		if err != nil {
			log.Fatal("Failed to create Google Calendar client: %v", err)
		}
		calendarClient = client
		log.Info("Google Calendar integration enabled (calendar=%s, timeout=%ds)",
			cfg.GoogleCalendar.CalendarID, cfg.GoogleCalendar.Timeout)
	} else {
		log.Warn("%s is not set, bookings will be simulated", config.EnvCalendarAccessToken)
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(calendarClient, bookingMetrics, log)

	// Инициализируем handlers
	router := newRouter(routerDeps{
		cfg:           cfg,
		log:           log,
		metrics:       metricsCollector,
		createBooking: createBookingHandler.NewHandler(createBookingUseCase, log),
		health:        healthHandler.NewHandler(cfg.GoogleCalendar.Enabled()),
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
