package main

import (
	"net/http"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/niltonbarber/BookingService/internal/api/handlers/create_booking"
	healthHandler "github.com/niltonbarber/BookingService/internal/api/handlers/health"
	"github.com/niltonbarber/BookingService/internal/api/middleware"
	"github.com/niltonbarber/BookingService/internal/config"
	"github.com/niltonbarber/BookingService/pkg/logger"
	"github.com/niltonbarber/BookingService/pkg/metrics"
)

// Сообщение для 500, совпадает с ответом обработчика бронирования
const msgUnexpectedError = "Erro ao processar agendamento"

type routerDeps struct {
	cfg           *config.Config
	log           *logger.Logger
	metrics       *metrics.Metrics // nil, если метрики выключены
	createBooking *createBookingHandler.Handler
	health        *healthHandler.Handler
}

func newRouter(d routerDeps) http.Handler {
	r := mux.NewRouter()
	useMiddleware(r, d)

	if d.metrics != nil {
		r.Handle(d.cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", d.health.Handle).Methods(http.MethodGet)

	// Без .Methods: на любой метод кроме POST обработчик сам отвечает 405 с JSON телом
	r.HandleFunc("/api/book", d.createBooking.Handle)

	return withCORS(d.cfg.CORS.AllowedOrigins, r)
}

// useMiddleware регистрирует middleware от внешнего к внутреннему.
// Recovery последний, чтобы запросы с паникой попадали в метрики со статусом 500
func useMiddleware(r *mux.Router, d routerDeps) {
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(d.log))

	// Добавляем metrics middleware (если метрики включены)
	if d.metrics != nil {
		r.Use(middleware.MetricsMiddleware(d.metrics))
	}

	r.Use(middleware.Recovery(msgUnexpectedError, d.log))
}

// withCORS отдает CORS-слою только настоящие preflight запросы.
// Любой другой OPTIONS доходит до обработчиков и получает их ответ
func withCORS(origins []string, next http.Handler) http.Handler {
	opts := []gorillaHandlers.CORSOption{
		gorillaHandlers.AllowedOrigins(origins),
		gorillaHandlers.AllowedMethods([]string{http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.RequestIDHeader}),
		gorillaHandlers.ExposedHeaders([]string{middleware.RequestIDHeader}),
	}

	preflight := gorillaHandlers.CORS(opts...)(next)
	regular := gorillaHandlers.CORS(append(opts, gorillaHandlers.IgnoreOptions())...)(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPreflight(r) {
			preflight.ServeHTTP(w, r)
			return
		}
		regular.ServeHTTP(w, r)
	})
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions &&
		r.Header.Get("Origin") != "" &&
		r.Header.Get("Access-Control-Request-Method") != ""
}
