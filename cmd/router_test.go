package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	createBookingHandler "github.com/niltonbarber/BookingService/internal/api/handlers/create_booking"
	healthHandler "github.com/niltonbarber/BookingService/internal/api/handlers/health"
	"github.com/niltonbarber/BookingService/internal/api/middleware"
	"github.com/niltonbarber/BookingService/internal/config"
	createBookingUC "github.com/niltonbarber/BookingService/internal/usecase/create_booking"
	"github.com/niltonbarber/BookingService/pkg/logger"
	"github.com/niltonbarber/BookingService/pkg/metrics"
)

const bookingPayload = `{"name":"Ana","email":"a@x.com","phone":"911","service":"Design de Barba","date":"2024-06-10","time":"14:00"}`

func newTestRouter(t *testing.T) (http.Handler, *metrics.Metrics) {
	t.Helper()
	log := logger.NewNop()
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	uc := createBookingUC.NewUseCase(nil, m, log)

	return newRouter(routerDeps{
		cfg:           config.Default(),
		log:           log,
		metrics:       m,
		createBooking: createBookingHandler.NewHandler(uc, log),
		health:        healthHandler.NewHandler(false),
	}), m
}

func TestRouter_Book(t *testing.T) {
	router, m := newTestRouter(t)

	t.Run("simulated booking", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader(bookingPayload))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"note"`)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues(metrics.OutcomeSimulated)))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/book", "200")))
	})

	t.Run("GET is 405 with JSON body", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/book", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.JSONEq(t, `{"message":"Method not allowed"}`, w.Body.String())
	})

	t.Run("CORS preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/book", nil)
		req.Header.Set("Origin", "https://niltonbarber.pt")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	optionsCases := []struct {
		name   string
		origin string
	}{
		{name: "OPTIONS without origin is 405", origin: ""},
		{name: "OPTIONS with origin but no requested method is 405", origin: "https://niltonbarber.pt"},
	}
	for _, tt := range optionsCases {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/book", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.JSONEq(t, `{"message":"Method not allowed"}`, w.Body.String())
		})
	}
}

func TestRouter_PanicIsCountedInMetrics(t *testing.T) {
	log := logger.NewNop()
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())

	r := mux.NewRouter()
	useMiddleware(r, routerDeps{cfg: config.Default(), log: log, metrics: m})
	r.HandleFunc("/api/book", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/book", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Erro ao processar agendamento","error":"boom"}`, w.Body.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/book", "500")))
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","calendar":"simulated"}`, w.Body.String())
}
