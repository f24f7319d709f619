package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	calculateQuoteHandler "github.com/avalonwc/AWC-BookingService/internal/api/handlers/calculate_quote"
	cancelBookingHandler "github.com/avalonwc/AWC-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/avalonwc/AWC-BookingService/internal/api/handlers/create_booking"
	getAvailableDatesHandler "github.com/avalonwc/AWC-BookingService/internal/api/handlers/get_available_dates"
	getBookingHandler "github.com/avalonwc/AWC-BookingService/internal/api/handlers/get_booking"
	listBookingRequestsHandler "github.com/avalonwc/AWC-BookingService/internal/api/handlers/list_booking_requests"
	updateBookingStatusHandler "github.com/avalonwc/AWC-BookingService/internal/api/handlers/update_booking_status"
	"github.com/avalonwc/AWC-BookingService/internal/api/middleware"
	"github.com/avalonwc/AWC-BookingService/internal/config"
	"github.com/avalonwc/AWC-BookingService/internal/infra/catalog"
	bookingRepo "github.com/avalonwc/AWC-BookingService/internal/infra/storage/booking"
	notifyClient "github.com/avalonwc/AWC-BookingService/internal/integrations/notify"
	bookingsService "github.com/avalonwc/AWC-BookingService/internal/service/bookings"
	calculateQuoteUC "github.com/avalonwc/AWC-BookingService/internal/usecase/calculate_quote"
	createBookingUC "github.com/avalonwc/AWC-BookingService/internal/usecase/create_booking"
	getAvailableDatesUC "github.com/avalonwc/AWC-BookingService/internal/usecase/get_available_dates"
	"github.com/avalonwc/AWC-BookingService/pkg/logger"
	"github.com/avalonwc/AWC-BookingService/pkg/metrics"
)

func main() {
	// Подхватываем .env, если он есть (секреты для локальной разработки)
	_ = godotenv.Load()

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

	log.Info("Starting AWC-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем справочник цен и расписаний
	catalogs, err := catalog.Load(cfg.Catalog.File)
	if err != nil {
		log.Fatal("Failed to load catalog from %s: %v", cfg.Catalog.File, err)
	}
	log.Info("Catalog loaded from %s", cfg.Catalog.File)

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент почтового релея (если включен)
	var notify createBookingUC.NotifyClient
	if cfg.Notify.Enabled {
		notify = notifyClient.NewClient(
			cfg.Notify.URL,
			time.Duration(cfg.Notify.Timeout)*time.Second,
			log,
		)
		log.Info("Notify client initialized (relay=%s timeout=%ds)", cfg.Notify.URL, cfg.Notify.Timeout)
	} else {
		log.Warn("Notify relay disabled, quote emails will not be sent")
	}

	// Инициализируем репозиторий
	bookingRepository := bookingRepo.NewRepository(db)

	// Инициализируем сервис
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	calculateQuoteUseCase := calculateQuoteUC.NewUseCase(catalogs, log)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(catalogs, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		calculateQuoteUseCase,
		getAvailableDatesUseCase,
		notify,
		log,
	)

	// Инициализируем handlers
	calculateQuote := calculateQuoteHandler.NewHandler(calculateQuoteUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookingRequests := listBookingRequestsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (форма бронирования)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		public.Use(limiter.Middleware())
		log.Info("Rate limiting enabled (%.1f rps, burst %d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Расчёт сметы по выбору в форме
	public.HandleFunc("/quotes", calculateQuote.Handle).Methods(http.MethodPost)

	// Подбор доступных дат первой уборки
	public.HandleFunc("/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// Отправка заявки
	public.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminToken))

	// Заявка по ID
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Список заявок с фильтрами
	admin.HandleFunc("/booking-requests", listBookingRequests.Handle).Methods(http.MethodGet)

	// Отмена заявки
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса заявки (подтверждение, завершение)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	log.Info("Server stopped")
}
