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
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addShowtimeHandler "github.com/m04kA/SMC-ShowtimeService/internal/api/handlers/add_showtime"
	bulkUpdateHandler "github.com/m04kA/SMC-ShowtimeService/internal/api/handlers/bulk_update_showtimes"
	computeNextHandler "github.com/m04kA/SMC-ShowtimeService/internal/api/handlers/compute_next_showtime"
	healthHandler "github.com/m04kA/SMC-ShowtimeService/internal/api/handlers/health"
	loginHandler "github.com/m04kA/SMC-ShowtimeService/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-ShowtimeService/internal/api/handlers/logout"
	searchShowtimesHandler "github.com/m04kA/SMC-ShowtimeService/internal/api/handlers/search_showtimes"
	sessionFactsHandler "github.com/m04kA/SMC-ShowtimeService/internal/api/handlers/session_facts"
	toggleSortHandler "github.com/m04kA/SMC-ShowtimeService/internal/api/handlers/toggle_sort"
	"github.com/m04kA/SMC-ShowtimeService/internal/api/middleware"
	"github.com/m04kA/SMC-ShowtimeService/internal/config"
	showtimesCache "github.com/m04kA/SMC-ShowtimeService/internal/infra/cache/showtimes"
	factsRepo "github.com/m04kA/SMC-ShowtimeService/internal/infra/storage/facts"
	"github.com/m04kA/SMC-ShowtimeService/internal/integrations/cinemaapi"
	"github.com/m04kA/SMC-ShowtimeService/internal/scheduler"
	factsService "github.com/m04kA/SMC-ShowtimeService/internal/service/facts"
	sessionService "github.com/m04kA/SMC-ShowtimeService/internal/service/session"
	addShowtimeUC "github.com/m04kA/SMC-ShowtimeService/internal/usecase/add_showtime"
	bulkUpdateUC "github.com/m04kA/SMC-ShowtimeService/internal/usecase/bulk_update_showtimes"
	computeNextUC "github.com/m04kA/SMC-ShowtimeService/internal/usecase/compute_next_showtime"
	searchShowtimesUC "github.com/m04kA/SMC-ShowtimeService/internal/usecase/search_showtimes"
	"github.com/m04kA/SMC-ShowtimeService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShowtimeService/pkg/logger"
	"github.com/m04kA/SMC-ShowtimeService/pkg/metrics"
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

	log.Info("Starting SMC-ShowtimeService...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Search.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Search.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Инициализируем репозиторий фактов сессий (с метриками или без)
	var factsRepository *factsRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
		factsRepository = factsRepo.NewRepository(wrappedDB)
	} else {
		factsRepository = factsRepo.NewRepository(db)
	}

	// Кэш снапшотов сеансов; без Redis работаем напрямую с backend
	var (
		searchCache searchShowtimesUC.SnapshotCache
		invalidator addShowtimeUC.SnapshotInvalidator
		redisPinger healthHandler.Pinger
	)
	if cfg.Redis.Enabled {
		redisClient := showtimesCache.Connect(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if redisClient == nil {
			log.Warn("Redis is unavailable at %s, snapshot cache disabled", cfg.Redis.Addr)
		} else {
			defer redisClient.Close()
			cache := showtimesCache.NewCache(redisClient, cfg.Redis.Prefix, cfg.Redis.TTL(),
				searchShowtimesUC.SnapshotKeyAdmin, searchShowtimesUC.SnapshotKeyPublic)
			searchCache = cache
			invalidator = cache
			redisPinger = healthHandler.PingerFunc(func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			})
			log.Info("Snapshot cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTL())
		}
	}

	// Инициализируем клиента cinema backend
	cinemaClient := cinemaapi.NewClient(
		cfg.CinemaAPI.URL,
		time.Duration(cfg.CinemaAPI.Timeout)*time.Second,
		log,
	)
	if cfg.Metrics.Enabled {
		cinemaClient = cinemaClient.WithMetrics(metricsCollector)
	}
	log.Info("Integration client initialized (CinemaAPI=%s timeout=%ds)",
		cfg.CinemaAPI.URL, cfg.CinemaAPI.Timeout)

	// Инициализируем сервисы
	factsSvc := factsService.NewService(factsRepository, cfg.Facts.TTL(), log)
	sessionSvc := sessionService.NewService(cinemaClient, factsSvc, log)

	// Инициализируем use cases
	searchShowtimesUseCase := searchShowtimesUC.NewUseCase(
		cinemaClient,
		searchCache,
		metricsCollector,
		location,
		log,
	)

	computeNextUseCase := computeNextUC.NewUseCase(
		cinemaClient,
		factsSvc,
		log,
	)

	addShowtimeUseCase := addShowtimeUC.NewUseCase(
		cinemaClient,
		computeNextUseCase,
		invalidator,
		factsSvc,
		log,
	)

	bulkUpdateUseCase := bulkUpdateUC.NewUseCase(
		cinemaClient,
		invalidator,
		metricsCollector,
		cfg.Bulk.Concurrency,
		log,
	)

	// Значения по умолчанию формы добавления сеанса
	scheduling := cfg.Scheduling

	// Инициализируем handlers
	login := loginHandler.NewHandler(sessionSvc, log)
	logout := logoutHandler.NewHandler(sessionSvc, log)
	searchShowtimes := searchShowtimesHandler.NewHandler(searchShowtimesUseCase, location, log)
	toggleSort := toggleSortHandler.NewHandler(log)
	computeNext := computeNextHandler.NewHandler(computeNextUseCase, computeNextHandler.Defaults{
		GapHours:    scheduling.GapHours,
		GapMinutes:  scheduling.GapMinutes,
		Rounding:    scheduling.RoundingMode(),
		AdvanceDate: scheduling.AdvanceDate,
	}, location, log)
	addShowtime := addShowtimeHandler.NewHandler(addShowtimeUseCase, addShowtimeHandler.Defaults{
		AutoAdvance: scheduling.AutoAdvance,
		AdvanceDate: scheduling.AdvanceDate,
		GapHours:    scheduling.GapHours,
		GapMinutes:  scheduling.GapMinutes,
		Rounding:    scheduling.RoundingMode(),
	}, location, log)
	bulkUpdate := bulkUpdateHandler.NewHandler(bulkUpdateUseCase, log)
	sessionFacts := sessionFactsHandler.NewHandler(factsSvc, location, log)

	health := healthHandler.NewHandler(log).WithCheck("postgres", db)
	if redisPinger != nil {
		health = health.WithCheck("redis", redisPinger)
	}

	// Фоновые задачи
	sched := scheduler.NewScheduler(factsSvc, metricsCollector, cfg.Facts.PurgeCron, log)
	if err := sched.Start(); err != nil {
		log.Fatal("Failed to start scheduler: %v", err)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Вход через cinema backend
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Переключение сортировки колонки
	api.HandleFunc("/showtimes/sort/toggle", toggleSort.Handle).Methods(http.MethodPost)

	// Поиск сеансов: гость видит только опубликованные, администратор все
	api.Handle("/showtimes/search",
		middleware.OptionalAuth(sessionSvc, log)(http.HandlerFunc(searchShowtimes.Handle))).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessionSvc, log))

	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// --- Сеансы (для администраторов) ---
	// Расчет времени следующего сеанса
	protected.HandleFunc("/showtimes/next", computeNext.Handle).Methods(http.MethodPost)

	// Добавление сеанса
	protected.HandleFunc("/showtimes", addShowtime.Handle).Methods(http.MethodPost)

	// Массовая публикация, снятие с публикации и удаление
	protected.HandleFunc("/showtimes/bulk", bulkUpdate.Handle).Methods(http.MethodPost)

	// --- Факты сессии ---
	protected.HandleFunc("/session/facts", sessionFacts.Get).Methods(http.MethodGet)
	protected.HandleFunc("/session/facts", sessionFacts.Update).Methods(http.MethodPut)

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

	sched.Stop()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
