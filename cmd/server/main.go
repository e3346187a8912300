package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hadeelmohammed/portfolio-backend/internal/cache"
	"github.com/hadeelmohammed/portfolio-backend/internal/config"
	"github.com/hadeelmohammed/portfolio-backend/internal/db"
	"github.com/hadeelmohammed/portfolio-backend/internal/goroutine"
	httpHandlers "github.com/hadeelmohammed/portfolio-backend/internal/http/handlers"
	httpRouter "github.com/hadeelmohammed/portfolio-backend/internal/http/router"
	"github.com/hadeelmohammed/portfolio-backend/internal/imaging"
	"github.com/hadeelmohammed/portfolio-backend/internal/logger"
	"github.com/hadeelmohammed/portfolio-backend/internal/notify"
	"github.com/hadeelmohammed/portfolio-backend/internal/repository"
	"github.com/hadeelmohammed/portfolio-backend/internal/service"
	"github.com/hadeelmohammed/portfolio-backend/internal/storage"
	"github.com/hadeelmohammed/portfolio-backend/internal/ws"
	"github.com/hadeelmohammed/portfolio-backend/migrations"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logLevel := cfg.Log.Level
	if logLevel == "" {
		logLevel = "info"
		if cfg.Env == "development" {
			logLevel = "debug"
		}
	}
	logger.Init(logLevel)
	if cfg.Env == "development" {
		logger.SetTextFormatter()
	}
	logFile, err := logger.EnableFileOutput(logger.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		log.Fatalf("main: ошибка настройки логов: %v", err)
	}
	if logFile != nil {
		defer safeClose("log file", logFile)
	}
	goroutine.DefaultRecoveryHandler = goroutine.NewRecoveryHandler(logger.RecoveryLogger())

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL, db.PoolOptions{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeCloseDB(dbConn)

	var schema fs.FS = migrations.FS
	if cfg.MigrationsPath != "" {
		schema = os.DirFS(cfg.MigrationsPath)
	}
	if err := db.RunMigrations(ctx, dbConn, schema); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	// Кэш настроек: valkey, если задан VALKEY_URL, иначе память процесса.
	var (
		settingsCache cache.Cache
		cachePinger   httpHandlers.Pinger
	)
	if cfg.ValkeyURL != "" {
		valkeyCache, err := cache.NewValkey(ctx, cfg.ValkeyURL, false)
		if err != nil {
			log.Fatalf("main: ошибка подключения к valkey: %v", err)
		}
		settingsCache, cachePinger = valkeyCache, valkeyCache
	} else {
		settingsCache = cache.NewMemory(time.Minute)
	}
	defer safeClose("cache", settingsCache)

	// Инициализируем вспомогательные сервисы.
	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.RefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	photoStorage, err := storage.NewPhotoStorage(cfg.MediaStoragePath)
	if err != nil {
		log.Fatalf("main: не удалось подготовить файловое хранилище: %v", err)
	}

	var notifier notify.Notifier = notify.Noop{}
	if cfg.ResendAPIKey != "" && cfg.NotifyEmail != "" {
		notifier = notify.NewResend(notify.ResendConfig{
			APIKey: cfg.ResendAPIKey,
			From:   cfg.NotifyFrom,
			To:     cfg.NotifyEmail,
		})
	} else {
		logger.Log.Warn("main: RESEND_API_KEY или NOTIFY_EMAIL не заданы, письма о заявках отключены")
	}

	// Репозитории.
	userRepo := repository.NewUserRepository(dbConn)
	settingsRepo := repository.NewSettingsRepository(dbConn)
	projectRepo := repository.NewProjectRepository(dbConn)
	contactRepo := repository.NewContactRepository(dbConn)
	mediaRepo := repository.NewMediaRepository(dbConn)

	// Вебсокеты.
	hub := ws.NewHub()
	goroutine.SafeGoWithContext(ctx, hub.Run)

	// Сервисы.
	authService := service.NewAuthService(userRepo, tokenManager, cfg.IsAdminEmail)
	settingsService := service.NewSettingsService(settingsRepo, settingsCache, cfg.SettingsCacheTTL)
	projectService := service.NewProjectService(projectRepo)
	contactService := service.NewContactService(contactRepo, notifier, hub)
	uploadService := service.NewUploadService(mediaRepo, photoStorage, cfg.PublicBaseURL, imaging.Options{
		MaxDimension: cfg.ImageMaxDim,
		MaxBytes:     cfg.ImageMaxBytes,
	})
	pageService := service.NewPageService(settingsService, projectService, contactService)

	// HTTP хэндлеры.
	handlers := httpRouter.Handlers{
		Auth:     httpHandlers.NewAuthHandler(authService),
		Language: httpHandlers.NewLanguageHandler(),
		Settings: httpHandlers.NewSettingsHandler(settingsService),
		Projects: httpHandlers.NewProjectHandler(projectService),
		Contact:  httpHandlers.NewContactHandler(contactService),
		Media:    httpHandlers.NewMediaHandler(uploadService, cfg.MaxUploadSizeMB<<20),
		Pages:    httpHandlers.NewPageHandler(pageService),
		Health:   httpHandlers.NewHealthHandler(dbConn, cachePinger),
		WS:       httpHandlers.NewWSHandler(hub, cfg.AllowedOrigins),
	}
	if cfg.Env == "development" {
		handlers.Seed = httpHandlers.NewSeedHandler(service.NewSeedService(settingsService, projectService))
	}

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, handlers, httpRouter.Guards{
		Tokens: tokenManager,
		Admins: authService,
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	goroutine.SafeGo(func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Error("main: ошибка остановки http сервера")
		}
	})

	logger.Log.WithFields(map[string]interface{}{
		"port": cfg.HTTPPort,
		"env":  cfg.Env,
	}).Info("main: HTTP сервер запущен")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeCloseDB закрывает соединение с базой.
func safeCloseDB(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}

func safeClose(name string, c io.Closer) {
	if err := c.Close(); err != nil {
		log.Printf("main: ошибка закрытия %s: %v", name, err)
	}
}
