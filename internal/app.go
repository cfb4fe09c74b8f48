package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/adapters/cache"
	logger_adapter "github.com/pr-poehali-dev/real-estate-venture-1/internal/adapters/logger"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/adapters/rest"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/adapters/web"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/configs"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port"
	fluentlogger "github.com/pr-poehali-dev/real-estate-venture-1/pkg/fluent_logger"
)

// App - основная структура приложения
type App struct {
	config       *configs.AppConfig
	apiServer    *rest.Server
	objectsCache *cache.FindObjectsCache
	logger       port.LoggerPort
	fluentClient *fluent.Fluent
}

// NewApp создает и настраивает все компоненты приложения
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	baseLogger, fluentClient, err := NewLogger(appConfig)
	if err != nil {
		return nil, err
	}
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})

	catalog, err := NewCatalog(appConfig.Pricing.Currency)
	if err != nil {
		closeFluent(fluentClient)
		return nil, err
	}
	appLogger.Debug("Catalog and site content loaded", nil)

	// Поиск объектов оборачиваем кэшем, остальные use case'ы дешевые
	findObjects := catalog.FindObjects
	var objectsCache *cache.FindObjectsCache
	if appConfig.Cache.Enabled {
		objectsCache = cache.NewFindObjectsCache(catalog.FindObjects, cache.Config{
			MaxSize: appConfig.Cache.MaxSize,
			TTL:     appConfig.Cache.TTL,
		})
		findObjects = objectsCache
		appLogger.Debug("Find objects cache enabled", port.Fields{
			"max_size": appConfig.Cache.MaxSize, "ttl": appConfig.Cache.TTL.String(),
		})
	}

	// входящие адаптеры
	getInfoHandlers := rest.NewGetInfoHandler(findObjects, catalog.ObjectDetails, catalog.NewDevelopments, catalog.PriceFormatter)
	filtersHandlers := rest.NewFilterHandler(catalog.FilterOptions, catalog.ResetFilters, catalog.Dictionaries)
	contentHandlers := rest.NewContentHandler(catalog.PageContent)

	pageHandler, err := web.NewPageHandler(findObjects, catalog.NewDevelopments, catalog.FilterOptions, catalog.PageContent, catalog.PriceFormatter)
	if err != nil {
		closeFluent(fluentClient)
		return nil, err
	}

	apiServer := rest.NewServer(rest.ServerConfig{
		Port:               appConfig.Rest.PORT,
		CORSAllowedOrigins: appConfig.Rest.CORSAllowedOrigins,
		RateLimit: rest.RateLimitConfig{
			Enabled: appConfig.RateLimit.Enabled,
			RPS:     appConfig.RateLimit.RPS,
			Burst:   appConfig.RateLimit.Burst,
		},
	}, getInfoHandlers, filtersHandlers, contentHandlers, pageHandler.Routes(), baseLogger)

	return &App{
		config:       appConfig,
		apiServer:    apiServer,
		objectsCache: objectsCache,
		logger:       appLogger,
		fluentClient: fluentClient,
	}, nil
}

// NewLogger собирает stdout-логгер и, если включен, Fluent Bit
func NewLogger(appConfig *configs.AppConfig) (port.LoggerPort, *fluent.Fluent, error) {
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    logger_adapter.ParseLevel(appConfig.StdoutLogger.Level),
		IsJSON:   appConfig.StdoutLogger.IsJSON,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		var err error
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, logger_adapter.ParseLevel(appConfig.FluentBit.Level))
		if err != nil {
			fluentClient.Close()
			return nil, nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		closeFluent(fluentClient)
		return nil, nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	baseLogger.Debug("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})
	return baseLogger, fluentClient, nil
}

// Run запускает сервер и ждет SIGINT/SIGTERM
func (a *App) Run() error {
	serverErrors := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case sig := <-quit:
		a.logger.Info("Received signal, shutting down...", port.Fields{"signal": sig.String()})
	case err := <-serverErrors:
		a.logger.Error("HTTP server failed", err, nil)
		runErr = fmt.Errorf("http server: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Rest.ShutdownTimeout)
	defer cancel()

	if err := a.apiServer.Stop(ctx); err != nil {
		a.logger.Error("HTTP server shutdown failed", err, nil)
		if runErr == nil {
			runErr = err
		}
	}

	if a.objectsCache != nil {
		a.objectsCache.Stop()
	}

	a.logger.Info("Application shut down gracefully.", nil)
	closeFluent(a.fluentClient)

	return runErr
}

func closeFluent(client *fluent.Fluent) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Error closing fluent client: %v\n", err)
	}
}
