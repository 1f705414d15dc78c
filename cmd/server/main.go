// Package main is the entry point for the registration wizard. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/gtti-registration/internal/adapters/http"
	"github.com/jsamuelsen11/gtti-registration/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/gtti-registration/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/gtti-registration/internal/adapters/http/views"

	"github.com/jsamuelsen11/gtti-registration/internal/adapters/clients/intake"
	"github.com/jsamuelsen11/gtti-registration/internal/adapters/storage"
	"github.com/jsamuelsen11/gtti-registration/internal/app"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/wizard"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/config"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/formdef"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/health"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/httpclient"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/logging"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/telemetry"
	"github.com/jsamuelsen11/gtti-registration/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[draftStore](injector))
	if cfg.Submission.Forward {
		registry.Register(do.MustInvoke[*intake.Client](injector))
	}

	logger.Info("registration wizard ready",
		slog.String("draft_store", cfg.Draft.Store),
		slog.Bool("forward_submissions", cfg.Submission.Forward),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// draftStore is the applicant-side draft storage selected by draft.store.
type draftStore interface {
	handlers.StoreOpener
	ports.HealthChecker
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*wizard.Definition, error) {
		return formdef.Registration()
	})

	do.Provide(injector, func(i do.Injector) (draftStore, error) {
		switch cfg.Draft.Store {
		case config.StoreMemory:
			return storage.NewMemoryStore(&cfg.Draft), nil
		case config.StoreCookie:
			store := storage.NewCookieStore(&cfg.Draft)
			def := do.MustInvoke[*wizard.Definition](i)
			if err := app.CheckDraftCapacity(def, cfg.Draft.MaxValueLength, store.Fits); err != nil {
				return nil, fmt.Errorf("draft.max_value_length does not fit the cookie store: %w", err)
			}
			return store, nil
		default:
			return nil, fmt.Errorf("unknown draft store %q", cfg.Draft.Store)
		}
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Submission.Client, "intake-api", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*intake.Client, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return intake.NewClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SubmissionGateway, error) {
		if cfg.Submission.Forward {
			return do.MustInvoke[*intake.Client](i), nil
		}
		return intake.NewSimulated(cfg.Submission.Delay, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.RegistrationService, error) {
		def := do.MustInvoke[*wizard.Definition](i)
		gateway := do.MustInvoke[ports.SubmissionGateway](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewRegistrationService(def, gateway, logger,
			app.WithMetrics(metrics),
			app.WithMaxValueLength(cfg.Draft.MaxValueLength),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (*views.Renderer, error) {
		return views.New()
	})

	do.Provide(injector, func(i do.Injector) (*handlers.WizardHandler, error) {
		svc := do.MustInvoke[ports.RegistrationService](i)
		stores := do.MustInvoke[draftStore](i)
		renderer := do.MustInvoke[*views.Renderer](i)
		return handlers.NewWizardHandler(svc, stores, renderer), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.DraftHandler, error) {
		svc := do.MustInvoke[ports.RegistrationService](i)
		stores := do.MustInvoke[draftStore](i)
		return handlers.NewDraftHandler(svc, stores), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		wizardH := do.MustInvoke[*handlers.WizardHandler](i)
		draftH := do.MustInvoke[*handlers.DraftHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		abort := middleware.WithAbort(handlers.Abort(do.MustInvoke[*views.Renderer](i)))

		return adapthttp.NewRouter(wizardH, draftH, healthH,
			middleware.Recovery(logger, abort),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout, abort),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
