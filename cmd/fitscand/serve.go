package main

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"fitscan/internal/coach"
	"fitscan/internal/config"
	"fitscan/internal/httpapi"
	"fitscan/internal/ratelimit"
	"fitscan/internal/vision"
)

const shutdownTimeout = 10 * time.Second

func newLogger(cfg config.Config, w io.Writer) zerolog.Logger {
	if cfg.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("service", "fitscan").Logger()
}

// newService builds the domain service. The model client is only created
// when a usable API key is configured.
func newService(cfg config.Config, log zerolog.Logger) *coach.Service {
	delay := cfg.SimulationDelay()
	if delay == 0 {
		delay = -1
	}
	ccfg := coach.Config{SimulationDelay: delay, Logger: &log}
	if cfg.HasOpenAIKey() {
		client := vision.New(vision.Config{
			BaseURL:        cfg.OpenAIBaseURL,
			APIKey:         cfg.OpenAIAPIKey,
			Model:          cfg.OpenAIModel,
			RequestTimeout: cfg.RequestTimeoutDuration(),
			ConnectTimeout: cfg.ConnectTimeoutDuration(),
			MaxRetries:     cfg.MaxRetries,
			Logger:         &log,
		})
		log.Info().Str("model", client.Model()).Msg("model api enabled")
		ccfg.AI = client
	}
	return coach.New(ccfg)
}

// newHandler configures the HTTP layer for cfg and returns its router.
func newHandler(cfg config.Config, svc httpapi.Service, log zerolog.Logger) http.Handler {
	httpapi.SetLogger(log)
	httpapi.SetDefaultLogLevel(cfg.LogLevel)
	httpapi.SetEnvironment(cfg.Environment)
	httpapi.SetMaxBodyBytes(cfg.MaxUploadBytes)
	httpapi.SetCORSOptions(true, cfg.AllowedOrigins, []string{"GET", "POST", "OPTIONS"}, []string{"*"})
	httpapi.SetRateLimiter(ratelimit.New(ratelimit.Config{Limit: cfg.RateLimitPerMinute, Window: time.Minute}))
	return httpapi.NewMux(svc)
}

// serve runs the API until ctx is done, then shuts down gracefully. A nil
// ln listens on cfg.Addr.
func serve(ctx context.Context, cfg config.Config, ln net.Listener, log zerolog.Logger) error {
	svc := newService(cfg, log)

	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(cfg, svc, log),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", cfg.Addr); err != nil {
			return err
		}
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", ln.Addr().String()).
			Str("environment", cfg.Environment).
			Str("ai_mode", svc.Mode()).
			Str("version", config.Version).
			Msg("fitscan listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	// Handlers still running when the grace period ends get their work canceled.
	stop := context.AfterFunc(shutdownCtx, cancelBase)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	return nil
}
