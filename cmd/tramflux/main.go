package main

import (
	"context"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"tramflux/internal/config"
	"tramflux/internal/decode"
	"tramflux/internal/feed"
	"tramflux/internal/heartbeat"
	"tramflux/internal/logging"
	"tramflux/internal/poll"
	"tramflux/internal/sink"
	"tramflux/internal/status"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml")
	pretty := flag.Bool("pretty", false, "human-readable log output")
	flag.Parse()

	logging.Setup(*pretty)

	var paths []string
	if *configPath != "" {
		paths = append(paths, *configPath)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	snk, err := openSink(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("opening sink")
	}
	defer func() { _ = snk.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// create the target database before the first cycle; the sink may still
	// be coming up alongside us
	ensure := func() error { return snk.EnsureSchema(ctx) }
	if err := backoff.Retry(ensure, backoff.WithContext(backoff.NewExponentialBackOff(), ctx)); err != nil {
		log.Fatal().Err(err).Msg("preparing sink schema")
	}

	dec, err := decode.ForVersion(cfg.Upstream.FeedVersion)
	if err != nil {
		log.Fatal().Err(err).Msg("selecting decoder")
	}
	client := feed.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.DataURL,
		time.Duration(cfg.Upstream.TimeoutMS)*time.Millisecond)

	var src poll.Source
	if cfg.Upstream.FeedVersion == "gtfsrt" {
		src = &poll.Direct{Client: client, Decoder: dec}
	} else {
		src = &poll.Portal{Client: client, Decoder: dec}
	}

	loop := &poll.Loop{
		Source:       src,
		Sink:         snk,
		Measurement:  cfg.Sink.Measurement,
		Interval:     time.Duration(cfg.Poll.IntervalMS) * time.Millisecond,
		OnCycleError: cfg.Poll.OnCycleError,
		OnWriteError: cfg.Poll.OnWriteError,
		Heartbeat:    heartbeat.Beat,
	}

	if cfg.Status.Enabled {
		srv := status.NewServer(loop, cfg.Status.Port)
		go func() {
			log.Info().Int("port", cfg.Status.Port).Msg("status endpoint listening")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("status server")
			}
		}()
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(sctx)
		}()
	}

	heartbeat.Ready()
	log.Info().
		Str("feed", cfg.Upstream.FeedVersion).
		Str("sink", cfg.Sink.Driver).
		Dur("interval", loop.Interval).
		Msg("starting poll loop")

	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("poll loop terminated")
	}
	log.Info().Msg("shutdown complete")
}

func openSink(cfg *config.AppConfig) (sink.Sink, error) {
	switch cfg.Sink.Driver {
	case "sqlite":
		return sink.NewSQLite(cfg.Sink.SQLitePath)
	default:
		return sink.NewInflux(cfg.Sink.Influx.Addr, cfg.Sink.Influx.Username,
			cfg.Sink.Influx.Password, cfg.Sink.Influx.Database)
	}
}
