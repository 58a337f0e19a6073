package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/roach88/punch/internal/config"
	"github.com/roach88/punch/internal/engine"
	"github.com/roach88/punch/internal/event"
	"github.com/roach88/punch/internal/store"
)

// session is the per-invocation wiring: resolved config, open log, engine.
type session struct {
	cfg    *config.Config
	log    store.Log
	engine *engine.Engine
}

// openSession loads configuration, applies flag overrides, configures
// logging on stderr and opens the configured log.
func (o *RootOptions) openSession(ctx context.Context, stderr io.Writer) (*session, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	if o.Store != "" {
		cfg.Store = o.Store
	}
	if o.LogPath != "" {
		cfg.LogPath = o.LogPath
		cfg.DBPath = o.LogPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	if o.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	})))

	opts := cfg.StoreOptions()
	slog.Debug("opening punch log", "backend", opts.Backend, "path", opts.Path)
	log, err := store.Open(ctx, opts)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:    cfg,
		log:    log,
		engine: engine.New(log, o.Clock),
	}, nil
}

// events loads the log and warns about any anomalies in it.
func (s *session) events(ctx context.Context) ([]event.Event, error) {
	events, err := s.engine.Events(ctx)
	if err != nil {
		return nil, err
	}
	warnAnomalies(events)
	return events, nil
}

func (s *session) close() {
	if err := s.log.Close(); err != nil {
		slog.Error("error closing punch log", "error", err)
	}
}

func warnAnomalies(events []event.Event) {
	for _, a := range engine.Anomalies(events) {
		slog.Warn("inconsistent punch log", "record", a.Index+1, "entry", event.MarshalLine(a.Event), "reason", a.Reason)
	}
}
